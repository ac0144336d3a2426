package user

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/listo/internal/cli"
	"github.com/thenoetrevino/listo/internal/models"
	testcli "github.com/thenoetrevino/listo/internal/testutil/cli"
	sysuser "github.com/thenoetrevino/listo/internal/user"
)

var registerArgs = []string{"--username=ana", "--email=ana@example.com", "--password=secret1"}

func TestRegister_Positive(t *testing.T) {
	store, app := testcli.SetupCLITest(t)

	output, err := testcli.ExecuteCLICommand(t, app, RegisterCmd(), append(registerArgs, "--json"))

	require.NoError(t, err)
	user := testcli.ParseData(t, output)
	assert.Equal(t, "ana", user["username"])
	assert.Equal(t, "ana@example.com", user["email"])
	assert.NotContains(t, output, "password")

	data, found, err := store.Get(context.Background(), "user")
	require.NoError(t, err)
	require.True(t, found)
	assert.NotContains(t, string(data), "secret1")
}

func TestRegister_PasswordFromStdin(t *testing.T) {
	_, app := testcli.SetupCLITest(t)

	cmd := RegisterCmd()
	cmd.SetIn(strings.NewReader("secret1\n"))
	_, err := testcli.ExecuteCLICommand(t, app, cmd,
		[]string{"--username=ana", "--email=ana@example.com", "--password=-", "--quiet"})
	require.NoError(t, err)

	_, err = app.AuthService.Authenticate(context.Background(), "ana@example.com", "secret1")
	assert.NoError(t, err)
}

func TestRegister_UsernameDefaultsToOSAccount(t *testing.T) {
	if sysuser.DefaultUsername() == "" {
		t.Skip("no OS account name available")
	}
	_, app := testcli.SetupCLITest(t)

	_, err := testcli.ExecuteCLICommand(t, app, RegisterCmd(),
		[]string{"--email=ana@example.com", "--password=secret1", "--quiet"})
	require.NoError(t, err)

	cred, err := app.AuthService.Current(context.Background())
	require.NoError(t, err)
	assert.Equal(t, sysuser.DefaultUsername(), cred.Username)
}

func TestRegister_Negative(t *testing.T) {
	_, app := testcli.SetupCLITest(t)

	tests := []struct {
		name     string
		args     []string
		wantCode int
		wantMsg  string
	}{
		{
			name:     "blank username",
			args:     []string{"--username=  ", "--email=ana@example.com", "--password=secret1", "--json"},
			wantCode: cli.ExitValidation,
			wantMsg:  "username cannot be empty",
		},
		{
			name:     "short password",
			args:     []string{"--username=ana", "--email=ana@example.com", "--password=12345", "--json"},
			wantCode: cli.ExitValidation,
			wantMsg:  "password must be at least 6 characters",
		},
		{
			name:     "invalid email",
			args:     []string{"--username=ana", "--email=ana", "--password=secret1", "--json"},
			wantCode: cli.ExitValidation,
			wantMsg:  "email must contain '@' and '.'",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			output, err := testcli.ExecuteCLICommand(t, app, RegisterCmd(), tt.args)

			require.Error(t, err)
			assert.Equal(t, tt.wantCode, cli.ExitCodeFor(err))
			errData := testcli.ParseJSON(t, output)["error"].(map[string]interface{})
			assert.Equal(t, tt.wantMsg, errData["message"])
		})
	}

	t.Run("already registered", func(t *testing.T) {
		_, err := testcli.ExecuteCLICommand(t, app, RegisterCmd(), registerArgs)
		require.NoError(t, err)

		output, err := testcli.ExecuteCLICommand(t, app, RegisterCmd(),
			[]string{"--username=bob", "--email=bob@example.com", "--password=secret2", "--json"})

		require.Error(t, err)
		assert.ErrorIs(t, err, models.ErrConflict)
		assert.Equal(t, cli.ExitConflict, cli.ExitCodeFor(err))
		errData := testcli.ParseJSON(t, output)["error"].(map[string]interface{})
		assert.Equal(t, "CONFLICT", errData["code"])
		assert.NotEmpty(t, errData["suggestion"])
	})
}

func TestLogin(t *testing.T) {
	_, app := testcli.SetupCLITest(t)

	t.Run("no account", func(t *testing.T) {
		_, err := testcli.ExecuteCLICommand(t, app, LoginCmd(),
			[]string{"--email=ana@example.com", "--password=secret1"})

		require.Error(t, err)
		assert.Equal(t, cli.ExitNotFound, cli.ExitCodeFor(err))
	})

	_, err := testcli.ExecuteCLICommand(t, app, RegisterCmd(), registerArgs)
	require.NoError(t, err)

	t.Run("correct credentials", func(t *testing.T) {
		output, err := testcli.ExecuteCLICommand(t, app, LoginCmd(),
			[]string{"--email=ana@example.com", "--password=secret1"})

		require.NoError(t, err)
		assert.Contains(t, output, "Welcome back, ana")
	})

	t.Run("wrong password", func(t *testing.T) {
		output, err := testcli.ExecuteCLICommand(t, app, LoginCmd(),
			[]string{"--email=ana@example.com", "--password=wrong!!", "--json"})

		require.Error(t, err)
		assert.Equal(t, cli.ExitAuth, cli.ExitCodeFor(err))
		errData := testcli.ParseJSON(t, output)["error"].(map[string]interface{})
		assert.Equal(t, "AUTH_FAILED", errData["code"])
	})
}

func TestWhoamiAndRemove(t *testing.T) {
	_, app := testcli.SetupCLITest(t)

	_, err := testcli.ExecuteCLICommand(t, app, WhoamiCmd(), []string{})
	require.Error(t, err)
	assert.Equal(t, cli.ExitNotFound, cli.ExitCodeFor(err))

	_, err = testcli.ExecuteCLICommand(t, app, RegisterCmd(), registerArgs)
	require.NoError(t, err)

	output, err := testcli.ExecuteCLICommand(t, app, WhoamiCmd(), []string{})
	require.NoError(t, err)
	assert.Equal(t, "ana <ana@example.com>\n", output)

	output, err = testcli.ExecuteCLICommand(t, app, WhoamiCmd(), []string{"--quiet"})
	require.NoError(t, err)
	assert.Equal(t, "ana@example.com\n", output)

	output, err = testcli.ExecuteCLICommand(t, app, RemoveCmd(), []string{"--json"})
	require.NoError(t, err)
	assert.Equal(t, true, testcli.ParseJSON(t, output)["success"])

	_, err = testcli.ExecuteCLICommand(t, app, RemoveCmd(), []string{})
	require.Error(t, err)
	assert.Equal(t, cli.ExitNotFound, cli.ExitCodeFor(err))
}
