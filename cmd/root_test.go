package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/listo/internal/cli"
	"github.com/thenoetrevino/listo/internal/testutil"
)

// setupEnv points config, data and database at a temp dir and returns the db path
func setupEnv(t *testing.T) string {
	t.Helper()

	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "config"))
	t.Setenv("LISTO_DATA_DIR", filepath.Join(dir, "data"))
	t.Setenv("LISTO_DB", "")
	t.Setenv("LISTO_LOG_LEVEL", "")
	t.Setenv("LISTO_THEME_FILE", "")
	return filepath.Join(dir, "listo.db")
}

func execute(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()

	root := NewRootCmd()
	root.SetArgs(args)

	var errBuf bytes.Buffer
	root.SetErr(&errBuf)

	stdout = testutil.CaptureOutput(t, func() {
		err = run(context.Background(), root, &errBuf)
	})
	return stdout, errBuf.String(), err
}

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func decode(t *testing.T, out string) envelope {
	t.Helper()
	var env envelope
	require.NoError(t, json.Unmarshal([]byte(out), &env), "output: %s", out)
	return env
}

func TestRoot_TaskLifecycleAgainstDatabase(t *testing.T) {
	db := setupEnv(t)

	out, _, err := execute(t, "--db", db, "task", "add", "Buy", "milk", "--json")
	require.NoError(t, err)
	env := decode(t, out)
	require.True(t, env.Success)

	var created struct {
		ID        string `json:"id"`
		Title     string `json:"title"`
		Completed bool   `json:"completed"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &created))
	assert.Equal(t, "Buy milk", created.Title)
	assert.False(t, created.Completed)

	_, _, err = execute(t, "--db", db, "task", "toggle", created.ID, "--quiet")
	require.NoError(t, err)

	out, _, err = execute(t, "--db", db, "task", "list", "--filter", "completed", "--json")
	require.NoError(t, err)
	env = decode(t, out)
	assert.Contains(t, string(env.Data), created.ID)
}

func TestRoot_NotFoundExitCode(t *testing.T) {
	db := setupEnv(t)

	out, _, err := execute(t, "--db", db, "task", "toggle", "missing", "--json")
	require.Error(t, err)
	assert.Equal(t, cli.ExitNotFound, cli.ExitCodeFor(err))
	assert.Equal(t, "NOT_FOUND", decode(t, out).Error.Code)
}

func TestRoot_UsageErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"unknown flag", []string{"task", "add", "x", "--bogus"}},
		{"unknown command", []string{"frobnicate"}},
		{"missing required flag", []string{"user", "register", "--username", "ann"}},
		{"wrong arg count", []string{"task", "toggle"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db := setupEnv(t)

			_, stderr, err := execute(t, append([]string{"--db", db}, tt.args...)...)
			require.Error(t, err)
			assert.Equal(t, cli.ExitUsage, cli.ExitCodeFor(err))
			assert.Contains(t, stderr, "--help' for usage.")
		})
	}
}

func TestRoot_RegisterThenLogin(t *testing.T) {
	db := setupEnv(t)

	_, _, err := execute(t, "--db", db, "user", "register",
		"--username", "ann", "--email", "ann@example.com", "--password", "secret1", "--quiet")
	require.NoError(t, err)

	_, _, err = execute(t, "--db", db, "user", "login",
		"--email", "ann@example.com", "--password", "wrong-secret", "--json")
	require.Error(t, err)
	assert.Equal(t, cli.ExitAuth, cli.ExitCodeFor(err))

	out, _, err := execute(t, "--db", db, "user", "login",
		"--email", "ann@example.com", "--password", "secret1", "--json")
	require.NoError(t, err)
	assert.True(t, decode(t, out).Success)
}

func TestRoot_NoAccountShowsLanding(t *testing.T) {
	db := setupEnv(t)

	out, _, err := execute(t, "--db", db)
	require.NoError(t, err)
	assert.Contains(t, out, "No account found, please sign up")
	assert.Contains(t, out, "listo user register")
}
