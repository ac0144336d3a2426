package user

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/listo/internal/cli"
	authservice "github.com/thenoetrevino/listo/internal/services/auth"
	sysuser "github.com/thenoetrevino/listo/internal/user"
)

// RegisterCmd returns the user register subcommand
func RegisterCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create the local account",
		Long: `Create the single account stored on this device.

--username defaults to the name of the OS account running listo.

Examples:
  listo user register --username=ana --email=ana@example.com --password=secret1

  # Read the password from stdin
  echo "secret1" | listo user register --username=ana --email=ana@example.com --password=-
`,
		Args: cli.Args(cobra.NoArgs),
		RunE: runRegister,
	}

	cmd.Flags().String("username", sysuser.DefaultUsername(), "Display name")
	cmd.Flags().String("email", "", "Email used to sign in (required)")
	cmd.Flags().String("password", "", "Password, at least 6 characters (use - for stdin)")
	for _, name := range []string{"email", "password"} {
		if err := cmd.MarkFlagRequired(name); err != nil {
			log.Printf("Error marking flag as required: %v", err)
		}
	}

	cli.OutputFlags(cmd)

	return cmd
}

func runRegister(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.NewFormatter(cmd)

	username, _ := cmd.Flags().GetString("username")
	email, _ := cmd.Flags().GetString("email")
	passwordFlag, _ := cmd.Flags().GetString("password")

	password, err := cli.ReadSecret(passwordFlag, cmd.InOrStdin())
	if err != nil {
		return formatter.Fail(err, "")
	}

	cliInstance, err := cli.GetCLIFromContext(ctx)
	if err != nil {
		if fmtErr := formatter.Error("INITIALIZATION_ERROR", err.Error()); fmtErr != nil {
			log.Printf("Error formatting error message: %v", fmtErr)
		}
		return err
	}
	defer func() {
		if err := cliInstance.Close(); err != nil {
			log.Printf("Error closing CLI: %v", err)
		}
	}()

	cred, err := cliInstance.App.AuthService.Register(ctx, authservice.RegisterRequest{
		Username: username,
		Email:    email,
		Password: password,
	})
	if err != nil {
		return formatter.Fail(err, "Use 'listo user remove' to delete the existing account first")
	}

	return formatter.Success(userResult{
		UserJSON: toJSON(cred),
		message:  fmt.Sprintf("✓ Account created for %s <%s>", cred.Username, cred.Email),
	})
}
