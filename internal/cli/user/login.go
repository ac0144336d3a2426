package user

import (
	"log"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/listo/internal/cli"
)

// LoginCmd returns the user login subcommand
func LoginCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "login",
		Short: "Check an email and password against the local account",
		Long: `Sign in with the stored account. Exits non-zero when the
credentials are rejected, so scripts can gate on it.

Examples:
  listo user login --email=ana@example.com --password=secret1
`,
		Args: cli.Args(cobra.NoArgs),
		RunE: runLogin,
	}

	cmd.Flags().String("email", "", "Account email (required)")
	cmd.Flags().String("password", "", "Account password (use - for stdin)")
	for _, name := range []string{"email", "password"} {
		if err := cmd.MarkFlagRequired(name); err != nil {
			log.Printf("Error marking flag as required: %v", err)
		}
	}

	cli.OutputFlags(cmd)

	return cmd
}

func runLogin(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.NewFormatter(cmd)

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

	cred, err := cliInstance.App.AuthService.Authenticate(ctx, email, password)
	if err != nil {
		return formatter.Fail(err, "Use 'listo user register' to create an account")
	}

	return formatter.Success(userResult{
		UserJSON: toJSON(cred),
		message:  "Welcome back, " + cred.Username,
	})
}
