package user

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/listo/internal/cli"
)

// WhoamiCmd returns the user whoami subcommand
func WhoamiCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "whoami",
		Short: "Show the registered account",
		Args:  cli.Args(cobra.NoArgs),
		RunE:  runWhoami,
	}

	cli.OutputFlags(cmd)

	return cmd
}

func runWhoami(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.NewFormatter(cmd)

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

	cred, err := cliInstance.App.AuthService.Current(ctx)
	if err != nil {
		return formatter.Fail(err, "Use 'listo user register' to create an account")
	}

	return formatter.Success(userResult{
		UserJSON: toJSON(cred),
		message:  fmt.Sprintf("%s <%s>", cred.Username, cred.Email),
	})
}
