package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/spf13/cobra"
	"github.com/thenoetrevino/listo/internal/cli"
	"github.com/thenoetrevino/listo/internal/cli/calendar"
	"github.com/thenoetrevino/listo/internal/cli/styles"
	"github.com/thenoetrevino/listo/internal/cli/task"
	"github.com/thenoetrevino/listo/internal/cli/user"
	"github.com/thenoetrevino/listo/internal/config"
	"github.com/thenoetrevino/listo/internal/launcher"
	"github.com/thenoetrevino/listo/internal/logging"
)

// NewRootCmd builds the listo command tree
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "listo",
		Short: "Listo - a local-first to-do list",
		Long: `Listo keeps an ordered to-do list and a single local account on this machine.

Run without a subcommand to open the interactive list once an account is
registered.

Examples:
  listo task add "Buy milk"
  listo task list --filter active --json
  listo calendar --month 2024-09`,
		SilenceErrors:     true,
		SilenceUsage:      true,
		PersistentPreRunE: setup,
		RunE:              runTUI,
	}

	rootCmd.PersistentFlags().String("db", "", "Path to the database file (overrides config)")
	rootCmd.PersistentFlags().String("log-level", "", "Log level: debug, info, warn, error (overrides config)")

	rootCmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return &cli.UsageError{Err: err}
	})

	rootCmd.AddCommand(task.TaskCmd())
	rootCmd.AddCommand(user.UserCmd())
	rootCmd.AddCommand(calendar.CalendarCmd())

	return rootCmd
}

// setup resolves configuration and initializes logging and styles before any command runs
func setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return report(cmd, fmt.Errorf("failed to load configuration: %w", err))
	}
	cfg.ApplyFlags(cmd.Flags())

	if err := logging.Init(cfg.LogDir(), cfg.LogLevel); err != nil {
		return report(cmd, fmt.Errorf("failed to initialize logging: %w", err))
	}
	styles.Init(cfg.ColorScheme)

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	cmd.SetContext(cli.WithConfig(ctx, cfg))
	return nil
}

// runTUI opens the interactive list when listo is run without a subcommand
func runTUI(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	cliInstance, err := cli.GetCLIFromContext(ctx)
	if err != nil {
		return report(cmd, err)
	}
	defer func() {
		if err := cliInstance.Close(); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: failed to close: %v\n", err)
		}
	}()

	exists, err := cliInstance.App.AuthService.Exists(ctx)
	if err != nil {
		return report(cmd, err)
	}
	if !exists {
		return landing(cmd.OutOrStdout())
	}

	if err := launcher.Launch(ctx, cliInstance); err != nil {
		return report(cmd, err)
	}
	return nil
}

// landing greets a device with no registered account instead of opening the list
func landing(w io.Writer) error {
	if _, err := lipgloss.Fprintln(w, styles.TitleStyle.Render("No account found, please sign up")); err != nil {
		return err
	}
	_, err := fmt.Fprintln(w, "Run 'listo user register --email <email> --password <password>' to create one.")
	return err
}

// report prints a failure raised outside of a subcommand's own formatter
func report(cmd *cobra.Command, err error) error {
	fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
	return err
}

// isUsageMessage matches the cobra errors that are not routed through the flag error func
func isUsageMessage(err error) bool {
	msg := err.Error()
	return strings.HasPrefix(msg, "required flag") ||
		strings.HasPrefix(msg, "unknown command") ||
		strings.HasPrefix(msg, "if any flags in the group")
}

// run executes root against ctx and prints usage errors.
// Commands report their own failures through cli.OutputFormatter.
func run(ctx context.Context, root *cobra.Command, stderr io.Writer) error {
	cmd, err := root.ExecuteContextC(ctx)
	if err == nil {
		return nil
	}

	var usageErr *cli.UsageError
	if !errors.As(err, &usageErr) && isUsageMessage(err) {
		err = &cli.UsageError{Err: err}
	}

	if errors.As(err, &usageErr) {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		fmt.Fprintf(stderr, "Run '%s --help' for usage.\n", cmd.CommandPath())
	}
	return err
}

// Execute runs the root command and returns the error for exit-code mapping
func Execute() error {
	return run(context.Background(), NewRootCmd(), os.Stderr)
}
