package cli

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/glamour"
	"github.com/muesli/reflow/wordwrap"
	"github.com/spf13/cobra"
)

// TimeLayout is how task creation times are shown to people
const TimeLayout = "Jan 2, 2006 3:04 PM"

// WrapWidth is the column limit for wrapped CLI output
const WrapWidth = 72

// FormatCreatedAt renders a creation time in local time
func FormatCreatedAt(t time.Time) string {
	return t.Local().Format(TimeLayout)
}

// Wrap word-wraps text to width, indenting continuation lines by indent spaces
func Wrap(text string, width, indent int) string {
	wrapped := wordwrap.String(text, width-indent)
	if indent == 0 {
		return wrapped
	}
	pad := strings.Repeat(" ", indent)
	return strings.ReplaceAll(wrapped, "\n", "\n"+pad)
}

// OutputFlags registers the --json and --quiet flags every command carries
func OutputFlags(cmd *cobra.Command) {
	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output (ID only)")
}

// NewFormatter builds an OutputFormatter from the command's output flags
func NewFormatter(cmd *cobra.Command) *OutputFormatter {
	jsonOutput, _ := cmd.Flags().GetBool("json")
	quietMode, _ := cmd.Flags().GetBool("quiet")
	return &OutputFormatter{JSON: jsonOutput, Quiet: quietMode}
}

// ReadSecret returns value, or one line from stdin when value is "-"
func ReadSecret(value string, stdin io.Reader) (string, error) {
	if value != "-" {
		return value, nil
	}
	if stdin == nil {
		stdin = os.Stdin
	}
	data, err := io.ReadAll(stdin)
	if err != nil {
		return "", err
	}
	line, _, _ := strings.Cut(string(data), "\n")
	return strings.TrimRight(line, "\r"), nil
}

// rendererCache caches glamour renderers by wrap width
var rendererCache sync.Map

// RenderMarkdown renders md for the terminal, wrapping at width
func RenderMarkdown(md string, width int) (string, error) {
	if cached, ok := rendererCache.Load(width); ok {
		return cached.(*glamour.TermRenderer).Render(md)
	}

	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return "", fmt.Errorf("create markdown renderer: %w", err)
	}
	rendererCache.Store(width, r)
	return r.Render(md)
}

// Args wraps a positional-argument validator so its failures map to ExitUsage
func Args(validate cobra.PositionalArgs) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := validate(cmd, args); err != nil {
			return &UsageError{Err: err}
		}
		return nil
	}
}
