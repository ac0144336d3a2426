package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"

	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/listo/internal/cli/styles"
)

// OutputFormatter handles three output modes: JSON, quiet, and human-readable.
// Out and Err default to the process's stdout and stderr.
type OutputFormatter struct {
	JSON  bool
	Quiet bool

	Out io.Writer
	Err io.Writer
}

// errorEnvelope is the JSON shape of a failed command
type errorEnvelope struct {
	Success bool      `json:"success"`
	Error   errorBody `json:"error"`
}

type errorBody struct {
	Code       string `json:"code"`
	Message    string `json:"message"`
	Suggestion string `json:"suggestion,omitempty"`
}

func (f *OutputFormatter) stdout() io.Writer {
	if f.Out != nil {
		return f.Out
	}
	return os.Stdout
}

func (f *OutputFormatter) stderr() io.Writer {
	if f.Err != nil {
		return f.Err
	}
	return os.Stderr
}

// Success outputs a successful result.
//
// Quiet mode prints the values of GetIDs, one per line, or of GetID, and
// nothing for data with neither. JSON mode wraps data as
// {"success":true,"data":...}. Otherwise data's String form is printed.
func (f *OutputFormatter) Success(data any) error {
	if f.Quiet {
		return f.quiet(data)
	}

	if f.JSON {
		// data is kept even when nil so agents can rely on the key
		return json.NewEncoder(f.stdout()).Encode(struct {
			Success bool `json:"success"`
			Data    any  `json:"data"`
		}{true, data})
	}

	return f.prettyPrint(data)
}

func (f *OutputFormatter) quiet(data any) error {
	var ids []string
	switch d := data.(type) {
	case interface{ GetIDs() []string }:
		ids = d.GetIDs()
	case interface{ GetID() string }:
		ids = []string{d.GetID()}
	}
	for _, id := range ids {
		if _, err := fmt.Fprintln(f.stdout(), id); err != nil {
			return err
		}
	}
	return nil
}

// Error outputs error information
func (f *OutputFormatter) Error(code string, message string) error {
	return f.ErrorWithSuggestion(code, message, "")
}

// ErrorWithSuggestion outputs error information with an optional suggestion.
// JSON goes to Out so agents read a single stream; human text goes to Err.
func (f *OutputFormatter) ErrorWithSuggestion(code string, message string, suggestion string) error {
	if f.JSON {
		return json.NewEncoder(f.stdout()).Encode(errorEnvelope{
			Error: errorBody{Code: code, Message: message, Suggestion: suggestion},
		})
	}

	if _, err := lipgloss.Fprintln(f.stderr(), styles.ErrorStyle.Render("❌ Error: ")+message); err != nil {
		return err
	}
	if suggestion != "" {
		if _, err := fmt.Fprintf(f.stderr(), "💡 Suggestion: %s\n", suggestion); err != nil {
			return err
		}
	}
	return nil
}

// Fail reports err with its derived code and returns it unchanged so the
// caller can `return formatter.Fail(err, "")`
func (f *OutputFormatter) Fail(err error, suggestion string) error {
	if fmtErr := f.ErrorWithSuggestion(ErrorCode(err), err.Error(), suggestion); fmtErr != nil {
		slog.Error("failed to format error", "error", fmtErr)
	}
	return err
}

// prettyPrint formats data for human-readable output
func (f *OutputFormatter) prettyPrint(data any) error {
	var err error
	if s, ok := data.(fmt.Stringer); ok {
		_, err = lipgloss.Fprintln(f.stdout(), s.String())
	} else {
		_, err = fmt.Fprintf(f.stdout(), "%+v\n", data)
	}
	return err
}
