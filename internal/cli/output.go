package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
)

// ExitError represents an error with a specific exit code.
// Use this to return errors with meaningful exit codes from CLI commands.
type ExitError struct {
	Code    int    // Exit code (use ExitFailure or ExitCommandError)
	Message string // Error message
	Err     error  // Underlying error (optional)
}

func (e *ExitError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

// NewExitError creates a new ExitError with the given code and message.
func NewExitError(code int, message string) *ExitError {
	return &ExitError{Code: code, Message: message}
}

// WrapExitError wraps an existing error with an exit code.
func WrapExitError(code int, message string, err error) *ExitError {
	return &ExitError{Code: code, Message: message, Err: err}
}

// GetExitCode extracts the exit code from an error.
// Returns ExitSuccess for nil and ExitFailure if the error is not an ExitError.
func GetExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return ExitFailure
}

// Response is the JSON envelope written by every command in json format.
type Response struct {
	Status string `json:"status"`
	Data   any    `json:"data,omitempty"`
	Error  string `json:"error,omitempty"`
}

// OutputFormatter handles JSON vs text output for CLI commands.
type OutputFormatter struct {
	Format string
	Writer io.Writer
}

// Result writes data as a JSON envelope, or calls render with a text printer.
func (f *OutputFormatter) Result(data any, render func(p *Printer)) error {
	if f.Format == FormatJSON {
		return json.NewEncoder(f.Writer).Encode(Response{Status: StatusOK, Data: data})
	}
	render(NewPrinter(f.Writer))
	return nil
}

// Fail reports a failed command. data still carries the partial result so a
// JSON consumer can see what went wrong. The returned ExitError is what the
// command returns.
func (f *OutputFormatter) Fail(code int, message string, err error, data any) error {
	exitErr := WrapExitError(code, message, err)
	if f.Format == FormatJSON {
		if encErr := json.NewEncoder(f.Writer).Encode(Response{Status: StatusError, Data: data, Error: exitErr.Error()}); encErr != nil {
			return encErr
		}
	}
	return exitErr
}

const (
	colorGreen  = "\033[0;32m"
	colorRed    = "\033[0;31m"
	colorYellow = "\033[1;33m"
	colorBlue   = "\033[0;34m"
	colorReset  = "\033[0m"
)

// Printer writes human-readable status lines. Colors are used only when the
// writer is a terminal and NO_COLOR is unset.
type Printer struct {
	w     io.Writer
	color bool
}

// NewPrinter creates a Printer over w
func NewPrinter(w io.Writer) *Printer {
	return &Printer{w: w, color: isTerminal(w) && os.Getenv("NO_COLOR") == ""}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	info, err := f.Stat()
	return err == nil && info.Mode()&os.ModeCharDevice != 0
}

func (p *Printer) print(color, symbol, format string, a ...any) {
	line := symbol + fmt.Sprintf(format, a...)
	if p.color {
		line = color + line + colorReset
	}
	fmt.Fprintln(p.w, line)
}

func (p *Printer) Info(format string, a ...any)    { p.print(colorBlue, "ℹ ", format, a...) }
func (p *Printer) Success(format string, a ...any) { p.print(colorGreen, "✓ ", format, a...) }
func (p *Printer) Warning(format string, a ...any) { p.print(colorYellow, "⚠ ", format, a...) }
func (p *Printer) Error(format string, a ...any)   { p.print(colorRed, "✗ ", format, a...) }

// Line writes an uncolored line
func (p *Printer) Line(format string, a ...any) {
	fmt.Fprintf(p.w, format+"\n", a...)
}

func (p *Printer) Header(title string) {
	p.print(colorYellow, "", "\n=== %s ===", title)
}
