// # Naming Conventions
//
// Functions in this package follow consistent naming patterns based on
// their behavior:
//
//   - Display* functions write formatted output to an [io.Writer].
//     They handle presentation logic and colorization.
//     Examples: [DisplayTerm], [DisplaySummary].
//
//   - Format* functions return a formatted string without performing I/O.
//     They are pure functions suitable for composition.
//     Examples: [FormatTerm].
//
//   - Write* functions write data to files on the filesystem.
//     They handle file creation, directory setup, and error handling.
//     Examples: [WriteSequenceToFile].

package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/agbru/fibseq/internal/fib"
	"github.com/agbru/fibseq/internal/format"
	"github.com/agbru/fibseq/internal/ui"
)

// OutputConfig holds configuration for sequence output.
type OutputConfig struct {
	// OutputFile is the path to also save the sequence (empty for none).
	OutputFile string
	// Quiet suppresses all auxiliary output.
	Quiet bool
	// Verbose enables the run summary on the error stream.
	Verbose bool
}

// FormatTerm formats a single term in the canonical line format.
// This is the program's observable output contract; do not decorate it.
func FormatTerm(i, v uint64) string {
	return fmt.Sprintf("fib(%d) = %d", i, v)
}

// DisplayTerm writes one canonical term line to out. The returned write
// error, if any, is fatal to the run.
func DisplayTerm(out io.Writer, i, v uint64) error {
	_, err := fmt.Fprintln(out, FormatTerm(i, v))
	return err
}

// DisplaySummary writes a colorized run summary, intended for stderr in
// verbose mode so the canonical stdout stream stays clean.
func DisplaySummary(out io.Writer, count uint64, policy fib.Policy, duration time.Duration) {
	fmt.Fprintf(out, "%s--- Run Summary ---%s\n", ui.Bold(), ui.ColorReset())
	fmt.Fprintf(out, "Emitted %s%d%s terms (policy: %s%s%s) in %s%s%s.\n",
		ui.ColorPrimary(), count, ui.ColorReset(),
		ui.ColorSecondary(), policy, ui.ColorReset(),
		ui.ColorSuccess(), format.FormatExecutionDuration(duration), ui.ColorReset())
}

// DisplayError writes a colorized error line, intended for stderr.
func DisplayError(out io.Writer, err error) {
	fmt.Fprintf(out, "%sError:%s %v\n", ui.ColorError(), ui.ColorReset(), err)
}

// WriteSequenceToFile writes the computed sequence to a file with a
// commented header block describing the run.
func WriteSequenceToFile(path string, terms []fib.Term, policy fib.Policy) error {
	if path == "" {
		return nil
	}

	// Ensure directory exists
	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create directory: %w", err)
		}
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer file.Close()

	fmt.Fprintf(file, "# Fibonacci Sequence\n")
	fmt.Fprintf(file, "# Generated: %s\n", time.Now().Format(time.RFC3339))
	fmt.Fprintf(file, "# Terms: %d\n", len(terms))
	fmt.Fprintf(file, "# Overflow policy: %s\n", policy)
	fmt.Fprintf(file, "\n")

	for _, term := range terms {
		if _, err := fmt.Fprintln(file, FormatTerm(term.Index, term.Value)); err != nil {
			return fmt.Errorf("failed to write term %d: %w", term.Index, err)
		}
	}

	return nil
}
