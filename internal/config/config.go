// Package config parses command-line flags and environment variables into
// the application configuration.
//
// Resolution priority: CLI flags > environment variables (FIBSEQ_ prefix)
// > defaults. The defaults reproduce the canonical behavior exactly: ten
// terms, strict overflow policy, bare stdout lines.
package config

import (
	"flag"
	"fmt"
	"io"

	apperrors "github.com/agbru/fibseq/internal/errors"
	"github.com/agbru/fibseq/internal/fib"
)

// EnvPrefix is prepended to every environment variable key.
const EnvPrefix = "FIBSEQ_"

// DefaultCount is the number of leading terms emitted when no count is
// configured: indices 0 through 9.
const DefaultCount = 10

// AppConfig holds the resolved application configuration.
type AppConfig struct {
	// Count is the number of leading terms to emit (indices 0..Count-1).
	Count uint64
	// Policy is the overflow policy applied by the calculator.
	Policy fib.Policy
	// OutputFile, when set, receives a copy of the sequence with a header.
	OutputFile string
	// Quiet silences all auxiliary output and logging.
	Quiet bool
	// Verbose enables the run summary and debug logging on stderr.
	Verbose bool
	// Stats dumps the Prometheus registry to stderr after the run.
	Stats bool
	// TUI launches the interactive sequence browser instead of line output.
	TUI bool
	// NoColor disables ANSI colors in auxiliary output.
	NoColor bool
}

// ParseConfig parses cmdArgs into an AppConfig, applying environment
// overrides for flags not explicitly set. Usage and flag errors are
// written to errWriter; --help surfaces as flag.ErrHelp.
func ParseConfig(programName string, cmdArgs []string, errWriter io.Writer) (AppConfig, error) {
	cfg := AppConfig{
		Count:  DefaultCount,
		Policy: fib.Strict,
	}
	policyName := fib.Strict.String()

	fs := flag.NewFlagSet(programName, flag.ContinueOnError)
	fs.SetOutput(errWriter)
	fs.Usage = func() { printUsage(fs, programName) }

	fs.Uint64Var(&cfg.Count, "n", DefaultCount, "number of leading terms to emit (indices 0..n-1)")
	fs.Uint64Var(&cfg.Count, "count", DefaultCount, "alias for -n")
	fs.StringVar(&policyName, "policy", policyName, "overflow policy: strict, wrap or saturate")
	fs.StringVar(&cfg.OutputFile, "o", "", "also write the sequence to this file")
	fs.StringVar(&cfg.OutputFile, "output", "", "alias for -o")
	fs.BoolVar(&cfg.Quiet, "q", false, "suppress auxiliary output and logging")
	fs.BoolVar(&cfg.Quiet, "quiet", false, "alias for -q")
	fs.BoolVar(&cfg.Verbose, "v", false, "run summary and debug logging on stderr")
	fs.BoolVar(&cfg.Verbose, "verbose", false, "alias for -v")
	fs.BoolVar(&cfg.Stats, "stats", false, "dump process metrics to stderr after the run")
	fs.BoolVar(&cfg.TUI, "tui", false, "browse the sequence interactively")
	fs.BoolVar(&cfg.NoColor, "no-color", false, "disable ANSI colors in auxiliary output")

	if err := fs.Parse(cmdArgs); err != nil {
		return AppConfig{}, err
	}
	if fs.NArg() > 0 {
		return AppConfig{}, apperrors.NewConfigError("unexpected argument %q", fs.Arg(0))
	}

	applyEnvOverrides(&cfg, &policyName, fs)

	policy, err := fib.ParsePolicy(policyName)
	if err != nil {
		return AppConfig{}, apperrors.NewConfigError("invalid -policy: %v", err)
	}
	cfg.Policy = policy

	if cfg.Quiet && cfg.Verbose {
		return AppConfig{}, apperrors.NewConfigError("-quiet and -verbose are mutually exclusive")
	}

	return cfg, nil
}

// printUsage writes the flag summary plus the default-invocation note.
func printUsage(fs *flag.FlagSet, programName string) {
	out := fs.Output()
	fmt.Fprintf(out, "Usage: %s [flags]\n\n", programName)
	fmt.Fprintf(out, "Prints the leading terms of the Fibonacci sequence, one per line,\n")
	fmt.Fprintf(out, "as 'fib(i) = v'. With no flags, the first ten terms are printed.\n\n")
	fmt.Fprintf(out, "Flags:\n")
	fs.PrintDefaults()
	fmt.Fprintf(out, "\nEnvironment variables (overridden by flags): %sCOUNT, %sPOLICY,\n", EnvPrefix, EnvPrefix)
	fmt.Fprintf(out, "%sOUTPUT, %sQUIET, %sVERBOSE, %sSTATS, %sTUI, %sNO_COLOR\n",
		EnvPrefix, EnvPrefix, EnvPrefix, EnvPrefix, EnvPrefix, EnvPrefix)
}
