// This file contains environment variable utilities for configuration override.

package config

import (
	"flag"
	"os"
	"strconv"
	"strings"
)

// isFlagSet checks if a flag was explicitly set on the command line.
// This is used to determine whether to apply environment variable overrides.
func isFlagSet(fs *flag.FlagSet, name string) bool {
	found := false
	fs.Visit(func(f *flag.Flag) {
		if f.Name == name {
			found = true
		}
	})
	return found
}

// isFlagSetAny checks if any of the specified flags were explicitly set.
// This is useful for aliased flags where either the short or long form may
// be used.
func isFlagSetAny(fs *flag.FlagSet, names ...string) bool {
	for _, name := range names {
		if isFlagSet(fs, name) {
			return true
		}
	}
	return false
}

// parseBoolEnv parses a boolean environment variable value.
// Accepts "true", "1", "yes" as true; "false", "0", "no" as false
// (case-insensitive). Returns defaultVal if the value is not recognized.
func parseBoolEnv(val string, defaultVal bool) bool {
	switch strings.ToLower(val) {
	case "true", "1", "yes":
		return true
	case "false", "0", "no":
		return false
	}
	return defaultVal
}

// envOverride declares a single environment variable override.
// Each entry maps an env key (without the FIBSEQ_ prefix) to the CLI flag
// name(s) it corresponds to and a function that applies the env value.
type envOverride struct {
	envKey string
	flags  []string
	apply  func(cfg *AppConfig, policyName *string, v string)
}

// envOverrides is the declarative table of all environment variable
// overrides, grouped numeric, string, boolean.
var envOverrides = []envOverride{
	{"COUNT", []string{"n", "count"}, func(cfg *AppConfig, _ *string, v string) {
		if parsed, err := strconv.ParseUint(v, 10, 64); err == nil {
			cfg.Count = parsed
		}
	}},

	{"POLICY", []string{"policy"}, func(_ *AppConfig, policyName *string, v string) {
		*policyName = v
	}},
	{"OUTPUT", []string{"o", "output"}, func(cfg *AppConfig, _ *string, v string) {
		cfg.OutputFile = v
	}},

	{"QUIET", []string{"q", "quiet"}, func(cfg *AppConfig, _ *string, v string) {
		cfg.Quiet = parseBoolEnv(v, cfg.Quiet)
	}},
	{"VERBOSE", []string{"v", "verbose"}, func(cfg *AppConfig, _ *string, v string) {
		cfg.Verbose = parseBoolEnv(v, cfg.Verbose)
	}},
	{"STATS", []string{"stats"}, func(cfg *AppConfig, _ *string, v string) {
		cfg.Stats = parseBoolEnv(v, cfg.Stats)
	}},
	{"TUI", []string{"tui"}, func(cfg *AppConfig, _ *string, v string) {
		cfg.TUI = parseBoolEnv(v, cfg.TUI)
	}},
	{"NO_COLOR", []string{"no-color"}, func(cfg *AppConfig, _ *string, v string) {
		cfg.NoColor = parseBoolEnv(v, cfg.NoColor)
	}},
}

// applyEnvOverrides applies environment variable values to the
// configuration for any flags that were not explicitly set on the command
// line. This implements the priority: CLI flags > Environment variables >
// Defaults.
func applyEnvOverrides(cfg *AppConfig, policyName *string, fs *flag.FlagSet) {
	for _, o := range envOverrides {
		if isFlagSetAny(fs, o.flags...) {
			continue
		}
		if val := os.Getenv(EnvPrefix + o.envKey); val != "" {
			o.apply(cfg, policyName, val)
		}
	}
}
