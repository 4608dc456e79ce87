package config

import (
	"errors"
	"flag"
	"io"
	"strings"
	"testing"

	apperrors "github.com/agbru/fibseq/internal/errors"
	"github.com/agbru/fibseq/internal/fib"
)

func TestParseConfig_Defaults(t *testing.T) {
	cfg, err := ParseConfig("fibseq", nil, io.Discard)
	if err != nil {
		t.Fatalf("ParseConfig returned error: %v", err)
	}

	if cfg.Count != 10 {
		t.Errorf("Count = %d, want 10", cfg.Count)
	}
	if cfg.Policy != fib.Strict {
		t.Errorf("Policy = %v, want strict", cfg.Policy)
	}
	if cfg.Quiet || cfg.Verbose || cfg.Stats || cfg.TUI || cfg.NoColor {
		t.Errorf("boolean flags should default to false, got %+v", cfg)
	}
	if cfg.OutputFile != "" {
		t.Errorf("OutputFile = %q, want empty", cfg.OutputFile)
	}
}

func TestParseConfig_Flags(t *testing.T) {
	tests := []struct {
		name  string
		args  []string
		check func(t *testing.T, cfg AppConfig)
	}{
		{
			name: "count short flag",
			args: []string{"-n", "5"},
			check: func(t *testing.T, cfg AppConfig) {
				if cfg.Count != 5 {
					t.Errorf("Count = %d, want 5", cfg.Count)
				}
			},
		},
		{
			name: "count long flag",
			args: []string{"-count", "94"},
			check: func(t *testing.T, cfg AppConfig) {
				if cfg.Count != 94 {
					t.Errorf("Count = %d, want 94", cfg.Count)
				}
			},
		},
		{
			name: "policy wrap",
			args: []string{"-policy", "wrap"},
			check: func(t *testing.T, cfg AppConfig) {
				if cfg.Policy != fib.Wrap {
					t.Errorf("Policy = %v, want wrap", cfg.Policy)
				}
			},
		},
		{
			name: "output and verbose",
			args: []string{"-o", "seq.txt", "-v"},
			check: func(t *testing.T, cfg AppConfig) {
				if cfg.OutputFile != "seq.txt" || !cfg.Verbose {
					t.Errorf("cfg = %+v, want OutputFile=seq.txt Verbose=true", cfg)
				}
			},
		},
		{
			name: "stats tui no-color",
			args: []string{"-stats", "-tui", "-no-color"},
			check: func(t *testing.T, cfg AppConfig) {
				if !cfg.Stats || !cfg.TUI || !cfg.NoColor {
					t.Errorf("cfg = %+v, want Stats, TUI and NoColor set", cfg)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := ParseConfig("fibseq", tt.args, io.Discard)
			if err != nil {
				t.Fatalf("ParseConfig(%v) returned error: %v", tt.args, err)
			}
			tt.check(t, cfg)
		})
	}
}

func TestParseConfig_Errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"unknown policy", []string{"-policy", "truncate"}},
		{"quiet and verbose conflict", []string{"-q", "-v"}},
		{"positional argument", []string{"extra"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseConfig("fibseq", tt.args, io.Discard)
			var configErr apperrors.ConfigError
			if !errors.As(err, &configErr) {
				t.Fatalf("ParseConfig(%v) error = %v, want ConfigError", tt.args, err)
			}
		})
	}
}

func TestParseConfig_Help(t *testing.T) {
	var sb strings.Builder
	_, err := ParseConfig("fibseq", []string{"--help"}, &sb)
	if !errors.Is(err, flag.ErrHelp) {
		t.Fatalf("ParseConfig(--help) error = %v, want flag.ErrHelp", err)
	}
	if !strings.Contains(strings.ToLower(sb.String()), "usage") {
		t.Errorf("help output should contain usage, got:\n%s", sb.String())
	}
}
