package ui

import (
	"os"
	"testing"
)

// restoreTheme resets the active theme after a test mutates global state.
func restoreTheme(t *testing.T) {
	t.Helper()
	prev := GetCurrentTheme()
	t.Cleanup(func() { SetTheme(prev.Name) })
}

func TestSetTheme(t *testing.T) {
	restoreTheme(t)

	tests := []struct {
		name string
		want string
	}{
		{"dark", "dark"},
		{"light", "light"},
		{"none", "none"},
		{"unknown", "dark"},
	}

	for _, tt := range tests {
		SetTheme(tt.name)
		if got := GetCurrentTheme().Name; got != tt.want {
			t.Errorf("SetTheme(%q): active theme = %q, want %q", tt.name, got, tt.want)
		}
	}
}

func TestInitTheme(t *testing.T) {
	restoreTheme(t)

	t.Run("noColor flag disables colors", func(t *testing.T) {
		InitTheme(true)
		if ColorSuccess() != "" || ColorReset() != "" {
			t.Error("colors should be empty with noColor=true")
		}
	})

	t.Run("NO_COLOR env disables colors", func(t *testing.T) {
		t.Setenv("NO_COLOR", "1")
		InitTheme(false)
		if GetCurrentTheme().Name != "none" {
			t.Errorf("active theme = %q, want none", GetCurrentTheme().Name)
		}
	})

	t.Run("defaults to dark", func(t *testing.T) {
		// t.Setenv registers restoration; unset so LookupEnv misses.
		t.Setenv("NO_COLOR", "placeholder")
		os.Unsetenv("NO_COLOR")
		InitTheme(false)
		if GetCurrentTheme().Name != "dark" {
			t.Errorf("active theme = %q, want dark", GetCurrentTheme().Name)
		}
	})
}

func TestGetCurrentTUITheme(t *testing.T) {
	restoreTheme(t)

	SetTheme("none")
	if GetCurrentTUITheme() != NoColorTUITheme {
		t.Error("none theme should map to NoColorTUITheme")
	}

	SetTheme("dark")
	if GetCurrentTUITheme() != DarkTUITheme {
		t.Error("dark theme should map to DarkTUITheme")
	}
}
