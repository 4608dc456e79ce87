// Package ui provides theme and color support for the application's user
// interface. It defines color schemes and provides ANSI escape code
// functions for consistent styling across the CLI and TUI presentation
// layers.
//
// The canonical sequence lines on stdout are never colorized; themes only
// apply to auxiliary output (summaries, errors, the TUI).
package ui
