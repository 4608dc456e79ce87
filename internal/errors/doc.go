// Package apperrors defines the application's error taxonomy and process
// exit codes.
//
// The program has exactly two runtime failure modes: arithmetic overflow
// of the fixed-width calculator (owned by the fib package as
// *fib.OverflowError) and a write failure on the output destination
// (WriteError). Configuration mistakes are reported as ConfigError before
// any computation starts.
package apperrors
