package fib

import (
	"errors"
	"testing"
)

// FuzzCalculate_Strict checks structural invariants of the strict
// calculator for arbitrary indices: the recurrence inside the
// representable range and a typed overflow error past it.
func FuzzCalculate_Strict(f *testing.F) {
	f.Add(uint64(0))
	f.Add(uint64(1))
	f.Add(uint64(9))
	f.Add(uint64(MaxStrictIndex))
	f.Add(uint64(MaxStrictIndex + 1))

	calc := New(Strict)
	f.Fuzz(func(t *testing.T, n uint64) {
		got, err := calc.Calculate(n)

		if n > MaxStrictIndex {
			var overflow *OverflowError
			if !errors.As(err, &overflow) {
				t.Fatalf("Calculate(%d) error = %v, want *OverflowError", n, err)
			}
			return
		}

		if err != nil {
			t.Fatalf("Calculate(%d) returned error: %v", n, err)
		}
		if n <= 1 && got != n {
			t.Fatalf("Calculate(%d) = %d, want %d", n, got, n)
		}
		if n >= 2 {
			fn1, _ := calc.Calculate(n - 1)
			fn2, _ := calc.Calculate(n - 2)
			if got != fn1+fn2 {
				t.Fatalf("Calculate(%d) = %d, want F(n-1)+F(n-2) = %d", n, got, fn1+fn2)
			}
		}
	})
}

// FuzzCalculate_Wrap checks that the wrap policy never errors and agrees
// with the strict calculator modulo 2^64 via the recurrence.
func FuzzCalculate_Wrap(f *testing.F) {
	f.Add(uint64(94))
	f.Add(uint64(200))

	calc := New(Wrap)
	f.Fuzz(func(t *testing.T, n uint64) {
		if n > 10_000 {
			n %= 10_000 // keep the linear loop cheap under fuzzing
		}
		got, err := calc.Calculate(n)
		if err != nil {
			t.Fatalf("Calculate(%d) returned error: %v", n, err)
		}
		if n >= 2 {
			fn1, _ := calc.Calculate(n - 1)
			fn2, _ := calc.Calculate(n - 2)
			if got != fn1+fn2 { // uint64 addition wraps, matching the policy
				t.Fatalf("Calculate(%d) = %d, want wrapped F(n-1)+F(n-2) = %d", n, got, fn1+fn2)
			}
		}
		if _, err := calc.Calculate(n); err != nil {
			t.Fatalf("repeat Calculate(%d) returned error: %v", n, err)
		}
	})
}
