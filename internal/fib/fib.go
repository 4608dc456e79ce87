// Package fib implements Fibonacci computation over fixed-width uint64
// arithmetic using iterative accumulation: O(n) time, O(1) space.
//
// The sequence is defined by F(0)=0, F(1)=1, F(k)=F(k-1)+F(k-2) for k>=2.
// Because the value domain is uint64, the sum of the two accumulators can
// exceed math.MaxUint64; what happens then is governed by an explicit
// Policy rather than left to platform arithmetic.
package fib

import (
	"fmt"
	"math"
)

// MaxStrictIndex is the largest index whose Fibonacci number fits in a
// uint64. F(93) = 12200160415121876738 < 2^64; F(94) overflows.
const MaxStrictIndex = 93

// Policy selects the behavior applied when an intermediate sum exceeds
// math.MaxUint64. The policy is fixed per Calculator and applied uniformly.
type Policy int

const (
	// Strict reports overflow as an *OverflowError. This is the default:
	// a silently wrong value is worse than a failed calculation.
	Strict Policy = iota

	// Wrap reduces each sum modulo 2^64, Go's native uint64 semantics.
	// This reproduces the historical behavior of fixed-width unsigned
	// arithmetic.
	Wrap

	// Saturate pins the result at math.MaxUint64 from the first
	// overflowing term onward.
	Saturate
)

// String returns the policy name as accepted by ParsePolicy.
func (p Policy) String() string {
	switch p {
	case Wrap:
		return "wrap"
	case Saturate:
		return "saturate"
	case Strict:
		return "strict"
	default:
		return fmt.Sprintf("policy(%d)", int(p))
	}
}

// ParsePolicy converts a policy name into a Policy. Accepted names are
// "strict", "wrap" and "saturate".
func ParsePolicy(s string) (Policy, error) {
	switch s {
	case "strict":
		return Strict, nil
	case "wrap":
		return Wrap, nil
	case "saturate":
		return Saturate, nil
	default:
		return Strict, fmt.Errorf("unknown overflow policy %q (want strict, wrap or saturate)", s)
	}
}

// OverflowError reports that F(N) does not fit in a uint64 under the
// Strict policy.
type OverflowError struct {
	// N is the requested index.
	N uint64
}

// Error returns a message naming the offending index and the largest
// representable one.
func (e *OverflowError) Error() string {
	return fmt.Sprintf("fibonacci overflow: F(%d) exceeds uint64 (largest representable index is %d)", e.N, MaxStrictIndex)
}

// Term pairs a sequence index with its computed value.
type Term struct {
	Index uint64
	Value uint64
}

// Calculator computes Fibonacci numbers under a fixed overflow policy.
// It is stateless apart from the policy: Calculate is a pure function of
// its argument and safe for concurrent use.
type Calculator struct {
	policy Policy
}

// New returns a Calculator applying the given overflow policy.
func New(policy Policy) *Calculator {
	return &Calculator{policy: policy}
}

// Policy returns the calculator's overflow policy.
func (c *Calculator) Policy() Policy { return c.policy }

// Name identifies the algorithm, for logs and metrics labels.
func (c *Calculator) Name() string { return "iterative" }

// Calculate returns F(n).
//
// n <= 1 returns n directly; the base cases never enter the loop.
// Otherwise two accumulators a, b are stepped from 2 through n so that
// immediately before the update at step k, a = F(k-2) and b = F(k-1),
// and after it b = F(k). The loop returns b = F(n).
//
// An overflowing sum (detectable as temp < b, since b is the larger
// operand) is handled per the calculator's Policy; only Strict can
// return a non-nil error, and only for n > MaxStrictIndex.
func (c *Calculator) Calculate(n uint64) (uint64, error) {
	if n <= 1 {
		return n, nil
	}

	var a, b uint64 = 0, 1
	for k := uint64(2); k <= n; k++ {
		temp := a + b
		if temp < b {
			switch c.policy {
			case Wrap:
				// keep the mod-2^64 sum
			case Saturate:
				// every later term saturates too
				return math.MaxUint64, nil
			default:
				return 0, &OverflowError{N: n}
			}
		}
		a = b
		b = temp
	}
	return b, nil
}
