// Package testutil provides deterministic fixtures for surreal number tests.
//
// All helpers take an explicit *surreal.Universe so each test can run against
// an isolated, empty cache and produce reproducible structures.
package testutil

import (
	"testing"

	"github.com/roach88/surreal"
)

// MustNew constructs a validated number, failing the test on a
// well-forming violation.
func MustNew(t *testing.T, u *surreal.Universe, left, right []surreal.Number) surreal.Number {
	t.Helper()
	x, err := u.New(left, right)
	if err != nil {
		t.Fatalf("construct %v | %v: %v", left, right, err)
	}
	return x
}

// Int builds the integer n by repeated addition from one (negation for
// negative n). Exercises the arithmetic engine rather than FromFloat.
func Int(t *testing.T, u *surreal.Universe, n int) surreal.Number {
	t.Helper()
	total := u.Zero()
	one := u.One()
	if n < 0 {
		one = one.Neg()
		n = -n
	}
	for i := 0; i < n; i++ {
		total = total.Add(one)
	}
	return total
}

// DayGen returns all numbers born by the given day, sorted ascending.
//
// Day 1 is {0}. Each later day inserts a new number below the smallest,
// between each adjacent pair, and above the largest, yielding 2^days - 1
// numbers. This is the canonical finite population for property tests.
func DayGen(t *testing.T, u *surreal.Universe, days int) []surreal.Number {
	t.Helper()
	if days <= 1 {
		return []surreal.Number{u.Zero()}
	}

	v := DayGen(t, u, days-1)
	w := make([]surreal.Number, 0, 2*len(v)+1)

	w = append(w, MustNew(t, u, nil, v[:1]))
	for i := range v {
		w = append(w, v[i])
		if i != len(v)-1 {
			w = append(w, MustNew(t, u, v[i:i+1], v[i+1:i+2]))
		}
	}
	w = append(w, MustNew(t, u, v[len(v)-1:], nil))

	return w
}
