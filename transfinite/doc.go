// Package transfinite models surreal numbers with potentially infinite
// option sets - the values, like ω and ϵ, whose options are produced by a
// rule instead of enumerated.
//
// Option sets are restartable lazy sequences: a Set is defined by an
// explicit production rule mapping an index (and the previously produced
// element) to an optional next element. Finite-step rules eventually stop
// producing; infinite-step rules never do. Take(n) materializes a bounded
// prefix and may be called repeatedly.
//
// The finite hand-off to the core engine has two directions:
//
//   - FromFinite wraps a finite handle as a degenerate infinite number
//     whose productions enumerate the handle's options
//   - Number.Finite truncates an infinite number to its first N terms,
//     recursively resolving nested infinite elements, and reports failure
//     (ok=false) when resolution does not complete within the budget
//
// Arithmetic here is deliberately incomplete: Add, Neg and Sub are defined
// through set combinators; there is no multiplication, remainder or order
// over infinite numbers.
package transfinite
