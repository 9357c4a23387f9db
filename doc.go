// Package surreal implements J. H. Conway's surreal numbers over finite
// option sets: exact construction, a total order, and recursive arithmetic.
//
// A surreal number is determined by two sets of previously constructed
// surreal numbers, its left and right options, where every left option must
// be strictly less than every right option. The package follows Conway's
// defining equations directly; it is an exact symbolic model, not a fast
// numeric type.
//
// ARCHITECTURE:
//
// Content-Addressed Structures:
// Every constructed number is interned into a Universe as a canonical
// (sorted-left, sorted-right) structure, identified by a domain-separated
// SHA-256 hash over its children's IDs. Interning the same sorted content
// always yields the same ID, which is what makes memoization sound.
//
// Identity vs Equality:
// Equal IDs imply equal values, but the converse does not hold - distinct
// structures can denote the same number (for example {1 1|} and the result
// of converting 2.0). All mathematical comparison goes through the recursive
// order relation (Number.Eq, Number.Cmp), never through ID comparison.
//
// Universes:
// A Universe is the explicit context object owning the structure cache and
// the memo tables for order and arithmetic. Handles from different universes
// must not be mixed; doing so is an API-misuse panic, not an error return.
// Caches are append-only for the universe's lifetime - memory grows with the
// number of distinct structures and operation pairs ever computed.
//
// Thread-safety model:
//   - every table is guarded by its own mutex, held only for a single
//     lookup or insert, never across a recursive call
//   - concurrent duplicate computation of a missing entry is benign: both
//     threads derive the identical result, one write is wasted work
//
// The lazy/infinite-set side of the theory (omega, epsilon) lives in the
// transfinite package; this package only provides the finite hand-off.
package surreal
