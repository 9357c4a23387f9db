package surreal

import "fmt"

// Number is an immutable handle to an interned structure in one universe.
//
// The zero value is not a valid number; obtain handles from a Universe.
// Handles are cheap to copy and safe for concurrent use. Operations return
// new handles - there is no in-place mutation, so the compound-assignment
// idiom is rebinding: x = x.Add(y).
//
// Comparing handles with == checks structural identity (same universe, same
// interned structure). That implies mathematical equality but is strictly
// finer than it: use Eq for the mathematical relation.
type Number struct {
	u  *Universe
	id ID
}

// Universe returns the universe this handle belongs to.
func (x Number) Universe() *Universe { return x.u }

// ID returns the handle's content-addressed structural identity.
func (x Number) ID() ID { return x.id }

// Zero returns {|}, the additive identity.
func (u *Universe) Zero() Number {
	return Number{u, u.intern(nil, nil)}
}

// One returns {0|}, the multiplicative identity.
func (u *Universe) One() Number {
	zero := u.Zero()
	return Number{u, u.intern([]ID{zero.id}, nil)}
}

// New constructs a number from the given option sets, validating that every
// left option is strictly less than every right option when both sets are
// non-empty. On violation it returns a *WellFormingError.
//
// The structure is interned before validation runs, regardless of outcome;
// a rejected construction still leaves its (pseudo) structure in the cache.
// This mirrors the unchecked path the arithmetic engine uses internally.
func (u *Universe) New(left, right []Number) (Number, error) {
	x := u.newUnchecked(left, right)

	s := u.lookup(x.id)
	if len(s.left) > 0 && len(s.right) > 0 {
		maxLeft := s.left[len(s.left)-1]
		minRight := s.right[0]
		if u.leqID(minRight, maxLeft) {
			return Number{}, &WellFormingError{
				Left:  Number{u, maxLeft},
				Right: Number{u, minRight},
			}
		}
	}
	return x, nil
}

// newUnchecked mints a structure without the well-forming check. Internal
// recursive construction relies on closure theorems instead of re-validation.
func (u *Universe) newUnchecked(left, right []Number) Number {
	return Number{u, u.intern(u.idsOf(left), u.idsOf(right))}
}

// idsOf projects handles to IDs, rejecting handles from other universes.
func (u *Universe) idsOf(nums []Number) []ID {
	ids := make([]ID, len(nums))
	for i, n := range nums {
		if n.u == nil {
			panic("surreal: zero-value Number used as an option")
		}
		if n.u != u {
			panic(fmt.Sprintf("surreal: option handle from universe %s used in universe %s", n.u.label, u.label))
		}
		ids[i] = n.id
	}
	return ids
}

// Left returns a copy of x's left options, sorted ascending.
func (x Number) Left() []Number {
	return x.childHandles(x.u.leftOf(x.id))
}

// Right returns a copy of x's right options, sorted ascending.
func (x Number) Right() []Number {
	return x.childHandles(x.u.rightOf(x.id))
}

func (x Number) childHandles(ids []ID) []Number {
	out := make([]Number, len(ids))
	for i, id := range ids {
		out[i] = Number{x.u, id}
	}
	return out
}

// Add returns x + y.
func (x Number) Add(y Number) Number {
	u := x.sameUniverse(y)
	return Number{u, u.addID(x.id, y.id)}
}

// Sub returns x - y, defined as x + (-y).
func (x Number) Sub(y Number) Number {
	return x.Add(y.Neg())
}

// Neg returns -x.
func (x Number) Neg() Number {
	if x.u == nil {
		panic("surreal: zero-value Number used in an operation")
	}
	return Number{x.u, x.u.negID(x.id)}
}

// Mul returns x * y.
func (x Number) Mul(y Number) Number {
	u := x.sameUniverse(y)
	return Number{u, u.mulID(x.id, y.id)}
}

// Rem returns the remainder of x by y, computed by repeated subtraction
// while x >= y.
//
// CAUTION: there is no termination guard. A divisor that is zero, negative,
// or otherwise never exceeded by the shrinking dividend loops forever.
// Ensuring the divisor is strictly positive is the caller's responsibility;
// use RemChecked for a precondition-checked variant.
func (x Number) Rem(y Number) Number {
	x.sameUniverse(y)
	total := x
	for total.GreaterEq(y) {
		total = total.Sub(y)
	}
	return total
}

// RemChecked is Rem with a precondition check: it returns a *DivisorError
// unless the divisor is strictly positive, which is exactly the condition
// under which the repeated-subtraction loop terminates.
func (x Number) RemChecked(y Number) (Number, error) {
	u := x.sameUniverse(y)
	if !u.Zero().Less(y) {
		return Number{}, &DivisorError{Divisor: y}
	}
	return x.Rem(y), nil
}

// sameUniverse returns the shared universe of x and y, panicking on misuse.
// Mixing universes cannot be reported as an error: the arithmetic and order
// operations are total over well-formed handles by contract.
func (x Number) sameUniverse(y Number) *Universe {
	if x.u == nil || y.u == nil {
		panic("surreal: zero-value Number used in an operation")
	}
	if x.u != y.u {
		panic(fmt.Sprintf("surreal: mixing handles from universes %s and %s", x.u.label, y.u.label))
	}
	return x.u
}
