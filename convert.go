package surreal

import "math"

// floatEps is the tolerance for the FromFloat search loop: one ulp at 1.0,
// the best a float64 target can be approximated to in general.
var floatEps = math.Nextafter(1, 2) - 1

// Float projects x onto float64:
//
//	both sides empty        -> 0.0
//	left empty              -> Float(min Right) - 1
//	right empty             -> Float(max Left) + 1
//	both non-empty          -> (Float(max Left) + Float(min Right)) / 2
//
// Exact for every value reachable in finitely many construction steps whose
// magnitude and denominator fit a float64.
func (x Number) Float() float64 {
	s := x.u.lookup(x.id)
	switch {
	case len(s.left) == 0 && len(s.right) == 0:
		return 0.0
	case len(s.left) == 0:
		return (Number{x.u, s.right[0]}).Float() - 1.0
	case len(s.right) == 0:
		return (Number{x.u, s.left[len(s.left)-1]}).Float() + 1.0
	default:
		return ((Number{x.u, s.left[len(s.left)-1]}).Float() + (Number{x.u, s.right[0]}).Float()) / 2.0
	}
}

// FromFloat converts f to the surreal number whose projection best
// approximates it, by an iterative bisection-style search: walk outward in
// unit steps past the target, then halve the increment ({0|inc} above zero,
// {inc|0} below) and re-walk from the last undershoot, until the projection
// is within floatEps of f.
//
// The search is a consumer of New, Add and the order relation; it performs
// no unchecked construction.
func (u *Universe) FromFloat(f float64) Number {
	zero := u.Zero()
	one := u.One()
	negOne := u.mustNew(nil, []Number{zero})

	increment := one
	if f <= 0 {
		increment = negOne
	}
	largeBound := zero
	smallBound := zero

	for math.Abs(f-largeBound.Float()) > floatEps {
		largeBound = smallBound
		for math.Abs(f) > math.Abs(largeBound.Float()) {
			smallBound = largeBound
			largeBound = largeBound.Add(increment)
		}

		if increment.Greater(zero) {
			increment = u.mustNew([]Number{zero}, []Number{increment})
		} else {
			increment = u.mustNew([]Number{increment}, []Number{zero})
		}
	}

	return largeBound
}

// DivApprox returns the surreal number approximating x / y, computed over
// the float64 projections and converted back with FromFloat. It is
// explicitly approximate - exact division is not part of the engine.
func (x Number) DivApprox(y Number) Number {
	u := x.sameUniverse(y)
	return u.FromFloat(x.Float() / y.Float())
}

// mustNew is New for constructions that cannot be malformed, such as the
// halving steps of the FromFloat search.
func (u *Universe) mustNew(left, right []Number) Number {
	x, err := u.New(left, right)
	if err != nil {
		panic(err)
	}
	return x
}
