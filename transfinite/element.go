package transfinite

import (
	"strconv"

	"github.com/roach88/surreal"
)

// Element is a tagged member of an option production: either a finite
// number or a nested infinite one. The zero value is not a valid element.
type Element struct {
	fin surreal.Number
	inf *Number
}

// Fin tags a finite number as an element.
func Fin(x surreal.Number) Element { return Element{fin: x} }

// Inf tags an infinite number as an element.
func Inf(x *Number) Element { return Element{inf: x} }

// Finite returns the finite number and true when the element carries one.
func (e Element) Finite() (surreal.Number, bool) {
	if e.inf != nil {
		return surreal.Number{}, false
	}
	return e.fin, true
}

// Infinite returns the infinite number and true when the element carries one.
func (e Element) Infinite() (*Number, bool) {
	return e.inf, e.inf != nil
}

// String renders finite elements by their float projection and infinite
// ones by their name or set rendering.
func (e Element) String() string {
	if e.inf != nil {
		return e.inf.String()
	}
	return strconv.FormatFloat(e.fin.Float(), 'g', -1, 64)
}

// mustFinite unwraps an element that is finite by construction.
func mustFinite(e Element) surreal.Number {
	f, ok := e.Finite()
	if !ok {
		panic("transfinite: infinite element where a finite one is required")
	}
	return f
}

// addElements adds two elements, collapsing to finite arithmetic whenever
// both sides have a known finite value and falling back to the infinite
// combinators otherwise.
func addElements(a, b Element) Element {
	af, aFin := a.Finite()
	bf, bFin := b.Finite()
	if !aFin {
		if v, ok := a.inf.knownFinite(); ok {
			af, aFin = v, true
		}
	}
	if !bFin {
		if v, ok := b.inf.knownFinite(); ok {
			bf, bFin = v, true
		}
	}

	switch {
	case aFin && bFin:
		return Fin(af.Add(bf))
	case aFin:
		return Inf(FromFinite(af).Add(b.inf))
	case bFin:
		return Inf(a.inf.Add(FromFinite(bf)))
	default:
		return Inf(a.inf.Add(b.inf))
	}
}

// negElement negates an element through whichever engine carries it.
func negElement(e Element) Element {
	if f, ok := e.Finite(); ok {
		return Fin(f.Neg())
	}
	return Inf(e.inf.Neg())
}
