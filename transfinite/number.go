package transfinite

import (
	"strconv"
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/roach88/surreal"
)

// Number is a surreal number whose option sets are lazy productions.
//
// Unlike finite handles, infinite numbers are not interned and carry no
// order relation: two infinite numbers can only be inspected through Take
// on their sets or compared after truncation to finite handles.
type Number struct {
	u     *surreal.Universe
	left  Set
	right Set

	// name is an optional display name ("ω", "ϵ"), NFC-normalized so the
	// same glyph always renders with one byte sequence.
	name string

	// fin is set on degenerate wrappers built by FromFinite; it lets the
	// combinators collapse back to exact finite arithmetic.
	fin *surreal.Number
}

// New builds an infinite number over the given universe from two option
// productions and an optional display name.
func New(u *surreal.Universe, left, right Set, name string) *Number {
	return &Number{u: u, left: left, right: right, name: norm.NFC.String(name)}
}

// FromFinite wraps a finite handle as a degenerate infinite number whose
// productions enumerate the handle's own options.
func FromFinite(x surreal.Number) *Number {
	v := x
	return &Number{
		u:     x.Universe(),
		left:  FiniteSet(finElements(x.Left())...),
		right: FiniteSet(finElements(x.Right())...),
		fin:   &v,
	}
}

func finElements(nums []surreal.Number) []Element {
	out := make([]Element, len(nums))
	for i, n := range nums {
		out[i] = Fin(n)
	}
	return out
}

// Omega returns ω = {1, 2, 3, ... |}, the simplest infinite ordinal.
func Omega(u *surreal.Universe) *Number {
	left := NewSet(func(_ *Element, i int) (Element, bool) {
		return Fin(u.FromFloat(float64(i) + 1.0)), true
	}, nil)
	return New(u, left, EmptySet(), "ω")
}

// Epsilon returns ϵ = {0 | ..., 1/4, 1/2}, the simplest positive
// infinitesimal. The right production halves from one: each step is
// {0 | previous}.
func Epsilon(u *surreal.Universe) *Number {
	zero := u.Zero()

	left := NewSet(func(_ *Element, i int) (Element, bool) {
		if i == 0 {
			return Fin(zero), true
		}
		return Element{}, false
	}, nil)

	seed := Fin(u.One())
	right := NewSet(func(prev *Element, _ int) (Element, bool) {
		next, err := u.New([]surreal.Number{zero}, []surreal.Number{mustFinite(*prev)})
		if err != nil {
			panic(err) // halving below a positive bound is well formed
		}
		return Fin(next), true
	}, &seed)

	return New(u, left, right, "ϵ")
}

// Name returns the display name, empty when unnamed.
func (x *Number) Name() string { return x.name }

// Left returns the left option production.
func (x *Number) Left() Set { return x.left }

// Right returns the right option production.
func (x *Number) Right() Set { return x.right }

// knownFinite returns the wrapped finite value of a degenerate number.
func (x *Number) knownFinite() (surreal.Number, bool) {
	if x.fin == nil {
		return surreal.Number{}, false
	}
	return *x.fin, true
}

// Add returns x + y through the addition combinators:
// each side of the sum is {x + yo} ∪ {y + xo} over that side's options.
func (x *Number) Add(y *Number) *Number {
	return &Number{
		u:     x.u,
		left:  Union(AddEach(Inf(x), y.left), AddEach(Inf(y), x.left)),
		right: Union(AddEach(Inf(x), y.right), AddEach(Inf(y), x.right)),
	}
}

// Neg returns -x: swap sides, negate members.
func (x *Number) Neg() *Number {
	return &Number{
		u:     x.u,
		left:  NegEach(x.right),
		right: NegEach(x.left),
	}
}

// Sub returns x - y, defined as x + (-y).
func (x *Number) Sub(y *Number) *Number {
	return x.Add(y.Neg())
}

// Finite truncates x to the first precision terms of each production,
// recursively resolving nested infinite elements with the same budget, and
// hands the result to the validating finite constructor.
//
// ok is false when an element fails to resolve within the budget or the
// truncated structure is not well formed. Failure is an absence signal, not
// an error: a larger budget may still succeed.
func (x *Number) Finite(precision int) (surreal.Number, bool) {
	left, ok := resolveSide(x.left, precision)
	if !ok {
		return surreal.Number{}, false
	}
	right, ok := resolveSide(x.right, precision)
	if !ok {
		return surreal.Number{}, false
	}

	out, err := x.u.New(left, right)
	if err != nil {
		return surreal.Number{}, false
	}
	return out, true
}

func resolveSide(s Set, precision int) ([]surreal.Number, bool) {
	var out []surreal.Number
	for _, e := range s.Take(precision) {
		if f, ok := e.Finite(); ok {
			out = append(out, f)
			continue
		}
		f, ok := e.inf.Finite(precision)
		if !ok {
			return nil, false
		}
		out = append(out, f)
	}
	return out, true
}

// String renders degenerate wrappers by their finite projection and proper
// infinite numbers as "< members | members >", showing at most five members
// per side followed by "...".
func (x *Number) String() string {
	if x.fin != nil {
		return strconv.FormatFloat(x.fin.Float(), 'g', -1, 64)
	}

	var b strings.Builder
	b.WriteString("< ")
	writeSide(&b, x.left)
	b.WriteString("| ")
	writeSide(&b, x.right)
	b.WriteString(">")
	return b.String()
}

func writeSide(b *strings.Builder, s Set) {
	for i, e := range s.Take(6) {
		if i == 5 {
			b.WriteString("... ")
			break
		}
		b.WriteString(e.String())
		b.WriteString(" ")
	}
}
