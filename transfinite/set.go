package transfinite

// Rule produces the element at index i, given the previously produced
// element (nil before the first production). Returning ok=false ends the
// sequence: finite-step rules eventually return false, infinite-step rules
// never do.
type Rule func(prev *Element, i int) (Element, bool)

// Set is a restartable lazy option sequence. Take(n) materializes at most
// the first n productions; calling it again re-runs the rule from the
// start, so a Set has no consumed state.
type Set interface {
	Take(n int) []Element
}

// NewSet builds a Set from a production rule and an optional seed. The seed
// is passed to the rule as prev on the first step but is not itself
// produced.
func NewSet(rule Rule, seed *Element) Set {
	return &ruleSet{rule: rule, seed: seed}
}

type ruleSet struct {
	rule Rule
	seed *Element
}

func (s *ruleSet) Take(n int) []Element {
	var out []Element
	prev := s.seed
	for i := 0; i < n; i++ {
		e, ok := s.rule(prev, i)
		if !ok {
			break
		}
		out = append(out, e)
		el := e
		prev = &el
	}
	return out
}

// EmptySet returns the set with no members.
func EmptySet() Set {
	return NewSet(func(*Element, int) (Element, bool) {
		return Element{}, false
	}, nil)
}

// FiniteSet returns the set enumerating exactly the given members in order.
func FiniteSet(members ...Element) Set {
	return NewSet(func(_ *Element, i int) (Element, bool) {
		if i < len(members) {
			return members[i], true
		}
		return Element{}, false
	}, nil)
}

// Union interleaves several sets round-robin by production index. Take(n)
// walks indexes 0..n-1 and yields, per index, one element from every set
// still producing at that index - so the result may hold up to n*len(sets)
// elements. Duplicate values across sets are kept.
func Union(sets ...Set) Set {
	return &unionSet{sets: sets}
}

type unionSet struct {
	sets []Set
}

func (s *unionSet) Take(n int) []Element {
	taken := make([][]Element, len(s.sets))
	for i, sub := range s.sets {
		taken[i] = sub.Take(n)
	}

	var out []Element
	for i := 0; i < n; i++ {
		for _, tk := range taken {
			if i < len(tk) {
				out = append(out, tk[i])
			}
		}
	}
	return out
}

// AddEach returns the set whose members are x + m for each member m of s.
type addEachSet struct {
	x Element
	s Set
}

// AddEach maps pointwise addition of x over s.
func AddEach(x Element, s Set) Set {
	return &addEachSet{x: x, s: s}
}

func (a *addEachSet) Take(n int) []Element {
	members := a.s.Take(n)
	out := make([]Element, len(members))
	for i, m := range members {
		out[i] = addElements(m, a.x)
	}
	return out
}

// NegEach maps negation over s.
func NegEach(s Set) Set {
	return &negEachSet{s: s}
}

type negEachSet struct {
	s Set
}

func (g *negEachSet) Take(n int) []Element {
	members := g.s.Take(n)
	out := make([]Element, len(members))
	for i, m := range members {
		out[i] = negElement(m)
	}
	return out
}
