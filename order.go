package surreal

// The order relation is Conway's recursive definition:
//
//	x <= y  iff  no left option xl of x has y <= xl,
//	        and  no right option yr of y has yr <= x.
//
// Both option sets empty on the relevant sides is the vacuous base case, so
// the recursion bottoms out at {|} without any explicit depth bound;
// termination follows from the well-foundedness of construction.
//
// The derived relation is a valid total order over well-formed numbers only.
// Pseudo structures (reachable through the unchecked mint) may violate
// antisymmetry or transitivity; their ordering behavior is out of contract.

// leqID reports x <= y, memoized on the ID pair.
//
// The memo lock is released before recursing: leqID re-enters itself through
// the children, and holding the lock across that recursion would self-deadlock.
// Two goroutines may race to fill the same entry; both compute the identical
// boolean, so the duplicate write is harmless.
func (u *Universe) leqID(x, y ID) bool {
	key := idPair{x, y}

	u.leqMu.Lock()
	if v, ok := u.leq[key]; ok {
		u.leqMu.Unlock()
		return v
	}
	u.leqMu.Unlock()

	result := true
	for _, xl := range u.leftOf(x) {
		if u.leqID(y, xl) {
			result = false
			break
		}
	}
	if result {
		for _, yr := range u.rightOf(y) {
			if u.leqID(yr, x) {
				result = false
				break
			}
		}
	}

	u.leqMu.Lock()
	u.leq[key] = result
	u.leqMu.Unlock()
	return result
}

// cmpID is the derived three-way comparison over IDs:
// not x<=y means greater, else not y<=x means less, else equal.
func (u *Universe) cmpID(x, y ID) int {
	if !u.leqID(x, y) {
		return 1
	}
	if !u.leqID(y, x) {
		return -1
	}
	return 0
}

// LessEq reports x <= y under the recursive order relation.
func (x Number) LessEq(y Number) bool {
	u := x.sameUniverse(y)
	return u.leqID(x.id, y.id)
}

// Eq reports mathematical equality: x <= y and y <= x.
//
// This is the ONLY correct equality over numbers. Comparing handles with ==
// or via ID checks structural identity, which is strictly finer.
func (x Number) Eq(y Number) bool {
	return x.LessEq(y) && y.LessEq(x)
}

// Cmp returns -1 if x < y, 0 if x == y, +1 if x > y.
func (x Number) Cmp(y Number) int {
	u := x.sameUniverse(y)
	return u.cmpID(x.id, y.id)
}

// Less reports x < y.
func (x Number) Less(y Number) bool { return x.Cmp(y) < 0 }

// Greater reports x > y.
func (x Number) Greater(y Number) bool { return x.Cmp(y) > 0 }

// GreaterEq reports x >= y.
func (x Number) GreaterEq(y Number) bool { return x.Cmp(y) >= 0 }
