package surreal

// Arithmetic implements Conway's defining equations. Every recursive call
// strictly reduces at least one operand's construction depth, which is the
// termination argument for all three operations.
//
// Results are minted through the unchecked intern: by the theory's closure
// theorems, recursively built results from well-formed operands are
// themselves well-formed, so re-validating left<right at every recursion
// node would be pure overhead. Whether the same holds when pseudo operands
// leak in through the unchecked mint is NOT proven here; the engine neither
// checks nor repairs such results.

// addID computes x + y, memoized on the operand pair.
//
//	Left(x+y)  = {xl+y} ∪ {yl+x}
//	Right(x+y) = {xr+y} ∪ {yr+x}
func (u *Universe) addID(x, y ID) ID {
	key := idPair{x, y}

	u.addMu.Lock()
	if v, ok := u.add[key]; ok {
		u.addMu.Unlock()
		return v
	}
	u.addMu.Unlock()

	var left []ID
	for _, xl := range u.leftOf(x) {
		left = append(left, u.addID(xl, y))
	}
	for _, yl := range u.leftOf(y) {
		left = append(left, u.addID(yl, x))
	}

	var right []ID
	for _, xr := range u.rightOf(x) {
		right = append(right, u.addID(xr, y))
	}
	for _, yr := range u.rightOf(y) {
		right = append(right, u.addID(yr, x))
	}

	result := u.intern(left, right)

	u.addMu.Lock()
	u.add[key] = result
	u.addMu.Unlock()
	return result
}

// negID computes -x, memoized on x: swap sides, negate members.
//
//	Left(-x)  = {-xr : xr ∈ Right(x)}
//	Right(-x) = {-xl : xl ∈ Left(x)}
func (u *Universe) negID(x ID) ID {
	u.negMu.Lock()
	if v, ok := u.neg[x]; ok {
		u.negMu.Unlock()
		return v
	}
	u.negMu.Unlock()

	var left []ID
	for _, xr := range u.rightOf(x) {
		left = append(left, u.negID(xr))
	}

	var right []ID
	for _, xl := range u.leftOf(x) {
		right = append(right, u.negID(xl))
	}

	result := u.intern(left, right)

	u.negMu.Lock()
	u.neg[x] = result
	u.negMu.Unlock()
	return result
}

// mulID computes x * y, memoized on the operand pair, per the product rule:
//
//	Left(xy)  = {xl*y + x*yl - xl*yl} ∪ {xr*y + x*yr - xr*yr}
//	Right(xy) = {xl*y + x*yr - xl*yr} ∪ {xr*y + x*yl - xr*yl}
//
// Each term recurses through addID/negID/mulID on operands of strictly
// smaller depth in at least one coordinate.
func (u *Universe) mulID(x, y ID) ID {
	key := idPair{x, y}

	u.mulMu.Lock()
	if v, ok := u.mul[key]; ok {
		u.mulMu.Unlock()
		return v
	}
	u.mulMu.Unlock()

	xls, xrs := u.leftOf(x), u.rightOf(x)
	yls, yrs := u.leftOf(y), u.rightOf(y)

	var left []ID
	for _, xl := range xls {
		for _, yl := range yls {
			left = append(left, u.mulTerm(x, y, xl, yl))
		}
	}
	for _, xr := range xrs {
		for _, yr := range yrs {
			left = append(left, u.mulTerm(x, y, xr, yr))
		}
	}

	var right []ID
	for _, xl := range xls {
		for _, yr := range yrs {
			right = append(right, u.mulTerm(x, y, xl, yr))
		}
	}
	for _, xr := range xrs {
		for _, yl := range yls {
			right = append(right, u.mulTerm(x, y, xr, yl))
		}
	}

	result := u.intern(left, right)

	u.mulMu.Lock()
	u.mul[key] = result
	u.mulMu.Unlock()
	return result
}

// mulTerm computes the common product-rule term a*y + x*b - a*b for options
// a of x and b of y.
func (u *Universe) mulTerm(x, y, a, b ID) ID {
	return u.addID(u.addID(u.mulID(a, y), u.mulID(x, b)), u.negID(u.mulID(a, b)))
}
