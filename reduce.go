// reduce.go normalizes operands into each kernel's convergence domain and
// reports the side record (shift amount, quadrant, factor, addend) the
// caller applies to un-normalize the result. All reducers take non-negative
// inputs; sign handling is the caller's responsibility.

package cordic

// reduceArg computes the power-of-two scaling that brings x at or below one
// in real terms; x already at or below one is left as it is. When shiftX is
// set, x is shifted accordingly; otherwise only the shift amount is found.
// When normalize is set, x is additionally scaled up until x >= one, which
// leaves it in [1, 2). The returned shift is bounded in magnitude by
// IntW + FracW, so the loops always terminate for positive x.
func (e *Engine) reduceArg(x int64, shiftX, normalize bool) (int64, int) {
	check(x >= 0, "reduce", "x must be non-negative")
	other := e.one
	shift := 0
	for x > other {
		shift++
		if shiftX {
			x >>= 1
		} else {
			other <<= 1
		}
	}
	for normalize && x < e.one {
		shift--
		if shiftX {
			x <<= 1
		} else {
			other >>= 1
		}
	}
	return x, shift
}

// reduceMulArgs scales both product operands independently; the caller
// re-applies xs+ys to the product.
func (e *Engine) reduceMulArgs(x, y int64) (rx, ry int64, xs, ys int) {
	rx, xs = e.reduceArg(x, true, false)
	ry, ys = e.reduceArg(y, true, false)
	return rx, ry, xs, ys
}

// reduceDivArgs normalizes the divisor x and scales the dividend y; the
// caller re-applies ys-xs to the quotient.
func (e *Engine) reduceDivArgs(x, y int64) (rx, ry int64, xs, ys int) {
	rx, xs = e.reduceArg(x, true, true)
	ry, ys = e.reduceArg(y, true, false)
	return rx, ry, xs, ys
}

// reduceSqrtArg finds the scaling shift without moving x, rounds it up to
// even, and only then shifts. Positive arguments below 1/4 are instead
// scaled up by even shifts until they reach 1/4, keeping x - 1/4
// non-negative for the square-root identity. The caller re-applies shift/2
// to the root.
func (e *Engine) reduceSqrtArg(x int64) (int64, int) {
	_, shift := e.reduceArg(x, false, false)
	if shift&1 == 1 {
		shift++
	}
	for x > 0 && lshift(x, -shift) < e.quarter {
		shift -= 2
	}
	return lshift(x, -shift), shift
}

// reduceExpArg splits x into an integer index and a fractional remainder.
// exp(x) = exp(i) * exp(f), and pow(b, x) folds log(b) into the same
// factor: the per-integer exp LUT is kept in floating point so the
// multiply by log(b) happens before conversion to fixed-point.
func (e *Engine) reduceExpArg(logB float64, x int64) (frac, factor int64) {
	index := (x >> e.fracW) & e.maxint
	factor = e.ToFixed(logB * e.reduceExpFactor[index])
	frac = x & (e.one - 1)
	return frac, factor
}

// reduceLogArg normalizes x into [1, 2); the returned addend log(2^s) is
// added to the fractional log by the caller.
func (e *Engine) reduceLogArg(x int64) (rx, addend int64) {
	rx, shift := e.reduceArg(x, true, true)
	return rx, e.reduceLogAddend[e.fracW+shift]
}

// reduceNormArgs shifts both operands by the larger of their individual
// shifts, preserving their ratio; the caller re-applies the shift to the
// magnitude.
func (e *Engine) reduceNormArgs(x, y int64) (rx, ry int64, shift int) {
	_, xs := e.reduceArg(x, false, false)
	_, ys := e.reduceArg(y, false, false)
	shift = max(xs, ys)
	return x >> shift, y >> shift, shift
}

// reduceAngleArg looks up the addend and quadrant keyed by the integer
// part of the angle. After reduction the angle's integer excess over its
// quadrant boundary is removed, leaving it in the first quadrant.
func (e *Engine) reduceAngleArg(a int64) (int64, int) {
	check(a >= 0, "reduceAngle", "angle must be non-negative")
	index := (a >> e.fracW) & e.maxint
	a += e.reduceAngleAddend[index]
	quad := e.reduceAngleQuadrant[index]
	// The table only accounts for the integer part; the fractional part
	// can carry the angle past pi/2 (circularAtan[0] is atan(1) = pi/4).
	if halfPi := e.circularAtan[0] << 1; a >= halfPi {
		a -= halfPi
		quad = (quad + 1) % 4
	}
	return a, quad
}
