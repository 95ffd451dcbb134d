package cordic

// Sqrt returns the square root of non-negative x.
//
// The identity sqrt(x) = sqrt((x+1/4)^2 - (x-1/4)^2) turns the root into a
// hyperbolic norm, so the reduced argument feeds Normh directly. The
// reduction shift is rounded up to even and half of it re-applied to the
// root.
func (e *Engine) Sqrt(x int64) int64 {
	e.logger.Op1(OpSqrt, x)
	check(x >= 0, "sqrt", "x must be non-negative")
	if x == 0 {
		return 0
	}

	var shift int
	if e.doReduce {
		x, shift = e.reduceSqrtArg(x)
	}

	n := e.Normh(x+e.quarter, x-e.quarter)
	if e.doReduce {
		n = lshift(n, shift/2)
	}
	return n
}

// OneOverSqrt returns 1/sqrt(x) for positive x, as the plain reciprocal of
// the root. TODO: a vectoring pow(x, -0.5) path would halve the work.
func (e *Engine) OneOverSqrt(x int64) int64 {
	e.logger.Op1(OpOneOverSqrt, x)
	check(x > 0, "one_over_sqrt", "x must be positive")

	var shift int
	if e.doReduce {
		x, shift = e.reduceSqrtArg(x)
	}

	n := e.dad(e.one, e.Sqrt(x), 0, false)
	if e.doReduce {
		n = lshift(n, -shift/2)
	}
	return n
}
