package cordic

// Norm returns sqrt(x^2 + y^2) via circular vectoring; both arguments
// must be non-negative.
func (e *Engine) Norm(x, y int64) int64 {
	e.logger.Op2(OpNorm, x, y)
	check(x >= 0, "norm", "x must be non-negative")
	check(y >= 0, "norm", "y must be non-negative")

	var shift int
	if e.doReduce {
		x, y, shift = e.reduceNormArgs(x, y)
	}

	xx, _, _ := e.circularVectoring(x, y, 0)
	if e.doReduce {
		xx = lshift(xx, shift)
	}
	return e.mul(xx, e.circularOneOverGain, e.doReduce)
}

// Normh returns sqrt(x^2 - y^2) via hyperbolic vectoring; requires
// x >= y >= 0.
func (e *Engine) Normh(x, y int64) int64 {
	e.logger.Op2(OpNormh, x, y)
	check(x >= 0, "normh", "x must be non-negative")
	check(y >= 0, "normh", "y must be non-negative")
	check(x >= y, "normh", "x must be >= y")

	var shift int
	if e.doReduce {
		x, y, shift = e.reduceNormArgs(x, y)
	}

	xx, _, _ := e.hyperbolicVectoring(x, y, 0)
	if e.doReduce {
		xx = lshift(xx, shift)
	}
	return e.mul(xx, e.hyperbolicOneOverGain, e.doReduce)
}

// PolarToRect converts the polar form (r, a) to rectangular (x, y) with a
// single circular rotation of (r, 0) by a. Requires DoReduce false.
func (e *Engine) PolarToRect(r, a int64) (x, y int64) {
	e.logger.Op2(OpPolarToRect, r, a)
	check(r >= 0, "polar_to_rect", "r must be non-negative")
	check(a >= 0, "polar_to_rect", "a must be non-negative")
	check(!e.doReduce, "polar_to_rect", "argument reduction is not implemented")

	xx, yy, _ := e.circularRotation(r, 0, a)
	x = e.mul(xx, e.circularOneOverGain, e.doReduce)
	y = e.mul(yy, e.circularOneOverGain, e.doReduce)
	return x, y
}

// RectToPolar converts rectangular (x, y) to polar (r, a) with a single
// circular vectoring; both arguments must be non-negative.
func (e *Engine) RectToPolar(x, y int64) (r, a int64) {
	e.logger.Op2(OpRectToPolar, x, y)
	check(x >= 0, "rect_to_polar", "x must be non-negative")
	check(y >= 0, "rect_to_polar", "y must be non-negative")

	var shift int
	if e.doReduce {
		x, y, shift = e.reduceNormArgs(x, y)
	}

	rr, _, a := e.circularVectoring(x, y, 0)
	if e.doReduce {
		rr = lshift(rr, shift)
	}
	r = e.mul(rr, e.circularOneOverGain, e.doReduce)
	return r, a
}
