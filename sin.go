package cordic

// Sin returns the sine of the radian argument x. x must be non-negative;
// with argument reduction enabled any magnitude up to MaxInt is accepted,
// otherwise x must already lie in the circular convergence domain.
func (e *Engine) Sin(x int64) int64 {
	e.logger.Op1(OpSin, x)
	check(x >= 0, "sin", "x must be non-negative")

	quad := 0
	if e.doReduce {
		x, quad = e.reduceAngleArg(x)
	}

	xx, yy, _ := e.circularRotation(e.circularOneOverGain, 0, x)
	if e.doReduce {
		if quad&1 == 1 {
			yy = xx // use cos
		}
		if quad >= 2 {
			yy = -yy
		}
	}
	return yy
}

// SinCos returns the sine and cosine of x from a single circular rotation.
func (e *Engine) SinCos(x int64) (sin, cos int64) {
	e.logger.Op1(OpSinCos, x)
	check(x >= 0, "sin_cos", "x must be non-negative")

	quad := 0
	if e.doReduce {
		x, quad = e.reduceAngleArg(x)
	}

	cos, sin, _ = e.circularRotation(e.circularOneOverGain, 0, x)
	if e.doReduce {
		if quad&1 == 1 {
			sin, cos = cos, sin
		}
		if quad == 1 || quad == 2 {
			cos = -cos
		}
		if quad >= 2 {
			sin = -sin
		}
	}
	return sin, cos
}

// Asin returns the arcsine of x in [0, 1), via
// asin(x) = atan2(x, sqrt(1 - x^2)).
func (e *Engine) Asin(x int64) int64 {
	e.logger.Op1(OpAsin, x)
	check(x >= 0, "asin", "x must be non-negative")
	return e.atan2(x, e.Normh(e.one, x), e.doReduce)
}

// Sinh returns the hyperbolic sine of non-negative x.
func (e *Engine) Sinh(x int64) int64 {
	e.logger.Op1(OpSinh, x)
	check(x >= 0, "sinh", "x must be non-negative")

	quad := 0
	if e.doReduce {
		x, quad = e.reduceAngleArg(x)
	}

	xx, yy, _ := e.hyperbolicRotation(e.hyperbolicOneOverGain, 0, x)
	if e.doReduce {
		if quad&1 == 1 {
			yy = xx
		}
		if quad >= 2 {
			yy = -yy
		}
	}
	return yy
}

// SinhCosh returns the hyperbolic sine and cosine of x from a single
// hyperbolic rotation.
func (e *Engine) SinhCosh(x int64) (sinh, cosh int64) {
	e.logger.Op1(OpSinhCosh, x)
	check(x >= 0, "sinh_cosh", "x must be non-negative")

	quad := 0
	if e.doReduce {
		x, quad = e.reduceAngleArg(x)
	}

	cosh, sinh, _ = e.hyperbolicRotation(e.hyperbolicOneOverGain, 0, x)
	if e.doReduce {
		if quad&1 == 1 {
			sinh, cosh = cosh, sinh
		}
		if quad == 1 || quad == 2 {
			cosh = -cosh
		}
		if quad >= 2 {
			sinh = -sinh
		}
	}
	return sinh, cosh
}

// Asinh returns the inverse hyperbolic sine of non-negative x, via
// asinh(x) = log(x + sqrt(x^2 + 1)).
func (e *Engine) Asinh(x int64) int64 {
	e.logger.Op1(OpAsinh, x)
	check(x >= 0, "asinh", "x must be non-negative")
	return e.log(x+e.Norm(e.one, x), e.doReduce)
}
