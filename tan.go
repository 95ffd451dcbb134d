package cordic

// Tan returns the tangent of the radian argument x, as sin(x)/cos(x).
// The quotient's sign requirements restrict the effective domain to
// angles whose sine and cosine are non-negative.
func (e *Engine) Tan(x int64) int64 {
	e.logger.Op1(OpTan, x)
	check(x >= 0, "tan", "x must be non-negative")
	si, co := e.SinCos(x)
	return e.dad(si, co, 0, e.doReduce)
}

// Atan returns the arctangent of non-negative x. Argument reduction is
// not implemented for the inverse circular functions; the engine must be
// configured with DoReduce false.
func (e *Engine) Atan(x int64) int64 {
	e.logger.Op1(OpAtan, x)
	check(x >= 0, "atan", "x must be non-negative")
	check(!e.doReduce, "atan", "argument reduction is not implemented")
	_, _, zz := e.circularVectoring(e.one, x, 0)
	return zz
}

// Atan2 returns the angle of the vector (x, y) for y >= 0, x > 0.
// Requires DoReduce false.
func (e *Engine) Atan2(y, x int64) int64 {
	e.logger.Op2(OpAtan2, y, x)
	return e.atan2(y, x, e.doReduce)
}

func (e *Engine) atan2(y, x int64, reduce bool) int64 {
	check(y >= 0, "atan2", "y must be non-negative")
	check(x > 0, "atan2", "x must be positive")
	check(!reduce, "atan2", "argument reduction is not implemented")
	_, _, zz := e.circularVectoring(x, y, 0)
	return zz
}

// Tanh returns the hyperbolic tangent of non-negative x, as
// sinh(x)/cosh(x).
func (e *Engine) Tanh(x int64) int64 {
	e.logger.Op1(OpTanh, x)
	check(x >= 0, "tanh", "x must be non-negative")
	sih, coh := e.SinhCosh(x)
	return e.dad(sih, coh, 0, e.doReduce)
}

// Atanh returns the inverse hyperbolic tangent of non-negative x.
// Requires DoReduce false.
func (e *Engine) Atanh(x int64) int64 {
	e.logger.Op1(OpAtanh, x)
	check(x >= 0, "atanh", "x must be non-negative")
	check(!e.doReduce, "atanh", "argument reduction is not implemented")
	_, _, zz := e.hyperbolicVectoring(e.one, x, 0)
	return zz
}

// Atanh2 returns atanh(y/x) for y >= 0, x > 0. Requires DoReduce false.
func (e *Engine) Atanh2(y, x int64) int64 {
	e.logger.Op2(OpAtanh2, y, x)
	return e.atanh2(y, x, e.doReduce)
}

func (e *Engine) atanh2(y, x int64, reduce bool) int64 {
	check(y >= 0, "atanh2", "y must be non-negative")
	check(x > 0, "atanh2", "x must be positive")
	check(!reduce, "atanh2", "argument reduction is not implemented")
	_, _, zz := e.hyperbolicVectoring(x, y, 0)
	return zz
}
