// mul.go implements multiplication and division as linear-mode CORDIC
// compositions: mad (multiply-add) over linear rotation and dad
// (divide-add) over linear vectoring.

package cordic

// Mad returns x*y + addend. x and y must be non-negative; without
// argument reduction the addend must be non-negative as well.
func (e *Engine) Mad(x, y, addend int64) int64 {
	e.logger.Op3(OpMad, x, y, addend)
	return e.mad(x, y, addend, e.doReduce)
}

func (e *Engine) mad(x, y, addend int64, reduce bool) int64 {
	check(x >= 0, "mad", "x must be non-negative")
	check(y >= 0, "mad", "y must be non-negative")
	check(reduce || addend >= 0, "mad", "addend must be non-negative")

	var xs, ys int
	if reduce {
		x, y, xs, ys = e.reduceMulArgs(x, y)
	}

	z0 := addend
	if reduce {
		z0 = 0
	}
	_, yy, _ := e.linearRotation(x, z0, y)
	if reduce {
		yy = lshift(yy, xs+ys)
		yy += addend
	}
	return yy
}

// Mul returns the product x*y. Both operands must be non-negative.
func (e *Engine) Mul(x, y int64) int64 {
	e.logger.Op2(OpMul, x, y)
	return e.mad(x, y, 0, e.doReduce)
}

// mul is the internal product with an explicit reduction flag.
func (e *Engine) mul(x, y int64, reduce bool) int64 {
	return e.mad(x, y, 0, reduce)
}

// Dad returns y/x + addend. y must be non-negative and x positive;
// without argument reduction the addend must be non-negative as well.
func (e *Engine) Dad(y, x, addend int64) int64 {
	e.logger.Op3(OpDad, y, x, addend)
	return e.dad(y, x, addend, e.doReduce)
}

func (e *Engine) dad(y, x, addend int64, reduce bool) int64 {
	check(y >= 0, "dad", "y must be non-negative")
	check(x > 0, "dad", "x must be positive")
	check(reduce || addend >= 0, "dad", "addend must be non-negative")

	var xs, ys int
	if reduce {
		x, y, xs, ys = e.reduceDivArgs(x, y)
	}

	z0 := addend
	if reduce {
		z0 = 0
	}
	_, _, zz := e.linearVectoring(x, y, z0)
	if reduce {
		zz = lshift(zz, ys-xs)
		zz += addend
	}
	return zz
}

// Div returns the quotient y/x. y must be non-negative and x positive.
func (e *Engine) Div(y, x int64) int64 {
	e.logger.Op2(OpDiv, y, x)
	return e.dad(y, x, 0, e.doReduce)
}

// OneOver returns the reciprocal 1/x for positive x.
func (e *Engine) OneOver(x int64) int64 {
	e.logger.Op1(OpOneOver, x)
	return e.dad(e.one, x, 0, e.doReduce)
}
