package cordic

import "math"

// Log returns the natural logarithm of positive x, using the identity
// log(x) = 2*atanh((x-1)/(x+1)) after normalizing x into [1, 2). The
// normalizing shift contributes the precomputed addend log(2^s).
func (e *Engine) Log(x int64) int64 {
	e.logger.Op1(OpLog, x)
	return e.log(x, e.doReduce)
}

func (e *Engine) log(x int64, reduce bool) int64 {
	check(x > 0, "log", "x must be positive")

	var addend int64
	if reduce {
		x, addend = e.reduceLogArg(x)
	}
	lg := e.atanh2(x-e.one, x+e.one, false) << 1
	if reduce {
		lg += addend
	}
	return lg
}

// LogBase returns log(x) in base b, as the quotient of two natural logs.
// x and b must be positive.
func (e *Engine) LogBase(x, b int64) int64 {
	e.logger.Op2(OpLogb, x, b)
	check(x >= 0, "logb", "x must be non-negative")
	check(b > 0, "logb", "b must be positive")
	return e.Div(e.Log(x), e.Log(b))
}

// LogFloat returns log(x) in float64 base b > 0, multiplying by the
// precomputed 1/log(b) and preserving the sign of the natural log across
// the multiplication.
func (e *Engine) LogFloat(x int64, b float64) int64 {
	e.logger.Op2f(OpLogc, x, b)
	check(x >= 0, "logc", "x must be non-negative")
	check(b > 0, "logc", "b must be positive")

	oneOverLogB := e.ToFixed(1 / math.Log(b))
	logX := e.log(x, e.doReduce)
	neg := logX < 0
	if neg {
		logX = -logX
	}
	z := e.mul(logX, oneOverLogB, e.doReduce)
	if neg {
		z = -z
	}
	return z
}

// Log2 returns the base-2 logarithm of positive x.
func (e *Engine) Log2(x int64) int64 {
	e.logger.Op1(OpLog2, x)
	check(x >= 0, "log2", "x must be non-negative")
	return e.LogFloat(x, 2)
}

// Log10 returns the base-10 logarithm of positive x.
func (e *Engine) Log10(x int64) int64 {
	e.logger.Op1(OpLog10, x)
	check(x >= 0, "log10", "x must be non-negative")
	return e.LogFloat(x, 10)
}
