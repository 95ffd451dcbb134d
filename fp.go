// fp.go converts between the host float64 type and the fixed-point
// integer encoding.

package cordic

import "math"

// ToFixed returns the fixed-point encoding of x, rounding to the nearest
// representable value and preserving sign.
func (e *Engine) ToFixed(x float64) int64 {
	neg := x < 0
	if neg {
		x = -x
	}
	v := int64(math.Round(x * float64(int64(1)<<e.fracW)))
	if neg {
		v = -v
	}
	return v
}

// ToFloat returns the real value represented by the encoding x.
func (e *Engine) ToFloat(x int64) float64 {
	neg := x < 0
	if neg {
		x = -x
	}
	f := float64(x) / float64(int64(1)<<e.fracW)
	if neg {
		f = -f
	}
	return f
}

// MakeFixed assembles an encoding from a sign bit, an integer part
// i in [0, MaxInt], and a fractional part f in [0, 2^FracW - 1].
// It returns an *OutOfRangeError if i or f are outside those windows.
func (e *Engine) MakeFixed(neg bool, i, f int64) (int64, error) {
	if i < 0 || i > e.maxint {
		return 0, &OutOfRangeError{What: "integer part", Value: i, Min: 0, Max: e.maxint}
	}
	if f < 0 || f > e.one-1 {
		return 0, &OutOfRangeError{What: "fractional part", Value: f, Min: 0, Max: e.one - 1}
	}
	var s int64
	if neg {
		s = 1
	}
	return s<<(e.intW+e.fracW) | i<<e.fracW | f, nil
}

// lshift shifts x left by n bits when n is positive and right by -n bits
// when n is negative.
func lshift(x int64, n int) int64 {
	switch {
	case n > 0:
		return x << n
	case n < 0:
		return x >> -n
	}
	return x
}
