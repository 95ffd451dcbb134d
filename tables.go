package cordic

import "math"

// buildTables populates the engine's lookup tables and constants. Entries
// are computed with the host floating-point library and rounded into the
// fixed-point encoding. Runs exactly once, at construction.
func (e *Engine) buildTables() {
	e.circularAtan = make([]int64, e.nc+1)
	e.hyperbolicAtanh = make([]int64, e.nh+1)
	e.linearPow2 = make([]int64, e.nl+1)

	nmax := max(e.nc, e.nh, e.nl)

	// The hyperbolic gain product must visit iterations 4, 13, 40, 121, ...
	// (next = 3*i + 1) twice, matching the kernel's re-executed iterations.
	pow2 := 1.0
	gainInv := 1.0
	gainhInv := 1.0
	nextDup := 4
	for i := 0; i <= nmax; i++ {
		a := math.Atan(pow2)
		if i <= e.nc {
			e.circularAtan[i] = e.ToFixed(a)
		}
		if i <= e.nl {
			e.linearPow2[i] = e.ToFixed(pow2)
		}
		if i <= e.nc {
			gainInv *= math.Cos(a)
		}
		if i != 0 && i <= e.nh {
			// atanh(2^0) is unbounded; slot 0 stays zero and the
			// hyperbolic kernels never visit it.
			ah := math.Atanh(pow2)
			e.hyperbolicAtanh[i] = e.ToFixed(ah)
			gainhInv *= math.Cosh(ah)
			if i == nextDup {
				gainhInv *= math.Cosh(ah)
				nextDup = 3*i + 1
			}
		}
		pow2 /= 2
	}

	e.circularGain = e.ToFixed(1 / gainInv)
	e.circularOneOverGain = e.ToFixed(gainInv)
	e.hyperbolicGain = e.ToFixed(1 / gainhInv)
	e.hyperbolicOneOverGain = e.ToFixed(gainhInv)

	e.log2 = e.ToFixed(math.Ln2)
	e.log10 = e.ToFixed(math.Log(10))
	e.log10DivE = e.ToFixed(math.Log(10 / math.E))

	// Angle-reduction LUT, keyed by the integer part of the angle. The
	// addend is negated for i > 0 but not for i = 0.
	n := 1 << (e.intW + 1)
	e.reduceAngleAddend = make([]int64, n)
	e.reduceAngleQuadrant = make([]int, n)
	const halfPi = math.Pi / 2
	for i := int64(0); i <= e.maxint; i++ {
		cnt := int64(float64(i) / halfPi)
		add := float64(cnt) * halfPi
		if i > 0 {
			add = -add
		}
		e.reduceAngleAddend[i] = e.ToFixed(add)
		e.reduceAngleQuadrant[i] = int(cnt % 4)
	}

	// exp(i) per possible integer part, kept in floating point so
	// reduceExpArg can fold in log(b) before converting.
	e.reduceExpFactor = make([]float64, n)
	for i := int64(0); i <= e.maxint; i++ {
		e.reduceExpFactor[i] = math.Exp(float64(i))
	}

	// log(2^s) per possible normalizing shift s in [-FracW, IntW].
	e.reduceLogAddend = make([]int64, e.fracW+e.intW+1)
	for i := -e.fracW; i <= e.intW; i++ {
		e.reduceLogAddend[e.fracW+i] = e.ToFixed(math.Log(math.Pow(2, float64(i))))
	}
}
