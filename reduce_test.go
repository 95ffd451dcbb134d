package cordic

import (
	"math"
	"testing"
)

func TestReduceArg(t *testing.T) {
	e := newTestEngine(t, true)

	// Shift-only reduction brings x at or below one.
	for _, v := range []float64{0.1, 0.9, 1.0, 1.5, 3.7, 10, 100, 127} {
		rx, shift := e.reduceArg(e.ToFixed(v), true, false)
		if rx > e.One() {
			t.Errorf("reduceArg(%v) = %v, want <= 1", v, e.ToFloat(rx))
		}
		if got := e.ToFloat(rx) * math.Ldexp(1, shift); math.Abs(got-v) > 1e-5*v {
			t.Errorf("reduceArg(%v): reduced %v << %d = %v does not recover the input", v, e.ToFloat(rx), shift, got)
		}
	}

	// Normalizing reduction lands in [1, 2).
	for _, v := range []float64{0.05, 0.3, 0.9, 1.0, 1.5, 3.7, 10, 100} {
		rx, _ := e.reduceArg(e.ToFixed(v), true, true)
		got := e.ToFloat(rx)
		if got < 1 || got >= 2+1e-6 {
			t.Errorf("reduceArg(%v, normalize) = %v, want within [1, 2)", v, got)
		}
	}
}

func TestReduceSqrtArg(t *testing.T) {
	e := newTestEngine(t, true)

	testCases := []struct {
		x         float64
		wantShift int
	}{
		{0.5, 0},
		{1.0, 0},
		{2.0, 2},
		{3.0, 2},
		{7.5, 4},
		{100, 8},
	}

	for _, tc := range testCases {
		rx, shift := e.reduceSqrtArg(e.ToFixed(tc.x))
		if shift != tc.wantShift {
			t.Errorf("reduceSqrtArg(%v) shift = %d, want %d", tc.x, shift, tc.wantShift)
		}
		if shift&1 != 0 {
			t.Errorf("reduceSqrtArg(%v) shift = %d, want even", tc.x, shift)
		}
		if got := e.ToFloat(rx) * math.Ldexp(1, shift); math.Abs(got-tc.x) > 1e-5 {
			t.Errorf("reduceSqrtArg(%v): %v << %d = %v does not recover the input", tc.x, e.ToFloat(rx), shift, got)
		}
	}
}

func TestReduceExpArg(t *testing.T) {
	e := newTestEngine(t, true)

	frac, factor := e.reduceExpArg(1, e.ToFixed(2.5))
	if got := e.ToFloat(frac); math.Abs(got-0.5) > 1e-6 {
		t.Errorf("reduceExpArg(2.5) frac = %v, want 0.5", got)
	}
	if got := e.ToFloat(factor); math.Abs(got-math.Exp(2)) > 1e-6 {
		t.Errorf("reduceExpArg(2.5) factor = %v, want e^2 = %v", got, math.Exp(2))
	}

	// The base's log scales the factor before fixed-point conversion.
	_, factor = e.reduceExpArg(math.Ln2, e.ToFixed(3.25))
	if got := e.ToFloat(factor); math.Abs(got-math.Ln2*math.Exp(3)) > 1e-6 {
		t.Errorf("reduceExpArg(ln2, 3.25) factor = %v, want ln2*e^3 = %v", got, math.Ln2*math.Exp(3))
	}
}

func TestReduceLogArg(t *testing.T) {
	e := newTestEngine(t, true)

	testCases := []struct {
		x          float64
		wantX      float64
		wantAddend float64
	}{
		{6.0, 1.5, math.Log(4)},
		{2.0, 1.0, math.Ln2},
		{1.5, 1.5, 0},
		{0.5, 1.0, -math.Ln2},
	}

	for _, tc := range testCases {
		rx, addend := e.reduceLogArg(e.ToFixed(tc.x))
		if got := e.ToFloat(rx); math.Abs(got-tc.wantX) > 1e-6 {
			t.Errorf("reduceLogArg(%v) x = %v, want %v", tc.x, got, tc.wantX)
		}
		if got := e.ToFloat(addend); math.Abs(got-tc.wantAddend) > 1e-6 {
			t.Errorf("reduceLogArg(%v) addend = %v, want %v", tc.x, got, tc.wantAddend)
		}
	}
}

func TestReduceNormArgs(t *testing.T) {
	e := newTestEngine(t, true)

	rx, ry, shift := e.reduceNormArgs(e.ToFixed(3), e.ToFixed(4))
	if shift != 2 {
		t.Errorf("reduceNormArgs(3, 4) shift = %d, want 2", shift)
	}
	if got := e.ToFloat(rx); math.Abs(got-0.75) > 1e-6 {
		t.Errorf("reduceNormArgs(3, 4) x = %v, want 0.75", got)
	}
	if got := e.ToFloat(ry); math.Abs(got-1.0) > 1e-6 {
		t.Errorf("reduceNormArgs(3, 4) y = %v, want 1.0", got)
	}

	// Both operands move by the same shift, preserving their ratio.
	rx, ry, _ = e.reduceNormArgs(e.ToFixed(5), e.ToFixed(12))
	ratio := e.ToFloat(ry) / e.ToFloat(rx)
	if math.Abs(ratio-12.0/5.0) > 1e-5 {
		t.Errorf("reduceNormArgs(5, 12) ratio = %v, want 2.4", ratio)
	}
}

func TestReduceAngleArg(t *testing.T) {
	e := newTestEngine(t, true)

	testCases := []struct {
		a        float64
		wantA    float64
		wantQuad int
	}{
		{0.3, 0.3, 0},
		{1.0, 1.0, 0},
		{2.0, 2.0 - math.Pi/2, 1},
		{4.0, 4.0 - math.Pi, 2},
		{5.5, 5.5 - 3*math.Pi/2, 3},
		{7.0, 7.0 - 2*math.Pi, 0},
	}

	for _, tc := range testCases {
		a, quad := e.reduceAngleArg(e.ToFixed(tc.a))
		if quad != tc.wantQuad {
			t.Errorf("reduceAngleArg(%v) quadrant = %d, want %d", tc.a, quad, tc.wantQuad)
		}
		if got := e.ToFloat(a); math.Abs(got-tc.wantA) > 1e-6 {
			t.Errorf("reduceAngleArg(%v) = %v, want %v", tc.a, got, tc.wantA)
		}
	}
}

// Reducing an already-reduced angle is a no-op in quadrant zero.
func TestReduceAngleIdempotent(t *testing.T) {
	e := newTestEngine(t, true)

	for _, v := range []float64{0.3, 2.0, 4.0, 5.5, 9.7} {
		a1, _ := e.reduceAngleArg(e.ToFixed(v))
		a2, quad := e.reduceAngleArg(a1)
		if quad != 0 {
			t.Errorf("re-reducing %v: quadrant = %d, want 0", v, quad)
		}
		if a2 != a1 {
			t.Errorf("re-reducing %v: %v != %v", v, e.ToFloat(a2), e.ToFloat(a1))
		}
	}
}
