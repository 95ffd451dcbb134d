package cordic

import (
	"math"
	"testing"
)

func TestMul(t *testing.T) {
	e := newTestEngine(t, true)

	testCases := []struct {
		name      string
		x, y      float64
		tolerance float64
	}{
		{"Mul(3.5, 2.0)", 3.5, 2.0, 1e-5},
		{"Mul(0, 5)", 0, 5, 1e-6},
		{"Mul(1, 1)", 1, 1, 1e-6},
		{"Mul(0.125, 0.25)", 0.125, 0.25, 1e-6},
		{"Mul(0.7, 1.3)", 0.7, 1.3, 5e-5},
		{"Mul(9.9, 5.1)", 9.9, 5.1, 5e-4},
		{"Mul(100, 1.25)", 100, 1.25, 5e-4},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := e.ToFloat(e.Mul(e.ToFixed(tc.x), e.ToFixed(tc.y)))
			want := tc.x * tc.y
			if diff := math.Abs(got - want); diff > tc.tolerance {
				t.Errorf("Mul(%v, %v) = %v, want %v (diff %v)", tc.x, tc.y, got, want, diff)
			}
		})
	}
}

func TestMad(t *testing.T) {
	e := newTestEngine(t, true)

	testCases := []struct {
		x, y, addend float64
	}{
		{2.5, 3.0, 0.5},
		{0.5, 0.5, 1.0},
		{1.5, 2.0, 0},
	}

	for _, tc := range testCases {
		got := e.ToFloat(e.Mad(e.ToFixed(tc.x), e.ToFixed(tc.y), e.ToFixed(tc.addend)))
		want := tc.x*tc.y + tc.addend
		if diff := math.Abs(got - want); diff > 5e-5 {
			t.Errorf("Mad(%v, %v, %v) = %v, want %v", tc.x, tc.y, tc.addend, got, want)
		}
	}
}

func TestDiv(t *testing.T) {
	e := newTestEngine(t, true)

	testCases := []struct {
		name      string
		y, x      float64
		tolerance float64
	}{
		{"Div(1, 4)", 1, 4, 1e-5},
		{"Div(7, 2)", 7, 2, 5e-5},
		{"Div(5, 8)", 5, 8, 1e-5},
		{"Div(1, 3)", 1, 3, 1e-5},
		{"Div(0, 2)", 0, 2, 1e-6},
		{"Div(99, 0.9)", 99, 0.9, 1e-3},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := e.ToFloat(e.Div(e.ToFixed(tc.y), e.ToFixed(tc.x)))
			want := tc.y / tc.x
			if diff := math.Abs(got - want); diff > tc.tolerance {
				t.Errorf("Div(%v, %v) = %v, want %v (diff %v)", tc.y, tc.x, got, want, diff)
			}
		})
	}
}

func TestDad(t *testing.T) {
	e := newTestEngine(t, true)

	got := e.ToFloat(e.Dad(e.ToFixed(1), e.ToFixed(3), e.ToFixed(0.25)))
	want := 1.0/3.0 + 0.25
	if diff := math.Abs(got - want); diff > 5e-5 {
		t.Errorf("Dad(1, 3, 0.25) = %v, want %v", got, want)
	}
}

func TestOneOver(t *testing.T) {
	e := newTestEngine(t, true)

	for _, v := range []float64{0.25, 0.5, 1, 2, 4, 10} {
		got := e.ToFloat(e.OneOver(e.ToFixed(v)))
		if diff := math.Abs(got - 1/v); diff > 5e-5 {
			t.Errorf("OneOver(%v) = %v, want %v", v, got, 1/v)
		}
	}
}

// Products across a small grid stay within a bound proportional to the
// linear iteration depth.
func TestMulGrid(t *testing.T) {
	e := newTestEngine(t, true)

	vals := []float64{0.1, 0.7, 1.3, 2.5, 5.0, 9.9}
	for _, a := range vals {
		for _, b := range vals {
			got := e.ToFloat(e.Mul(e.ToFixed(a), e.ToFixed(b)))
			if diff := math.Abs(got - a*b); diff > 5e-4 {
				t.Errorf("Mul(%v, %v) = %v, want %v (diff %v)", a, b, got, a*b, diff)
			}
		}
	}
}

func TestMulPreconditions(t *testing.T) {
	e := newTestEngine(t, true)

	mustPanicPrecondition(t, func() { e.Mul(e.ToFixed(-1), e.ToFixed(2)) })
	mustPanicPrecondition(t, func() { e.Mul(e.ToFixed(2), e.ToFixed(-1)) })
	mustPanicPrecondition(t, func() { e.Div(e.ToFixed(1), 0) })
	mustPanicPrecondition(t, func() { e.Div(e.ToFixed(-1), e.ToFixed(2)) })
}

// Without argument reduction the addend rides through the kernel and must
// itself be non-negative.
func TestMadNoReduceNegativeAddendPanics(t *testing.T) {
	e := newTestEngine(t, false)

	mustPanicPrecondition(t, func() { e.Mad(e.ToFixed(0.5), e.ToFixed(0.5), e.ToFixed(-0.5)) })
}
