// Package cordic implements fixed-point transcendental math using the
// CORDIC family of shift-and-add iterations.
//
// An Engine holds a configurable fixed-point representation together with
// the precomputed angle, gain, and reduction tables needed to evaluate
// multiplication, division, square root, exponentials, logarithms, and the
// trigonometric and hyperbolic functions and their inverses. The kernels use
// only additions, subtractions, and power-of-two shifts; floating point is
// used when the tables are built, for the exponential's integer-part factor,
// and for the float-typed bases of PowFloat and LogFloat.
//
// # Fixed-point encoding
//
// Values are signed int64 encodings partitioned into IntW integer bits and
// FracW fractional bits with one implicit sign bit. An encoding e represents
// the real number e / 2^FracW. ToFixed and ToFloat bridge to and from
// float64; MakeFixed assembles an encoding from decomposed parts.
//
// # Coordinate systems and modes
//
// Three CORDIC coordinate systems (circular, hyperbolic, linear) each run in
// rotation mode (drive z toward zero, rotating the vector) or vectoring mode
// (drive y toward zero, accumulating the angle in z). Every public function
// is a short composition over these six kernels plus argument reduction that
// extends each kernel's limited convergence domain.
//
// # Domains and errors
//
// Operations take non-negative arguments; callers normalize signs outside
// the engine. Domain violations are programmer errors and panic with a
// *PreconditionError. Construction and MakeFixed validate their inputs and
// return an *OutOfRangeError instead.
//
// An Engine is immutable after construction and safe for concurrent use.
package cordic
