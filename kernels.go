// Copyright 2025 Robert Snedegar
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// kernels.go holds the six CORDIC micro-iteration loops: circular,
// hyperbolic, and linear coordinates, each in rotation and vectoring mode.
// Every update reads the pre-update x and y, then assigns both, preserving
// the defining recurrence.

package cordic

// circularRotation drives z toward zero while rotating (x, y) by z:
//
//	d = (z >= 0) ? 1 : -1
//	x' = x - d*(y >> i)
//	y' = y + d*(x >> i)
//	z' = z - d*atan(2^-i)
func (e *Engine) circularRotation(x0, y0, z0 int64) (x, y, z int64) {
	x, y, z = x0, y0, z0
	for i := 0; i <= e.nc; i++ {
		var xi, yi, zi int64
		if z >= 0 {
			xi = x - (y >> i)
			yi = y + (x >> i)
			zi = z - e.circularAtan[i]
		} else {
			xi = x + (y >> i)
			yi = y - (x >> i)
			zi = z + e.circularAtan[i]
		}
		x, y, z = xi, yi, zi
	}
	return x, y, z
}

// circularVectoring drives y toward zero while z accumulates the angle:
//
//	d = (sign(x) != sign(y)) ? 1 : -1
//	x' = x - d*(y >> i)
//	y' = y + d*(x >> i)
//	z' = z - d*atan(2^-i)
func (e *Engine) circularVectoring(x0, y0, z0 int64) (x, y, z int64) {
	x, y, z = x0, y0, z0
	for i := 0; i <= e.nc; i++ {
		var xi, yi, zi int64
		if (x < 0) != (y < 0) {
			xi = x - (y >> i)
			yi = y + (x >> i)
			zi = z - e.circularAtan[i]
		} else {
			xi = x + (y >> i)
			yi = y - (x >> i)
			zi = z + e.circularAtan[i]
		}
		x, y, z = xi, yi, zi
	}
	return x, y, z
}

// hyperbolicRotation drives z toward zero in the hyperbolic system:
//
//	d = (z >= 0) ? 1 : -1
//	x' = x + d*(y >> i)
//	y' = y + d*(x >> i)
//	z' = z - d*atanh(2^-i)
//
// Iterations at i = 4, 13, 40, 121, ... (next = 3*i + 1) are executed
// twice; skipping the repeats loses convergence.
func (e *Engine) hyperbolicRotation(x0, y0, z0 int64) (x, y, z int64) {
	x, y, z = x0, y0, z0
	nextDup := 4
	for i := 1; i <= e.nh; i++ {
		var xi, yi, zi int64
		if z >= 0 {
			xi = x + (y >> i)
			yi = y + (x >> i)
			zi = z - e.hyperbolicAtanh[i]
		} else {
			xi = x - (y >> i)
			yi = y - (x >> i)
			zi = z + e.hyperbolicAtanh[i]
		}
		x, y, z = xi, yi, zi

		if i == nextDup {
			nextDup = 3*i + 1
			i--
		}
	}
	return x, y, z
}

// hyperbolicVectoring drives y toward zero in the hyperbolic system:
//
//	d = (sign(x) != sign(y)) ? 1 : -1
//	x' = x + d*(y >> i)
//	y' = y + d*(x >> i)
//	z' = z - d*atanh(2^-i)
//
// The same iterations as hyperbolicRotation are executed twice.
func (e *Engine) hyperbolicVectoring(x0, y0, z0 int64) (x, y, z int64) {
	x, y, z = x0, y0, z0
	nextDup := 4
	for i := 1; i <= e.nh; i++ {
		var xi, yi, zi int64
		if (x < 0) != (y < 0) {
			xi = x + (y >> i)
			yi = y + (x >> i)
			zi = z - e.hyperbolicAtanh[i]
		} else {
			xi = x - (y >> i)
			yi = y - (x >> i)
			zi = z + e.hyperbolicAtanh[i]
		}
		x, y, z = xi, yi, zi

		if i == nextDup {
			nextDup = 3*i + 1
			i--
		}
	}
	return x, y, z
}

// linearRotation accumulates x*z into y:
//
//	d = (z >= 0) ? 1 : -1
//	y' = y + d*(x >> i)
//	z' = z - d*2^-i
func (e *Engine) linearRotation(x0, y0, z0 int64) (x, y, z int64) {
	x, y, z = x0, y0, z0
	for i := 0; i <= e.nl; i++ {
		var yi, zi int64
		if z >= 0 {
			yi = y + (x >> i)
			zi = z - e.linearPow2[i]
		} else {
			yi = y - (x >> i)
			zi = z + e.linearPow2[i]
		}
		y, z = yi, zi
	}
	return x, y, z
}

// linearVectoring accumulates y/x into z:
//
//	d = (sign(x) != sign(y)) ? 1 : -1
//	y' = y + d*(x >> i)
//	z' = z - d*2^-i
func (e *Engine) linearVectoring(x0, y0, z0 int64) (x, y, z int64) {
	x, y, z = x0, y0, z0
	for i := 0; i <= e.nl; i++ {
		var yi, zi int64
		if (x < 0) != (y < 0) {
			yi = y + (x >> i)
			zi = z - e.linearPow2[i]
		} else {
			yi = y - (x >> i)
			zi = z + e.linearPow2[i]
		}
		y, z = yi, zi
	}
	return x, y, z
}
