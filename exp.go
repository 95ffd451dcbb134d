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

package cordic

// Exp returns e**x, the base-e exponential of non-negative x.
//
// The argument is split into integer and fractional parts; the fractional
// exponential comes from hyperbolic rotation of (1/gainh, 1/gainh), whose
// x output is cosh(f) + sinh(f) = e^f, and the integer part from the
// precomputed exp LUT folded in by multiplication.
func (e *Engine) Exp(x int64) int64 {
	e.logger.Op1(OpExp, x)
	return e.exp(x)
}

func (e *Engine) exp(x int64) int64 {
	check(x >= 0, "exp", "x must be non-negative")

	var factor int64
	if e.doReduce {
		x, factor = e.reduceExpArg(1, x)
	}

	xx, _, _ := e.hyperbolicRotation(e.hyperbolicOneOverGain, e.hyperbolicOneOverGain, x)
	if e.doReduce {
		xx = e.mul(xx, factor, true)
	}
	return xx
}
