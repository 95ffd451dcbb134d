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

import "math"

// Pow returns b**x via exp(x * log(b)). b must be at least one, so that
// log(b) is non-negative, and x must be non-negative.
func (e *Engine) Pow(b, x int64) int64 {
	e.logger.Op2(OpPow, b, x)
	check(b >= 0, "pow", "b must be non-negative")
	check(x >= 0, "pow", "x must be non-negative")
	return e.exp(e.mul(x, e.log(b, true), e.doReduce))
}

// PowFloat returns b**x for a float64 base b >= 1, using the precomputed
// log(b) instead of evaluating it in fixed-point.
func (e *Engine) PowFloat(b float64, x int64) int64 {
	e.logger.Op2f(OpPowc, x, b)
	check(b >= 0, "powc", "b must be non-negative")
	check(x >= 0, "powc", "x must be non-negative")
	logB := math.Log(b)
	check(logB >= 0, "powc", "log(b) must be non-negative")
	return e.exp(e.mul(x, e.ToFixed(logB), e.doReduce))
}

// Pow2 returns 2**x for non-negative x.
func (e *Engine) Pow2(x int64) int64 {
	e.logger.Op1(OpPow2, x)
	check(x >= 0, "pow2", "x must be non-negative")
	return e.exp(e.mul(x, e.log2, e.doReduce))
}

// Pow10 returns 10**x for non-negative x.
func (e *Engine) Pow10(x int64) int64 {
	e.logger.Op1(OpPow10, x)
	check(x >= 0, "pow10", "x must be non-negative")
	return e.exp(e.mul(x, e.log10, e.doReduce))
}
