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

// Cos returns the cosine of the radian argument x. x must be
// non-negative.
func (e *Engine) Cos(x int64) int64 {
	e.logger.Op1(OpCos, x)
	check(x >= 0, "cos", "x must be non-negative")

	quad := 0
	if e.doReduce {
		x, quad = e.reduceAngleArg(x)
	}

	xx, yy, _ := e.circularRotation(e.circularOneOverGain, 0, x)
	if e.doReduce {
		if quad&1 == 1 {
			xx = yy // use sin
		}
		if quad == 1 || quad == 2 {
			xx = -xx
		}
	}
	return xx
}

// Acos returns the arccosine of x in [0, 1), via
// acos(x) = atan2(sqrt(1 - x^2), x).
func (e *Engine) Acos(x int64) int64 {
	e.logger.Op1(OpAcos, x)
	check(x >= 0, "acos", "x must be non-negative")
	return e.atan2(e.Normh(e.one, x), x, e.doReduce)
}

// Cosh returns the hyperbolic cosine of non-negative x.
func (e *Engine) Cosh(x int64) int64 {
	e.logger.Op1(OpCosh, x)
	check(x >= 0, "cosh", "x must be non-negative")

	quad := 0
	if e.doReduce {
		x, quad = e.reduceAngleArg(x)
	}

	xx, yy, _ := e.hyperbolicRotation(e.hyperbolicOneOverGain, 0, x)
	if e.doReduce {
		if quad&1 == 1 {
			xx = yy
		}
		if quad == 1 || quad == 2 {
			xx = -xx
		}
	}
	return xx
}

// Acosh returns the inverse hyperbolic cosine of x >= 1, via
// acosh(x) = log(x + sqrt(x^2 - 1)).
func (e *Engine) Acosh(x int64) int64 {
	e.logger.Op1(OpAcosh, x)
	check(x >= 0, "acosh", "x must be non-negative")
	return e.log(x+e.Normh(x, e.one), e.doReduce)
}
