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

// Cot returns the cotangent of x, as cos(x)/sin(x). The sine must be
// positive, restricting x to the first quadrant away from zero.
func (e *Engine) Cot(x int64) int64 {
	e.logger.Op1(OpCot, x)
	check(x >= 0, "cot", "x must be non-negative")
	si, co := e.SinCos(x)
	return e.dad(co, si, 0, e.doReduce)
}
