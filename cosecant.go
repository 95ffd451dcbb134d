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

// Csc returns the cosecant of x, the reciprocal of the sine. The sine
// must be positive, as it is for x in (0, pi).
func (e *Engine) Csc(x int64) int64 {
	e.logger.Op1(OpCsc, x)
	check(x >= 0, "csc", "x must be non-negative")
	return e.dad(e.one, e.Sin(x), 0, e.doReduce)
}
