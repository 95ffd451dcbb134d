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

// Sec returns the secant of x, the reciprocal of the cosine. The cosine
// must be positive, restricting x to the first quadrant.
func (e *Engine) Sec(x int64) int64 {
	e.logger.Op1(OpSec, x)
	check(x >= 0, "sec", "x must be non-negative")
	return e.dad(e.one, e.Cos(x), 0, e.doReduce)
}
