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

import "sync/atomic"

// Config selects the fixed-point representation and iteration depth of an
// Engine.
type Config struct {
	// IntW and FracW are the integer and fractional bit widths of the
	// fixed-point encoding. IntW must be in [1, 13], FracW at least 1,
	// and IntW + FracW + 1 must fit in the 64-bit host word.
	IntW  int
	FracW int

	// DoReduce enables argument reduction in the high-level functions.
	// When false, callers pre-normalize arguments into each kernel's
	// convergence domain themselves.
	DoReduce bool

	// NC, NH, and NL are the iteration counts of the circular,
	// hyperbolic, and linear kernels. Zero values default to FracW.
	NC, NH, NL int

	// Logger receives instrumentation callbacks. Nil means no logging.
	Logger Logger
}

// Engine evaluates fixed-point transcendental functions over a single
// configured representation. All tables are built at construction and
// never mutated, so an Engine may be shared across goroutines.
type Engine struct {
	id       uint64
	intW     int
	fracW    int
	doReduce bool
	nc       int
	nh       int
	nl       int

	maxint  int64
	one     int64
	quarter int64

	circularAtan        []int64
	circularGain        int64
	circularOneOverGain int64

	hyperbolicAtanh       []int64
	hyperbolicGain        int64
	hyperbolicOneOverGain int64

	linearPow2 []int64

	log2      int64
	log10     int64
	log10DivE int64

	reduceAngleAddend   []int64
	reduceAngleQuadrant []int
	reduceExpFactor     []float64
	reduceLogAddend     []int64

	logger Logger
}

var engineIDs atomic.Uint64

// New builds an Engine for the given configuration, populating all lookup
// tables. It returns an *OutOfRangeError when the configuration is invalid.
func New(cfg Config) (*Engine, error) {
	if cfg.IntW < 1 || cfg.IntW > 13 {
		return nil, &OutOfRangeError{What: "IntW", Value: int64(cfg.IntW), Min: 1, Max: 13}
	}
	if cfg.FracW < 1 {
		return nil, &OutOfRangeError{What: "FracW", Value: int64(cfg.FracW), Min: 1, Max: 62}
	}
	if cfg.IntW+cfg.FracW+1 > 64 {
		return nil, &OutOfRangeError{What: "IntW+FracW+1", Value: int64(cfg.IntW + cfg.FracW + 1), Min: 3, Max: 64}
	}
	if cfg.NC < 0 || cfg.NH < 0 || cfg.NL < 0 {
		return nil, &OutOfRangeError{What: "iteration count", Value: int64(min(cfg.NC, cfg.NH, cfg.NL)), Min: 0, Max: 1 << 16}
	}

	nc, nh, nl := cfg.NC, cfg.NH, cfg.NL
	if nc == 0 {
		nc = cfg.FracW
	}
	if nh == 0 {
		nh = cfg.FracW
	}
	if nl == 0 {
		nl = cfg.FracW
	}

	logger := cfg.Logger
	if logger == nil {
		logger = NopLogger{}
	}

	e := &Engine{
		id:       engineIDs.Add(1),
		intW:     cfg.IntW,
		fracW:    cfg.FracW,
		doReduce: cfg.DoReduce,
		nc:       nc,
		nh:       nh,
		nl:       nl,
		maxint:   (int64(1) << cfg.IntW) - 1,
		one:      int64(1) << cfg.FracW,
		quarter:  int64(1) << cfg.FracW >> 2,
		logger:   logger,
	}
	e.buildTables()

	e.logger.CordicConstructed(e.id, e.intW, e.fracW, e.nc)

	return e, nil
}

// Close releases the engine's tables and reports the teardown to the
// attached logger. The engine must not be used after Close.
func (e *Engine) Close() {
	e.logger.CordicDestructed(e.id)
	e.circularAtan = nil
	e.hyperbolicAtanh = nil
	e.linearPow2 = nil
	e.reduceAngleAddend = nil
	e.reduceAngleQuadrant = nil
	e.reduceExpFactor = nil
	e.reduceLogAddend = nil
}

// IntW returns the integer bit width of the encoding.
func (e *Engine) IntW() int { return e.intW }

// FracW returns the fractional bit width of the encoding.
func (e *Engine) FracW() int { return e.fracW }

// MaxInt returns the largest integer part, (1 << IntW) - 1.
func (e *Engine) MaxInt() int64 { return e.maxint }

// Zero returns the encoding of 0.
func (e *Engine) Zero() int64 { return 0 }

// One returns the encoding of 1, i.e. 1 << FracW.
func (e *Engine) One() int64 { return e.one }

// Quarter returns the encoding of 0.25.
func (e *Engine) Quarter() int64 { return e.quarter }

// NCircular returns the circular kernel iteration count.
func (e *Engine) NCircular() int { return e.nc }

// NHyperbolic returns the hyperbolic kernel iteration count.
func (e *Engine) NHyperbolic() int { return e.nh }

// NLinear returns the linear kernel iteration count.
func (e *Engine) NLinear() int { return e.nl }

// Gain returns the circular kernel gain, the product of cos(atan 2^-i)
// reciprocals accumulated over the circular iterations.
func (e *Engine) Gain() int64 { return e.circularGain }

// Gainh returns the hyperbolic kernel gain.
func (e *Engine) Gainh() int64 { return e.hyperbolicGain }

// OneOverGain returns the reciprocal of the circular gain.
func (e *Engine) OneOverGain() int64 { return e.circularOneOverGain }

// OneOverGainh returns the reciprocal of the hyperbolic gain.
func (e *Engine) OneOverGainh() int64 { return e.hyperbolicOneOverGain }
