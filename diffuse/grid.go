// Copyright 2026 The latticelabs Authors. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS-IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package diffuse

import (
	"fmt"

	"github.com/latticelabs/diffuse/r3"
)

// HKL is an integer Miller index triple.
type HKL struct {
	H, K, L int
}

// Add returns the component-wise sum of h and o.
func (h HKL) Add(o HKL) HKL {
	return HKL{h.H + o.H, h.K + o.K, h.L + o.L}
}

// Sub returns the component-wise difference of h and o.
func (h HKL) Sub(o HKL) HKL {
	return HKL{h.H - o.H, h.K - o.K, h.L - o.L}
}

// Vector returns the index as an r3.Vector.
func (h HKL) Vector() r3.Vector {
	return r3.Vector{X: float64(h.H), Y: float64(h.K), Z: float64(h.L)}
}

func (h HKL) String() string {
	return fmt.Sprintf("(%d,%d,%d)", h.H, h.K, h.L)
}

// Grid is a read-only structure-factor table over a bounding box of Miller
// indices, stored as a flat row-major array. The caller owns the table; the
// kernel never mutates it and it is safe to share across goroutines.
type Grid struct {
	min, max HKL
	rng      HKL // max - min + 1
	f        []float64
}

// NewGrid wraps a flat structure-factor table covering [min, max]
// component-wise. The table must have exactly one entry per index in the box;
// a mismatched length is reported here so the per-call hot path never has to
// re-validate it.
func NewGrid(min, max HKL, f []float64) (*Grid, error) {
	rng := HKL{max.H - min.H + 1, max.K - min.K + 1, max.L - min.L + 1}
	if rng.H <= 0 || rng.K <= 0 || rng.L <= 0 {
		return nil, fmt.Errorf("diffuse: empty Miller box min %v max %v", min, max)
	}
	if want := rng.H * rng.K * rng.L; len(f) != want {
		return nil, fmt.Errorf("diffuse: table has %d entries, box %v..%v needs %d", len(f), min, max, want)
	}
	return &Grid{min: min, max: max, rng: rng, f: f}, nil
}

// Min returns the lower corner of the Miller box.
func (g *Grid) Min() HKL { return g.min }

// Max returns the upper corner of the Miller box.
func (g *Grid) Max() HKL { return g.max }

// Range returns Max − Min + 1 component-wise.
func (g *Grid) Range() HKL { return g.rng }

// Index returns the flat row-major offset of h. The result is meaningless
// when !g.Contains(h).
func (g *Grid) Index(h HKL) int {
	return (h.H-g.min.H)*g.rng.K*g.rng.L + (h.K-g.min.K)*g.rng.L + (h.L - g.min.L)
}

// At returns the structure factor at h.
func (g *Grid) At(h HKL) float64 {
	return g.f[g.Index(h)]
}

// Contains reports whether h lies inside the Miller box.
func (g *Grid) Contains(h HKL) bool {
	return h.H >= g.min.H && h.H <= g.max.H &&
		h.K >= g.min.K && h.K <= g.max.K &&
		h.L >= g.min.L && h.L <= g.max.L
}

// containsStencil reports whether the whole stencil box h0 ± radius lies
// inside the Miller box.
func (g *Grid) containsStencil(h0, radius HKL) bool {
	return g.Contains(h0.Add(radius)) && g.Contains(h0.Sub(radius))
}
