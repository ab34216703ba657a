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
	"math"
)

// BatchEvaluator accumulates the intensity contribution of one reflection
// for many query points at once, in structure-of-arrays layout. It exists
// for the per-pixel inner loop of image simulation, where thousands of
// fractional positions share one (reflection, stencil, model) setting;
// gradient refinement stays on Kernel.Accumulate, which is invoked far less
// often.
//
// A BatchEvaluator owns scratch buffers and is therefore not safe for
// concurrent use; give each worker its own.
type BatchEvaluator struct {
	k *Kernel

	gqx, gqy, gqz []float64
	vdotv         []float64
}

// NewBatchEvaluator returns an evaluator for the kernel's setting with
// scratch capacity for batches of up to n query points. Larger batches grow
// the scratch; sizing n to the expected batch keeps the evaluate path
// allocation-free.
func NewBatchEvaluator(k *Kernel, n int) *BatchEvaluator {
	e := &BatchEvaluator{k: k}
	e.grow(n)
	return e
}

func (e *BatchEvaluator) grow(n int) {
	if n <= len(e.vdotv) {
		return
	}
	e.gqx = make([]float64, n)
	e.gqy = make([]float64, n)
	e.gqz = make([]float64, n)
	e.vdotv = make([]float64, n)
}

// Accumulate adds the diffuse intensity at each query point (hx[i], hy[i],
// hz[i]) near reflection h0 into out[i]. It matches Kernel.Accumulate with
// withGrad=false at every query point, up to floating-point reassociation
// in the SIMD lanes. The slices must all have the same length. As with the
// scalar kernel, a stencil box extending outside the grid makes the whole
// call a no-op.
func (e *BatchEvaluator) Accumulate(hx, hy, hz []float64, h0, radius HKL, out []float64) {
	k := e.k
	if !k.grid.containsStencil(h0, radius) {
		return
	}
	n := min(len(hx), len(hy), len(hz), len(out))
	e.grow(n)

	fCell0 := k.grid.At(h0)
	numStencil := float64((2*radius.H + 1) * (2*radius.K + 1) * (2*radius.L + 1))
	norm := float64(len(k.mats)) * numStencil

	for hh := -radius.H; hh <= radius.H; hh++ {
		for kk := -radius.K; kk <= radius.K; kk++ {
			for ll := -radius.L; ll <= radius.L; ll++ {
				hOff := HKL{h0.H + hh, h0.K + kk, h0.L + ll}
				fCellThis := k.grid.At(hOff)

				scale := 1.0
				if fCell0 != 0 {
					scale = fCellThis / fCell0
				}
				scale *= scale / norm

				off := hOff.Vector()
				for _, m := range k.mats {
					am := k.ainv.MulMatrix(m)
					q0 := am.MulVector(h0.Vector())
					exparg := fourPiSq * k.model.AnisoU.QuadForm(q0)
					dwf := math.Exp(-exparg)

					// anisoG·Ainv·M is constant across the batch, so the
					// per-query work collapses to one affine map, one norm
					// and one Lorentzian accumulation.
					gm := k.model.AnisoG.MulMatrix(am)
					BaseAffineMapBatch(
						gm[0][0], gm[0][1], gm[0][2],
						gm[1][0], gm[1][1], gm[1][2],
						gm[2][0], gm[2][1], gm[2][2],
						off.X, off.Y, off.Z,
						hx[:n], hy[:n], hz[:n],
						e.gqx[:n], e.gqy[:n], e.gqz[:n],
					)
					BaseNormSqBatch(e.gqx[:n], e.gqy[:n], e.gqz[:n], e.vdotv[:n])

					amp := dwf * exparg * 8 * math.Pi * k.detG * scale
					BaseLorentzianAccumBatch(amp, fourPiSq, e.vdotv[:n], out[:n])
				}
			}
		}
	}
}
