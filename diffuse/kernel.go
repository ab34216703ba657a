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

// Package diffuse computes the diffuse-scattering contribution to a simulated
// diffraction pattern from a 6-parameter anisotropic correlated-motion model:
// 3 gamma (correlation-length/shape) parameters via the anisoG matrix and
// 3 sigma (mean-square-displacement amplitude) parameters via the diagonal
// of anisoU. Contributions are summed over the Laue-symmetry equivalents of
// the target reflection and over a small integer stencil of neighboring
// Miller indices.
package diffuse

import (
	"math"

	"github.com/latticelabs/diffuse/r3"
)

// NumParams is the number of refinable diffuse model parameters, ordered
// {γ1, γ2, γ3, σ1, σ2, σ3}.
const NumParams = 6

const fourPiSq = 4 * math.Pi * math.Pi

// Model holds the anisotropic diffuse model tensors. All fields are read-only
// once the model is handed to a Kernel.
type Model struct {
	// AnisoG maps reciprocal-space deviations into the correlated-motion
	// "gamma" shape; its determinant sets the integrated lineshape volume.
	AnisoG r3.Matrix
	// AnisoU is the mean-square-displacement "sigma" tensor. Only its
	// diagonal is refinable.
	AnisoU r3.Matrix
	// DGdGamma[i] is the derivative of AnisoG with respect to gamma
	// parameter i, precomputed by the caller.
	DGdGamma [3]r3.Matrix
}

// Accumulator collects intensity and gradient contributions for one logical
// evaluation (typically one pixel). The kernel only ever adds to it; the
// caller zeroes it before the call sequence it owns.
type Accumulator struct {
	I    float64
	Grad [NumParams]float64
}

// Reset zeroes the accumulator.
func (a *Accumulator) Reset() {
	*a = Accumulator{}
}

// Kernel evaluates diffuse-scattering contributions for one crystal setting.
// All fields are fixed at construction, so a single Kernel is safe to share
// across concurrent per-pixel invocations: each call is a pure function of
// its arguments plus additive writes to the caller-private Accumulator.
type Kernel struct {
	grid  *Grid
	ainv  r3.Matrix
	mats  []r3.Matrix
	model Model

	// Hoisted out of the per-call path; AnisoG is immutable for the
	// kernel's lifetime. A singular AnisoG is the caller's responsibility
	// to rule out upstream.
	ginv r3.Matrix
	detG float64
}

// NewKernel binds the per-setting invariants: the structure-factor grid, the
// inverse-metric matrix ainv, the Laue-equivalent rotation list (from
// laue.Generate, already composed with the crystal reorientation), and the
// diffuse model.
func NewKernel(grid *Grid, ainv r3.Matrix, mats []r3.Matrix, model Model) *Kernel {
	return &Kernel{
		grid:  grid,
		ainv:  ainv,
		mats:  mats,
		model: model,
		ginv:  model.AnisoG.Inverse(),
		detG:  model.AnisoG.Det(),
	}
}

// Accumulate adds the diffuse contribution at fractional reciprocal position
// hvec near the integer reflection h0 into acc. The lineshape is summed over
// every Laue equivalent and over the integer stencil box h0 ± radius,
// normalized so that the symmetry multiplicity and stencil density do not
// change the integrated intensity. When withGrad is set the six partial
// derivatives are accumulated into acc.Grad as well; otherwise acc.Grad is
// never touched.
//
// If any part of the stencil box falls outside the grid the call is a no-op:
// contributions near the table edge are skipped entirely rather than clipped.
func (k *Kernel) Accumulate(hvec r3.Vector, h0, radius HKL, withGrad bool, acc *Accumulator) {
	if !k.grid.containsStencil(h0, radius) {
		return
	}

	fCell0 := k.grid.At(h0)
	numStencil := float64((2*radius.H + 1) * (2*radius.K + 1) * (2*radius.L + 1))
	norm := float64(len(k.mats)) * numStencil

	for hh := -radius.H; hh <= radius.H; hh++ {
		for kk := -radius.K; kk <= radius.K; kk++ {
			for ll := -radius.L; ll <= radius.L; ll++ {
				hOff := HKL{h0.H + hh, h0.K + kk, h0.L + ll}
				fCellThis := k.grid.At(hOff)

				// (F_this/F_0)² weight, with an explicit fallback
				// when the reference reflection is absent.
				scale := 1.0
				if fCell0 != 0 {
					scale = fCellThis / fCell0
				}
				scale *= scale / norm

				idThis := 0.0
				var stepThis [NumParams]float64

				deltaH := hvec.Sub(hOff.Vector())
				for _, m := range k.mats {
					am := k.ainv.MulMatrix(m)
					q0 := am.MulVector(h0.Vector())
					exparg := fourPiSq * k.model.AnisoU.QuadForm(q0)
					dwf := math.Exp(-exparg)

					deltaQ := am.MulVector(deltaH)
					gq := k.model.AnisoG.MulVector(deltaQ)
					vDotV := gq.Dot(gq)

					denom := 1 + vDotV*fourPiSq
					denom *= denom
					gammaPortion := 8 * math.Pi * k.detG / denom

					idThis += dwf * exparg * gammaPortion

					if withGrad {
						for i := 0; i < 3; i++ {
							dV := k.model.DGdGamma[i].MulVector(deltaQ)
							deriv := k.ginv.MulMatrix(k.model.DGdGamma[i]).Trace() -
								4*fourPiSq*gq.Dot(dV)/(1+fourPiSq*vDotV)
							stepThis[i] += gammaPortion * deriv * dwf * exparg
						}
						// Perturbing diagonal entry i of anisoU to
						// 2·sqrt(U_ii) turns the quadratic form into a
						// single scalar term, so no tensor is mutated.
						for i := 0; i < 3; i++ {
							qi := componentAt(q0, i)
							dexparg := fourPiSq * 2 * math.Sqrt(k.model.AnisoU[i][i]) * qi * qi
							stepThis[i+3] += gammaPortion * dwf * dexparg * (1 - exparg)
						}
					}
				}

				acc.I += idThis * scale
				if withGrad {
					for i := 0; i < NumParams; i++ {
						acc.Grad[i] += stepThis[i] * scale
					}
				}
			}
		}
	}
}

func componentAt(v r3.Vector, i int) float64 {
	switch i {
	case 0:
		return v.X
	case 1:
		return v.Y
	default:
		return v.Z
	}
}
