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

//go:generate hwygen -input $GOFILE -output . -targets avx2,fallback

import (
	"github.com/ajroetker/go-highway/hwy"
)

// BaseAffineMapBatch applies dst = M·(src − t) to a set of 3D vectors (SoA).
// The translation t is subtracted before the matrix is applied, which lets
// the stencil-offset removal and the reciprocal-space mapping run as one
// fused pass.
func BaseAffineMapBatch[T hwy.Floats](
	m00, m01, m02 T,
	m10, m11, m12 T,
	m20, m21, m22 T,
	tx, ty, tz T,
	srcX, srcY, srcZ []T,
	dstX, dstY, dstZ []T,
) {
	size := min(len(srcX), len(srcY), len(srcZ), len(dstX), len(dstY), len(dstZ))

	vM00 := hwy.Set(m00)
	vM01 := hwy.Set(m01)
	vM02 := hwy.Set(m02)
	vM10 := hwy.Set(m10)
	vM11 := hwy.Set(m11)
	vM12 := hwy.Set(m12)
	vM20 := hwy.Set(m20)
	vM21 := hwy.Set(m21)
	vM22 := hwy.Set(m22)
	vTx := hwy.Set(tx)
	vTy := hwy.Set(ty)
	vTz := hwy.Set(tz)

	hwy.ProcessWithTail[T](size,
		func(offset int) {
			x := hwy.Sub(hwy.Load(srcX[offset:]), vTx)
			y := hwy.Sub(hwy.Load(srcY[offset:]), vTy)
			z := hwy.Sub(hwy.Load(srcZ[offset:]), vTz)

			resX := hwy.Mul(x, vM00)
			resX = hwy.FMA(y, vM01, resX)
			resX = hwy.FMA(z, vM02, resX)

			resY := hwy.Mul(x, vM10)
			resY = hwy.FMA(y, vM11, resY)
			resY = hwy.FMA(z, vM12, resY)

			resZ := hwy.Mul(x, vM20)
			resZ = hwy.FMA(y, vM21, resZ)
			resZ = hwy.FMA(z, vM22, resZ)

			hwy.Store(resX, dstX[offset:])
			hwy.Store(resY, dstY[offset:])
			hwy.Store(resZ, dstZ[offset:])
		},
		func(offset, count int) {
			mask := hwy.TailMask[T](count)
			x := hwy.Sub(hwy.MaskLoad(mask, srcX[offset:]), vTx)
			y := hwy.Sub(hwy.MaskLoad(mask, srcY[offset:]), vTy)
			z := hwy.Sub(hwy.MaskLoad(mask, srcZ[offset:]), vTz)

			resX := hwy.Mul(x, vM00)
			resX = hwy.FMA(y, vM01, resX)
			resX = hwy.FMA(z, vM02, resX)

			resY := hwy.Mul(x, vM10)
			resY = hwy.FMA(y, vM11, resY)
			resY = hwy.FMA(z, vM12, resY)

			resZ := hwy.Mul(x, vM20)
			resZ = hwy.FMA(y, vM21, resZ)
			resZ = hwy.FMA(z, vM22, resZ)

			hwy.MaskStore(mask, resX, dstX[offset:])
			hwy.MaskStore(mask, resY, dstY[offset:])
			hwy.MaskStore(mask, resZ, dstZ[offset:])
		},
	)
}

// BaseNormSqBatch computes dst[i] = x[i]² + y[i]² + z[i]² (SoA).
func BaseNormSqBatch[T hwy.Floats](
	xs, ys, zs []T,
	dst []T,
) {
	size := min(len(xs), len(ys), len(zs), len(dst))

	hwy.ProcessWithTail[T](size,
		func(offset int) {
			x := hwy.Load(xs[offset:])
			y := hwy.Load(ys[offset:])
			z := hwy.Load(zs[offset:])

			sum := hwy.Mul(x, x)
			sum = hwy.FMA(y, y, sum)
			sum = hwy.FMA(z, z, sum)

			hwy.Store(sum, dst[offset:])
		},
		func(offset, count int) {
			mask := hwy.TailMask[T](count)
			x := hwy.MaskLoad(mask, xs[offset:])
			y := hwy.MaskLoad(mask, ys[offset:])
			z := hwy.MaskLoad(mask, zs[offset:])

			sum := hwy.Mul(x, x)
			sum = hwy.FMA(y, y, sum)
			sum = hwy.FMA(z, z, sum)

			hwy.MaskStore(mask, sum, dst[offset:])
		},
	)
}

// BaseLorentzianAccumBatch adds amp / (1 + c·v[i])² to acc[i], the
// Lorentzian-squared lineshape with every query-independent factor folded
// into amp.
func BaseLorentzianAccumBatch[T hwy.Floats](
	amp, c T,
	vs []T,
	acc []T,
) {
	size := min(len(vs), len(acc))

	vAmp := hwy.Set(amp)
	vC := hwy.Set(c)
	vOne := hwy.Set(T(1))

	hwy.ProcessWithTail[T](size,
		func(offset int) {
			v := hwy.Load(vs[offset:])
			denom := hwy.FMA(v, vC, vOne)
			denom = hwy.Mul(denom, denom)

			res := hwy.Add(hwy.Load(acc[offset:]), hwy.Div(vAmp, denom))
			hwy.Store(res, acc[offset:])
		},
		func(offset, count int) {
			mask := hwy.TailMask[T](count)
			v := hwy.MaskLoad(mask, vs[offset:])
			denom := hwy.FMA(v, vC, vOne)
			denom = hwy.Mul(denom, denom)

			res := hwy.Add(hwy.MaskLoad(mask, acc[offset:]), hwy.Div(vAmp, denom))
			hwy.MaskStore(mask, res, acc[offset:])
		},
	)
}
