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

// Package laue enumerates the reciprocal-space rotation matrices of the 14
// crystallographic Laue classes.
//
// For the trigonal and hexagonal classes (P -3 through P 6/m m m) the
// operations are expressed in the (a−b, a+b, c) basis as the principal axes
// of the anisotropic model, which is why those matrices carry ±1/√2 entries
// off the identity axis. Callers must express H vectors for those classes in
// the same basis.
package laue

import (
	"fmt"
	"math"

	"github.com/latticelabs/diffuse/r3"
)

// Class identifies one of the 14 Laue classes.
type Class int

const (
	P1bar   Class = 1  // P -1
	P112m   Class = 2  // P 1 1 2/m
	P12m1   Class = 3  // P 1 2/m 1
	P2m11   Class = 4  // P 2/m 1 1
	Pmmm    Class = 5  // P m m m
	P4m     Class = 6  // P 4/m
	P4mmm   Class = 7  // P 4/m m m
	P3bar   Class = 8  // P -3
	P3barM1 Class = 9  // P -3 m 1
	P3bar1M Class = 10 // P -3 1 m
	P6m     Class = 11 // P 6/m
	P6mmm   Class = 12 // P 6/m m m
	Pm3bar  Class = 13 // P m -3
	Pm3barM Class = 14 // P m -3 m
)

// MaxOps is the largest operation count across all classes (P m -3 m).
const MaxOps = 24

var classNames = [...]string{
	P1bar:   "P -1",
	P112m:   "P 1 1 2/m",
	P12m1:   "P 1 2/m 1",
	P2m11:   "P 2/m 1 1",
	Pmmm:    "P m m m",
	P4m:     "P 4/m",
	P4mmm:   "P 4/m m m",
	P3bar:   "P -3",
	P3barM1: "P -3 m 1",
	P3bar1M: "P -3 1 m",
	P6m:     "P 6/m",
	P6mmm:   "P 6/m m m",
	Pm3bar:  "P m -3",
	Pm3barM: "P m -3 m",
}

// Valid reports whether c names one of the 14 classes.
func (c Class) Valid() bool {
	return c >= P1bar && c <= Pm3barM
}

// String returns the Hermann-Mauguin symbol of the class.
func (c Class) String() string {
	if !c.Valid() {
		return fmt.Sprintf("Class(%d)", int(c))
	}
	return classNames[c]
}

// Count returns the number of symmetry operations of the class, or 0 if c is
// not a valid class.
func Count(c Class) int {
	if !c.Valid() {
		return 0
	}
	return len(classOps[c])
}

// Generate returns the symmetry-equivalent rotation matrices of the class,
// each right-multiplied by the reorientation matrix rpa: result[i] = op[i]·rpa.
// The first operation of every class is the identity, so result[0] == rpa.
func Generate(c Class, rpa r3.Matrix) ([]r3.Matrix, error) {
	return AppendGenerate(nil, c, rpa)
}

// AppendGenerate appends the generated matrices to dst and returns the
// extended slice, allowing callers to reuse a buffer across crystal settings
// (capacity MaxOps always suffices). dst is returned unchanged on error.
func AppendGenerate(dst []r3.Matrix, c Class, rpa r3.Matrix) ([]r3.Matrix, error) {
	if !c.Valid() {
		return dst, fmt.Errorf("laue: class %d out of range 1-14", int(c))
	}
	for _, op := range classOps[c] {
		dst = append(dst, op.MulMatrix(rpa))
	}
	return dst, nil
}

var oneOverRoot2 = 1 / math.Sqrt2

// classOps holds the raw operation tables, identity first in every class.
// Every entry is an orthogonal matrix with determinant ±1 and elements
// restricted to {0, ±1, ±1/√2}.
var classOps = [...][]r3.Matrix{
	P1bar: {
		// x,y,z
		{{1, 0, 0},
			{0, 1, 0},
			{0, 0, 1}},
	},

	P112m: {
		// x,y,z
		{{1, 0, 0},
			{0, 1, 0},
			{0, 0, 1}},
		// -x,-y,z
		{{-1, 0, 0},
			{0, -1, 0},
			{0, 0, 1}},
	},

	P12m1: {
		// x,y,z
		{{1, 0, 0},
			{0, 1, 0},
			{0, 0, 1}},
		// -x,y,-z
		{{-1, 0, 0},
			{0, 1, 0},
			{0, 0, -1}},
	},

	P2m11: {
		// x,y,z
		{{1, 0, 0},
			{0, 1, 0},
			{0, 0, 1}},
		// x,-y,-z
		{{1, 0, 0},
			{0, -1, 0},
			{0, 0, -1}},
	},

	Pmmm: {
		// x,y,z
		{{1, 0, 0},
			{0, 1, 0},
			{0, 0, 1}},
		// x,-y,-z
		{{1, 0, 0},
			{0, -1, 0},
			{0, 0, -1}},
		// -x,y,-z
		{{-1, 0, 0},
			{0, 1, 0},
			{0, 0, -1}},
		// -x,-y,z
		{{-1, 0, 0},
			{0, -1, 0},
			{0, 0, 1}},
	},

	P4m: {
		// x,y,z
		{{1, 0, 0},
			{0, 1, 0},
			{0, 0, 1}},
		// -y,x,z
		{{0, -1, 0},
			{1, 0, 0},
			{0, 0, 1}},
		// y,-x,z
		{{0, 1, 0},
			{-1, 0, 0},
			{0, 0, 1}},
		// -x,-y,z
		{{-1, 0, 0},
			{0, -1, 0},
			{0, 0, 1}},
	},

	P4mmm: {
		// x,y,z
		{{1, 0, 0},
			{0, 1, 0},
			{0, 0, 1}},
		// -y,x,z
		{{0, -1, 0},
			{1, 0, 0},
			{0, 0, 1}},
		// y,-x,z
		{{0, 1, 0},
			{-1, 0, 0},
			{0, 0, 1}},
		// x,-y,-z
		{{1, 0, 0},
			{0, -1, 0},
			{0, 0, -1}},
		// -x,y,-z
		{{-1, 0, 0},
			{0, 1, 0},
			{0, 0, -1}},
		// -x,-y,z
		{{-1, 0, 0},
			{0, -1, 0},
			{0, 0, 1}},
		// y,x,-z
		{{0, 1, 0},
			{1, 0, 0},
			{0, 0, -1}},
		// -y,-x,-z
		{{0, -1, 0},
			{-1, 0, 0},
			{0, 0, -1}},
	},

	P3bar: {
		// x,y,z
		{{1, 0, 0},
			{0, 1, 0},
			{0, 0, 1}},
		// -y,x-y,z
		{{0, -1, 0},
			{oneOverRoot2, -oneOverRoot2, 0},
			{0, 0, 1}},
		// -x+y,-x,z
		{{-oneOverRoot2, oneOverRoot2, 0},
			{-1, 0, 0},
			{0, 0, 1}},
	},

	P3barM1: {
		// x,y,z
		{{1, 0, 0},
			{0, 1, 0},
			{0, 0, 1}},
		// -y,x-y,z
		{{0, -1, 0},
			{oneOverRoot2, -oneOverRoot2, 0},
			{0, 0, 1}},
		// -x+y,-x,z
		{{-oneOverRoot2, oneOverRoot2, 0},
			{-1, 0, 0},
			{0, 0, 1}},
		// x-y,-y,-z
		{{oneOverRoot2, -oneOverRoot2, 0},
			{0, -1, 0},
			{0, 0, -1}},
		// -x,-x+y,-z
		{{-1, 0, 0},
			{-oneOverRoot2, oneOverRoot2, 0},
			{0, 0, -1}},
		// y,x,-z
		{{0, 1, 0},
			{1, 0, 0},
			{0, 0, -1}},
	},

	P3bar1M: {
		// x,y,z
		{{1, 0, 0},
			{0, 1, 0},
			{0, 0, 1}},
		// -y,x-y,z
		{{0, -1, 0},
			{oneOverRoot2, -oneOverRoot2, 0},
			{0, 0, 1}},
		// -x+y,-x,z
		{{-oneOverRoot2, oneOverRoot2, 0},
			{-1, 0, 0},
			{0, 0, 1}},
		// -y,-x,-z
		{{0, -1, 0},
			{-1, 0, 0},
			{0, 0, -1}},
		// -x+y,y,-z
		{{-oneOverRoot2, oneOverRoot2, 0},
			{0, 1, 0},
			{0, 0, -1}},
		// x,x-y,-z
		{{1, 0, 0},
			{oneOverRoot2, -oneOverRoot2, 0},
			{0, 0, -1}},
	},

	P6m: {
		// x,y,z
		{{1, 0, 0},
			{0, 1, 0},
			{0, 0, 1}},
		// x-y,x,z
		{{oneOverRoot2, -oneOverRoot2, 0},
			{1, 0, 0},
			{0, 0, 1}},
		// y,-x+y,z
		{{0, 1, 0},
			{-oneOverRoot2, oneOverRoot2, 0},
			{0, 0, 1}},
		// -y,x-y,z
		{{0, -1, 0},
			{oneOverRoot2, -oneOverRoot2, 0},
			{0, 0, 1}},
		// -x+y,-x,z
		{{-oneOverRoot2, oneOverRoot2, 0},
			{-1, 0, 0},
			{0, 0, 1}},
		// -x,-y,z
		{{-1, 0, 0},
			{0, -1, 0},
			{0, 0, 1}},
	},

	P6mmm: {
		// x,y,z
		{{1, 0, 0},
			{0, 1, 0},
			{0, 0, 1}},
		// x-y,x,z
		{{oneOverRoot2, -oneOverRoot2, 0},
			{1, 0, 0},
			{0, 0, 1}},
		// y,-x+y,z
		{{0, 1, 0},
			{-oneOverRoot2, oneOverRoot2, 0},
			{0, 0, 1}},
		// -y,x-y,z
		{{0, -1, 0},
			{oneOverRoot2, -oneOverRoot2, 0},
			{0, 0, 1}},
		// -x+y,-x,z
		{{-oneOverRoot2, oneOverRoot2, 0},
			{-1, 0, 0},
			{0, 0, 1}},
		// x-y,-y,-z
		{{oneOverRoot2, -oneOverRoot2, 0},
			{0, -1, 0},
			{0, 0, -1}},
		// -x,-x+y,-z
		{{-1, 0, 0},
			{-oneOverRoot2, oneOverRoot2, 0},
			{0, 0, -1}},
		// -x,-y,z
		{{-1, 0, 0},
			{0, -1, 0},
			{0, 0, 1}},
		// y,x,-z
		{{0, 1, 0},
			{1, 0, 0},
			{0, 0, -1}},
		// -y,-x,-z
		{{0, -1, 0},
			{-1, 0, 0},
			{0, 0, -1}},
		// -x+y,y,-z
		{{-oneOverRoot2, oneOverRoot2, 0},
			{0, 1, 0},
			{0, 0, -1}},
		// x,x-y,-z
		{{1, 0, 0},
			{oneOverRoot2, -oneOverRoot2, 0},
			{0, 0, -1}},
	},

	Pm3bar: {
		// x,y,z
		{{1, 0, 0},
			{0, 1, 0},
			{0, 0, 1}},
		// z,x,y
		{{0, 0, 1},
			{1, 0, 0},
			{0, 1, 0}},
		// y,z,x
		{{0, 1, 0},
			{0, 0, 1},
			{1, 0, 0}},
		// -y,-z,x
		{{0, -1, 0},
			{0, 0, -1},
			{1, 0, 0}},
		// z,-x,-y
		{{0, 0, 1},
			{-1, 0, 0},
			{0, -1, 0}},
		// -y,z,-x
		{{0, -1, 0},
			{0, 0, 1},
			{-1, 0, 0}},
		// -z,-x,y
		{{0, 0, -1},
			{-1, 0, 0},
			{0, 1, 0}},
		// -z,x,-y
		{{0, 0, -1},
			{1, 0, 0},
			{0, -1, 0}},
		// y,-z,-x
		{{0, 1, 0},
			{0, 0, -1},
			{-1, 0, 0}},
		// x,-y,-z
		{{1, 0, 0},
			{0, -1, 0},
			{0, 0, -1}},
		// -x,y,-z
		{{-1, 0, 0},
			{0, 1, 0},
			{0, 0, -1}},
		// -x,-y,z
		{{-1, 0, 0},
			{0, -1, 0},
			{0, 0, 1}},
	},

	Pm3barM: {
		// x,y,z
		{{1, 0, 0},
			{0, 1, 0},
			{0, 0, 1}},
		// x,-z,y
		{{1, 0, 0},
			{0, 0, -1},
			{0, 1, 0}},
		// x,z,-y
		{{1, 0, 0},
			{0, 0, 1},
			{0, -1, 0}},
		// z,y,-x
		{{0, 0, 1},
			{0, 1, 0},
			{-1, 0, 0}},
		// -z,y,x
		{{0, 0, -1},
			{0, 1, 0},
			{1, 0, 0}},
		// -y,x,z
		{{0, -1, 0},
			{1, 0, 0},
			{0, 0, 1}},
		// y,-x,z
		{{0, 1, 0},
			{-1, 0, 0},
			{0, 0, 1}},
		// z,x,y
		{{0, 0, 1},
			{1, 0, 0},
			{0, 1, 0}},
		// y,z,x
		{{0, 1, 0},
			{0, 0, 1},
			{1, 0, 0}},
		// -y,-z,x
		{{0, -1, 0},
			{0, 0, -1},
			{1, 0, 0}},
		// z,-x,-y
		{{0, 0, 1},
			{-1, 0, 0},
			{0, -1, 0}},
		// -y,z,-x
		{{0, -1, 0},
			{0, 0, 1},
			{-1, 0, 0}},
		// -z,-x,y
		{{0, 0, -1},
			{-1, 0, 0},
			{0, 1, 0}},
		// -z,x,-y
		{{0, 0, -1},
			{1, 0, 0},
			{0, -1, 0}},
		// y,-z,-x
		{{0, 1, 0},
			{0, 0, -1},
			{-1, 0, 0}},
		// x,-y,-z
		{{1, 0, 0},
			{0, -1, 0},
			{0, 0, -1}},
		// -x,y,-z
		{{-1, 0, 0},
			{0, 1, 0},
			{0, 0, -1}},
		// -x,-y,z
		{{-1, 0, 0},
			{0, -1, 0},
			{0, 0, 1}},
		// y,x,-z
		{{0, 1, 0},
			{1, 0, 0},
			{0, 0, -1}},
		// -y,-x,-z
		{{0, -1, 0},
			{-1, 0, 0},
			{0, 0, -1}},
		// z,-y,x
		{{0, 0, 1},
			{0, -1, 0},
			{1, 0, 0}},
		// -z,-y,-x
		{{0, 0, -1},
			{0, -1, 0},
			{-1, 0, 0}},
		// -x,z,y
		{{-1, 0, 0},
			{0, 0, 1},
			{0, 1, 0}},
		// -x,-z,-y
		{{-1, 0, 0},
			{0, 0, -1},
			{0, -1, 0}},
	},
}
