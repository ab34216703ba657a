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

package r3

import "fmt"

// Matrix represents a 3x3 matrix of floating point values, stored row-major.
type Matrix [3][3]float64

// Identity returns the identity matrix.
func Identity() Matrix {
	return Matrix{
		{1, 0, 0},
		{0, 1, 0},
		{0, 0, 1},
	}
}

// Diagonal returns a matrix with the given values on the diagonal and
// zeros everywhere else.
func Diagonal(x, y, z float64) Matrix {
	return Matrix{
		{x, 0, 0},
		{0, y, 0},
		{0, 0, z},
	}
}

// Row returns the given row as a Vector.
func (m Matrix) Row(i int) Vector {
	return Vector{m[i][0], m[i][1], m[i][2]}
}

// Col returns the given column as a Vector.
func (m Matrix) Col(i int) Vector {
	return Vector{m[0][i], m[1][i], m[2][i]}
}

// Transpose returns the transpose of the matrix.
func (m Matrix) Transpose() Matrix {
	return Matrix{
		{m[0][0], m[1][0], m[2][0]},
		{m[0][1], m[1][1], m[2][1]},
		{m[0][2], m[1][2], m[2][2]},
	}
}

// Scale returns the matrix with all entries multiplied by f.
func (m Matrix) Scale(f float64) Matrix {
	return Matrix{
		{f * m[0][0], f * m[0][1], f * m[0][2]},
		{f * m[1][0], f * m[1][1], f * m[1][2]},
		{f * m[2][0], f * m[2][1], f * m[2][2]},
	}
}

// MulVector returns the matrix-vector product m·v.
func (m Matrix) MulVector(v Vector) Vector {
	return Vector{
		m[0][0]*v.X + m[0][1]*v.Y + m[0][2]*v.Z,
		m[1][0]*v.X + m[1][1]*v.Y + m[1][2]*v.Z,
		m[2][0]*v.X + m[2][1]*v.Y + m[2][2]*v.Z,
	}
}

// MulMatrix returns the matrix product m·o.
func (m Matrix) MulMatrix(o Matrix) Matrix {
	var r Matrix
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			r[i][j] = m[i][0]*o[0][j] + m[i][1]*o[1][j] + m[i][2]*o[2][j]
		}
	}
	return r
}

// Det returns the determinant of the matrix.
func (m Matrix) Det() float64 {
	// Expansion along the first row.
	return m[0][0]*(m[1][1]*m[2][2]-m[1][2]*m[2][1]) -
		m[0][1]*(m[1][0]*m[2][2]-m[1][2]*m[2][0]) +
		m[0][2]*(m[1][0]*m[2][1]-m[1][1]*m[2][0])
}

// Trace returns the sum of the diagonal entries.
func (m Matrix) Trace() float64 {
	return m[0][0] + m[1][1] + m[2][2]
}

// Inverse returns the inverse of the matrix via the adjugate. The result is
// undefined for a singular matrix; callers that cannot rule that out should
// check Det first.
func (m Matrix) Inverse() Matrix {
	d := m.Det()
	inv := 1 / d
	return Matrix{
		{
			inv * (m[1][1]*m[2][2] - m[1][2]*m[2][1]),
			inv * (m[0][2]*m[2][1] - m[0][1]*m[2][2]),
			inv * (m[0][1]*m[1][2] - m[0][2]*m[1][1]),
		},
		{
			inv * (m[1][2]*m[2][0] - m[1][0]*m[2][2]),
			inv * (m[0][0]*m[2][2] - m[0][2]*m[2][0]),
			inv * (m[0][2]*m[1][0] - m[0][0]*m[1][2]),
		},
		{
			inv * (m[1][0]*m[2][1] - m[1][1]*m[2][0]),
			inv * (m[0][1]*m[2][0] - m[0][0]*m[2][1]),
			inv * (m[0][0]*m[1][1] - m[0][1]*m[1][0]),
		},
	}
}

// QuadForm returns the quadratic form vᵀ·m·v.
func (m Matrix) QuadForm(v Vector) float64 {
	return v.Dot(m.MulVector(v))
}

func (m Matrix) String() string {
	return fmt.Sprintf("[ %v %v %v ] [ %v %v %v ] [ %v %v %v ]",
		m[0][0], m[0][1], m[0][2],
		m[1][0], m[1][1], m[1][2],
		m[2][0], m[2][1], m[2][2],
	)
}
