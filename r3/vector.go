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

// Package r3 implements types and functions for working in real 3-space.
package r3

import (
	"fmt"
	"math"
)

// Vector represents a point in R3.
type Vector struct {
	X, Y, Z float64
}

// Add returns the sum of v and o.
func (v Vector) Add(o Vector) Vector {
	return Vector{v.X + o.X, v.Y + o.Y, v.Z + o.Z}
}

// Sub returns the difference of v and o.
func (v Vector) Sub(o Vector) Vector {
	return Vector{v.X - o.X, v.Y - o.Y, v.Z - o.Z}
}

// Mul returns the scalar multiple of v by m.
func (v Vector) Mul(m float64) Vector {
	return Vector{m * v.X, m * v.Y, m * v.Z}
}

// Dot returns the standard dot product of v and o.
func (v Vector) Dot(o Vector) float64 {
	return v.X*o.X + v.Y*o.Y + v.Z*o.Z
}

// Cross returns the standard cross product of v and o.
func (v Vector) Cross(o Vector) Vector {
	return Vector{
		v.Y*o.Z - v.Z*o.Y,
		v.Z*o.X - v.X*o.Z,
		v.X*o.Y - v.Y*o.X,
	}
}

// Norm returns the vector's norm.
func (v Vector) Norm() float64 {
	return math.Sqrt(v.Dot(v))
}

// Norm2 returns the square of the norm.
func (v Vector) Norm2() float64 {
	return v.Dot(v)
}

// ApproxEqual reports whether v and o are equal within a small epsilon.
func (v Vector) ApproxEqual(o Vector) bool {
	const epsilon = 1e-16
	return math.Abs(v.X-o.X) < epsilon &&
		math.Abs(v.Y-o.Y) < epsilon &&
		math.Abs(v.Z-o.Z) < epsilon
}

func (v Vector) String() string {
	return fmt.Sprintf("(%0.24f, %0.24f, %0.24f)", v.X, v.Y, v.Z)
}
