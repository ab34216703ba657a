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

import "testing"

func TestNewGridValidatesLength(t *testing.T) {
	min, max := HKL{-1, -1, -1}, HKL{1, 1, 1}
	if _, err := NewGrid(min, max, make([]float64, 27)); err != nil {
		t.Errorf("NewGrid with 27 entries: %v", err)
	}
	if _, err := NewGrid(min, max, make([]float64, 26)); err == nil {
		t.Error("NewGrid with 26 entries succeeded, want error")
	}
	if _, err := NewGrid(max, min, make([]float64, 27)); err == nil {
		t.Error("NewGrid with inverted box succeeded, want error")
	}
}

func TestGridIndexRowMajor(t *testing.T) {
	min, max := HKL{-2, -1, 0}, HKL{3, 2, 4}
	rng := HKL{6, 4, 5}
	f := make([]float64, rng.H*rng.K*rng.L)
	for i := range f {
		f[i] = float64(i)
	}
	g, err := NewGrid(min, max, f)
	if err != nil {
		t.Fatalf("NewGrid: %v", err)
	}
	if got := g.Range(); got != rng {
		t.Fatalf("Range() = %v, want %v", got, rng)
	}

	// The last axis varies fastest.
	next := 0
	for h := min.H; h <= max.H; h++ {
		for k := min.K; k <= max.K; k++ {
			for l := min.L; l <= max.L; l++ {
				idx := HKL{h, k, l}
				if got := g.Index(idx); got != next {
					t.Fatalf("Index(%v) = %d, want %d", idx, got, next)
				}
				if got := g.At(idx); got != float64(next) {
					t.Fatalf("At(%v) = %v, want %v", idx, got, float64(next))
				}
				next++
			}
		}
	}
}

func TestGridContains(t *testing.T) {
	g, err := NewGrid(HKL{-1, -2, -3}, HKL{1, 2, 3}, make([]float64, 3*5*7))
	if err != nil {
		t.Fatalf("NewGrid: %v", err)
	}
	tests := []struct {
		h    HKL
		want bool
	}{
		{HKL{0, 0, 0}, true},
		{HKL{-1, -2, -3}, true},
		{HKL{1, 2, 3}, true},
		{HKL{2, 0, 0}, false},
		{HKL{0, -3, 0}, false},
		{HKL{0, 0, 4}, false},
	}
	for _, test := range tests {
		if got := g.Contains(test.h); got != test.want {
			t.Errorf("Contains(%v) = %v, want %v", test.h, got, test.want)
		}
	}
}
