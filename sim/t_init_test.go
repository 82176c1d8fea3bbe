// Copyright 2025 The Motorcycle Dynamics Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sim

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func init() {
	io.Verbose = false
}

func verbose() {
	io.Verbose = true
	chk.Verbose = true
}

// cantilever returns a single fully fixed member along the x-axis with a
// transverse tip load P
func cantilever(mode Mode, E, A, I, L, P float64) *Model {
	return &Model{
		Nodes: []*Node{
			{ID: "n0", X: 0, Y: 0, Constraints: &Constraint{FixX: true, FixY: true, FixRotation: true}},
			{ID: "n1", X: L, Y: 0},
		},
		Members: []*Member{
			{ID: "m0", Start: "n0", End: "n1", E: E, A: A, I: I},
		},
		Loads: []*Load{
			{NodeID: "n1", Fy: P},
		},
		Mode: mode,
	}
}
