// Copyright 2025 The Motorcycle Dynamics Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sim

import (
	"errors"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func Test_model01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("model01. invariant violations")

	E, A, I := 210e9, 1e-3, 1e-6

	for _, tc := range []struct {
		label string
		model *Model
	}{
		{
			"duplicate node id",
			&Model{Nodes: []*Node{{ID: "a", X: 0}, {ID: "a", X: 1}}},
		},
		{
			"member references unknown node",
			&Model{
				Nodes:   []*Node{{ID: "a"}, {ID: "b", X: 1}},
				Members: []*Member{{ID: "m", Start: "a", End: "zzz", E: E, A: A, I: I}},
			},
		},
		{
			"member connecting a node to itself",
			&Model{
				Nodes:   []*Node{{ID: "a"}, {ID: "b", X: 1}},
				Members: []*Member{{ID: "m", Start: "a", End: "a", E: E, A: A, I: I}},
			},
		},
		{
			"zero-length member",
			&Model{
				Nodes:   []*Node{{ID: "a", X: 2, Y: 3}, {ID: "b", X: 2, Y: 3}},
				Members: []*Member{{ID: "m", Start: "a", End: "b", E: E, A: A, I: I}},
			},
		},
		{
			"non-positive E",
			&Model{
				Nodes:   []*Node{{ID: "a"}, {ID: "b", X: 1}},
				Members: []*Member{{ID: "m", Start: "a", End: "b", E: 0, A: A, I: I}},
			},
		},
		{
			"non-positive A",
			&Model{
				Nodes:   []*Node{{ID: "a"}, {ID: "b", X: 1}},
				Members: []*Member{{ID: "m", Start: "a", End: "b", E: E, A: -1, I: I}},
			},
		},
		{
			"zero I in frame mode",
			&Model{
				Nodes:   []*Node{{ID: "a"}, {ID: "b", X: 1}},
				Members: []*Member{{ID: "m", Start: "a", End: "b", E: E, A: A, I: 0}},
				Mode:    Frame,
			},
		},
		{
			"load on unknown node",
			&Model{
				Nodes: []*Node{{ID: "a"}},
				Loads: []*Load{{NodeID: "zzz", Fy: -1}},
			},
		},
	} {
		err := tc.model.Check()
		if err == nil {
			tst.Errorf("%s: expected error", tc.label)
			return
		}
		var ime *InvalidModelError
		if !errors.As(err, &ime) {
			tst.Errorf("%s: expected *InvalidModelError, got %T", tc.label, err)
			return
		}
		io.Pforan("%-40s => %v\n", tc.label, err)
	}
}

func Test_model02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("model02. zero I is valid in truss mode")

	m := &Model{
		Nodes: []*Node{
			{ID: "a", Constraints: &Constraint{FixX: true, FixY: true}},
			{ID: "b", X: 1, Constraints: &Constraint{FixY: true}},
		},
		Members: []*Member{{ID: "m", Start: "a", End: "b", E: 200e9, A: 1e-3, I: 0}},
		Mode:    Truss,
	}
	if err := m.Check(); err != nil {
		tst.Errorf("Check failed:\n%v", err)
	}
}

func Test_model03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("model03. empty model yields trivial result")

	res, err := Solve(&Model{Mode: Frame})
	if err != nil {
		tst.Errorf("Solve failed:\n%v", err)
		return
	}
	chk.IntAssert(len(res.Displacements), 0)
	chk.IntAssert(len(res.InternalForces), 0)

	// nodes but no members: zero displacements, no degenerate solve
	res, err = Solve(&Model{
		Nodes: []*Node{{ID: "a"}, {ID: "b", X: 1}},
		Mode:  Frame,
	})
	if err != nil {
		tst.Errorf("Solve failed:\n%v", err)
		return
	}
	chk.IntAssert(len(res.Displacements), 2)
	for _, d := range res.Displacements {
		chk.Scalar(tst, "ux", 1e-17, d.Ux, 0)
		chk.Scalar(tst, "uy", 1e-17, d.Uy, 0)
		chk.Scalar(tst, "rz", 1e-17, d.Rotation, 0)
	}
}
