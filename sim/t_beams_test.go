// Copyright 2025 The Motorcycle Dynamics Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sim

import (
	"errors"
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"github.com/michaelfdickey/motorcycle-dynamics-v3/ana"
)

func Test_beam01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("beam01. cantilever with transverse tip load")

	E, A, I, L, P := 210e9, 1e-3, 1e-6, 1.0, -1000.0
	res, err := Solve(cantilever(Frame, E, A, I, L, P))
	if err != nil {
		tst.Errorf("Solve failed:\n%v", err)
		return
	}

	// closed form
	sol := ana.CantileverEndLoad{E: E, I: I, L: L, P: P}
	tip := res.Displacements[1]
	io.Pforan("uy(tip) = %v (%v)\n", tip.Uy, sol.TipDeflection())
	io.Pforan("rz(tip) = %v (%v)\n", tip.Rotation, sol.TipRotation())
	chk.Scalar(tst, "tip deflection", 1e-12, tip.Uy, sol.TipDeflection())
	chk.Scalar(tst, "tip rotation", 1e-12, tip.Rotation, sol.TipRotation())
	chk.Scalar(tst, "tip ux", 1e-15, tip.Ux, 0)

	// fixed end stays put
	chk.Scalar(tst, "support ux", 1e-17, res.Displacements[0].Ux, 0)
	chk.Scalar(tst, "support uy", 1e-17, res.Displacements[0].Uy, 0)
	chk.Scalar(tst, "support rz", 1e-17, res.Displacements[0].Rotation, 0)

	// internal forces: no axial, constant shear, linear moment
	f := res.InternalForces[0]
	io.Pforan("axial=%v V=[%v %v] M=[%v %v]\n", f.Axial, f.ShearStart, f.ShearEnd, f.MomentStart, f.MomentEnd)
	chk.Scalar(tst, "axial", 1e-9, f.Axial, 0)
	chk.Scalar(tst, "shear @ start", 1e-9, f.ShearStart, -P)
	chk.Scalar(tst, "shear @ end", 1e-9, f.ShearEnd, -P)
	chk.Scalar(tst, "moment @ start", 1e-9, f.MomentStart, sol.FixedEndMoment())
	chk.Scalar(tst, "moment @ end", 1e-9, f.MomentEnd, 0)
}

func Test_beam02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("beam02. simply supported beam, centre load")

	E, A, I, L, P := 210e9, 2e-3, 2e-6, 4.0, -10e3
	m := &Model{
		Nodes: []*Node{
			{ID: "left", X: 0, Y: 0, Constraints: &Constraint{FixX: true, FixY: true}},
			{ID: "mid", X: L / 2, Y: 0},
			{ID: "right", X: L, Y: 0, Constraints: &Constraint{FixY: true}},
		},
		Members: []*Member{
			{ID: "m0", Start: "left", End: "mid", E: E, A: A, I: I},
			{ID: "m1", Start: "mid", End: "right", E: E, A: A, I: I},
		},
		Loads: []*Load{{NodeID: "mid", Fy: P}},
		Mode:  Frame,
	}
	res, err := Solve(m)
	if err != nil {
		tst.Errorf("Solve failed:\n%v", err)
		return
	}

	sol := ana.SimpleBeamCentreLoad{E: E, I: I, L: L, P: P}
	mid := res.Displacements[1]
	io.Pforan("uy(mid) = %v (%v)\n", mid.Uy, sol.CentreDeflection())
	chk.Scalar(tst, "centre deflection", 1e-12, mid.Uy, sol.CentreDeflection())
	chk.Scalar(tst, "left rotation", 1e-12, res.Displacements[0].Rotation, sol.EndRotation())
	chk.Scalar(tst, "right rotation", 1e-12, res.Displacements[2].Rotation, -sol.EndRotation())

	// midspan moment from either member end: M = P*L/4
	chk.Scalar(tst, "moment @ centre", 1e-8, res.InternalForces[0].MomentEnd, P*L/4)
}

func Test_beam03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("beam03. global matrix symmetry and reaction equilibrium")

	// portal frame: two columns and one girder, fixed feet, lateral load
	E, A, I := 200e9, 5e-3, 8e-6
	m := &Model{
		Nodes: []*Node{
			{ID: "f1", X: 0, Y: 0, Constraints: &Constraint{FixX: true, FixY: true, FixRotation: true}},
			{ID: "f2", X: 4, Y: 0, Constraints: &Constraint{FixX: true, FixY: true, FixRotation: true}},
			{ID: "t1", X: 0, Y: 3},
			{ID: "t2", X: 4, Y: 3},
		},
		Members: []*Member{
			{ID: "c1", Start: "f1", End: "t1", E: E, A: A, I: I},
			{ID: "c2", Start: "f2", End: "t2", E: E, A: A, I: I},
			{ID: "g", Start: "t1", End: "t2", E: E, A: A, I: I},
		},
		Loads: []*Load{
			{NodeID: "t1", Fx: 25e3},
			{NodeID: "t2", Fy: -40e3, Moment: 5e3},
		},
		Mode: Frame,
	}
	dom, err := NewDomain(m)
	if err != nil {
		tst.Errorf("NewDomain failed:\n%v", err)
		return
	}

	// symmetry invariant of the assembled matrix
	maxasym := 0.0
	for i := 0; i < dom.Ny; i++ {
		for j := i + 1; j < dom.Ny; j++ {
			if d := math.Abs(dom.K[i][j] - dom.K[j][i]); d > maxasym {
				maxasym = d
			}
		}
	}
	io.Pforan("max asymmetry = %v\n", maxasym)
	chk.Scalar(tst, "K symmetry", 1e-6, maxasym, 0)

	// rigid-body equilibrium: reactions balance applied loads, including
	// moments of forces about the origin
	U, err := dom.SolveSystem()
	if err != nil {
		tst.Errorf("SolveSystem failed:\n%v", err)
		return
	}
	R := dom.Reactions(U)
	sumFx, sumFy, sumM := 0.0, 0.0, 0.0
	for i, n := range m.Nodes {
		r := 3 * i
		fx := R[r] + dom.F[r]
		fy := R[r+1] + dom.F[r+1]
		mz := R[r+2] + dom.F[r+2]
		sumFx += fx
		sumFy += fy
		sumM += mz + n.X*fy - n.Y*fx
	}
	io.Pforan("ΣFx=%v ΣFy=%v ΣM=%v\n", sumFx, sumFy, sumM)
	chk.Scalar(tst, "ΣFx", 1e-7, sumFx, 0)
	chk.Scalar(tst, "ΣFy", 1e-7, sumFy, 0)
	chk.Scalar(tst, "ΣM", 1e-7, sumM, 0)
}

func Test_beam04(tst *testing.T) {

	//verbose()
	chk.PrintTitle("beam04. linearity and determinism")

	E, A, I, L, P := 210e9, 1e-3, 1e-6, 2.0, -3000.0
	res1, err := Solve(cantilever(Frame, E, A, I, L, P))
	if err != nil {
		tst.Errorf("Solve failed:\n%v", err)
		return
	}
	res2, err := Solve(cantilever(Frame, E, A, I, L, 2*P))
	if err != nil {
		tst.Errorf("Solve failed:\n%v", err)
		return
	}

	// superposition: doubling the load doubles every displacement
	for i := range res1.Displacements {
		chk.Scalar(tst, "2*ux", 1e-12, res2.Displacements[i].Ux, 2*res1.Displacements[i].Ux)
		chk.Scalar(tst, "2*uy", 1e-12, res2.Displacements[i].Uy, 2*res1.Displacements[i].Uy)
		chk.Scalar(tst, "2*rz", 1e-12, res2.Displacements[i].Rotation, 2*res1.Displacements[i].Rotation)
	}

	// determinism: same model twice gives bit-identical results
	res3, err := Solve(cantilever(Frame, E, A, I, L, P))
	if err != nil {
		tst.Errorf("Solve failed:\n%v", err)
		return
	}
	for i := range res1.Displacements {
		if res1.Displacements[i] != res3.Displacements[i] {
			tst.Errorf("displacements differ between identical solves")
			return
		}
	}
	for i := range res1.InternalForces {
		if res1.InternalForces[i] != res3.InternalForces[i] {
			tst.Errorf("internal forces differ between identical solves")
			return
		}
	}
}

func Test_beam05(tst *testing.T) {

	//verbose()
	chk.PrintTitle("beam05. mechanism: frame without supports")

	E, A, I := 210e9, 1e-3, 1e-6
	m := &Model{
		Nodes: []*Node{
			{ID: "a", X: 0, Y: 0},
			{ID: "b", X: 1, Y: 0},
		},
		Members: []*Member{{ID: "m", Start: "a", End: "b", E: E, A: A, I: I}},
		Loads:   []*Load{{NodeID: "b", Fy: -1}},
		Mode:    Frame,
	}
	res, err := Solve(m)
	if err == nil {
		tst.Errorf("expected MechanismError, got result %v", res)
		return
	}
	var me *MechanismError
	if !errors.As(err, &me) {
		tst.Errorf("expected *MechanismError, got %T: %v", err, err)
		return
	}
	io.Pforan("err = %v\n", err)
}
