// Copyright 2025 The Motorcycle Dynamics Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ana

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func Test_cantilever01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("cantilever01. tip-loaded cantilever closed form")

	c := CantileverEndLoad{E: 210e9, I: 1e-6, L: 2.0, P: -1000.0}
	io.Pforan("δ=%v θ=%v M=%v\n", c.TipDeflection(), c.TipRotation(), c.FixedEndMoment())
	chk.Scalar(tst, "tip deflection", 1e-17, c.TipDeflection(), -1000.0*8.0/(3.0*210e9*1e-6))
	chk.Scalar(tst, "tip rotation", 1e-17, c.TipRotation(), -1000.0*4.0/(2.0*210e9*1e-6))
	chk.Scalar(tst, "fixed-end moment", 1e-17, c.FixedEndMoment(), 2000.0)
}

func Test_axialrod01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("axialrod01. axially loaded rod closed form")

	r := AxialRod{E: 200e9, A: 1e-3, L: 3.0, P: 5000.0}
	io.Pforan("δ=%v N=%v\n", r.Elongation(), r.Force())
	chk.Scalar(tst, "elongation", 1e-17, r.Elongation(), 5000.0*3.0/(200e9*1e-3))
	chk.Scalar(tst, "axial force", 1e-17, r.Force(), 5000.0)
}

func Test_simplebeam01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("simplebeam01. simply supported beam, centre load")

	b := SimpleBeamCentreLoad{E: 210e9, I: 2e-6, L: 4.0, P: -10e3}
	io.Pforan("δ=%v θ=%v\n", b.CentreDeflection(), b.EndRotation())
	chk.Scalar(tst, "centre deflection", 1e-17, b.CentreDeflection(), -10e3*64.0/(48.0*210e9*2e-6))
	chk.Scalar(tst, "end rotation", 1e-17, b.EndRotation(), -10e3*16.0/(16.0*210e9*2e-6))
}
