// Copyright 2025 The Motorcycle Dynamics Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package ana provides closed-form (analytical) solutions of elementary
// structural members, used to verify the numerical solver
package ana

// CantileverEndLoad holds the Euler-Bernoulli solution of a prismatic
// cantilever fixed at one end and loaded with a transverse force P at the
// free tip
//
//              P
//              |
//    //|       V
//    //o================o
//    //|<------ L ----->|
//
type CantileverEndLoad struct {
	E float64 // Young's modulus
	I float64 // second moment of area
	L float64 // length
	P float64 // transverse tip load (sign carried through)
}

// TipDeflection returns the transverse deflection at the free end:
// δ = P·L³ / (3·E·I)
func (o CantileverEndLoad) TipDeflection() float64 {
	return o.P * o.L * o.L * o.L / (3.0 * o.E * o.I)
}

// TipRotation returns the rotation at the free end: θ = P·L² / (2·E·I)
func (o CantileverEndLoad) TipRotation() float64 {
	return o.P * o.L * o.L / (2.0 * o.E * o.I)
}

// FixedEndMoment returns the bending moment at the support: M = -P·L
func (o CantileverEndLoad) FixedEndMoment() float64 {
	return -o.P * o.L
}

// AxialRod holds the solution of a prismatic rod fixed at one end with an
// axial force P at the other (positive P = tension)
type AxialRod struct {
	E float64 // Young's modulus
	A float64 // cross-sectional area
	L float64 // length
	P float64 // axial load
}

// Elongation returns the change of length: δ = P·L / (E·A)
func (o AxialRod) Elongation() float64 {
	return o.P * o.L / (o.E * o.A)
}

// Force returns the internal axial force, constant along the rod
func (o AxialRod) Force() float64 {
	return o.P
}

// SimpleBeamCentreLoad holds the solution of a simply supported beam with a
// transverse point load P at midspan
type SimpleBeamCentreLoad struct {
	E float64 // Young's modulus
	I float64 // second moment of area
	L float64 // span
	P float64 // midspan load
}

// CentreDeflection returns the deflection under the load:
// δ = P·L³ / (48·E·I)
func (o SimpleBeamCentreLoad) CentreDeflection() float64 {
	return o.P * o.L * o.L * o.L / (48.0 * o.E * o.I)
}

// EndRotation returns the rotation at the start support:
// θ = P·L² / (16·E·I); the far support rotates by the opposite amount
func (o SimpleBeamCentreLoad) EndRotation() float64 {
	return o.P * o.L * o.L / (16.0 * o.E * o.I)
}
