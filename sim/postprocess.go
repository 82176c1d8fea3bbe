// Copyright 2025 The Motorcycle Dynamics Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sim

import "github.com/cpmech/gosl/la"

// NodeResult holds the computed displacements of one node
type NodeResult struct {
	ID       string
	Ux, Uy   float64
	Rotation float64
}

// MemberForce holds the internal end forces of one member in its local
// system. Sign convention, applied uniformly:
//  Axial  -- positive in tension
//  Shear  -- positive along the local +s axis at both ends
//  Moment -- positive counter-clockwise at both ends
// End values at the second node are negated so that start and end report the
// same convention along the member.
type MemberForce struct {
	ID          string
	Axial       float64
	ShearStart  float64
	ShearEnd    float64
	MomentStart float64
	MomentEnd   float64
}

// Result is the outcome of one solve. It is allocated fresh per solve and
// never mutated afterwards.
type Result struct {
	Displacements  []NodeResult
	InternalForces []MemberForce
}

// recoverForces computes the internal end forces of every element from the
// full displacement vector: u_local = T * u_elem; f_local = Kl * u_local
func (o *Domain) recoverForces(U []float64) (forces []MemberForce) {
	ue := make([]float64, nDofElem)
	ul := make([]float64, nDofElem)
	fl := make([]float64, nDofElem)
	forces = make([]MemberForce, len(o.Elems))
	for k, e := range o.Elems {
		for i, I := range e.Umap {
			ue[i] = U[I]
		}
		la.MatVecMul(ul, 1, e.T, ue)  // ul := 1 * T * ue
		la.MatVecMul(fl, 1, e.Kl, ul) // fl := 1 * Kl * ul
		forces[k] = MemberForce{
			ID:          e.Member.ID,
			Axial:       -fl[0], // tension positive
			ShearStart:  fl[1],
			MomentStart: fl[2],
			ShearEnd:    -fl[4],
			MomentEnd:   -fl[5],
		}
	}
	return
}

// displacements collects per-node results from the full displacement vector
func (o *Domain) displacements(U []float64) (disps []NodeResult) {
	disps = make([]NodeResult, len(o.Model.Nodes))
	for i, n := range o.Model.Nodes {
		r := nDofNode * i
		disps[i] = NodeResult{ID: n.ID, Ux: U[r], Uy: U[r+1], Rotation: U[r+2]}
	}
	return
}
