// Copyright 2025 The Motorcycle Dynamics Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sim

import "github.com/cpmech/gosl/la"

// Domain holds the assembled global equilibrium system of one solve. It owns
// all matrices and vectors; nothing is shared between concurrent solves.
type Domain struct {

	// input
	Model *Model         // model (read-only)
	Nidx  map[string]int // node id => position in Model.Nodes

	// elements
	Elems []*Beam // one element per member, in member order

	// global system
	Ny int         // total number of equations == 3 * number of nodes
	K  [][]float64 // global stiffness matrix [Ny][Ny]
	F  []float64   // global load vector [Ny]
}

// NewDomain validates the model, formulates all elements and assembles the
// global stiffness matrix and load vector
func NewDomain(m *Model) (o *Domain, err error) {

	// check invariants first; assembly assumes a valid model
	if err = m.Check(); err != nil {
		return nil, err
	}

	// basic data
	o = new(Domain)
	o.Model = m
	o.Nidx = m.NodeIndex()
	o.Ny = nDofNode * len(m.Nodes)
	o.K = la.MatAlloc(o.Ny, o.Ny)
	o.F = make([]float64, o.Ny)

	// formulate elements and scatter element stiffness: contributions from
	// members sharing a node accumulate additively
	o.Elems = make([]*Beam, len(m.Members))
	for k, mb := range m.Members {
		ia := o.Nidx[mb.Start]
		ib := o.Nidx[mb.End]
		e := newBeam(mb, m.Nodes[ia], m.Nodes[ib], ia, ib, m.Mode)
		for i, I := range e.Umap {
			for j, J := range e.Umap {
				o.K[I][J] += e.K[i][j]
			}
		}
		o.Elems[k] = e
	}

	// scatter loads; loads on the same node accumulate
	for _, ld := range m.Loads {
		r := nDofNode * o.Nidx[ld.NodeID]
		o.F[r] += ld.Fx
		o.F[r+1] += ld.Fy
		o.F[r+2] += ld.Moment
	}
	return
}
