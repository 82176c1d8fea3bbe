// Copyright 2025 The Motorcycle Dynamics Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sim

import (
	"math"

	"github.com/cpmech/gosl/la"
)

// nDofNode is the number of degrees of freedom per node: ux, uy, rz
const nDofNode = 3

// nDofElem is the number of element equations: two nodes with 3 DOFs each
const nDofElem = 2 * nDofNode

// Beam represents one 2D structural member element (Euler-Bernoulli, linear
// elastic). In frame mode the local stiffness couples axial and bending
// response; in truss mode only the axial block is populated and the rotation
// rows/columns stay zero.
//
//         s
//         ^
//         |                                  Props:  Nodes:
//         o-------------------------------o   E, A    0 and 1
//         |                               |   I
//         |                               |
//        (0)-----------------------------(1)------> t
//
type Beam struct {

	// basic data
	Member *Member // member description (read-only)
	Mode   Mode    // analysis mode shared by all elements of one solve

	// derived geometry
	L     float64 // length of member
	Theta float64 // angle from global x-axis = atan2(dy, dx)

	// vectors and matrices
	T  [][]float64 // global-to-local transformation [6][6]
	Kl [][]float64 // local K matrix
	K  [][]float64 // global K matrix == trans(T) * Kl * T

	// assembly map (location array/element equations)
	Umap []int
}

// newBeam computes the element matrices of member mb connecting nodes a and b
// whose positions in Model.Nodes are ia and ib
func newBeam(mb *Member, a, b *Node, ia, ib int, mode Mode) (o *Beam) {

	// basic data
	o = new(Beam)
	o.Member = mb
	o.Mode = mode

	// T
	dx := b.X - a.X
	dy := b.Y - a.Y
	l := math.Hypot(dx, dy)
	o.L = l
	o.Theta = math.Atan2(dy, dx)
	c := dx / l
	s := dy / l
	o.T = la.MatAlloc(nDofElem, nDofElem)
	o.T[0][0] = c
	o.T[0][1] = s
	o.T[1][0] = -s
	o.T[1][1] = c
	o.T[2][2] = 1
	o.T[3][3] = c
	o.T[3][4] = s
	o.T[4][3] = -s
	o.T[4][4] = c
	o.T[5][5] = 1

	// aux vars
	ll := l * l
	m := mb.E * mb.A / l
	n := mb.E * mb.I / (ll * l)

	// local K: axial block
	o.Kl = la.MatAlloc(nDofElem, nDofElem)
	o.Kl[0][0] = m
	o.Kl[0][3] = -m
	o.Kl[3][0] = -m
	o.Kl[3][3] = m

	// local K: bending block (frame mode only)
	if mode == Frame {
		o.Kl[1][1] = 12 * n
		o.Kl[1][2] = 6 * l * n
		o.Kl[1][4] = -12 * n
		o.Kl[1][5] = 6 * l * n
		o.Kl[2][1] = 6 * l * n
		o.Kl[2][2] = 4 * ll * n
		o.Kl[2][4] = -6 * l * n
		o.Kl[2][5] = 2 * ll * n
		o.Kl[4][1] = -12 * n
		o.Kl[4][2] = -6 * l * n
		o.Kl[4][4] = 12 * n
		o.Kl[4][5] = -6 * l * n
		o.Kl[5][1] = 6 * l * n
		o.Kl[5][2] = 2 * ll * n
		o.Kl[5][4] = -6 * l * n
		o.Kl[5][5] = 4 * ll * n
	}

	// K in global system
	o.K = la.MatAlloc(nDofElem, nDofElem)
	la.MatTrMul3(o.K, 1, o.T, o.Kl, o.T) // K := 1 * trans(T) * Kl * T

	// assembly map
	o.Umap = make([]int, nDofElem)
	for i := 0; i < nDofNode; i++ {
		o.Umap[i] = ia*nDofNode + i
		o.Umap[i+nDofNode] = ib*nDofNode + i
	}
	return
}
