// Copyright 2025 The Motorcycle Dynamics Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sim

import (
	"math"

	"github.com/cpmech/gosl/la"
)

// zeroRowTol is the load magnitude below which a structurally decoupled DOF
// (all-zero stiffness row) is accepted as simply unloaded
const zeroRowTol = 1e-12

// singTol is the relative residual above which a solution of the reduced
// system is rejected as coming from a singular or near-singular matrix
const singTol = 1e-8

// SolveSystem partitions the global DOFs into fixed and free sets, solves the
// reduced system K_ff * u_f = F_f and returns the full displacement vector U
// (fixed DOFs are zero). A singular or near-singular reduced matrix yields a
// *MechanismError.
func (o *Domain) SolveSystem() (U []float64, err error) {

	// partition DOFs. a free DOF with an all-zero stiffness row is
	// structurally decoupled (e.g. rotations of nodes touched only by truss
	// members): it stays at zero displacement unless it carries a load, in
	// which case equilibrium is impossible
	U = make([]float64, o.Ny)
	var free []int
	for r := 0; r < o.Ny; r++ {
		if o.fixed(r) {
			continue
		}
		if o.zeroRow(r) {
			if math.Abs(o.F[r]) > zeroRowTol {
				n := o.Model.Nodes[r/nDofNode]
				return nil, mechanismErr("node %q carries a load on a DOF without stiffness", n.ID)
			}
			continue
		}
		free = append(free, r)
	}

	// all DOFs constrained or decoupled: trivial zero solution
	nf := len(free)
	if nf == 0 {
		return
	}

	// reduced system
	Kff := la.MatAlloc(nf, nf)
	Ff := make([]float64, nf)
	for i, I := range free {
		for j, J := range free {
			Kff[i][j] = o.K[I][J]
		}
		Ff[i] = o.F[I]
	}

	// dense direct solve; the matrix is small for this domain
	Kfi := la.MatAlloc(nf, nf)
	if err = la.MatInvG(Kfi, Kff, 1e-13); err != nil {
		return nil, mechanismErr("stiffness matrix is singular; structure is unstable or has insufficient supports")
	}
	uf := make([]float64, nf)
	la.MatVecMul(uf, 1, Kfi, Ff) // uf := 1 * inv(Kff) * Ff

	// reject near-singular systems: the inverse of an ill-conditioned matrix
	// may still be computable but leaves a large equilibrium residual
	res := make([]float64, nf)
	la.MatVecMul(res, 1, Kff, uf)
	for i := 0; i < nf; i++ {
		res[i] -= Ff[i]
	}
	scale := la.VecNorm(Ff)
	if scale < 1 {
		scale = 1
	}
	if la.VecNorm(res) > singTol*scale {
		return nil, mechanismErr("stiffness matrix is near-singular; structure is unstable or has insufficient supports")
	}

	// scatter back to full vector
	for i, I := range free {
		U[I] = uf[i]
	}
	return
}

// Reactions computes the support reactions R = K*U - F at all fixed DOFs.
// The returned vector has length Ny with zeros at free DOFs.
func (o *Domain) Reactions(U []float64) (R []float64) {
	R = make([]float64, o.Ny)
	ku := make([]float64, o.Ny)
	la.MatVecMul(ku, 1, o.K, U) // ku := 1 * K * U
	for r := 0; r < o.Ny; r++ {
		if o.fixed(r) {
			R[r] = ku[r] - o.F[r]
		}
	}
	return
}

// fixed tells whether global equation r is constrained to zero displacement
func (o *Domain) fixed(r int) bool {
	ct := o.Model.Nodes[r/nDofNode].Constraints
	if ct == nil {
		return false
	}
	switch r % nDofNode {
	case 0:
		return ct.FixX
	case 1:
		return ct.FixY
	}
	return ct.FixRotation
}

// zeroRow tells whether row r of the global stiffness matrix has no entries.
// Decoupled DOFs are never written to during assembly, so exact comparison
// is intended.
func (o *Domain) zeroRow(r int) bool {
	for j := 0; j < o.Ny; j++ {
		if o.K[r][j] != 0 {
			return false
		}
	}
	return true
}
