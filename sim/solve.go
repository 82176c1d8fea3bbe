// Copyright 2025 The Motorcycle Dynamics Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sim

// Solve runs the full pipeline on one model: validation, determinacy check
// (truss mode), element formulation, assembly, reduction and solve, and
// internal force recovery. It is a pure synchronous function; concurrent
// calls with distinct models need no locking since each solve owns its own
// matrices and working buffers.
//
// Failure outcomes, all deterministic functions of the input:
//  *InvalidModelError -- a model invariant is violated (before assembly)
//  *DeterminacyError  -- truss mode only: m + r != 2j
//  *MechanismError    -- the reduced stiffness matrix is singular
func Solve(m *Model) (res *Result, err error) {

	// validate even when returning a trivial result: errors must never be
	// masked by the empty-model shortcut
	if err = m.Check(); err != nil {
		return nil, err
	}

	// zero nodes or zero members: trivial zero-displacement result instead
	// of a degenerate solve
	if len(m.Nodes) == 0 || len(m.Members) == 0 {
		res = &Result{
			Displacements:  make([]NodeResult, len(m.Nodes)),
			InternalForces: make([]MemberForce, len(m.Members)),
		}
		for i, n := range m.Nodes {
			res.Displacements[i].ID = n.ID
		}
		return
	}

	// truss topologies are gated by the cheap integer check before the
	// numeric pipeline runs
	if m.Mode == Truss {
		if cnt := CountDeterminacy(m); !cnt.IsDeterminate() {
			return nil, &DeterminacyError{Count: cnt}
		}
	}

	// assemble and solve
	dom, err := NewDomain(m)
	if err != nil {
		return nil, err
	}
	U, err := dom.SolveSystem()
	if err != nil {
		return nil, err
	}

	// recover results
	return &Result{
		Displacements:  dom.displacements(U),
		InternalForces: dom.recoverForces(U),
	}, nil
}
