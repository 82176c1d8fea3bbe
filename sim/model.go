// Copyright 2025 The Motorcycle Dynamics Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package sim implements a linear static solver for 2D frame and truss
// structures using the direct stiffness method. Each node carries three
// degrees of freedom (x-translation, y-translation, rotation); members are
// straight, prismatic and homogeneous; displacements are small and the
// material is linear elastic.
package sim

import "math"

// Mode selects how members couple nodal degrees of freedom
type Mode int

const (

	// Frame couples axial and Euler-Bernoulli bending response, with moment
	// continuity implied by shared rotation DOFs at connected nodes
	Frame Mode = iota

	// Truss restricts members to axial force only (pin-jointed behaviour);
	// rotation DOFs exist but are not coupled by member stiffness
	Truss
)

// String returns the lowercase name of the analysis mode
func (mode Mode) String() string {
	if mode == Truss {
		return "truss"
	}
	return "frame"
}

// Constraint holds the boundary condition flags of one node. A true flag
// fixes the corresponding DOF at zero displacement; prescribed nonzero
// displacements are not supported.
type Constraint struct {
	FixX        bool
	FixY        bool
	FixRotation bool
}

// Node is a joint of the structure. Coordinates are in metres.
type Node struct {
	ID          string
	X, Y        float64
	Constraints *Constraint // may be nil == fully free
}

// Member is a straight prismatic element connecting two distinct nodes.
//  E -- Young's modulus [Pa]
//  A -- cross-sectional area [m²]
//  I -- second moment of area [m⁴]; may be zero in truss mode only
type Member struct {
	ID         string
	Start, End string
	E, A, I    float64
}

// Load is a concentrated nodal action: forces in [N], moment in [N·m].
// Multiple loads on the same node are superposed during assembly.
type Load struct {
	NodeID string
	Fx, Fy float64
	Moment float64
}

// Model is the immutable description of one structure for one solve.
// The caller owns it; the solver only reads it.
type Model struct {
	Nodes   []*Node
	Members []*Member
	Loads   []*Load
	Mode    Mode
}

// NodeIndex returns the map from node id to position in Nodes. The position
// defines the global DOF numbering: node i owns equations 3i, 3i+1, 3i+2.
func (o *Model) NodeIndex() map[string]int {
	idx := make(map[string]int, len(o.Nodes))
	for i, n := range o.Nodes {
		idx[n.ID] = i
	}
	return idx
}

// Check validates all model invariants. It returns an *InvalidModelError
// describing the first violation found, or nil.
func (o *Model) Check() error {

	// nodes
	idx := make(map[string]int, len(o.Nodes))
	for i, n := range o.Nodes {
		if n.ID == "" {
			return invalidErr("node %d has an empty id", i)
		}
		if _, dup := idx[n.ID]; dup {
			return invalidErr("duplicate node id %q", n.ID)
		}
		idx[n.ID] = i
	}

	// members
	seen := make(map[string]bool, len(o.Members))
	for _, mb := range o.Members {
		if seen[mb.ID] {
			return invalidErr("duplicate member id %q", mb.ID)
		}
		seen[mb.ID] = true
		if mb.Start == mb.End {
			return invalidErr("member %q connects node %q to itself", mb.ID, mb.Start)
		}
		i, oki := idx[mb.Start]
		j, okj := idx[mb.End]
		if !oki {
			return invalidErr("member %q references unknown node %q", mb.ID, mb.Start)
		}
		if !okj {
			return invalidErr("member %q references unknown node %q", mb.ID, mb.End)
		}
		dx := o.Nodes[j].X - o.Nodes[i].X
		dy := o.Nodes[j].Y - o.Nodes[i].Y
		if math.Hypot(dx, dy) <= 0 {
			return invalidErr("member %q has zero length", mb.ID)
		}
		if mb.E <= 0 {
			return invalidErr("member %q must have positive E (got %g)", mb.ID, mb.E)
		}
		if mb.A <= 0 {
			return invalidErr("member %q must have positive A (got %g)", mb.ID, mb.A)
		}
		if mb.I < 0 {
			return invalidErr("member %q must have non-negative I (got %g)", mb.ID, mb.I)
		}
		if mb.I == 0 && o.Mode == Frame {
			return invalidErr("member %q needs I > 0 in frame mode", mb.ID)
		}
	}

	// loads
	for _, ld := range o.Loads {
		if _, ok := idx[ld.NodeID]; !ok {
			return invalidErr("load references unknown node %q", ld.NodeID)
		}
	}
	return nil
}
