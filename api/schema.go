// Copyright 2025 The Motorcycle Dynamics Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package api exposes the solver and design store over HTTP. All physical
// quantities cross this boundary in SI units; clients working in other unit
// systems convert before calling (or store designs, which carry their units).
package api

import (
	"github.com/michaelfdickey/motorcycle-dynamics-v3/sim"
)

// NodeConstraint mirrors the solver's boundary condition flags
type NodeConstraint struct {
	FixX        bool `json:"fix_x"`
	FixY        bool `json:"fix_y"`
	FixRotation bool `json:"fix_rotation"`
}

// NodeInput is one joint of a simulation request
type NodeInput struct {
	ID          string          `json:"id"`
	X           float64         `json:"x"`
	Y           float64         `json:"y"`
	Constraints *NodeConstraint `json:"constraints,omitempty"`
}

// BeamInput is one member of a simulation request
type BeamInput struct {
	ID        string  `json:"id"`
	NodeStart string  `json:"node_start"`
	NodeEnd   string  `json:"node_end"`
	E         float64 `json:"E"`
	I         float64 `json:"I"`
	A         float64 `json:"A"`
}

// LoadInput is one concentrated nodal load of a simulation request
type LoadInput struct {
	NodeID string  `json:"node_id"`
	Fx     float64 `json:"Fx"`
	Fy     float64 `json:"Fy"`
	Moment float64 `json:"Moment"`
}

// SimulationInput is the request body of POST /api/simulate
type SimulationInput struct {
	Nodes        []NodeInput `json:"nodes"`
	Beams        []BeamInput `json:"beams"`
	Loads        []LoadInput `json:"loads"`
	AnalysisType string      `json:"analysis_type"` // "frame" (default) or "truss"
}

// NodeResult is one node of a simulation response
type NodeResult struct {
	ID       string  `json:"id"`
	Ux       float64 `json:"ux"`
	Uy       float64 `json:"uy"`
	Rotation float64 `json:"rotation"`
}

// BeamInternalForce is one member of a simulation response
type BeamInternalForce struct {
	ID          string  `json:"id"`
	Axial       float64 `json:"axial"`
	ShearStart  float64 `json:"shear_start"`
	ShearEnd    float64 `json:"shear_end"`
	MomentStart float64 `json:"moment_start"`
	MomentEnd   float64 `json:"moment_end"`
}

// SimulationResult is the response body of POST /api/simulate
type SimulationResult struct {
	Displacements  []NodeResult        `json:"displacements"`
	InternalForces []BeamInternalForce `json:"internal_forces"`
}

// model converts a request to a solver model
func (o *SimulationInput) model() (*sim.Model, error) {
	m := &sim.Model{Mode: sim.Frame}
	switch o.AnalysisType {
	case "", "frame":
	case "truss":
		m.Mode = sim.Truss
	default:
		return nil, &sim.InvalidModelError{Msg: "unknown analysis_type " + o.AnalysisType}
	}
	for _, n := range o.Nodes {
		node := &sim.Node{ID: n.ID, X: n.X, Y: n.Y}
		if n.Constraints != nil {
			node.Constraints = &sim.Constraint{
				FixX:        n.Constraints.FixX,
				FixY:        n.Constraints.FixY,
				FixRotation: n.Constraints.FixRotation,
			}
		}
		m.Nodes = append(m.Nodes, node)
	}
	for _, b := range o.Beams {
		m.Members = append(m.Members, &sim.Member{
			ID:    b.ID,
			Start: b.NodeStart,
			End:   b.NodeEnd,
			E:     b.E,
			A:     b.A,
			I:     b.I,
		})
	}
	for _, l := range o.Loads {
		m.Loads = append(m.Loads, &sim.Load{NodeID: l.NodeID, Fx: l.Fx, Fy: l.Fy, Moment: l.Moment})
	}
	return m, nil
}

// newSimulationResult converts a solver result to the wire format
func newSimulationResult(res *sim.Result) *SimulationResult {
	out := &SimulationResult{
		Displacements:  make([]NodeResult, len(res.Displacements)),
		InternalForces: make([]BeamInternalForce, len(res.InternalForces)),
	}
	for i, d := range res.Displacements {
		out.Displacements[i] = NodeResult{ID: d.ID, Ux: d.Ux, Uy: d.Uy, Rotation: d.Rotation}
	}
	for i, f := range res.InternalForces {
		out.InternalForces[i] = BeamInternalForce{
			ID:          f.ID,
			Axial:       f.Axial,
			ShearStart:  f.ShearStart,
			ShearEnd:    f.ShearEnd,
			MomentStart: f.MomentStart,
			MomentEnd:   f.MomentEnd,
		}
	}
	return out
}
