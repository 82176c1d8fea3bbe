// Copyright 2025 The Motorcycle Dynamics Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package inp reads design documents (the editable description of a frame:
// nodes, members, supports, masses, loads) and lowers them to solver models.
// Designs may be authored in SI or inch-pound-second units; lowering always
// produces SI quantities since the solver core works in SI only.
package inp

import (
	"encoding/json"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"github.com/michaelfdickey/motorcycle-dynamics-v3/sim"
)

// Gravity is the acceleration used to convert nodal masses to static loads
const Gravity = 9.81 // m/s²

// conversion factors from inch-pound-second units to SI
const (
	inchToMetre        = 0.0254
	lbfToNewton        = 4.4482216152605
	psiToPascal        = 6894.757293168
	poundToKg          = 0.45359237
	in2ToM2            = inchToMetre * inchToMetre
	in4ToM4            = in2ToM2 * in2ToM2
	lbfInToNewtonMetre = lbfToNewton * inchToMetre
)

// DesignNode is a joint of the design. Support is one of "", "fixed", "pin"
// or "roller" ("" == free).
type DesignNode struct {
	ID      string  `json:"id"`
	X       float64 `json:"x"`
	Y       float64 `json:"y"`
	Support string  `json:"support,omitempty"`
}

// DesignMember is a member with section/material scalars in design units
type DesignMember struct {
	ID    string  `json:"id"`
	Start string  `json:"start"`
	End   string  `json:"end"`
	E     float64 `json:"E"`
	A     float64 `json:"A"`
	I     float64 `json:"I"`
}

// DesignMass is a lumped mass attached to a node; converted to a static
// gravity load during lowering
type DesignMass struct {
	Node string  `json:"node"`
	Kg   float64 `json:"kg"`
}

// DesignLoad is a concentrated nodal load in design units
type DesignLoad struct {
	Node   string  `json:"node"`
	Fx     float64 `json:"fx,omitempty"`
	Fy     float64 `json:"fy,omitempty"`
	Moment float64 `json:"moment,omitempty"`
}

// Design is one named, editable structure description. It is the document
// stored by the persistence layer and exchanged with the editing front-end.
type Design struct {
	Name    string         `json:"name"`
	Units   string         `json:"units,omitempty"` // "si" (default) or "ips"
	Mode    string         `json:"mode,omitempty"`  // "frame" (default) or "truss"
	Nodes   []DesignNode   `json:"nodes"`
	Members []DesignMember `json:"members"`
	Masses  []DesignMass   `json:"masses,omitempty"`
	Loads   []DesignLoad   `json:"loads,omitempty"`
}

// DecodeDesign parses a design document from JSON
func DecodeDesign(b []byte) (*Design, error) {
	var o Design
	if err := json.Unmarshal(b, &o); err != nil {
		return nil, chk.Err("cannot unmarshal design: %v", err)
	}
	return &o, nil
}

// ReadDesign reads a design document from a JSON file
func ReadDesign(path string) (*Design, error) {
	b, err := io.ReadFile(path)
	if err != nil {
		return nil, chk.Err("cannot read design file %q: %v", path, err)
	}
	return DecodeDesign(b)
}

// Model lowers the design to a solver model:
//  - support kinds become constraint flags (fixed: x+y+rotation; pin: x+y;
//    roller: y),
//  - masses become static gravity loads Fy = -kg·g,
//  - all quantities are converted to SI when the design is in "ips" units.
// The design itself is not modified.
func (o *Design) Model() (*sim.Model, error) {

	// units
	var ulen, uforce, upress, uarea, uinertia, umoment, umass float64 = 1, 1, 1, 1, 1, 1, 1
	switch o.Units {
	case "", "si":
	case "ips":
		ulen = inchToMetre
		uforce = lbfToNewton
		upress = psiToPascal
		uarea = in2ToM2
		uinertia = in4ToM4
		umoment = lbfInToNewtonMetre
		umass = poundToKg
	default:
		return nil, chk.Err("unknown unit system %q", o.Units)
	}

	// mode
	var mode sim.Mode
	switch o.Mode {
	case "", "frame":
		mode = sim.Frame
	case "truss":
		mode = sim.Truss
	default:
		return nil, chk.Err("unknown analysis mode %q", o.Mode)
	}

	// nodes and supports
	m := &sim.Model{Mode: mode}
	for _, dn := range o.Nodes {
		n := &sim.Node{ID: dn.ID, X: dn.X * ulen, Y: dn.Y * ulen}
		switch dn.Support {
		case "":
		case "fixed":
			n.Constraints = &sim.Constraint{FixX: true, FixY: true, FixRotation: true}
		case "pin":
			n.Constraints = &sim.Constraint{FixX: true, FixY: true}
		case "roller":
			n.Constraints = &sim.Constraint{FixY: true}
		default:
			return nil, chk.Err("node %q has unknown support kind %q", dn.ID, dn.Support)
		}
		m.Nodes = append(m.Nodes, n)
	}

	// members
	for _, dm := range o.Members {
		m.Members = append(m.Members, &sim.Member{
			ID:    dm.ID,
			Start: dm.Start,
			End:   dm.End,
			E:     dm.E * upress,
			A:     dm.A * uarea,
			I:     dm.I * uinertia,
		})
	}

	// loads
	for _, dl := range o.Loads {
		m.Loads = append(m.Loads, &sim.Load{
			NodeID: dl.Node,
			Fx:     dl.Fx * uforce,
			Fy:     dl.Fy * uforce,
			Moment: dl.Moment * umoment,
		})
	}

	// masses as static gravity loads
	for _, dm := range o.Masses {
		if dm.Kg < 0 {
			return nil, chk.Err("mass on node %q must be non-negative (got %g)", dm.Node, dm.Kg)
		}
		m.Loads = append(m.Loads, &sim.Load{
			NodeID: dm.Node,
			Fy:     -dm.Kg * umass * Gravity,
		})
	}
	return m, nil
}
