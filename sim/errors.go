// Copyright 2025 The Motorcycle Dynamics Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sim

import "github.com/cpmech/gosl/io"

// InvalidModelError indicates that the structural input violates a model
// invariant; e.g. duplicate node id, member referencing an unknown node,
// zero-length member, non-positive E or A. It is detected before assembly
// and the model is never partially processed.
type InvalidModelError struct {
	Msg string
}

func (e *InvalidModelError) Error() string {
	return "invalid model: " + e.Msg
}

// MechanismError indicates a singular or near-singular stiffness system;
// i.e. the structure has an unconstrained rigid-body or internal motion
// mode, typically due to insufficient supports.
type MechanismError struct {
	Msg string
}

func (e *MechanismError) Error() string {
	return "mechanism: " + e.Msg
}

// DeterminacyError reports an unbalanced m + r vs 2j count for a
// pin-jointed truss. Deficit means the truss is a mechanism; excess means
// it is statically indeterminate.
type DeterminacyError struct {
	Count Determinacy
}

func (e *DeterminacyError) Error() string {
	d := e.Count.Deficit()
	if d > 0 {
		return io.Sf("truss is under-determinate: m+r=%d, 2j=%d (deficit=%d)", e.Count.Members+e.Count.Reactions, 2*e.Count.Joints, d)
	}
	return io.Sf("truss is over-determinate: m+r=%d, 2j=%d (excess=%d)", e.Count.Members+e.Count.Reactions, 2*e.Count.Joints, -d)
}

// invalidErr returns a new formatted InvalidModelError
func invalidErr(msg string, prm ...interface{}) *InvalidModelError {
	return &InvalidModelError{Msg: io.Sf(msg, prm...)}
}

// mechanismErr returns a new formatted MechanismError
func mechanismErr(msg string, prm ...interface{}) *MechanismError {
	return &MechanismError{Msg: io.Sf(msg, prm...)}
}
