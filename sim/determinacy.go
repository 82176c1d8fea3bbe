// Copyright 2025 The Motorcycle Dynamics Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sim

// Determinacy holds the combinatorial counts of a pin-jointed truss. The
// truss is statically determinate when m + r == 2j, where r counts
// translational reaction components only (pin = 2, roller = 1); rotational
// fixities do not restrain a pin-jointed structure.
type Determinacy struct {
	Members   int // m
	Joints    int // j
	Reactions int // r
}

// CountDeterminacy extracts the m, j, r counts from a model. It is a pure
// integer function, independent of the numeric pipeline.
func CountDeterminacy(m *Model) (o Determinacy) {
	o.Members = len(m.Members)
	o.Joints = len(m.Nodes)
	for _, n := range m.Nodes {
		if n.Constraints == nil {
			continue
		}
		if n.Constraints.FixX {
			o.Reactions++
		}
		if n.Constraints.FixY {
			o.Reactions++
		}
	}
	return
}

// Deficit returns 2j - (m+r): positive for an under-determinate truss
// (mechanism), negative for an over-determinate one, zero when determinate
func (o Determinacy) Deficit() int {
	return 2*o.Joints - o.Members - o.Reactions
}

// IsDeterminate tells whether m + r == 2j
func (o Determinacy) IsDeterminate() bool {
	return o.Deficit() == 0
}
