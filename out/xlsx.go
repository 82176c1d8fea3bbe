// Copyright 2025 The Motorcycle Dynamics Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/michaelfdickey/motorcycle-dynamics-v3/sim"
)

// WriteXLSX writes a spreadsheet with one sheet of nodal displacements and
// one sheet of member internal forces to w
func WriteXLSX(w io.Writer, res *sim.Result) error {

	f := excelize.NewFile()
	defer f.Close()

	const dispSheet = "Displacements"
	if err := f.SetSheetName("Sheet1", dispSheet); err != nil {
		return err
	}
	header := []interface{}{"node", "ux_m", "uy_m", "rotation_rad"}
	if err := f.SetSheetRow(dispSheet, "A1", &header); err != nil {
		return err
	}
	for i, nd := range res.Displacements {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		row := []interface{}{nd.ID, nd.Ux, nd.Uy, nd.Rotation}
		if err := f.SetSheetRow(dispSheet, cell, &row); err != nil {
			return err
		}
	}

	const forceSheet = "InternalForces"
	if _, err := f.NewSheet(forceSheet); err != nil {
		return err
	}
	header = []interface{}{"member", "axial_n", "shear_start_n", "shear_end_n", "moment_start_nm", "moment_end_nm"}
	if err := f.SetSheetRow(forceSheet, "A1", &header); err != nil {
		return err
	}
	for i, fr := range res.InternalForces {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		row := []interface{}{fr.ID, fr.Axial, fr.ShearStart, fr.ShearEnd, fr.MomentStart, fr.MomentEnd}
		if err := f.SetSheetRow(forceSheet, cell, &row); err != nil {
			return err
		}
	}

	return f.Write(w)
}
