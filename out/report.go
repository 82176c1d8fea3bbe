// Copyright 2025 The Motorcycle Dynamics Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package out renders solve results into downloadable documents
package out

import (
	"fmt"
	"io"
	"time"

	"github.com/phpdave11/gofpdf"

	"github.com/michaelfdickey/motorcycle-dynamics-v3/inp"
	"github.com/michaelfdickey/motorcycle-dynamics-v3/sim"
)

// Report writes a PDF analysis report of one solved design to w
func Report(w io.Writer, d *inp.Design, res *sim.Result) error {

	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, "Structural Analysis Report")
	pdf.Ln(12)
	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 6, fmt.Sprintf("Design: %s", d.Name))
	pdf.Ln(6)
	mode := d.Mode
	if mode == "" {
		mode = "frame"
	}
	pdf.Cell(0, 6, fmt.Sprintf("Analysis mode: %s", mode))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Nodes: %d    Members: %d", len(d.Nodes), len(d.Members)))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Date: %s", time.Now().Format("2006-01-02")))
	pdf.Ln(10)

	// displacement table
	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, "Nodal displacements (SI)")
	pdf.Ln(9)
	pdf.SetFont("Helvetica", "B", 9)
	dispCols := []float64{30, 40, 40, 40}
	for i, h := range []string{"Node", "ux [m]", "uy [m]", "rotation [rad]"} {
		pdf.CellFormat(dispCols[i], 6, h, "1", 0, "C", false, 0, "")
	}
	pdf.Ln(-1)
	pdf.SetFont("Helvetica", "", 9)
	for _, nd := range res.Displacements {
		pdf.CellFormat(dispCols[0], 6, nd.ID, "1", 0, "L", false, 0, "")
		pdf.CellFormat(dispCols[1], 6, fmt.Sprintf("%.6e", nd.Ux), "1", 0, "R", false, 0, "")
		pdf.CellFormat(dispCols[2], 6, fmt.Sprintf("%.6e", nd.Uy), "1", 0, "R", false, 0, "")
		pdf.CellFormat(dispCols[3], 6, fmt.Sprintf("%.6e", nd.Rotation), "1", 0, "R", false, 0, "")
		pdf.Ln(-1)
	}
	pdf.Ln(4)

	// internal force table
	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, "Member internal forces (axial positive in tension)")
	pdf.Ln(9)
	pdf.SetFont("Helvetica", "B", 9)
	forceCols := []float64{25, 33, 33, 33, 33, 33}
	for i, h := range []string{"Member", "N [N]", "V start [N]", "V end [N]", "M start [N·m]", "M end [N·m]"} {
		pdf.CellFormat(forceCols[i], 6, tr(h), "1", 0, "C", false, 0, "")
	}
	pdf.Ln(-1)
	pdf.SetFont("Helvetica", "", 9)
	for _, f := range res.InternalForces {
		pdf.CellFormat(forceCols[0], 6, f.ID, "1", 0, "L", false, 0, "")
		pdf.CellFormat(forceCols[1], 6, fmt.Sprintf("%.4e", f.Axial), "1", 0, "R", false, 0, "")
		pdf.CellFormat(forceCols[2], 6, fmt.Sprintf("%.4e", f.ShearStart), "1", 0, "R", false, 0, "")
		pdf.CellFormat(forceCols[3], 6, fmt.Sprintf("%.4e", f.ShearEnd), "1", 0, "R", false, 0, "")
		pdf.CellFormat(forceCols[4], 6, fmt.Sprintf("%.4e", f.MomentStart), "1", 0, "R", false, 0, "")
		pdf.CellFormat(forceCols[5], 6, fmt.Sprintf("%.4e", f.MomentEnd), "1", 0, "R", false, 0, "")
		pdf.Ln(-1)
	}

	return pdf.Output(w)
}
