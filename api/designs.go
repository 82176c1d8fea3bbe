// Copyright 2025 The Motorcycle Dynamics Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package api

import (
	"database/sql"
	"errors"
	"io"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/michaelfdickey/motorcycle-dynamics-v3/inp"
	"github.com/michaelfdickey/motorcycle-dynamics-v3/out"
	"github.com/michaelfdickey/motorcycle-dynamics-v3/repo"
	"github.com/michaelfdickey/motorcycle-dynamics-v3/sim"
)

// maxDesignBytes bounds uploaded design documents
const maxDesignBytes = 1 << 20

// DesignHandler stores, lists and evaluates named designs of one user
type DesignHandler struct {
	Repo repo.Repository
}

// Save handles PUT /api/user/designs/{name}: the body is a design document,
// validated by decoding before it is stored verbatim
func (h *DesignHandler) Save(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["name"]
	payload, err := io.ReadAll(io.LimitReader(r.Body, maxDesignBytes))
	if err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", "cannot read request body")
		return
	}
	if _, err := inp.DecodeDesign(payload); err != nil {
		writeError(w, http.StatusUnprocessableEntity, "invalid_design", err.Error())
		return
	}
	id, err := h.Repo.SaveDesign(r.Context(), userID(r), name, payload)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal", "cannot save design")
		return
	}
	writeJSON(w, http.StatusOK, map[string]int{"id": id})
}

// List handles GET /api/user/designs
func (h *DesignHandler) List(w http.ResponseWriter, r *http.Request) {
	list, err := h.Repo.ListDesigns(r.Context(), userID(r))
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal", "cannot list designs")
		return
	}
	if list == nil {
		list = []repo.DesignInfo{}
	}
	writeJSON(w, http.StatusOK, list)
}

// Get handles GET /api/user/designs/{name}
func (h *DesignHandler) Get(w http.ResponseWriter, r *http.Request) {
	payload, err := h.load(w, r)
	if err != nil {
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.Write(payload)
}

// Delete handles DELETE /api/user/designs/{name}
func (h *DesignHandler) Delete(w http.ResponseWriter, r *http.Request) {
	err := h.Repo.DeleteDesign(r.Context(), userID(r), mux.Vars(r)["name"])
	if errors.Is(err, sql.ErrNoRows) {
		writeError(w, http.StatusNotFound, "not_found", "no such design")
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal", "cannot delete design")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Report handles GET /api/user/designs/{name}/report: solve and render PDF
func (h *DesignHandler) Report(w http.ResponseWriter, r *http.Request) {
	d, res, ok := h.solve(w, r)
	if !ok {
		return
	}
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", "attachment; filename=\"report.pdf\"")
	if err := out.Report(w, d, res); err != nil {
		writeError(w, http.StatusInternalServerError, "internal", "report generation error")
	}
}

// Export handles GET /api/user/designs/{name}/export: solve and render XLSX
func (h *DesignHandler) Export(w http.ResponseWriter, r *http.Request) {
	_, res, ok := h.solve(w, r)
	if !ok {
		return
	}
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", "attachment; filename=\"results.xlsx\"")
	if err := out.WriteXLSX(w, res); err != nil {
		writeError(w, http.StatusInternalServerError, "internal", "export generation error")
	}
}

// load fetches the stored design payload, writing the error response itself
func (h *DesignHandler) load(w http.ResponseWriter, r *http.Request) ([]byte, error) {
	payload, err := h.Repo.GetDesign(r.Context(), userID(r), mux.Vars(r)["name"])
	if errors.Is(err, sql.ErrNoRows) {
		writeError(w, http.StatusNotFound, "not_found", "no such design")
		return nil, err
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal", "cannot load design")
		return nil, err
	}
	return payload, nil
}

// solve loads, lowers and solves a stored design
func (h *DesignHandler) solve(w http.ResponseWriter, r *http.Request) (*inp.Design, *sim.Result, bool) {
	payload, err := h.load(w, r)
	if err != nil {
		return nil, nil, false
	}
	d, err := inp.DecodeDesign(payload)
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, "invalid_design", err.Error())
		return nil, nil, false
	}
	m, err := d.Model()
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, "invalid_design", err.Error())
		return nil, nil, false
	}
	res, err := sim.Solve(m)
	if err != nil {
		writeSolveError(w, err)
		return nil, nil, false
	}
	return d, res, true
}
