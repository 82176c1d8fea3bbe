// Copyright 2025 The Motorcycle Dynamics Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/michaelfdickey/motorcycle-dynamics-v3/sim"
)

// SimulateHandler runs stateless linear static solves
type SimulateHandler struct{}

// Simulate handles POST /api/simulate
func (h *SimulateHandler) Simulate(w http.ResponseWriter, r *http.Request) {
	var input SimulationInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", "invalid request payload")
		return
	}
	m, err := input.model()
	if err != nil {
		writeSolveError(w, err)
		return
	}
	res, err := sim.Solve(m)
	if err != nil {
		writeSolveError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, newSimulationResult(res))
}

// Health handles GET /health
func Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// errorBody is the JSON shape of all error responses
type errorBody struct {
	Kind  string `json:"kind"`
	Error string `json:"error"`
}

// writeSolveError maps the solver's error taxonomy onto HTTP statuses: all
// three kinds are deterministic properties of the submitted model, hence
// 422 rather than 500; retrying without changing the model cannot succeed
func writeSolveError(w http.ResponseWriter, err error) {
	var (
		ime *sim.InvalidModelError
		me  *sim.MechanismError
		de  *sim.DeterminacyError
	)
	switch {
	case errors.As(err, &ime):
		writeError(w, http.StatusUnprocessableEntity, "invalid_model", err.Error())
	case errors.As(err, &me):
		writeError(w, http.StatusUnprocessableEntity, "mechanism", err.Error())
	case errors.As(err, &de):
		writeError(w, http.StatusUnprocessableEntity, "determinacy", err.Error())
	default:
		writeError(w, http.StatusInternalServerError, "internal", err.Error())
	}
}

func writeError(w http.ResponseWriter, status int, kind, msg string) {
	writeJSON(w, status, errorBody{Kind: kind, Error: msg})
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
