// Copyright 2025 The Motorcycle Dynamics Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package api

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/michaelfdickey/motorcycle-dynamics-v3/repo"
)

// CORS wraps the router with permissive cross-origin headers and answers
// preflight requests
func CORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// Router builds the full route table. The simulation endpoint is open but
// rate limited; design storage and report generation require a session.
func Router(jwtKey []byte, rp repo.Repository) http.Handler {
	authEnv := &Authenv{JWTKey: jwtKey, Repo: rp}
	simH := &SimulateHandler{}
	designH := &DesignHandler{Repo: rp}
	limiter := NewIPRateLimiter(1, 3)

	r := mux.NewRouter()
	r.HandleFunc("/health", Health).Methods("GET")

	api := r.PathPrefix("/api").Subrouter()
	api.Use(limiter.LimitMiddleware)

	api.HandleFunc("/simulate", simH.Simulate).Methods("POST")
	api.HandleFunc("/login", authEnv.AuthHandler).Methods("POST")
	api.HandleFunc("/register", authEnv.RegisterHandler).Methods("POST")

	secureApi := api.PathPrefix("/user").Subrouter()
	secureApi.Use(authEnv.AuthMiddleware)

	secureApi.HandleFunc("/designs", designH.List).Methods("GET")
	secureApi.HandleFunc("/designs/{name}", designH.Save).Methods("PUT", "POST")
	secureApi.HandleFunc("/designs/{name}", designH.Get).Methods("GET")
	secureApi.HandleFunc("/designs/{name}", designH.Delete).Methods("DELETE")
	secureApi.HandleFunc("/designs/{name}/report", designH.Report).Methods("GET")
	secureApi.HandleFunc("/designs/{name}/export", designH.Export).Methods("GET")

	return CORS(r)
}
