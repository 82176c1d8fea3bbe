// Copyright 2025 The Motorcycle Dynamics Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package api

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
	"golang.org/x/time/rate"

	"github.com/michaelfdickey/motorcycle-dynamics-v3/repo"
)

type contextKey string

const userIDKey contextKey = "userID"

// sessionTTL is the lifetime of issued tokens
const sessionTTL = 24 * time.Hour

// Authenv issues and validates session tokens backed by the user store
type Authenv struct {
	JWTKey []byte
	Repo   repo.Repository
}

type loginRequest struct {
	Login    string `json:"login"`
	Password string `json:"password"`
}

type registerRequest struct {
	Login    string `json:"login"`
	Password string `json:"password"`
	Email    string `json:"email"`
}

// RegisterHandler handles POST /api/register
func (env *Authenv) RegisterHandler(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", "invalid request payload")
		return
	}
	if req.Login == "" || req.Password == "" {
		writeError(w, http.StatusBadRequest, "bad_request", "login and password are required")
		return
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal", "cannot hash password")
		return
	}
	id, err := env.Repo.CreateUser(r.Context(), req.Login, req.Email, string(hash))
	if err != nil {
		writeError(w, http.StatusConflict, "conflict", "cannot create user")
		return
	}
	writeJSON(w, http.StatusCreated, map[string]int{"id": id})
}

// AuthHandler handles POST /api/login
func (env *Authenv) AuthHandler(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", "invalid request payload")
		return
	}
	id, hash, err := env.Repo.GetByLogin(r.Context(), req.Login)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal", "cannot look up user")
		return
	}
	if id == 0 || bcrypt.CompareHashAndPassword([]byte(hash), []byte(req.Password)) != nil {
		writeError(w, http.StatusUnauthorized, "unauthorized", "wrong login or password")
		return
	}

	claims := jwt.MapClaims{
		"user_id": id,
		"exp":     time.Now().Add(sessionTTL).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(env.JWTKey)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal", "cannot sign token")
		return
	}
	http.SetCookie(w, &http.Cookie{
		Name:     "session_token",
		Value:    token,
		Path:     "/",
		Expires:  time.Now().Add(sessionTTL),
		HttpOnly: true,
	})
	writeJSON(w, http.StatusOK, map[string]string{"token": token})
}

// AuthMiddleware requires a valid session token and stores the user id in
// the request context
func (env *Authenv) AuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie("session_token")
		if err != nil {
			writeError(w, http.StatusUnauthorized, "unauthorized", "missing session token")
			return
		}
		token, err := jwt.Parse(cookie.Value, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return env.JWTKey, nil
		})
		if err != nil || !token.Valid {
			writeError(w, http.StatusUnauthorized, "unauthorized", "invalid session token")
			return
		}
		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			writeError(w, http.StatusUnauthorized, "unauthorized", "invalid session token")
			return
		}
		id, ok := claims["user_id"].(float64)
		if !ok {
			writeError(w, http.StatusUnauthorized, "unauthorized", "invalid session token")
			return
		}
		ctx := context.WithValue(r.Context(), userIDKey, int(id))
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// userID extracts the authenticated user from the request context
func userID(r *http.Request) int {
	id, _ := r.Context().Value(userIDKey).(int)
	return id
}

// IPRateLimiter keeps one token bucket per client address
type IPRateLimiter struct {
	ips map[string]*rate.Limiter
	mu  sync.Mutex
	r   rate.Limit
	b   int
}

// NewIPRateLimiter allows r events per second with bursts of b per client
func NewIPRateLimiter(r rate.Limit, b int) *IPRateLimiter {
	return &IPRateLimiter{
		ips: make(map[string]*rate.Limiter),
		r:   r,
		b:   b,
	}
}

func (i *IPRateLimiter) getLimiter(ip string) *rate.Limiter {
	i.mu.Lock()
	defer i.mu.Unlock()

	limiter, exists := i.ips[ip]
	if !exists {
		limiter = rate.NewLimiter(i.r, i.b)
		i.ips[ip] = limiter
	}
	return limiter
}

// LimitMiddleware rejects clients exceeding their rate
func (i *IPRateLimiter) LimitMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !i.getLimiter(r.RemoteAddr).Allow() {
			writeError(w, http.StatusTooManyRequests, "rate_limited", "too many requests, try again later")
			return
		}
		next.ServeHTTP(w, r)
	})
}
