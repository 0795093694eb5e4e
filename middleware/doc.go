// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP middleware and helper functions.

# Request Logging

Wrap handlers with request logging:

	mux.HandleFunc("GET /health", middleware.WithLogging(handler))

Logs request start (method, path, client_ip) and completion (status,
duration_ms).

# Admin Guard

Catalog and quiz writes require a scope-bound admin key in X-Admin-Key:

	mux.HandleFunc("POST /parties", middleware.WithLogging(
		middleware.RequireAdmin(auth.ScopeCatalog, cfg.AdminKeySalt, h.CreateParty)))

Missing or invalid keys get 401 before the handler runs.

# CORS Middleware

Enable cross-origin requests for frontend access:

	server := http.Server{
		Handler: middleware.CORS(mux),
	}

Allows methods GET, POST, OPTIONS with headers Content-Type, Authorization,
X-Admin-Key.

# JSON Helpers

Write JSON responses:

	middleware.JSONResponse(w, http.StatusOK, data)
	middleware.ErrorResponse(w, http.StatusBadRequest, "message")
	middleware.ErrorResponseWith(w, http.StatusConflict, models.ErrorResponse{
		Message:        "Elector has already voted",
		ExistingBallot: &models.ExistingBallot{ID: id, CreatedAt: at},
	})

Parse JSON request bodies:

	var req models.CreateBallotRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

# Client IP Extraction

Get the original client IP (handles X-Forwarded-For, X-Real-IP):

	ip := middleware.GetClientIP(r)

Only logged; no client address is ever stored with a ballot.
*/
package middleware
