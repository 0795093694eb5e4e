// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/danielhkuo/quickly-vote/ballot"
	"github.com/danielhkuo/quickly-vote/cliparse"
	"github.com/danielhkuo/quickly-vote/middleware"
	"github.com/danielhkuo/quickly-vote/models"
	"github.com/danielhkuo/quickly-vote/store"
)

type BallotHandler struct {
	db      *sql.DB
	cfg     cliparse.Config
	manager *ballot.Manager
}

func NewBallotHandler(db *sql.DB, cfg cliparse.Config, manager *ballot.Manager) *BallotHandler {
	return &BallotHandler{db: db, cfg: cfg, manager: manager}
}

// CreateBallot handles POST /ballots
func (h *BallotHandler) CreateBallot(w http.ResponseWriter, r *http.Request) {
	var req models.CreateBallotRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	detail, err := h.manager.CreateBallot(r.Context(), req.ElectorID, req.Selections)
	if err != nil {
		writeError(w, err, "record ballot")
		return
	}

	middleware.JSONResponse(w, http.StatusCreated, detail)
}

// GetBallot handles GET /ballots/{id}
func (h *BallotHandler) GetBallot(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "id is required")
		return
	}

	detail, err := h.manager.GetBallot(r.Context(), id)
	if err != nil {
		writeError(w, err, "get ballot")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, detail)
}

// ListBallots handles GET /ballots
func (h *BallotHandler) ListBallots(w http.ResponseWriter, r *http.Request) {
	list, err := h.manager.ListBallots(r.Context())
	if err != nil {
		writeError(w, err, "list ballots")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, list)
}

// VerifyElector handles GET /ballots/verify/{electorId}
func (h *BallotHandler) VerifyElector(w http.ResponseWriter, r *http.Request) {
	electorID := strings.TrimSpace(r.PathValue("electorId"))
	if electorID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "electorId is required")
		return
	}

	resp, err := h.manager.Verify(r.Context(), electorID)
	if err != nil {
		writeError(w, err, "verify elector")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, resp)
}

// ListSelections handles GET /category-selections
func (h *BallotHandler) ListSelections(w http.ResponseWriter, r *http.Request) {
	list, err := store.Selections.List(r.Context(), h.db)
	if err != nil {
		writeError(w, err, "list category selections")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, list)
}

// GetSelection handles GET /category-selections/{id}
func (h *BallotHandler) GetSelection(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	sel, err := store.Selections.Get(r.Context(), h.db, id)
	if errors.Is(err, store.ErrNotFound) {
		middleware.ErrorResponse(w, http.StatusNotFound, "Category selection not found")
		return
	}
	if err != nil {
		slog.Error("failed to get category selection", "error", err, "selection_id", id)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, sel)
}
