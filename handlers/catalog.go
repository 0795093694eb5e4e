// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/danielhkuo/quickly-vote/cliparse"
	"github.com/danielhkuo/quickly-vote/db"
	"github.com/danielhkuo/quickly-vote/middleware"
	"github.com/danielhkuo/quickly-vote/models"
	"github.com/danielhkuo/quickly-vote/store"
)

// CatalogHandler serves the reference catalog: electors, parties,
// categories, candidates and vote types.
type CatalogHandler struct {
	db  *sql.DB
	cfg cliparse.Config
}

func NewCatalogHandler(db *sql.DB, cfg cliparse.Config) *CatalogHandler {
	return &CatalogHandler{db: db, cfg: cfg}
}

// listAll writes every record of t
func listAll[T any, K comparable](w http.ResponseWriter, r *http.Request, q store.Querier, t store.Table[T, K]) {
	list, err := t.List(r.Context(), q)
	if err != nil {
		slog.Error("failed to list records", "kind", t.Kind, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}
	middleware.JSONResponse(w, http.StatusOK, list)
}

// getOne writes the record of t keyed by key, or 404
func getOne[T any, K comparable](w http.ResponseWriter, r *http.Request, q store.Querier, t store.Table[T, K], key K) {
	v, err := t.Get(r.Context(), q, key)
	if errors.Is(err, store.ErrNotFound) {
		middleware.ErrorResponse(w, http.StatusNotFound, capitalize(t.Kind)+" not found")
		return
	}
	if err != nil {
		slog.Error("failed to get record", "kind", t.Kind, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}
	middleware.JSONResponse(w, http.StatusOK, v)
}

// writeInsertError reports a failed catalog insert. Unique violations are 409.
func writeInsertError(w http.ResponseWriter, err error, kind, conflictMsg string) {
	if db.IsAnyUniqueViolation(err) {
		middleware.ErrorResponse(w, http.StatusConflict, conflictMsg)
		return
	}
	slog.Error("failed to create record", "kind", kind, "error", err)
	middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to create "+kind)
}

// ListVoteTypes handles GET /vote-types
func (h *CatalogHandler) ListVoteTypes(w http.ResponseWriter, r *http.Request) {
	listAll(w, r, h.db, store.VoteTypes)
}

// GetVoteType handles GET /vote-types/{id}
func (h *CatalogHandler) GetVoteType(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	getOne(w, r, h.db, store.VoteTypes, id)
}

// Electors

// ListElectors handles GET /electors
func (h *CatalogHandler) ListElectors(w http.ResponseWriter, r *http.Request) {
	listAll(w, r, h.db, store.Electors)
}

// GetElector handles GET /electors/{id}
func (h *CatalogHandler) GetElector(w http.ResponseWriter, r *http.Request) {
	getOne(w, r, h.db, store.Electors, r.PathValue("id"))
}

// CreateElector handles POST /electors
func (h *CatalogHandler) CreateElector(w http.ResponseWriter, r *http.Request) {
	var req models.CreateElectorRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	e := models.Elector{
		ID:        strings.TrimSpace(req.ID),
		FirstName: strings.TrimSpace(req.FirstName),
		LastName:  strings.TrimSpace(req.LastName),
		District:  strings.TrimSpace(req.District),
		Region:    strings.TrimSpace(req.Region),
	}
	required := []struct{ field, value string }{
		{"id", e.ID},
		{"firstNames", e.FirstName},
		{"lastNames", e.LastName},
		{"district", e.District},
		{"region", e.Region},
	}
	for _, f := range required {
		if f.value == "" {
			middleware.ErrorResponseWith(w, http.StatusBadRequest, models.ErrorResponse{
				Message: f.field + " is required",
				Field:   f.field,
			})
			return
		}
	}

	if err := store.InsertElector(r.Context(), h.db, e); err != nil {
		writeInsertError(w, err, "elector", "Elector already exists")
		return
	}

	slog.Info("elector created", "elector_id", e.ID)
	middleware.JSONResponse(w, http.StatusCreated, e)
}

// Parties

// ListParties handles GET /parties
func (h *CatalogHandler) ListParties(w http.ResponseWriter, r *http.Request) {
	listAll(w, r, h.db, store.Parties)
}

// GetParty handles GET /parties/{id}
func (h *CatalogHandler) GetParty(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	getOne(w, r, h.db, store.Parties, id)
}

// CreateParty handles POST /parties
func (h *CatalogHandler) CreateParty(w http.ResponseWriter, r *http.Request) {
	var req models.CreatePartyRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	p := models.Party{Name: strings.TrimSpace(req.Name), Logo: req.Logo}
	if p.Name == "" {
		middleware.ErrorResponseWith(w, http.StatusBadRequest, models.ErrorResponse{Message: "name is required", Field: "name"})
		return
	}

	id, err := store.InsertParty(r.Context(), h.db, p)
	if err != nil {
		writeInsertError(w, err, "party", "Party name already exists")
		return
	}
	p.ID = id

	slog.Info("party created", "party_id", id)
	middleware.JSONResponse(w, http.StatusCreated, p)
}

// Categories

// ListCategories handles GET /categories
func (h *CatalogHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	listAll(w, r, h.db, store.Categories)
}

// GetCategory handles GET /categories/{id}
func (h *CatalogHandler) GetCategory(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	getOne(w, r, h.db, store.Categories, id)
}

// CreateCategory handles POST /categories
func (h *CatalogHandler) CreateCategory(w http.ResponseWriter, r *http.Request) {
	var req models.CreateCategoryRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	c := models.Category{Name: strings.TrimSpace(req.Name), Scope: strings.TrimSpace(req.Scope)}
	if c.Name == "" {
		middleware.ErrorResponseWith(w, http.StatusBadRequest, models.ErrorResponse{Message: "name is required", Field: "name"})
		return
	}
	if c.Scope == "" {
		c.Scope = models.ScopeNational
	}
	if c.Scope != models.ScopeNational && c.Scope != models.ScopeRegional {
		middleware.ErrorResponseWith(w, http.StatusBadRequest, models.ErrorResponse{
			Message: fmt.Sprintf("scope must be %s or %s", models.ScopeNational, models.ScopeRegional),
			Field:   "scope",
		})
		return
	}

	id, err := store.InsertCategory(r.Context(), h.db, c)
	if err != nil {
		writeInsertError(w, err, "category", "Category name already exists")
		return
	}
	c.ID = id

	slog.Info("category created", "category_id", id)
	middleware.JSONResponse(w, http.StatusCreated, c)
}

// Candidates

// ListCandidates handles GET /candidates, optionally filtered by ?categoryId=
func (h *CatalogHandler) ListCandidates(w http.ResponseWriter, r *http.Request) {
	raw := r.URL.Query().Get("categoryId")
	if raw == "" {
		listAll(w, r, h.db, store.Candidates)
		return
	}

	categoryID, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "categoryId must be an integer")
		return
	}

	list, err := store.Candidates.Where(r.Context(), h.db, "category_id = $1", categoryID)
	if err != nil {
		slog.Error("failed to list candidates", "error", err, "category_id", categoryID)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, list)
}

// GetCandidate handles GET /candidates/{id}
func (h *CatalogHandler) GetCandidate(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	getOne(w, r, h.db, store.Candidates, id)
}

// CreateCandidate handles POST /candidates
func (h *CatalogHandler) CreateCandidate(w http.ResponseWriter, r *http.Request) {
	var req models.CreateCandidateRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	c := models.Candidate{
		Name:       strings.TrimSpace(req.Name),
		Number:     req.Number,
		PartyID:    req.PartyID,
		CategoryID: req.CategoryID,
	}
	if c.Name == "" {
		middleware.ErrorResponseWith(w, http.StatusBadRequest, models.ErrorResponse{Message: "name is required", Field: "name"})
		return
	}
	if c.Number != nil && *c.Number <= 0 {
		middleware.ErrorResponseWith(w, http.StatusBadRequest, models.ErrorResponse{Message: "number must be positive", Field: "number"})
		return
	}

	if !referenceExists(w, r, h.db, store.Parties, c.PartyID, "partyId") {
		return
	}
	if !referenceExists(w, r, h.db, store.Categories, c.CategoryID, "categoryId") {
		return
	}

	id, err := store.InsertCandidate(r.Context(), h.db, c)
	if err != nil {
		writeInsertError(w, err, "candidate", "Candidate already exists")
		return
	}
	c.ID = id

	slog.Info("candidate created", "candidate_id", id, "party_id", c.PartyID, "category_id", c.CategoryID)
	middleware.JSONResponse(w, http.StatusCreated, c)
}

// referenceExists writes a 404 listing the valid ids when id is not in t
func referenceExists[T any](w http.ResponseWriter, r *http.Request, q store.Querier, t store.Table[T, int64], id int64, field string) bool {
	_, err := t.Get(r.Context(), q, id)
	if err == nil {
		return true
	}
	if !errors.Is(err, store.ErrNotFound) {
		slog.Error("failed to check reference", "kind", t.Kind, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return false
	}

	valid, err := store.IDs(r.Context(), q, t.From)
	if err != nil {
		slog.Error("failed to list valid ids", "kind", t.Kind, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return false
	}

	middleware.ErrorResponseWith(w, http.StatusNotFound, models.ErrorResponse{
		Message:      fmt.Sprintf("%s %d not found", capitalize(t.Kind), id),
		Field:        field,
		ValidOptions: valid,
	})
	return false
}
