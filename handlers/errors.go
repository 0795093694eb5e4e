// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/danielhkuo/quickly-vote/ballot"
	"github.com/danielhkuo/quickly-vote/middleware"
	"github.com/danielhkuo/quickly-vote/models"
)

// writeError maps a domain error to its HTTP response. Anything unknown is
// logged and reported as a generic 500 so storage diagnostics never reach the
// client.
func writeError(w http.ResponseWriter, err error, action string) {
	var (
		notFound   *ballot.NotFoundError
		conflict   *ballot.ConflictError
		validation *ballot.ValidationError
	)

	switch {
	case errors.As(err, &notFound):
		middleware.ErrorResponse(w, http.StatusNotFound, fmt.Sprintf("%s not found", capitalize(notFound.Kind)))

	case errors.As(err, &conflict):
		body := models.ErrorResponse{Message: "Elector has already voted"}
		if conflict.Existing != nil {
			body.ExistingBallot = &models.ExistingBallot{
				ID:        conflict.Existing.ID,
				CreatedAt: conflict.Existing.CreatedAt,
			}
		}
		middleware.ErrorResponseWith(w, http.StatusConflict, body)

	case errors.As(err, &validation):
		middleware.ErrorResponseWith(w, http.StatusBadRequest, models.ErrorResponse{
			Message:      validation.Message,
			Field:        validation.Field,
			ValidOptions: validation.ValidOptions,
		})

	default:
		if !errors.Is(err, ballot.ErrIntegrity) {
			slog.Error("request failed", "action", action, "error", err)
		}
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to "+action)
	}
}

// pathID parses an integer path value, writing a 400 on failure
func pathID(w http.ResponseWriter, r *http.Request, name string) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue(name), 10, 64)
	if err != nil || id <= 0 {
		middleware.ErrorResponse(w, http.StatusBadRequest, name+" must be a positive integer")
		return 0, false
	}
	return id, true
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
