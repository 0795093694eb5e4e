// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package ballot

import (
	"errors"
	"fmt"

	"github.com/danielhkuo/quickly-vote/models"
)

// Sentinel kinds, matched with errors.Is against the typed errors below.
var (
	ErrNotFound   = errors.New("not found")
	ErrConflict   = errors.New("conflict")
	ErrValidation = errors.New("validation failed")
	ErrIntegrity  = errors.New("integrity violation")
)

// ReasonAlreadyVoted is the conflict reason for a second ballot by one elector.
const ReasonAlreadyVoted = "already voted"

// NotFoundError reports a missing referenced record. Nothing was written.
type NotFoundError struct {
	Kind string
	ID   string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %q not found", e.Kind, e.ID)
}

func (e *NotFoundError) Is(target error) bool { return target == ErrNotFound }

// ConflictError reports that the elector already has a ballot. Existing is
// nil only if the stored ballot could not be read back.
type ConflictError struct {
	Reason   string
	Existing *models.Ballot
}

func (e *ConflictError) Error() string {
	if e.Existing != nil {
		return fmt.Sprintf("%s (ballot %s)", e.Reason, e.Existing.ID)
	}
	return e.Reason
}

func (e *ConflictError) Is(target error) bool { return target == ErrConflict }

// ValidationError reports a bad input field, detected before any write.
type ValidationError struct {
	Field        string
	Message      string
	ValidOptions []int64
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func (e *ValidationError) Is(target error) bool { return target == ErrValidation }

// IntegrityError wraps a storage constraint failure other than elector
// uniqueness. Cause must never be shown to clients.
type IntegrityError struct {
	Cause error
}

func (e *IntegrityError) Error() string {
	return fmt.Sprintf("integrity violation: %v", e.Cause)
}

func (e *IntegrityError) Unwrap() error { return e.Cause }

func (e *IntegrityError) Is(target error) bool { return target == ErrIntegrity }
