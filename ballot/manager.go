// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package ballot

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/danielhkuo/quickly-vote/db"
	"github.com/danielhkuo/quickly-vote/models"
	"github.com/danielhkuo/quickly-vote/store"
	"github.com/google/uuid"
)

// Manager records ballots. It holds no per-elector state; every call runs in
// its own transaction.
type Manager struct {
	db      *sql.DB
	guard   Guard
	metrics *Metrics
	now     func() time.Time
	newID   func() string
}

type Option func(*Manager)

// WithGuard replaces the default SQLGuard.
func WithGuard(g Guard) Option {
	return func(m *Manager) { m.guard = g }
}

func WithMetrics(metrics *Metrics) Option {
	return func(m *Manager) { m.metrics = metrics }
}

// WithClock sets the source of ballot timestamps.
func WithClock(now func() time.Time) Option {
	return func(m *Manager) { m.now = now }
}

func NewManager(conn *sql.DB, opts ...Option) *Manager {
	m := &Manager{
		db:    conn,
		guard: SQLGuard{},
		now:   time.Now,
		newID: uuid.NewString,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// CreateBallot resolves the elector, rejects duplicates, normalizes and
// classifies the selections and stores the ballot with all its selections
// atomically. An empty selection list becomes one blank selection per
// category.
func (m *Manager) CreateBallot(ctx context.Context, electorID string, inputs []models.SelectionInput) (models.BallotDetail, error) {
	electorID = strings.TrimSpace(electorID)
	if electorID == "" {
		m.metrics.rejected(reasonInvalid)
		return models.BallotDetail{}, &ValidationError{Field: "electorId", Message: "electorId is required"}
	}

	var detail models.BallotDetail
	err := store.WithTx(ctx, m.db, func(tx *sql.Tx) error {
		if _, err := store.Electors.Get(ctx, tx, electorID); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return &NotFoundError{Kind: "elector", ID: electorID}
			}
			return err
		}

		existing, voted, err := m.guard.ExistingBallot(ctx, tx, electorID)
		if err != nil {
			return fmt.Errorf("failed to check existing ballot: %w", err)
		}
		if voted {
			return &ConflictError{Reason: ReasonAlreadyVoted, Existing: &existing}
		}

		selections, err := m.normalize(ctx, tx, inputs)
		if err != nil {
			return err
		}

		code := Classify(selections)
		b := models.Ballot{
			ID:         m.newID(),
			CreatedAt:  m.now().UTC(),
			ElectorID:  electorID,
			VoteTypeID: voteTypeID(code),
			VoteType:   code,
		}
		if err := store.InsertBallot(ctx, tx, b); err != nil {
			return err
		}

		for i := range selections {
			selections[i].ID = m.newID()
			selections[i].BallotID = b.ID
			if err := store.InsertSelection(ctx, tx, i, selections[i]); err != nil {
				return err
			}
		}

		detail = models.BallotDetail{Ballot: b, Selections: selections}
		return nil
	})
	if err != nil {
		return models.BallotDetail{}, m.failure(ctx, electorID, err)
	}

	m.metrics.ballotCreated(detail.VoteType)
	slog.Info("ballot created",
		"ballot_id", detail.ID,
		"vote_type", detail.VoteType,
		"selections", len(detail.Selections),
	)

	return detail, nil
}

// failure maps a rolled-back transaction error to the domain taxonomy and
// records it.
func (m *Manager) failure(ctx context.Context, electorID string, err error) error {
	var (
		notFound   *NotFoundError
		conflict   *ConflictError
		validation *ValidationError
	)

	switch {
	case errors.As(err, &notFound):
		m.metrics.rejected(reasonNotFound)
		return err

	case errors.As(err, &conflict):
		m.metrics.conflict(sourcePrecheck)
		slog.Info("duplicate ballot rejected", "source", sourcePrecheck)
		return err

	case errors.As(err, &validation):
		m.metrics.rejected(reasonInvalid)
		return err

	case db.IsUniqueViolation(err, "ballot", "elector_id"):
		// Lost a race with a concurrent submission for the same elector
		m.metrics.conflict(sourceConstraint)
		slog.Info("duplicate ballot rejected", "source", sourceConstraint)

		ce := &ConflictError{Reason: ReasonAlreadyVoted}
		existing, found, gErr := m.guard.ExistingBallot(ctx, m.db, electorID)
		if gErr != nil {
			slog.Error("failed to read existing ballot", "error", gErr)
		} else if found {
			ce.Existing = &existing
		}
		return ce

	case db.IsIntegrityViolation(err):
		m.metrics.rejected(reasonIntegrity)
		slog.Error("ballot integrity violation", "error", err)
		return &IntegrityError{Cause: err}

	default:
		slog.Error("failed to create ballot", "error", err)
		return err
	}
}

// normalize turns submitted selections into rows ready to insert, checking
// every referenced category and party.
func (m *Manager) normalize(ctx context.Context, q store.Querier, inputs []models.SelectionInput) ([]models.CategorySelection, error) {
	categories, err := store.Categories.List(ctx, q)
	if err != nil {
		return nil, err
	}

	if len(inputs) == 0 {
		selections := make([]models.CategorySelection, 0, len(categories))
		for _, c := range categories {
			selections = append(selections, models.CategorySelection{CategoryID: c.ID})
		}
		return selections, nil
	}

	categoryIDs := make([]int64, 0, len(categories))
	knownCategory := make(map[int64]bool, len(categories))
	for _, c := range categories {
		categoryIDs = append(categoryIDs, c.ID)
		knownCategory[c.ID] = true
	}

	partyIDs, err := store.IDs(ctx, q, "party")
	if err != nil {
		return nil, err
	}
	knownParty := make(map[int64]bool, len(partyIDs))
	for _, id := range partyIDs {
		knownParty[id] = true
	}

	seen := make(map[int64]bool, len(inputs))
	selections := make([]models.CategorySelection, 0, len(inputs))
	for i, in := range inputs {
		field := fmt.Sprintf("categorySelections[%d]", i)

		if !knownCategory[in.CategoryID] {
			return nil, &ValidationError{
				Field:        field + ".categoryId",
				Message:      fmt.Sprintf("category %d does not exist", in.CategoryID),
				ValidOptions: categoryIDs,
			}
		}
		if seen[in.CategoryID] {
			return nil, &ValidationError{
				Field:   field + ".categoryId",
				Message: fmt.Sprintf("category %d is selected more than once", in.CategoryID),
			}
		}
		seen[in.CategoryID] = true

		if in.PartyID != nil && !knownParty[*in.PartyID] {
			return nil, &ValidationError{
				Field:        field + ".partyId",
				Message:      fmt.Sprintf("party %d does not exist", *in.PartyID),
				ValidOptions: partyIDs,
			}
		}

		if err := checkPreferential(field+".preferential1", in.PartyID, in.Preferential1); err != nil {
			return nil, err
		}
		if err := checkPreferential(field+".preferential2", in.PartyID, in.Preferential2); err != nil {
			return nil, err
		}

		selections = append(selections, models.CategorySelection{
			CategoryID:    in.CategoryID,
			PartyID:       in.PartyID,
			Preferential1: in.Preferential1,
			Preferential2: in.Preferential2,
		})
	}

	return selections, nil
}

// Preferential numbers are not matched against candidate numbers.
func checkPreferential(field string, partyID *int64, n *int) error {
	if n == nil {
		return nil
	}
	if partyID == nil {
		return &ValidationError{Field: field, Message: "preferential vote requires a party"}
	}
	if *n <= 0 {
		return &ValidationError{Field: field, Message: "preferential vote must be a positive number"}
	}
	return nil
}

// GetBallot returns a ballot with its selections in submission order.
func (m *Manager) GetBallot(ctx context.Context, id string) (models.BallotDetail, error) {
	b, err := store.Ballots.Get(ctx, m.db, id)
	if errors.Is(err, store.ErrNotFound) {
		return models.BallotDetail{}, &NotFoundError{Kind: "ballot", ID: id}
	}
	if err != nil {
		return models.BallotDetail{}, err
	}

	selections, err := store.Selections.Where(ctx, m.db, "ballot_id = $1", id)
	if err != nil {
		return models.BallotDetail{}, err
	}

	return models.BallotDetail{Ballot: b, Selections: selections}, nil
}

// ListBallots returns every ballot without selections, oldest first.
func (m *Manager) ListBallots(ctx context.Context) ([]models.Ballot, error) {
	return store.Ballots.List(ctx, m.db)
}

// Verify reports whether an elector exists and may still vote. An unknown
// elector is not an error; it simply cannot vote.
func (m *Manager) Verify(ctx context.Context, electorID string) (models.VerifyElectorResponse, error) {
	resp := models.VerifyElectorResponse{ElectorID: electorID}

	_, err := store.Electors.Get(ctx, m.db, electorID)
	if errors.Is(err, store.ErrNotFound) {
		return resp, nil
	}
	if err != nil {
		return resp, err
	}
	resp.ElectorExists = true

	voted, err := HasVoted(ctx, m.guard, m.db, electorID)
	if err != nil {
		return resp, err
	}
	resp.AlreadyVoted = voted
	resp.CanVote = !voted

	return resp, nil
}
