// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package ballot

import (
	"context"
	"errors"

	"github.com/danielhkuo/quickly-vote/models"
	"github.com/danielhkuo/quickly-vote/store"
)

// Guard looks up the ballot an elector has already cast. It is an early
// check only; the UNIQUE constraint on ballot.elector_id decides races.
type Guard interface {
	ExistingBallot(ctx context.Context, q store.Querier, electorID string) (models.Ballot, bool, error)
}

// SQLGuard reads the ballot table through the given querier.
type SQLGuard struct{}

func (SQLGuard) ExistingBallot(ctx context.Context, q store.Querier, electorID string) (models.Ballot, bool, error) {
	b, err := store.Ballots.First(ctx, q, "b.elector_id = $1", electorID)
	if errors.Is(err, store.ErrNotFound) {
		return models.Ballot{}, false, nil
	}
	if err != nil {
		return models.Ballot{}, false, err
	}
	return b, true, nil
}

// HasVoted reports whether electorID already has a ballot.
func HasVoted(ctx context.Context, g Guard, q store.Querier, electorID string) (bool, error) {
	_, voted, err := g.ExistingBallot(ctx, q, electorID)
	return voted, err
}
