// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package ballot records ballots, one per elector.

# Recording a Ballot

	m := ballot.NewManager(conn, ballot.WithMetrics(ballot.NewMetrics(reg)))
	detail, err := m.CreateBallot(ctx, "12345678", selections)

CreateBallot runs in a single transaction:

 1. Resolve the elector (NotFoundError).
 2. Ask the Guard for an existing ballot (ConflictError).
 3. Normalize selections. No selections means one blank selection per
    category; otherwise every category and party must exist
    (ValidationError with the valid ids).
 4. Classify: Blank if no selection names a party, Valid otherwise.
 5. Insert the ballot and its selections, then commit.

Any error rolls the transaction back, so a ballot is never visible without
its selections.

# Duplicate Votes

The Guard is a readable early check. The UNIQUE constraint on
ballot.elector_id is what actually stops two concurrent submissions; the
loser's constraint error is reported as the same ConflictError, carrying the
winner's ballot. Other constraint failures become IntegrityError.

# Errors

Match kinds with errors.Is and read details with errors.As:

	var conflict *ballot.ConflictError
	if errors.As(err, &conflict) {
		// conflict.Existing.ID, conflict.Existing.CreatedAt
	}

	errors.Is(err, ballot.ErrNotFound)
	errors.Is(err, ballot.ErrValidation)

# Metrics

  - ballots_created_total{vote_type}
  - ballot_conflicts_total{source="precheck"|"constraint"}
  - ballot_rejections_total{reason="not_found"|"invalid"|"integrity"}
*/
package ballot
