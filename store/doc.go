// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package store provides repository access to every table.

Each entity has one Table value parameterized by record and key type:

	e, err := store.Electors.Get(ctx, conn, "12345678")
	cats, err := store.Categories.List(ctx, conn)
	sels, err := store.Selections.Where(ctx, conn, "ballot_id = $1", id)

Get and First return ErrNotFound when no row matches.

# Queriers

Every call takes a Querier, which is either the *sql.DB or a transaction.
There is no shared session; callers that need atomicity use WithTx and pass
the *sql.Tx down:

	err := store.WithTx(ctx, conn, func(tx *sql.Tx) error {
		if err := store.InsertBallot(ctx, tx, b); err != nil {
			return err
		}
		return store.InsertSelection(ctx, tx, 0, s)
	})

Inside a transaction never query through the *sql.DB. SQLite connections
are limited to one, so doing so blocks until the transaction ends.

Where reads all rows and closes the result set before returning, so it is
safe to issue the next query on the same transaction afterwards.
*/
package store
