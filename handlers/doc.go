// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the Quickly Vote API.

# Handler Types

Each handler is a struct with database and config dependencies:

  - BallotHandler: ballot submission, reads and elector verification
  - CatalogHandler: electors, parties, categories, candidates, vote types
  - QuizHandler: knowledge questions and anonymous questionnaires

Handlers are created via constructor functions that accept *sql.DB and Config:

	catalogHandler := handlers.NewCatalogHandler(db, cfg)
	ballotHandler := handlers.NewBallotHandler(db, cfg, ballot.NewManager(db))

# Ballot Submission

	POST /ballots                    → CreateBallot
	GET  /ballots/{id}               → GetBallot
	GET  /ballots/verify/{electorId} → VerifyElector

CreateBallot delegates to ballot.Manager, which resolves the elector, checks
for an existing ballot, classifies the selections and writes everything in
one transaction. An empty categorySelections list records a blank ballot
covering every category.

# Error Mapping

Domain errors from package ballot map to status codes in errors.go:

	*ballot.NotFoundError   → 404
	*ballot.ConflictError   → 409 (body carries existingBallot)
	*ballot.ValidationError → 400 (body carries field and validOptions)
	anything else           → 500 with a generic message

# Catalog

Reads are public. Writes (POST /electors, /parties, /categories, /candidates)
require an X-Admin-Key for the catalog scope, enforced by the router.

# Quiz

Questions never expose which option is correct. Questionnaires store
answers only and carry no elector reference.
*/
package handlers
