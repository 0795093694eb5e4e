// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the Quickly Vote API.

# Route Registration

NewRouter creates a configured http.ServeMux with all endpoints:

	mux := router.NewRouter(db, cfg)

# Endpoints

Health and metrics:

	GET /health
	GET /metrics

Ballots (public):

	POST /ballots                    - Record a ballot
	GET  /ballots                    - List ballots
	GET  /ballots/{id}               - Ballot with selections
	GET  /ballots/verify/{electorId} - Can this elector vote?
	GET  /category-selections        - List selections
	GET  /category-selections/{id}   - Single selection

Reference catalog (reads public, POST requires a catalog X-Admin-Key):

	GET  /vote-types, /vote-types/{id}
	GET  /electors, /electors/{id}      POST /electors
	GET  /parties, /parties/{id}        POST /parties
	GET  /categories, /categories/{id}  POST /categories
	GET  /candidates, /candidates/{id}  POST /candidates

Quiz (POST /questions requires a quiz X-Admin-Key):

	GET  /questions, /questions/{id}    POST /questions
	POST /questionnaires
	GET  /questionnaires, /questionnaires/{id}, /questionnaires/stats

# Metrics

Ballot counters are registered on a registry private to the router, so
/metrics exposes only this service's counters and building several routers
in one process (as tests do) never collides.
*/
package router
