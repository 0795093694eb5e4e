// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the Quickly Vote API server.

Quickly Vote records electoral ballots: each elector casts at most one
ballot, every ballot is classified as Valid or Blank from its per-category
selections, and the ballot is stored together with its selections in a
single transaction.

# Starting the Server

The server requires environment variables or CLI flags for configuration:

	DATABASE_URL=vote.db ADMIN_KEY_SALT=... go run .

Or with flags:

	go run . -p 3318 -t postgres -d "postgres://..." -seed

A .env file in the working directory is loaded when present.

# Configuration

Required settings:

  - DATABASE_URL (-d): SQLite path or PostgreSQL connection string
  - ADMIN_KEY_SALT (-admin-salt): Secret for admin key HMAC

Optional settings:

  - PORT (-p): Server port (default: 3318)
  - DATABASE_TYPE (-t): sqlite (default) or postgres
  - SEED_ON_START (-seed): Load the demo catalog when the database is empty
  - -env-file: Alternate .env path

# Admin Keys

Catalog and quiz writes require an X-Admin-Key header. Print one with:

	go run . -admin-key-for catalog

# Architecture

  - ballot: duplicate guard, classifier, transaction manager
  - handlers: HTTP request handlers (ballots, catalog, quiz)
  - router: Route definitions using Go 1.22+ routing, /metrics
  - middleware: CORS, logging, JSON helpers, admin guard
  - store: Generic table repository and transactions
  - models: Records and request/response types
  - auth: Admin key generation and validation
  - db: Connections, schema, constraint classification
  - seed: Embedded demo catalog
  - cliparse: Configuration parsing

See package documentation for each component.
*/
package main
