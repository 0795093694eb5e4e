// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"fmt"
)

// CreateSchema creates all tables needed for the application and seeds the
// static vote type rows.
// Safe to call multiple times - uses IF NOT EXISTS and ON CONFLICT DO NOTHING.
func CreateSchema(db *sql.DB, dbType string) error {
	var ddl string
	switch dbType {
	case TypePostgres:
		ddl = postgresSchema
	case TypeSQLite:
		ddl = sqliteSchema
	default:
		return fmt.Errorf("failed to create schema: %w: %q", ErrUnknownType, dbType)
	}

	if _, err := db.Exec(ddl); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	if _, err := db.Exec(voteTypeRows); err != nil {
		return fmt.Errorf("failed to seed vote types: %w", err)
	}

	return nil
}

// Ids are referenced by models.VoteTypeID*.
const voteTypeRows = `
INSERT INTO vote_type (id, code, name) VALUES
    (1, 'Valid', 'Válido'),
    (2, 'Null', 'Nulo'),
    (3, 'Blank', 'En Blanco')
ON CONFLICT DO NOTHING;
`

const postgresSchema = `
-- Reference catalog
CREATE TABLE IF NOT EXISTS vote_type (
    id INTEGER PRIMARY KEY,
    code TEXT NOT NULL UNIQUE,
    name TEXT NOT NULL UNIQUE
);

CREATE TABLE IF NOT EXISTS elector (
    id TEXT PRIMARY KEY,
    first_names TEXT NOT NULL,
    last_names TEXT NOT NULL,
    district TEXT NOT NULL,
    region TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS party (
    id BIGSERIAL PRIMARY KEY,
    name TEXT NOT NULL UNIQUE,
    logo TEXT
);

CREATE TABLE IF NOT EXISTS category (
    id BIGSERIAL PRIMARY KEY,
    name TEXT NOT NULL UNIQUE,
    scope TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS candidate (
    id BIGSERIAL PRIMARY KEY,
    name TEXT NOT NULL,
    number INTEGER,
    party_id BIGINT NOT NULL REFERENCES party(id),
    category_id BIGINT NOT NULL REFERENCES category(id)
);

CREATE INDEX IF NOT EXISTS idx_candidate_category_id ON candidate(category_id);

-- Ballots
CREATE TABLE IF NOT EXISTS ballot (
    id TEXT PRIMARY KEY,
    created_at TIMESTAMP NOT NULL DEFAULT NOW(),
    elector_id TEXT NOT NULL REFERENCES elector(id),
    vote_type_id INTEGER NOT NULL REFERENCES vote_type(id),
    CONSTRAINT ballot_elector_id_key UNIQUE (elector_id)
);

CREATE TABLE IF NOT EXISTS category_selection (
    id TEXT PRIMARY KEY,
    ballot_id TEXT NOT NULL REFERENCES ballot(id) ON DELETE CASCADE,
    position INTEGER NOT NULL,
    category_id BIGINT NOT NULL REFERENCES category(id),
    party_id BIGINT REFERENCES party(id),
    preferential_1 INTEGER,
    preferential_2 INTEGER,
    UNIQUE (ballot_id, category_id)
);

CREATE INDEX IF NOT EXISTS idx_category_selection_ballot_id ON category_selection(ballot_id);

-- Quiz
CREATE TABLE IF NOT EXISTS question (
    id BIGSERIAL PRIMARY KEY,
    text TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS question_option (
    id BIGSERIAL PRIMARY KEY,
    question_id BIGINT NOT NULL REFERENCES question(id) ON DELETE CASCADE,
    text TEXT NOT NULL,
    correct BOOLEAN NOT NULL DEFAULT FALSE
);

CREATE INDEX IF NOT EXISTS idx_question_option_question_id ON question_option(question_id);

CREATE TABLE IF NOT EXISTS questionnaire (
    id BIGSERIAL PRIMARY KEY,
    created_at TIMESTAMP NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS answer (
    questionnaire_id BIGINT NOT NULL REFERENCES questionnaire(id) ON DELETE CASCADE,
    question_id BIGINT NOT NULL REFERENCES question(id),
    option_id BIGINT NOT NULL REFERENCES question_option(id),
    PRIMARY KEY (questionnaire_id, question_id)
);
`

const sqliteSchema = `
-- Reference catalog
CREATE TABLE IF NOT EXISTS vote_type (
    id INTEGER PRIMARY KEY,
    code TEXT NOT NULL UNIQUE,
    name TEXT NOT NULL UNIQUE
);

CREATE TABLE IF NOT EXISTS elector (
    id TEXT PRIMARY KEY,
    first_names TEXT NOT NULL,
    last_names TEXT NOT NULL,
    district TEXT NOT NULL,
    region TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS party (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    name TEXT NOT NULL UNIQUE,
    logo TEXT
);

CREATE TABLE IF NOT EXISTS category (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    name TEXT NOT NULL UNIQUE,
    scope TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS candidate (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    name TEXT NOT NULL,
    number INTEGER,
    party_id INTEGER NOT NULL REFERENCES party(id),
    category_id INTEGER NOT NULL REFERENCES category(id)
);

CREATE INDEX IF NOT EXISTS idx_candidate_category_id ON candidate(category_id);

-- Ballots
CREATE TABLE IF NOT EXISTS ballot (
    id TEXT PRIMARY KEY,
    created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
    elector_id TEXT NOT NULL REFERENCES elector(id),
    vote_type_id INTEGER NOT NULL REFERENCES vote_type(id),
    CONSTRAINT ballot_elector_id_key UNIQUE (elector_id)
);

CREATE TABLE IF NOT EXISTS category_selection (
    id TEXT PRIMARY KEY,
    ballot_id TEXT NOT NULL REFERENCES ballot(id) ON DELETE CASCADE,
    position INTEGER NOT NULL,
    category_id INTEGER NOT NULL REFERENCES category(id),
    party_id INTEGER REFERENCES party(id),
    preferential_1 INTEGER,
    preferential_2 INTEGER,
    UNIQUE (ballot_id, category_id)
);

CREATE INDEX IF NOT EXISTS idx_category_selection_ballot_id ON category_selection(ballot_id);

-- Quiz
CREATE TABLE IF NOT EXISTS question (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    text TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS question_option (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    question_id INTEGER NOT NULL REFERENCES question(id) ON DELETE CASCADE,
    text TEXT NOT NULL,
    correct BOOLEAN NOT NULL DEFAULT 0
);

CREATE INDEX IF NOT EXISTS idx_question_option_question_id ON question_option(question_id);

CREATE TABLE IF NOT EXISTS questionnaire (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS answer (
    questionnaire_id INTEGER NOT NULL REFERENCES questionnaire(id) ON DELETE CASCADE,
    question_id INTEGER NOT NULL REFERENCES question(id),
    option_id INTEGER NOT NULL REFERENCES question_option(id),
    PRIMARY KEY (questionnaire_id, question_id)
);
`
