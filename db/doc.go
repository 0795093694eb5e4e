// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db handles connections, schema creation and driver error
classification.

# Connections

Open connects with the driver matching the configured type:

	conn, err := db.Open(db.TypePostgres, "postgres://...")
	conn, err := db.Open(db.TypeSQLite, "file:vote.db")

SQLite connections enable foreign keys, a busy timeout and immediate
transactions, and are limited to a single open connection.

# Schema Creation

CreateSchema initializes all required tables for the given type:

	if err := db.CreateSchema(conn, cfg.DatabaseType); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS for all tables and indexes.
The three vote type rows (1 Valid, 2 Null, 3 Blank) are inserted here because
ballot classification depends on their ids.

# Tables

  - vote_type, elector, party, category, candidate: reference catalog
  - ballot: one row per elector (UNIQUE elector_id, constraint
    ballot_elector_id_key)
  - category_selection: one row per category choice of a ballot
  - question, question_option, questionnaire, answer: knowledge quiz

# Relationships

	elector  1──0..1 ballot
	ballot   1──*    category_selection
	category 1──*    category_selection
	party    1──*    category_selection (nullable: blank)
	question 1──*    question_option
	questionnaire 1──* answer

# Constraint Violations

Both drivers report constraint failures differently; callers use:

	db.IsUniqueViolation(err, "ballot", "elector_id")
	db.IsAnyUniqueViolation(err)
	db.IsIntegrityViolation(err)

These match *pq.Error SQLSTATE codes and *sqlite.Error extended result codes.
*/
package db
