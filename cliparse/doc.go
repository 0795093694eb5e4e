// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# Config Fields

  - Port: Server listen port (default: 3318)
  - DatabaseURL: SQLite file or PostgreSQL connection string (required)
  - DatabaseType: sqlite (default) or postgres
  - AdminKeySalt: Secret for admin key HMAC (required)
  - Seed: Load the reference catalog on start
  - EnvFile: Environment file read before env fallback (default: .env)
  - AdminKeyFor: Print the admin key for a scope and exit

# CLI Flags

	-p               Server port
	-d               Database URL
	-t               Database type
	-admin-salt      Admin key salt
	-seed            Seed the reference catalog
	-env-file        Environment file
	-admin-key-for   Print admin key for catalog or quiz

# Environment Variables

Flags fall back to environment variables:

	PORT           → -p
	DATABASE_URL   → -d
	DATABASE_TYPE  → -t
	ADMIN_KEY_SALT → -admin-salt
	SEED_ON_START  → -seed

CLI flags take precedence over environment variables, and variables already
present in the environment take precedence over the env file.

# Validation

ParseFlags returns an error if required values are missing:

  - ADMIN_KEY_SALT must be provided
  - DATABASE_URL must be provided (unless -admin-key-for is given)
  - DATABASE_TYPE must be sqlite or postgres

# Example

	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		log.Fatal(err)
	}

	conn, err := db.Open(cfg.DatabaseType, cfg.DatabaseURL)
	// ...
	mux := router.NewRouter(conn, cfg)
*/
package cliparse
