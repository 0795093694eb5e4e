// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package auth provides admin key generation and validation.

# Admin Keys

Admin keys use HMAC-SHA256 to create deterministic, verifiable keys bound to
a scope:

	adminKey := auth.GenerateAdminKey(auth.ScopeCatalog, salt)
	err := auth.ValidateAdminKey(auth.ScopeCatalog, adminKey, salt)

The key is URL-safe base64 encoded without padding. Since it's deterministic,
the same scope and salt always produce the same key. This allows validation
without storing the key in the database.

# Scopes

  - catalog: creating electors, parties, categories and candidates
  - quiz: creating knowledge questions

Ballot submission and every read endpoint are public. Operators obtain a key
with:

	quickly-vote -admin-key-for catalog
*/
package auth
