// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package seed loads the demo reference catalog.

The catalog is a YAML file embedded in the binary (catalog.yaml): electors,
parties, categories with their candidates, and sample quiz questions.
Numbered candidate lists are generated per party rather than listed.

	sum, err := seed.Apply(ctx, conn, seed.Default())

Apply runs in a single transaction and does nothing when any elector already
exists. Vote types are not part of the catalog; CreateSchema owns them.
*/
package seed
