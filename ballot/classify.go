// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package ballot

import "github.com/danielhkuo/quickly-vote/models"

// Classify returns the vote type code for a set of selections: Blank when no
// selection names a party, Valid otherwise. Null is never produced here.
func Classify(selections []models.CategorySelection) string {
	for _, s := range selections {
		if s.PartyID != nil {
			return models.VoteTypeValid
		}
	}
	return models.VoteTypeBlank
}

func voteTypeID(code string) int64 {
	switch code {
	case models.VoteTypeValid:
		return models.VoteTypeIDValid
	case models.VoteTypeNull:
		return models.VoteTypeIDNull
	default:
		return models.VoteTypeIDBlank
	}
}
