// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package ballot

import (
	"testing"

	"github.com/danielhkuo/quickly-vote/models"
	"github.com/stretchr/testify/assert"
)

func partyID(id int64) *int64 { return &id }

func TestClassify(t *testing.T) {
	tests := []struct {
		name       string
		selections []models.CategorySelection
		want       string
	}{
		{"no selections", nil, models.VoteTypeBlank},
		{"all blank", []models.CategorySelection{{CategoryID: 1}, {CategoryID: 2}}, models.VoteTypeBlank},
		{"single party", []models.CategorySelection{{CategoryID: 1, PartyID: partyID(1)}}, models.VoteTypeValid},
		{
			"mixed blank and party",
			[]models.CategorySelection{{CategoryID: 1}, {CategoryID: 2, PartyID: partyID(4)}, {CategoryID: 3}},
			models.VoteTypeValid,
		},
		{
			"all parties",
			[]models.CategorySelection{{CategoryID: 1, PartyID: partyID(1)}, {CategoryID: 2, PartyID: partyID(2)}},
			models.VoteTypeValid,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Classify(tt.selections)
			assert.Equal(t, tt.want, got)
			assert.NotEqual(t, models.VoteTypeNull, got)
		})
	}
}

func TestVoteTypeID(t *testing.T) {
	assert.Equal(t, models.VoteTypeIDValid, voteTypeID(models.VoteTypeValid))
	assert.Equal(t, models.VoteTypeIDNull, voteTypeID(models.VoteTypeNull))
	assert.Equal(t, models.VoteTypeIDBlank, voteTypeID(models.VoteTypeBlank))
}
