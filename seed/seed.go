// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package seed

import (
	"bytes"
	"context"
	"database/sql"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"gopkg.in/yaml.v3"

	"github.com/danielhkuo/quickly-vote/models"
	"github.com/danielhkuo/quickly-vote/store"
)

//go:embed catalog.yaml
var embeddedCatalog []byte

var ErrInvalidCatalog = errors.New("invalid seed catalog")

type Catalog struct {
	Electors   []Elector  `yaml:"electors"`
	Parties    []Party    `yaml:"parties"`
	Categories []Category `yaml:"categories"`
	Questions  []Question `yaml:"questions"`
}

type Elector struct {
	ID        string `yaml:"id"`
	FirstName string `yaml:"firstNames"`
	LastName  string `yaml:"lastNames"`
	District  string `yaml:"district"`
	Region    string `yaml:"region"`
}

type Party struct {
	Name string `yaml:"name"`
	Logo string `yaml:"logo"`
}

// Category carries either one unnumbered candidate per party (Candidates,
// in party order) or a numbered list generated for every party.
type Category struct {
	Name       string         `yaml:"name"`
	Scope      string         `yaml:"scope"`
	Candidates []string       `yaml:"candidates"`
	List       *CandidateList `yaml:"list"`
}

// CandidateList generates Size candidates per party numbered
// Base + partyIndex*10 + j and named "<Names[j]> [Label] <j+1>".
type CandidateList struct {
	Base  int      `yaml:"base"`
	Size  int      `yaml:"size"`
	Label string   `yaml:"label"`
	Names []string `yaml:"names"`
}

type Question struct {
	Text    string   `yaml:"text"`
	Options []Option `yaml:"options"`
}

type Option struct {
	Text    string `yaml:"text"`
	Correct bool   `yaml:"correct"`
}

// Summary reports what Apply inserted. Skipped is set when the database
// already held electors and nothing was written.
type Summary struct {
	Skipped    bool
	Electors   int
	Parties    int
	Categories int
	Candidates int
	Questions  int
}

var defaultCatalog = mustLoadEmbedded()

// Default returns the embedded demo catalog.
func Default() Catalog {
	return defaultCatalog
}

func mustLoadEmbedded() Catalog {
	c, err := NewCatalogFromReader(bytes.NewReader(embeddedCatalog))
	if err != nil {
		panic(fmt.Sprintf("load embedded seed catalog: %v", err))
	}
	return c
}

// NewCatalogFromReader decodes and validates a YAML catalog. Unknown keys
// are rejected.
func NewCatalogFromReader(r io.Reader) (Catalog, error) {
	var c Catalog
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&c); err != nil {
		return Catalog{}, fmt.Errorf("decode seed catalog: %w", err)
	}
	if err := c.validate(); err != nil {
		return Catalog{}, err
	}
	return c, nil
}

func (c *Catalog) validate() error {
	for i, cat := range c.Categories {
		switch {
		case cat.Scope != "" && cat.Scope != models.ScopeNational && cat.Scope != models.ScopeRegional:
			return fmt.Errorf("%w: category %q: unknown scope %q", ErrInvalidCatalog, cat.Name, cat.Scope)
		case cat.List != nil && len(cat.Candidates) > 0:
			return fmt.Errorf("%w: category %q: both candidates and list given", ErrInvalidCatalog, cat.Name)
		case len(cat.Candidates) > 0 && len(cat.Candidates) != len(c.Parties):
			return fmt.Errorf("%w: category %q: %d candidates for %d parties",
				ErrInvalidCatalog, cat.Name, len(cat.Candidates), len(c.Parties))
		case cat.List != nil && (cat.List.Size <= 0 || len(cat.List.Names) == 0):
			return fmt.Errorf("%w: category %q: list needs a size and names", ErrInvalidCatalog, cat.Name)
		case cat.List != nil && cat.List.Size > 10:
			return fmt.Errorf("%w: category %q: list size %d overlaps the next party's numbers",
				ErrInvalidCatalog, cat.Name, cat.List.Size)
		}
		if cat.Scope == "" {
			c.Categories[i].Scope = models.ScopeNational
		}
	}
	for _, q := range c.Questions {
		correct := 0
		for _, o := range q.Options {
			if o.Correct {
				correct++
			}
		}
		if len(q.Options) < 2 || correct == 0 {
			return fmt.Errorf("%w: question %q needs at least two options and one correct answer",
				ErrInvalidCatalog, q.Text)
		}
	}
	return nil
}

// Apply inserts the catalog in one transaction. It does nothing when any
// elector already exists, so it is safe to run on every start.
func Apply(ctx context.Context, conn *sql.DB, c Catalog) (Summary, error) {
	var sum Summary

	err := store.WithTx(ctx, conn, func(tx *sql.Tx) error {
		n, err := store.Electors.Count(ctx, tx)
		if err != nil {
			return err
		}
		if n > 0 {
			sum.Skipped = true
			return nil
		}

		for _, e := range c.Electors {
			err := store.InsertElector(ctx, tx, models.Elector{
				ID: e.ID, FirstName: e.FirstName, LastName: e.LastName,
				District: e.District, Region: e.Region,
			})
			if err != nil {
				return err
			}
			sum.Electors++
		}

		partyIDs := make([]int64, 0, len(c.Parties))
		for _, p := range c.Parties {
			party := models.Party{Name: p.Name}
			if p.Logo != "" {
				party.Logo = &p.Logo
			}
			id, err := store.InsertParty(ctx, tx, party)
			if err != nil {
				return err
			}
			partyIDs = append(partyIDs, id)
			sum.Parties++
		}

		for _, cat := range c.Categories {
			categoryID, err := store.InsertCategory(ctx, tx, models.Category{Name: cat.Name, Scope: cat.Scope})
			if err != nil {
				return err
			}
			sum.Categories++

			for _, cand := range cat.candidates(categoryID, partyIDs) {
				if _, err := store.InsertCandidate(ctx, tx, cand); err != nil {
					return err
				}
				sum.Candidates++
			}
		}

		for _, q := range c.Questions {
			questionID, err := store.InsertQuestion(ctx, tx, q.Text)
			if err != nil {
				return err
			}
			for _, o := range q.Options {
				_, err := store.InsertOption(ctx, tx, models.QuestionOption{
					QuestionID: questionID, Text: o.Text, Correct: o.Correct,
				})
				if err != nil {
					return err
				}
			}
			sum.Questions++
		}
		return nil
	})
	if err != nil {
		return Summary{}, fmt.Errorf("failed to seed catalog: %w", err)
	}

	if sum.Skipped {
		slog.Info("seed skipped, electors already present")
	} else {
		slog.Info("catalog seeded",
			"electors", sum.Electors,
			"parties", sum.Parties,
			"categories", sum.Categories,
			"candidates", sum.Candidates,
			"questions", sum.Questions)
	}
	return sum, nil
}

func (cat Category) candidates(categoryID int64, partyIDs []int64) []models.Candidate {
	var out []models.Candidate
	for i, partyID := range partyIDs {
		if len(cat.Candidates) > 0 {
			out = append(out, models.Candidate{
				Name: cat.Candidates[i], PartyID: partyID, CategoryID: categoryID,
			})
			continue
		}
		if cat.List == nil {
			continue
		}
		for j := 0; j < cat.List.Size; j++ {
			name := cat.List.Names[j%len(cat.List.Names)]
			if cat.List.Label != "" {
				name += " " + cat.List.Label
			}
			number := cat.List.Base + i*10 + j
			out = append(out, models.Candidate{
				Name:       fmt.Sprintf("%s %d", name, j+1),
				Number:     &number,
				PartyID:    partyID,
				CategoryID: categoryID,
			})
		}
	}
	return out
}
