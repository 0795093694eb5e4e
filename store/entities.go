// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"fmt"
	"time"

	"github.com/danielhkuo/quickly-vote/models"
)

// Reference catalog

var Electors = Table[models.Elector, string]{
	Kind:    "elector",
	From:    "elector",
	Columns: "id, first_names, last_names, district, region",
	Key:     "id",
	OrderBy: "id",
	Scan: func(s Scanner) (models.Elector, error) {
		var e models.Elector
		err := s.Scan(&e.ID, &e.FirstName, &e.LastName, &e.District, &e.Region)
		return e, err
	},
}

var Parties = Table[models.Party, int64]{
	Kind:    "party",
	From:    "party",
	Columns: "id, name, logo",
	Key:     "id",
	OrderBy: "id",
	Scan: func(s Scanner) (models.Party, error) {
		var p models.Party
		err := s.Scan(&p.ID, &p.Name, &p.Logo)
		return p, err
	},
}

var Categories = Table[models.Category, int64]{
	Kind:    "category",
	From:    "category",
	Columns: "id, name, scope",
	Key:     "id",
	OrderBy: "id",
	Scan: func(s Scanner) (models.Category, error) {
		var c models.Category
		err := s.Scan(&c.ID, &c.Name, &c.Scope)
		return c, err
	},
}

var Candidates = Table[models.Candidate, int64]{
	Kind:    "candidate",
	From:    "candidate",
	Columns: "id, name, number, party_id, category_id",
	Key:     "id",
	OrderBy: "id",
	Scan: func(s Scanner) (models.Candidate, error) {
		var c models.Candidate
		err := s.Scan(&c.ID, &c.Name, &c.Number, &c.PartyID, &c.CategoryID)
		return c, err
	},
}

var VoteTypes = Table[models.VoteType, int64]{
	Kind:    "vote type",
	From:    "vote_type",
	Columns: "id, code, name",
	Key:     "id",
	OrderBy: "id",
	Scan: func(s Scanner) (models.VoteType, error) {
		var v models.VoteType
		err := s.Scan(&v.ID, &v.Code, &v.Name)
		return v, err
	},
}

// Ballots

var Ballots = Table[models.Ballot, string]{
	Kind:    "ballot",
	From:    "ballot b JOIN vote_type vt ON vt.id = b.vote_type_id",
	Columns: "b.id, b.created_at, b.elector_id, b.vote_type_id, vt.code",
	Key:     "b.id",
	OrderBy: "b.created_at, b.id",
	Scan: func(s Scanner) (models.Ballot, error) {
		var b models.Ballot
		err := s.Scan(&b.ID, &b.CreatedAt, &b.ElectorID, &b.VoteTypeID, &b.VoteType)
		return b, err
	},
}

var Selections = Table[models.CategorySelection, string]{
	Kind:    "category selection",
	From:    "category_selection",
	Columns: "id, ballot_id, category_id, party_id, preferential_1, preferential_2",
	Key:     "id",
	OrderBy: "ballot_id, position",
	Scan: func(s Scanner) (models.CategorySelection, error) {
		var cs models.CategorySelection
		err := s.Scan(&cs.ID, &cs.BallotID, &cs.CategoryID, &cs.PartyID, &cs.Preferential1, &cs.Preferential2)
		return cs, err
	},
}

// Quiz

var Questions = Table[models.Question, int64]{
	Kind:    "question",
	From:    "question",
	Columns: "id, text",
	Key:     "id",
	OrderBy: "id",
	Scan: func(s Scanner) (models.Question, error) {
		var q models.Question
		err := s.Scan(&q.ID, &q.Text)
		return q, err
	},
}

var Options = Table[models.QuestionOption, int64]{
	Kind:    "option",
	From:    "question_option",
	Columns: "id, question_id, text, correct",
	Key:     "id",
	OrderBy: "question_id, id",
	Scan: func(s Scanner) (models.QuestionOption, error) {
		var o models.QuestionOption
		err := s.Scan(&o.ID, &o.QuestionID, &o.Text, &o.Correct)
		return o, err
	},
}

var Questionnaires = Table[models.Questionnaire, int64]{
	Kind:    "questionnaire",
	From:    "questionnaire",
	Columns: "id, created_at",
	Key:     "id",
	OrderBy: "id",
	Scan: func(s Scanner) (models.Questionnaire, error) {
		var q models.Questionnaire
		err := s.Scan(&q.ID, &q.CreatedAt)
		return q, err
	},
}

// Answers has a composite key; look answers up with Where.
var Answers = Table[models.Answer, int64]{
	Kind:    "answer",
	From:    "answer",
	Columns: "questionnaire_id, question_id, option_id",
	Key:     "questionnaire_id",
	OrderBy: "questionnaire_id, question_id",
	Scan: func(s Scanner) (models.Answer, error) {
		var a models.Answer
		err := s.Scan(&a.QuestionnaireID, &a.QuestionID, &a.OptionID)
		return a, err
	},
}

// IDs returns the key of every row in a table, in key order. Used to build
// the validOptions list of a rejected reference.
func IDs(ctx context.Context, q Querier, table string) ([]int64, error) {
	rows, err := q.QueryContext(ctx, "SELECT id FROM "+table+" ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("failed to list %s ids: %w", table, err)
	}
	defer rows.Close()

	ids := make([]int64, 0)
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan %s id: %w", table, err)
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

// Inserts

func InsertElector(ctx context.Context, q Querier, e models.Elector) error {
	_, err := q.ExecContext(ctx, `
		INSERT INTO elector (id, first_names, last_names, district, region)
		VALUES ($1, $2, $3, $4, $5)
	`, e.ID, e.FirstName, e.LastName, e.District, e.Region)
	if err != nil {
		return fmt.Errorf("failed to insert elector: %w", err)
	}
	return nil
}

func InsertParty(ctx context.Context, q Querier, p models.Party) (int64, error) {
	var id int64
	err := q.QueryRowContext(ctx, `
		INSERT INTO party (name, logo) VALUES ($1, $2) RETURNING id
	`, p.Name, p.Logo).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to insert party: %w", err)
	}
	return id, nil
}

func InsertCategory(ctx context.Context, q Querier, c models.Category) (int64, error) {
	var id int64
	err := q.QueryRowContext(ctx, `
		INSERT INTO category (name, scope) VALUES ($1, $2) RETURNING id
	`, c.Name, c.Scope).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to insert category: %w", err)
	}
	return id, nil
}

func InsertCandidate(ctx context.Context, q Querier, c models.Candidate) (int64, error) {
	var id int64
	err := q.QueryRowContext(ctx, `
		INSERT INTO candidate (name, number, party_id, category_id)
		VALUES ($1, $2, $3, $4) RETURNING id
	`, c.Name, c.Number, c.PartyID, c.CategoryID).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to insert candidate: %w", err)
	}
	return id, nil
}

func InsertBallot(ctx context.Context, q Querier, b models.Ballot) error {
	_, err := q.ExecContext(ctx, `
		INSERT INTO ballot (id, created_at, elector_id, vote_type_id)
		VALUES ($1, $2, $3, $4)
	`, b.ID, b.CreatedAt, b.ElectorID, b.VoteTypeID)
	if err != nil {
		return fmt.Errorf("failed to insert ballot: %w", err)
	}
	return nil
}

// InsertSelection stores a selection at the given position so reads return
// selections in submission order.
func InsertSelection(ctx context.Context, q Querier, position int, s models.CategorySelection) error {
	_, err := q.ExecContext(ctx, `
		INSERT INTO category_selection (id, ballot_id, position, category_id, party_id, preferential_1, preferential_2)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`, s.ID, s.BallotID, position, s.CategoryID, s.PartyID, s.Preferential1, s.Preferential2)
	if err != nil {
		return fmt.Errorf("failed to insert category selection: %w", err)
	}
	return nil
}

func InsertQuestion(ctx context.Context, q Querier, text string) (int64, error) {
	var id int64
	err := q.QueryRowContext(ctx, `INSERT INTO question (text) VALUES ($1) RETURNING id`, text).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to insert question: %w", err)
	}
	return id, nil
}

func InsertOption(ctx context.Context, q Querier, o models.QuestionOption) (int64, error) {
	var id int64
	err := q.QueryRowContext(ctx, `
		INSERT INTO question_option (question_id, text, correct) VALUES ($1, $2, $3) RETURNING id
	`, o.QuestionID, o.Text, o.Correct).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to insert option: %w", err)
	}
	return id, nil
}

func InsertQuestionnaire(ctx context.Context, q Querier, createdAt time.Time) (int64, error) {
	var id int64
	err := q.QueryRowContext(ctx, `
		INSERT INTO questionnaire (created_at) VALUES ($1) RETURNING id
	`, createdAt).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to insert questionnaire: %w", err)
	}
	return id, nil
}

func InsertAnswer(ctx context.Context, q Querier, a models.Answer) error {
	_, err := q.ExecContext(ctx, `
		INSERT INTO answer (questionnaire_id, question_id, option_id) VALUES ($1, $2, $3)
	`, a.QuestionnaireID, a.QuestionID, a.OptionID)
	if err != nil {
		return fmt.Errorf("failed to insert answer: %w", err)
	}
	return nil
}
