// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import "time"

// Vote type codes. Row ids are fixed by the schema.
const (
	VoteTypeValid = "Valid"
	VoteTypeNull  = "Null"
	VoteTypeBlank = "Blank"
)

const (
	VoteTypeIDValid int64 = 1
	VoteTypeIDNull  int64 = 2
	VoteTypeIDBlank int64 = 3
)

// Category scopes
const (
	ScopeNational = "Nacional"
	ScopeRegional = "Regional"
)

// Reference catalog records

type Elector struct {
	ID        string `json:"id"` // national identifier
	FirstName string `json:"firstNames"`
	LastName  string `json:"lastNames"`
	District  string `json:"district"`
	Region    string `json:"region"`
}

type Party struct {
	ID   int64   `json:"id"`
	Name string  `json:"name"`
	Logo *string `json:"logo,omitempty"`
}

type Category struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Scope string `json:"scope"`
}

type Candidate struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	Number     *int   `json:"number,omitempty"` // nil for single-seat categories
	PartyID    int64  `json:"partyId"`
	CategoryID int64  `json:"categoryId"`
}

type VoteType struct {
	ID   int64  `json:"id"`
	Code string `json:"code"`
	Name string `json:"name"`
}

// Ballot records

type Ballot struct {
	ID         string    `json:"id"`
	CreatedAt  time.Time `json:"createdAt"`
	ElectorID  string    `json:"electorId"`
	VoteTypeID int64     `json:"voteTypeId"`
	VoteType   string    `json:"voteType"`
}

// A nil PartyID is a blank choice for that category.
type CategorySelection struct {
	ID            string `json:"id"`
	BallotID      string `json:"ballotId"`
	CategoryID    int64  `json:"categoryId"`
	PartyID       *int64 `json:"partyId"`
	Preferential1 *int   `json:"preferential1,omitempty"`
	Preferential2 *int   `json:"preferential2,omitempty"`
}

type BallotDetail struct {
	Ballot
	Selections []CategorySelection `json:"categorySelections"`
}

// Quiz records (independent of ballots; nothing here references an elector)

type Question struct {
	ID      int64            `json:"id"`
	Text    string           `json:"text"`
	Options []QuestionOption `json:"options"`
}

type QuestionOption struct {
	ID         int64  `json:"id"`
	QuestionID int64  `json:"questionId"`
	Text       string `json:"text"`
	Correct    bool   `json:"-"` // never exposed
}

type Questionnaire struct {
	ID        int64     `json:"id"`
	CreatedAt time.Time `json:"createdAt"`
}

type Answer struct {
	QuestionnaireID int64 `json:"questionnaireId"`
	QuestionID      int64 `json:"questionId"`
	OptionID        int64 `json:"optionId"`
}

type QuestionnaireDetail struct {
	Questionnaire
	Answers []Answer `json:"answers"`
}

// Request types

type SelectionInput struct {
	CategoryID    int64  `json:"categoryId"`
	PartyID       *int64 `json:"partyId"`
	Preferential1 *int   `json:"preferential1"`
	Preferential2 *int   `json:"preferential2"`
}

type CreateBallotRequest struct {
	ElectorID  string           `json:"electorId"`
	Selections []SelectionInput `json:"categorySelections"`
}

type CreateElectorRequest struct {
	ID        string `json:"id"`
	FirstName string `json:"firstNames"`
	LastName  string `json:"lastNames"`
	District  string `json:"district"`
	Region    string `json:"region"`
}

type CreatePartyRequest struct {
	Name string  `json:"name"`
	Logo *string `json:"logo"`
}

type CreateCategoryRequest struct {
	Name  string `json:"name"`
	Scope string `json:"scope"`
}

type CreateCandidateRequest struct {
	Name       string `json:"name"`
	Number     *int   `json:"number"`
	PartyID    int64  `json:"partyId"`
	CategoryID int64  `json:"categoryId"`
}

type OptionInput struct {
	Text    string `json:"text"`
	Correct bool   `json:"correct"`
}

type CreateQuestionRequest struct {
	Text    string        `json:"text"`
	Options []OptionInput `json:"options"`
}

type AnswerInput struct {
	QuestionID int64 `json:"questionId"`
	OptionID   int64 `json:"optionId"`
}

type SubmitQuestionnaireRequest struct {
	Answers []AnswerInput `json:"answers"`
}

// Response types

type VerifyElectorResponse struct {
	ElectorID     string `json:"electorId"`
	ElectorExists bool   `json:"electorExists"`
	AlreadyVoted  bool   `json:"alreadyVoted"`
	CanVote       bool   `json:"canVote"`
}

type SubmitQuestionnaireResponse struct {
	ID           int64     `json:"id"`
	CreatedAt    time.Time `json:"createdAt"`
	TotalAnswers int       `json:"totalAnswers"`
	Message      string    `json:"message"`
}

type QuestionnaireStatsResponse struct {
	Total int `json:"total"`
}

// Error response

type ExistingBallot struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"createdAt"`
}

type ErrorResponse struct {
	Error          string          `json:"error"`
	Message        string          `json:"message,omitempty"`
	Field          string          `json:"field,omitempty"`
	ValidOptions   []int64         `json:"validOptions,omitempty"`
	ExistingBallot *ExistingBallot `json:"existingBallot,omitempty"`
}
