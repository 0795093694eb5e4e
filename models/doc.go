// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines value records, request and response types for the API.

Records are plain structs keyed by identifier. Relations are carried as ids
(Ballot.ElectorID, CategorySelection.CategoryID, ...) and resolved through the
store package, never as embedded pointers.

# Reference Catalog

  - Elector: eligible voter, keyed by national identifier
  - Party: political party
  - Category: electable office (Presidente, Diputado, ...) with a scope
  - Candidate: party candidate for a category, optionally numbered
  - VoteType: Valid, Null or Blank (static rows, fixed ids 1..3)

# Ballots

  - Ballot: one elector's vote (id, createdAt, electorId, voteType)
  - CategorySelection: one category's choice; a nil PartyID is blank
  - BallotDetail: a ballot together with its selections

# Quiz

  - Question, QuestionOption: knowledge questions; Correct is never encoded
  - Questionnaire, Answer: an anonymous submission and its answers

# Request Types

  - CreateBallotRequest: electorId, categorySelections (optional)
  - CreateElectorRequest, CreatePartyRequest, CreateCategoryRequest,
    CreateCandidateRequest
  - CreateQuestionRequest, SubmitQuestionnaireRequest

# Response Types

  - VerifyElectorResponse: electorId, electorExists, alreadyVoted, canVote
  - SubmitQuestionnaireResponse, QuestionnaireStatsResponse
  - ErrorResponse: error, message and, depending on the failure, field,
    validOptions or existingBallot

# Constants

Vote type codes:

	VoteTypeValid = "Valid"
	VoteTypeNull  = "Null"
	VoteTypeBlank = "Blank"
*/
package models
