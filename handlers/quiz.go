// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/danielhkuo/quickly-vote/ballot"
	"github.com/danielhkuo/quickly-vote/cliparse"
	"github.com/danielhkuo/quickly-vote/middleware"
	"github.com/danielhkuo/quickly-vote/models"
	"github.com/danielhkuo/quickly-vote/store"
)

const minQuestionOptions = 2

// QuizHandler serves the civic knowledge quiz. Submissions are anonymous and
// unrelated to ballots.
type QuizHandler struct {
	db  *sql.DB
	cfg cliparse.Config
}

func NewQuizHandler(db *sql.DB, cfg cliparse.Config) *QuizHandler {
	return &QuizHandler{db: db, cfg: cfg}
}

// CreateQuestion handles POST /questions
func (h *QuizHandler) CreateQuestion(w http.ResponseWriter, r *http.Request) {
	var req models.CreateQuestionRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	text := strings.TrimSpace(req.Text)
	if text == "" {
		middleware.ErrorResponseWith(w, http.StatusBadRequest, models.ErrorResponse{Message: "text is required", Field: "text"})
		return
	}
	if len(req.Options) < minQuestionOptions {
		middleware.ErrorResponseWith(w, http.StatusBadRequest, models.ErrorResponse{
			Message: fmt.Sprintf("at least %d options are required", minQuestionOptions),
			Field:   "options",
		})
		return
	}

	hasCorrect := false
	for i, o := range req.Options {
		if strings.TrimSpace(o.Text) == "" {
			middleware.ErrorResponseWith(w, http.StatusBadRequest, models.ErrorResponse{
				Message: "option text is required",
				Field:   fmt.Sprintf("options[%d].text", i),
			})
			return
		}
		hasCorrect = hasCorrect || o.Correct
	}
	if !hasCorrect {
		middleware.ErrorResponseWith(w, http.StatusBadRequest, models.ErrorResponse{
			Message: "at least one option must be correct",
			Field:   "options",
		})
		return
	}

	ctx := r.Context()
	q := models.Question{Text: text, Options: make([]models.QuestionOption, 0, len(req.Options))}
	err := store.WithTx(ctx, h.db, func(tx *sql.Tx) error {
		id, err := store.InsertQuestion(ctx, tx, text)
		if err != nil {
			return err
		}
		q.ID = id

		for _, o := range req.Options {
			opt := models.QuestionOption{QuestionID: id, Text: strings.TrimSpace(o.Text), Correct: o.Correct}
			optID, err := store.InsertOption(ctx, tx, opt)
			if err != nil {
				return err
			}
			opt.ID = optID
			q.Options = append(q.Options, opt)
		}
		return nil
	})
	if err != nil {
		slog.Error("failed to create question", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to create question")
		return
	}

	slog.Info("question created", "question_id", q.ID, "options", len(q.Options))
	middleware.JSONResponse(w, http.StatusCreated, q)
}

// ListQuestions handles GET /questions
func (h *QuizHandler) ListQuestions(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	questions, err := store.Questions.List(ctx, h.db)
	if err != nil {
		slog.Error("failed to list questions", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	options, err := store.Options.List(ctx, h.db)
	if err != nil {
		slog.Error("failed to list options", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	byQuestion := make(map[int64][]models.QuestionOption, len(questions))
	for _, o := range options {
		byQuestion[o.QuestionID] = append(byQuestion[o.QuestionID], o)
	}
	for i := range questions {
		questions[i].Options = byQuestion[questions[i].ID]
		if questions[i].Options == nil {
			questions[i].Options = []models.QuestionOption{}
		}
	}

	middleware.JSONResponse(w, http.StatusOK, questions)
}

// GetQuestion handles GET /questions/{id}
func (h *QuizHandler) GetQuestion(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	ctx := r.Context()

	q, err := store.Questions.Get(ctx, h.db, id)
	if errors.Is(err, store.ErrNotFound) {
		middleware.ErrorResponse(w, http.StatusNotFound, "Question not found")
		return
	}
	if err != nil {
		slog.Error("failed to get question", "error", err, "question_id", id)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	q.Options, err = store.Options.Where(ctx, h.db, "question_id = $1", id)
	if err != nil {
		slog.Error("failed to list options", "error", err, "question_id", id)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, q)
}

// SubmitQuestionnaire handles POST /questionnaires
func (h *QuizHandler) SubmitQuestionnaire(w http.ResponseWriter, r *http.Request) {
	var req models.SubmitQuestionnaireRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if len(req.Answers) == 0 {
		middleware.ErrorResponseWith(w, http.StatusBadRequest, models.ErrorResponse{
			Message: "at least one answer is required",
			Field:   "answers",
		})
		return
	}

	ctx := r.Context()
	createdAt := time.Now().UTC()
	var id int64
	err := store.WithTx(ctx, h.db, func(tx *sql.Tx) error {
		if err := checkAnswers(ctx, tx, req.Answers); err != nil {
			return err
		}

		var err error
		id, err = store.InsertQuestionnaire(ctx, tx, createdAt)
		if err != nil {
			return err
		}

		for _, a := range req.Answers {
			answer := models.Answer{QuestionnaireID: id, QuestionID: a.QuestionID, OptionID: a.OptionID}
			if err := store.InsertAnswer(ctx, tx, answer); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		writeError(w, err, "submit questionnaire")
		return
	}

	slog.Info("questionnaire submitted", "questionnaire_id", id, "answers", len(req.Answers))
	middleware.JSONResponse(w, http.StatusCreated, models.SubmitQuestionnaireResponse{
		ID:           id,
		CreatedAt:    createdAt,
		TotalAnswers: len(req.Answers),
		Message:      "Questionnaire recorded",
	})
}

// checkAnswers verifies every answer names an existing option of an existing
// question and that no question is answered twice
func checkAnswers(ctx context.Context, q store.Querier, answers []models.AnswerInput) error {
	seen := make(map[int64]bool, len(answers))
	for i, a := range answers {
		field := fmt.Sprintf("answers[%d]", i)

		if _, err := store.Questions.Get(ctx, q, a.QuestionID); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return &ballot.ValidationError{Field: field + ".questionId", Message: fmt.Sprintf("question %d does not exist", a.QuestionID)}
			}
			return err
		}
		if seen[a.QuestionID] {
			return &ballot.ValidationError{Field: field + ".questionId", Message: fmt.Sprintf("question %d is answered more than once", a.QuestionID)}
		}
		seen[a.QuestionID] = true

		opt, err := store.Options.Get(ctx, q, a.OptionID)
		if errors.Is(err, store.ErrNotFound) {
			return &ballot.ValidationError{Field: field + ".optionId", Message: fmt.Sprintf("option %d does not exist", a.OptionID)}
		}
		if err != nil {
			return err
		}
		if opt.QuestionID != a.QuestionID {
			return &ballot.ValidationError{
				Field:   field + ".optionId",
				Message: fmt.Sprintf("option %d does not belong to question %d", a.OptionID, a.QuestionID),
			}
		}
	}
	return nil
}

// ListQuestionnaires handles GET /questionnaires
func (h *QuizHandler) ListQuestionnaires(w http.ResponseWriter, r *http.Request) {
	listAll(w, r, h.db, store.Questionnaires)
}

// GetQuestionnaire handles GET /questionnaires/{id}
func (h *QuizHandler) GetQuestionnaire(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	ctx := r.Context()

	qn, err := store.Questionnaires.Get(ctx, h.db, id)
	if errors.Is(err, store.ErrNotFound) {
		middleware.ErrorResponse(w, http.StatusNotFound, "Questionnaire not found")
		return
	}
	if err != nil {
		slog.Error("failed to get questionnaire", "error", err, "questionnaire_id", id)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	answers, err := store.Answers.Where(ctx, h.db, "questionnaire_id = $1", id)
	if err != nil {
		slog.Error("failed to list answers", "error", err, "questionnaire_id", id)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.QuestionnaireDetail{Questionnaire: qn, Answers: answers})
}

// QuestionnaireStats handles GET /questionnaires/stats
func (h *QuizHandler) QuestionnaireStats(w http.ResponseWriter, r *http.Request) {
	total, err := store.Questionnaires.Count(r.Context(), h.db)
	if err != nil {
		slog.Error("failed to count questionnaires", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.QuestionnaireStatsResponse{Total: total})
}
