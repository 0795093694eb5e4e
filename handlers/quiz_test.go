// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"

	"github.com/danielhkuo/quickly-vote/models"
	"github.com/danielhkuo/quickly-vote/testutil"
)

func TestCreateQuestion(t *testing.T) {
	db := testutil.SetupTestDB(t)
	handler := NewQuizHandler(db, testutil.GetTestConfig())

	tests := []struct {
		name           string
		body           interface{}
		expectedStatus int
	}{
		{
			name: "valid question",
			body: models.CreateQuestionRequest{
				Text:    "¿Cuántos años dura el mandato presidencial?",
				Options: []models.OptionInput{{Text: "4 años"}, {Text: "5 años", Correct: true}},
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "missing text",
			body:           models.CreateQuestionRequest{Options: []models.OptionInput{{Text: "a", Correct: true}, {Text: "b"}}},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "one option",
			body:           models.CreateQuestionRequest{Text: "q", Options: []models.OptionInput{{Text: "a", Correct: true}}},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "no correct option",
			body:           models.CreateQuestionRequest{Text: "q", Options: []models.OptionInput{{Text: "a"}, {Text: "b"}}},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "empty option text",
			body:           models.CreateQuestionRequest{Text: "q", Options: []models.OptionInput{{Text: "a", Correct: true}, {Text: " "}}},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := testutil.MakeRequest("POST", "/questions", tt.body, nil)
			w := httptest.NewRecorder()

			handler.CreateQuestion(w, req)

			testutil.AssertStatus(t, w, tt.expectedStatus)
		})
	}

	if n := testutil.CountRows(t, db, "question"); n != 1 {
		t.Errorf("Expected 1 question, got %d", n)
	}
	if n := testutil.CountRows(t, db, "question_option"); n != 2 {
		t.Errorf("Expected 2 options, got %d", n)
	}
}

func TestQuestionsHideCorrectAnswer(t *testing.T) {
	db := testutil.SetupTestDB(t)
	handler := NewQuizHandler(db, testutil.GetTestConfig())

	qid, _ := testutil.CreateTestQuestion(t, db, "¿Qué organismo organiza las elecciones?",
		models.OptionInput{Text: "ONPE", Correct: true}, models.OptionInput{Text: "SUNAT"})
	testutil.CreateTestQuestion(t, db, "Pregunta sin opciones")

	w := httptest.NewRecorder()
	handler.ListQuestions(w, httptest.NewRequest("GET", "/questions", nil))
	testutil.AssertStatus(t, w, http.StatusOK)
	if strings.Contains(w.Body.String(), "correct") {
		t.Errorf("Response must not expose correct answers: %s", w.Body.String())
	}

	var list []models.Question
	testutil.AssertJSON(t, w, &list)
	if len(list) != 2 || len(list[0].Options) != 2 || list[1].Options == nil {
		t.Errorf("Unexpected questions: %+v", list)
	}

	id := strconv.FormatInt(qid, 10)
	req := httptest.NewRequest("GET", "/questions/"+id, nil)
	req.SetPathValue("id", id)
	w = httptest.NewRecorder()
	handler.GetQuestion(w, req)
	testutil.AssertStatus(t, w, http.StatusOK)
	if strings.Contains(w.Body.String(), "correct") {
		t.Errorf("Response must not expose correct answers: %s", w.Body.String())
	}

	req = httptest.NewRequest("GET", "/questions/999", nil)
	req.SetPathValue("id", "999")
	w = httptest.NewRecorder()
	handler.GetQuestion(w, req)
	testutil.AssertStatus(t, w, http.StatusNotFound)
}

func TestSubmitQuestionnaire(t *testing.T) {
	db := testutil.SetupTestDB(t)
	handler := NewQuizHandler(db, testutil.GetTestConfig())

	q1, o1 := testutil.CreateTestQuestion(t, db, "Pregunta 1",
		models.OptionInput{Text: "a", Correct: true}, models.OptionInput{Text: "b"})
	q2, o2 := testutil.CreateTestQuestion(t, db, "Pregunta 2",
		models.OptionInput{Text: "c"}, models.OptionInput{Text: "d", Correct: true})

	tests := []struct {
		name           string
		answers        []models.AnswerInput
		expectedStatus int
		expectedField  string
	}{
		{"no answers", nil, http.StatusBadRequest, "answers"},
		{"unknown question", []models.AnswerInput{{QuestionID: 999, OptionID: o1[0]}}, http.StatusBadRequest, "answers[0].questionId"},
		{"unknown option", []models.AnswerInput{{QuestionID: q1, OptionID: 999}}, http.StatusBadRequest, "answers[0].optionId"},
		{"option of other question", []models.AnswerInput{{QuestionID: q1, OptionID: o1[0]}, {QuestionID: q2, OptionID: o1[1]}}, http.StatusBadRequest, "answers[1].optionId"},
		{"question answered twice", []models.AnswerInput{{QuestionID: q1, OptionID: o1[0]}, {QuestionID: q1, OptionID: o1[1]}}, http.StatusBadRequest, "answers[1].questionId"},
		{"valid", []models.AnswerInput{{QuestionID: q1, OptionID: o1[1]}, {QuestionID: q2, OptionID: o2[1]}}, http.StatusCreated, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := testutil.MakeRequest("POST", "/questionnaires", models.SubmitQuestionnaireRequest{Answers: tt.answers}, nil)
			w := httptest.NewRecorder()

			handler.SubmitQuestionnaire(w, req)

			testutil.AssertStatus(t, w, tt.expectedStatus)
			if tt.expectedField != "" {
				var resp models.ErrorResponse
				testutil.AssertJSON(t, w, &resp)
				if resp.Field != tt.expectedField {
					t.Errorf("Expected field %s, got %s", tt.expectedField, resp.Field)
				}
				return
			}

			var resp models.SubmitQuestionnaireResponse
			testutil.AssertJSON(t, w, &resp)
			if resp.ID == 0 || resp.TotalAnswers != 2 || resp.Message == "" {
				t.Errorf("Unexpected response: %+v", resp)
			}
		})
	}

	// Rejected submissions left nothing behind
	if n := testutil.CountRows(t, db, "questionnaire"); n != 1 {
		t.Errorf("Expected 1 questionnaire, got %d", n)
	}
	if n := testutil.CountRows(t, db, "answer"); n != 2 {
		t.Errorf("Expected 2 answers, got %d", n)
	}

	t.Run("list, detail and stats", func(t *testing.T) {
		w := httptest.NewRecorder()
		handler.ListQuestionnaires(w, httptest.NewRequest("GET", "/questionnaires", nil))
		testutil.AssertStatus(t, w, http.StatusOK)

		var list []models.Questionnaire
		testutil.AssertJSON(t, w, &list)
		if len(list) != 1 {
			t.Fatalf("Expected 1 questionnaire, got %d", len(list))
		}

		id := strconv.FormatInt(list[0].ID, 10)
		req := httptest.NewRequest("GET", "/questionnaires/"+id, nil)
		req.SetPathValue("id", id)
		w = httptest.NewRecorder()
		handler.GetQuestionnaire(w, req)
		testutil.AssertStatus(t, w, http.StatusOK)

		var detail models.QuestionnaireDetail
		testutil.AssertJSON(t, w, &detail)
		if len(detail.Answers) != 2 || detail.Answers[0].QuestionID != q1 {
			t.Errorf("Unexpected questionnaire detail: %+v", detail)
		}

		req = httptest.NewRequest("GET", "/questionnaires/999", nil)
		req.SetPathValue("id", "999")
		w = httptest.NewRecorder()
		handler.GetQuestionnaire(w, req)
		testutil.AssertStatus(t, w, http.StatusNotFound)

		w = httptest.NewRecorder()
		handler.QuestionnaireStats(w, httptest.NewRequest("GET", "/questionnaires/stats", nil))
		var stats models.QuestionnaireStatsResponse
		testutil.AssertJSON(t, w, &stats)
		if stats.Total != 1 {
			t.Errorf("Expected total 1, got %d", stats.Total)
		}
	})
}
