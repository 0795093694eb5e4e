// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"database/sql"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/danielhkuo/quickly-vote/auth"
	"github.com/danielhkuo/quickly-vote/ballot"
	"github.com/danielhkuo/quickly-vote/cliparse"
	"github.com/danielhkuo/quickly-vote/handlers"
	"github.com/danielhkuo/quickly-vote/middleware"
)

func NewRouter(db *sql.DB, cfg cliparse.Config) *http.ServeMux {
	mux := http.NewServeMux()

	reg := prometheus.NewRegistry()
	manager := ballot.NewManager(db, ballot.WithMetrics(ballot.NewMetrics(reg)))

	// Initialize handlers
	ballotHandler := handlers.NewBallotHandler(db, cfg, manager)
	catalogHandler := handlers.NewCatalogHandler(db, cfg)
	quizHandler := handlers.NewQuizHandler(db, cfg)

	catalogAdmin := func(next http.HandlerFunc) http.HandlerFunc {
		return middleware.WithLogging(middleware.RequireAdmin(auth.ScopeCatalog, cfg.AdminKeySalt, next))
	}
	quizAdmin := func(next http.HandlerFunc) http.HandlerFunc {
		return middleware.WithLogging(middleware.RequireAdmin(auth.ScopeQuiz, cfg.AdminKeySalt, next))
	}

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	mux.Handle("GET /metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))

	// Ballots (public)
	mux.HandleFunc("POST /ballots", middleware.WithLogging(ballotHandler.CreateBallot))
	mux.HandleFunc("GET /ballots", middleware.WithLogging(ballotHandler.ListBallots))
	mux.HandleFunc("GET /ballots/{id}", middleware.WithLogging(ballotHandler.GetBallot))
	mux.HandleFunc("GET /ballots/verify/{electorId}", middleware.WithLogging(ballotHandler.VerifyElector))
	mux.HandleFunc("GET /category-selections", middleware.WithLogging(ballotHandler.ListSelections))
	mux.HandleFunc("GET /category-selections/{id}", middleware.WithLogging(ballotHandler.GetSelection))

	// Reference catalog (reads public, writes admin)
	mux.HandleFunc("GET /vote-types", middleware.WithLogging(catalogHandler.ListVoteTypes))
	mux.HandleFunc("GET /vote-types/{id}", middleware.WithLogging(catalogHandler.GetVoteType))

	mux.HandleFunc("GET /electors", middleware.WithLogging(catalogHandler.ListElectors))
	mux.HandleFunc("GET /electors/{id}", middleware.WithLogging(catalogHandler.GetElector))
	mux.HandleFunc("POST /electors", catalogAdmin(catalogHandler.CreateElector))

	mux.HandleFunc("GET /parties", middleware.WithLogging(catalogHandler.ListParties))
	mux.HandleFunc("GET /parties/{id}", middleware.WithLogging(catalogHandler.GetParty))
	mux.HandleFunc("POST /parties", catalogAdmin(catalogHandler.CreateParty))

	mux.HandleFunc("GET /categories", middleware.WithLogging(catalogHandler.ListCategories))
	mux.HandleFunc("GET /categories/{id}", middleware.WithLogging(catalogHandler.GetCategory))
	mux.HandleFunc("POST /categories", catalogAdmin(catalogHandler.CreateCategory))

	mux.HandleFunc("GET /candidates", middleware.WithLogging(catalogHandler.ListCandidates))
	mux.HandleFunc("GET /candidates/{id}", middleware.WithLogging(catalogHandler.GetCandidate))
	mux.HandleFunc("POST /candidates", catalogAdmin(catalogHandler.CreateCandidate))

	// Knowledge quiz
	mux.HandleFunc("GET /questions", middleware.WithLogging(quizHandler.ListQuestions))
	mux.HandleFunc("GET /questions/{id}", middleware.WithLogging(quizHandler.GetQuestion))
	mux.HandleFunc("POST /questions", quizAdmin(quizHandler.CreateQuestion))

	mux.HandleFunc("POST /questionnaires", middleware.WithLogging(quizHandler.SubmitQuestionnaire))
	mux.HandleFunc("GET /questionnaires", middleware.WithLogging(quizHandler.ListQuestionnaires))
	mux.HandleFunc("GET /questionnaires/stats", middleware.WithLogging(quizHandler.QuestionnaireStats))
	mux.HandleFunc("GET /questionnaires/{id}", middleware.WithLogging(quizHandler.GetQuestionnaire))

	// Root endpoint
	mux.HandleFunc("GET /", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("quickly-vote API v1"))
	})

	return mux
}
