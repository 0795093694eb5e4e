// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/danielhkuo/quickly-vote/auth"
	"github.com/danielhkuo/quickly-vote/cliparse"
	"github.com/danielhkuo/quickly-vote/db"
	"github.com/danielhkuo/quickly-vote/middleware"
	"github.com/danielhkuo/quickly-vote/models"
	"github.com/danielhkuo/quickly-vote/store"
)

// SetupTestDB creates a fresh sqlite database with the full schema in a
// temporary directory. It is closed when the test ends.
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	path := filepath.Join(t.TempDir(), "test.db")
	conn, err := db.Open(db.TypeSQLite, path)
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	t.Cleanup(func() { conn.Close() })

	if err := db.CreateSchema(conn, db.TypeSQLite); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	return conn
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:         3318,
		DatabaseURL:  "test.db",
		DatabaseType: db.TypeSQLite,
		AdminKeySalt: "test-admin-salt",
	}
}

// AdminHeaders returns the X-Admin-Key header for scope under cfg
func AdminHeaders(cfg cliparse.Config, scope string) map[string]string {
	return map[string]string{
		middleware.AdminKeyHeader: auth.GenerateAdminKey(scope, cfg.AdminKeySalt),
	}
}

// CreateTestElector inserts an elector with the given national id
func CreateTestElector(t *testing.T, conn *sql.DB, id string) models.Elector {
	t.Helper()

	e := models.Elector{
		ID:        id,
		FirstName: "Juan Carlos",
		LastName:  "Pérez García",
		District:  "Lima",
		Region:    "Lima",
	}
	if err := store.InsertElector(context.Background(), conn, e); err != nil {
		t.Fatalf("Failed to create test elector: %v", err)
	}

	return e
}

// CreateTestParty inserts a party and returns its id
func CreateTestParty(t *testing.T, conn *sql.DB, name string) int64 {
	t.Helper()

	id, err := store.InsertParty(context.Background(), conn, models.Party{Name: name})
	if err != nil {
		t.Fatalf("Failed to create test party: %v", err)
	}

	return id
}

// CreateTestCategory inserts a national category and returns its id
func CreateTestCategory(t *testing.T, conn *sql.DB, name string) int64 {
	t.Helper()

	id, err := store.InsertCategory(context.Background(), conn, models.Category{Name: name, Scope: models.ScopeNational})
	if err != nil {
		t.Fatalf("Failed to create test category: %v", err)
	}

	return id
}

// CreateTestQuestion inserts a question with options and returns the
// question id and the option ids in order
func CreateTestQuestion(t *testing.T, conn *sql.DB, text string, options ...models.OptionInput) (int64, []int64) {
	t.Helper()

	ctx := context.Background()
	questionID, err := store.InsertQuestion(ctx, conn, text)
	if err != nil {
		t.Fatalf("Failed to create test question: %v", err)
	}

	optionIDs := make([]int64, 0, len(options))
	for _, o := range options {
		id, err := store.InsertOption(ctx, conn, models.QuestionOption{QuestionID: questionID, Text: o.Text, Correct: o.Correct})
		if err != nil {
			t.Fatalf("Failed to create test option: %v", err)
		}
		optionIDs = append(optionIDs, id)
	}

	return questionID, optionIDs
}

// CountRows returns the number of rows in table
func CountRows(t *testing.T, conn *sql.DB, table string) int {
	t.Helper()

	var n int
	if err := conn.QueryRow("SELECT COUNT(*) FROM " + table).Scan(&n); err != nil {
		t.Fatalf("Failed to count %s: %v", table, err)
	}

	return n
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
