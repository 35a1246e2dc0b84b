// Copyright (c) 2026 FitTrack Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	_ "modernc.org/sqlite"

	"github.com/fittrack/fittrack/cliparse"
	"github.com/fittrack/fittrack/db"
)

// SetupTestDB creates a fresh in-memory database with the full schema.
// The pool is pinned to one connection: each sqlite :memory: connection is
// its own database, so a second connection would see empty tables.
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	conn, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	conn.SetMaxOpenConns(1)

	if err := db.CreateSchema(conn, "sqlite"); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	return conn
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:         8080,
		DatabaseURL:  ":memory:",
		DatabaseType: "sqlite",
	}
}

// CreateTestAccount inserts an account and returns its assigned ID
func CreateTestAccount(t *testing.T, conn *sql.DB, name string, age int, weight, height float64) int {
	t.Helper()

	var id int
	err := conn.QueryRow(`
		INSERT INTO accounts (name, age, weight, height)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`, name, age, weight, height).Scan(&id)
	if err != nil {
		t.Fatalf("Failed to create test account: %v", err)
	}

	return id
}

// CreateTestMeal inserts a meal and returns its assigned ID
func CreateTestMeal(t *testing.T, conn *sql.DB, name string, calories int) int {
	t.Helper()

	var id int
	err := conn.QueryRow(`
		INSERT INTO meals (name, calories)
		VALUES ($1, $2)
		RETURNING id
	`, name, calories).Scan(&id)
	if err != nil {
		t.Fatalf("Failed to create test meal: %v", err)
	}

	return id
}

// CreateTestWorkout inserts a workout row directly and returns its ID
func CreateTestWorkout(t *testing.T, conn *sql.DB, workoutType string, duration, caloriesBurned, accountID int) int {
	t.Helper()

	var id int
	err := conn.QueryRow(`
		INSERT INTO workouts (type, duration, calories_burned, account_id)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`, workoutType, duration, caloriesBurned, accountID).Scan(&id)
	if err != nil {
		t.Fatalf("Failed to create test workout: %v", err)
	}

	return id
}

// LinkAccountMeal records that an account ate a meal
func LinkAccountMeal(t *testing.T, conn *sql.DB, accountID, mealID int) {
	t.Helper()

	_, err := conn.Exec(`
		INSERT INTO account_meals (account_id, meal_id)
		VALUES ($1, $2)
	`, accountID, mealID)
	if err != nil {
		t.Fatalf("Failed to link account and meal: %v", err)
	}
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}) *http.Request {
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req := httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
		return req
	}
	return httptest.NewRequest(method, path, nil)
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

// AssertErrorMessage checks the {"error": ...} body
func AssertErrorMessage(t *testing.T, w *httptest.ResponseRecorder, expected string) {
	t.Helper()
	var resp struct {
		Error string `json:"error"`
	}
	if err := json.NewDecoder(bytes.NewReader(w.Body.Bytes())).Decode(&resp); err != nil {
		t.Fatalf("Failed to decode error response: %v", err)
	}
	if resp.Error != expected {
		t.Errorf("Expected error %q, got %q", expected, resp.Error)
	}
}
