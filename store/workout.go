// Copyright (c) 2026 FitTrack Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"database/sql"
	"fmt"

	"github.com/fittrack/fittrack/models"
)

type WorkoutStore struct {
	db *sql.DB
}

func NewWorkoutStore(db *sql.DB) *WorkoutStore {
	return &WorkoutStore{db: db}
}

// Create inserts the workout and fills in its store-assigned ID.
func (s *WorkoutStore) Create(w *models.Workout) error {
	err := s.db.QueryRow(`
		INSERT INTO workouts (type, duration, calories_burned, account_id)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`, w.Type, w.Duration, w.CaloriesBurned, w.AccountID).Scan(&w.ID)
	if err != nil {
		return fmt.Errorf("failed to insert workout: %w", err)
	}
	return nil
}

// GetByID returns the workout, or (nil, nil) when no row matches.
func (s *WorkoutStore) GetByID(id int) (*models.Workout, error) {
	var w models.Workout
	err := s.db.QueryRow(`
		SELECT id, type, duration, calories_burned, account_id
		FROM workouts
		WHERE id = $1
	`, id).Scan(&w.ID, &w.Type, &w.Duration, &w.CaloriesBurned, &w.AccountID)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query workout: %w", err)
	}
	return &w, nil
}

func (s *WorkoutStore) List() ([]models.Workout, error) {
	rows, err := s.db.Query(`
		SELECT id, type, duration, calories_burned, account_id
		FROM workouts
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query workouts: %w", err)
	}
	defer rows.Close()

	return scanWorkouts(rows)
}

// ListByAccount returns an account's workouts. An account with none yields
// an empty slice.
func (s *WorkoutStore) ListByAccount(accountID int) ([]models.Workout, error) {
	rows, err := s.db.Query(`
		SELECT id, type, duration, calories_burned, account_id
		FROM workouts
		WHERE account_id = $1
	`, accountID)
	if err != nil {
		return nil, fmt.Errorf("failed to query workouts by account: %w", err)
	}
	defer rows.Close()

	return scanWorkouts(rows)
}

func (s *WorkoutStore) Update(w *models.Workout) error {
	_, err := s.db.Exec(`
		UPDATE workouts
		SET type = $1, duration = $2, calories_burned = $3
		WHERE id = $4
	`, w.Type, w.Duration, w.CaloriesBurned, w.ID)
	if err != nil {
		return fmt.Errorf("failed to update workout: %w", err)
	}
	return nil
}

func (s *WorkoutStore) Delete(id int) error {
	_, err := s.db.Exec(`DELETE FROM workouts WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete workout: %w", err)
	}
	return nil
}

func scanWorkouts(rows *sql.Rows) ([]models.Workout, error) {
	workouts := []models.Workout{}
	for rows.Next() {
		var w models.Workout
		if err := rows.Scan(&w.ID, &w.Type, &w.Duration, &w.CaloriesBurned, &w.AccountID); err != nil {
			return nil, fmt.Errorf("failed to scan workout: %w", err)
		}
		workouts = append(workouts, w)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read workouts: %w", err)
	}
	return workouts, nil
}
