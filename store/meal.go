// Copyright (c) 2026 FitTrack Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"database/sql"
	"fmt"

	"github.com/fittrack/fittrack/models"
)

type MealStore struct {
	db *sql.DB
}

func NewMealStore(db *sql.DB) *MealStore {
	return &MealStore{db: db}
}

// Create inserts the meal and fills in its store-assigned ID.
func (s *MealStore) Create(m *models.Meal) error {
	err := s.db.QueryRow(`
		INSERT INTO meals (name, calories)
		VALUES ($1, $2)
		RETURNING id
	`, m.Name, m.Calories).Scan(&m.ID)
	if err != nil {
		return fmt.Errorf("failed to insert meal: %w", err)
	}
	return nil
}

// GetByID returns the meal, or (nil, nil) when no row matches.
func (s *MealStore) GetByID(id int) (*models.Meal, error) {
	var m models.Meal
	err := s.db.QueryRow(`
		SELECT id, name, calories
		FROM meals
		WHERE id = $1
	`, id).Scan(&m.ID, &m.Name, &m.Calories)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query meal: %w", err)
	}
	return &m, nil
}

func (s *MealStore) List() ([]models.Meal, error) {
	rows, err := s.db.Query(`
		SELECT id, name, calories
		FROM meals
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query meals: %w", err)
	}
	defer rows.Close()

	return scanMeals(rows)
}

// ListByAccount returns the meals associated with an account through the
// account_meals join relation. An account with none yields an empty slice.
func (s *MealStore) ListByAccount(accountID int) ([]models.Meal, error) {
	rows, err := s.db.Query(`
		SELECT m.id, m.name, m.calories
		FROM meals m
		JOIN account_meals am ON m.id = am.meal_id
		WHERE am.account_id = $1
	`, accountID)
	if err != nil {
		return nil, fmt.Errorf("failed to query meals by account: %w", err)
	}
	defer rows.Close()

	return scanMeals(rows)
}

func (s *MealStore) Update(m *models.Meal) error {
	_, err := s.db.Exec(`
		UPDATE meals
		SET name = $1, calories = $2
		WHERE id = $3
	`, m.Name, m.Calories, m.ID)
	if err != nil {
		return fmt.Errorf("failed to update meal: %w", err)
	}
	return nil
}

func (s *MealStore) Delete(id int) error {
	_, err := s.db.Exec(`DELETE FROM meals WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete meal: %w", err)
	}
	return nil
}

func scanMeals(rows *sql.Rows) ([]models.Meal, error) {
	meals := []models.Meal{}
	for rows.Next() {
		var m models.Meal
		if err := rows.Scan(&m.ID, &m.Name, &m.Calories); err != nil {
			return nil, fmt.Errorf("failed to scan meal: %w", err)
		}
		meals = append(meals, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read meals: %w", err)
	}
	return meals, nil
}
