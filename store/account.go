// Copyright (c) 2026 FitTrack Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"database/sql"
	"fmt"

	"github.com/fittrack/fittrack/models"
)

type AccountStore struct {
	db *sql.DB
}

func NewAccountStore(db *sql.DB) *AccountStore {
	return &AccountStore{db: db}
}

// Create inserts the account and fills in its store-assigned ID.
func (s *AccountStore) Create(a *models.Account) error {
	err := s.db.QueryRow(`
		INSERT INTO accounts (name, age, weight, height)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`, a.Name, a.Age, a.Weight, a.Height).Scan(&a.ID)
	if err != nil {
		return fmt.Errorf("failed to insert account: %w", err)
	}
	return nil
}

// GetByID returns the account, or (nil, nil) when no row matches.
func (s *AccountStore) GetByID(id int) (*models.Account, error) {
	var a models.Account
	err := s.db.QueryRow(`
		SELECT id, name, age, weight, height
		FROM accounts
		WHERE id = $1
	`, id).Scan(&a.ID, &a.Name, &a.Age, &a.Weight, &a.Height)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query account: %w", err)
	}
	return &a, nil
}

func (s *AccountStore) List() ([]models.Account, error) {
	rows, err := s.db.Query(`
		SELECT id, name, age, weight, height
		FROM accounts
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query accounts: %w", err)
	}
	defer rows.Close()

	accounts := []models.Account{}
	for rows.Next() {
		var a models.Account
		if err := rows.Scan(&a.ID, &a.Name, &a.Age, &a.Weight, &a.Height); err != nil {
			return nil, fmt.Errorf("failed to scan account: %w", err)
		}
		accounts = append(accounts, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read accounts: %w", err)
	}
	return accounts, nil
}

func (s *AccountStore) Update(a *models.Account) error {
	_, err := s.db.Exec(`
		UPDATE accounts
		SET name = $1, age = $2, weight = $3, height = $4
		WHERE id = $5
	`, a.Name, a.Age, a.Weight, a.Height, a.ID)
	if err != nil {
		return fmt.Errorf("failed to update account: %w", err)
	}
	return nil
}

func (s *AccountStore) Delete(id int) error {
	_, err := s.db.Exec(`DELETE FROM accounts WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete account: %w", err)
	}
	return nil
}

// Exists reports whether an account row with the given ID is present.
func (s *AccountStore) Exists(id int) (bool, error) {
	var one int
	err := s.db.QueryRow(`SELECT 1 FROM accounts WHERE id = $1`, id).Scan(&one)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to check account existence: %w", err)
	}
	return true, nil
}
