// Copyright (c) 2026 FitTrack Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"fmt"
)

// CreateSchema creates all tables needed for the application.
// Safe to call multiple times - uses IF NOT EXISTS.
func CreateSchema(db *sql.DB, dbType string) error {
	schema := schemaPostgres
	if dbType == "sqlite" {
		schema = schemaSQLite
	}

	_, err := db.Exec(schema)
	if err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

const schemaPostgres = `
-- Accounts
CREATE TABLE IF NOT EXISTS accounts (
    id SERIAL PRIMARY KEY,
    name TEXT NOT NULL,
    age INTEGER NOT NULL,
    weight DOUBLE PRECISION NOT NULL,
    height DOUBLE PRECISION NOT NULL
);

-- Meals
CREATE TABLE IF NOT EXISTS meals (
    id SERIAL PRIMARY KEY,
    name TEXT NOT NULL,
    calories INTEGER NOT NULL
);

-- Workouts
CREATE TABLE IF NOT EXISTS workouts (
    id SERIAL PRIMARY KEY,
    type TEXT NOT NULL,
    duration INTEGER NOT NULL,
    calories_burned INTEGER NOT NULL,
    account_id INTEGER NOT NULL REFERENCES accounts(id) ON DELETE CASCADE
);

CREATE INDEX IF NOT EXISTS idx_workouts_account_id ON workouts(account_id);

-- Accounts <-> Meals join relation (read-only from the API)
CREATE TABLE IF NOT EXISTS account_meals (
    account_id INTEGER NOT NULL REFERENCES accounts(id) ON DELETE CASCADE,
    meal_id INTEGER NOT NULL REFERENCES meals(id) ON DELETE CASCADE,
    PRIMARY KEY (account_id, meal_id)
);

CREATE INDEX IF NOT EXISTS idx_account_meals_meal_id ON account_meals(meal_id);
`

const schemaSQLite = `
CREATE TABLE IF NOT EXISTS accounts (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    name TEXT NOT NULL,
    age INTEGER NOT NULL,
    weight REAL NOT NULL,
    height REAL NOT NULL
);

CREATE TABLE IF NOT EXISTS meals (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    name TEXT NOT NULL,
    calories INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS workouts (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    type TEXT NOT NULL,
    duration INTEGER NOT NULL,
    calories_burned INTEGER NOT NULL,
    account_id INTEGER NOT NULL REFERENCES accounts(id) ON DELETE CASCADE
);

CREATE INDEX IF NOT EXISTS idx_workouts_account_id ON workouts(account_id);

CREATE TABLE IF NOT EXISTS account_meals (
    account_id INTEGER NOT NULL REFERENCES accounts(id) ON DELETE CASCADE,
    meal_id INTEGER NOT NULL REFERENCES meals(id) ON DELETE CASCADE,
    PRIMARY KEY (account_id, meal_id)
);

CREATE INDEX IF NOT EXISTS idx_account_meals_meal_id ON account_meals(meal_id);
`
