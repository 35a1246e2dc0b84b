// Copyright (c) 2026 FitTrack Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

// Domain types

type Account struct {
	ID     int     `json:"id"`
	Name   string  `json:"name"`
	Age    int     `json:"age"`
	Weight float64 `json:"weight"`
	Height float64 `json:"height"`
}

type Meal struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Calories int    `json:"calories"`
}

type Workout struct {
	ID             int    `json:"id"`
	Type           string `json:"type"`
	Duration       int    `json:"duration"` // minutes
	CaloriesBurned int    `json:"calories_burned"`
	AccountID      int    `json:"account_id"`
}

// Request types
//
// Identifiers are never accepted from clients; the store assigns them.
// A workout's calories_burned is accepted on the wire but always recomputed
// server-side, so it carries no field here.

type AccountRequest struct {
	Name   string  `json:"name"`
	Age    int     `json:"age"`
	Weight float64 `json:"weight"`
	Height float64 `json:"height"`
}

type MealRequest struct {
	Name     string `json:"name"`
	Calories int    `json:"calories"`
}

type WorkoutRequest struct {
	Type     string `json:"type"`
	Duration int    `json:"duration"`
}

// Response types

type MessageResponse struct {
	Message string `json:"message"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
