// Copyright (c) 2026 FitTrack Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/fittrack/fittrack/apierr"
	"github.com/fittrack/fittrack/middleware"
)

// Success messages
const (
	AccountCreated = "Account created successfully"
	AccountUpdated = "Account updated successfully"
	MealCreated    = "Meal created successfully"
	MealUpdated    = "Meal updated successfully"
	WorkoutCreated = "Workout created successfully"
	WorkoutUpdated = "Workout updated successfully"
	WorkoutDeleted = "Workout deleted successfully"
)

// Error messages
const (
	InvalidAccountID = "Invalid account ID format"
	InvalidMealID    = "Invalid meal ID format"
	InvalidWorkoutID = "Invalid workout ID format"

	AccountIDRequired = "Account ID is required"
	MealIDRequired    = "Meal ID is required"
	WorkoutIDRequired = "Workout ID is required"

	InvalidRequest           = "Invalid request format"
	InvalidWorkoutCreatePath = "Invalid request format. Use /users/{id}/workouts or /workouts/users/{id}"
	InvalidJSON              = "Invalid JSON"
	InternalServerErrMessage = "Internal server error"
)

// parseID parses a path segment as a non-negative integer identifier.
// Failures are format errors, distinct from not-found.
func parseID(raw, invalidMsg string) (int, error) {
	id, err := strconv.Atoi(raw)
	if err != nil || id < 0 {
		return 0, apierr.BadRequest(invalidMsg)
	}
	return id, nil
}

// respondError translates a service failure into a status code and body.
// Unclassified failures are logged server-side and never echoed.
func respondError(w http.ResponseWriter, err error) {
	switch {
	case apierr.IsBadRequest(err):
		middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
	case apierr.IsNotFound(err):
		middleware.ErrorResponse(w, http.StatusNotFound, err.Error())
	default:
		slog.Error("request failed", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, InternalServerErrMessage)
	}
}
