// Copyright (c) 2026 FitTrack Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package validate

import (
	"regexp"
	"strings"

	"github.com/fittrack/fittrack/apierr"
	"github.com/fittrack/fittrack/models"
)

// Latin or Cyrillic letters, whitespace, and hyphens. Digits and other
// punctuation are rejected.
var namePattern = regexp.MustCompile(`^[A-Za-zА-Яа-яЁё\s-]+$`)

// Account checks an account request field by field, stopping at the first
// failure.
func Account(req models.AccountRequest) error {
	if strings.TrimSpace(req.Name) == "" {
		return apierr.BadRequest("Account name cannot be empty.")
	}
	if !namePattern.MatchString(req.Name) {
		return apierr.BadRequest("Account name must contain only letters and spaces.")
	}
	if req.Age <= 0 {
		return apierr.BadRequest("Age must be a positive number.")
	}
	if req.Height <= 0 {
		return apierr.BadRequest("Height must be a positive number.")
	}
	if req.Weight <= 0 {
		return apierr.BadRequest("Weight must be a positive number.")
	}
	return nil
}

// Workout checks a workout request, stopping at the first failure.
func Workout(req models.WorkoutRequest) error {
	if strings.TrimSpace(req.Type) == "" {
		return apierr.BadRequest("Workout type cannot be empty.")
	}
	if !namePattern.MatchString(req.Type) {
		return apierr.BadRequest("Workout type must contain only letters and spaces.")
	}
	if req.Duration <= 0 {
		return apierr.BadRequest("Duration must be a positive number.")
	}
	return nil
}

// Meal checks a meal request, stopping at the first failure.
func Meal(req models.MealRequest) error {
	if strings.TrimSpace(req.Name) == "" {
		return apierr.BadRequest("Meal name cannot be empty.")
	}
	if !namePattern.MatchString(req.Name) {
		return apierr.BadRequest("Meal name must contain only letters and spaces.")
	}
	if req.Calories <= 0 {
		return apierr.BadRequest("Calories must be a positive number.")
	}
	return nil
}
