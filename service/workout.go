// Copyright (c) 2026 FitTrack Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package service

import (
	"fmt"
	"strings"

	"github.com/fittrack/fittrack/apierr"
	"github.com/fittrack/fittrack/models"
	"github.com/fittrack/fittrack/store"
	"github.com/fittrack/fittrack/validate"
)

type WorkoutService struct {
	workouts *store.WorkoutStore
	accounts *store.AccountStore
}

func NewWorkoutService(workouts *store.WorkoutStore, accounts *store.AccountStore) *WorkoutService {
	return &WorkoutService{workouts: workouts, accounts: accounts}
}

// CreateForAccount persists a new workout owned by the given account.
// The owning account must exist; calories burned are always computed
// server-side from type and duration.
func (s *WorkoutService) CreateForAccount(req models.WorkoutRequest, accountID int) error {
	exists, err := s.accounts.Exists(accountID)
	if err != nil {
		return err
	}
	if !exists {
		return apierr.NotFound(fmt.Sprintf("Account with ID %d does not exist.", accountID))
	}
	if err := validate.Workout(req); err != nil {
		return err
	}

	workout := models.Workout{
		Type:           req.Type,
		Duration:       req.Duration,
		CaloriesBurned: ComputeCalories(req.Type, req.Duration),
		AccountID:      accountID,
	}
	return s.workouts.Create(&workout)
}

// Get returns the workout or a not-found failure.
func (s *WorkoutService) Get(id int) (*models.Workout, error) {
	workout, err := s.workouts.GetByID(id)
	if err != nil {
		return nil, err
	}
	if workout == nil {
		return nil, apierr.NotFound("Workout not found")
	}
	return workout, nil
}

func (s *WorkoutService) List() ([]models.Workout, error) {
	return s.workouts.List()
}

// ListByAccount returns an account's workouts. It does not check that the
// account exists; only the creation path does.
func (s *WorkoutService) ListByAccount(accountID int) ([]models.Workout, error) {
	return s.workouts.ListByAccount(accountID)
}

// Update replaces type and duration of an existing workout and recomputes
// calories burned. The owning account is immutable.
func (s *WorkoutService) Update(id int, req models.WorkoutRequest) error {
	if err := validate.Workout(req); err != nil {
		return err
	}
	existing, err := s.workouts.GetByID(id)
	if err != nil {
		return err
	}
	if existing == nil {
		return apierr.NotFound("Workout not found")
	}

	existing.Type = req.Type
	existing.Duration = req.Duration
	existing.CaloriesBurned = ComputeCalories(req.Type, req.Duration)
	return s.workouts.Update(existing)
}

// Delete confirms existence first; deleting an absent workout is a
// not-found failure.
func (s *WorkoutService) Delete(id int) error {
	existing, err := s.workouts.GetByID(id)
	if err != nil {
		return err
	}
	if existing == nil {
		return apierr.NotFound("Workout not found")
	}
	return s.workouts.Delete(id)
}

// Per-minute burn rates by activity type.
const (
	rateRunning  = 12
	rateCycling  = 7
	rateSwimming = 8
	rateYoga     = 4
	rateDefault  = 5
)

// ComputeCalories is a pure function of activity type (case-insensitive)
// and duration in minutes. Unknown activities burn at the default rate.
func ComputeCalories(workoutType string, duration int) int {
	switch strings.ToLower(workoutType) {
	case "running":
		return duration * rateRunning
	case "cycling":
		return duration * rateCycling
	case "swimming":
		return duration * rateSwimming
	case "yoga":
		return duration * rateYoga
	default:
		return duration * rateDefault
	}
}
