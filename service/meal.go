// Copyright (c) 2026 FitTrack Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package service

import (
	"github.com/fittrack/fittrack/apierr"
	"github.com/fittrack/fittrack/models"
	"github.com/fittrack/fittrack/store"
	"github.com/fittrack/fittrack/validate"
)

type MealService struct {
	meals *store.MealStore
}

func NewMealService(meals *store.MealStore) *MealService {
	return &MealService{meals: meals}
}

// Create validates the request and persists a new meal.
func (s *MealService) Create(req models.MealRequest) error {
	if err := validate.Meal(req); err != nil {
		return err
	}
	meal := models.Meal{
		Name:     req.Name,
		Calories: req.Calories,
	}
	return s.meals.Create(&meal)
}

// Get returns the meal or a not-found failure.
func (s *MealService) Get(id int) (*models.Meal, error) {
	meal, err := s.meals.GetByID(id)
	if err != nil {
		return nil, err
	}
	if meal == nil {
		return nil, apierr.NotFound("Meal not found")
	}
	return meal, nil
}

func (s *MealService) List() ([]models.Meal, error) {
	return s.meals.List()
}

// ListByAccount returns the meals an account has eaten. It does not check
// that the account exists; an unknown account simply has no meals.
func (s *MealService) ListByAccount(accountID int) ([]models.Meal, error) {
	return s.meals.ListByAccount(accountID)
}

// Update replaces the mutable fields of an existing meal.
func (s *MealService) Update(id int, req models.MealRequest) error {
	if err := validate.Meal(req); err != nil {
		return err
	}
	existing, err := s.meals.GetByID(id)
	if err != nil {
		return err
	}
	if existing == nil {
		return apierr.NotFound("Meal not found")
	}

	existing.Name = req.Name
	existing.Calories = req.Calories
	return s.meals.Update(existing)
}

// Delete confirms existence first; deleting an absent meal is a not-found
// failure.
func (s *MealService) Delete(id int) error {
	existing, err := s.meals.GetByID(id)
	if err != nil {
		return err
	}
	if existing == nil {
		return apierr.NotFound("Meal not found")
	}
	return s.meals.Delete(id)
}
