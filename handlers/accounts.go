// Copyright (c) 2026 FitTrack Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"

	"github.com/fittrack/fittrack/middleware"
	"github.com/fittrack/fittrack/models"
	"github.com/fittrack/fittrack/service"
)

type AccountHandler struct {
	accounts *service.AccountService
	workouts *service.WorkoutService
	meals    *service.MealService
}

func NewAccountHandler(accounts *service.AccountService, workouts *service.WorkoutService, meals *service.MealService) *AccountHandler {
	return &AccountHandler{accounts: accounts, workouts: workouts, meals: meals}
}

// List handles GET /accounts
func (h *AccountHandler) List(w http.ResponseWriter, r *http.Request) {
	accounts, err := h.accounts.List()
	if err != nil {
		respondError(w, err)
		return
	}
	middleware.JSONResponse(w, http.StatusOK, accounts)
}

// Get handles GET /accounts/{id}
func (h *AccountHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r.PathValue("id"), InvalidAccountID)
	if err != nil {
		respondError(w, err)
		return
	}

	account, err := h.accounts.Get(id)
	if err != nil {
		respondError(w, err)
		return
	}
	middleware.JSONResponse(w, http.StatusOK, account)
}

// Create handles POST /accounts
func (h *AccountHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.AccountRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, InvalidJSON)
		return
	}

	if err := h.accounts.Create(req); err != nil {
		respondError(w, err)
		return
	}
	middleware.JSONResponse(w, http.StatusCreated, models.MessageResponse{Message: AccountCreated})
}

// Update handles PUT /accounts/{id}
func (h *AccountHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r.PathValue("id"), InvalidAccountID)
	if err != nil {
		respondError(w, err)
		return
	}

	var req models.AccountRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, InvalidJSON)
		return
	}

	if err := h.accounts.Update(id, req); err != nil {
		respondError(w, err)
		return
	}
	middleware.JSONResponse(w, http.StatusOK, models.MessageResponse{Message: AccountUpdated})
}

// Delete handles DELETE /accounts/{id}
func (h *AccountHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r.PathValue("id"), InvalidAccountID)
	if err != nil {
		respondError(w, err)
		return
	}

	if err := h.accounts.Delete(id); err != nil {
		respondError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ListWorkouts handles GET /accounts/{id}/workouts
func (h *AccountHandler) ListWorkouts(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r.PathValue("id"), InvalidAccountID)
	if err != nil {
		respondError(w, err)
		return
	}

	workouts, err := h.workouts.ListByAccount(id)
	if err != nil {
		respondError(w, err)
		return
	}
	middleware.JSONResponse(w, http.StatusOK, workouts)
}

// ListMeals handles GET /accounts/{id}/meals
func (h *AccountHandler) ListMeals(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r.PathValue("id"), InvalidAccountID)
	if err != nil {
		respondError(w, err)
		return
	}

	meals, err := h.meals.ListByAccount(id)
	if err != nil {
		respondError(w, err)
		return
	}
	middleware.JSONResponse(w, http.StatusOK, meals)
}
