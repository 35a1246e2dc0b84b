// Copyright (c) 2026 FitTrack Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"

	"github.com/fittrack/fittrack/middleware"
	"github.com/fittrack/fittrack/models"
	"github.com/fittrack/fittrack/service"
)

type MealHandler struct {
	meals *service.MealService
}

func NewMealHandler(meals *service.MealService) *MealHandler {
	return &MealHandler{meals: meals}
}

// List handles GET /meals
func (h *MealHandler) List(w http.ResponseWriter, r *http.Request) {
	meals, err := h.meals.List()
	if err != nil {
		respondError(w, err)
		return
	}
	middleware.JSONResponse(w, http.StatusOK, meals)
}

// Get handles GET /meals/{id}
func (h *MealHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r.PathValue("id"), InvalidMealID)
	if err != nil {
		respondError(w, err)
		return
	}

	meal, err := h.meals.Get(id)
	if err != nil {
		respondError(w, err)
		return
	}
	middleware.JSONResponse(w, http.StatusOK, meal)
}

// ListByAccount handles GET /meals/user/{id}
func (h *MealHandler) ListByAccount(w http.ResponseWriter, r *http.Request) {
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

// Create handles POST /meals
func (h *MealHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.MealRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, InvalidJSON)
		return
	}

	if err := h.meals.Create(req); err != nil {
		respondError(w, err)
		return
	}
	middleware.JSONResponse(w, http.StatusCreated, models.MessageResponse{Message: MealCreated})
}

// Update handles PUT /meals/{id}
func (h *MealHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r.PathValue("id"), InvalidMealID)
	if err != nil {
		respondError(w, err)
		return
	}

	var req models.MealRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, InvalidJSON)
		return
	}

	if err := h.meals.Update(id, req); err != nil {
		respondError(w, err)
		return
	}
	middleware.JSONResponse(w, http.StatusOK, models.MessageResponse{Message: MealUpdated})
}

// Delete handles DELETE /meals/{id}
func (h *MealHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r.PathValue("id"), InvalidMealID)
	if err != nil {
		respondError(w, err)
		return
	}

	if err := h.meals.Delete(id); err != nil {
		respondError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
