// Copyright (c) 2026 FitTrack Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"

	"github.com/fittrack/fittrack/middleware"
	"github.com/fittrack/fittrack/models"
	"github.com/fittrack/fittrack/service"
)

type WorkoutHandler struct {
	workouts *service.WorkoutService
}

func NewWorkoutHandler(workouts *service.WorkoutService) *WorkoutHandler {
	return &WorkoutHandler{workouts: workouts}
}

// List handles GET /workouts
func (h *WorkoutHandler) List(w http.ResponseWriter, r *http.Request) {
	workouts, err := h.workouts.List()
	if err != nil {
		respondError(w, err)
		return
	}
	middleware.JSONResponse(w, http.StatusOK, workouts)
}

// Get handles GET /workouts/{id}
func (h *WorkoutHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r.PathValue("id"), InvalidWorkoutID)
	if err != nil {
		respondError(w, err)
		return
	}

	workout, err := h.workouts.Get(id)
	if err != nil {
		respondError(w, err)
		return
	}
	middleware.JSONResponse(w, http.StatusOK, workout)
}

// ListByAccount handles GET /workouts/users/{id}
func (h *WorkoutHandler) ListByAccount(w http.ResponseWriter, r *http.Request) {
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

// Create handles POST /users/{id}/workouts and its accepted alias
// POST /workouts/users/{id}. The owning account comes from the path.
func (h *WorkoutHandler) Create(w http.ResponseWriter, r *http.Request) {
	accountID, err := parseID(r.PathValue("id"), InvalidAccountID)
	if err != nil {
		respondError(w, err)
		return
	}

	var req models.WorkoutRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, InvalidJSON)
		return
	}

	if err := h.workouts.CreateForAccount(req, accountID); err != nil {
		respondError(w, err)
		return
	}
	middleware.JSONResponse(w, http.StatusCreated, models.MessageResponse{Message: WorkoutCreated})
}

// Update handles PUT /workouts/{id}
func (h *WorkoutHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r.PathValue("id"), InvalidWorkoutID)
	if err != nil {
		respondError(w, err)
		return
	}

	var req models.WorkoutRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, InvalidJSON)
		return
	}

	if err := h.workouts.Update(id, req); err != nil {
		respondError(w, err)
		return
	}
	middleware.JSONResponse(w, http.StatusOK, models.MessageResponse{Message: WorkoutUpdated})
}

// Delete handles DELETE /workouts/{id}. Unlike accounts and meals, workout
// deletion answers 200 with a message body.
func (h *WorkoutHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r.PathValue("id"), InvalidWorkoutID)
	if err != nil {
		respondError(w, err)
		return
	}

	if err := h.workouts.Delete(id); err != nil {
		respondError(w, err)
		return
	}
	middleware.JSONResponse(w, http.StatusOK, models.MessageResponse{Message: WorkoutDeleted})
}
