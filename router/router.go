// Copyright (c) 2026 FitTrack Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"database/sql"
	"net/http"

	"github.com/fittrack/fittrack/handlers"
	"github.com/fittrack/fittrack/middleware"
	"github.com/fittrack/fittrack/service"
	"github.com/fittrack/fittrack/store"
)

// NewRouter builds the route table. Patterns encode the dispatch rules:
// a resource root with and without the trailing slash is list-all, single
// segments are identifiers, known second-level keywords are sub-resource
// listings, and per-method wildcard fallbacks turn every other path shape
// into a 400 format error before any lookup can 404.
func NewRouter(db *sql.DB) *http.ServeMux {
	accountStore := store.NewAccountStore(db)
	mealStore := store.NewMealStore(db)
	workoutStore := store.NewWorkoutStore(db)

	accountService := service.NewAccountService(accountStore)
	mealService := service.NewMealService(mealStore)
	workoutService := service.NewWorkoutService(workoutStore, accountStore)

	accountHandler := handlers.NewAccountHandler(accountService, workoutService, mealService)
	mealHandler := handlers.NewMealHandler(mealService)
	workoutHandler := handlers.NewWorkoutHandler(workoutService)

	logged := middleware.WithLogging

	mux := http.NewServeMux()

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Accounts
	mux.HandleFunc("GET /accounts", logged(accountHandler.List))
	mux.HandleFunc("GET /accounts/{$}", logged(accountHandler.List))
	mux.HandleFunc("GET /accounts/{id}", logged(accountHandler.Get))
	mux.HandleFunc("GET /accounts/{id}/workouts", logged(accountHandler.ListWorkouts))
	mux.HandleFunc("GET /accounts/{id}/meals", logged(accountHandler.ListMeals))
	mux.HandleFunc("POST /accounts", logged(accountHandler.Create))
	mux.HandleFunc("POST /accounts/{$}", logged(accountHandler.Create))
	mux.HandleFunc("PUT /accounts/{id}", logged(accountHandler.Update))
	mux.HandleFunc("DELETE /accounts/{id}", logged(accountHandler.Delete))

	mux.HandleFunc("PUT /accounts", logged(badRequest(handlers.AccountIDRequired)))
	mux.HandleFunc("PUT /accounts/{$}", logged(badRequest(handlers.AccountIDRequired)))
	mux.HandleFunc("DELETE /accounts", logged(badRequest(handlers.AccountIDRequired)))
	mux.HandleFunc("DELETE /accounts/{$}", logged(badRequest(handlers.AccountIDRequired)))

	mux.HandleFunc("GET /accounts/{rest...}", logged(badRequest(handlers.InvalidRequest)))
	mux.HandleFunc("POST /accounts/{rest...}", logged(badRequest(handlers.InvalidRequest)))
	mux.HandleFunc("PUT /accounts/{rest...}", logged(badRequest(handlers.InvalidRequest)))
	mux.HandleFunc("DELETE /accounts/{rest...}", logged(badRequest(handlers.InvalidRequest)))

	// Meals
	mux.HandleFunc("GET /meals", logged(mealHandler.List))
	mux.HandleFunc("GET /meals/{$}", logged(mealHandler.List))
	mux.HandleFunc("GET /meals/{id}", logged(mealHandler.Get))
	mux.HandleFunc("GET /meals/user/{id}", logged(mealHandler.ListByAccount))
	mux.HandleFunc("POST /meals", logged(mealHandler.Create))
	mux.HandleFunc("POST /meals/{$}", logged(mealHandler.Create))
	mux.HandleFunc("PUT /meals/{id}", logged(mealHandler.Update))
	mux.HandleFunc("DELETE /meals/{id}", logged(mealHandler.Delete))

	mux.HandleFunc("PUT /meals", logged(badRequest(handlers.MealIDRequired)))
	mux.HandleFunc("PUT /meals/{$}", logged(badRequest(handlers.MealIDRequired)))
	mux.HandleFunc("DELETE /meals", logged(badRequest(handlers.MealIDRequired)))
	mux.HandleFunc("DELETE /meals/{$}", logged(badRequest(handlers.MealIDRequired)))

	mux.HandleFunc("GET /meals/{rest...}", logged(badRequest(handlers.InvalidRequest)))
	mux.HandleFunc("POST /meals/{rest...}", logged(badRequest(handlers.InvalidRequest)))
	mux.HandleFunc("PUT /meals/{rest...}", logged(badRequest(handlers.InvalidRequest)))
	mux.HandleFunc("DELETE /meals/{rest...}", logged(badRequest(handlers.InvalidRequest)))

	// Workouts. Creation takes the owning account from the path and accepts
	// two spellings of it.
	mux.HandleFunc("GET /workouts", logged(workoutHandler.List))
	mux.HandleFunc("GET /workouts/{$}", logged(workoutHandler.List))
	mux.HandleFunc("GET /workouts/{id}", logged(workoutHandler.Get))
	mux.HandleFunc("GET /workouts/users/{id}", logged(workoutHandler.ListByAccount))
	mux.HandleFunc("POST /users/{id}/workouts", logged(workoutHandler.Create))
	mux.HandleFunc("POST /workouts/users/{id}", logged(workoutHandler.Create))
	mux.HandleFunc("PUT /workouts/{id}", logged(workoutHandler.Update))
	mux.HandleFunc("DELETE /workouts/{id}", logged(workoutHandler.Delete))

	mux.HandleFunc("PUT /workouts", logged(badRequest(handlers.WorkoutIDRequired)))
	mux.HandleFunc("PUT /workouts/{$}", logged(badRequest(handlers.WorkoutIDRequired)))
	mux.HandleFunc("DELETE /workouts", logged(badRequest(handlers.WorkoutIDRequired)))
	mux.HandleFunc("DELETE /workouts/{$}", logged(badRequest(handlers.WorkoutIDRequired)))

	mux.HandleFunc("POST /workouts", logged(badRequest(handlers.InvalidWorkoutCreatePath)))
	mux.HandleFunc("POST /workouts/{$}", logged(badRequest(handlers.InvalidWorkoutCreatePath)))
	mux.HandleFunc("POST /workouts/{rest...}", logged(badRequest(handlers.InvalidWorkoutCreatePath)))

	mux.HandleFunc("GET /workouts/{rest...}", logged(badRequest(handlers.InvalidRequest)))
	mux.HandleFunc("PUT /workouts/{rest...}", logged(badRequest(handlers.InvalidRequest)))
	mux.HandleFunc("DELETE /workouts/{rest...}", logged(badRequest(handlers.InvalidRequest)))

	// Root endpoint
	mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("fittrack API v1"))
	})

	return mux
}

func badRequest(msg string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		middleware.ErrorResponse(w, http.StatusBadRequest, msg)
	}
}
