// Copyright (c) 2026 FitTrack Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"

	"github.com/fittrack/fittrack/service"
	"github.com/fittrack/fittrack/store"
)

// newTestHandlers wires stores, services, and handlers against a test
// database, mirroring the wiring in router.NewRouter.
func newTestHandlers(conn *sql.DB) (*AccountHandler, *MealHandler, *WorkoutHandler) {
	accountStore := store.NewAccountStore(conn)
	mealStore := store.NewMealStore(conn)
	workoutStore := store.NewWorkoutStore(conn)

	accountService := service.NewAccountService(accountStore)
	mealService := service.NewMealService(mealStore)
	workoutService := service.NewWorkoutService(workoutStore, accountStore)

	return NewAccountHandler(accountService, workoutService, mealService),
		NewMealHandler(mealService),
		NewWorkoutHandler(workoutService)
}
