// Copyright (c) 2026 FitTrack Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines the domain and wire types for the FitTrack API.

# Type Categories

Domain types (Account, Meal, Workout) mirror the database rows and are
returned to clients as-is.

Request types (AccountRequest, MealRequest, WorkoutRequest) are the
client-writable subset of each entity: no identifiers, no server-computed
fields. PUT requests use the same shapes as POST.

Response envelopes:

	MessageResponse - {"message": "..."} for successful writes
	ErrorResponse   - {"error": "..."} for all failures
*/
package models
