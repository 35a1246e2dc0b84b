// Copyright (c) 2026 FitTrack Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines the declarative route table for the FitTrack API.

# Endpoints

Accounts:

	GET    /accounts                - list all
	GET    /accounts/{id}           - get one
	GET    /accounts/{id}/workouts  - account's workouts
	GET    /accounts/{id}/meals     - account's meals
	POST   /accounts                - create
	PUT    /accounts/{id}           - full update
	DELETE /accounts/{id}           - delete

Meals:

	GET    /meals             - list all
	GET    /meals/{id}        - get one
	GET    /meals/user/{id}   - meals eaten by an account
	POST   /meals             - create
	PUT    /meals/{id}        - update
	DELETE /meals/{id}        - delete

Workouts:

	GET    /workouts            - list all
	GET    /workouts/{id}       - get one
	GET    /workouts/users/{id} - account's workouts
	POST   /users/{id}/workouts - create for account
	POST   /workouts/users/{id} - accepted alias of the above
	PUT    /workouts/{id}       - update (calories recomputed)
	DELETE /workouts/{id}       - delete

# Dispatch Rules

The route table encodes the path grammar's tie-breaks explicitly:

  - a trailing slash on a resource root ({$} patterns) is the root itself
  - {id} segments are parsed by the handlers; a non-integer or negative
    value is a 400 format error, distinct from a 404 lookup miss
  - PUT/DELETE on a resource root answer 400 "... ID is required"
  - every other path shape under a resource falls through to a wildcard
    pattern answering 400 "Invalid request format" (workout creation paths
    name the two accepted spellings)

# Wiring

NewRouter constructs the store gateways, domain services, and handlers once;
all of them are immutable after construction and shared across requests.
*/
package router
