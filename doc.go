// Copyright (c) 2026 FitTrack Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the FitTrack API server.

FitTrack is a small REST service tracking accounts, their workouts, and the
meals they eat, backed by PostgreSQL or SQLite. Workout calories burned are
always computed server-side from activity type and duration.

# Starting the Server

The server reads environment variables (optionally via a .env file) or CLI
flags:

	DATABASE_URL=postgres://... go run main.go

Or with flags:

	go run main.go -p 8080 -d "postgres://..." -t postgres

# Configuration

Required settings:

  - DATABASE_URL (-d): database connection string

Optional settings:

  - DATABASE_TYPE (-t): "postgres" (default) or "sqlite"
  - PORT (-p): server port (default: 8080)

# Architecture

The server uses constructor-injected layers, wired once at startup:

  - handlers: HTTP request handlers (accounts, meals, workouts)
  - router: route definitions using Go 1.22+ routing
  - service: domain rules (validation, calorie computation, existence checks)
  - store: CRUD gateways to the relational store
  - validate: per-resource input validators
  - apierr: failure kinds mapped to status codes
  - middleware: logging and JSON helpers
  - models: domain and wire types
  - db: schema creation
  - cliparse: configuration parsing

See package documentation for each component.
*/
package main
