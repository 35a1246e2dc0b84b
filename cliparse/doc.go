// Copyright (c) 2026 FitTrack Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse builds the server configuration from CLI flags and
environment variables.

Precedence is flags, then environment (including a .env file loaded via
godotenv), then defaults. The resulting Config is an explicit value passed
into constructors; there is no process-wide mutable configuration state.

Settings:

  - DATABASE_URL (-d): connection string, required
  - DATABASE_TYPE (-t): "postgres" (default) or "sqlite"
  - PORT (-p): server port (default: 8080)
*/
package cliparse
