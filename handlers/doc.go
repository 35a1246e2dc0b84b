// Copyright (c) 2026 FitTrack Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers implements the HTTP request handlers for accounts, meals,
and workouts.

Handlers are thin: they parse path identifiers, decode JSON bodies, call
the domain services, and translate failures through respondError. Identifier
parsing distinguishes format errors (400 "Invalid ... ID format") from
missing records (404), which the services signal via apierr.

Status code conventions:

	200 - reads and updates (message body for writes)
	201 - creates (message body)
	204 - account and meal deletes (no body)
	200 - workout deletes (message body)
	400 - format and validation errors
	404 - not found
	500 - everything else (cause logged, generic body)
*/
package handlers
