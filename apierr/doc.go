// Copyright (c) 2026 FitTrack Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package apierr carries failure kinds across the service boundary.

Services raise errors with BadRequest or NotFound; handlers translate them
to status codes:

	apierr.BadRequest -> 400
	apierr.NotFound   -> 404
	anything else     -> 500 (cause logged, never echoed to the client)

Use IsBadRequest/IsNotFound to classify; both see through error wrapping.
*/
package apierr
