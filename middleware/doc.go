// Copyright (c) 2026 FitTrack Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides request logging and JSON helpers shared by all
handlers.

WithLogging logs request start/completion through slog with a per-request
UUID. JSONResponse/ErrorResponse write the fixed response envelopes;
ParseJSONBody decodes request bodies. CORS is handled by rs/cors at the
server level, not here.
*/
package middleware
