// Copyright (c) 2026 FitTrack Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package store is the synchronous CRUD boundary to the relational store.

One gateway per entity (AccountStore, MealStore, WorkoutStore), each holding
a *sql.DB injected at construction. Identifiers are assigned here via
INSERT ... RETURNING; lookups return (nil, nil) for absent rows so callers
can distinguish absence from store failure. Errors are returned wrapped and
mapped to 500 by the HTTP layer; no retries.

The SQL works unchanged on both supported drivers: $N placeholders appear
in strictly ascending order, which SQLite binds positionally just like
PostgreSQL.
*/
package store
