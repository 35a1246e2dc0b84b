// Copyright (c) 2026 FitTrack Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package testutil provides shared helpers for handler and router tests.

SetupTestDB opens a private in-memory SQLite database per test and applies
the real schema, so the suite needs no external services. Row factories
(CreateTestAccount and friends) insert fixtures directly; MakeRequest and
the Assert helpers wrap httptest plumbing.
*/
package testutil
