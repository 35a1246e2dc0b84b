// Copyright (c) 2026 FitTrack Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package service orchestrates validation, business rules, and persistence
for each resource.

One service per resource, constructed once at startup with its store
gateways injected; services hold no per-request state and are safe for
concurrent use.

Rules enforced here rather than in handlers or stores:

  - validation runs before any persistence call
  - workout calories are recomputed from (type, duration) on every create
    and update, overriding anything a client sent
  - workout creation requires the owning account to exist
  - deletes and updates of absent identifiers fail with not-found
  - sub-resource listings do not validate the parent account; an unknown
    account yields an empty list
*/
package service
