// Copyright (c) 2026 FitTrack Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package validate rejects structurally invalid input before any persistence
or business-rule computation runs.

Per field the validators check presence (non-blank after trimming), pattern
(letters, whitespace, hyphen), and positivity for numeric fields.
Validation short-circuits on the first failing field; each failure is an
apierr.BadRequest whose message names the offending rule.
*/
package validate
