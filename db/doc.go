// Copyright (c) 2026 FitTrack Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db bootstraps the relational schema.

CreateSchema is idempotent and driver-aware: PostgreSQL gets SERIAL keys,
SQLite gets AUTOINCREMENT. Both layouts are otherwise identical:

	accounts      - id, name, age, weight, height
	meals         - id, name, calories
	workouts      - id, type, duration, calories_burned, account_id
	account_meals - join relation between accounts and meals

Store queries use $N placeholders and RETURNING, which both drivers accept.
*/
package db
