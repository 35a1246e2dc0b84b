// Copyright (c) 2026 FitTrack Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package apierr

import "errors"

// Kind classifies a request failure.
type Kind int

const (
	// KindBadRequest covers malformed identifiers, malformed path shapes,
	// and field validation failures.
	KindBadRequest Kind = iota
	// KindNotFound covers well-formed identifiers with no matching record.
	KindNotFound
)

type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

// BadRequest returns a client-format/validation failure carrying msg.
func BadRequest(msg string) error {
	return &Error{Kind: KindBadRequest, Message: msg}
}

// NotFound returns a missing-record failure carrying msg.
func NotFound(msg string) error {
	return &Error{Kind: KindNotFound, Message: msg}
}

func IsBadRequest(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == KindBadRequest
}

func IsNotFound(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == KindNotFound
}
