// Copyright (c) 2026 Meeple. All rights reserved.

// Package validate holds the central catalogue of input rules shared by the
// service layer: required mutation fields and query-parameter allow-lists.
//
// Rules here run before any query is issued, so rejected input never touches
// the store.
package validate

import (
	"strings"

	"github.com/boardhaus/meeple/internal/platform/apperr"
)

var (
	// ErrInvalidBody is returned when a mutation body cannot be decoded or a
	// required field is absent or of the wrong type.
	ErrInvalidBody = apperr.BadRequest("Missing or incorrect fields required in body")
)

// Required reports whether every value is non-empty after trimming whitespace.
func Required(values ...string) bool {
	for _, value := range values {
		if strings.TrimSpace(value) == "" {
			return false
		}
	}
	return true
}

// OneOf reports whether value is in the allowed set of strings.
func OneOf(value string, allowed ...string) bool {
	for _, a := range allowed {
		if value == a {
			return true
		}
	}
	return false
}
