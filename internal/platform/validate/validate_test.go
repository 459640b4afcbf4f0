// Copyright (c) 2026 Meeple. All rights reserved.

package validate_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/boardhaus/meeple/internal/platform/apperr"
	"github.com/boardhaus/meeple/internal/platform/validate"
)

/*
TestRequired tests the mandatory field rule used by mutation bodies.
*/
func TestRequired(t *testing.T) {
	tests := []struct {
		name   string
		values []string
		want   bool
	}{
		{"all_present", []string{"dav3rid", "Great game"}, true},
		{"one_empty", []string{"dav3rid", ""}, false},
		{"whitespace_only", []string{"   ", "body"}, false},
		{"no_values", nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, validate.Required(tt.values...))
		})
	}
}

/*
TestOneOf tests the allow-list membership rule used by query parameters.
*/
func TestOneOf(t *testing.T) {
	assert.True(t, validate.OneOf("asc", "asc", "desc"))
	assert.True(t, validate.OneOf("desc", "asc", "desc"))
	assert.False(t, validate.OneOf("ASC", "asc", "desc"))
	assert.False(t, validate.OneOf("banana", "asc", "desc"))
	assert.False(t, validate.OneOf(""))
}

/*
TestErrInvalidBody pins the status and message of the shared bad-body error.
*/
func TestErrInvalidBody(t *testing.T) {
	ae := apperr.As(validate.ErrInvalidBody)
	require.NotNil(t, ae)
	assert.Equal(t, http.StatusBadRequest, ae.HTTPStatus)
	assert.Equal(t, "Missing or incorrect fields required in body", ae.Message)
}
