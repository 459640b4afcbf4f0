// Copyright (c) 2026 Meeple. All rights reserved.

package apperr_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/boardhaus/meeple/internal/platform/apperr"
)

/*
TestConstructors verifies the status code and message of each error class.
*/
func TestConstructors(t *testing.T) {
	tests := []struct {
		name       string
		err        *apperr.AppError
		wantStatus int
		wantMsg    string
	}{
		{"not_found", apperr.NotFound("No review found for review_id: 42"), http.StatusNotFound, "No review found for review_id: 42"},
		{"not_found_formatted", apperr.NotFoundf("No category found for: %s", "euro game"), http.StatusNotFound, "No category found for: euro game"},
		{"bad_request", apperr.BadRequest("Invalid Input"), http.StatusBadRequest, "Invalid Input"},
		{"internal", apperr.Internal(errors.New("pq: broken")), http.StatusInternalServerError, "Server error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantStatus, tt.err.HTTPStatus)
			assert.Equal(t, tt.wantMsg, tt.err.Error())
		})
	}
}

/*
TestInternal_HidesCause ensures the wrapped cause never leaks into the
client-facing message but remains reachable for logging.
*/
func TestInternal_HidesCause(t *testing.T) {
	cause := errors.New("SELECT * FROM reviews failed")
	err := apperr.Internal(cause)

	assert.Equal(t, "Server error", err.Error())
	assert.ErrorIs(t, err, cause)
}

/*
TestAs extracts an AppError through a wrap chain.
*/
func TestAs(t *testing.T) {
	base := apperr.NotFound("No comment found for comment_id: 7")
	wrapped := fmt.Errorf("handler: %w", base)

	extracted := apperr.As(wrapped)
	require.NotNil(t, extracted)
	assert.Equal(t, http.StatusNotFound, extracted.HTTPStatus)

	assert.True(t, apperr.IsAppError(wrapped))
	assert.False(t, apperr.IsAppError(errors.New("plain")))
	assert.Nil(t, apperr.As(errors.New("plain")))
}
