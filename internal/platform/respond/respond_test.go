// Copyright (c) 2026 Meeple. All rights reserved.

package respond_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/boardhaus/meeple/internal/platform/apperr"
	"github.com/boardhaus/meeple/internal/platform/respond"
)

/*
TestOK wraps the payload under its resource key with a 200.
*/
func TestOK(t *testing.T) {
	recorder := httptest.NewRecorder()

	respond.OK(recorder, respond.Envelope{"categories": []string{"euro game"}})

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, "application/json; charset=utf-8", recorder.Header().Get("Content-Type"))

	var body map[string][]string
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	assert.Equal(t, []string{"euro game"}, body["categories"])
}

func TestCreated(t *testing.T) {
	recorder := httptest.NewRecorder()
	respond.Created(recorder, respond.Envelope{"comments": map[string]any{"comment_id": 7}})
	assert.Equal(t, http.StatusCreated, recorder.Code)
}

func TestNoContent(t *testing.T) {
	recorder := httptest.NewRecorder()
	respond.NoContent(recorder)
	assert.Equal(t, http.StatusNoContent, recorder.Code)
	assert.Empty(t, recorder.Body.String())
}

/*
TestError_AppError emits the structured error's status and exact message.
*/
func TestError_AppError(t *testing.T) {
	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodGet, "/api/reviews/42", nil)

	respond.Error(recorder, request, apperr.NotFound("No review found for review_id: 42"))

	assert.Equal(t, http.StatusNotFound, recorder.Code)

	var body respond.ErrorEnvelope
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	assert.Equal(t, "No review found for review_id: 42", body.Msg)
}

/*
TestError_UnclassifiedError downgrades any other error to a generic 500 so
driver detail never reaches the client.
*/
func TestError_UnclassifiedError(t *testing.T) {
	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodGet, "/api/reviews", nil)

	respond.Error(recorder, request, errors.New("pq: column does not exist"))

	assert.Equal(t, http.StatusInternalServerError, recorder.Code)

	var body respond.ErrorEnvelope
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	assert.Equal(t, "Server error", body.Msg)
	assert.NotContains(t, recorder.Body.String(), "column does not exist")
}
