// Copyright (c) 2026 Meeple. All rights reserved.

package comment_test

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/boardhaus/meeple/internal/boardgame/comment"
	"github.com/boardhaus/meeple/internal/platform/apperr"
)

// stubRepository implements comment.Repository in memory with the FK
// behavior of the real store: inserting against a missing user or review
// fails the same way a constraint violation would.
type stubRepository struct {
	comments map[int][]comment.Comment
	reviews  map[int]bool

	nextID int
}

func newStubRepository() *stubRepository {
	return &stubRepository{
		comments: map[int][]comment.Comment{
			3: {
				{CommentID: 2, Author: "mallionaire", Body: "My dog loved this game too!", Votes: 13, ReviewID: 3, CreatedAt: time.Now().UTC()},
				{CommentID: 3, Author: "philippaclaire9", Body: "I didn't know dogs could play games", Votes: 10, ReviewID: 3, CreatedAt: time.Now().UTC()},
			},
		},
		reviews: map[int]bool{3: true, 4: true, 10: true},
		nextID:  7,
	}
}

func (stub *stubRepository) ListByReview(ctx context.Context, reviewID int) ([]comment.Comment, error) {
	return stub.comments[reviewID], nil
}

func (stub *stubRepository) ReviewExists(ctx context.Context, reviewID int) (bool, error) {
	return stub.reviews[reviewID], nil
}

func (stub *stubRepository) Insert(ctx context.Context, reviewID int, author, body string) (*comment.Comment, error) {
	knownUsers := map[string]bool{"dav3rid": true, "mallionaire": true}
	if !stub.reviews[reviewID] || !knownUsers[author] {
		return nil, apperr.BadRequest("Invalid user or review id does not exist")
	}

	created := comment.Comment{
		CommentID: stub.nextID,
		Author:    author,
		Body:      body,
		Votes:     0,
		ReviewID:  reviewID,
		CreatedAt: time.Now().UTC(),
	}
	stub.nextID++
	stub.comments[reviewID] = append(stub.comments[reviewID], created)
	return &created, nil
}

func (stub *stubRepository) Delete(ctx context.Context, commentID int) error {
	for reviewID, list := range stub.comments {
		for i, c := range list {
			if c.CommentID == commentID {
				stub.comments[reviewID] = append(list[:i], list[i+1:]...)
				return nil
			}
		}
	}
	return apperr.NotFoundf("No comment found for comment_id: %d", commentID)
}

func newTestServer(stub *stubRepository) http.Handler {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	handler := comment.NewHandler(comment.NewService(stub, logger))

	router := chi.NewRouter()
	router.Route("/api/reviews", func(r chi.Router) {
		handler.RegisterReviewRoutes(r)
	})
	router.Route("/api/comments", func(r chi.Router) {
		handler.RegisterRoutes(r)
	})
	return router
}

func decodeMsg(t *testing.T, recorder *httptest.ResponseRecorder) string {
	t.Helper()
	var body struct {
		Msg string `json:"msg"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	return body.Msg
}

/*
TestListReviewComments returns the thread for an existing review.
*/
func TestListReviewComments(t *testing.T) {
	server := newTestServer(newStubRepository())

	recorder := httptest.NewRecorder()
	server.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/api/reviews/3/comments", nil))

	assert.Equal(t, http.StatusOK, recorder.Code)

	var body struct {
		Comments []comment.Comment `json:"comments"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	assert.Len(t, body.Comments, 2)
}

/*
TestListReviewComments_EmptyVsMissing distinguishes a commentless review
(200 with an empty sequence) from a nonexistent one (404).
*/
func TestListReviewComments_EmptyVsMissing(t *testing.T) {
	server := newTestServer(newStubRepository())

	// Review 10 exists with zero comments.
	recorder := httptest.NewRecorder()
	server.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/api/reviews/10/comments", nil))

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.JSONEq(t, `{"comments": []}`, recorder.Body.String())

	// Review 42 does not exist.
	recorder = httptest.NewRecorder()
	server.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/api/reviews/42/comments", nil))

	assert.Equal(t, http.StatusNotFound, recorder.Code)
	assert.Equal(t, "No comments found for review_id: 42", decodeMsg(t, recorder))
}

func TestListReviewComments_NonNumericID(t *testing.T) {
	server := newTestServer(newStubRepository())

	recorder := httptest.NewRecorder()
	server.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/api/reviews/banana/comments", nil))

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	assert.Equal(t, "Invalid Input", decodeMsg(t, recorder))
}

/*
TestPostComment creates a comment with zero votes and a fresh id.
*/
func TestPostComment(t *testing.T) {
	server := newTestServer(newStubRepository())

	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodPost, "/api/reviews/4/comments",
		strings.NewReader(`{"username": "dav3rid", "body": "A modern classic"}`))
	request.Header.Set("Content-Type", "application/json")
	server.ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusCreated, recorder.Code)

	var body struct {
		Comments comment.Comment `json:"comments"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	assert.Equal(t, 7, body.Comments.CommentID)
	assert.Equal(t, "dav3rid", body.Comments.Author)
	assert.Equal(t, 0, body.Comments.Votes)
	assert.Equal(t, 4, body.Comments.ReviewID)
}

func TestPostComment_BadBodies(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"missing_username", `{"body": "nice"}`},
		{"missing_body", `{"username": "dav3rid"}`},
		{"empty_fields", `{"username": "", "body": ""}`},
		{"not_json", `username=dav3rid`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := newTestServer(newStubRepository())

			recorder := httptest.NewRecorder()
			request := httptest.NewRequest(http.MethodPost, "/api/reviews/4/comments", strings.NewReader(tt.body))
			request.Header.Set("Content-Type", "application/json")
			server.ServeHTTP(recorder, request)

			assert.Equal(t, http.StatusBadRequest, recorder.Code)
			assert.Equal(t, "Missing or incorrect fields required in body", decodeMsg(t, recorder))
		})
	}
}

/*
TestPostComment_UnknownUser surfaces the referential failure as a 400.
*/
func TestPostComment_UnknownUser(t *testing.T) {
	server := newTestServer(newStubRepository())

	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodPost, "/api/reviews/4/comments",
		strings.NewReader(`{"username": "nobody", "body": "hello"}`))
	request.Header.Set("Content-Type", "application/json")
	server.ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	assert.Equal(t, "Invalid user or review id does not exist", decodeMsg(t, recorder))
}

/*
TestDeleteComment removes the row once; the second attempt is a 404.
*/
func TestDeleteComment(t *testing.T) {
	server := newTestServer(newStubRepository())

	recorder := httptest.NewRecorder()
	server.ServeHTTP(recorder, httptest.NewRequest(http.MethodDelete, "/api/comments/2", nil))

	assert.Equal(t, http.StatusNoContent, recorder.Code)
	assert.Empty(t, recorder.Body.String())

	recorder = httptest.NewRecorder()
	server.ServeHTTP(recorder, httptest.NewRequest(http.MethodDelete, "/api/comments/2", nil))

	assert.Equal(t, http.StatusNotFound, recorder.Code)
	assert.Equal(t, "No comment found for comment_id: 2", decodeMsg(t, recorder))
}

func TestDeleteComment_NonNumericID(t *testing.T) {
	server := newTestServer(newStubRepository())

	recorder := httptest.NewRecorder()
	server.ServeHTTP(recorder, httptest.NewRequest(http.MethodDelete, "/api/comments/two", nil))

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	assert.Equal(t, "Invalid Input", decodeMsg(t, recorder))
}
