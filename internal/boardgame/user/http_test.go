// Copyright (c) 2026 Meeple. All rights reserved.

package user_test

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/boardhaus/meeple/internal/boardgame/user"
)

type stubRepository struct {
	users []user.User
}

func (stub *stubRepository) ListUsers(ctx context.Context) ([]user.User, error) {
	return stub.users, nil
}

func TestListUsers(t *testing.T) {
	stub := &stubRepository{users: []user.User{
		{Username: "dav3rid", Name: "dave", AvatarURL: "https://example.com/dave.jpg"},
		{Username: "mallionaire", Name: "haz", AvatarURL: "https://example.com/haz.jpg"},
	}}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	handler := user.NewHandler(user.NewService(stub, logger))

	router := chi.NewRouter()
	router.Route("/api/users", func(r chi.Router) {
		handler.RegisterRoutes(r)
	})

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/api/users", nil))

	assert.Equal(t, http.StatusOK, recorder.Code)

	var body struct {
		Users []user.User `json:"users"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	require.Len(t, body.Users, 2)
	assert.Equal(t, "dav3rid", body.Users[0].Username)
	assert.Equal(t, "https://example.com/dave.jpg", body.Users[0].AvatarURL)
}
