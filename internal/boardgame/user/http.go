// Copyright (c) 2026 Meeple. All rights reserved.

package user

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/boardhaus/meeple/internal/platform/constants"
	"github.com/boardhaus/meeple/internal/platform/respond"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (handler *Handler) RegisterRoutes(router chi.Router) {
	router.Get("/", handler.listUsers)
}

func (handler *Handler) listUsers(writer http.ResponseWriter, request *http.Request) {
	users, err := handler.service.ListUsers(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, respond.Envelope{constants.FieldUsers: users})
}
