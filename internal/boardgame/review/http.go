// Copyright (c) 2026 Meeple. All rights reserved.

package review

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/boardhaus/meeple/internal/platform/constants"
	requestutil "github.com/boardhaus/meeple/internal/platform/request"
	"github.com/boardhaus/meeple/internal/platform/respond"
	"github.com/boardhaus/meeple/internal/platform/validate"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (handler *Handler) RegisterRoutes(router chi.Router) {
	router.Get("/", handler.listReviews)
	router.Get("/{review_id}", handler.getReview)
	router.Patch("/{review_id}", handler.patchReviewVotes)
}

func (handler *Handler) listReviews(writer http.ResponseWriter, request *http.Request) {
	sortBy := requestutil.Query(request, "sort_by", DefaultSortBy)
	order := requestutil.Query(request, "order", DefaultOrder)
	category := requestutil.Query(request, "category", "")

	reviews, err := handler.service.ListReviews(request.Context(), sortBy, order, category)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, respond.Envelope{constants.FieldReviews: reviews})
}

func (handler *Handler) getReview(writer http.ResponseWriter, request *http.Request) {
	reviewID, err := requestutil.IntParam(request, "review_id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	review, err := handler.service.GetReview(request.Context(), reviewID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	// Lookup by id responds with a single-element sequence.
	respond.OK(writer, respond.Envelope{constants.FieldReviews: []*Review{review}})
}

type patchVotesBody struct {
	IncVotes *int `json:"inc_votes"`
}

func (handler *Handler) patchReviewVotes(writer http.ResponseWriter, request *http.Request) {
	reviewID, err := requestutil.IntParam(request, "review_id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var body patchVotesBody
	if err := requestutil.DecodeJSON(request, &body); err != nil {
		// A non-integer inc_votes fails decoding and counts as a bad body.
		respond.Error(writer, request, validate.ErrInvalidBody)
		return
	}

	review, err := handler.service.AdjustVotes(request.Context(), reviewID, body.IncVotes)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, respond.Envelope{constants.FieldReviews: review})
}
