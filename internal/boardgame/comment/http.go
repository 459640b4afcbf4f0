// Copyright (c) 2026 Meeple. All rights reserved.

package comment

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/boardhaus/meeple/internal/platform/constants"
	requestutil "github.com/boardhaus/meeple/internal/platform/request"
	"github.com/boardhaus/meeple/internal/platform/respond"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes mounts the comment-rooted routes (/api/comments).
func (handler *Handler) RegisterRoutes(router chi.Router) {
	router.Delete("/{comment_id}", handler.deleteComment)
}

// RegisterReviewRoutes mounts the review-nested comment routes
// (/api/reviews/{review_id}/comments). Registered flat so route-miss
// fallbacks on the reviews group apply to these paths too.
func (handler *Handler) RegisterReviewRoutes(router chi.Router) {
	router.Get("/{review_id}/comments", handler.listReviewComments)
	router.Post("/{review_id}/comments", handler.postComment)
}

func (handler *Handler) listReviewComments(writer http.ResponseWriter, request *http.Request) {
	reviewID, err := requestutil.IntParam(request, "review_id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	comments, err := handler.service.ListForReview(request.Context(), reviewID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, respond.Envelope{constants.FieldComments: comments})
}

type postCommentBody struct {
	Username string `json:"username"`
	Body     string `json:"body"`
}

func (handler *Handler) postComment(writer http.ResponseWriter, request *http.Request) {
	reviewID, err := requestutil.IntParam(request, "review_id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var body postCommentBody
	if err := requestutil.DecodeJSON(request, &body); err != nil {
		respond.Error(writer, request, err)
		return
	}

	created, err := handler.service.Create(request.Context(), reviewID, body.Username, body.Body)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, respond.Envelope{constants.FieldComments: created})
}

func (handler *Handler) deleteComment(writer http.ResponseWriter, request *http.Request) {
	commentID, err := requestutil.IntParam(request, "comment_id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.Delete(request.Context(), commentID); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}
