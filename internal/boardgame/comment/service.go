// Copyright (c) 2026 Meeple. All rights reserved.

package comment

import (
	"context"
	"log/slog"

	"github.com/boardhaus/meeple/internal/platform/apperr"
	"github.com/boardhaus/meeple/internal/platform/validate"
)

type Service struct {
	repo   Repository
	logger *slog.Logger
}

func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

// ListForReview returns the comments on a review, oldest first.
//
// An empty result is ambiguous: the review may have no comments yet, or may
// not exist at all. The secondary existence check runs only in that case so
// the common path stays a single query.
func (service *Service) ListForReview(ctx context.Context, reviewID int) ([]Comment, error) {
	comments, err := service.repo.ListByReview(ctx, reviewID)
	if err != nil {
		return nil, err
	}

	if len(comments) == 0 {
		exists, err := service.repo.ReviewExists(ctx, reviewID)
		if err != nil {
			return nil, err
		}
		if !exists {
			return nil, apperr.NotFoundf("No comments found for review_id: %d", reviewID)
		}
		// The review exists but has no comments yet: an empty sequence,
		// never null, so clients can range over it unconditionally.
		return []Comment{}, nil
	}

	return comments, nil
}

// Create validates and inserts a new comment on a review.
func (service *Service) Create(ctx context.Context, reviewID int, username, body string) (*Comment, error) {
	if !validate.Required(username, body) {
		return nil, validate.ErrInvalidBody
	}
	return service.repo.Insert(ctx, reviewID, username, body)
}

// Delete removes a comment by id.
func (service *Service) Delete(ctx context.Context, commentID int) error {
	return service.repo.Delete(ctx, commentID)
}
