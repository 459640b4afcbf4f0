// Copyright (c) 2026 Meeple. All rights reserved.

package review

import (
	"context"
	"log/slog"
	"strings"

	"github.com/boardhaus/meeple/internal/platform/apperr"
	"github.com/boardhaus/meeple/internal/platform/database/schema"
	"github.com/boardhaus/meeple/internal/platform/validate"
)

// Query-parameter defaults for the review listing.
const (
	DefaultSortBy = "created_at"
	DefaultOrder  = "desc"
)

// sortColumns is the allow-list translating sort_by values to fixed column
// references. A sort column cannot be bound like a value, so anything outside
// this map is rejected before query construction.
var sortColumns = map[string]string{
	"created_at":     schema.Reviews.CreatedAt,
	"title":          schema.Reviews.Title,
	"designer":       schema.Reviews.Designer,
	"owner":          schema.Reviews.Owner,
	"review_img_url": schema.Reviews.ReviewImgURL,
	"review_body":    schema.Reviews.ReviewBody,
	"category":       schema.Reviews.Category,
	"votes":          schema.Reviews.Votes,
}

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

// ListReviews validates the sort/order/category parameters and returns the
// matching reviews with their comment counts.
func (service *Service) ListReviews(ctx context.Context, sortBy, order, category string) ([]*Review, error) {
	if sortBy == "" {
		sortBy = DefaultSortBy
	}
	if order == "" {
		order = DefaultOrder
	}

	column, ok := sortColumns[sortBy]
	if !ok {
		return nil, apperr.BadRequest("Invalid sort_by query")
	}

	if !validate.OneOf(order, "asc", "desc") {
		return nil, apperr.BadRequest("Invalid order query")
	}

	if category != "" {
		exists, err := service.repo.CategoryExists(ctx, category)
		if err != nil {
			return nil, err
		}
		if !exists {
			return nil, apperr.NotFoundf("No category found for: %s", category)
		}
	}

	return service.repo.ListReviews(ctx, column, strings.ToUpper(order), category)
}

func (service *Service) GetReview(ctx context.Context, reviewID int) (*Review, error) {
	return service.repo.GetReviewByID(ctx, reviewID)
}

// AdjustVotes applies a signed vote delta to a review.
//
// delta is a pointer so an absent inc_votes field is distinguishable from an
// explicit zero; zero is a legal no-op adjustment.
func (service *Service) AdjustVotes(ctx context.Context, reviewID int, delta *int) (*Review, error) {
	if delta == nil {
		return nil, validate.ErrInvalidBody
	}
	return service.repo.IncrementVotes(ctx, reviewID, *delta)
}
