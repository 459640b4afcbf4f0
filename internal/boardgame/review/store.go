// Copyright (c) 2026 Meeple. All rights reserved.

package review

import "context"

// Repository is the storage contract for reviews.
//
// ListReviews receives an already-validated column name and direction; the
// service layer is the only producer of those values, so raw user input can
// never reach the query text.
type Repository interface {
	ListReviews(ctx context.Context, sortColumn, direction, category string) ([]*Review, error)
	GetReviewByID(ctx context.Context, reviewID int) (*Review, error)
	IncrementVotes(ctx context.Context, reviewID, delta int) (*Review, error)
	CategoryExists(ctx context.Context, slug string) (bool, error)
}
