// Copyright (c) 2026 Meeple. All rights reserved.

package comment

import "context"

type Repository interface {
	ListByReview(ctx context.Context, reviewID int) ([]Comment, error)
	ReviewExists(ctx context.Context, reviewID int) (bool, error)
	Insert(ctx context.Context, reviewID int, author, body string) (*Comment, error)
	Delete(ctx context.Context, commentID int) error
}
