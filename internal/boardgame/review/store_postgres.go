// Copyright (c) 2026 Meeple. All rights reserved.

package review

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/boardhaus/meeple/internal/platform/apperr"
	"github.com/boardhaus/meeple/internal/platform/database/schema"
	"github.com/boardhaus/meeple/internal/platform/dberr"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// reviewColumns lists the review columns in scan order, qualified with r.
func reviewColumns() string {
	cols := []string{
		schema.Reviews.ID, schema.Reviews.Title, schema.Reviews.Designer,
		schema.Reviews.Owner, schema.Reviews.ReviewImgURL, schema.Reviews.ReviewBody,
		schema.Reviews.Category, schema.Reviews.CreatedAt, schema.Reviews.Votes,
	}
	for i, c := range cols {
		cols[i] = "r." + c
	}
	return strings.Join(cols, ", ")
}

func scanReviewWithCount(row pgx.Row) (*Review, error) {
	r := &Review{}
	var commentCount int
	err := row.Scan(
		&r.ReviewID, &r.Title, &r.Designer, &r.Owner, &r.ReviewImgURL,
		&r.ReviewBody, &r.Category, &r.CreatedAt, &r.Votes, &commentCount,
	)
	if err != nil {
		return nil, err
	}
	r.CommentCount = &commentCount
	return r, nil
}

func (repository *PostgresRepository) ListReviews(ctx context.Context, sortColumn, direction, category string) ([]*Review, error) {
	var queryBuilder strings.Builder
	args := make([]any, 0, 1)

	// Left join so reviews with zero comments still appear with count 0.
	queryBuilder.WriteString(fmt.Sprintf(
		`SELECT %s, COUNT(c.%s)::INT AS comment_count FROM %s r LEFT JOIN %s c ON r.%s = c.%s`,
		reviewColumns(), schema.Comments.ReviewID,
		schema.Reviews.Table, schema.Comments.Table,
		schema.Reviews.ID, schema.Comments.ReviewID,
	))

	// Only the scalar filter value is bound; column and direction come from
	// the validated allow-list upstream.
	if category != "" {
		queryBuilder.WriteString(fmt.Sprintf(" WHERE r.%s = $1", schema.Reviews.Category))
		args = append(args, category)
	}

	queryBuilder.WriteString(fmt.Sprintf(" GROUP BY r.%s ORDER BY r.%s %s",
		schema.Reviews.ID, sortColumn, direction))

	rows, err := repository.db.Query(ctx, queryBuilder.String(), args...)
	if err != nil {
		return nil, dberr.Wrap(err, "list_reviews")
	}
	defer rows.Close()

	reviews := make([]*Review, 0)
	for rows.Next() {
		r, err := scanReviewWithCount(rows)
		if err != nil {
			return nil, dberr.Wrap(err, "scan_review")
		}
		reviews = append(reviews, r)
	}
	if err := rows.Err(); err != nil {
		return nil, dberr.Wrap(err, "list_reviews")
	}

	return reviews, nil
}

func (repository *PostgresRepository) GetReviewByID(ctx context.Context, reviewID int) (*Review, error) {
	query := fmt.Sprintf(
		`SELECT %s, COUNT(c.%s)::INT AS comment_count
		 FROM %s r LEFT JOIN %s c ON r.%s = c.%s
		 WHERE r.%s = $1
		 GROUP BY r.%s`,
		reviewColumns(), schema.Comments.ReviewID,
		schema.Reviews.Table, schema.Comments.Table,
		schema.Reviews.ID, schema.Comments.ReviewID,
		schema.Reviews.ID, schema.Reviews.ID,
	)

	r, err := scanReviewWithCount(repository.db.QueryRow(ctx, query, reviewID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.NotFoundf("No review found for review_id: %d", reviewID)
		}
		return nil, dberr.Wrap(err, "get_review_by_id")
	}

	return r, nil
}

func (repository *PostgresRepository) IncrementVotes(ctx context.Context, reviewID, delta int) (*Review, error) {
	// Atomic in-store increment; concurrent callers can never lose updates.
	query := fmt.Sprintf(
		`UPDATE %s SET %s = %s + $2 WHERE %s = $1
		 RETURNING %s, %s, %s, %s, %s, %s, %s, %s, %s`,
		schema.Reviews.Table, schema.Reviews.Votes, schema.Reviews.Votes, schema.Reviews.ID,
		schema.Reviews.ID, schema.Reviews.Title, schema.Reviews.Designer,
		schema.Reviews.Owner, schema.Reviews.ReviewImgURL, schema.Reviews.ReviewBody,
		schema.Reviews.Category, schema.Reviews.CreatedAt, schema.Reviews.Votes,
	)

	r := &Review{}
	err := repository.db.QueryRow(ctx, query, reviewID, delta).Scan(
		&r.ReviewID, &r.Title, &r.Designer, &r.Owner, &r.ReviewImgURL,
		&r.ReviewBody, &r.Category, &r.CreatedAt, &r.Votes,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.NotFoundf("No review found for review_id: %d", reviewID)
		}
		return nil, dberr.Wrap(err, "increment_review_votes")
	}

	return r, nil
}

func (repository *PostgresRepository) CategoryExists(ctx context.Context, slug string) (bool, error) {
	query := fmt.Sprintf(`SELECT EXISTS (SELECT 1 FROM %s WHERE %s = $1)`,
		schema.Categories.Table, schema.Categories.Slug)

	var exists bool
	if err := repository.db.QueryRow(ctx, query, slug).Scan(&exists); err != nil {
		return false, dberr.Wrap(err, "category_exists")
	}

	return exists, nil
}
