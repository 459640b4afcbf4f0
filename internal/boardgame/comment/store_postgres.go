// Copyright (c) 2026 Meeple. All rights reserved.

package comment

import (
	"context"
	"fmt"

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

func (repository *PostgresRepository) ListByReview(ctx context.Context, reviewID int) ([]Comment, error) {
	query := fmt.Sprintf(
		`SELECT %s, %s, %s, %s, %s, %s FROM %s WHERE %s = $1 ORDER BY %s ASC`,
		schema.Comments.ID, schema.Comments.Author, schema.Comments.Body,
		schema.Comments.Votes, schema.Comments.ReviewID, schema.Comments.CreatedAt,
		schema.Comments.Table, schema.Comments.ReviewID, schema.Comments.CreatedAt,
	)

	rows, err := repository.db.Query(ctx, query, reviewID)
	if err != nil {
		return nil, dberr.Wrap(err, "list_review_comments")
	}
	defer rows.Close()

	comments := make([]Comment, 0)
	for rows.Next() {
		var c Comment
		if err := rows.Scan(&c.CommentID, &c.Author, &c.Body, &c.Votes, &c.ReviewID, &c.CreatedAt); err != nil {
			return nil, dberr.Wrap(err, "scan_comment")
		}
		comments = append(comments, c)
	}
	if err := rows.Err(); err != nil {
		return nil, dberr.Wrap(err, "list_review_comments")
	}

	return comments, nil
}

func (repository *PostgresRepository) ReviewExists(ctx context.Context, reviewID int) (bool, error) {
	query := fmt.Sprintf(`SELECT EXISTS (SELECT 1 FROM %s WHERE %s = $1)`,
		schema.Reviews.Table, schema.Reviews.ID)

	var exists bool
	if err := repository.db.QueryRow(ctx, query, reviewID).Scan(&exists); err != nil {
		return false, dberr.Wrap(err, "review_exists")
	}

	return exists, nil
}

func (repository *PostgresRepository) Insert(ctx context.Context, reviewID int, author, body string) (*Comment, error) {
	// Referential integrity is left to the FK constraints; a violation
	// surfaces through dberr as a 400.
	query := fmt.Sprintf(
		`INSERT INTO %s (%s, %s, %s) VALUES ($1, $2, $3)
		 RETURNING %s, %s, %s, %s, %s, %s`,
		schema.Comments.Table, schema.Comments.Author, schema.Comments.Body, schema.Comments.ReviewID,
		schema.Comments.ID, schema.Comments.Author, schema.Comments.Body,
		schema.Comments.Votes, schema.Comments.ReviewID, schema.Comments.CreatedAt,
	)

	c := &Comment{}
	err := repository.db.QueryRow(ctx, query, author, body, reviewID).Scan(
		&c.CommentID, &c.Author, &c.Body, &c.Votes, &c.ReviewID, &c.CreatedAt,
	)
	if err != nil {
		return nil, dberr.Wrap(err, "insert_comment")
	}

	return c, nil
}

func (repository *PostgresRepository) Delete(ctx context.Context, commentID int) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`,
		schema.Comments.Table, schema.Comments.ID)

	tag, err := repository.db.Exec(ctx, query, commentID)
	if err != nil {
		return dberr.Wrap(err, "delete_comment")
	}
	if tag.RowsAffected() == 0 {
		return apperr.NotFoundf("No comment found for comment_id: %d", commentID)
	}

	return nil
}
