// Copyright (c) 2026 Meeple. All rights reserved.

package category

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/boardhaus/meeple/internal/platform/database/schema"
	"github.com/boardhaus/meeple/internal/platform/dberr"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (repository *PostgresRepository) ListCategories(ctx context.Context) ([]Category, error) {
	query := fmt.Sprintf(`SELECT %s, %s FROM %s ORDER BY %s ASC`,
		schema.Categories.Slug, schema.Categories.Description,
		schema.Categories.Table, schema.Categories.Slug)

	rows, err := repository.db.Query(ctx, query)
	if err != nil {
		return nil, dberr.Wrap(err, "list_categories")
	}
	defer rows.Close()

	categories := make([]Category, 0)
	for rows.Next() {
		var c Category
		if err := rows.Scan(&c.Slug, &c.Description); err != nil {
			return nil, dberr.Wrap(err, "scan_category")
		}
		categories = append(categories, c)
	}
	if err := rows.Err(); err != nil {
		return nil, dberr.Wrap(err, "list_categories")
	}

	return categories, nil
}
