// Copyright (c) 2026 Meeple. All rights reserved.

package user

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

func (repository *PostgresRepository) ListUsers(ctx context.Context) ([]User, error) {
	query := fmt.Sprintf(`SELECT %s, %s, %s FROM %s ORDER BY %s ASC`,
		schema.Users.Username, schema.Users.Name, schema.Users.AvatarURL,
		schema.Users.Table, schema.Users.Username)

	rows, err := repository.db.Query(ctx, query)
	if err != nil {
		return nil, dberr.Wrap(err, "list_users")
	}
	defer rows.Close()

	users := make([]User, 0)
	for rows.Next() {
		var u User
		if err := rows.Scan(&u.Username, &u.Name, &u.AvatarURL); err != nil {
			return nil, dberr.Wrap(err, "scan_user")
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, dberr.Wrap(err, "list_users")
	}

	return users, nil
}
