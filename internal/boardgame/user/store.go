// Copyright (c) 2026 Meeple. All rights reserved.

package user

import "context"

type Repository interface {
	ListUsers(ctx context.Context) ([]User, error)
}
