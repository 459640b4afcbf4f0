// Copyright (c) 2026 Meeple. All rights reserved.

package category

import "context"

type Repository interface {
	ListCategories(ctx context.Context) ([]Category, error)
}
