// Copyright (c) 2026 Meeple. All rights reserved.

package category

import (
	"context"
	"log/slog"
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

func (service *Service) ListCategories(ctx context.Context) ([]Category, error) {
	return service.repo.ListCategories(ctx)
}
