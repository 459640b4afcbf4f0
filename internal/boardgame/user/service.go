// Copyright (c) 2026 Meeple. All rights reserved.

package user

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

func (service *Service) ListUsers(ctx context.Context) ([]User, error) {
	return service.repo.ListUsers(ctx)
}
