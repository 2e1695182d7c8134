package usecases

import (
	"context"
	"fmt"

	"fixmate/internal/domain/catalog"
	"fixmate/internal/shared/logger"
)

type ListBrandsUseCase struct {
	repo   catalog.Repository
	logger logger.Interface
}

func NewListBrandsUseCase(repo catalog.Repository, logger logger.Interface) *ListBrandsUseCase {
	return &ListBrandsUseCase{
		repo:   repo,
		logger: logger,
	}
}

func (uc *ListBrandsUseCase) Execute(ctx context.Context) ([]string, error) {
	brands, err := uc.repo.ListBrands(ctx)
	if err != nil {
		uc.logger.Errorw("failed to list brands", "error", err)
		return nil, fmt.Errorf("failed to list brands: %w", err)
	}
	return brands, nil
}
