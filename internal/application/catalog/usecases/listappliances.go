package usecases

import (
	"context"
	"fmt"

	"fixmate/internal/domain/catalog"
	"fixmate/internal/shared/errors"
	"fixmate/internal/shared/logger"
)

type ListAppliancesCommand struct {
	Brand string
}

type ListAppliancesUseCase struct {
	repo   catalog.Repository
	logger logger.Interface
}

func NewListAppliancesUseCase(repo catalog.Repository, logger logger.Interface) *ListAppliancesUseCase {
	return &ListAppliancesUseCase{
		repo:   repo,
		logger: logger,
	}
}

func (uc *ListAppliancesUseCase) Execute(ctx context.Context, cmd ListAppliancesCommand) ([]string, error) {
	if cmd.Brand == "" {
		return nil, errors.NewValidationError("Missing 'brand' query parameter")
	}

	appliances, err := uc.repo.ListAppliances(ctx, cmd.Brand)
	if err != nil {
		uc.logger.Errorw("failed to list appliances", "brand", cmd.Brand, "error", err)
		return nil, fmt.Errorf("failed to list appliances: %w", err)
	}
	return appliances, nil
}
