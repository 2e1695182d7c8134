package usecases

import (
	"context"
	"fmt"

	"fixmate/internal/domain/catalog"
	"fixmate/internal/shared/errors"
	"fixmate/internal/shared/logger"
)

type ListIssuesCommand struct {
	Brand     string
	Appliance string
}

type ListIssuesUseCase struct {
	repo   catalog.Repository
	logger logger.Interface
}

func NewListIssuesUseCase(repo catalog.Repository, logger logger.Interface) *ListIssuesUseCase {
	return &ListIssuesUseCase{
		repo:   repo,
		logger: logger,
	}
}

func (uc *ListIssuesUseCase) Execute(ctx context.Context, cmd ListIssuesCommand) ([]string, error) {
	if cmd.Brand == "" || cmd.Appliance == "" {
		return nil, errors.NewValidationError("Missing 'brand' or 'appliance' query parameter")
	}

	titles, err := uc.repo.ListIssueTitles(ctx, cmd.Brand, cmd.Appliance)
	if err != nil {
		uc.logger.Errorw("failed to list issues",
			"brand", cmd.Brand,
			"appliance", cmd.Appliance,
			"error", err)
		return nil, fmt.Errorf("failed to list issues: %w", err)
	}
	return titles, nil
}
