package usecases

import (
	"context"
	"fmt"

	"fixmate/internal/domain/catalog"
	"fixmate/internal/shared/errors"
	"fixmate/internal/shared/logger"
)

type GetSolutionCommand struct {
	Brand     string
	Appliance string
	Issue     string
}

type GetSolutionResult struct {
	Solution  string `json:"solution"`
	BrandPage string `json:"brand_page"`
}

type GetSolutionUseCase struct {
	repo   catalog.Repository
	logger logger.Interface
}

func NewGetSolutionUseCase(repo catalog.Repository, logger logger.Interface) *GetSolutionUseCase {
	return &GetSolutionUseCase{
		repo:   repo,
		logger: logger,
	}
}

func (uc *GetSolutionUseCase) Execute(ctx context.Context, cmd GetSolutionCommand) (*GetSolutionResult, error) {
	if cmd.Brand == "" || cmd.Appliance == "" || cmd.Issue == "" {
		return nil, errors.NewValidationError("Missing 'brand', 'appliance', or 'issue' in body")
	}

	solution, err := uc.repo.GetSolution(ctx, cmd.Brand, cmd.Appliance, cmd.Issue)
	if err != nil {
		uc.logger.Errorw("failed to get solution",
			"brand", cmd.Brand,
			"appliance", cmd.Appliance,
			"issue", cmd.Issue,
			"error", err)
		return nil, fmt.Errorf("failed to get solution: %w", err)
	}

	// A well-formed triple with no matching row is a not-found, which is a
	// different outcome from a missing parameter.
	if solution == nil {
		return nil, errors.NewNotFoundError("Data not found")
	}

	return &GetSolutionResult{
		Solution:  solution.Solution,
		BrandPage: solution.BrandPage,
	}, nil
}
