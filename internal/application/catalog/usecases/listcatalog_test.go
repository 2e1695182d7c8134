package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "fixmate/internal/shared/errors"
)

func TestListBrandsUseCase_Execute(t *testing.T) {
	repo := &mockCatalogRepo{brands: []string{"Bosch", "LG", "Miele"}}
	uc := NewListBrandsUseCase(repo, noopLogger{})

	brands, err := uc.Execute(context.Background())

	require.NoError(t, err)
	assert.Equal(t, []string{"Bosch", "LG", "Miele"}, brands)
}

func TestListAppliancesUseCase_Execute_Success(t *testing.T) {
	repo := &mockCatalogRepo{appliances: []string{"Dishwasher", "Dryer"}}
	uc := NewListAppliancesUseCase(repo, noopLogger{})

	appliances, err := uc.Execute(context.Background(), ListAppliancesCommand{Brand: "Bosch"})

	require.NoError(t, err)
	assert.Equal(t, []string{"Dishwasher", "Dryer"}, appliances)
}

func TestListAppliancesUseCase_Execute_MissingBrand(t *testing.T) {
	uc := NewListAppliancesUseCase(&mockCatalogRepo{}, noopLogger{})

	_, err := uc.Execute(context.Background(), ListAppliancesCommand{})

	require.Error(t, err)
	appErr := apperrors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, "Missing 'brand' query parameter", appErr.Message)
}

func TestListAppliancesUseCase_Execute_UnknownBrandIsEmptyList(t *testing.T) {
	repo := &mockCatalogRepo{appliances: []string{}}
	uc := NewListAppliancesUseCase(repo, noopLogger{})

	appliances, err := uc.Execute(context.Background(), ListAppliancesCommand{Brand: "NoSuchBrand"})

	require.NoError(t, err)
	assert.Empty(t, appliances)
}

func TestListIssuesUseCase_Execute_Success(t *testing.T) {
	repo := &mockCatalogRepo{titles: []string{"Door stuck", "Not draining"}}
	uc := NewListIssuesUseCase(repo, noopLogger{})

	titles, err := uc.Execute(context.Background(), ListIssuesCommand{Brand: "Bosch", Appliance: "Dishwasher"})

	require.NoError(t, err)
	assert.Equal(t, []string{"Door stuck", "Not draining"}, titles)
}

func TestListIssuesUseCase_Execute_MissingParams(t *testing.T) {
	uc := NewListIssuesUseCase(&mockCatalogRepo{}, noopLogger{})

	tests := []struct {
		name string
		cmd  ListIssuesCommand
	}{
		{"missing brand", ListIssuesCommand{Appliance: "Dishwasher"}},
		{"missing appliance", ListIssuesCommand{Brand: "Bosch"}},
		{"both missing", ListIssuesCommand{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Execute(context.Background(), tt.cmd)
			require.Error(t, err)
			appErr := apperrors.GetAppError(err)
			require.NotNil(t, appErr)
			assert.Equal(t, "Missing 'brand' or 'appliance' query parameter", appErr.Message)
		})
	}
}
