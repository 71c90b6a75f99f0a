package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCategories(t *testing.T) {
	industry, err := ParseIndustry("  Technology ")
	require.NoError(t, err)
	assert.Equal(t, IndustryTechnology, industry)

	size, err := ParseCompanySize("LARGE")
	require.NoError(t, err)
	assert.Equal(t, SizeLarge, size)

	adoption, err := ParseAIAdoption("minimal")
	require.NoError(t, err)
	assert.Equal(t, AdoptionMinimal, adoption)

	goal, err := ParseGoal("customer_retention")
	require.NoError(t, err)
	assert.Equal(t, GoalCustomerRetention, goal)
}

func TestParseCategories_Invalid(t *testing.T) {
	_, err := ParseIndustry("aerospace")
	require.Error(t, err)

	var catErr *InvalidCategoryError
	require.True(t, errors.As(err, &catErr))
	assert.Equal(t, "industry", catErr.Field)
	assert.Equal(t, "aerospace", catErr.Value)
	assert.ErrorIs(t, err, ErrInvalidCategory)
	assert.Equal(t, `invalid category "aerospace" for industry`, err.Error())

	_, err = ParseCompanySize("")
	assert.ErrorIs(t, err, ErrInvalidCategory)
	_, err = ParseAIAdoption("full")
	assert.ErrorIs(t, err, ErrInvalidCategory)
	_, err = ParseGoal("market share")
	assert.ErrorIs(t, err, ErrInvalidCategory)
}

func TestOptionsCoverEveryCategory(t *testing.T) {
	assert.Len(t, IndustryOptions, 6)
	assert.Len(t, CompanySizeOptions, 4)
	assert.Len(t, AIAdoptionOptions, 3)
	assert.Len(t, GoalOptions, 4)
}
