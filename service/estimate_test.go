package service

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"roi-calculator/domain"
)

func techMediumInput() domain.Input {
	return domain.Input{
		Industry:        domain.IndustryTechnology,
		CompanySize:     domain.SizeMedium,
		AnnualRevenue:   1_000_000,
		MarketingBudget: 100_000,
		AIAdoption:      domain.AdoptionModerate,
		PrimaryGoal:     domain.GoalMarketShare,
		IncludeAICosts:  true,
	}
}

func TestEstimate_TechnologyMediumMarketShare(t *testing.T) {
	result, err := Estimate(techMediumInput())
	require.NoError(t, err)

	assert.InDelta(t, 6.24, result.CurrentROI, 1e-9)
	assert.InDelta(t, 10.075, result.ProjectedROI, 1e-9)
	assert.InDelta(t, 84_000, result.AIImplementationCost, 1e-6)
	assert.InDelta(t, 2333.33, result.MonthlyAICost, 0.01)
	assert.Equal(t, 4, result.ImplementationTime)
	assert.InDelta(t, 18_666.67, result.FirstYearAICost, 0.01)
	assert.InDelta(t, 624_000, result.CurrentReturn, 1e-6)
	assert.InDelta(t, 988_833.33, result.ProjectedReturn, 0.01)
	assert.InDelta(t, 58.47, result.Improvement, 0.01)
	assert.InDelta(t, 58.467*0.18, result.MarketShareImpact, 0.01)
}

func TestEstimate_IsDeterministic(t *testing.T) {
	input := techMediumInput()

	first, err := Estimate(input)
	require.NoError(t, err)
	second, err := Estimate(input)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestEstimate_ProjectedROINeverTrailsCurrent(t *testing.T) {
	for industry := range industryROI {
		for size := range sizeFactor {
			for adoption := range aiImpactFactor {
				for goal := range goalMultiplier {
					input := domain.Input{
						Industry:        industry,
						CompanySize:     size,
						AnnualRevenue:   1_000_000,
						MarketingBudget: 100_000,
						AIAdoption:      adoption,
						PrimaryGoal:     goal,
					}
					result, err := Estimate(input)
					require.NoError(t, err)
					assert.GreaterOrEqual(t, result.ProjectedROI, result.CurrentROI,
						"%s/%s/%s/%s", industry, size, adoption, goal)
				}
			}
		}
	}
}

func TestEstimate_ExcludingAICostsZeroesCosts(t *testing.T) {
	input := techMediumInput()
	input.IncludeAICosts = false

	result, err := Estimate(input)
	require.NoError(t, err)

	assert.Zero(t, result.AIImplementationCost)
	assert.Zero(t, result.MonthlyAICost)
	assert.Zero(t, result.FirstYearAICost)
	assert.InDelta(t, 1_007_500, result.ProjectedReturn, 1e-6)
	assert.Equal(t, 4, result.ImplementationTime)
}

func TestEstimate_EnterpriseImplementationWindow(t *testing.T) {
	input := techMediumInput()
	input.CompanySize = domain.SizeEnterprise
	input.AIAdoption = domain.AdoptionMinimal

	result, err := Estimate(input)
	require.NoError(t, err)

	assert.InDelta(t, 500_000, result.AIImplementationCost, 1e-6)
	assert.Equal(t, 9, result.ImplementationTime)
	assert.InDelta(t, 500_000.0/36*3, result.FirstYearAICost, 1e-6)
}

func TestEstimate_InvalidCategory(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*domain.Input)
		field  string
	}{
		{"industry", func(in *domain.Input) { in.Industry = "aerospace" }, "industry"},
		{"empty industry", func(in *domain.Input) { in.Industry = "" }, "industry"},
		{"company size", func(in *domain.Input) { in.CompanySize = "huge" }, "companySize"},
		{"adoption", func(in *domain.Input) { in.AIAdoption = "total" }, "aiAdoption"},
		{"goal", func(in *domain.Input) { in.PrimaryGoal = "profit" }, "primaryGoal"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := techMediumInput()
			tt.mutate(&input)

			_, err := Estimate(input)
			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrInvalidCategory)

			var catErr *domain.InvalidCategoryError
			require.True(t, errors.As(err, &catErr))
			assert.Equal(t, tt.field, catErr.Field)
		})
	}
}

func TestEstimate_ZeroBudget(t *testing.T) {
	input := techMediumInput()
	input.MarketingBudget = 0

	_, err := Estimate(input)
	assert.ErrorIs(t, err, domain.ErrZeroCurrentReturn)
}

func titles(strategies []domain.Strategy) []string {
	out := make([]string, 0, len(strategies))
	for _, s := range strategies {
		out = append(out, s.Title)
	}
	return out
}

func TestRecommendStrategies(t *testing.T) {
	tests := []struct {
		name     string
		industry domain.Industry
		goal     domain.Goal
		want     []string
	}{
		{
			name:     "brand awareness other",
			industry: domain.IndustryOther,
			goal:     domain.GoalBrandAwareness,
			want:     []string{strategyAttribution.Title},
		},
		{
			name:     "market share financial",
			industry: domain.IndustryFinancial,
			goal:     domain.GoalMarketShare,
			want: []string{
				strategyLeadScoring.Title,
				strategyCompetitiveIntel.Title,
				strategyMarketExpansion.Title,
				strategyCustomerJourney.Title,
				strategyAttribution.Title,
			},
		},
		{
			name:     "sales retail",
			industry: domain.IndustryRetail,
			goal:     domain.GoalSales,
			want: []string{
				strategyLeadScoring.Title,
				strategyCompetitiveIntel.Title,
				strategyAttribution.Title,
			},
		},
		{
			name:     "retention healthcare",
			industry: domain.IndustryHealthcare,
			goal:     domain.GoalCustomerRetention,
			want: []string{
				strategyCustomerJourney.Title,
				strategyAttribution.Title,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RecommendStrategies(domain.Input{Industry: tt.industry, PrimaryGoal: tt.goal})
			assert.Equal(t, tt.want, titles(got))
		})
	}
}

func TestRecommendStrategies_Tiers(t *testing.T) {
	got := RecommendStrategies(domain.Input{Industry: domain.IndustryTechnology, PrimaryGoal: domain.GoalMarketShare})
	require.Len(t, got, 4)

	assert.Equal(t, ImpactVeryHigh, got[2].Impact)
	assert.Equal(t, TimeframeLong, got[2].Timeframe)
	assert.Equal(t, ImpactVeryHigh, got[3].Impact)
	assert.Equal(t, TimeframeMedium, got[3].Timeframe)
}
