package service

import (
	"roi-calculator/domain"
)

func lookup[K ~string, V any](table map[K]V, key K, field string) (V, error) {
	v, ok := table[key]
	if !ok {
		var zero V
		return zero, &domain.InvalidCategoryError{Field: field, Value: string(key)}
	}
	return v, nil
}

// Estimate projects marketing returns with and without AI-enhanced marketing.
// It is a pure function of its input.
func Estimate(input domain.Input) (domain.Result, error) {
	base, err := lookup(industryROI, input.Industry, "industry")
	if err != nil {
		return domain.Result{}, err
	}
	size, err := lookup(sizeFactor, input.CompanySize, "companySize")
	if err != nil {
		return domain.Result{}, err
	}
	impact, err := lookup(aiImpactFactor, input.AIAdoption, "aiAdoption")
	if err != nil {
		return domain.Result{}, err
	}
	goal, err := lookup(goalMultiplier, input.PrimaryGoal, "primaryGoal")
	if err != nil {
		return domain.Result{}, err
	}

	sizeAdjustedROI := base.Avg * size
	currentROI := sizeAdjustedROI * impact.Current
	projectedROI := sizeAdjustedROI * impact.Potential * goal

	months := implementationMonths[input.CompanySize]

	var aiImplementationCost float64
	if input.IncludeAICosts {
		aiImplementationCost = aiCostBase[input.CompanySize] * aiAdoptionDiscount[input.AIAdoption]
	}
	monthlyAICost := aiImplementationCost / AmortizationMonths
	firstYearAICost := monthlyAICost * float64(MonthsPerYear-months)

	currentReturn := input.MarketingBudget * currentROI
	grossProjected := input.MarketingBudget * projectedROI
	projectedReturn := grossProjected - firstYearAICost

	if currentReturn == 0 {
		return domain.Result{}, domain.ErrZeroCurrentReturn
	}
	improvement := (projectedReturn - currentReturn) / currentReturn * 100

	marketShareImpact := improvement *
		marketShareBase[input.Industry] *
		marketShareSizeFactor[input.CompanySize]

	return domain.Result{
		CurrentReturn:        currentReturn,
		ProjectedReturn:      projectedReturn,
		Improvement:          improvement,
		MarketShareImpact:    marketShareImpact,
		CurrentROI:           currentROI,
		ProjectedROI:         projectedROI,
		AIImplementationCost: aiImplementationCost,
		MonthlyAICost:        monthlyAICost,
		FirstYearAICost:      firstYearAICost,
		ImplementationTime:   months,
		Strategies:           RecommendStrategies(input),
	}, nil
}
