package service

import "roi-calculator/domain"

const (
	MinAnnualRevenue     = 100_000.0
	MaxAnnualRevenue     = 100_000_000.0
	MaxBudgetRevenueRate = 0.30 // budget may not exceed 30% of revenue

	AmortizationMonths = 36
	MonthsPerYear      = 12

	DefaultListLimit = 50
	MaxListLimit     = 500
)

type roiRange struct {
	Min float64
	Max float64
	Avg float64
}

// Base marketing ROI by industry. Only Avg feeds the estimate.
var industryROI = map[domain.Industry]roiRange{
	domain.IndustryTechnology:    {Min: 2.8, Max: 8.5, Avg: 5.2},
	domain.IndustryRetail:        {Min: 1.9, Max: 6.2, Avg: 3.8},
	domain.IndustryHealthcare:    {Min: 1.8, Max: 5.5, Avg: 3.4},
	domain.IndustryFinancial:     {Min: 2.1, Max: 7.8, Avg: 4.3},
	domain.IndustryManufacturing: {Min: 1.6, Max: 4.8, Avg: 2.9},
	domain.IndustryOther:         {Min: 1.5, Max: 6.0, Avg: 3.5},
}

var sizeFactor = map[domain.CompanySize]float64{
	domain.SizeSmall:      0.85,
	domain.SizeMedium:     1.0,
	domain.SizeLarge:      1.15,
	domain.SizeEnterprise: 1.25,
}

type aiImpact struct {
	Current   float64
	Potential float64
}

// Potential >= Current for every tier, so projected ROI never trails current ROI
// unless the goal multiplier is below one.
var aiImpactFactor = map[domain.AIAdoption]aiImpact{
	domain.AdoptionMinimal:  {Current: 1.0, Potential: 1.35},
	domain.AdoptionModerate: {Current: 1.2, Potential: 1.55},
	domain.AdoptionAdvanced: {Current: 1.4, Potential: 1.7},
}

var goalMultiplier = map[domain.Goal]float64{
	domain.GoalSales:             1.15,
	domain.GoalMarketShare:       1.25,
	domain.GoalCustomerRetention: 1.3,
	domain.GoalBrandAwareness:    0.85,
}

var aiCostBase = map[domain.CompanySize]float64{
	domain.SizeSmall:      50_000,
	domain.SizeMedium:     120_000,
	domain.SizeLarge:      250_000,
	domain.SizeEnterprise: 500_000,
}

var aiAdoptionDiscount = map[domain.AIAdoption]float64{
	domain.AdoptionMinimal:  1.0,
	domain.AdoptionModerate: 0.7,
	domain.AdoptionAdvanced: 0.4,
}

// Months before the AI program starts paying off.
var implementationMonths = map[domain.CompanySize]int{
	domain.SizeSmall:      3,
	domain.SizeMedium:     4,
	domain.SizeLarge:      6,
	domain.SizeEnterprise: 9,
}

var marketShareBase = map[domain.Industry]float64{
	domain.IndustryTechnology:    0.18,
	domain.IndustryRetail:        0.15,
	domain.IndustryHealthcare:    0.12,
	domain.IndustryFinancial:     0.11,
	domain.IndustryManufacturing: 0.13,
	domain.IndustryOther:         0.14,
}

var marketShareSizeFactor = map[domain.CompanySize]float64{
	domain.SizeSmall:      1.4,
	domain.SizeMedium:     1.0,
	domain.SizeLarge:      0.7,
	domain.SizeEnterprise: 0.5,
}
