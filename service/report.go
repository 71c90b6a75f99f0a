package service

import (
	"roi-calculator/domain"
)

type ChartPoint struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
}

type BreakdownItem struct {
	Label string `json:"label"`
	Cost  string `json:"cost"`
}

type BreakdownSection struct {
	Title string          `json:"title"`
	Items []BreakdownItem `json:"items"`
}

// Report is the display view of one computation.
type Report struct {
	CurrentReturn        string             `json:"currentReturn"`
	ProjectedReturn      string             `json:"projectedReturn"`
	CurrentROI           string             `json:"currentROI"`
	ProjectedROI         string             `json:"projectedROI"`
	Improvement          string             `json:"improvement"`
	MarketShareImpact    string             `json:"marketShareImpact"`
	BudgetShareOfRevenue float64            `json:"budgetShareOfRevenue"`
	AIImplementationCost string             `json:"aiImplementationCost,omitempty"`
	MonthlyAICost        string             `json:"monthlyAICost,omitempty"`
	FirstYearAICost      string             `json:"firstYearAICost,omitempty"`
	ImplementationTime   int                `json:"implementationTime,omitempty"`
	AmortizationPeriod   string             `json:"amortizationPeriod,omitempty"`
	Chart                []ChartPoint       `json:"chart"`
	Breakdown            []BreakdownSection `json:"breakdown,omitempty"`
	Strategies           []domain.Strategy  `json:"strategies"`
}

func BuildReport(input domain.Input, result domain.Result) Report {
	report := Report{
		CurrentReturn:     FormatCurrency(result.CurrentReturn),
		ProjectedReturn:   FormatCurrency(result.ProjectedReturn),
		CurrentROI:        FormatMultiple(result.CurrentROI),
		ProjectedROI:      FormatMultiple(result.ProjectedROI),
		Improvement:       FormatPercent(result.Improvement),
		MarketShareImpact: FormatPercent(result.MarketShareImpact),
		Chart: []ChartPoint{
			{Name: "Current ROI", Value: roundTo1Decimal(result.CurrentROI)},
			{Name: "AI-Enhanced ROI", Value: roundTo1Decimal(result.ProjectedROI)},
		},
		Strategies: result.Strategies,
	}

	if input.AnnualRevenue > 0 {
		report.BudgetShareOfRevenue = roundTo1Decimal(input.MarketingBudget / input.AnnualRevenue * 100)
	}

	if input.IncludeAICosts {
		report.AIImplementationCost = FormatCurrency(result.AIImplementationCost)
		report.MonthlyAICost = FormatCurrency(result.MonthlyAICost)
		report.FirstYearAICost = FormatCurrency(result.FirstYearAICost)
		report.ImplementationTime = result.ImplementationTime
		report.AmortizationPeriod = "3 years"
		report.Breakdown = InvestmentBreakdown(input.CompanySize)
	}

	return report
}
