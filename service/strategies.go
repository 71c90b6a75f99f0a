package service

import "roi-calculator/domain"

const (
	ImpactHigh     = "High"
	ImpactVeryHigh = "Very High"

	TimeframeMedium = "Medium"
	TimeframeLong   = "Long"
)

var (
	strategyLeadScoring = domain.Strategy{
		Title:       "AI-Powered Predictive Lead Scoring",
		Description: "Implement machine learning to identify high-potential leads most likely to convert.",
		Impact:      ImpactHigh,
		Timeframe:   TimeframeMedium,
	}
	strategyCompetitiveIntel = domain.Strategy{
		Title:       "Competitive Intelligence Dashboard",
		Description: "Deploy AI tools to monitor competitor positioning and pricing in real-time.",
		Impact:      ImpactHigh,
		Timeframe:   TimeframeMedium,
	}
	strategyMarketExpansion = domain.Strategy{
		Title:       "Market Expansion Analyzer",
		Description: "Use AI to identify untapped market segments with highest growth potential.",
		Impact:      ImpactVeryHigh,
		Timeframe:   TimeframeLong,
	}
	strategyCustomerJourney = domain.Strategy{
		Title:       "Personalized Customer Journey Orchestration",
		Description: "Deploy AI to create individualized customer experiences across all touchpoints.",
		Impact:      ImpactHigh,
		Timeframe:   TimeframeMedium,
	}
	strategyAttribution = domain.Strategy{
		Title:       "Integrated Marketing Attribution & Optimization",
		Description: "Implement advanced attribution modeling to understand true ROI of each channel.",
		Impact:      ImpactVeryHigh,
		Timeframe:   TimeframeMedium,
	}
)

// RecommendStrategies selects the canned strategies for an input.
// Rules are evaluated in a fixed order; attribution always comes last.
func RecommendStrategies(input domain.Input) []domain.Strategy {
	strategies := []domain.Strategy{}

	if input.PrimaryGoal == domain.GoalSales || input.PrimaryGoal == domain.GoalMarketShare {
		strategies = append(strategies, strategyLeadScoring, strategyCompetitiveIntel)
	}
	if input.PrimaryGoal == domain.GoalMarketShare {
		strategies = append(strategies, strategyMarketExpansion)
	}
	if input.Industry == domain.IndustryFinancial || input.Industry == domain.IndustryHealthcare {
		strategies = append(strategies, strategyCustomerJourney)
	}

	return append(strategies, strategyAttribution)
}
