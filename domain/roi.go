package domain

import "time"

const (
	DefaultAnnualRevenue   = 1_000_000.0
	DefaultMarketingBudget = 100_000.0
)

type Input struct {
	Industry        Industry    `json:"industry"`
	CompanySize     CompanySize `json:"companySize"`
	AnnualRevenue   float64     `json:"annualRevenue"`
	MarketingBudget float64     `json:"marketingBudget"`
	AIAdoption      AIAdoption  `json:"aiAdoption"`
	PrimaryGoal     Goal        `json:"primaryGoal"`
	IncludeAICosts  bool        `json:"includeAICosts"`
}

// NewInput returns the form defaults: no industry or size picked yet, AI costs included.
func NewInput() Input {
	return Input{
		AnnualRevenue:   DefaultAnnualRevenue,
		MarketingBudget: DefaultMarketingBudget,
		AIAdoption:      AdoptionModerate,
		PrimaryGoal:     GoalMarketShare,
		IncludeAICosts:  true,
	}
}

type Strategy struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Impact      string `json:"impact"`
	Timeframe   string `json:"timeframe"`
}

type Result struct {
	CurrentReturn        float64    `json:"currentReturn"`
	ProjectedReturn      float64    `json:"projectedReturn"`
	Improvement          float64    `json:"improvement"`
	MarketShareImpact    float64    `json:"marketShareImpact"`
	CurrentROI           float64    `json:"currentROI"`
	ProjectedROI         float64    `json:"projectedROI"`
	AIImplementationCost float64    `json:"aiImplementationCost"`
	MonthlyAICost        float64    `json:"monthlyAICost"`
	FirstYearAICost      float64    `json:"firstYearAICost"`
	ImplementationTime   int        `json:"implementationTime"`
	Strategies           []Strategy `json:"strategies"`
}

// EstimateRecord is a persisted computation.
type EstimateRecord struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	Input     Input     `json:"input"`
	Result    Result    `json:"result"`
}
