package domain

import "strings"

type Industry string

const (
	IndustryTechnology    Industry = "technology"
	IndustryRetail        Industry = "retail"
	IndustryHealthcare    Industry = "healthcare"
	IndustryFinancial     Industry = "financial"
	IndustryManufacturing Industry = "manufacturing"
	IndustryOther         Industry = "other"
)

type CompanySize string

const (
	SizeSmall      CompanySize = "small"
	SizeMedium     CompanySize = "medium"
	SizeLarge      CompanySize = "large"
	SizeEnterprise CompanySize = "enterprise"
)

type AIAdoption string

const (
	AdoptionMinimal  AIAdoption = "minimal"
	AdoptionModerate AIAdoption = "moderate"
	AdoptionAdvanced AIAdoption = "advanced"
)

type Goal string

const (
	GoalSales             Goal = "sales"
	GoalMarketShare       Goal = "market_share"
	GoalCustomerRetention Goal = "customer_retention"
	GoalBrandAwareness    Goal = "brand_awareness"
)

// Option is a selectable category value with its display label.
type Option struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

var IndustryOptions = []Option{
	{Value: string(IndustryTechnology), Label: "Technology"},
	{Value: string(IndustryRetail), Label: "Retail & E-commerce"},
	{Value: string(IndustryHealthcare), Label: "Healthcare"},
	{Value: string(IndustryFinancial), Label: "Financial Services"},
	{Value: string(IndustryManufacturing), Label: "Manufacturing"},
	{Value: string(IndustryOther), Label: "Other"},
}

var CompanySizeOptions = []Option{
	{Value: string(SizeSmall), Label: "Small (1-50 employees)"},
	{Value: string(SizeMedium), Label: "Medium (51-500 employees)"},
	{Value: string(SizeLarge), Label: "Large (501-5000 employees)"},
	{Value: string(SizeEnterprise), Label: "Enterprise (5000+ employees)"},
}

var AIAdoptionOptions = []Option{
	{Value: string(AdoptionMinimal), Label: "Minimal (Basic automation only)"},
	{Value: string(AdoptionModerate), Label: "Moderate (Some AI tools deployed)"},
	{Value: string(AdoptionAdvanced), Label: "Advanced (Extensive AI integration)"},
}

var GoalOptions = []Option{
	{Value: string(GoalSales), Label: "Drive Sales Growth"},
	{Value: string(GoalMarketShare), Label: "Increase Market Share"},
	{Value: string(GoalCustomerRetention), Label: "Improve Customer Retention"},
	{Value: string(GoalBrandAwareness), Label: "Enhance Brand Awareness"},
}

func hasOption(options []Option, value string) bool {
	for _, o := range options {
		if o.Value == value {
			return true
		}
	}
	return false
}

func normalize(value string) string {
	return strings.ToLower(strings.TrimSpace(value))
}

func ParseIndustry(value string) (Industry, error) {
	v := normalize(value)
	if !hasOption(IndustryOptions, v) {
		return "", &InvalidCategoryError{Field: "industry", Value: value}
	}
	return Industry(v), nil
}

func ParseCompanySize(value string) (CompanySize, error) {
	v := normalize(value)
	if !hasOption(CompanySizeOptions, v) {
		return "", &InvalidCategoryError{Field: "companySize", Value: value}
	}
	return CompanySize(v), nil
}

func ParseAIAdoption(value string) (AIAdoption, error) {
	v := normalize(value)
	if !hasOption(AIAdoptionOptions, v) {
		return "", &InvalidCategoryError{Field: "aiAdoption", Value: value}
	}
	return AIAdoption(v), nil
}

func ParseGoal(value string) (Goal, error) {
	v := normalize(value)
	if !hasOption(GoalOptions, v) {
		return "", &InvalidCategoryError{Field: "primaryGoal", Value: value}
	}
	return Goal(v), nil
}
