package service

import "roi-calculator/domain"

type costTier int

const (
	tierSmall costTier = iota
	tierMedium
	tierLarge
)

func tierFor(size domain.CompanySize) costTier {
	switch size {
	case domain.SizeSmall:
		return tierSmall
	case domain.SizeMedium:
		return tierMedium
	default:
		return tierLarge
	}
}

type tieredItem struct {
	label string
	costs [3]string // indexed by costTier
}

type tieredSection struct {
	title string
	items []tieredItem
}

var investmentSections = []tieredSection{
	{
		title: "AI-Powered Predictive Lead Scoring",
		items: []tieredItem{
			{"Enterprise marketing platform with AI capabilities (HubSpot, Marketo)", [3]string{"$3,600-8,000/year", "$8,000-24,000/year", "$24,000-60,000/year"}},
			{"Custom machine learning model development and training", [3]string{"$15,000-20,000", "$20,000-35,000", "$35,000-80,000"}},
			{"CRM integration and data pipeline setup", [3]string{"$2,500-5,000", "$5,000-12,000", "$12,000-25,000"}},
			{"Historical data preparation and cleaning", [3]string{"$5,000-8,000", "$8,000-15,000", "$15,000-30,000"}},
		},
	},
	{
		title: "Competitive Intelligence Dashboard",
		items: []tieredItem{
			{"AI monitoring tools (e.g., Crayon, Kompyte, Klue)", [3]string{"$6,000-12,000/year", "$12,000-24,000/year", "$24,000-48,000/year"}},
			{"Custom competitive dashboard development", [3]string{"$3,000-5,000", "$5,000-10,000", "$10,000-25,000"}},
			{"Data source integrations and automated collection", [3]string{"$2,000-4,000", "$4,000-8,000", "$8,000-18,000"}},
			{"Alert system configuration and optimization", [3]string{"$1,500-3,000", "$3,000-6,000", "$6,000-12,000"}},
		},
	},
	{
		title: "Market Expansion Analysis",
		items: []tieredItem{
			{"Market intelligence platforms with API access", [3]string{"$3,000-6,000/year", "$6,000-15,000/year", "$15,000-36,000/year"}},
			{"Custom territory/segment opportunity scoring algorithm", [3]string{"$8,000-12,000", "$12,000-22,000", "$22,000-45,000"}},
			{"Industry and regional market data acquisition", [3]string{"$1,500-4,000", "$4,000-12,000", "$12,000-25,000"}},
			{"Opportunity visualization and reporting system", [3]string{"$2,500-5,000", "$5,000-10,000", "$10,000-18,000"}},
		},
	},
	{
		title: "Integrated Marketing Attribution",
		items: []tieredItem{
			{"Multi-touch attribution modeling software", [3]string{"$6,000-12,000/year", "$12,000-24,000/year", "$24,000-60,000/year"}},
			{"Integration with advertising and marketing platforms", [3]string{"$1,500-3,000", "$3,000-8,000", "$8,000-20,000"}},
			{"Custom reporting dashboard development", [3]string{"$3,000-5,000", "$5,000-12,000", "$12,000-25,000"}},
			{"Budget optimization algorithm setup", [3]string{"$2,500-5,000", "$5,000-10,000", "$10,000-22,000"}},
		},
	},
	{
		title: "Implementation Resources",
		items: []tieredItem{
			{"Fractional marketing technologist", [3]string{"$45,000/year (0.5 FTE)", "$90,000/year (1 FTE)", "$180,000-315,000/year (2-3.5 FTE)"}},
			{"Team training and enablement", [3]string{"$2,000-4,000", "$4,000-8,000", "$8,000-20,000"}},
			{"Data architecture consulting", [3]string{"$3,000-6,000", "$6,000-15,000", "$15,000-35,000"}},
			{"Ongoing optimization and support", [3]string{"$800-1,500/month", "$1,500-3,500/month", "$3,500-8,000/month"}},
		},
	},
}

// InvestmentBreakdown lists the typical line items behind the AI implementation
// cost for a company size. Large and enterprise companies share a tier.
func InvestmentBreakdown(size domain.CompanySize) []BreakdownSection {
	tier := tierFor(size)
	sections := make([]BreakdownSection, 0, len(investmentSections))
	for _, s := range investmentSections {
		items := make([]BreakdownItem, 0, len(s.items))
		for _, it := range s.items {
			items = append(items, BreakdownItem{Label: it.label, Cost: it.costs[tier]})
		}
		sections = append(sections, BreakdownSection{Title: s.title, Items: items})
	}
	return sections
}
