package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"roi-calculator/domain"
	"roi-calculator/service"
)

type estimateCmd struct {
	industry        string
	companySize     string
	annualRevenue   float64
	marketingBudget float64
	aiAdoption      string
	primaryGoal     string
	includeAICosts  bool
	details         bool
}

func (cli *CLI) newEstimateCmd() *cobra.Command {
	ec := &estimateCmd{}
	cmd := &cobra.Command{
		Use:   "estimate",
		Short: "Estimate AI-enhanced marketing ROI and print a report",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return ec.run(cmd)
		},
	}

	cmd.Flags().StringVar(&ec.industry, "industry", "", "Industry (technology, retail, healthcare, financial, manufacturing, other)")
	cmd.Flags().StringVar(&ec.companySize, "company-size", "", "Company size (small, medium, large, enterprise)")
	cmd.Flags().Float64Var(&ec.annualRevenue, "annual-revenue", domain.DefaultAnnualRevenue, "Annual revenue in USD")
	cmd.Flags().Float64Var(&ec.marketingBudget, "marketing-budget", domain.DefaultMarketingBudget, "Marketing budget in USD")
	cmd.Flags().StringVar(&ec.aiAdoption, "ai-adoption", string(domain.AdoptionModerate), "Current AI adoption (minimal, moderate, advanced)")
	cmd.Flags().StringVar(&ec.primaryGoal, "goal", string(domain.GoalMarketShare), "Primary goal (sales, market_share, customer_retention, brand_awareness)")
	cmd.Flags().BoolVar(&ec.includeAICosts, "include-ai-costs", true, "Include AI implementation and staffing costs")
	cmd.Flags().BoolVar(&ec.details, "details", false, "Print the AI investment breakdown")

	_ = cmd.MarkFlagRequired("industry")
	_ = cmd.MarkFlagRequired("company-size")

	return cmd
}

func (ec *estimateCmd) run(cmd *cobra.Command) error {
	c := domain.NewCollector("cli")
	fields := []struct{ name, value string }{
		{"industry", ec.industry},
		{"companySize", ec.companySize},
		{"aiAdoption", ec.aiAdoption},
		{"primaryGoal", ec.primaryGoal},
	}
	for _, f := range fields {
		if err := c.SetField(f.name, f.value); err != nil {
			return err
		}
	}
	c.Input.AnnualRevenue = ec.annualRevenue
	c.Input.MarketingBudget = ec.marketingBudget
	c.Input.IncludeAICosts = ec.includeAICosts

	if err := service.ValidateInput(c.Input); err != nil {
		return err
	}

	result, err := c.Compute(service.Estimate)
	if err != nil {
		return fmt.Errorf("failed to estimate ROI: %w", err)
	}

	report := service.BuildReport(c.Input, result)
	if !ec.details {
		report.Breakdown = nil
	}
	return NewReporter(cmd.OutOrStdout()).Handle(c.Input, report)
}
