package cli

import (
	"fmt"
	"io"
	"os"
	"text/template"

	"roi-calculator/domain"
	"roi-calculator/service"
)

const reportTemplate = `
AI-Enhanced Marketing Potential
Industry: {{.Input.Industry}}  Company size: {{.Input.CompanySize}}
Marketing budget: {{.Budget}} ({{printf "%.1f" .Report.BudgetShareOfRevenue}}% of revenue)

Current estimated return:   {{.Report.CurrentReturn}} (ROI {{.Report.CurrentROI}})
Projected return with AI:   {{.Report.ProjectedReturn}} (ROI {{.Report.ProjectedROI}})
{{- if .Input.IncludeAICosts}}
  after first-year AI costs of {{.Report.FirstYearAICost}}
{{- end}}
Potential improvement:      {{.Report.Improvement}}
Est. market share impact:   {{.Report.MarketShareImpact}}
{{if .Input.IncludeAICosts}}
=== AI Implementation ===
Implementation cost:  {{.Report.AIImplementationCost}}
Monthly cost:         {{.Report.MonthlyAICost}}
Implementation time:  {{.Report.ImplementationTime}} months
Amortization period:  {{.Report.AmortizationPeriod}}
{{end}}
=== Recommended Strategies ===
{{range .Report.Strategies}}
- {{.Title}} [{{.Impact}} Impact, {{.Timeframe}} Term]
  {{.Description}}
{{end}}
{{- range .Report.Breakdown}}
=== {{.Title}} ===
{{range .Items}}- {{.Label}}: {{.Cost}}
{{end}}
{{- end}}
`

// Reporter prints a computed estimate as text.
type Reporter struct {
	writer io.Writer
}

func NewReporter(writer io.Writer) *Reporter {
	if writer == nil {
		writer = os.Stdout
	}
	return &Reporter{writer: writer}
}

func (r *Reporter) Handle(input domain.Input, report service.Report) error {
	t, err := template.New("report").Parse(reportTemplate)
	if err != nil {
		return fmt.Errorf("failed to parse template: %w", err)
	}

	return t.Execute(r.writer, struct {
		Input  domain.Input
		Report service.Report
		Budget string
	}{
		Input:  input,
		Report: report,
		Budget: service.FormatCurrency(input.MarketingBudget),
	})
}
