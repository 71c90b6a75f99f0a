package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEstimateCommand_PrintsReport(t *testing.T) {
	var out bytes.Buffer
	cli := New(&out)
	cli.SetArgs([]string{
		"estimate",
		"--industry", "technology",
		"--company-size", "medium",
		"--marketing-budget", "100000",
	})

	require.NoError(t, cli.Execute())

	report := out.String()
	assert.Contains(t, report, "$624,000 (ROI 6.2x)")
	assert.Contains(t, report, "$988,833 (ROI 10.1x)")
	assert.Contains(t, report, "+58.5%")
	assert.Contains(t, report, "Implementation time:  4 months")
	assert.Contains(t, report, "Market Expansion Analyzer [Very High Impact, Long Term]")
	assert.NotContains(t, report, "Implementation Resources")
}

func TestEstimateCommand_Details(t *testing.T) {
	var out bytes.Buffer
	cli := New(&out)
	cli.SetArgs([]string{
		"estimate",
		"--industry", "healthcare",
		"--company-size", "small",
		"--goal", "brand_awareness",
		"--details",
	})

	require.NoError(t, cli.Execute())
	assert.Contains(t, out.String(), "=== Implementation Resources ===")
	assert.Contains(t, out.String(), "$45,000/year (0.5 FTE)")
}

func TestEstimateCommand_WithoutAICosts(t *testing.T) {
	var out bytes.Buffer
	cli := New(&out)
	cli.SetArgs([]string{
		"estimate",
		"--industry", "technology",
		"--company-size", "medium",
		"--include-ai-costs=false",
	})

	require.NoError(t, cli.Execute())
	assert.NotContains(t, out.String(), "=== AI Implementation ===")
	assert.Contains(t, out.String(), "$1,007,500")
}

func TestEstimateCommand_Errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"missing required flag", []string{"estimate", "--industry", "technology"}},
		{"invalid category", []string{"estimate", "--industry", "aerospace", "--company-size", "small"}},
		{"budget over ceiling", []string{"estimate", "--industry", "retail", "--company-size", "small", "--marketing-budget", "900000"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cli := New(&bytes.Buffer{})
			cli.SetArgs(tt.args)
			assert.Error(t, cli.Execute())
		})
	}
}
