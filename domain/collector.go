package domain

import (
	"fmt"
	"math"
	"strings"

	"github.com/spf13/cast"
)

type Stage string

const (
	StageCollecting Stage = "collecting"
	StageComputed   Stage = "computed"
)

// Estimator maps a collected input to its result.
type Estimator func(Input) (Result, error)

// Collector holds the editable form state of one calculator session.
type Collector struct {
	ID     string  `json:"id"`
	Stage  Stage   `json:"stage"`
	Input  Input   `json:"input"`
	Result *Result `json:"result,omitempty"`
}

func NewCollector(id string) *Collector {
	return &Collector{
		ID:    id,
		Stage: StageCollecting,
		Input: NewInput(),
	}
}

// Ready reports whether estimation is allowed.
func (c *Collector) Ready() bool {
	return c.Input.Industry != "" && c.Input.CompanySize != ""
}

// SetField updates one input field from its text form.
// Numeric text that does not parse to a finite number becomes 0.
func (c *Collector) SetField(name, value string) error {
	if c.Stage == StageComputed {
		return ErrSessionComputed
	}

	switch name {
	case "industry":
		if strings.TrimSpace(value) == "" {
			c.Input.Industry = ""
			return nil
		}
		v, err := ParseIndustry(value)
		if err != nil {
			return err
		}
		c.Input.Industry = v
	case "companySize":
		if strings.TrimSpace(value) == "" {
			c.Input.CompanySize = ""
			return nil
		}
		v, err := ParseCompanySize(value)
		if err != nil {
			return err
		}
		c.Input.CompanySize = v
	case "aiAdoption":
		v, err := ParseAIAdoption(value)
		if err != nil {
			return err
		}
		c.Input.AIAdoption = v
	case "primaryGoal":
		v, err := ParseGoal(value)
		if err != nil {
			return err
		}
		c.Input.PrimaryGoal = v
	case "annualRevenue":
		c.Input.AnnualRevenue = coerceNumber(value)
	case "marketingBudget":
		c.Input.MarketingBudget = coerceNumber(value)
	case "includeAICosts":
		v, err := cast.ToBoolE(strings.TrimSpace(value))
		if err != nil {
			return fmt.Errorf("%w: includeAICosts %q", ErrInvalidValue, value)
		}
		c.Input.IncludeAICosts = v
	default:
		return fmt.Errorf("%w: %s", ErrUnknownField, name)
	}
	return nil
}

// Compute runs the estimator and moves the collector to the computed stage.
func (c *Collector) Compute(estimate Estimator) (Result, error) {
	if c.Stage == StageComputed {
		return Result{}, ErrSessionComputed
	}
	if !c.Ready() {
		return Result{}, ErrNotReady
	}

	result, err := estimate(c.Input)
	if err != nil {
		return Result{}, err
	}

	c.Result = &result
	c.Stage = StageComputed
	return result, nil
}

// Reset drops the result and returns to collecting. The input is kept.
func (c *Collector) Reset() {
	c.Result = nil
	c.Stage = StageCollecting
}

func coerceNumber(value string) float64 {
	v := cast.ToFloat64(strings.TrimSpace(value))
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}
