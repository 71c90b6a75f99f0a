package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"roi-calculator/domain"
	"roi-calculator/repository"
)

const estimateCachePrefix = "roi:estimate:"

type ROIService struct {
	repo     repository.EstimateRepository
	cache    repository.CacheRepository
	cacheTTL time.Duration
	now      func() time.Time
}

// NewROIService creates a ROIService backed by the given repository and cache.
func NewROIService(
	repo repository.EstimateRepository,
	cache repository.CacheRepository,
	cacheTTL time.Duration,
) *ROIService {
	return &ROIService{
		repo:     repo,
		cache:    cache,
		cacheTTL: cacheTTL,
		now:      time.Now,
	}
}

// ValidateInput checks presence and ranges ahead of estimation.
func ValidateInput(input domain.Input) error {
	if input.Industry == "" {
		return fmt.Errorf("%w: industry", domain.ErrMissingField)
	}
	if input.CompanySize == "" {
		return fmt.Errorf("%w: companySize", domain.ErrMissingField)
	}
	if input.AnnualRevenue < MinAnnualRevenue || input.AnnualRevenue > MaxAnnualRevenue {
		return fmt.Errorf("%w: annualRevenue must be between %s and %s",
			domain.ErrInvalidValue, FormatCurrency(MinAnnualRevenue), FormatCurrency(MaxAnnualRevenue))
	}
	if input.MarketingBudget <= 0 {
		return fmt.Errorf("%w: marketingBudget must be positive", domain.ErrInvalidValue)
	}
	if maxBudget := input.AnnualRevenue * MaxBudgetRevenueRate; input.MarketingBudget > maxBudget {
		return fmt.Errorf("%w: marketingBudget exceeds 30%% of annual revenue (%s)",
			domain.ErrInvalidValue, FormatCurrency(maxBudget))
	}
	return nil
}

// Calculate validates the input, estimates it and stores the record.
func (s *ROIService) Calculate(ctx context.Context, input domain.Input) (domain.EstimateRecord, error) {
	logger := zerolog.Ctx(ctx)

	if err := ValidateInput(input); err != nil {
		return domain.EstimateRecord{}, err
	}

	result, err := s.estimateCached(ctx, input)
	if err != nil {
		return domain.EstimateRecord{}, err
	}

	record := domain.EstimateRecord{
		ID:        uuid.NewString(),
		CreatedAt: s.now().UTC(),
		Input:     input,
		Result:    result,
	}

	// Not critical if it fails.
	if err := s.repo.Save(ctx, record); err != nil {
		logger.Warn().Err(err).Str("id", record.ID).Msg("failed to save estimate")
	}

	logger.Debug().
		Str("id", record.ID).
		Str("industry", string(input.Industry)).
		Str("company_size", string(input.CompanySize)).
		Float64("improvement", result.Improvement).
		Msg("estimate calculated")

	return record, nil
}

func (s *ROIService) Get(ctx context.Context, id string) (domain.EstimateRecord, error) {
	return s.repo.Get(ctx, id)
}

func (s *ROIService) List(ctx context.Context, limit int) ([]domain.EstimateRecord, error) {
	if limit <= 0 {
		limit = DefaultListLimit
	}
	if limit > MaxListLimit {
		limit = MaxListLimit
	}
	return s.repo.List(ctx, limit)
}

// estimateCached memoizes Estimate by input; the estimate is pure so entries never go stale.
func (s *ROIService) estimateCached(ctx context.Context, input domain.Input) (domain.Result, error) {
	logger := zerolog.Ctx(ctx)

	key, err := estimateCacheKey(input)
	if err != nil {
		return domain.Result{}, err
	}

	if raw, ok := s.cache.Get(ctx, key); ok {
		var cached domain.Result
		if err := json.Unmarshal([]byte(raw), &cached); err == nil {
			return cached, nil
		}
		logger.Warn().Str("key", key).Msg("discarding unreadable cached estimate")
	}

	result, err := Estimate(input)
	if err != nil {
		return domain.Result{}, err
	}

	if raw, err := json.Marshal(result); err == nil {
		if err := s.cache.Set(ctx, key, string(raw), s.cacheTTL); err != nil {
			logger.Warn().Err(err).Msg("failed to cache estimate")
		}
	}
	return result, nil
}

func estimateCacheKey(input domain.Input) (string, error) {
	raw, err := json.Marshal(input)
	if err != nil {
		return "", fmt.Errorf("encode cache key: %w", err)
	}
	return estimateCachePrefix + string(raw), nil
}
