package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"roi-calculator/domain"
	"roi-calculator/repository"
)

func TestSessionLifecycle(t *testing.T) {
	ctx := context.Background()
	sessions := NewSessionService(repository.NewMemoryCache(), time.Hour)

	created, err := sessions.Create(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.StageCollecting, created.Stage)
	assert.False(t, created.Ready())

	_, err = sessions.Compute(ctx, created.ID)
	assert.ErrorIs(t, err, domain.ErrNotReady)

	_, err = sessions.SetField(ctx, created.ID, "industry", "technology")
	require.NoError(t, err)
	c, err := sessions.SetField(ctx, created.ID, "companySize", "medium")
	require.NoError(t, err)
	assert.True(t, c.Ready())

	c, err = sessions.Compute(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StageComputed, c.Stage)
	require.NotNil(t, c.Result)
	assert.InDelta(t, 624_000, c.Result.CurrentReturn, 1e-6)

	_, err = sessions.SetField(ctx, created.ID, "marketingBudget", "200000")
	assert.ErrorIs(t, err, domain.ErrSessionComputed)

	c, err = sessions.Reset(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StageCollecting, c.Stage)
	assert.Nil(t, c.Result)
	assert.Equal(t, domain.IndustryTechnology, c.Input.Industry)

	stored, err := sessions.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, c, stored)
}

func TestSessionCompute_RangeChecked(t *testing.T) {
	ctx := context.Background()
	sessions := NewSessionService(repository.NewMemoryCache(), time.Hour)

	c, err := sessions.Create(ctx)
	require.NoError(t, err)
	_, err = sessions.SetField(ctx, c.ID, "industry", "retail")
	require.NoError(t, err)
	_, err = sessions.SetField(ctx, c.ID, "companySize", "small")
	require.NoError(t, err)
	_, err = sessions.SetField(ctx, c.ID, "marketingBudget", "not a number")
	require.NoError(t, err)

	_, err = sessions.Compute(ctx, c.ID)
	assert.ErrorIs(t, err, domain.ErrInvalidValue)

	stored, err := sessions.Get(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StageCollecting, stored.Stage)
}

func TestSessionGet_NotFound(t *testing.T) {
	sessions := NewSessionService(repository.NewMemoryCache(), time.Hour)

	_, err := sessions.Get(context.Background(), "nope")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// slowCache widens the gap between reading and writing a session.
type slowCache struct {
	repository.CacheRepository
	delay time.Duration
}

func (c slowCache) Get(ctx context.Context, key string) (string, bool) {
	val, ok := c.CacheRepository.Get(ctx, key)
	time.Sleep(c.delay)
	return val, ok
}

func TestSessionSetField_ConcurrentUpdatesAllLand(t *testing.T) {
	ctx := context.Background()
	memory := repository.NewMemoryCache()
	defer memory.Stop()
	sessions := NewSessionService(slowCache{CacheRepository: memory, delay: 5 * time.Millisecond}, time.Hour)

	c, err := sessions.Create(ctx)
	require.NoError(t, err)

	fields := map[string]string{
		"industry":        "healthcare",
		"companySize":     "large",
		"annualRevenue":   "2500000",
		"marketingBudget": "300000",
		"aiAdoption":      "advanced",
		"primaryGoal":     "sales",
		"includeAICosts":  "false",
	}

	var wg sync.WaitGroup
	for name, value := range fields {
		wg.Add(1)
		go func(name, value string) {
			defer wg.Done()
			_, err := sessions.SetField(ctx, c.ID, name, value)
			assert.NoError(t, err)
		}(name, value)
	}
	wg.Wait()

	stored, err := sessions.Get(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.IndustryHealthcare, stored.Input.Industry)
	assert.Equal(t, domain.SizeLarge, stored.Input.CompanySize)
	assert.Equal(t, 2_500_000.0, stored.Input.AnnualRevenue)
	assert.Equal(t, 300_000.0, stored.Input.MarketingBudget)
	assert.Equal(t, domain.AdoptionAdvanced, stored.Input.AIAdoption)
	assert.Equal(t, domain.GoalSales, stored.Input.PrimaryGoal)
	assert.False(t, stored.Input.IncludeAICosts)
}
