package service

import (
	"context"
	"encoding/json"
	"fmt"
	"hash/fnv"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"roi-calculator/domain"
	"roi-calculator/repository"
)

const (
	sessionCachePrefix = "roi:session:"
	sessionLockStripes = 64
)

// SessionService keeps calculator form sessions in the cache. Updates to one session
// are serialized within the process; replicas sharing a Redis cache are not coordinated.
type SessionService struct {
	cache repository.CacheRepository
	ttl   time.Duration
	locks [sessionLockStripes]sync.Mutex
}

func NewSessionService(cache repository.CacheRepository, ttl time.Duration) *SessionService {
	return &SessionService{cache: cache, ttl: ttl}
}

func (s *SessionService) Create(ctx context.Context) (*domain.Collector, error) {
	c := domain.NewCollector(uuid.NewString())
	if err := s.save(ctx, c); err != nil {
		return nil, err
	}
	zerolog.Ctx(ctx).Debug().Str("session", c.ID).Msg("session created")
	return c, nil
}

func (s *SessionService) Get(ctx context.Context, id string) (*domain.Collector, error) {
	raw, ok := s.cache.Get(ctx, sessionCachePrefix+id)
	if !ok {
		return nil, fmt.Errorf("session %s: %w", id, domain.ErrNotFound)
	}
	var c domain.Collector
	if err := json.Unmarshal([]byte(raw), &c); err != nil {
		return nil, fmt.Errorf("decode session %s: %w", id, err)
	}
	return &c, nil
}

// lock holds the stripe for id across a read-modify-write of the session.
func (s *SessionService) lock(id string) func() {
	h := fnv.New32a()
	h.Write([]byte(id))
	mu := &s.locks[h.Sum32()%sessionLockStripes]
	mu.Lock()
	return mu.Unlock
}

func (s *SessionService) SetField(ctx context.Context, id, name, value string) (*domain.Collector, error) {
	defer s.lock(id)()

	c, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := c.SetField(name, value); err != nil {
		return nil, err
	}
	if err := s.save(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

// Compute estimates the session input. Collected values are range checked first.
func (s *SessionService) Compute(ctx context.Context, id string) (*domain.Collector, error) {
	defer s.lock(id)()

	c, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	_, err = c.Compute(func(input domain.Input) (domain.Result, error) {
		if err := ValidateInput(input); err != nil {
			return domain.Result{}, err
		}
		return Estimate(input)
	})
	if err != nil {
		return nil, err
	}

	if err := s.save(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *SessionService) Reset(ctx context.Context, id string) (*domain.Collector, error) {
	defer s.lock(id)()

	c, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	c.Reset()
	if err := s.save(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *SessionService) save(ctx context.Context, c *domain.Collector) error {
	raw, err := json.Marshal(c)
	if err != nil {
		return fmt.Errorf("encode session %s: %w", c.ID, err)
	}
	if err := s.cache.Set(ctx, sessionCachePrefix+c.ID, string(raw), s.ttl); err != nil {
		return fmt.Errorf("store session %s: %w", c.ID, err)
	}
	return nil
}
