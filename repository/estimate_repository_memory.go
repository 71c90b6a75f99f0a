package repository

import (
	"context"
	"fmt"
	"sync"

	"roi-calculator/domain"
)

// EstimateRepositoryMemory is an in-memory implementation of EstimateRepository.
type EstimateRepositoryMemory struct {
	mu   sync.RWMutex
	data []domain.EstimateRecord
}

func NewEstimateRepositoryMemory() *EstimateRepositoryMemory {
	return &EstimateRepositoryMemory{
		data: []domain.EstimateRecord{},
	}
}

func (r *EstimateRepositoryMemory) Save(_ context.Context, record domain.EstimateRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.data = append(r.data, record)
	return nil
}

func (r *EstimateRepositoryMemory) Get(_ context.Context, id string) (domain.EstimateRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, rec := range r.data {
		if rec.ID == id {
			return rec, nil
		}
	}
	return domain.EstimateRecord{}, fmt.Errorf("estimate %s: %w", id, domain.ErrNotFound)
}

func (r *EstimateRepositoryMemory) List(_ context.Context, limit int) ([]domain.EstimateRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := []domain.EstimateRecord{}
	for i := len(r.data) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, r.data[i])
	}
	return out, nil
}
