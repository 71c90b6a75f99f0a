package repository

import (
	"context"

	"roi-calculator/domain"
)

type EstimateRepository interface {
	Save(ctx context.Context, record domain.EstimateRecord) error
	Get(ctx context.Context, id string) (domain.EstimateRecord, error)
	// List returns the most recent records first.
	List(ctx context.Context, limit int) ([]domain.EstimateRecord, error)
}
