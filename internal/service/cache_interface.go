package service

import (
	"context"

	"github.com/cwgitcommit11/sportsalgo/internal/models"
)

//go:generate mockgen -source=cache_interface.go -destination=../mocks/mock_cache.go -package=mocks

// Cache is an interface that abstracts cache operations
// This allows for easier testing and mocking
type Cache interface {
	Set(ctx context.Context, pred *models.Prediction) error
	Get(ctx context.Context, date, home, away string) (*models.Prediction, error)
	SetSlate(ctx context.Context, preds []*models.Prediction) error
	GetByDate(ctx context.Context, date string) ([]*models.Prediction, error)
	Ping(ctx context.Context) error
	Close() error
}
