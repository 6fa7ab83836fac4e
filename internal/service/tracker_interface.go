package service

import (
	"context"

	"github.com/cwgitcommit11/sportsalgo/internal/models"
)

//go:generate mockgen -source=tracker_interface.go -destination=../mocks/mock_tracker.go -package=mocks

// Tracker is an interface that abstracts the season pick ledger
// This allows for easier testing and mocking
type Tracker interface {
	RecordPicks(ctx context.Context, preds []*models.Prediction) error
	ResolveResults(ctx context.Context, date string, results []models.GameResult) (int, error)
	Summary(ctx context.Context) (*models.TrackerSummary, error)
}
