package service

import (
	"context"

	"github.com/cwgitcommit11/sportsalgo/internal/models"
)

//go:generate mockgen -source=publisher_interface.go -destination=../mocks/mock_publisher.go -package=mocks

// Publisher is an interface that abstracts pick publishing
// This allows for easier testing and mocking
type Publisher interface {
	PublishDailyPicks(ctx context.Context, date string, preds []*models.Prediction) error
}
