package service

import (
	"context"
	"time"

	"github.com/cwgitcommit11/sportsalgo/internal/models"
)

//go:generate mockgen -source=predictor_interface.go -destination=../mocks/mock_predictor.go -package=mocks

// SlatePredictor is an interface that abstracts the rating and prediction engine
// This allows for easier testing and mocking
type SlatePredictor interface {
	PredictSlate(
		ctx context.Context,
		standings []models.TeamStanding,
		teamStats map[string]models.TeamStats,
		games []models.ScheduledGame,
		gameDate time.Time,
	) []*models.Prediction
}
