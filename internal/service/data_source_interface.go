package service

import (
	"context"
	"time"

	"github.com/cwgitcommit11/sportsalgo/internal/models"
)

//go:generate mockgen -source=data_source_interface.go -destination=../mocks/mock_data_source.go -package=mocks

// DataSource is an interface that abstracts the NHL API client
// This allows for easier testing and mocking
type DataSource interface {
	Standings(ctx context.Context) ([]models.TeamStanding, error)
	TeamStats(ctx context.Context, standings []models.TeamStanding) (map[string]models.TeamStats, error)
	GamesOn(ctx context.Context, date time.Time) ([]models.ScheduledGame, error)
	ScoresOn(ctx context.Context, date time.Time) ([]models.GameResult, error)
}
