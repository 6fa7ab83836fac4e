// Package nhl is the client for the public NHL APIs: standings, team summary
// stats, schedules, and scores. API shapes are decoded into local DTOs and
// flattened into internal models at this boundary so the rest of the service
// never handles the APIs' nested documents.
package nhl

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"sort"
	"time"

	"github.com/rs/zerolog"

	"github.com/cwgitcommit11/sportsalgo/internal/config"
	"github.com/cwgitcommit11/sportsalgo/internal/models"
)

const userAgent = "sportsalgo/1.0"

// Client talks to the NHL public APIs
type Client struct {
	httpClient   *http.Client
	baseURL      string
	statsBaseURL string
	seasonID     string
	logger       zerolog.Logger
}

// NewClient creates an NHL API client
func NewClient(cfg config.NHLConfig, logger zerolog.Logger) *Client {
	return &Client{
		httpClient:   &http.Client{Timeout: cfg.Timeout},
		baseURL:      cfg.BaseURL,
		statsBaseURL: cfg.StatsBaseURL,
		seasonID:     cfg.SeasonID,
		logger:       logger.With().Str("component", "nhl_client").Logger(),
	}
}

// get fetches JSON from url into result
func (c *Client) get(ctx context.Context, rawURL string, result interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status code %d from %s", resp.StatusCode, rawURL)
	}

	if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}

	return nil
}

// localized is the NHL API's localized-string wrapper, e.g. {"default": "BOS"}
type localized struct {
	Default string `json:"default"`
}

type standingsResponse struct {
	Standings []standingRow `json:"standings"`
}

type standingRow struct {
	TeamAbbrev     localized `json:"teamAbbrev"`
	TeamName       localized `json:"teamName"`
	ConferenceName string    `json:"conferenceName"`
	DivisionName   string    `json:"divisionName"`
	GamesPlayed    int       `json:"gamesPlayed"`
	Wins           int       `json:"wins"`
	Losses         int       `json:"losses"`
	OtLosses       int       `json:"otLosses"`
	Points         int       `json:"points"`
	PointPctg      float64   `json:"pointPctg"`
	GoalFor        int       `json:"goalFor"`
	GoalAgainst    int       `json:"goalAgainst"`
	HomeWins       int       `json:"homeWins"`
	HomeLosses     int       `json:"homeLosses"`
	HomeOtLosses   int       `json:"homeOtLosses"`
	RoadWins       int       `json:"roadWins"`
	RoadLosses     int       `json:"roadLosses"`
	RoadOtLosses   int       `json:"roadOtLosses"`
	L10Wins        int       `json:"l10Wins"`
	L10Losses      int       `json:"l10Losses"`
	L10OtLosses    int       `json:"l10OtLosses"`
	StreakCode     string    `json:"streakCode"`
	StreakCount    int       `json:"streakCount"`
}

// Standings returns the current league standings. An empty slice means the
// API had no standings to give; callers decide whether that is fatal.
func (c *Client) Standings(ctx context.Context) ([]models.TeamStanding, error) {
	var resp standingsResponse
	if err := c.get(ctx, c.baseURL+"/v1/standings/now", &resp); err != nil {
		return nil, fmt.Errorf("failed to fetch standings: %w", err)
	}

	standings := make([]models.TeamStanding, 0, len(resp.Standings))
	for _, row := range resp.Standings {
		standings = append(standings, models.TeamStanding{
			Abbrev:       row.TeamAbbrev.Default,
			Name:         row.TeamName.Default,
			Conference:   row.ConferenceName,
			Division:     row.DivisionName,
			GamesPlayed:  row.GamesPlayed,
			Wins:         row.Wins,
			Losses:       row.Losses,
			OtLosses:     row.OtLosses,
			Points:       row.Points,
			PointPct:     row.PointPctg,
			GoalsFor:     row.GoalFor,
			GoalsAgainst: row.GoalAgainst,
			HomeWins:     row.HomeWins,
			HomeLosses:   row.HomeLosses,
			HomeOtLosses: row.HomeOtLosses,
			RoadWins:     row.RoadWins,
			RoadLosses:   row.RoadLosses,
			RoadOtLosses: row.RoadOtLosses,
			L10Wins:      row.L10Wins,
			L10Losses:    row.L10Losses,
			L10OtLosses:  row.L10OtLosses,
			StreakCode:   row.StreakCode,
			StreakCount:  row.StreakCount,
		})
	}

	c.logger.Debug().Int("teams", len(standings)).Msg("fetched standings")
	return standings, nil
}

type statsResponse struct {
	Data []statsRow `json:"data"`
}

type statsRow struct {
	TeamFullName        string  `json:"teamFullName"`
	PowerPlayPct        float64 `json:"powerPlayPct"`
	PenaltyKillPct      float64 `json:"penaltyKillPct"`
	ShotsForPerGame     float64 `json:"shotsForPerGame"`
	ShotsAgainstPerGame float64 `json:"shotsAgainstPerGame"`
}

// TeamStats returns supplemental stats keyed by team abbreviation. The stats
// API keys rows by full team name, so the standings snapshot supplies the
// name-to-abbreviation mapping; unmappable rows are dropped.
func (c *Client) TeamStats(ctx context.Context, standings []models.TeamStanding) (map[string]models.TeamStats, error) {
	var resp statsResponse
	if err := c.get(ctx, c.summaryURL(), &resp); err != nil {
		return nil, fmt.Errorf("failed to fetch team stats: %w", err)
	}

	nameToAbbrev := make(map[string]string, len(standings))
	for _, team := range standings {
		if team.Name != "" && team.Abbrev != "" {
			nameToAbbrev[team.Name] = team.Abbrev
		}
	}

	out := make(map[string]models.TeamStats, len(resp.Data))
	for _, row := range resp.Data {
		abbrev, ok := nameToAbbrev[row.TeamFullName]
		if !ok {
			c.logger.Debug().Str("team", row.TeamFullName).Msg("could not map team name to abbreviation")
			continue
		}
		out[abbrev] = models.TeamStats{
			PowerPlayPct:        row.PowerPlayPct,
			PenaltyKillPct:      row.PenaltyKillPct,
			ShotsForPerGame:     row.ShotsForPerGame,
			ShotsAgainstPerGame: row.ShotsAgainstPerGame,
		}
	}

	c.logger.Debug().Int("teams", len(out)).Msg("fetched team stats")
	return out, nil
}

// summaryURL builds the stats summary query for the configured season
func (c *Client) summaryURL() string {
	sortExpr := url.QueryEscape(`[{"property":"points","direction":"DESC"}]`)
	cayenne := url.QueryEscape(fmt.Sprintf("gameTypeId=2 and seasonId<=%s and seasonId>=%s", c.seasonID, c.seasonID))
	return fmt.Sprintf("%s/summary?isAggregate=false&isGame=false&sort=%s&cayenneExp=%s", c.statsBaseURL, sortExpr, cayenne)
}

type scheduleResponse struct {
	GameWeek []scheduleDay `json:"gameWeek"`
}

type scheduleDay struct {
	Date  string        `json:"date"`
	Games []scheduleRow `json:"games"`
}

type scheduleRow struct {
	HomeTeam     teamRef   `json:"homeTeam"`
	AwayTeam     teamRef   `json:"awayTeam"`
	StartTimeUTC time.Time `json:"startTimeUTC"`
	GameState    string    `json:"gameState"`
	GameType     int       `json:"gameType"`
}

type teamRef struct {
	Abbrev string `json:"abbrev"`
	Score  int    `json:"score"`
}

// GamesOn returns the scheduled games for the given date, regular season and
// playoffs only.
func (c *Client) GamesOn(ctx context.Context, date time.Time) ([]models.ScheduledGame, error) {
	var resp scheduleResponse
	if err := c.get(ctx, c.baseURL+"/v1/schedule/now", &resp); err != nil {
		return nil, fmt.Errorf("failed to fetch schedule: %w", err)
	}

	dateStr := date.Format("2006-01-02")
	var games []models.ScheduledGame
	for _, day := range resp.GameWeek {
		if day.Date != dateStr {
			continue
		}
		for _, g := range day.Games {
			if g.GameType != 2 && g.GameType != 3 {
				continue
			}
			games = append(games, models.ScheduledGame{
				HomeAbbrev:   g.HomeTeam.Abbrev,
				AwayAbbrev:   g.AwayTeam.Abbrev,
				StartTimeUTC: g.StartTimeUTC,
				GameState:    g.GameState,
				GameType:     g.GameType,
			})
		}
	}

	c.logger.Debug().Str("date", dateStr).Int("games", len(games)).Msg("fetched schedule")
	return games, nil
}

type clubScheduleResponse struct {
	Games []clubScheduleRow `json:"games"`
}

type clubScheduleRow struct {
	GameDate string `json:"gameDate"`
}

// TeamGameDates returns a team's full season game dates, sorted ascending.
// Unparseable dates are skipped.
func (c *Client) TeamGameDates(ctx context.Context, abbrev string) ([]time.Time, error) {
	var resp clubScheduleResponse
	rawURL := fmt.Sprintf("%s/v1/club-schedule-season/%s/now", c.baseURL, abbrev)
	if err := c.get(ctx, rawURL, &resp); err != nil {
		return nil, fmt.Errorf("failed to fetch schedule for %s: %w", abbrev, err)
	}

	dates := make([]time.Time, 0, len(resp.Games))
	for _, g := range resp.Games {
		d, err := time.ParseInLocation("2006-01-02", g.GameDate, time.UTC)
		if err != nil {
			continue
		}
		dates = append(dates, d)
	}
	sort.Slice(dates, func(i, j int) bool { return dates[i].Before(dates[j]) })

	return dates, nil
}

type scoreResponse struct {
	Games []scheduleRow `json:"games"`
}

// ScoresOn returns final scores for the given date. Games still in progress
// are excluded; a partial score must never settle a pick.
func (c *Client) ScoresOn(ctx context.Context, date time.Time) ([]models.GameResult, error) {
	var resp scoreResponse
	rawURL := fmt.Sprintf("%s/v1/score/%s", c.baseURL, date.Format("2006-01-02"))
	if err := c.get(ctx, rawURL, &resp); err != nil {
		return nil, fmt.Errorf("failed to fetch scores: %w", err)
	}

	results := make([]models.GameResult, 0, len(resp.Games))
	for _, g := range resp.Games {
		if g.GameState != "OFF" && g.GameState != "FINAL" {
			continue
		}
		results = append(results, models.GameResult{
			HomeAbbrev: g.HomeTeam.Abbrev,
			AwayAbbrev: g.AwayTeam.Abbrev,
			HomeScore:  g.HomeTeam.Score,
			AwayScore:  g.AwayTeam.Score,
		})
	}

	c.logger.Debug().Str("date", date.Format("2006-01-02")).Int("games", len(results)).Msg("fetched scores")
	return results, nil
}
