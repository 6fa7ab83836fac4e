package models

import (
	"time"

	"github.com/google/uuid"
)

// PickSkip is the pick sentinel for games too close to call.
const PickSkip = "SKIP"

// Prediction is one matchup's graded pick. Immutable once built.
type Prediction struct {
	ID       uuid.UUID `json:"id"`
	GameDate string    `json:"game_date"` // YYYY-MM-DD
	Game     string    `json:"game"`      // "AWY @ HOM"
	Home     string    `json:"home"`
	Away     string    `json:"away"`

	// Pick is the favored team's abbreviation, or PickSkip when the
	// differential falls below the skip threshold.
	Pick  string `json:"pick"`
	Stars int    `json:"stars"` // 0 when skipped, else 1-5

	// Diff is the signed home-perspective strength differential after all
	// adjustments, rounded to 4 decimals.
	Diff float64 `json:"diff"`

	// KeyFactors lists the adjustments that shaped the pick, e.g.
	// "home ice, BOS B2B, early-season cap".
	KeyFactors string `json:"key_factors"`

	PredictedAt time.Time `json:"predicted_at"`
}

// Skipped reports whether the prediction declined to pick a side.
func (p *Prediction) Skipped() bool {
	return p.Pick == PickSkip
}

// DailyPicksMessage is the Kafka message carrying a full day's slate for
// downstream persistence.
type DailyPicksMessage struct {
	Date        string        `json:"date"`
	Predictions []*Prediction `json:"predictions"`
	Count       int           `json:"count"`
	PublishedAt time.Time     `json:"published_at"`
}

// TrackerEntry is one recorded pick in the season tracker, resolved against
// the final score the following day.
type TrackerEntry struct {
	Date  string `json:"date"`
	Game  string `json:"game"`
	Pick  string `json:"pick"`
	Stars int    `json:"stars"`

	Result   string `json:"result"` // e.g. "BOS 4-2", empty until resolved
	Resolved bool   `json:"resolved"`
	Correct  bool   `json:"correct"`
}

// StarRecord is a win-loss split for one star grade.
type StarRecord struct {
	Wins   int    `json:"wins"`
	Losses int    `json:"losses"`
	Pct    string `json:"pct"` // "61.5%" or "N/A" with no resolved picks
}

// TrackerSummary is the season-to-date accuracy rollup.
type TrackerSummary struct {
	Wins    int                `json:"wins"`
	Losses  int                `json:"losses"`
	Pct     string             `json:"pct"`
	ByStars map[int]StarRecord `json:"by_stars"`
	Text    string             `json:"text"` // one-line human-readable summary
}
