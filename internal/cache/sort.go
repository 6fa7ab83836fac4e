package cache

import (
	"sort"

	"github.com/cwgitcommit11/sportsalgo/internal/models"
)

// sortPredictions orders by descending stars. SCAN returns keys in no
// particular order, so the matchup label breaks ties to keep output stable
// across calls.
func sortPredictions(preds []*models.Prediction) {
	sort.Slice(preds, func(i, j int) bool {
		if preds[i].Stars != preds[j].Stars {
			return preds[i].Stars > preds[j].Stars
		}
		return preds[i].Game < preds[j].Game
	})
}
