package http

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/cwgitcommit11/sportsalgo/internal/service"
)

// PicksHandler handles HTTP requests for daily picks and the season tracker
type PicksHandler struct {
	service *service.PicksService
	logger  zerolog.Logger
}

// NewPicksHandler creates a new picks HTTP handler
func NewPicksHandler(service *service.PicksService, logger zerolog.Logger) *PicksHandler {
	return &PicksHandler{
		service: service,
		logger:  logger.With().Str("component", "picks_handler").Logger(),
	}
}

// RegisterRoutes registers HTTP routes with the provided mux
func (h *PicksHandler) RegisterRoutes(mux *http.ServeMux) {
	// GET /api/v1/picks/:date - Get a day's graded picks
	mux.HandleFunc("/api/v1/picks/", h.handleGetPicks)

	// GET /api/v1/tracker/summary - Get season accuracy summary
	mux.HandleFunc("/api/v1/tracker/summary", h.handleGetTrackerSummary)
}

// handleGetPicks handles GET /api/v1/picks/:date
func (h *PicksHandler) handleGetPicks(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		h.errorResponse(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	// Parse path: /api/v1/picks/:date
	path := strings.TrimPrefix(r.URL.Path, "/api/v1/picks/")
	parts := strings.Split(path, "/")

	if len(parts) != 1 || parts[0] == "" {
		h.errorResponse(w, http.StatusBadRequest, "invalid path: expected /api/v1/picks/:date")
		return
	}

	date := parts[0]
	if _, err := time.Parse("2006-01-02", date); err != nil {
		h.errorResponse(w, http.StatusBadRequest, "date must be formatted YYYY-MM-DD")
		return
	}

	picks, err := h.service.GetPicks(r.Context(), date)
	if err != nil {
		h.logger.Error().
			Err(err).
			Str("date", date).
			Msg("failed to retrieve picks")
		h.errorResponse(w, http.StatusInternalServerError, "failed to retrieve picks")
		return
	}

	h.jsonResponse(w, http.StatusOK, map[string]interface{}{
		"date":  date,
		"count": len(picks),
		"picks": picks,
	})
}

// handleGetTrackerSummary handles GET /api/v1/tracker/summary
func (h *PicksHandler) handleGetTrackerSummary(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		h.errorResponse(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	summary, err := h.service.GetTrackerSummary(r.Context())
	if err != nil {
		h.logger.Error().
			Err(err).
			Msg("failed to retrieve tracker summary")
		h.errorResponse(w, http.StatusInternalServerError, "failed to retrieve tracker summary")
		return
	}

	h.jsonResponse(w, http.StatusOK, summary)
}

// jsonResponse writes a JSON response
func (h *PicksHandler) jsonResponse(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.logger.Error().Err(err).Msg("failed to encode JSON response")
	}
}

// errorResponse writes a JSON error response
func (h *PicksHandler) errorResponse(w http.ResponseWriter, status int, message string) {
	h.jsonResponse(w, status, map[string]string{
		"error": message,
	})
}
