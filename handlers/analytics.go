package handlers

import (
	"log/slog"
	"net/http"

	"github.com/CODINGDONG1211/Lifestyleapp/analytics"
	"github.com/CODINGDONG1211/Lifestyleapp/store"
)

// AnalyticsHandler serves the derived dashboard summary.
type AnalyticsHandler struct {
	sessions *store.Manager
	logger   *slog.Logger
}

// NewAnalyticsHandler creates a new analytics handler.
func NewAnalyticsHandler(sessions *store.Manager, logger *slog.Logger) *AnalyticsHandler {
	return &AnalyticsHandler{sessions: sessions, logger: logger}
}

// Summary handles GET /api/analytics/summary.
func (h *AnalyticsHandler) Summary(w http.ResponseWriter, r *http.Request) {
	s, ok := session(h.sessions, h.logger, w, r)
	if !ok {
		return
	}

	doc := s.Document()
	writeJSON(w, http.StatusOK, analytics.Summarize(doc.Tasks, doc.Habits, doc.Workouts))
}
