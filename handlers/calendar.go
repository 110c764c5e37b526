package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/CODINGDONG1211/Lifestyleapp/calendar"
	"github.com/CODINGDONG1211/Lifestyleapp/models"
	"github.com/CODINGDONG1211/Lifestyleapp/store"
)

// CalendarHandler serves the calendar views: the month grid, the day
// schedule with minute offsets, and view navigation.
type CalendarHandler struct {
	sessions *store.Manager
	logger   *slog.Logger
}

// NewCalendarHandler creates a new calendar handler.
func NewCalendarHandler(sessions *store.Manager, logger *slog.Logger) *CalendarHandler {
	return &CalendarHandler{sessions: sessions, logger: logger}
}

// queryDate parses the date query parameter, defaulting to now.
func queryDate(r *http.Request) (time.Time, bool) {
	raw := r.URL.Query().Get("date")
	if raw == "" {
		return time.Now(), true
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, true
	}
	if t, err := time.Parse("2006-01-02", raw); err == nil {
		return t, true
	}
	return time.Time{}, false
}

// MonthCell is one day of the month view, with its events.
type MonthCell struct {
	Date         time.Time      `json:"date"`
	OutsideMonth bool           `json:"outsideMonth"`
	Events       []models.Event `json:"events"`
}

// Month handles GET /api/calendar/month?date=: the complete-week grid for
// the month, each cell carrying that day's events.
func (h *CalendarHandler) Month(w http.ResponseWriter, r *http.Request) {
	s, ok := session(h.sessions, h.logger, w, r)
	if !ok {
		return
	}

	date, valid := queryDate(r)
	if !valid {
		http.Error(w, "Invalid date", http.StatusBadRequest)
		return
	}

	events := s.Events()
	grid := calendar.MonthGrid(date)
	cells := make([]MonthCell, 0, len(grid))
	for _, day := range grid {
		cells = append(cells, MonthCell{
			Date:         day.Date,
			OutsideMonth: day.OutsideMonth,
			Events:       calendar.EventsOnDay(events, day.Date),
		})
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"date": date,
		"days": cells,
	})
}

// ScheduledEvent is an event positioned on the day grid.
type ScheduledEvent struct {
	models.Event
	MinuteOffset int `json:"minuteOffset"`
}

// Day handles GET /api/calendar/day?date=: the day's events with their
// minute-of-day offsets for vertical placement.
func (h *CalendarHandler) Day(w http.ResponseWriter, r *http.Request) {
	s, ok := session(h.sessions, h.logger, w, r)
	if !ok {
		return
	}

	date, valid := queryDate(r)
	if !valid {
		http.Error(w, "Invalid date", http.StatusBadRequest)
		return
	}

	dayEvents := calendar.EventsOnDay(s.Events(), date)
	scheduled := make([]ScheduledEvent, 0, len(dayEvents))
	for _, e := range dayEvents {
		scheduled = append(scheduled, ScheduledEvent{
			Event:        e,
			MinuteOffset: calendar.MinuteOffset(e.Date),
		})
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"date":   date,
		"events": scheduled,
	})
}

// Navigate handles GET /api/calendar/navigate?view=&date=&direction=.
// Direction is next, prev or today.
func (h *CalendarHandler) Navigate(w http.ResponseWriter, r *http.Request) {
	if _, ok := session(h.sessions, h.logger, w, r); !ok {
		return
	}

	view, err := calendar.ParseView(r.URL.Query().Get("view"))
	if err != nil {
		http.Error(w, "View must be day, week or month", http.StatusBadRequest)
		return
	}

	date, valid := queryDate(r)
	if !valid {
		http.Error(w, "Invalid date", http.StatusBadRequest)
		return
	}

	var next time.Time
	switch r.URL.Query().Get("direction") {
	case "next":
		next = calendar.Navigate(view, date, 1)
	case "prev":
		next = calendar.Navigate(view, date, -1)
	case "today":
		next = calendar.Today(time.Now())
	default:
		http.Error(w, "Direction must be next, prev or today", http.StatusBadRequest)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"view": view,
		"date": next,
	})
}
