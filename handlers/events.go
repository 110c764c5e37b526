package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/CODINGDONG1211/Lifestyleapp/calendar"
	"github.com/CODINGDONG1211/Lifestyleapp/export"
	"github.com/CODINGDONG1211/Lifestyleapp/models"
	"github.com/CODINGDONG1211/Lifestyleapp/store"
)

// EventHandler handles event CRUD, drag-to-create and the external
// calendar link.
type EventHandler struct {
	sessions *store.Manager
	logger   *slog.Logger
}

// NewEventHandler creates a new event handler.
func NewEventHandler(sessions *store.Manager, logger *slog.Logger) *EventHandler {
	return &EventHandler{sessions: sessions, logger: logger}
}

// List handles GET /api/events.
func (h *EventHandler) List(w http.ResponseWriter, r *http.Request) {
	s, ok := session(h.sessions, h.logger, w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, s.Events())
}

// Create handles POST /api/events.
func (h *EventHandler) Create(w http.ResponseWriter, r *http.Request) {
	s, ok := session(h.sessions, h.logger, w, r)
	if !ok {
		return
	}

	var req models.CreateEventRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Warn("invalid request body", "error", err)
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if strings.TrimSpace(req.Title) == "" {
		http.Error(w, "Title is required", http.StatusBadRequest)
		return
	}
	if req.Date.IsZero() {
		req.Date = time.Now()
	}
	// An end at or before the start is pushed forward, same as a start edit.
	if req.EndTime != nil {
		_, req.EndTime = calendar.AdjustStart(req.EndTime, req.Date)
	}

	event := s.AddEvent(req)
	h.logger.Info("event created", "id", event.ID)
	writeJSON(w, http.StatusCreated, event)
}

// DragCreateRequest is the payload for creating an event from a drag
// gesture on a day column.
type DragCreateRequest struct {
	Date         time.Time `json:"date"`
	StartOffset  float64   `json:"startOffset"`
	EndOffset    float64   `json:"endOffset"`
	ColumnHeight float64   `json:"columnHeight"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	Color        string    `json:"color"`
}

// CreateFromDrag handles POST /api/events/drag: it converts the drag span
// into snapped start/end times (swapping a reversed drag) and creates the
// event.
func (h *EventHandler) CreateFromDrag(w http.ResponseWriter, r *http.Request) {
	s, ok := session(h.sessions, h.logger, w, r)
	if !ok {
		return
	}

	var req DragCreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Warn("invalid request body", "error", err)
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if strings.TrimSpace(req.Title) == "" {
		http.Error(w, "Title is required", http.StatusBadRequest)
		return
	}
	if req.Date.IsZero() {
		http.Error(w, "Date is required", http.StatusBadRequest)
		return
	}
	if req.ColumnHeight <= 0 {
		http.Error(w, "Column height must be positive", http.StatusBadRequest)
		return
	}

	start := calendar.TimeAt(req.Date, req.StartOffset, req.ColumnHeight)
	end := calendar.TimeAt(req.Date, req.EndOffset, req.ColumnHeight)
	start, end = calendar.OrderedSpan(start, end)
	if !end.After(start) {
		end = start.Add(30 * time.Minute)
	}

	event := s.AddEvent(models.CreateEventRequest{
		Title:       req.Title,
		Date:        start,
		Description: req.Description,
		Color:       req.Color,
		EndTime:     &end,
	})
	h.logger.Info("event created from drag", "id", event.ID)
	writeJSON(w, http.StatusCreated, event)
}

// Update handles PUT /api/events/{id}. Start edits may push the end time
// forward; end edits that land at or before the start are dropped.
func (h *EventHandler) Update(w http.ResponseWriter, r *http.Request) {
	s, ok := session(h.sessions, h.logger, w, r)
	if !ok {
		return
	}
	id := chi.URLParam(r, "id")

	var patch models.EventPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		h.logger.Warn("invalid request body", "error", err)
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if patch.Title != nil && strings.TrimSpace(*patch.Title) == "" {
		http.Error(w, "Title is required", http.StatusBadRequest)
		return
	}

	current, found := s.Event(id)
	if !found {
		http.Error(w, "Event not found", http.StatusNotFound)
		return
	}

	start := current.Date
	end := current.EndTime
	if patch.Date != nil {
		start, end = calendar.AdjustStart(end, *patch.Date)
	}
	if patch.EndTime != nil {
		if adjusted, valid := calendar.AdjustEnd(start, *patch.EndTime); valid {
			end = &adjusted
		}
	}
	patch.Date = &start
	patch.EndTime = end

	event, found := s.UpdateEvent(id, patch)
	if !found {
		http.Error(w, "Event not found", http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, event)
}

// Delete handles DELETE /api/events/{id}.
func (h *EventHandler) Delete(w http.ResponseWriter, r *http.Request) {
	s, ok := session(h.sessions, h.logger, w, r)
	if !ok {
		return
	}

	if !s.RemoveEvent(chi.URLParam(r, "id")) {
		http.Error(w, "Event not found", http.StatusNotFound)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// CalendarLink handles GET /api/events/{id}/calendar-link: a deep link that
// adds the event to an external calendar.
func (h *EventHandler) CalendarLink(w http.ResponseWriter, r *http.Request) {
	s, ok := session(h.sessions, h.logger, w, r)
	if !ok {
		return
	}

	event, found := s.Event(chi.URLParam(r, "id"))
	if !found {
		http.Error(w, "Event not found", http.StatusNotFound)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{
		"url": export.CalendarLink(event),
	})
}
