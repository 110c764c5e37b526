package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/CODINGDONG1211/Lifestyleapp/models"
	"github.com/CODINGDONG1211/Lifestyleapp/store"
	"github.com/CODINGDONG1211/Lifestyleapp/streak"
)

// defaultHabitColor matches the color the habit form starts with.
const defaultHabitColor = "#3B82F6"

// HabitHandler handles habit CRUD and day toggling.
type HabitHandler struct {
	sessions *store.Manager
	logger   *slog.Logger
}

// NewHabitHandler creates a new habit handler.
func NewHabitHandler(sessions *store.Manager, logger *slog.Logger) *HabitHandler {
	return &HabitHandler{sessions: sessions, logger: logger}
}

// List handles GET /api/habits.
func (h *HabitHandler) List(w http.ResponseWriter, r *http.Request) {
	s, ok := session(h.sessions, h.logger, w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, s.Habits())
}

// Create handles POST /api/habits.
func (h *HabitHandler) Create(w http.ResponseWriter, r *http.Request) {
	s, ok := session(h.sessions, h.logger, w, r)
	if !ok {
		return
	}

	var req models.CreateHabitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Warn("invalid request body", "error", err)
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if strings.TrimSpace(req.Name) == "" {
		http.Error(w, "Name is required", http.StatusBadRequest)
		return
	}
	if req.Target < 1 {
		http.Error(w, "Target must be at least 1", http.StatusBadRequest)
		return
	}
	if req.Color == "" {
		req.Color = defaultHabitColor
	}

	habit := s.AddHabit(req)
	h.logger.Info("habit created", "id", habit.ID, "name", habit.Name)
	writeJSON(w, http.StatusCreated, habit)
}

// Update handles PUT /api/habits/{id}.
func (h *HabitHandler) Update(w http.ResponseWriter, r *http.Request) {
	s, ok := session(h.sessions, h.logger, w, r)
	if !ok {
		return
	}
	id := chi.URLParam(r, "id")

	var patch models.HabitPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		h.logger.Warn("invalid request body", "error", err)
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if patch.Name != nil && strings.TrimSpace(*patch.Name) == "" {
		http.Error(w, "Name is required", http.StatusBadRequest)
		return
	}
	if patch.Target != nil && *patch.Target < 1 {
		http.Error(w, "Target must be at least 1", http.StatusBadRequest)
		return
	}

	habit, found := s.UpdateHabit(id, patch)
	if !found {
		http.Error(w, "Habit not found", http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, habit)
}

// Delete handles DELETE /api/habits/{id}.
func (h *HabitHandler) Delete(w http.ResponseWriter, r *http.Request) {
	s, ok := session(h.sessions, h.logger, w, r)
	if !ok {
		return
	}

	if !s.RemoveHabit(chi.URLParam(r, "id")) {
		http.Error(w, "Habit not found", http.StatusNotFound)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ToggleDay handles POST /api/habits/{id}/toggle: it flips one completion
// day and returns the habit with its freshly recomputed streak.
func (h *HabitHandler) ToggleDay(w http.ResponseWriter, r *http.Request) {
	s, ok := session(h.sessions, h.logger, w, r)
	if !ok {
		return
	}
	id := chi.URLParam(r, "id")

	var req models.ToggleDayRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Warn("invalid request body", "error", err)
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if !streak.ValidDay(req.Day) {
		http.Error(w, "Day must be formatted as YYYY-MM-DD", http.StatusBadRequest)
		return
	}

	habit, found := s.ToggleHabitDay(id, req.Day, streak.Day(time.Now()))
	if !found {
		http.Error(w, "Habit not found", http.StatusNotFound)
		return
	}

	h.logger.Info("habit day toggled", "id", id, "day", req.Day, "streak", habit.Streak)
	writeJSON(w, http.StatusOK, habit)
}
