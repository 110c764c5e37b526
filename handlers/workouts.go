package handlers

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/CODINGDONG1211/Lifestyleapp/export"
	"github.com/CODINGDONG1211/Lifestyleapp/models"
	"github.com/CODINGDONG1211/Lifestyleapp/store"
)

// WorkoutHandler handles workout CRUD and CSV export.
type WorkoutHandler struct {
	sessions *store.Manager
	logger   *slog.Logger
}

// NewWorkoutHandler creates a new workout handler.
func NewWorkoutHandler(sessions *store.Manager, logger *slog.Logger) *WorkoutHandler {
	return &WorkoutHandler{sessions: sessions, logger: logger}
}

// List handles GET /api/workouts.
func (h *WorkoutHandler) List(w http.ResponseWriter, r *http.Request) {
	s, ok := session(h.sessions, h.logger, w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, s.Workouts())
}

// Create handles POST /api/workouts.
func (h *WorkoutHandler) Create(w http.ResponseWriter, r *http.Request) {
	s, ok := session(h.sessions, h.logger, w, r)
	if !ok {
		return
	}

	var req models.CreateWorkoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Warn("invalid request body", "error", err)
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if msg := validateWorkout(req.Name, req.Exercises); msg != "" {
		http.Error(w, msg, http.StatusBadRequest)
		return
	}
	if req.Date.IsZero() {
		req.Date = time.Now()
	}

	workout := s.AddWorkout(req)
	h.logger.Info("workout created", "id", workout.ID, "exercises", len(workout.Exercises))
	writeJSON(w, http.StatusCreated, workout)
}

// Update handles PUT /api/workouts/{id}.
func (h *WorkoutHandler) Update(w http.ResponseWriter, r *http.Request) {
	s, ok := session(h.sessions, h.logger, w, r)
	if !ok {
		return
	}
	id := chi.URLParam(r, "id")

	var patch models.WorkoutPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		h.logger.Warn("invalid request body", "error", err)
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if patch.Name != nil && strings.TrimSpace(*patch.Name) == "" {
		http.Error(w, "Name is required", http.StatusBadRequest)
		return
	}
	if patch.Exercises != nil {
		if len(*patch.Exercises) == 0 {
			http.Error(w, "At least one exercise is required", http.StatusBadRequest)
			return
		}
		if msg := validateExercises(*patch.Exercises); msg != "" {
			http.Error(w, msg, http.StatusBadRequest)
			return
		}
	}

	workout, found := s.UpdateWorkout(id, patch)
	if !found {
		http.Error(w, "Workout not found", http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, workout)
}

// Delete handles DELETE /api/workouts/{id}.
func (h *WorkoutHandler) Delete(w http.ResponseWriter, r *http.Request) {
	s, ok := session(h.sessions, h.logger, w, r)
	if !ok {
		return
	}

	if !s.RemoveWorkout(chi.URLParam(r, "id")) {
		http.Error(w, "Workout not found", http.StatusNotFound)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Export handles GET /api/workouts/{id}/export: the workout as a CSV
// download named after the workout and its date.
func (h *WorkoutHandler) Export(w http.ResponseWriter, r *http.Request) {
	s, ok := session(h.sessions, h.logger, w, r)
	if !ok {
		return
	}

	workout, found := s.Workout(chi.URLParam(r, "id"))
	if !found {
		http.Error(w, "Workout not found", http.StatusNotFound)
		return
	}

	data, err := export.WorkoutCSV(workout)
	if err != nil {
		h.logger.Error("failed to export workout", "id", workout.ID, "error", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", export.WorkoutFileName(workout)))
	w.Write(data)
}

func validateWorkout(name string, exercises []models.ExerciseInput) string {
	if strings.TrimSpace(name) == "" {
		return "Name is required"
	}
	if len(exercises) == 0 {
		return "At least one exercise is required"
	}
	return validateExercises(exercises)
}

func validateExercises(exercises []models.ExerciseInput) string {
	for _, ex := range exercises {
		if strings.TrimSpace(ex.Name) == "" {
			return "Exercise name is required"
		}
		if ex.Sets < 1 || ex.Reps < 1 {
			return "Sets and reps must be at least 1"
		}
		if ex.Weight < 0 {
			return "Weight cannot be negative"
		}
	}
	return ""
}
