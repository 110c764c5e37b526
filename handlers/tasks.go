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
)

// TaskHandler handles task CRUD.
type TaskHandler struct {
	sessions *store.Manager
	logger   *slog.Logger
}

// NewTaskHandler creates a new task handler.
func NewTaskHandler(sessions *store.Manager, logger *slog.Logger) *TaskHandler {
	return &TaskHandler{sessions: sessions, logger: logger}
}

// List handles GET /api/tasks.
func (h *TaskHandler) List(w http.ResponseWriter, r *http.Request) {
	s, ok := session(h.sessions, h.logger, w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, s.Tasks())
}

// Create handles POST /api/tasks.
func (h *TaskHandler) Create(w http.ResponseWriter, r *http.Request) {
	s, ok := session(h.sessions, h.logger, w, r)
	if !ok {
		return
	}

	var req models.CreateTaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Warn("invalid request body", "error", err)
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if strings.TrimSpace(req.Title) == "" {
		http.Error(w, "Title is required", http.StatusBadRequest)
		return
	}
	if req.Priority == "" {
		req.Priority = models.PriorityMedium
	}
	if !models.ValidPriority(req.Priority) {
		http.Error(w, "Priority must be low, medium or high", http.StatusBadRequest)
		return
	}
	if req.Date.IsZero() {
		req.Date = time.Now()
	}

	task := s.AddTask(req)
	h.logger.Info("task created", "id", task.ID)
	writeJSON(w, http.StatusCreated, task)
}

// Update handles PUT /api/tasks/{id}.
func (h *TaskHandler) Update(w http.ResponseWriter, r *http.Request) {
	s, ok := session(h.sessions, h.logger, w, r)
	if !ok {
		return
	}
	id := chi.URLParam(r, "id")

	var patch models.TaskPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		h.logger.Warn("invalid request body", "error", err)
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if patch.Title != nil && strings.TrimSpace(*patch.Title) == "" {
		http.Error(w, "Title is required", http.StatusBadRequest)
		return
	}
	if patch.Priority != nil && !models.ValidPriority(*patch.Priority) {
		http.Error(w, "Priority must be low, medium or high", http.StatusBadRequest)
		return
	}

	task, found := s.UpdateTask(id, patch)
	if !found {
		http.Error(w, "Task not found", http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, task)
}

// Delete handles DELETE /api/tasks/{id}.
func (h *TaskHandler) Delete(w http.ResponseWriter, r *http.Request) {
	s, ok := session(h.sessions, h.logger, w, r)
	if !ok {
		return
	}

	if !s.RemoveTask(chi.URLParam(r, "id")) {
		http.Error(w, "Task not found", http.StatusNotFound)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
