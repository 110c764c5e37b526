// Package store holds the live per-user application state: the task, habit,
// workout and event collections, mutated optimistically and mirrored to the
// document store after a debounce quiet period.
package store

import (
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/CODINGDONG1211/Lifestyleapp/models"
	"github.com/CODINGDONG1211/Lifestyleapp/repository"
	"github.com/CODINGDONG1211/Lifestyleapp/streak"
)

// Session is the state container for one authenticated user. It is created
// at session start, torn down at logout, and is the single owner of the
// live collections; the document store only ever holds a serialized mirror.
type Session struct {
	userID   string
	remote   repository.DocumentStore
	logger   *slog.Logger
	debounce time.Duration

	mu     sync.Mutex
	doc    models.Document
	dirty  bool
	timer  *time.Timer
	closed bool

	sub *repository.Subscription
}

// NewSession loads the user's document (initializing an empty one for a new
// user), subscribes to live updates, and returns the ready session.
func NewSession(userID string, remote repository.DocumentStore, logger *slog.Logger, debounce time.Duration) (*Session, error) {
	doc, found, err := remote.Load(userID)
	if err != nil {
		return nil, err
	}
	if !found {
		doc, err = remote.Init(userID)
		if err != nil {
			return nil, err
		}
	}

	s := &Session{
		userID:   userID,
		remote:   remote,
		logger:   logger,
		debounce: debounce,
		doc:      doc,
		sub:      remote.Subscribe(userID),
	}
	go s.watch()
	return s, nil
}

// watch applies remote snapshots until the subscription is cancelled.
func (s *Session) watch() {
	for doc := range s.sub.C {
		s.applySnapshot(doc)
	}
}

// applySnapshot replaces the local collections wholesale with a remote
// snapshot: last writer wins, no merging. Snapshots arriving after Close
// are discarded.
func (s *Session) applySnapshot(doc models.Document) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.doc = doc
	s.logger.Info("applied remote snapshot", "user", s.userID, "updatedAt", doc.UpdatedAt)
}

// Close flushes pending local changes, cancels the live-update
// subscription, and makes the session inert. Called at logout.
func (s *Session) Close() {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.closed = true
	if s.timer != nil {
		s.timer.Stop()
	}
	wasDirty := s.dirty
	s.dirty = false
	patch := s.patchLocked()
	s.mu.Unlock()

	s.sub.Cancel()

	if wasDirty {
		if _, err := s.remote.Merge(s.userID, patch, s.sub.ID); err != nil {
			s.logger.Error("failed to flush state on close", "user", s.userID, "error", err)
		}
	}
}

// Document returns a snapshot of the whole session state.
func (s *Session) Document() models.Document {
	s.mu.Lock()
	defer s.mu.Unlock()
	return cloneDocument(s.doc)
}

// markDirty arms (or re-arms) the debounce timer. Must be called with the
// lock held. Rapid successive mutations coalesce into one remote write.
func (s *Session) markDirty() {
	s.dirty = true
	if s.timer != nil {
		s.timer.Stop()
	}
	s.timer = time.AfterFunc(s.debounce, s.flush)
}

// flush mirrors the settled state to the document store. Fire-and-forget:
// failures are logged and the optimistic local state is never rolled back.
func (s *Session) flush() {
	s.mu.Lock()
	if s.closed || !s.dirty {
		s.mu.Unlock()
		return
	}
	s.dirty = false
	patch := s.patchLocked()
	s.mu.Unlock()

	if _, err := s.remote.Merge(s.userID, patch, s.sub.ID); err != nil {
		s.logger.Error("failed to sync state", "user", s.userID, "error", err)
	}
}

// patchLocked builds the full-document patch for a remote write.
func (s *Session) patchLocked() models.DocumentPatch {
	doc := cloneDocument(s.doc)
	return models.DocumentPatch{
		Tasks:    &doc.Tasks,
		Habits:   &doc.Habits,
		Workouts: &doc.Workouts,
		Events:   &doc.Events,
	}
}

// ---- Tasks ----

// Tasks returns the task collection in insertion order.
func (s *Session) Tasks() []models.Task {
	s.mu.Lock()
	defer s.mu.Unlock()
	return cloneTasks(s.doc.Tasks)
}

// AddTask appends a new task with a fresh id.
func (s *Session) AddTask(req models.CreateTaskRequest) models.Task {
	s.mu.Lock()
	defer s.mu.Unlock()

	task := models.Task{
		ID:        uuid.NewString(),
		Title:     req.Title,
		Completed: req.Completed,
		Priority:  req.Priority,
		Date:      req.Date,
	}
	s.doc.Tasks = append(s.doc.Tasks, task)
	s.markDirty()
	return task
}

// UpdateTask merges the patch into the task with the given id. Missing ids
// are a no-op; found reports whether anything changed.
func (s *Session) UpdateTask(id string, patch models.TaskPatch) (models.Task, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.doc.Tasks {
		if s.doc.Tasks[i].ID != id {
			continue
		}
		t := &s.doc.Tasks[i]
		if patch.Title != nil {
			t.Title = *patch.Title
		}
		if patch.Completed != nil {
			t.Completed = *patch.Completed
		}
		if patch.Priority != nil {
			t.Priority = *patch.Priority
		}
		if patch.Date != nil {
			t.Date = *patch.Date
		}
		s.markDirty()
		return *t, true
	}
	return models.Task{}, false
}

// RemoveTask deletes the task with the given id, preserving the order of
// the remaining tasks. Missing ids are a no-op.
func (s *Session) RemoveTask(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.doc.Tasks {
		if s.doc.Tasks[i].ID == id {
			s.doc.Tasks = append(s.doc.Tasks[:i], s.doc.Tasks[i+1:]...)
			s.markDirty()
			return true
		}
	}
	return false
}

// ---- Habits ----

// Habits returns the habit collection in insertion order.
func (s *Session) Habits() []models.Habit {
	s.mu.Lock()
	defer s.mu.Unlock()
	return cloneHabits(s.doc.Habits)
}

// AddHabit appends a new habit with a fresh id, an empty completion set and
// a zero streak.
func (s *Session) AddHabit(req models.CreateHabitRequest) models.Habit {
	s.mu.Lock()
	defer s.mu.Unlock()

	habit := models.Habit{
		ID:            uuid.NewString(),
		Name:          req.Name,
		Target:        req.Target,
		Color:         req.Color,
		CompletedDays: []string{},
	}
	s.doc.Habits = append(s.doc.Habits, habit)
	s.markDirty()
	return habit
}

// UpdateHabit merges the patch into the habit with the given id. Streak and
// completion days are not touchable here; see ToggleHabitDay.
func (s *Session) UpdateHabit(id string, patch models.HabitPatch) (models.Habit, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.doc.Habits {
		if s.doc.Habits[i].ID != id {
			continue
		}
		h := &s.doc.Habits[i]
		if patch.Name != nil {
			h.Name = *patch.Name
		}
		if patch.Target != nil {
			h.Target = *patch.Target
		}
		if patch.Color != nil {
			h.Color = *patch.Color
		}
		s.markDirty()
		return cloneHabit(*h), true
	}
	return models.Habit{}, false
}

// RemoveHabit deletes the habit with the given id.
func (s *Session) RemoveHabit(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.doc.Habits {
		if s.doc.Habits[i].ID == id {
			s.doc.Habits = append(s.doc.Habits[:i], s.doc.Habits[i+1:]...)
			s.markDirty()
			return true
		}
	}
	return false
}

// ToggleHabitDay toggles a completion day and recomputes the streak for
// today in the same critical section: the pair always changes together, so
// a stored streak can never disagree with the days it was derived from.
func (s *Session) ToggleHabitDay(id, day, today string) (models.Habit, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.doc.Habits {
		if s.doc.Habits[i].ID != id {
			continue
		}
		h := &s.doc.Habits[i]
		h.CompletedDays, h.Streak = streak.Toggle(h.CompletedDays, day, today)
		s.markDirty()
		return cloneHabit(*h), true
	}
	return models.Habit{}, false
}

// ---- Workouts ----

// Workouts returns the workout collection in insertion order.
func (s *Session) Workouts() []models.Workout {
	s.mu.Lock()
	defer s.mu.Unlock()
	return cloneWorkouts(s.doc.Workouts)
}

// Workout returns a single workout by id.
func (s *Session) Workout(id string) (models.Workout, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.doc.Workouts {
		if s.doc.Workouts[i].ID == id {
			return cloneWorkout(s.doc.Workouts[i]), true
		}
	}
	return models.Workout{}, false
}

// AddWorkout appends a new workout, assigning ids to it and its exercises.
func (s *Session) AddWorkout(req models.CreateWorkoutRequest) models.Workout {
	s.mu.Lock()
	defer s.mu.Unlock()

	workout := models.Workout{
		ID:        uuid.NewString(),
		Name:      req.Name,
		Date:      req.Date,
		Completed: req.Completed,
		Exercises: buildExercises(req.Exercises, nil),
	}
	s.doc.Workouts = append(s.doc.Workouts, workout)
	s.markDirty()
	return cloneWorkout(workout)
}

// UpdateWorkout merges the patch into the workout with the given id. A
// non-nil exercise list replaces the previous one wholesale, reusing
// existing exercise ids by position.
func (s *Session) UpdateWorkout(id string, patch models.WorkoutPatch) (models.Workout, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.doc.Workouts {
		if s.doc.Workouts[i].ID != id {
			continue
		}
		w := &s.doc.Workouts[i]
		if patch.Name != nil {
			w.Name = *patch.Name
		}
		if patch.Date != nil {
			w.Date = *patch.Date
		}
		if patch.Completed != nil {
			w.Completed = *patch.Completed
		}
		if patch.Exercises != nil {
			w.Exercises = buildExercises(*patch.Exercises, w.Exercises)
		}
		s.markDirty()
		return cloneWorkout(*w), true
	}
	return models.Workout{}, false
}

// RemoveWorkout deletes the workout with the given id.
func (s *Session) RemoveWorkout(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.doc.Workouts {
		if s.doc.Workouts[i].ID == id {
			s.doc.Workouts = append(s.doc.Workouts[:i], s.doc.Workouts[i+1:]...)
			s.markDirty()
			return true
		}
	}
	return false
}

// buildExercises materializes submitted exercises, keeping the ids of the
// previous list by position so an edit does not re-identify unchanged rows.
func buildExercises(inputs []models.ExerciseInput, previous []models.Exercise) []models.Exercise {
	out := make([]models.Exercise, 0, len(inputs))
	for i, in := range inputs {
		id := uuid.NewString()
		if i < len(previous) {
			id = previous[i].ID
		}
		out = append(out, models.Exercise{
			ID:     id,
			Name:   in.Name,
			Sets:   in.Sets,
			Reps:   in.Reps,
			Weight: in.Weight,
		})
	}
	return out
}

// ---- Events ----

// Events returns the event collection in insertion order.
func (s *Session) Events() []models.Event {
	s.mu.Lock()
	defer s.mu.Unlock()
	return cloneEvents(s.doc.Events)
}

// Event returns a single event by id.
func (s *Session) Event(id string) (models.Event, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.doc.Events {
		if s.doc.Events[i].ID == id {
			return cloneEvent(s.doc.Events[i]), true
		}
	}
	return models.Event{}, false
}

// AddEvent appends a new event with a fresh id.
func (s *Session) AddEvent(req models.CreateEventRequest) models.Event {
	s.mu.Lock()
	defer s.mu.Unlock()

	event := models.Event{
		ID:          uuid.NewString(),
		Title:       req.Title,
		Date:        req.Date,
		Description: req.Description,
		Color:       req.Color,
		EndTime:     req.EndTime,
	}
	s.doc.Events = append(s.doc.Events, event)
	s.markDirty()
	return cloneEvent(event)
}

// UpdateEvent merges the patch into the event with the given id. Time
// consistency rules live in the calendar package; callers resolve them
// before patching.
func (s *Session) UpdateEvent(id string, patch models.EventPatch) (models.Event, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.doc.Events {
		if s.doc.Events[i].ID != id {
			continue
		}
		e := &s.doc.Events[i]
		if patch.Title != nil {
			e.Title = *patch.Title
		}
		if patch.Date != nil {
			e.Date = *patch.Date
		}
		if patch.Description != nil {
			e.Description = *patch.Description
		}
		if patch.Color != nil {
			e.Color = *patch.Color
		}
		if patch.EndTime != nil {
			end := *patch.EndTime
			e.EndTime = &end
		}
		s.markDirty()
		return cloneEvent(*e), true
	}
	return models.Event{}, false
}

// RemoveEvent deletes the event with the given id.
func (s *Session) RemoveEvent(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.doc.Events {
		if s.doc.Events[i].ID == id {
			s.doc.Events = append(s.doc.Events[:i], s.doc.Events[i+1:]...)
			s.markDirty()
			return true
		}
	}
	return false
}
