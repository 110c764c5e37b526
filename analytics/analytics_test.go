package analytics

import (
	"testing"
	"time"

	"github.com/CODINGDONG1211/Lifestyleapp/models"
)

func TestSummarize_Tasks(t *testing.T) {
	tasks := []models.Task{
		{ID: "1", Title: "a", Completed: true, Priority: models.PriorityHigh},
		{ID: "2", Title: "b", Completed: false, Priority: models.PriorityMedium},
		{ID: "3", Title: "c", Completed: true, Priority: models.PriorityLow},
	}

	s := Summarize(tasks, nil, nil)
	if s.Tasks.Total != 3 || s.Tasks.Completed != 2 {
		t.Errorf("tasks total/completed = %d/%d", s.Tasks.Total, s.Tasks.Completed)
	}
	if s.Tasks.CompletionRate != 67 {
		t.Errorf("completion rate = %d, want 67", s.Tasks.CompletionRate)
	}
	if s.Tasks.ByPriority[models.PriorityHigh] != 1 ||
		s.Tasks.ByPriority[models.PriorityMedium] != 1 ||
		s.Tasks.ByPriority[models.PriorityLow] != 1 {
		t.Errorf("priority breakdown = %v", s.Tasks.ByPriority)
	}
}

func TestSummarize_EmptyCollections(t *testing.T) {
	s := Summarize(nil, nil, nil)
	if s.Tasks.CompletionRate != 0 || s.Workouts.CompletionRate != 0 {
		t.Error("expected zero rates for empty collections")
	}
	if len(s.Habits) != 0 {
		t.Errorf("expected no habit entries, got %d", len(s.Habits))
	}
}

func TestSummarize_HabitStreaks(t *testing.T) {
	habits := []models.Habit{
		{ID: "1", Name: "Read", Streak: 5, Color: "#3B82F6"},
		{ID: "2", Name: "Run", Streak: 0, Color: "#10B981"},
	}

	s := Summarize(nil, habits, nil)
	if len(s.Habits) != 2 {
		t.Fatalf("expected 2 streak entries, got %d", len(s.Habits))
	}
	if s.Habits[0].Name != "Read" || s.Habits[0].Streak != 5 || s.Habits[0].Color != "#3B82F6" {
		t.Errorf("unexpected first entry: %+v", s.Habits[0])
	}
}

func TestSummarize_RecentWorkouts(t *testing.T) {
	base := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	var workouts []models.Workout
	for i := 0; i < 5; i++ {
		workouts = append(workouts, models.Workout{
			ID:        string(rune('a' + i)),
			Name:      "w",
			Date:      base.AddDate(0, 0, i),
			Completed: i%2 == 0,
		})
	}

	s := Summarize(nil, nil, workouts)
	if s.Workouts.Total != 5 || s.Workouts.Completed != 3 {
		t.Errorf("workouts total/completed = %d/%d", s.Workouts.Total, s.Workouts.Completed)
	}
	if len(s.Workouts.Recent) != 3 {
		t.Fatalf("expected 3 recent workouts, got %d", len(s.Workouts.Recent))
	}
	// Newest first.
	if !s.Workouts.Recent[0].Date.Equal(base.AddDate(0, 0, 4)) {
		t.Errorf("recent[0] date = %v", s.Workouts.Recent[0].Date)
	}
	if s.Workouts.Recent[0].Date.Before(s.Workouts.Recent[1].Date) {
		t.Error("recent workouts not sorted newest first")
	}
}
