// Package analytics derives the dashboard summary from the raw collections.
package analytics

import (
	"math"
	"sort"

	"github.com/CODINGDONG1211/Lifestyleapp/models"
)

// TaskStats summarizes the task collection.
type TaskStats struct {
	Total          int            `json:"total"`
	Completed      int            `json:"completed"`
	CompletionRate int            `json:"completionRate"`
	ByPriority     map[string]int `json:"byPriority"`
}

// HabitStreak is one bar of the habit streak chart.
type HabitStreak struct {
	Name   string `json:"name"`
	Streak int    `json:"streak"`
	Color  string `json:"color"`
}

// WorkoutStats summarizes the workout log.
type WorkoutStats struct {
	Total          int              `json:"total"`
	Completed      int              `json:"completed"`
	CompletionRate int              `json:"completionRate"`
	Recent         []models.Workout `json:"recent"`
}

// Summary is the full analytics payload.
type Summary struct {
	Tasks    TaskStats     `json:"tasks"`
	Habits   []HabitStreak `json:"habits"`
	Workouts WorkoutStats  `json:"workouts"`
}

// recentWorkoutCount is how many newest workouts the summary lists.
const recentWorkoutCount = 3

// Summarize computes the analytics summary over the given collections.
func Summarize(tasks []models.Task, habits []models.Habit, workouts []models.Workout) Summary {
	return Summary{
		Tasks:    taskStats(tasks),
		Habits:   habitStreaks(habits),
		Workouts: workoutStats(workouts),
	}
}

func taskStats(tasks []models.Task) TaskStats {
	stats := TaskStats{
		Total: len(tasks),
		ByPriority: map[string]int{
			models.PriorityHigh:   0,
			models.PriorityMedium: 0,
			models.PriorityLow:    0,
		},
	}
	for _, t := range tasks {
		if t.Completed {
			stats.Completed++
		}
		stats.ByPriority[t.Priority]++
	}
	stats.CompletionRate = rate(stats.Completed, stats.Total)
	return stats
}

func habitStreaks(habits []models.Habit) []HabitStreak {
	out := make([]HabitStreak, 0, len(habits))
	for _, h := range habits {
		out = append(out, HabitStreak{Name: h.Name, Streak: h.Streak, Color: h.Color})
	}
	return out
}

func workoutStats(workouts []models.Workout) WorkoutStats {
	stats := WorkoutStats{Total: len(workouts)}
	for _, w := range workouts {
		if w.Completed {
			stats.Completed++
		}
	}
	stats.CompletionRate = rate(stats.Completed, stats.Total)

	recent := make([]models.Workout, len(workouts))
	copy(recent, workouts)
	sort.SliceStable(recent, func(i, j int) bool {
		return recent[i].Date.After(recent[j].Date)
	})
	if len(recent) > recentWorkoutCount {
		recent = recent[:recentWorkoutCount]
	}
	stats.Recent = recent
	return stats
}

// rate is a whole-number percentage, 0 for an empty collection.
func rate(part, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(part) / float64(total) * 100))
}
