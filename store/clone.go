package store

import "github.com/CODINGDONG1211/Lifestyleapp/models"

// Collections handed out of a session are copies, including nested slices,
// so callers never share backing arrays with the live state.

func cloneDocument(doc models.Document) models.Document {
	return models.Document{
		Tasks:     cloneTasks(doc.Tasks),
		Habits:    cloneHabits(doc.Habits),
		Workouts:  cloneWorkouts(doc.Workouts),
		Events:    cloneEvents(doc.Events),
		UpdatedAt: doc.UpdatedAt,
	}
}

func cloneTasks(tasks []models.Task) []models.Task {
	out := make([]models.Task, len(tasks))
	copy(out, tasks)
	return out
}

func cloneHabit(h models.Habit) models.Habit {
	days := make([]string, len(h.CompletedDays))
	copy(days, h.CompletedDays)
	h.CompletedDays = days
	return h
}

func cloneHabits(habits []models.Habit) []models.Habit {
	out := make([]models.Habit, 0, len(habits))
	for _, h := range habits {
		out = append(out, cloneHabit(h))
	}
	return out
}

func cloneWorkout(w models.Workout) models.Workout {
	exercises := make([]models.Exercise, len(w.Exercises))
	copy(exercises, w.Exercises)
	w.Exercises = exercises
	return w
}

func cloneWorkouts(workouts []models.Workout) []models.Workout {
	out := make([]models.Workout, 0, len(workouts))
	for _, w := range workouts {
		out = append(out, cloneWorkout(w))
	}
	return out
}

func cloneEvent(e models.Event) models.Event {
	if e.EndTime != nil {
		end := *e.EndTime
		e.EndTime = &end
	}
	return e
}

func cloneEvents(events []models.Event) []models.Event {
	out := make([]models.Event, 0, len(events))
	for _, e := range events {
		out = append(out, cloneEvent(e))
	}
	return out
}
