package models

// Habit is a daily habit tracked by completion days.
//
// Streak is derived from CompletedDays and is only ever written together
// with it (see store.Session.ToggleHabitDay). CompletedDays entries are
// calendar-day strings ("2006-01-02") with no duplicates.
type Habit struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Streak        int      `json:"streak"`
	Target        int      `json:"target"`
	CompletedDays []string `json:"completedDays"`
	Color         string   `json:"color"`
}

// CreateHabitRequest is the payload for creating a new habit.
type CreateHabitRequest struct {
	Name   string `json:"name"`
	Target int    `json:"target"`
	Color  string `json:"color"`
}

// HabitPatch carries partial habit updates. There is deliberately no streak
// or completedDays field here: those change only through the toggle
// operation, which keeps the pair consistent.
type HabitPatch struct {
	Name   *string `json:"name"`
	Target *int    `json:"target"`
	Color  *string `json:"color"`
}

// ToggleDayRequest is the payload for toggling a habit completion day.
type ToggleDayRequest struct {
	Day string `json:"day"`
}
