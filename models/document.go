package models

import "time"

// Document is the persisted per-user record: one document per user holding
// every collection, mirrored from the in-memory session state.
type Document struct {
	Tasks     []Task    `json:"tasks"`
	Habits    []Habit   `json:"habits"`
	Workouts  []Workout `json:"workouts"`
	Events    []Event   `json:"events"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// EmptyDocument returns a document with empty (non-nil) collections, used
// when a user signs in for the first time.
func EmptyDocument() Document {
	return Document{
		Tasks:     []Task{},
		Habits:    []Habit{},
		Workouts:  []Workout{},
		Events:    []Event{},
		UpdatedAt: time.Now().UTC(),
	}
}

// DocumentPatch is a partial document write. Nil families are left untouched
// by a merge; non-nil families replace the stored ones wholesale.
type DocumentPatch struct {
	Tasks    *[]Task    `json:"tasks,omitempty"`
	Habits   *[]Habit   `json:"habits,omitempty"`
	Workouts *[]Workout `json:"workouts,omitempty"`
	Events   *[]Event   `json:"events,omitempty"`
}
