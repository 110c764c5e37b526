package models

import "time"

// Exercise is one exercise entry inside a workout. Exercises belong to
// exactly one workout; they are never shared across workouts.
type Exercise struct {
	ID     string  `json:"id"`
	Name   string  `json:"name"`
	Sets   int     `json:"sets"`
	Reps   int     `json:"reps"`
	Weight float64 `json:"weight"`
}

// Workout is a logged workout session with its ordered exercise list.
type Workout struct {
	ID        string     `json:"id"`
	Date      time.Time  `json:"date"`
	Name      string     `json:"name"`
	Exercises []Exercise `json:"exercises"`
	Completed bool       `json:"completed"`
}

// ExerciseInput is an exercise as submitted by the client, without an id.
type ExerciseInput struct {
	Name   string  `json:"name"`
	Sets   int     `json:"sets"`
	Reps   int     `json:"reps"`
	Weight float64 `json:"weight"`
}

// CreateWorkoutRequest is the payload for creating a new workout.
type CreateWorkoutRequest struct {
	Name      string          `json:"name"`
	Date      time.Time       `json:"date"`
	Exercises []ExerciseInput `json:"exercises"`
	Completed bool            `json:"completed"`
}

// WorkoutPatch carries partial workout updates. A non-nil Exercises field
// replaces the whole exercise list (edits rebuild the list wholesale).
type WorkoutPatch struct {
	Name      *string          `json:"name"`
	Date      *time.Time       `json:"date"`
	Exercises *[]ExerciseInput `json:"exercises"`
	Completed *bool            `json:"completed"`
}
