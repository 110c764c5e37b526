package models

import "strings"

// CatalogExercise is a reference exercise users can pick from when building
// a workout. Subcategory is empty for categories without one (cardio).
type CatalogExercise struct {
	Name        string `json:"name"`
	Category    string `json:"category"`
	Subcategory string `json:"subcategory,omitempty"`
}

// ExerciseCatalog is the built-in reference list of exercises.
var ExerciseCatalog = []CatalogExercise{
	// Full body / compound
	{Name: "Deadlifts", Category: "Full Body", Subcategory: "Compound"},
	{Name: "Squats", Category: "Full Body", Subcategory: "Compound"},
	{Name: "Clean and Press", Category: "Full Body", Subcategory: "Compound"},
	{Name: "Snatch", Category: "Full Body", Subcategory: "Compound"},
	{Name: "Kettlebell Swings", Category: "Full Body", Subcategory: "Compound"},
	{Name: "Thrusters", Category: "Full Body", Subcategory: "Compound"},
	{Name: "Burpees", Category: "Full Body", Subcategory: "Compound"},

	// Chest
	{Name: "Bench Press", Category: "Upper Body", Subcategory: "Chest"},
	{Name: "Incline Bench Press", Category: "Upper Body", Subcategory: "Chest"},
	{Name: "Decline Bench Press", Category: "Upper Body", Subcategory: "Chest"},
	{Name: "Chest Flyes", Category: "Upper Body", Subcategory: "Chest"},
	{Name: "Push-Ups", Category: "Upper Body", Subcategory: "Chest"},
	{Name: "Chest Press Machine", Category: "Upper Body", Subcategory: "Chest"},

	// Back
	{Name: "Pull-Ups", Category: "Upper Body", Subcategory: "Back"},
	{Name: "Chin-Ups", Category: "Upper Body", Subcategory: "Back"},
	{Name: "Lat Pulldown", Category: "Upper Body", Subcategory: "Back"},
	{Name: "Barbell Rows", Category: "Upper Body", Subcategory: "Back"},
	{Name: "Dumbbell Rows", Category: "Upper Body", Subcategory: "Back"},
	{Name: "T-Bar Rows", Category: "Upper Body", Subcategory: "Back"},
	{Name: "Seated Cable Row", Category: "Upper Body", Subcategory: "Back"},

	// Shoulders
	{Name: "Overhead Press", Category: "Upper Body", Subcategory: "Shoulders"},
	{Name: "Arnold Press", Category: "Upper Body", Subcategory: "Shoulders"},
	{Name: "Lateral Raises", Category: "Upper Body", Subcategory: "Shoulders"},
	{Name: "Front Raises", Category: "Upper Body", Subcategory: "Shoulders"},
	{Name: "Rear Delt Flyes", Category: "Upper Body", Subcategory: "Shoulders"},
	{Name: "Shrugs", Category: "Upper Body", Subcategory: "Shoulders"},
	{Name: "Upright Rows", Category: "Upper Body", Subcategory: "Shoulders"},

	// Biceps
	{Name: "Barbell Curls", Category: "Upper Body", Subcategory: "Biceps"},
	{Name: "Dumbbell Curls", Category: "Upper Body", Subcategory: "Biceps"},
	{Name: "Hammer Curls", Category: "Upper Body", Subcategory: "Biceps"},
	{Name: "Preacher Curls", Category: "Upper Body", Subcategory: "Biceps"},
	{Name: "Concentration Curls", Category: "Upper Body", Subcategory: "Biceps"},
	{Name: "Cable Curls", Category: "Upper Body", Subcategory: "Biceps"},
	{Name: "EZ Bar Curls", Category: "Upper Body", Subcategory: "Biceps"},

	// Triceps
	{Name: "Tricep Dips", Category: "Upper Body", Subcategory: "Triceps"},
	{Name: "Skull Crushers", Category: "Upper Body", Subcategory: "Triceps"},
	{Name: "Tricep Pushdowns", Category: "Upper Body", Subcategory: "Triceps"},
	{Name: "Overhead Tricep Extensions", Category: "Upper Body", Subcategory: "Triceps"},
	{Name: "Close-Grip Bench Press", Category: "Upper Body", Subcategory: "Triceps"},
	{Name: "Tricep Kickbacks", Category: "Upper Body", Subcategory: "Triceps"},

	// Quadriceps
	{Name: "Back Squats", Category: "Lower Body", Subcategory: "Quadriceps"},
	{Name: "Front Squats", Category: "Lower Body", Subcategory: "Quadriceps"},
	{Name: "Goblet Squats", Category: "Lower Body", Subcategory: "Quadriceps"},
	{Name: "Leg Press", Category: "Lower Body", Subcategory: "Quadriceps"},
	{Name: "Lunges", Category: "Lower Body", Subcategory: "Quadriceps"},
	{Name: "Step-Ups", Category: "Lower Body", Subcategory: "Quadriceps"},
	{Name: "Bulgarian Split Squats", Category: "Lower Body", Subcategory: "Quadriceps"},

	// Hamstrings
	{Name: "Romanian Deadlifts", Category: "Lower Body", Subcategory: "Hamstrings"},
	{Name: "Leg Curls", Category: "Lower Body", Subcategory: "Hamstrings"},
	{Name: "Good Mornings", Category: "Lower Body", Subcategory: "Hamstrings"},
	{Name: "Glute-Ham Raise", Category: "Lower Body", Subcategory: "Hamstrings"},

	// Glutes
	{Name: "Hip Thrusts", Category: "Lower Body", Subcategory: "Glutes"},
	{Name: "Glute Bridges", Category: "Lower Body", Subcategory: "Glutes"},
	{Name: "Cable Kickbacks", Category: "Lower Body", Subcategory: "Glutes"},

	// Calves
	{Name: "Standing Calf Raises", Category: "Lower Body", Subcategory: "Calves"},
	{Name: "Seated Calf Raises", Category: "Lower Body", Subcategory: "Calves"},
	{Name: "Donkey Calf Raises", Category: "Lower Body", Subcategory: "Calves"},
	{Name: "Calf Press", Category: "Lower Body", Subcategory: "Calves"},

	// Core
	{Name: "Plank", Category: "Core", Subcategory: "Abs"},
	{Name: "Side Plank", Category: "Core", Subcategory: "Abs"},
	{Name: "Crunches", Category: "Core", Subcategory: "Abs"},
	{Name: "Sit-Ups", Category: "Core", Subcategory: "Abs"},
	{Name: "Russian Twists", Category: "Core", Subcategory: "Abs"},
	{Name: "Hanging Leg Raises", Category: "Core", Subcategory: "Abs"},
	{Name: "Knee Tucks", Category: "Core", Subcategory: "Abs"},
	{Name: "Ab Rollouts", Category: "Core", Subcategory: "Abs"},
	{Name: "Bicycle Crunches", Category: "Core", Subcategory: "Abs"},
	{Name: "Cable Woodchoppers", Category: "Core", Subcategory: "Abs"},
	{Name: "Decline Bench Sit-Ups", Category: "Core", Subcategory: "Abs"},
	{Name: "Mountain Climbers", Category: "Core", Subcategory: "Abs"},

	// Mobility
	{Name: "Foam Rolling", Category: "Mobility", Subcategory: "Recovery"},
	{Name: "Dynamic Stretching", Category: "Mobility", Subcategory: "Flexibility"},
	{Name: "Static Stretching", Category: "Mobility", Subcategory: "Flexibility"},
	{Name: "Resistance Band Work", Category: "Mobility", Subcategory: "Flexibility"},
	{Name: "Single-Leg Balance Work", Category: "Mobility", Subcategory: "Balance"},

	// Cardio
	{Name: "Treadmill Running", Category: "Cardio"},
	{Name: "Treadmill Walking", Category: "Cardio"},
	{Name: "Stationary Bike", Category: "Cardio"},
	{Name: "Rowing Machine", Category: "Cardio"},
	{Name: "Elliptical", Category: "Cardio"},
	{Name: "Stair Climber", Category: "Cardio"},
	{Name: "Jump Rope", Category: "Cardio"},
	{Name: "Battle Ropes", Category: "Cardio"},
	{Name: "Sled Pushes", Category: "Cardio"},
	{Name: "HIIT Circuits", Category: "Cardio"},
}

// SearchCatalog returns catalog entries whose name contains query,
// case-insensitively. An empty query returns the whole catalog.
func SearchCatalog(query string) []CatalogExercise {
	if query == "" {
		return ExerciseCatalog
	}
	q := strings.ToLower(query)
	var out []CatalogExercise
	for _, e := range ExerciseCatalog {
		if strings.Contains(strings.ToLower(e.Name), q) {
			out = append(out, e)
		}
	}
	if out == nil {
		out = []CatalogExercise{}
	}
	return out
}
