package workouts

import "time"

type WorkoutTemplate struct {
	ID        int                       `json:"id"`
	UserID    int                       `json:"userId"`
	Name      string                    `json:"name"`
	CreatedAt time.Time                 `json:"createdAt"`
	Exercises []WorkoutExerciseTemplate `json:"exercises"`
}

type WorkoutExerciseTemplate struct {
	ID                int    `json:"id"`
	WorkoutTemplateID int    `json:"workoutTemplateId"`
	Name              string `json:"name"`
	MuscleGroup       string `json:"muscleGroup"`
	Sets              int    `json:"sets"`
	Reps              int    `json:"reps"`
	Rir               int    `json:"rir"`
	OrderIndex        int    `json:"orderIndex"`
}

// TemplateRef is the embedded template reference carried on a log,
// without the exercise list.
type TemplateRef struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type WorkoutLog struct {
	ID                int          `json:"id"`
	UserID            int          `json:"userId"`
	Date              time.Time    `json:"date"`
	WorkoutTemplateID *int         `json:"workoutTemplateId"`
	Notes             *string      `json:"notes"`
	CreatedAt         time.Time    `json:"createdAt"`
	WorkoutTemplate   *TemplateRef `json:"workoutTemplate"`
	Sets              []WorkoutSet `json:"sets"`
}

type WorkoutSet struct {
	ID                 int                     `json:"id"`
	WorkoutLogID       int                     `json:"workoutLogId"`
	ExerciseTemplateID int                     `json:"exerciseTemplateId"`
	SetIndex           int                     `json:"setIndex"`
	WeightKg           float64                 `json:"weightKg"`
	Reps               int                     `json:"reps"`
	Rir                *int                    `json:"rir"`
	ExerciseTemplate   WorkoutExerciseTemplate `json:"exerciseTemplate"`
}

// ExerciseInput is a template exercise as submitted on creation.
type ExerciseInput struct {
	Name        string
	MuscleGroup string
	Sets        int
	Reps        int
	Rir         int
}

// SetInput is a performed set as submitted on log creation.
type SetInput struct {
	ExerciseTemplateID int
	SetIndex           int
	WeightKg           float64
	Reps               int
	Rir                *int
}
