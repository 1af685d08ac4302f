package stats

import (
	"sort"
	"time"
)

// UnknownMuscleGroup is the bucket for sets whose exercise carries no muscle group
const UnknownMuscleGroup = "Unknown"

// NutritionRow is one logged meal, reduced to what aggregation needs
type NutritionRow struct {
	Date     time.Time
	Calories float64
	Protein  float64
	Carbs    float64
	Fat      float64
}

// WorkoutRow is one workout session with the muscle group of every set in it
type WorkoutRow struct {
	Date            time.Time
	SetMuscleGroups []string
}

// DailyNutrition holds the summed macros of all meals logged on one day
type DailyNutrition struct {
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
}

// Aggregation is the result of folding a period's rows into day buckets.
// Maps are sparse: a day without rows has no key.
type Aggregation struct {
	// Nutrition sums keyed by "YYYY-MM-DD" (UTC calendar day)
	DailyNutrition map[string]DailyNutrition
	// Workout session counts keyed by "YYYY-MM-DD"
	SessionsPerDay map[string]int
	// Period-wide set counts keyed by muscle group
	MuscleVolume map[string]int

	TotalSessions int
}

// Aggregate buckets meals and workouts by UTC calendar day. Input order is
// irrelevant (all folds are sums); rows are trusted to be range-filtered
// already. Muscle-group volume is counted over the whole period, not per day.
func Aggregate(meals []NutritionRow, workouts []WorkoutRow) Aggregation {
	agg := Aggregation{
		DailyNutrition: make(map[string]DailyNutrition),
		SessionsPerDay: make(map[string]int),
		MuscleVolume:   make(map[string]int),
	}

	for _, m := range meals {
		key := DayKey(m.Date)
		day := agg.DailyNutrition[key]
		day.Calories += m.Calories
		day.Protein += m.Protein
		day.Carbs += m.Carbs
		day.Fat += m.Fat
		agg.DailyNutrition[key] = day
	}

	for _, w := range workouts {
		agg.SessionsPerDay[DayKey(w.Date)]++
		agg.TotalSessions++

		for _, mg := range w.SetMuscleGroups {
			if mg == "" {
				mg = UnknownMuscleGroup
			}
			agg.MuscleVolume[mg]++
		}
	}

	return agg
}

// sortedKeys returns map keys in ascending lexicographic order; for
// "YYYY-MM-DD" keys that is chronological order. The stable ordering is part
// of the output contract, not cosmetics.
func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
