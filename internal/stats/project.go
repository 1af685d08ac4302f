package stats

import (
	"github.com/fitcoach/fitcoach/internal/macros"
)

type NutritionDailyStat struct {
	Date     string  `json:"date"`
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
}

type SessionsPerDayStat struct {
	Date     string `json:"date"`
	Sessions int    `json:"sessions"`
}

type MuscleGroupVolumeStat struct {
	MuscleGroup string `json:"muscleGroup"`
	Sets        int    `json:"sets"`
}

type Overview struct {
	NutritionDaily             []NutritionDailyStat    `json:"nutritionDaily"`
	Macros                     *macros.Targets         `json:"macros"`
	WorkoutSessionsPerDay      []SessionsPerDayStat    `json:"workoutSessionsPerDay"`
	WorkoutVolumeByMuscleGroup []MuscleGroupVolumeStat `json:"workoutVolumeByMuscleGroup"`
}

// Project reshapes an aggregation into the overview read model: date series
// ascending by day, muscle volume ascending by group name, macro targets
// passed through as-is (nil for users without a profile).
func Project(agg Aggregation, targets *macros.Targets) Overview {
	overview := Overview{
		NutritionDaily:             make([]NutritionDailyStat, 0, len(agg.DailyNutrition)),
		Macros:                     targets,
		WorkoutSessionsPerDay:      make([]SessionsPerDayStat, 0, len(agg.SessionsPerDay)),
		WorkoutVolumeByMuscleGroup: make([]MuscleGroupVolumeStat, 0, len(agg.MuscleVolume)),
	}

	for _, date := range sortedKeys(agg.DailyNutrition) {
		day := agg.DailyNutrition[date]
		overview.NutritionDaily = append(overview.NutritionDaily, NutritionDailyStat{
			Date:     date,
			Calories: day.Calories,
			Protein:  day.Protein,
			Carbs:    day.Carbs,
			Fat:      day.Fat,
		})
	}

	for _, date := range sortedKeys(agg.SessionsPerDay) {
		overview.WorkoutSessionsPerDay = append(overview.WorkoutSessionsPerDay, SessionsPerDayStat{
			Date:     date,
			Sessions: agg.SessionsPerDay[date],
		})
	}

	for _, mg := range sortedKeys(agg.MuscleVolume) {
		overview.WorkoutVolumeByMuscleGroup = append(overview.WorkoutVolumeByMuscleGroup, MuscleGroupVolumeStat{
			MuscleGroup: mg,
			Sets:        agg.MuscleVolume[mg],
		})
	}

	return overview
}
