package aicoach

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/fitcoach/fitcoach/internal/macros"
	"github.com/fitcoach/fitcoach/internal/profile"
	"github.com/fitcoach/fitcoach/internal/stats"
)

// WeeklyReviewSummary renders the aggregated period into the plain text
// block handed to the model. The layout is stable so stored feedbacks stay
// comparable over time.
func WeeklyReviewSummary(rng stats.Range, agg stats.Aggregation, targets *macros.Targets) string {
	macroLine := "No fitness profile set."
	if targets != nil {
		macroLine = fmt.Sprintf(
			"Target (based on profile): %d kcal, Protein %dg, Fat %dg, Carbs %dg.",
			targets.TargetCalories, targets.ProteinGrams, targets.FatGrams, targets.CarbGrams,
		)
	}

	dailyLines := make([]string, 0, len(agg.DailyNutrition))
	days := make([]string, 0, len(agg.DailyNutrition))
	for day := range agg.DailyNutrition {
		days = append(days, day)
	}
	sort.Strings(days)
	for _, day := range days {
		d := agg.DailyNutrition[day]
		dailyLines = append(dailyLines, fmt.Sprintf(
			"%s: %s kcal (P %sg, C %sg, F %sg)",
			day, formatNumber(d.Calories), formatNumber(d.Protein),
			formatNumber(d.Carbs), formatNumber(d.Fat),
		))
	}
	dailyBlock := "No meals logged."
	if len(dailyLines) > 0 {
		dailyBlock = strings.Join(dailyLines, "\n")
	}

	muscleLines := make([]string, 0, len(agg.MuscleVolume))
	groups := make([]string, 0, len(agg.MuscleVolume))
	for group := range agg.MuscleVolume {
		groups = append(groups, group)
	}
	sort.Strings(groups)
	for _, group := range groups {
		muscleLines = append(muscleLines, fmt.Sprintf("%s: %d sets", group, agg.MuscleVolume[group]))
	}
	muscleBlock := "No sets logged."
	if len(muscleLines) > 0 {
		muscleBlock = "Sets per muscle group:\n" + strings.Join(muscleLines, "\n")
	}

	return strings.Join([]string{
		fmt.Sprintf("Date range: %s to %s", stats.DayKey(rng.Start), stats.DayKey(rng.End)),
		"",
		macroLine,
		"",
		"Daily nutrition (per logged day):",
		dailyBlock,
		"",
		fmt.Sprintf("Workouts: %d sessions in this period.", agg.TotalSessions),
		muscleBlock,
	}, "\n")
}

// ProfileLine is the one-line profile context used in plan prompts.
func ProfileLine(p *profile.Profile, targets *macros.Targets) string {
	if p == nil || targets == nil {
		return "No fitness profile set."
	}
	return fmt.Sprintf(
		"Profile: gender=%s, age=%d, height=%scm, weight=%skg, goal=%s, activity=%s. Target: %d kcal, P %dg, F %dg, C %dg.",
		p.Gender, p.Age, formatNumber(p.HeightCm), formatNumber(p.WeightKg),
		p.GoalType, p.ActivityLevel,
		targets.TargetCalories, targets.ProteinGrams, targets.FatGrams, targets.CarbGrams,
	)
}

func WorkoutPlanSummary(profileLine string, daysPerWeek int, splitType, experience, notes string) string {
	notesLine := ""
	if notes != "" {
		notesLine = "Additional notes: " + notes
	}
	return strings.Join([]string{
		profileLine,
		"",
		"Workout plan request:",
		fmt.Sprintf("Days per week: %d", daysPerWeek),
		"Preferred split type: " + splitType,
		"Experience level: " + experience,
		notesLine,
	}, "\n")
}

func MealPlanSummary(profileLine string, mealsPerDay int, preferences, avoid, notes string) string {
	preferencesLine := ""
	if preferences != "" {
		preferencesLine = "Preferences: " + preferences
	}
	avoidLine := ""
	if avoid != "" {
		avoidLine = "Avoid: " + avoid
	}
	notesLine := ""
	if notes != "" {
		notesLine = "Additional notes: " + notes
	}
	return strings.Join([]string{
		profileLine,
		"",
		"Meal plan request:",
		fmt.Sprintf("Meals per day: %d", mealsPerDay),
		preferencesLine,
		avoidLine,
		notesLine,
	}, "\n")
}

// formatNumber drops the decimal part for whole values, so 1100.0 renders
// as "1100" and 1100.5 as "1100.5".
func formatNumber(val float64) string {
	return strconv.FormatFloat(val, 'f', -1, 64)
}
