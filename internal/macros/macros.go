package macros

import "math"

const (
	GoalLoseFat    = "LOSE_FAT"
	GoalGainMuscle = "GAIN_MUSCLE"
	GoalMaintain   = "MAINTAIN"

	ActivityLight    = "light"
	ActivityModerate = "moderate"
	ActivityHigh     = "high"

	GenderMale   = "male"
	GenderFemale = "female"
)

// ProfileData is the subset of a fitness profile needed to compute targets
type ProfileData struct {
	WeightKg      float64
	HeightCm      float64
	Age           int
	Gender        string
	ActivityLevel string
	GoalType      string
}

type Targets struct {
	TDEE           int `json:"tdee"`
	TargetCalories int `json:"targetCalories"`
	ProteinGrams   int `json:"proteinGrams"`
	FatGrams       int `json:"fatGrams"`
	CarbGrams      int `json:"carbGrams"`
}

// Calculate computes daily calorie and macro targets from a fitness profile.
// BMR via Mifflin-St Jeor, scaled by a fixed activity multiplier, then
// adjusted by the goal offset. Protein is 2 g/kg, fat 0.8 g/kg, carbs take
// whatever calories remain (never negative).
//
// Every consumer (profile, stats, ai coach) must go through this function,
// there is no second copy of the formula anywhere.
// All rounding is math.Round (half away from zero), per field.
func Calculate(p ProfileData) Targets {
	genderOffset := 5.0
	if p.Gender == GenderFemale {
		genderOffset = -161
	}

	bmr := 10*p.WeightKg + 6.25*p.HeightCm - 5*float64(p.Age) + genderOffset

	var activityFactor float64
	switch p.ActivityLevel {
	case ActivityHigh:
		activityFactor = 1.725
	case ActivityModerate:
		activityFactor = 1.55
	case ActivityLight:
		activityFactor = 1.375
	default:
		// unknown values deliberately fall back to sedentary
		activityFactor = 1.2
	}

	tdee := int(math.Round(bmr * activityFactor))

	targetCalories := tdee
	switch p.GoalType {
	case GoalLoseFat:
		targetCalories = tdee - 400
	case GoalGainMuscle:
		targetCalories = tdee + 200
	}

	proteinGrams := int(math.Round(p.WeightKg * 2))
	fatGrams := int(math.Round(p.WeightKg * 0.8))
	proteinCalories := proteinGrams * 4
	fatCalories := fatGrams * 9

	carbCalories := targetCalories - proteinCalories - fatCalories
	carbGrams := int(math.Round(float64(carbCalories) / 4))
	if carbGrams < 0 {
		carbGrams = 0
	}

	return Targets{
		TDEE:           tdee,
		TargetCalories: targetCalories,
		ProteinGrams:   proteinGrams,
		FatGrams:       fatGrams,
		CarbGrams:      carbGrams,
	}
}
