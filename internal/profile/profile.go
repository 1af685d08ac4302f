package profile

import (
	"github.com/fitcoach/fitcoach/internal/macros"
)

// Profile holds the body and goal attributes of one user.
// At most one profile per user; new users have none, which is a valid state.
type Profile struct {
	ID            int     `json:"id"`
	UserID        int     `json:"userId"`
	Gender        string  `json:"gender"`
	Age           int     `json:"age"`
	HeightCm      float64 `json:"heightCm"`
	WeightKg      float64 `json:"weightKg"`
	ActivityLevel string  `json:"activityLevel"`
	GoalType      string  `json:"goalType"`
	TrainingDays  string  `json:"trainingDays"`
}

func (p *Profile) MacroData() macros.ProfileData {
	return macros.ProfileData{
		WeightKg:      p.WeightKg,
		HeightCm:      p.HeightCm,
		Age:           p.Age,
		Gender:        p.Gender,
		ActivityLevel: p.ActivityLevel,
		GoalType:      p.GoalType,
	}
}
