package aicoach

import "time"

const (
	FeedbackTypeWeeklyReview = "WEEKLY_REVIEW"
	FeedbackTypeWorkoutPlan  = "WORKOUT_PLAN"
	FeedbackTypeMealPlan     = "MEAL_PLAN"
)

type Feedback struct {
	ID           int       `json:"id"`
	UserID       int       `json:"userId"`
	DateFrom     time.Time `json:"dateFrom"`
	DateTo       time.Time `json:"dateTo"`
	FeedbackType string    `json:"feedbackType"`
	InputSummary string    `json:"inputSummary"`
	ResultText   string    `json:"resultText"`
	CreatedAt    time.Time `json:"createdAt"`
}
