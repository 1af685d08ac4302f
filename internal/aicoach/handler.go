package aicoach

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"

	"github.com/fitcoach/fitcoach/internal/auth"
	"github.com/fitcoach/fitcoach/internal/macros"
	"github.com/fitcoach/fitcoach/internal/profile"
	"github.com/fitcoach/fitcoach/internal/stats"
	"github.com/fitcoach/fitcoach/internal/telemetry/metrics"
	"github.com/fitcoach/fitcoach/internal/telemetry/tracing"
	"github.com/fitcoach/fitcoach/pkg"
)

const (
	// weekly reviews look at the trailing week by default
	weeklyReviewSpanDays = 7

	feedbacksPageSize = 20

	defaultPlanDaysPerWeek = 4
	defaultPlanSplitType   = "Upper/Lower"
	defaultPlanExperience  = "intermediate"
	defaultPlanMealsPerDay = 3
)

type textGenerator interface {
	Generate(ctx context.Context, systemPrompt, userContent string) (string, error)
}

type feedbacksRepo interface {
	Add(ctx context.Context, feedback Feedback) (Feedback, error)
	ListLatest(ctx context.Context, userID, limit int) ([]Feedback, error)
}

type profileRepo interface {
	Get(ctx context.Context, userID int) (*profile.Profile, error)
}

type nutritionSource interface {
	NutritionRows(ctx context.Context, userID int, rng stats.Range) ([]stats.NutritionRow, error)
}

type workoutsSource interface {
	WorkoutRows(ctx context.Context, userID int, rng stats.Range) ([]stats.WorkoutRow, error)
}

//go:generate mockgen -source=handler.go -destination=handler_mocks_test.go -package=aicoach_test

type Handler struct {
	generator textGenerator
	repo      feedbacksRepo
	profiles  profileRepo
	nutrition nutritionSource
	workouts  workoutsSource
	metrics   *metrics.Manager

	// NowFunc is an injectable clock, to keep window and timestamp
	// behavior testable
	NowFunc func() time.Time
}

func NewHandler(
	generator textGenerator,
	repo feedbacksRepo,
	profiles profileRepo,
	nutrition nutritionSource,
	workouts workoutsSource,
	metricsManager *metrics.Manager,
) *Handler {
	return &Handler{
		generator: generator,
		repo:      repo,
		profiles:  profiles,
		nutrition: nutrition,
		workouts:  workouts,
		metrics:   metricsManager,
		NowFunc:   time.Now,
	}
}

func (handler *Handler) HandleWeeklyReview(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.aicoach.weeklyReview")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	var req struct {
		From *string `json:"from"`
		To   *string `json:"to"`
	}
	if err := decodeOptionalBody(r.Body, &req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	from, err := parseOptionalDate(req.From)
	if err != nil {
		http.Error(w, "invalid <from> date, use YYYY-MM-DD", http.StatusBadRequest)
		return
	}
	to, err := parseOptionalDate(req.To)
	if err != nil {
		http.Error(w, "invalid <to> date, use YYYY-MM-DD", http.StatusBadRequest)
		return
	}

	now := handler.NowFunc()
	rng := stats.ResolveRange(from, to, weeklyReviewSpanDays, now)

	targets, err := handler.macroTargets(ctx, userID)
	if err != nil {
		log.Errorf("weekly review, get profile for user %d: %s", userID, err)
		http.Error(w, "failed to generate weekly review", http.StatusInternalServerError)
		return
	}

	meals, err := handler.nutrition.NutritionRows(ctx, userID, rng)
	if err != nil {
		log.Errorf("weekly review, get nutrition rows for user %d: %s", userID, err)
		http.Error(w, "failed to generate weekly review", http.StatusInternalServerError)
		return
	}
	workouts, err := handler.workouts.WorkoutRows(ctx, userID, rng)
	if err != nil {
		log.Errorf("weekly review, get workout rows for user %d: %s", userID, err)
		http.Error(w, "failed to generate weekly review", http.StatusInternalServerError)
		return
	}

	inputSummary := WeeklyReviewSummary(rng, stats.Aggregate(meals, workouts), targets)

	handler.generateAndRespond(ctx, w, generateParams{
		userID:       userID,
		systemPrompt: weeklyReviewSystemPrompt,
		inputSummary: inputSummary,
		feedbackType: FeedbackTypeWeeklyReview,
		dateFrom:     rng.Start,
		dateTo:       rng.End,
		createdAt:    now,
	})
}

func (handler *Handler) HandleWorkoutPlan(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.aicoach.workoutPlan")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	var req struct {
		DaysPerWeek *int    `json:"daysPerWeek"`
		SplitType   *string `json:"splitType"`
		Experience  *string `json:"experience"`
		Notes       *string `json:"notes"`
	}
	if err := decodeOptionalBody(r.Body, &req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	daysPerWeek := defaultPlanDaysPerWeek
	if req.DaysPerWeek != nil {
		daysPerWeek = *req.DaysPerWeek
	}
	splitType := stringOrDefault(req.SplitType, defaultPlanSplitType)
	experience := stringOrDefault(req.Experience, defaultPlanExperience)
	notes := stringOrDefault(req.Notes, "")

	profileLine, err := handler.profileLine(ctx, userID)
	if err != nil {
		log.Errorf("workout plan, get profile for user %d: %s", userID, err)
		http.Error(w, "failed to generate workout plan", http.StatusInternalServerError)
		return
	}

	now := handler.NowFunc()
	handler.generateAndRespond(ctx, w, generateParams{
		userID:       userID,
		systemPrompt: workoutPlanSystemPrompt,
		inputSummary: WorkoutPlanSummary(profileLine, daysPerWeek, splitType, experience, notes),
		feedbackType: FeedbackTypeWorkoutPlan,
		dateFrom:     now,
		dateTo:       now,
		createdAt:    now,
	})
}

func (handler *Handler) HandleMealPlan(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.aicoach.mealPlan")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	var req struct {
		MealsPerDay *int    `json:"mealsPerDay"`
		Preferences *string `json:"preferences"`
		Avoid       *string `json:"avoid"`
		Notes       *string `json:"notes"`
	}
	if err := decodeOptionalBody(r.Body, &req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	mealsPerDay := defaultPlanMealsPerDay
	if req.MealsPerDay != nil {
		mealsPerDay = *req.MealsPerDay
	}
	preferences := stringOrDefault(req.Preferences, "")
	avoid := stringOrDefault(req.Avoid, "")
	notes := stringOrDefault(req.Notes, "")

	profileLine, err := handler.profileLine(ctx, userID)
	if err != nil {
		log.Errorf("meal plan, get profile for user %d: %s", userID, err)
		http.Error(w, "failed to generate meal plan", http.StatusInternalServerError)
		return
	}

	now := handler.NowFunc()
	handler.generateAndRespond(ctx, w, generateParams{
		userID:       userID,
		systemPrompt: mealPlanSystemPrompt,
		inputSummary: MealPlanSummary(profileLine, mealsPerDay, preferences, avoid, notes),
		feedbackType: FeedbackTypeMealPlan,
		dateFrom:     now,
		dateTo:       now,
		createdAt:    now,
	})
}

func (handler *Handler) HandleListFeedbacks(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.aicoach.listFeedbacks")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	feedbacks, err := handler.repo.ListLatest(ctx, userID, feedbacksPageSize)
	if err != nil {
		log.Errorf("list ai feedbacks for user %d: %s", userID, err)
		http.Error(w, "failed to load ai feedbacks", http.StatusInternalServerError)
		return
	}

	span.SetAttributes(attribute.Int("feedbacks.count", len(feedbacks)))

	respJson, err := json.Marshal(struct {
		Feedbacks []Feedback `json:"feedbacks"`
	}{Feedbacks: feedbacks})
	if err != nil {
		log.Errorf("marshal ai feedbacks: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, respJson)
}

type generateParams struct {
	userID       int
	systemPrompt string
	inputSummary string
	feedbackType string
	dateFrom     time.Time
	dateTo       time.Time
	createdAt    time.Time
}

func (handler *Handler) generateAndRespond(ctx context.Context, w http.ResponseWriter, params generateParams) {
	resultText, err := handler.generator.Generate(ctx, params.systemPrompt, params.inputSummary)
	if err != nil {
		log.Errorf("generate %s for user %d: %s", params.feedbackType, params.userID, err)
		http.Error(w, "ai request failed", http.StatusInternalServerError)
		return
	}

	handler.metrics.CounterAiGenerations.WithLabelValues(params.feedbackType).Inc()

	feedback, err := handler.repo.Add(ctx, Feedback{
		UserID:       params.userID,
		DateFrom:     params.dateFrom,
		DateTo:       params.dateTo,
		FeedbackType: params.feedbackType,
		InputSummary: params.inputSummary,
		ResultText:   resultText,
		CreatedAt:    params.createdAt,
	})
	if err != nil {
		log.Errorf("store %s feedback for user %d: %s", params.feedbackType, params.userID, err)
		http.Error(w, "failed to store ai feedback", http.StatusInternalServerError)
		return
	}

	feedbackJson, err := json.Marshal(struct {
		Feedback Feedback `json:"feedback"`
	}{Feedback: feedback})
	if err != nil {
		log.Errorf("marshal ai feedback: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, feedbackJson, http.StatusCreated)
}

func (handler *Handler) macroTargets(ctx context.Context, userID int) (*macros.Targets, error) {
	p, err := handler.profiles.Get(ctx, userID)
	switch {
	case err == nil:
		targets := macros.Calculate(p.MacroData())
		return &targets, nil
	case errors.Is(err, profile.ErrProfileNotFound):
		return nil, nil
	default:
		return nil, err
	}
}

func (handler *Handler) profileLine(ctx context.Context, userID int) (string, error) {
	p, err := handler.profiles.Get(ctx, userID)
	switch {
	case err == nil:
		targets := macros.Calculate(p.MacroData())
		return ProfileLine(p, &targets), nil
	case errors.Is(err, profile.ErrProfileNotFound):
		return ProfileLine(nil, nil), nil
	default:
		return "", err
	}
}

// decodeOptionalBody tolerates requests without a body, every field in the
// target struct has a sensible default.
func decodeOptionalBody(body io.Reader, target interface{}) error {
	if err := json.NewDecoder(body).Decode(target); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

func parseOptionalDate(val *string) (*time.Time, error) {
	if val == nil || *val == "" {
		return nil, nil
	}
	if t, err := time.Parse("2006-01-02", *val); err == nil {
		return &t, nil
	}
	t, err := time.Parse(time.RFC3339, *val)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func stringOrDefault(val *string, def string) string {
	if val == nil {
		return def
	}
	return *val
}
