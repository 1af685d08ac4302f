package workouts

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"

	"github.com/fitcoach/fitcoach/internal/auth"
	"github.com/fitcoach/fitcoach/internal/stats"
	"github.com/fitcoach/fitcoach/internal/telemetry/metrics"
	"github.com/fitcoach/fitcoach/internal/telemetry/tracing"
	"github.com/fitcoach/fitcoach/pkg"
)

type workoutsRepo interface {
	ListTemplates(ctx context.Context, userID int) ([]WorkoutTemplate, error)
	AddTemplate(ctx context.Context, userID int, name string, exercises []ExerciseInput, createdAt time.Time) (WorkoutTemplate, error)
	DeleteTemplate(ctx context.Context, userID, templateID int) error
	ListLogs(ctx context.Context, userID int, from, to *time.Time) ([]WorkoutLog, error)
	AddLog(ctx context.Context, params AddLogParams) (WorkoutLog, error)
	DeleteLog(ctx context.Context, userID, logID int) error
}

//go:generate mockgen -source=handler.go -destination=handler_mocks_test.go -package=workouts_test

type Handler struct {
	repo    workoutsRepo
	metrics *metrics.Manager

	// NowFunc stamps created templates and logs, injectable in tests
	NowFunc func() time.Time
}

func NewHandler(repo workoutsRepo, metrics *metrics.Manager) *Handler {
	return &Handler{
		repo:    repo,
		metrics: metrics,
		NowFunc: time.Now,
	}
}

func (handler *Handler) HandleListTemplates(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.listTemplates")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	templates, err := handler.repo.ListTemplates(ctx, userID)
	if err != nil {
		log.Errorf("list workout templates for user %d: %s", userID, err)
		http.Error(w, "failed to load workout templates", http.StatusInternalServerError)
		return
	}

	span.SetAttributes(attribute.Int("templates.count", len(templates)))

	writeJSON(w, struct {
		Templates []WorkoutTemplate `json:"templates"`
	}{Templates: templates}, http.StatusOK)
}

type exerciseRequest struct {
	Name        *string `json:"name"`
	MuscleGroup *string `json:"muscleGroup"`
	Sets        *int    `json:"sets"`
	Reps        *int    `json:"reps"`
	Rir         *int    `json:"rir"`
}

func (e exerciseRequest) valid() bool {
	return e.Name != nil && *e.Name != "" &&
		e.MuscleGroup != nil && *e.MuscleGroup != "" &&
		e.Sets != nil && *e.Sets != 0 &&
		e.Reps != nil && *e.Reps != 0 &&
		e.Rir != nil
}

func (handler *Handler) HandleAddTemplate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.addTemplate")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	var req struct {
		Name      string            `json:"name"`
		Exercises []exerciseRequest `json:"exercises"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	if req.Name == "" || len(req.Exercises) == 0 {
		http.Error(w, "name and at least one exercise are required", http.StatusBadRequest)
		return
	}

	exercises := make([]ExerciseInput, 0, len(req.Exercises))
	for _, e := range req.Exercises {
		if !e.valid() {
			continue
		}
		exercises = append(exercises, ExerciseInput{
			Name:        *e.Name,
			MuscleGroup: *e.MuscleGroup,
			Sets:        *e.Sets,
			Reps:        *e.Reps,
			Rir:         *e.Rir,
		})
	}
	if len(exercises) == 0 {
		http.Error(w, "at least one valid exercise is required", http.StatusBadRequest)
		return
	}

	template, err := handler.repo.AddTemplate(ctx, userID, req.Name, exercises, handler.NowFunc())
	if err != nil {
		log.Errorf("add workout template for user %d: %s", userID, err)
		http.Error(w, "failed to create workout template", http.StatusInternalServerError)
		return
	}

	span.SetAttributes(attribute.Int("template.id", template.ID))

	writeJSON(w, struct {
		Template WorkoutTemplate `json:"template"`
	}{Template: template}, http.StatusCreated)
}

func (handler *Handler) HandleDeleteTemplate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.deleteTemplate")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	templateID, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "invalid template id", http.StatusBadRequest)
		return
	}

	switch err := handler.repo.DeleteTemplate(ctx, userID, templateID); {
	case err == nil:
		pkg.WriteJSONResponseOK(w, `{"success":true}`)
	case errors.Is(err, ErrTemplateNotFound):
		http.Error(w, "template not found", http.StatusNotFound)
	case errors.Is(err, ErrTemplateHasLogs):
		http.Error(w, "template has workout logs, delete them first", http.StatusBadRequest)
	default:
		log.Errorf("delete workout template %d for user %d: %s", templateID, userID, err)
		http.Error(w, "failed to delete workout template", http.StatusInternalServerError)
	}
}

func (handler *Handler) HandleListLogs(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.listLogs")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	from, err := stats.ParseDateQueryParam(r.URL.Query().Get("from"))
	if err != nil {
		http.Error(w, "invalid <from> date, use YYYY-MM-DD", http.StatusBadRequest)
		return
	}
	to, err := stats.ParseDateQueryParam(r.URL.Query().Get("to"))
	if err != nil {
		http.Error(w, "invalid <to> date, use YYYY-MM-DD", http.StatusBadRequest)
		return
	}

	logs, err := handler.repo.ListLogs(ctx, userID, from, to)
	if err != nil {
		log.Errorf("list workout logs for user %d: %s", userID, err)
		http.Error(w, "failed to load workout logs", http.StatusInternalServerError)
		return
	}

	span.SetAttributes(attribute.Int("logs.count", len(logs)))

	writeJSON(w, struct {
		Logs []WorkoutLog `json:"logs"`
	}{Logs: logs}, http.StatusOK)
}

type setRequest struct {
	ExerciseTemplateID *int     `json:"exerciseTemplateId"`
	SetIndex           *int     `json:"setIndex"`
	WeightKg           *float64 `json:"weightKg"`
	Reps               *int     `json:"reps"`
	Rir                *int     `json:"rir"`
}

func (s setRequest) valid() bool {
	return s.ExerciseTemplateID != nil && *s.ExerciseTemplateID != 0 &&
		s.SetIndex != nil && s.WeightKg != nil && s.Reps != nil
}

func (handler *Handler) HandleAddLog(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.addLog")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	var req struct {
		Date              string       `json:"date"`
		WorkoutTemplateID *int         `json:"workoutTemplateId"`
		Notes             *string      `json:"notes"`
		Sets              []setRequest `json:"sets"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	if req.Date == "" {
		http.Error(w, "date is required", http.StatusBadRequest)
		return
	}
	date, err := parseLogDate(req.Date)
	if err != nil {
		http.Error(w, "invalid date, use YYYY-MM-DD", http.StatusBadRequest)
		return
	}

	sets := make([]SetInput, 0, len(req.Sets))
	for _, s := range req.Sets {
		if !s.valid() {
			continue
		}
		sets = append(sets, SetInput{
			ExerciseTemplateID: *s.ExerciseTemplateID,
			SetIndex:           *s.SetIndex,
			WeightKg:           *s.WeightKg,
			Reps:               *s.Reps,
			Rir:                s.Rir,
		})
	}

	workoutLog, err := handler.repo.AddLog(ctx, AddLogParams{
		UserID:     userID,
		Date:       date,
		TemplateID: req.WorkoutTemplateID,
		Notes:      req.Notes,
		Sets:       sets,
		CreatedAt:  handler.NowFunc(),
	})
	if err != nil {
		if errors.Is(err, ErrInvalidExerciseTemplate) {
			http.Error(w, "unknown exercise template referenced", http.StatusBadRequest)
			return
		}
		log.Errorf("add workout log for user %d: %s", userID, err)
		http.Error(w, "failed to create workout log", http.StatusInternalServerError)
		return
	}

	handler.metrics.CounterWorkoutLogs.Inc()
	span.SetAttributes(attribute.Int("log.id", workoutLog.ID))

	writeJSON(w, struct {
		Log WorkoutLog `json:"log"`
	}{Log: workoutLog}, http.StatusCreated)
}

func (handler *Handler) HandleDeleteLog(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.deleteLog")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	logID, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "invalid log id", http.StatusBadRequest)
		return
	}

	switch err := handler.repo.DeleteLog(ctx, userID, logID); {
	case err == nil:
		pkg.WriteJSONResponseOK(w, `{"success":true}`)
	case errors.Is(err, ErrLogNotFound):
		http.Error(w, "log not found", http.StatusNotFound)
	default:
		log.Errorf("delete workout log %d for user %d: %s", logID, userID, err)
		http.Error(w, "failed to delete workout log", http.StatusInternalServerError)
	}
}

func writeJSON(w http.ResponseWriter, payload interface{}, statusCode int) {
	payloadJson, err := json.Marshal(payload)
	if err != nil {
		log.Errorf("marshal workouts response: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, payloadJson, statusCode)
}

func parseLogDate(val string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", val); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, val)
}
