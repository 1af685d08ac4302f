package stats

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/fitcoach/fitcoach/internal/auth"
	"github.com/fitcoach/fitcoach/internal/macros"
	"github.com/fitcoach/fitcoach/internal/profile"
	"github.com/fitcoach/fitcoach/internal/telemetry/tracing"
	"github.com/fitcoach/fitcoach/pkg"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

// DefaultOverviewSpanDays is the trailing window used when no range is given
const DefaultOverviewSpanDays = 30

type nutritionSource interface {
	NutritionRows(ctx context.Context, userID int, rng Range) ([]NutritionRow, error)
}

type workoutsSource interface {
	WorkoutRows(ctx context.Context, userID int, rng Range) ([]WorkoutRow, error)
}

type profileRepo interface {
	Get(ctx context.Context, userID int) (*profile.Profile, error)
}

//go:generate mockgen -source=handler.go -destination=handler_mocks_test.go -package=stats_test

type Handler struct {
	nutrition nutritionSource
	workouts  workoutsSource
	profiles  profileRepo

	// NowFunc is an injectable clock, to keep default-window behavior testable
	NowFunc func() time.Time
}

func NewHandler(nutrition nutritionSource, workouts workoutsSource, profiles profileRepo) *Handler {
	return &Handler{
		nutrition: nutrition,
		workouts:  workouts,
		profiles:  profiles,
		NowFunc:   time.Now,
	}
}

func (handler *Handler) HandleOverview(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.stats.overview")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}
	span.SetAttributes(attribute.Int("user.id", userID))

	from, err := ParseDateQueryParam(r.URL.Query().Get("from"))
	if err != nil {
		http.Error(w, "invalid <from> date, use YYYY-MM-DD", http.StatusBadRequest)
		return
	}
	to, err := ParseDateQueryParam(r.URL.Query().Get("to"))
	if err != nil {
		http.Error(w, "invalid <to> date, use YYYY-MM-DD", http.StatusBadRequest)
		return
	}

	rng := ResolveRange(from, to, DefaultOverviewSpanDays, handler.NowFunc())
	span.SetAttributes(
		attribute.String("range.start", rng.Start.Format(time.RFC3339)),
		attribute.String("range.end", rng.End.Format(time.RFC3339)),
	)

	meals, err := handler.nutrition.NutritionRows(ctx, userID, rng)
	if err != nil {
		log.Errorf("stats overview, get nutrition rows for user %d: %s", userID, err)
		http.Error(w, "failed to load stats", http.StatusInternalServerError)
		return
	}

	workouts, err := handler.workouts.WorkoutRows(ctx, userID, rng)
	if err != nil {
		log.Errorf("stats overview, get workout rows for user %d: %s", userID, err)
		http.Error(w, "failed to load stats", http.StatusInternalServerError)
		return
	}

	var targets *macros.Targets
	p, err := handler.profiles.Get(ctx, userID)
	switch {
	case err == nil:
		t := macros.Calculate(p.MacroData())
		targets = &t
	case errors.Is(err, profile.ErrProfileNotFound):
		// no profile, no targets - the overview still renders
	default:
		log.Errorf("stats overview, get profile for user %d: %s", userID, err)
		http.Error(w, "failed to load stats", http.StatusInternalServerError)
		return
	}

	overview := Project(Aggregate(meals, workouts), targets)

	overviewJson, err := json.Marshal(overview)
	if err != nil {
		log.Errorf("marshal stats overview: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, overviewJson)
}

// ParseDateQueryParam parses an optional YYYY-MM-DD request parameter.
// Empty input is valid absence; anything else must parse or the request
// should be rejected before reaching the aggregation core.
func ParseDateQueryParam(val string) (*time.Time, error) {
	if val == "" {
		return nil, nil
	}
	t, err := time.Parse("2006-01-02", val)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
