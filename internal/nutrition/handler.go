package nutrition

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"sort"
	"strconv"
	"strings"
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

type mealEntriesRepo interface {
	Add(ctx context.Context, entry MealEntry) (MealEntry, error)
	List(ctx context.Context, userID int, from, to *time.Time) ([]MealEntry, error)
	Delete(ctx context.Context, userID, entryID int) error
}

//go:generate mockgen -source=handler.go -destination=handler_mocks_test.go -package=nutrition_test

type Handler struct {
	repo    mealEntriesRepo
	metrics *metrics.Manager

	// NowFunc stamps created entries, injectable in tests
	NowFunc func() time.Time
}

func NewHandler(repo mealEntriesRepo, metrics *metrics.Manager) *Handler {
	return &Handler{
		repo:    repo,
		metrics: metrics,
		NowFunc: time.Now,
	}
}

type ListEntriesResponse struct {
	Entries []MealEntry  `json:"entries"`
	Totals  []DailyTotal `json:"totals"`
}

func (handler *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.nutrition.list")
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

	entries, err := handler.repo.List(ctx, userID, from, to)
	if err != nil {
		log.Errorf("list meal entries for user %d: %s", userID, err)
		http.Error(w, "failed to load meal entries", http.StatusInternalServerError)
		return
	}

	span.SetAttributes(attribute.Int("entries.count", len(entries)))

	resp := ListEntriesResponse{
		Entries: entries,
		Totals:  dailyTotals(entries),
	}
	respJson, err := json.Marshal(resp)
	if err != nil {
		log.Errorf("marshal meal entries response: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, respJson)
}

func (handler *Handler) HandleAdd(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.nutrition.add")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	var req struct {
		Date     *string  `json:"date"`
		Name     *string  `json:"name"`
		Calories *float64 `json:"calories"`
		Protein  *float64 `json:"protein"`
		Carbs    *float64 `json:"carbs"`
		Fat      *float64 `json:"fat"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	if req.Date == nil || *req.Date == "" || req.Name == nil || strings.TrimSpace(*req.Name) == "" {
		http.Error(w, "date and name are required", http.StatusBadRequest)
		return
	}
	if req.Calories == nil || req.Protein == nil || req.Carbs == nil || req.Fat == nil {
		http.Error(w, "calories and all macros are required", http.StatusBadRequest)
		return
	}

	date, err := parseEntryDate(*req.Date)
	if err != nil {
		http.Error(w, "invalid date, use YYYY-MM-DD", http.StatusBadRequest)
		return
	}

	entry, err := handler.repo.Add(ctx, MealEntry{
		UserID:    userID,
		Date:      date,
		Name:      strings.TrimSpace(*req.Name),
		Calories:  *req.Calories,
		Protein:   *req.Protein,
		Carbs:     *req.Carbs,
		Fat:       *req.Fat,
		CreatedAt: handler.NowFunc(),
	})
	if err != nil {
		log.Errorf("add meal entry for user %d: %s", userID, err)
		http.Error(w, "failed to create meal entry", http.StatusInternalServerError)
		return
	}

	handler.metrics.CounterMealEntries.Inc()
	span.SetAttributes(attribute.Int("entry.id", entry.ID))

	entryJson, err := json.Marshal(struct {
		Entry MealEntry `json:"entry"`
	}{Entry: entry})
	if err != nil {
		log.Errorf("marshal meal entry: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, entryJson, http.StatusCreated)
}

func (handler *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.nutrition.delete")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	vars := mux.Vars(r)
	entryID, err := strconv.Atoi(vars["id"])
	if err != nil {
		http.Error(w, "invalid entry id", http.StatusBadRequest)
		return
	}

	switch err := handler.repo.Delete(ctx, userID, entryID); {
	case err == nil:
		pkg.WriteJSONResponseOK(w, `{"success":true}`)
	case errors.Is(err, ErrEntryNotFound):
		http.Error(w, "entry not found", http.StatusNotFound)
	default:
		log.Errorf("delete meal entry %d for user %d: %s", entryID, userID, err)
		http.Error(w, "failed to delete meal entry", http.StatusInternalServerError)
	}
}

// dailyTotals folds entries into per-day macro sums, one bucket per UTC
// calendar day, ordered by date.
func dailyTotals(entries []MealEntry) []DailyTotal {
	rows := make([]stats.NutritionRow, 0, len(entries))
	for _, entry := range entries {
		rows = append(rows, stats.NutritionRow{
			Date:     entry.Date,
			Calories: entry.Calories,
			Protein:  entry.Protein,
			Carbs:    entry.Carbs,
			Fat:      entry.Fat,
		})
	}

	agg := stats.Aggregate(rows, nil)

	days := make([]string, 0, len(agg.DailyNutrition))
	for day := range agg.DailyNutrition {
		days = append(days, day)
	}
	sort.Strings(days)

	totals := make([]DailyTotal, 0, len(days))
	for _, day := range days {
		dayTotals := agg.DailyNutrition[day]
		totals = append(totals, DailyTotal{
			Date:     day,
			Calories: dayTotals.Calories,
			Protein:  dayTotals.Protein,
			Carbs:    dayTotals.Carbs,
			Fat:      dayTotals.Fat,
		})
	}
	return totals
}

func parseEntryDate(val string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", val); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, val)
}
