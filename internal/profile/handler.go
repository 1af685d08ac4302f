package profile

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/fitcoach/fitcoach/internal/auth"
	"github.com/fitcoach/fitcoach/internal/macros"
	"github.com/fitcoach/fitcoach/internal/telemetry/tracing"
	"github.com/fitcoach/fitcoach/pkg"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

type profileRepo interface {
	Get(ctx context.Context, userID int) (*Profile, error)
	Upsert(ctx context.Context, p Profile) (*Profile, error)
}

//go:generate mockgen -source=handler.go -destination=handler_mocks_test.go -package=profile_test

// ProfileResponse is the payload for both /profile/me and /profile/upsert;
// both fields are null for users without a stored profile
type ProfileResponse struct {
	Profile *Profile        `json:"profile"`
	Macros  *macros.Targets `json:"macros"`
}

type Handler struct {
	repo profileRepo
}

func NewHandler(repo profileRepo) *Handler {
	return &Handler{
		repo: repo,
	}
}

func (handler *Handler) HandleMe(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.profile.me")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}
	span.SetAttributes(attribute.Int("user.id", userID))

	p, err := handler.repo.Get(ctx, userID)
	if err != nil {
		if errors.Is(err, ErrProfileNotFound) {
			// no profile yet is a valid state, not an error
			pkg.WriteJSONResponseOK(w, `{"profile":null,"macros":null}`)
			return
		}
		log.Errorf("failed to get profile for user %d: %s", userID, err)
		http.Error(w, "failed to get profile", http.StatusInternalServerError)
		return
	}

	handler.writeProfileResponse(w, p)
}

func (handler *Handler) HandleUpsert(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.profile.upsert")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}
	span.SetAttributes(attribute.Int("user.id", userID))

	if r.Header.Get("Content-Type") != "application/json" {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	var p Profile
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		log.Errorf("upsert profile, unmarshal json params: %s", err)
		http.Error(w, "upsert profile failed", http.StatusBadRequest)
		return
	}

	if p.Gender == "" || p.Age <= 0 || p.HeightCm <= 0 || p.WeightKg <= 0 ||
		p.ActivityLevel == "" || p.GoalType == "" || p.TrainingDays == "" {
		http.Error(w, "error, missing required fields", http.StatusBadRequest)
		return
	}

	p.UserID = userID
	upserted, err := handler.repo.Upsert(ctx, p)
	if err != nil {
		log.Errorf("failed to upsert profile for user %d: %s", userID, err)
		http.Error(w, "error, failed to upsert profile", http.StatusInternalServerError)
		return
	}

	log.Debugf("profile upserted for user %d: %d", userID, upserted.ID)
	handler.writeProfileResponse(w, upserted)
}

func (handler *Handler) writeProfileResponse(w http.ResponseWriter, p *Profile) {
	targets := macros.Calculate(p.MacroData())
	respJson, err := json.Marshal(ProfileResponse{
		Profile: p,
		Macros:  &targets,
	})
	if err != nil {
		log.Errorf("failed to marshal profile response: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, respJson)
}
