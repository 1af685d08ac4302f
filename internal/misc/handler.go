package misc

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"

	"github.com/fitcoach/fitcoach/internal/telemetry/tracing"
	"github.com/fitcoach/fitcoach/pkg"
)

type usersCounter interface {
	Count(ctx context.Context) (int, error)
}

type dbPinger interface {
	Ping(ctx context.Context) error
}

//go:generate mockgen -source=handler.go -destination=handler_mocks_test.go -package=misc_test

type Handler struct {
	versionInfo string
	db          dbPinger
	users       usersCounter
}

func NewHandler(versionInfo string, db dbPinger, users usersCounter) *Handler {
	return &Handler{
		versionInfo: versionInfo,
		db:          db,
		users:       users,
	}
}

func (handler *Handler) SetupRoutes(mainRouter *mux.Router) {
	mainRouter.HandleFunc("/", handler.handleRoot).Methods("GET", "OPTIONS").Name("root")
	mainRouter.HandleFunc("/version", handler.handleGetVersionInfo).Methods("GET").Name("version")
	mainRouter.HandleFunc("/health", handler.handleHealth).Methods("GET").Name("health")
}

func (handler *Handler) handleRoot(w http.ResponseWriter, _ *http.Request) {
	pkg.WriteTextResponseOK(w, "I'm OK, thanks ;)")
}

func (handler *Handler) handleGetVersionInfo(w http.ResponseWriter, _ *http.Request) {
	pkg.WriteTextResponseOK(w, handler.versionInfo)
}

func (handler *Handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "miscHandler.health")
	defer span.End()

	if err := handler.db.Ping(ctx); err != nil {
		log.Errorf("health check, db ping: %s", err)
		http.Error(w, `{"status":"down","reason":"database unreachable"}`, http.StatusServiceUnavailable)
		return
	}

	usersCount, err := handler.users.Count(ctx)
	if err != nil {
		log.Errorf("health check, count users: %s", err)
		http.Error(w, `{"status":"down","reason":"database unreachable"}`, http.StatusServiceUnavailable)
		return
	}

	healthJson, err := json.Marshal(struct {
		Status string `json:"status"`
		Users  int    `json:"users"`
	}{Status: "up", Users: usersCount})
	if err != nil {
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, healthJson)
}
