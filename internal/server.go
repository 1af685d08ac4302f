package internal

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/IBM/pgxpoolprometheus"
	"github.com/go-redis/redis/extra/redisotel/v8"
	"github.com/go-redis/redis/v8"
	"github.com/go-redis/redis_rate/v9"
	"github.com/gorilla/mux"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gorilla/mux/otelmux"
	"go.uber.org/multierr"

	"github.com/fitcoach/fitcoach/internal/aicoach"
	"github.com/fitcoach/fitcoach/internal/auth"
	"github.com/fitcoach/fitcoach/internal/config"
	"github.com/fitcoach/fitcoach/internal/db"
	"github.com/fitcoach/fitcoach/internal/middleware"
	"github.com/fitcoach/fitcoach/internal/misc"
	"github.com/fitcoach/fitcoach/internal/nutrition"
	"github.com/fitcoach/fitcoach/internal/profile"
	"github.com/fitcoach/fitcoach/internal/stats"
	"github.com/fitcoach/fitcoach/internal/telemetry/metrics"
	"github.com/fitcoach/fitcoach/internal/telemetry/tracing"
	"github.com/fitcoach/fitcoach/internal/workouts"
)

type Server struct {
	httpServer        *http.Server
	metricsHttpServer *http.Server
	versionInfo       string

	config *config.Config
	dbPool *pgxpool.Pool

	redisClient  *redis.Client
	loginChecker *auth.LoginChecker
	authService  *auth.Service

	aiClient *aicoach.Client

	// telemetry
	metricsManager *metrics.Manager
	promRegistry   *prometheus.Registry
	otelShutdown   func()
}

type NewServerParams struct {
	Config         *config.Config
	VersionInfo    string
	AiAPIKey       string
	RedisPassword  string
	TracingEnabled bool
}

func NewServer(
	ctx context.Context,
	params NewServerParams,
) (*Server, error) {
	dbPool, err := db.NewDBPool(ctx, db.NewDBPoolParams{
		DBHost:         params.Config.PostgresHost,
		DBPort:         params.Config.PostgresPort,
		DBName:         params.Config.PostgresDBName,
		TracingEnabled: params.TracingEnabled,
	})
	if err != nil {
		return nil, fmt.Errorf("new db pool: %w", err)
	}

	if err := dbPool.Ping(ctx); err != nil {
		log.Warnf("failed to ping db: %s", err)
	}

	pgxpoolCollector := pgxpoolprometheus.NewCollector(
		dbPool,
		map[string]string{"db_name": params.Config.PostgresDBName},
	)
	promRegistry := metrics.SetupPrometheus(pgxpoolCollector)
	metricsManager := metrics.NewManager("fitcoach", "backend", promRegistry)
	metricsManager.GaugeLifeSignal.Set(0)

	rdb := redis.NewClient(&redis.Options{
		Addr:     net.JoinHostPort(params.Config.RedisHost, params.Config.RedisPort),
		Password: params.RedisPassword,
		DB:       0, // use default DB
	})
	if params.TracingEnabled {
		rdb.AddHook(redisotel.NewTracingHook())
	}

	rdbStatus := rdb.Ping(ctx)
	if err := rdbStatus.Err(); err != nil {
		log.Errorf("--> failed to ping redis: %s", err)
	} else {
		log.Debugf("redis ping: %s", rdbStatus.Val())
	}

	authService := auth.NewService(auth.NewRepo(dbPool), auth.DefaultTTL, rdb)
	go func() {
		for range time.Tick(time.Hour * 8) {
			authService.ScanAndClean(ctx)
		}
	}()

	otelShutdown, err := tracing.Setup(params.TracingEnabled, "fitcoach-backend")
	if err != nil {
		return nil, err
	}

	return &Server{
		config:      params.Config,
		dbPool:      dbPool,
		versionInfo: params.VersionInfo,

		redisClient:  rdb,
		authService:  authService,
		loginChecker: auth.NewLoginChecker(auth.DefaultTTL, rdb),

		aiClient: aicoach.NewClient(
			params.Config.AiAPIBaseURL,
			params.AiAPIKey,
			params.Config.AiModel,
			metricsManager,
		),

		metricsManager: metricsManager,
		promRegistry:   promRegistry,
		otelShutdown:   otelShutdown,
	}, nil
}

func (s *Server) routerSetup() *mux.Router {
	r := mux.NewRouter()
	r.Use(otelmux.Middleware("main-router"))

	usersRepo := auth.NewRepo(s.dbPool)
	profileRepo := profile.NewRepo(s.dbPool)
	nutritionRepo := nutrition.NewRepo(s.dbPool)
	workoutsRepo := workouts.NewRepo(s.dbPool)

	miscHandler := misc.NewHandler(s.versionInfo, s.dbPool, usersRepo)
	miscHandler.SetupRoutes(r)

	authHandler := auth.NewHandler(s.authService)
	authRouter := r.PathPrefix("/auth").Subrouter()
	authRouter.HandleFunc("/register", authHandler.HandleRegister).Methods("POST", "OPTIONS").Name("register")
	authRouter.HandleFunc("/login", authHandler.HandleLogin).Methods("POST", "OPTIONS").Name("login")
	authRouter.HandleFunc("/logout", authHandler.HandleLogout).Methods("POST", "OPTIONS").Name("logout")
	// rate limit the auth endpoints to prevent abuse
	authRouter.Use(middleware.RateLimit(
		redis_rate.NewLimiter(s.redisClient),
		"login",
		s.config.LoginRateLimitAllowedPerMin,
		s.metricsManager,
	))

	profileHandler := profile.NewHandler(profileRepo)
	r.HandleFunc("/profile/me", profileHandler.HandleMe).Methods("GET", "OPTIONS").Name("get-profile")
	r.HandleFunc("/profile/upsert", profileHandler.HandleUpsert).Methods("POST", "OPTIONS").Name("upsert-profile")

	nutritionHandler := nutrition.NewHandler(nutritionRepo, s.metricsManager)
	r.HandleFunc("/nutrition/entries", nutritionHandler.HandleList).Methods("GET", "OPTIONS").Name("list-meal-entries")
	r.HandleFunc("/nutrition/entries", nutritionHandler.HandleAdd).Methods("POST", "OPTIONS").Name("new-meal-entry")
	r.HandleFunc("/nutrition/entries/{id}", nutritionHandler.HandleDelete).Methods("DELETE", "OPTIONS").Name("remove-meal-entry")

	workoutsHandler := workouts.NewHandler(workoutsRepo, s.metricsManager)
	r.HandleFunc("/workouts/templates", workoutsHandler.HandleListTemplates).Methods("GET", "OPTIONS").Name("list-workout-templates")
	r.HandleFunc("/workouts/templates", workoutsHandler.HandleAddTemplate).Methods("POST", "OPTIONS").Name("new-workout-template")
	r.HandleFunc("/workouts/templates/{id}", workoutsHandler.HandleDeleteTemplate).Methods("DELETE", "OPTIONS").Name("remove-workout-template")
	r.HandleFunc("/workouts/logs", workoutsHandler.HandleListLogs).Methods("GET", "OPTIONS").Name("list-workout-logs")
	r.HandleFunc("/workouts/logs", workoutsHandler.HandleAddLog).Methods("POST", "OPTIONS").Name("new-workout-log")
	r.HandleFunc("/workouts/logs/{id}", workoutsHandler.HandleDeleteLog).Methods("DELETE", "OPTIONS").Name("remove-workout-log")

	statsHandler := stats.NewHandler(nutritionRepo, workoutsRepo, profileRepo)
	r.HandleFunc("/stats/overview", statsHandler.HandleOverview).Methods("GET", "OPTIONS").Name("stats-overview")

	aiHandler := aicoach.NewHandler(
		s.aiClient,
		aicoach.NewRepo(s.dbPool),
		profileRepo,
		nutritionRepo,
		workoutsRepo,
		s.metricsManager,
	)
	r.HandleFunc("/ai/weekly-review", aiHandler.HandleWeeklyReview).Methods("POST", "OPTIONS").Name("ai-weekly-review")
	r.HandleFunc("/ai/workout-plan", aiHandler.HandleWorkoutPlan).Methods("POST", "OPTIONS").Name("ai-workout-plan")
	r.HandleFunc("/ai/meal-plan", aiHandler.HandleMealPlan).Methods("POST", "OPTIONS").Name("ai-meal-plan")
	r.HandleFunc("/ai/feedbacks", aiHandler.HandleListFeedbacks).Methods("GET", "OPTIONS").Name("ai-feedbacks")

	// all the rest - unhandled paths
	r.HandleFunc("/{unknown}", func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}).Methods("GET", "POST", "PUT", "DELETE", "OPTIONS").Name("unknown")

	authMiddleware := middleware.NewAuthMiddlewareHandler(s.loginChecker)

	r.Use(middleware.PanicRecovery(s.metricsManager))
	r.Use(middleware.LogRequest())
	r.Use(middleware.RequestMetrics(s.metricsManager))
	r.Use(middleware.Cors())
	r.Use(authMiddleware.AuthCheck())
	r.Use(middleware.DrainAndCloseRequest())

	return r
}

func (s *Server) Serve(host string, port int) {
	router := s.routerSetup()

	ipAndPort := net.JoinHostPort(host, strconv.Itoa(port))
	s.httpServer = &http.Server{
		Handler:      router,
		Addr:         ipAndPort,
		WriteTimeout: time.Minute,
		ReadTimeout:  time.Minute,
	}

	metricsRouter := mux.NewRouter()
	metricsRouter.Handle("/metrics", promhttp.HandlerFor(
		s.promRegistry,
		promhttp.HandlerOpts{},
	))
	metricsAddr := net.JoinHostPort(s.config.PrometheusMetricsHost, s.config.PrometheusMetricsPort)
	s.metricsHttpServer = &http.Server{
		Addr:    metricsAddr,
		Handler: metricsRouter,
	}

	go func() {
		log.Infof(" > server listening on: [%s]", ipAndPort)
		err := s.httpServer.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("main service, listen and serve: %s", err)
		}
	}()

	go func() {
		log.Debugf(" > metrics listening on: [%s]", metricsAddr)
		err := s.metricsHttpServer.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("metrics service, listen and serve: %s", err)
		}
	}()

	s.metricsManager.GaugeLifeSignal.Set(1)
}

func (s *Server) GracefulShutdown() {
	log.Debug("graceful shutdown initiated ...")

	s.metricsManager.GaugeLifeSignal.Set(0)

	s.otelShutdown()
	log.Trace("otel shut down ...")

	var shutdownErr error

	if s.redisClient != nil {
		if err := s.redisClient.Close(); err != nil {
			shutdownErr = multierr.Append(shutdownErr, fmt.Errorf("close redis client: %w", err))
		}
	}

	if s.dbPool != nil {
		log.Debugln("closing db pool ...")
		s.dbPool.Close() // blocking operation
		log.Debugln("db pool closed")
	}

	maxWaitDuration := time.Second * 15
	ctx, timeoutCancel := context.WithTimeout(context.Background(), maxWaitDuration)
	defer timeoutCancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		shutdownErr = multierr.Append(shutdownErr, fmt.Errorf("shutdown http server: %w", err))
	}
	log.Warnln("server shut down")

	if err := s.metricsHttpServer.Shutdown(ctx); err != nil {
		shutdownErr = multierr.Append(shutdownErr, fmt.Errorf("shutdown metrics http server: %w", err))
	}
	log.Warnln("metrics server shut down")

	if shutdownErr != nil {
		log.Errorf("graceful shutdown errors: %s", shutdownErr)
	}
}
