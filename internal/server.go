package internal

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/utrackapp/utrack/internal/config"
	"github.com/utrackapp/utrack/internal/db"
	"github.com/utrackapp/utrack/internal/fitness/events"
	"github.com/utrackapp/utrack/internal/fitness/recovery"
	"github.com/utrackapp/utrack/internal/fitness/scoring"
	"github.com/utrackapp/utrack/internal/fitness/workouts"
	"github.com/utrackapp/utrack/internal/middleware"
	"github.com/utrackapp/utrack/internal/telemetry/metrics"
	"github.com/utrackapp/utrack/internal/telemetry/tracing"
	"github.com/utrackapp/utrack/pkg"

	"github.com/IBM/pgxpoolprometheus"
	"github.com/getsentry/sentry-go"
	"github.com/go-redis/redis/v8"
	"github.com/go-redis/redis_rate/v9"
	"github.com/gorilla/mux"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gorilla/mux/otelmux"
)

type Server struct {
	httpServer        *http.Server
	metricsHttpServer *http.Server
	appSecret         string // shared with the mobile apps
	versionInfo       string

	config *config.Config
	dbPool *pgxpool.Pool

	redisClient *redis.Client

	// metrics
	metricsManager *metrics.Manager
	promRegistry   *prometheus.Registry
	otelShutdown   func()
}

type NewServerParams struct {
	Config                  *config.Config
	AppSecret               string
	RedisPassword           string
	VersionInfo             string
	HoneycombTracingEnabled bool
}

func NewServer(
	ctx context.Context,
	params NewServerParams,
) (*Server, error) {
	dbPool, err := db.NewDBPool(ctx, db.PoolParams{
		Host:           params.Config.PostgresHost,
		Port:           params.Config.PostgresPort,
		Name:           params.Config.PostgresDBName,
		TracingEnabled: params.HoneycombTracingEnabled,
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
	metricsManager := metrics.NewManager("utrack", "service", promRegistry)
	metricsManager.GaugeLifeSignal.Set(0)

	rdb := redis.NewClient(&redis.Options{
		Addr:     net.JoinHostPort(params.Config.RedisHost, params.Config.RedisPort),
		Password: params.RedisPassword,
		DB:       0, // use default DB
	})

	rdbStatus := rdb.Ping(ctx)
	if err := rdbStatus.Err(); err != nil {
		log.Errorf("--> failed to ping redis: %s", err)
	} else {
		log.Debugf("redis ping: %s", rdbStatus.Val())
	}

	// use honeycomb distro to setup OpenTelemetry SDK
	otelShutdown, err := tracing.HoneycombSetup(params.HoneycombTracingEnabled, "utrack-service")
	if err != nil {
		return nil, err
	}

	return &Server{
		config:      params.Config,
		dbPool:      dbPool,
		appSecret:   params.AppSecret,
		versionInfo: params.VersionInfo,

		redisClient: rdb,

		// telemetry
		metricsManager: metricsManager,
		promRegistry:   promRegistry,
		otelShutdown:   otelShutdown,
	}, nil
}

func (s *Server) routerSetup() *mux.Router {
	r := mux.NewRouter()
	r.Use(otelmux.Middleware("utrack-router"))

	workoutsRepo := workouts.NewRepo(s.dbPool)
	snapshotRepo := recovery.NewSnapshotRepo(s.dbPool)
	recoveryService := recovery.NewService(
		recovery.NewRepo(s.dbPool),
		snapshotRepo,
		s.metricsManager,
	)

	eventsRepo := events.NewRepo(s.dbPool)
	pipeline := events.NewPipeline(
		workoutsRepo,
		recoveryService,
		eventsRepo,
		events.PipelineConfig{
			RecomputeWindowDays: s.config.RecomputeWindowDays,
			DefaultBodyWeightKg: s.config.DefaultBodyWeightKg,
		},
		s.metricsManager,
	)

	eventsHandler := events.NewHandler(pipeline, eventsRepo)
	r.HandleFunc("/workout/{id}/complete", eventsHandler.HandleComplete).Methods("POST", "OPTIONS").Name("complete-workout")
	r.HandleFunc("/workout/{id}/recalculate", eventsHandler.HandleRecalculate).Methods("POST", "OPTIONS").Name("recalculate-workout")
	r.HandleFunc("/workout/{id}/events", eventsHandler.HandleListEvents).Methods("GET", "OPTIONS").Name("workout-events")

	recoveryHandler := recovery.NewHandler(recoveryService, workoutsRepo)
	r.HandleFunc("/workout/{id}/snapshot/{condition}", recoveryHandler.HandleCaptureSnapshot).Methods("POST", "OPTIONS").Name("capture-snapshot")

	scoringHandler := scoring.NewHandler(
		scoring.NewService(workoutsRepo, snapshotRepo),
	)
	r.HandleFunc("/workout/{id}/summary", scoringHandler.HandleSummary).Methods("GET", "OPTIONS").Name("workout-summary")

	recoveryRouter := r.PathPrefix("/recovery").Subrouter()
	recoveryRouter.HandleFunc("/status", recoveryHandler.HandleStatus).Methods("GET", "OPTIONS").Name("recovery-status")
	recoveryRouter.HandleFunc("/progress", recoveryHandler.HandleProgress).Methods("GET", "OPTIONS").Name("recovery-progress")

	// the apps poll the recovery state aggressively, keep a lid on it
	reqRateLimiter := redis_rate.NewLimiter(s.redisClient)
	recoveryRouter.Use(middleware.RateLimit(
		reqRateLimiter,
		"recovery",
		s.config.StatusRateLimitAllowedPerMin,
		s.metricsManager,
	))

	r.HandleFunc("/health", s.handleHealth).Methods("GET").Name("health")
	r.HandleFunc("/version", s.handleVersion).Methods("GET").Name("version")

	// all the rest - unhandled paths
	r.HandleFunc("/{unknown}", func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}).Methods("GET", "POST", "PUT", "OPTIONS").Name("unknown")

	authMiddleware := middleware.NewAuthMiddlewareHandler(s.appSecret)

	r.Use(middleware.PanicRecovery(s.metricsManager))
	r.Use(middleware.LogRequest())
	r.Use(middleware.RequestMetrics(s.metricsManager))
	r.Use(middleware.Cors())
	r.Use(authMiddleware.AuthCheck())
	r.Use(middleware.DrainAndCloseRequest())

	return r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	if err := s.dbPool.Ping(ctx); err != nil {
		log.Errorf("health check, db ping: %s", err)
		pkg.WriteResponseBytes(w, pkg.ContentType.JSON, []byte(`{"status":"db unreachable"}`), http.StatusServiceUnavailable)
		return
	}
	if err := s.redisClient.Ping(ctx).Err(); err != nil {
		log.Errorf("health check, redis ping: %s", err)
		pkg.WriteResponseBytes(w, pkg.ContentType.JSON, []byte(`{"status":"redis unreachable"}`), http.StatusServiceUnavailable)
		return
	}

	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, []byte(`{"status":"ok"}`))
}

func (s *Server) handleVersion(w http.ResponseWriter, _ *http.Request) {
	pkg.WriteTextResponseOK(w, s.versionInfo)
}

func (s *Server) Serve(_ context.Context, host string, port int) {
	router := s.routerSetup()

	ipAndPort := net.JoinHostPort(host, strconv.Itoa(port))
	s.httpServer = &http.Server{
		Handler:      router,
		Addr:         ipAndPort,
		WriteTimeout: time.Minute,
		ReadTimeout:  time.Minute,
		ConnState:    s.connStateMetrics,
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

	if s.redisClient != nil {
		if err := s.redisClient.Close(); err != nil {
			log.Errorf("failed to close redis client conn: %s", err)
		}
	}

	if s.dbPool != nil {
		log.Debugln("closing db pool ...")
		s.dbPool.Close() // blocking operation
		log.Debugln("db pool closed")
	}

	if ok := sentry.Flush(5 * time.Second); ok {
		log.Debugf("sentry flush ok: %t", ok)
	}

	maxWaitDuration := time.Second * 15
	ctx, timeoutCancel := context.WithTimeout(context.Background(), maxWaitDuration)
	defer timeoutCancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		log.Error(" >>> failed to gracefully shutdown http server")
	}
	log.Warnln("server shut down")

	if err := s.metricsHttpServer.Shutdown(ctx); err != nil {
		log.Error(" >>> failed to gracefully shutdown metrics http server")
	}
	log.Warnln("metrics server shut down")
}

func (s *Server) connStateMetrics(_ net.Conn, state http.ConnState) {
	switch state {
	case http.StateNew:
		s.metricsManager.GaugeRequests.Add(1)
	case http.StateClosed:
		s.metricsManager.GaugeRequests.Add(-1)
	default:
		// do nothing
	}
}
