package internal

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/go-redis/redis_rate/v9"
	"github.com/gorilla/mux"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gorilla/mux/otelmux"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/2beens/coachboard/internal/coaching/builder"
	"github.com/2beens/coachboard/internal/coaching/catalog"
	"github.com/2beens/coachboard/internal/coaching/editor"
	coachmcp "github.com/2beens/coachboard/internal/coaching/mcp"
	"github.com/2beens/coachboard/internal/coaching/progress"
	"github.com/2beens/coachboard/internal/coaching/remote"
	"github.com/2beens/coachboard/internal/config"
	"github.com/2beens/coachboard/internal/logging"
	"github.com/2beens/coachboard/internal/middleware"
	"github.com/2beens/coachboard/internal/telemetry/metrics"
	"github.com/2beens/coachboard/internal/telemetry/tracing"
)

const (
	defaultDraftTTL          = 12 * time.Hour
	defaultSaveLimitPerMin   = 10
	saveRateLimitRouterName  = "editor-save"
	saveRateLimitKeyVariable = "programId"
)

type Server struct {
	httpServer        *http.Server
	metricsHttpServer *http.Server

	config        *config.Config
	remoteApi     *remote.Api
	redisClient   *redis.Client
	rateLimiter   middleware.RequestRateLimiter
	editorManager *editor.Manager
	draftTTL      time.Duration

	// metrics
	metricsManager *metrics.Manager
	promRegistry   *prometheus.Registry
	otelShutdown   func()
}

type NewServerParams struct {
	Config                  *config.Config
	RedisPassword           string
	CoachApiToken           string
	HoneycombTracingEnabled bool
}

func NewServer(
	ctx context.Context,
	params NewServerParams,
) (*Server, error) {
	promRegistry := metrics.SetupPrometheus()
	metricsManager := metrics.NewManager("coachboard", "main", promRegistry)
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
	otelShutdown, err := tracing.HoneycombSetup(params.HoneycombTracingEnabled, "coachboard", rdb)
	if err != nil {
		return nil, fmt.Errorf("honeycomb setup: %w", err)
	}

	tracedHttpClient := &http.Client{
		Transport: otelhttp.NewTransport(http.DefaultTransport),
		// zero means no timeout
		Timeout: time.Duration(params.Config.CoachApiTimeoutSeconds) * time.Second,
	}

	remoteApi := remote.NewApi(remote.ApiParams{
		BaseURL:             params.Config.CoachApiBaseURL,
		Token:               params.CoachApiToken,
		HttpClient:          tracedHttpClient,
		CatalogCacheSeconds: params.Config.CatalogCacheSeconds,
	})

	draftTTL := defaultDraftTTL
	if params.Config.DraftTTLMinutes > 0 {
		draftTTL = time.Duration(params.Config.DraftTTLMinutes) * time.Minute
	}

	return &Server{
		config:      params.Config,
		remoteApi:   remoteApi,
		redisClient: rdb,
		rateLimiter: redis_rate.NewLimiter(rdb),
		draftTTL:    draftTTL,
		editorManager: editor.NewManager(
			remoteApi,
			editor.NewRedisDraftStore(draftTTL, rdb),
			metricsManager,
			time.Now,
		),

		// telemetry
		metricsManager: metricsManager,
		promRegistry:   promRegistry,
		otelShutdown:   otelShutdown,
	}, nil
}

func (s *Server) routerSetup() *mux.Router {
	r := mux.NewRouter()
	r.Use(otelmux.Middleware("main-router"))

	catalogHandler := catalog.NewHandler(s.remoteApi)
	r.HandleFunc("/catalog/exercises", catalogHandler.HandleList).Methods("GET", "OPTIONS").Name("list-exercises")
	r.HandleFunc("/catalog/exercises/{id}", catalogHandler.HandleGet).Methods("GET", "OPTIONS").Name("get-exercise")

	builderHandler := builder.NewHandler(s.remoteApi, s.metricsManager, s.draftTTL, time.Now)
	r.HandleFunc("/builder", builderHandler.HandleNewDraft).Methods("POST", "OPTIONS").Name("new-draft")
	r.HandleFunc("/builder/{id}", builderHandler.HandleGetDraft).Methods("GET", "OPTIONS").Name("get-draft")
	r.HandleFunc("/builder/{id}", builderHandler.HandleUpdateDraft).Methods("PATCH", "OPTIONS").Name("update-draft")
	r.HandleFunc("/builder/{id}/weeks", builderHandler.HandleAddWeek).Methods("POST", "OPTIONS").Name("add-week")
	r.HandleFunc("/builder/{id}/weeks/{week}", builderHandler.HandleRemoveWeek).Methods("DELETE", "OPTIONS").Name("remove-week")
	r.HandleFunc("/builder/{id}/weeks/{week}/days", builderHandler.HandleAddDay).Methods("POST", "OPTIONS").Name("add-day")
	r.HandleFunc("/builder/{id}/weeks/{week}/days/{day}", builderHandler.HandleRemoveDay).Methods("DELETE", "OPTIONS").Name("remove-day")
	r.HandleFunc("/builder/{id}/weeks/{week}/days/{day}/exercises", builderHandler.HandleAddExercise).Methods("POST", "OPTIONS").Name("add-exercise")
	r.HandleFunc("/builder/{id}/weeks/{week}/days/{day}/exercises/{exercise}", builderHandler.HandleRemoveExercise).Methods("DELETE", "OPTIONS").Name("remove-draft-exercise")
	r.HandleFunc("/builder/{id}/submit", builderHandler.HandleSubmit).Methods("POST", "OPTIONS").Name("submit-draft")

	editorHandler := editor.NewHandler(s.editorManager)
	r.HandleFunc("/editor/programs/{programId}", editorHandler.HandleOpen).Methods("GET", "OPTIONS").Name("open-program")
	r.HandleFunc("/editor/programs/{programId}", editorHandler.HandleClose).Methods("DELETE", "OPTIONS").Name("close-program")
	r.HandleFunc("/editor/programs/{programId}/sets", editorHandler.HandleSetValue).Methods("PUT", "OPTIONS").Name("set-value")
	r.HandleFunc("/editor/programs/{programId}/sets", editorHandler.HandleClearValue).Methods("DELETE", "OPTIONS").Name("clear-value")
	r.HandleFunc("/editor/programs/{programId}/exercises/{exerciseId}", editorHandler.HandleRemoveExercise).Methods("DELETE", "OPTIONS").Name("remove-exercise")
	r.HandleFunc("/editor/programs/{programId}/exercises/{exerciseId}/targets", editorHandler.HandleUpdateTargets).Methods("PUT", "OPTIONS").Name("update-targets")

	saveLimit := s.config.SaveRateLimitPerMin
	if saveLimit <= 0 {
		saveLimit = defaultSaveLimitPerMin
	}
	saveRateLimit := middleware.RateLimit(s.rateLimiter, s.metricsManager, saveRateLimitRouterName, saveRateLimitKeyVariable, saveLimit)
	r.Handle("/editor/programs/{programId}/save", saveRateLimit(http.HandlerFunc(editorHandler.HandleSave))).Methods("POST", "OPTIONS").Name("save-program")

	progressHandler := progress.NewHandler(s.remoteApi)
	r.HandleFunc("/progress/{clientId}/exercise/{exerciseId}", progressHandler.HandleExerciseProgress).Methods("GET", "OPTIONS").Name("exercise-progress")
	r.HandleFunc("/progress/{clientId}/summary", progressHandler.HandleSummary).Methods("GET", "OPTIONS").Name("progress-summary")

	mcpServer := coachmcp.NewServer(s.remoteApi)
	mcpHandler := mcp.NewStreamableHTTPHandler(func(*http.Request) *mcp.Server {
		return mcpServer
	}, nil)
	r.PathPrefix("/mcp").Handler(mcpHandler).Name("mcp")

	// all the rest - unhandled paths
	r.HandleFunc("/{unknown}", func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}).Methods("GET", "POST", "PUT", "OPTIONS").Name("unknown")

	r.Use(middleware.PanicRecovery(s.metricsManager))
	r.Use(middleware.LogRequest())
	r.Use(middleware.RequestMetrics(s.metricsManager))
	r.Use(middleware.Cors(middleware.DefaultAllowedOrigins...))
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
		ConnState:    s.connStateMetrics,
	}

	metricsRouter := mux.NewRouter()
	metricsRouter.Handle("/metrics", promhttp.InstrumentMetricHandler(
		s.promRegistry,
		promhttp.HandlerFor(s.promRegistry, promhttp.HandlerOpts{}),
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

	maxWaitDuration := time.Second * 15
	ctx, timeoutCancel := context.WithTimeout(context.Background(), maxWaitDuration)
	defer timeoutCancel()

	if s.httpServer != nil {
		if err := s.httpServer.Shutdown(ctx); err != nil {
			log.Error(" >>> failed to gracefully shutdown http server")
		}
		log.Warnln("server shut down")
	}

	if s.metricsHttpServer != nil {
		if err := s.metricsHttpServer.Shutdown(ctx); err != nil {
			log.Error(" >>> failed to gracefully shutdown metrics http server")
		}
		log.Warnln("metrics server shut down")
	}

	// editor drafts are written until the http server stops
	if s.redisClient != nil {
		if err := s.redisClient.Close(); err != nil {
			log.Errorf("failed to close redis client conn: %s", err)
		}
	}

	logging.Flush()
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
