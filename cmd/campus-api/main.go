// README: Entry point; loads config, builds tariff tables, wires chat providers and starts the HTTP server.
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"campusos/internal/ai"
	"campusos/internal/config"
	httptransport "campusos/internal/http"
	"campusos/internal/infra"
	"campusos/internal/maps"
	"campusos/internal/modules/chatquota"
	"campusos/internal/modules/fare"
	"campusos/internal/modules/route"
	"campusos/internal/service"
)

var version = "1.0.0"

func main() {
	logger := logrus.New()
	logger.SetOutput(os.Stdout)

	cfg, err := config.Load()
	if err != nil {
		logger.Fatalf("failed to load configuration: %v", err)
	}

	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		logger.Warn("invalid log level, using INFO")
		level = logrus.InfoLevel
	}
	logger.SetLevel(level)
	if cfg.IsProduction() {
		logger.SetFormatter(&logrus.JSONFormatter{})
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	tables, err := loadTariff(ctx, cfg, logger)
	if err != nil {
		logger.Fatalf("failed to load tariff: %v", err)
	}
	fares := fare.NewEngine(tables)
	composer := route.NewComposer(fares, route.DefaultTables())

	var estimator service.TravelEstimator
	if cfg.Maps.APIKey != "" {
		rs, err := maps.NewRouteService(cfg.Maps.APIKey)
		if err != nil {
			logger.WithError(err).Warn("maps disabled")
		} else {
			estimator = rs
		}
	}
	planner := service.NewHomePlanner(composer, estimator, logger)

	providers, closeProviders := ai.BuildProviders(ctx, ai.ProviderKeys{
		GeminiKey:      cfg.AI.GeminiKey,
		GeminiModel:    cfg.AI.GeminiModel,
		OpenAIKey:      cfg.AI.OpenAIKey,
		OpenAIModel:    cfg.AI.OpenAIModel,
		OpenAIEndpoint: cfg.AI.OpenAIEndpoint,
	}, logger)
	defer closeProviders()

	chainCfg := ai.ChainConfig{
		Providers: providers,
		Timeout:   cfg.AI.Timeout,
		Logger:    logger,
	}
	var quota *chatquota.Service
	if cfg.Redis.Addr != "" {
		rdb, err := infra.NewRedis(ctx, cfg.Redis.Addr)
		if err != nil {
			logger.WithError(err).Warn("redis unavailable, chat quota disabled")
		} else {
			defer rdb.Close()
			quota = chatquota.NewService(chatquota.NewStore(rdb), cfg.AI.ChatQuota)
			chainCfg.Gate = quota
			logger.WithField("limit", quota.Limit()).Info("chat quota enabled")
		}
	}

	deps := httptransport.Deps{
		Fares:          fares,
		HomePlanner:    planner,
		Chat:           ai.NewChain(chainCfg),
		Logger:         logger,
		CORSOrigins:    cfg.HTTP.CORSOrigins,
		TrustedProxies: cfg.HTTP.TrustedProxies,
		Version:        version,
	}
	if quota != nil {
		deps.Quota = quota
	}

	router := httptransport.NewRouter(deps)

	srv := &http.Server{
		Addr:         cfg.HTTP.Addr,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: cfg.AI.Timeout*time.Duration(len(providers)+1) + 5*time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.WithFields(logrus.Fields{
			"addr":     cfg.HTTP.Addr,
			"stations": len(fares.Stations()),
			"version":  version,
		}).Info("campus api listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatalf("server error: %v", err)
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Errorf("server forced to shutdown: %v", err)
	}
	logger.Info("server exited")
}

// loadTariff layers defaults, the env fallback distance, the TOML file and
// the Postgres distance table, in that order.
func loadTariff(ctx context.Context, cfg config.Config, logger *logrus.Logger) (fare.Tables, error) {
	tables := fare.DefaultTables()
	tables.FallbackKm = cfg.Tariff.FallbackKm

	if cfg.Tariff.File != "" {
		t, err := fare.LoadFile(tables, cfg.Tariff.File)
		if err != nil {
			return fare.Tables{}, err
		}
		tables = t
		logger.WithField("file", cfg.Tariff.File).Info("tariff file loaded")
	}

	if cfg.DB.DSN != "" {
		pool, err := infra.NewDB(ctx, cfg.DB.DSN)
		if err != nil {
			return fare.Tables{}, err
		}
		defer pool.Close()

		t, err := fare.NewStore(pool).Apply(ctx, tables)
		if err != nil {
			return fare.Tables{}, err
		}
		tables = t
		logger.WithField("stations", len(tables.Stations)).Info("station distances loaded from postgres")
	}

	return tables, tables.Validate()
}
