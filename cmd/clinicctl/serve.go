package main

import (
	"context"
	"fmt"
	"net"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	"github.com/sethvargo/go-envconfig"
	"github.com/spf13/cobra"

	"github.com/imagehealth/clinic-dashboard/internal/api"
	"github.com/imagehealth/clinic-dashboard/internal/api/handler"
	"github.com/imagehealth/clinic-dashboard/internal/core/service"
	"github.com/imagehealth/clinic-dashboard/internal/infrastructure/config"
	mongodb "github.com/imagehealth/clinic-dashboard/internal/infrastructure/db/mongo"
	redisdb "github.com/imagehealth/clinic-dashboard/internal/infrastructure/db/redis"
	"github.com/imagehealth/clinic-dashboard/internal/infrastructure/fixtures"
	httpserver "github.com/imagehealth/clinic-dashboard/internal/infrastructure/http"
	"github.com/imagehealth/clinic-dashboard/internal/infrastructure/http/handlers"
	"github.com/imagehealth/clinic-dashboard/internal/infrastructure/queue"
	"github.com/imagehealth/clinic-dashboard/pkg/logger"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the dashboard HTTP server",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe(cmd.Context())
	},
}

// loadServerConfig reads the environment and initialises the process logger.
func loadServerConfig(ctx context.Context) (*config.Config, zerolog.Logger, error) {
	cfg, err := config.LoadContext(ctx, envconfig.OsLookuper())
	if err != nil {
		return nil, zerolog.Nop(), err
	}
	log := logger.Init(logger.Options{
		Level:   logLevel(cfg.LogLevel),
		Pretty:  cfg.Development(),
		Service: config.ServiceName,
	})
	return cfg, log, nil
}

func runServe(ctx context.Context) error {
	cfg, log, err := loadServerConfig(ctx)
	if err != nil {
		return err
	}

	client, db, err := mongodb.Connect(ctx, mongodb.Config{URI: cfg.Mongo.URI, Database: cfg.Mongo.Database})
	if err != nil {
		return err
	}
	defer func() {
		if err := mongodb.Disconnect(client); err != nil {
			log.Error().Err(err).Msg("mongo disconnect failed")
		}
	}()

	rdb, err := redisdb.Connect(ctx, redisdb.Config{Addr: cfg.Redis.Addr, DB: cfg.Redis.DB, ClientName: "clinicctl-serve"})
	if err != nil {
		return err
	}
	defer rdb.Close()

	users := mongodb.NewUserRepository(db)
	if err := users.EnsureIndexes(ctx); err != nil {
		return fmt.Errorf("ensure indexes: %w", err)
	}

	audit := service.NewLoginAuditService(mongodb.NewLoginAttemptRepository(db), logger.Component("audit"))
	dispatcher := queue.NewDispatcher(cfg.AuditWorkers, audit, logger.Component("dispatcher"))
	workerCtx, stopWorkers := context.WithCancel(context.Background())
	dispatcher.Start(workerCtx)
	defer func() {
		stopWorkers()
		dispatcher.Wait()
	}()

	dataset, err := fixtures.NewRepository()
	if err != nil {
		return err
	}

	e := api.NewRouter(api.Deps{
		Auth:      service.NewAuthService(users, dispatcher, cfg.JWTSecret, cfg.TokenTTL, logger.Component("auth")),
		Sessions:  redisdb.NewSessionStore(rdb, cfg.SessionTTL),
		Dashboard: service.NewDashboardService(dataset, logger.Component("dashboard")),
		JWTSecret: cfg.JWTSecret,
		Cookie: handler.CookieConfig{
			Name:   handler.DefaultSessionCookie,
			Secure: cfg.CookieSecure,
			TTL:    cfg.SessionTTL,
		},
		Service: handlers.ServiceInfo{
			Name:        config.ServiceName,
			Version:     config.ServiceVersion,
			Environment: cfg.Env,
		},
		Readiness: handlers.NewHealthDependenciesHandler(db, rdb),
		Registry:  prometheus.NewRegistry(),
		Log:       logger.Component("http"),
	})

	log.Info().Str("env", cfg.Env).Int("audit_workers", cfg.AuditWorkers).Msg("starting server")
	return httpserver.Serve(ctx, e, net.JoinHostPort("", cfg.Port), log)
}
