// Package app wires configuration, storage, services, and transports
// together and runs the HTTP server.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/crypto/bcrypt"

	"github.com/firewatch-bo/chiquitos-backend/internal/adapter/mongodb"
	"github.com/firewatch-bo/chiquitos-backend/internal/adapter/mongodb/firerisk"
	mongouser "github.com/firewatch-bo/chiquitos-backend/internal/adapter/mongodb/user"
	"github.com/firewatch-bo/chiquitos-backend/internal/adapter/reportes"
	"github.com/firewatch-bo/chiquitos-backend/internal/auth"
	"github.com/firewatch-bo/chiquitos-backend/internal/config"
	"github.com/firewatch-bo/chiquitos-backend/internal/domain"
	"github.com/firewatch-bo/chiquitos-backend/internal/observability"
	"github.com/firewatch-bo/chiquitos-backend/internal/risk"
	authservice "github.com/firewatch-bo/chiquitos-backend/internal/service/auth"
	"github.com/firewatch-bo/chiquitos-backend/internal/service/record"
	"github.com/firewatch-bo/chiquitos-backend/internal/service/report"
	userservice "github.com/firewatch-bo/chiquitos-backend/internal/service/user"
	gqltransport "github.com/firewatch-bo/chiquitos-backend/internal/transport/graphql"
	"github.com/firewatch-bo/chiquitos-backend/internal/transport/middleware"
	"github.com/firewatch-bo/chiquitos-backend/internal/transport/rest"
)

// Run is the application entry point. It blocks until ctx is cancelled
// or the server fails.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	db, err := mongodb.Connect(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("app: connect mongodb: %w", err)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()
		if err := db.Client().Disconnect(shutdownCtx); err != nil {
			logger.Error("mongodb disconnect failed", slog.String("error", err.Error()))
		}
	}()

	if err := mongodb.EnsureIndexes(ctx, db); err != nil {
		return fmt.Errorf("app: ensure indexes: %w", err)
	}

	recordRepo := firerisk.New(db)
	userRepo := mongouser.New(db)

	if err := seedAdmin(ctx, logger, userRepo, cfg.Auth); err != nil {
		return fmt.Errorf("app: seed admin: %w", err)
	}

	jwtManager := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)
	generator := risk.NewGenerator(rand.NewSource(time.Now().UnixNano()), nil)
	metrics := observability.NewMetrics()

	recordSvc := record.NewService(logger, recordRepo, generator)
	userSvc := userservice.NewService(logger, userRepo, cfg.Auth.BcryptCost)
	authSvc := authservice.NewService(logger, userRepo, userSvc, jwtManager)

	if cfg.Reports.Enabled {
		reportsClient := reportes.NewClient(cfg.Reports.URL, cfg.Reports.Timeout, logger)
		reportSvc := report.NewService(logger, reportsClient, recordRepo, metrics, nil, rand.NewSource(time.Now().UnixNano()))
		poller := report.NewPoller(logger, reportSvc, cfg.Reports.Interval)
		if err := poller.Start(ctx); err != nil {
			return fmt.Errorf("app: start report poller: %w", err)
		}
		defer poller.Stop()
	} else {
		logger.Info("report reconciliation disabled")
	}

	schema, err := gqltransport.NewSchema(gqltransport.Deps{
		Log:     logger,
		Records: recordSvc,
		Auth:    authSvc,
		Users:   userSvc,
	})
	if err != nil {
		return err
	}

	rateLimiter := middleware.NewRateLimiter(time.Minute)
	defer rateLimiter.Stop()

	healthHandler := rest.NewHealthHandler(mongodb.Pinger{DB: db}, BuildVersion())

	mux := http.NewServeMux()
	mux.Handle(cfg.GraphQL.Path, gqltransport.NewHandler(schema, cfg.GraphQL.PlaygroundEnabled))
	mux.HandleFunc("/health", healthHandler.Health)
	mux.HandleFunc("/ready", healthHandler.Ready)
	mux.HandleFunc("/live", healthHandler.Live)
	mux.Handle("/metrics", promhttp.Handler())

	chain := middleware.Chain(
		middleware.Recovery(logger),
		middleware.RequestID,
		middleware.Logger(logger),
		middleware.CORS(cfg.CORS),
		rateLimiter.Limit(cfg.Server.RatePerMinute),
		middleware.Auth(jwtManager),
	)

	srv := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      chain(mux),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening",
			slog.String("addr", srv.Addr),
			slog.String("graphql_path", cfg.GraphQL.Path),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("app: http server: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("app: shutdown: %w", err)
	}

	return nil
}

const adminCI = "0000000"

// seedAdmin creates the bootstrap admin account if no user with the
// reserved CI exists yet.
func seedAdmin(ctx context.Context, logger *slog.Logger, users *mongouser.Repo, cfg config.AuthConfig) error {
	_, err := users.GetByCI(ctx, adminCI)
	if err == nil {
		return nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), cfg.BcryptCost)
	if err != nil {
		return err
	}

	created, err := users.Create(ctx, &domain.User{
		Nombre:       "ADMIN",
		Apellido:     "SISTEMA",
		Email:        cfg.AdminEmail,
		CI:           adminCI,
		PasswordHash: string(hash),
		Telefono:     "0000000000",
		IsAdmin:      true,
	})
	if err != nil {
		if errors.Is(err, domain.ErrAlreadyExists) {
			return nil
		}
		return err
	}

	logger.Info("admin account seeded", slog.String("id", created.ID))
	return nil
}
