package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"actforbd/config"
	_ "actforbd/docs"
	"actforbd/internal/adapters/auth"
	httpdelivery "actforbd/internal/delivery/http"
	"actforbd/internal/delivery/http/controllers"
	"actforbd/internal/domain"
	"actforbd/internal/repository/mongodb"
	"actforbd/internal/services"
)

// @title           ActForBD API
// @version         1.0
// @description     Community volunteering events: publish events, browse them and join them.
// @BasePath        /
// @schemes         http https
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Firebase ID token as "Bearer <token>".
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	logger := config.NewLogger()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	verifier, err := newVerifier(ctx, cfg, logger)
	if err != nil {
		logger.Error("failed to initialize token verifier", "provider", cfg.AuthProvider, "err", err)
		os.Exit(1)
	}

	client, err := mongodb.NewClient(ctx, cfg.MongoURI())
	if err != nil {
		logger.Error("failed to create mongodb client", "err", err)
		os.Exit(1)
	}
	defer func() {
		dctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := client.Disconnect(dctx); err != nil {
			logger.Error("mongodb disconnect failed", "err", err)
		}
	}()

	// An unreachable store is logged; requests fail individually until it recovers.
	pingCtx, cancel := context.WithTimeout(ctx, cfg.StoreTimeout)
	if err := mongodb.Ping(pingCtx, client); err != nil {
		logger.Error("mongodb ping failed", "err", err)
	} else {
		logger.Info("Pinged your deployment. You successfully connected to MongoDB!")
	}
	cancel()

	db := client.Database(cfg.DBName)
	idxCtx, cancel := context.WithTimeout(ctx, cfg.StoreTimeout)
	if err := mongodb.EnsureIndexes(idxCtx, db); err != nil {
		logger.Error("failed to ensure indexes", "err", err)
	}
	cancel()

	eventRepo := mongodb.NewEventRepository(db)
	joinedRepo := mongodb.NewJoinedEventRepository(db)

	eventSvc := services.NewEventService(eventRepo, cfg.StoreTimeout)
	joinedSvc := services.NewJoinedEventService(joinedRepo, cfg.StoreTimeout)

	eventCtrl := controllers.NewEventController(logger, eventSvc)
	joinedCtrl := controllers.NewJoinedEventController(logger, joinedSvc)

	mux := httpdelivery.NewRouter(eventCtrl, joinedCtrl, verifier, logger)
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           httpdelivery.NewHandler(mux, cfg.AllowedOrigins(), logger),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("ActForBD server listening", "port", cfg.Port, "env", cfg.Environment)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server error", "err", err)
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server forced to shutdown", "err", err)
	}
}

func newVerifier(ctx context.Context, cfg *config.Config, logger *slog.Logger) (domain.TokenVerifier, error) {
	if cfg.AuthProvider == config.AuthProviderJWT {
		logger.Warn("using HS256 development tokens instead of Firebase")
		return auth.NewJWTVerifier(cfg.JWTSecret), nil
	}
	sa, err := auth.DecodeServiceAccount(cfg.FirebaseServiceKey)
	if err != nil {
		return nil, err
	}
	return auth.NewFirebaseVerifier(ctx, sa)
}
