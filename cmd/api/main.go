package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/SAI-CHANDHAN/My-portfolio/config"
	"github.com/SAI-CHANDHAN/My-portfolio/internal/bootstrap"
	"github.com/SAI-CHANDHAN/My-portfolio/internal/logging"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		bootLog := zerolog.New(os.Stderr)
		bootLog.Fatal().Err(err).Msg("load config")
	}

	log := logging.New(cfg.App.LogLevel, cfg.App.Environment)
	bootstrap.SetGinMode(cfg.App.Environment)

	ctx := log.WithContext(context.Background())

	store, err := bootstrap.OpenStore(ctx, cfg.Store)
	if err != nil {
		log.Fatal().Err(err).Str("driver", cfg.Store.Driver).Msg("open store")
	}
	defer func() {
		if err := store.Close(context.Background()); err != nil {
			log.Error().Err(err).Msg("close store")
		}
	}()
	log.Info().Str("driver", store.Driver).Msg("store ready")

	notifier, closeNotifier, err := bootstrap.OpenNotifier(ctx, cfg.Redis)
	if err != nil {
		log.Warn().Err(err).Msg("redis unavailable; contact notifications go to the log")
		notifier, closeNotifier, _ = bootstrap.OpenNotifier(ctx, config.RedisConfig{})
	}
	defer closeNotifier()

	if cfg.Auth.Provider == config.AuthLocal && cfg.Auth.JWTSecret == "" {
		log.Warn().Msg("JWT_SECRET is empty; using a random key for this process")
	}
	verifier, tokens, err := bootstrap.NewVerifier(ctx, cfg.Auth, store.Users)
	if err != nil {
		log.Fatal().Err(err).Str("provider", cfg.Auth.Provider).Msg("init auth")
	}

	router := bootstrap.BuildRouter(bootstrap.RouterDeps{
		ServiceName: cfg.App.ServiceName,
		Version:     cfg.App.Version,
		Environment: cfg.App.Environment,
		ClientURL:   cfg.Server.ClientURL,
		Logger:      log,
		Store:       store,
		Notifier:    notifier,
		Verifier:    verifier,
		Tokens:      tokens,
		RateLimit:   cfg.RateLimit,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
	}

	go func() {
		log.Info().Str("port", cfg.Server.Port).Str("env", cfg.App.Environment).Msg("server starting")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown")
	}
	log.Info().Msg("server stopped")
}
