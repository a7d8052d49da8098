package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"DentalDesk/cache"
	"DentalDesk/config"
	"DentalDesk/database"
	"DentalDesk/logger"
	"DentalDesk/routes"
	"DentalDesk/session"
	"DentalDesk/utils"
)

func main() {
	log := logger.Get()

	// Load configuration from config package
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	logger.Init(cfg.LogLevel, os.Getenv("LOG_FORMAT"))
	log = logger.Get()

	// Open the database. A failed open leaves the store in an unavailable
	// state; the server still starts and reports the condition per request.
	store, err := database.Open(cfg.DatabasePath)
	if err != nil {
		log.Warn().Err(err).Str("path", cfg.DatabasePath).
			Msg("database unavailable, starting in degraded mode")
	}
	defer store.Close()

	// Initialize Redis
	redisClient, err := database.NewRedisClient(database.LoadRedisConfig(cfg.RedisAddress))
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize Redis client")
	}

	// Initialize the cache utility
	kv, err := cache.NewCache(redisClient)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize cache")
	}

	// Rehydrate the persisted session so a restart keeps the signed-in user
	sessions := session.NewStore(kv)
	if current, err := sessions.Current(context.Background()); err != nil {
		log.Warn().Err(err).Msg("failed to rehydrate session")
	} else if current.IsAuthenticated {
		log.Info().Str("username", current.User.Username).Msg("restored persisted session")
	}

	var mailer *utils.Mailer
	if cfg.SMTPHost != "" {
		mailer, err = utils.NewMailer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPassword)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to configure mailer")
		}
	} else {
		log.Warn().Msg("SMTP not configured, email delivery disabled")
	}

	handler := routes.SetupRoutes(store, kv, cfg, mailer)

	// Configure and start the server
	srv := &http.Server{
		Addr:           cfg.ListenAddr,
		Handler:        handler,
		ReadTimeout:    30 * time.Second,
		WriteTimeout:   30 * time.Second,
		MaxHeaderBytes: 1 << 20,
		IdleTimeout:    30 * time.Second,
	}

	var wg sync.WaitGroup
	wg.Add(1)

	go func() {
		defer wg.Done()
		log.Info().Str("addr", cfg.ListenAddr).Msg("starting server")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("listenAndServe()")
		}
	}()

	// Graceful shutdown handling
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)
	<-c

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancelShutdown()

	log.Info().Msg("shutting down server")
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatal().Err(err).Msg("server shutdown failed")
	}

	wg.Wait()
	log.Info().Msg("server exited gracefully")
}
