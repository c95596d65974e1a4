package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"meetmatch/internal/adapters/discord"
	"meetmatch/internal/adapters/httpapi"
	"meetmatch/internal/application"
	"meetmatch/internal/config"
	"meetmatch/internal/infrastructure/cache"
	"meetmatch/internal/infrastructure/database"
	"meetmatch/internal/infrastructure/i18n"
	"meetmatch/internal/infrastructure/logger"
	"meetmatch/internal/ports/output"
)

const shutdownTimeout = 30 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.LogLevel)
	if err != nil {
		fmt.Fprintln(os.Stderr, "init logger:", err)
		os.Exit(1)
	}
	defer log.Sync()

	if err := run(cfg, log); err != nil {
		log.Fatal("meetmatch stopped", zap.Error(err))
	}
}

func run(cfg *config.Config, log *zap.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if cfg.RunMigrations {
		if err := database.RunMigrations(cfg.DatabaseURL, log); err != nil {
			return err
		}
	}

	pool, err := database.NewPool(ctx, cfg.DatabaseURL, log)
	if err != nil {
		return err
	}
	defer pool.Close()

	eventRepo := database.NewEventRepository(pool)
	participantRepo := database.NewParticipantRepository(pool)
	slotRepo := database.NewTimeSlotRepository(pool)
	voteRepo := database.NewVoteRepository(pool)

	var resultsCache output.ResultsCache = cache.Noop{}
	if cfg.RedisURL != "" {
		client, err := cache.Connect(ctx, cfg.RedisURL)
		if err != nil {
			return err
		}
		defer client.Close()
		resultsCache = cache.NewRedisCache(client, cfg.ResultsCacheTTL)
		log.Info("results cache enabled", zap.Duration("ttl", cfg.ResultsCacheTTL))
	}

	translator := i18n.NewTranslator(cfg.DefaultLocale, log)

	eventService := application.NewEventService(eventRepo, resultsCache, translator, cfg.Grid, log)
	participantService := application.NewParticipantService(participantRepo, eventRepo, resultsCache, log)
	availabilityService := application.NewAvailabilityService(eventRepo, participantRepo, slotRepo, resultsCache, cfg.Grid, log)
	voteService := application.NewVoteService(eventRepo, participantRepo, slotRepo, voteRepo, resultsCache, log)
	resultsService := application.NewResultsService(eventRepo, participantRepo, slotRepo, voteRepo, resultsCache, translator, cfg.TopN, log)

	if cfg.DiscordEnabled() {
		handler := discord.NewHandler(eventService, participantService, availabilityService, resultsService,
			translator, cfg.ShareLink, log.Named("discord"))
		bot, err := discord.NewBot(cfg.DiscordToken, cfg.DiscordGuildID, cfg.DefaultLocale, handler, log.Named("discord"))
		if err != nil {
			return err
		}
		go func() {
			if err := bot.Run(ctx); err != nil {
				log.Error("discord bot stopped", zap.Error(err))
			}
		}()
	}

	if cfg.LogLevel != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}
	handler := httpapi.NewHandler(httpapi.Services{
		Events:       eventService,
		Participants: participantService,
		Availability: availabilityService,
		Votes:        voteService,
		Results:      resultsService,
	}, translator, pool, cfg.ShareLink, log.Named("http"))

	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           httpapi.NewRouter(handler, log.Named("http")),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("http server listening", zap.String("addr", cfg.HTTPAddr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http shutdown: %w", err)
	}
	return nil
}
