package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/vladimiradmaev/akashic-rays/internal/akashic"
	"github.com/vladimiradmaev/akashic-rays/internal/bot"
	"github.com/vladimiradmaev/akashic-rays/internal/bot/handlers"
	"github.com/vladimiradmaev/akashic-rays/internal/bot/state"
	"github.com/vladimiradmaev/akashic-rays/internal/config"
	"github.com/vladimiradmaev/akashic-rays/internal/errors"
	"github.com/vladimiradmaev/akashic-rays/internal/logger"
	"github.com/vladimiradmaev/akashic-rays/internal/services"
)

func main() {
	envErr := godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		// logger is not configured yet
		_ = logger.Init()
		logger.Fatal("Failed to load config", "error", err)
	}

	if err := logger.InitWithConfig(cfg.Logger.ToLogger()); err != nil {
		_ = logger.Init()
		logger.Fatal("Failed to initialize logger", "error", err)
	}
	defer func() { _ = logger.Close() }()

	if envErr != nil {
		logger.Debug(".env file not found, using process environment")
	}
	logger.Info("Starting Akashic Rays bot", "state_backend", cfg.State.Backend)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errorHandler := errors.NewHandler(logger.GetLogger())

	stateManager, closeState, err := newStateManager(ctx, cfg.State)
	if err != nil {
		errorHandler.Handle(ctx, err)
		logger.Fatal("Failed to initialize state manager")
	}
	defer closeState()

	narrator, err := services.NewNarratorService(ctx, services.NarratorConfig{
		GeminiAPIKey: cfg.GeminiAPIKey,
		OpenAIAPIKey: cfg.OpenAIAPIKey,
		Timeout:      cfg.NarratorTimeout,
	})
	if err != nil {
		errorHandler.Handle(ctx, err)
		logger.Fatal("Failed to initialize narrator")
	}
	defer func() {
		if err := narrator.Close(); err != nil {
			logger.Warn("Failed to close narrator", "error", err)
		}
	}()

	readingSvc := services.NewReadingService(akashic.NewResolver(), narrator)

	telegramBot, err := bot.NewBot(cfg.TelegramToken, handlers.Dependencies{ReadingSvc: readingSvc}, stateManager)
	if err != nil {
		errorHandler.Handle(ctx, err)
		logger.Fatal("Failed to create bot")
	}

	logger.Info("Bot is running. Press Ctrl+C to stop.")
	if err := telegramBot.Start(ctx); err != nil {
		errorHandler.Handle(ctx, err)
	}
	telegramBot.Stop()
	logger.Info("Bot stopped")
}

// newStateManager builds the configured session backend
func newStateManager(ctx context.Context, cfg config.StateConfig) (state.StateManager, func(), error) {
	switch cfg.Backend {
	case config.StateBackendRedis:
		m, err := state.NewRedisManager(ctx, state.RedisOptions{
			Addr:     cfg.RedisAddr(),
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
			TTL:      cfg.TTL,
		})
		if err != nil {
			return nil, nil, err
		}
		logger.Info("Using Redis session store", "addr", cfg.RedisAddr())
		return m, func() {
			if err := m.Close(); err != nil {
				logger.Warn("Failed to close Redis client", "error", err)
			}
		}, nil
	default:
		m := state.NewManager(cfg.TTL)
		go m.RunSweeper(ctx, cfg.TTL/2)
		logger.Info("Using in-memory session store", "ttl", cfg.TTL)
		return m, func() {}, nil
	}
}
