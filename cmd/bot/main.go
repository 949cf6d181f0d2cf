package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/aramann/miniapp-backend/internal/bot"
	"github.com/aramann/miniapp-backend/internal/config"
	"github.com/aramann/miniapp-backend/internal/infra"
	"github.com/aramann/miniapp-backend/internal/logging"
	"github.com/aramann/miniapp-backend/internal/user"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		os.Exit(1)
	}

	logger := logging.Component(logging.New(cfg.LogLevel), "bot")

	if cfg.BotToken == "" {
		logger.Error("BOT_TOKEN must be set to run the bot")
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var users user.Repository
	if cfg.DatabaseURL != "" {
		db, err := infra.NewPostgresPool(ctx, cfg.DatabaseURL)
		if err != nil {
			logger.Error("connect postgres", "error", err)
			os.Exit(1)
		}
		defer db.Close()

		if err := infra.Migrate(ctx, db); err != nil {
			logger.Error("apply migrations", "error", err)
			os.Exit(1)
		}
		users = user.NewPostgresRepository(db)
	} else {
		logger.Warn("no DATABASE_URL configured, using in-memory user store")
		users = user.NewMemoryRepository()
	}

	b, err := bot.New(cfg.BotToken, users, logger)
	if err != nil {
		logger.Error("build bot", "error", err)
		os.Exit(1)
	}

	if err := b.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		logger.Error("bot stopped", "error", err)
		os.Exit(1)
	}

	logger.Info("bot exited cleanly")
}
