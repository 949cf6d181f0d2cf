package bot

import (
	"context"
	"fmt"
	"log/slog"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/aramann/miniapp-backend/internal/user"
)

// Sender delivers outgoing messages. The indirection keeps handlers testable
// without a live Bot API connection.
type Sender interface {
	Send(chatID int64, text string) error
}

type apiSender struct {
	api *tgbotapi.BotAPI
}

func (s apiSender) Send(chatID int64, text string) error {
	_, err := s.api.Send(tgbotapi.NewMessage(chatID, text))
	return err
}

// Bot runs the long-polling update loop and dispatches commands.
type Bot struct {
	api     *tgbotapi.BotAPI
	handler *Handler
	logger  *slog.Logger
}

// New connects to the Bot API and wires the command handlers.
func New(token string, users user.Repository, logger *slog.Logger) (*Bot, error) {
	if token == "" {
		return nil, fmt.Errorf("bot token is required")
	}

	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("connect bot api: %w", err)
	}

	return &Bot{
		api:     api,
		handler: NewHandler(users, apiSender{api: api}, logger),
		logger:  logger,
	}, nil
}

// Run polls for updates until the context is cancelled.
func (b *Bot) Run(ctx context.Context) error {
	b.logger.Info("bot started", "username", b.api.Self.UserName)

	updateCfg := tgbotapi.NewUpdate(0)
	updateCfg.Timeout = 30
	updates := b.api.GetUpdatesChan(updateCfg)

	for {
		select {
		case <-ctx.Done():
			b.api.StopReceivingUpdates()
			return ctx.Err()
		case update, ok := <-updates:
			if !ok {
				return nil
			}
			if update.Message == nil || !update.Message.IsCommand() {
				continue
			}
			b.dispatch(ctx, update.Message)
		}
	}
}

func (b *Bot) dispatch(ctx context.Context, msg *tgbotapi.Message) {
	switch msg.Command() {
	case "start":
		if err := b.handler.Start(ctx, msg); err != nil {
			b.logger.Error("handle /start", "chat_id", msg.Chat.ID, "error", err)
		}
	}
}
