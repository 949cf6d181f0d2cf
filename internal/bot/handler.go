package bot

import (
	"context"
	"fmt"
	"log/slog"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/aramann/miniapp-backend/internal/user"
)

// Handler implements bot commands over the user repository.
type Handler struct {
	users  user.Repository
	sender Sender
	logger *slog.Logger
}

// NewHandler constructs a command handler.
func NewHandler(users user.Repository, sender Sender, logger *slog.Logger) *Handler {
	return &Handler{users: users, sender: sender, logger: logger}
}

// Start registers the sender on first contact and greets them. Profile
// fields go through the same get-or-create reconciliation the Mini App
// authentication uses, so both entry points converge on one record.
func (h *Handler) Start(ctx context.Context, msg *tgbotapi.Message) error {
	if msg.From == nil {
		return fmt.Errorf("message has no sender")
	}

	u, created, err := h.users.GetOrCreate(ctx, user.Profile{
		TelegramID: msg.From.ID,
		Username:   optional(msg.From.UserName),
		FirstName:  optional(msg.From.FirstName),
		LastName:   optional(msg.From.LastName),
	})
	if err != nil {
		return fmt.Errorf("get or create user: %w", err)
	}

	h.logger.Info("handled /start", "telegram_id", msg.From.ID, "user_id", u.ID, "created", created)
	return h.sender.Send(msg.Chat.ID, greeting(u, created))
}

func greeting(u user.User, created bool) string {
	name := "friend"
	if u.FirstName != nil && *u.FirstName != "" {
		name = *u.FirstName
	}
	if created {
		return fmt.Sprintf("Hi, %s! Welcome aboard.", name)
	}
	return fmt.Sprintf("Welcome back, %s!", name)
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
