package middleware

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/aramann/miniapp-backend/internal/auth"
	"github.com/aramann/miniapp-backend/internal/config"
	"github.com/aramann/miniapp-backend/internal/logging"
	"github.com/aramann/miniapp-backend/internal/user"
)

func setupAuthApp(t *testing.T, cfg config.Config) *fiber.App {
	t.Helper()
	svc := auth.NewService(cfg, user.NewMemoryRepository(), logging.Discard())

	app := fiber.New()
	app.Use(TelegramAuth(svc))
	app.Get("/protected", func(c *fiber.Ctx) error {
		userID, _ := c.Locals("user_id").(int64)
		return c.JSON(fiber.Map{"user_id": userID})
	})
	return app
}

func TestTelegramAuthRequiresBearerToken(t *testing.T) {
	app := setupAuthApp(t, config.Config{BotToken: "secret", AuthMaxAge: 24 * time.Hour})

	req := httptest.NewRequest(fiber.MethodGet, "/protected", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != fiber.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", resp.StatusCode)
	}
}

func TestTelegramAuthDebugBypass(t *testing.T) {
	cfg := config.Config{BotToken: "secret", DebugAuthToken: "devkey", AuthMaxAge: 24 * time.Hour}
	app := setupAuthApp(t, cfg)

	req := httptest.NewRequest(fiber.MethodGet, "/protected", nil)
	req.Header.Set(fiber.HeaderAuthorization, "Bearer devkey;7")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
}

func TestTelegramAuthRejectsGarbageToken(t *testing.T) {
	app := setupAuthApp(t, config.Config{BotToken: "secret", AuthMaxAge: 24 * time.Hour})

	req := httptest.NewRequest(fiber.MethodGet, "/protected", nil)
	req.Header.Set(fiber.HeaderAuthorization, "Bearer garbage")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != fiber.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", resp.StatusCode)
	}
}

func TestTelegramAuthMisconfigurationIsOpaque(t *testing.T) {
	// No bot token: the verifier must fail closed with a 500, not a 401.
	app := setupAuthApp(t, config.Config{AuthMaxAge: 24 * time.Hour})

	req := httptest.NewRequest(fiber.MethodGet, "/protected", nil)
	req.Header.Set(fiber.HeaderAuthorization, "Bearer auth_date=1&user=x&hash=y")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != fiber.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", resp.StatusCode)
	}
}
