package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/aramann/miniapp-backend/internal/auth"
)

const userIDKey = "user_id"

// TelegramAuth validates the Telegram Mini App initData carried as a Bearer
// token and stores the resolved internal user id in request locals.
// Misconfiguration and store failures surface as opaque 500s; every other
// failure in the taxonomy is a 401.
func TelegramAuth(svc *auth.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authz := c.Get(fiber.HeaderAuthorization)
		if !strings.HasPrefix(strings.ToLower(authz), "bearer ") {
			return fiber.NewError(http.StatusUnauthorized, "missing bearer token")
		}
		token := strings.TrimSpace(authz[len("Bearer "):])

		userID, err := svc.Authenticate(c.UserContext(), token)
		if err != nil {
			if errors.Is(err, auth.ErrMisconfigured) || errors.Is(err, auth.ErrStore) {
				return fiber.NewError(http.StatusInternalServerError, "internal error")
			}
			return fiber.NewError(http.StatusUnauthorized, authFailureMessage(err))
		}

		c.Locals(userIDKey, userID)
		return c.Next()
	}
}

// authFailureMessage maps taxonomy errors to stable client-facing strings
// without exposing wrapped detail.
func authFailureMessage(err error) string {
	switch {
	case errors.Is(err, auth.ErrUnauthenticated):
		return "not authenticated"
	case errors.Is(err, auth.ErrMalformedToken):
		return "invalid init data format"
	case errors.Is(err, auth.ErrMissingField):
		return "missing init data field"
	case errors.Is(err, auth.ErrInvalidSignature):
		return "invalid signature"
	case errors.Is(err, auth.ErrExpired):
		return "init data expired"
	case errors.Is(err, auth.ErrInvalidUserPayload):
		return "invalid user data format"
	case errors.Is(err, auth.ErrMissingUserID):
		return "missing user id"
	default:
		return "not authenticated"
	}
}
