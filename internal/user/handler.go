package user

import (
	"errors"
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"
)

// Handler exposes user endpoints.
type Handler struct {
	repo Repository
}

// NewHandler constructs a user HTTP handler.
func NewHandler(repo Repository) *Handler {
	return &Handler{repo: repo}
}

type userResponse struct {
	ID         int64     `json:"id"`
	TelegramID int64     `json:"telegram_id"`
	Username   *string   `json:"username"`
	FirstName  *string   `json:"first_name"`
	LastName   *string   `json:"last_name"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// Me returns the authenticated user's record.
func (h *Handler) Me(c *fiber.Ctx) error {
	userID, _ := c.Locals("user_id").(int64)
	if userID == 0 {
		return fiber.NewError(http.StatusUnauthorized, "not authenticated")
	}

	u, err := h.repo.GetByID(c.UserContext(), userID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return fiber.NewError(http.StatusNotFound, "user not found")
		}
		return fiber.NewError(http.StatusInternalServerError, "internal error")
	}

	return c.Status(http.StatusOK).JSON(userResponse{
		ID:         u.ID,
		TelegramID: u.TelegramID,
		Username:   u.Username,
		FirstName:  u.FirstName,
		LastName:   u.LastName,
		CreatedAt:  u.CreatedAt,
		UpdatedAt:  u.UpdatedAt,
	})
}
