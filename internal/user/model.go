package user

import "time"

// User is the persisted record for a Telegram user. ID is the internal
// identifier assigned by the store; TelegramID is the platform identity and
// is immutable once the row exists.
type User struct {
	ID         int64     `json:"id"`
	TelegramID int64     `json:"telegram_id"`
	Username   *string   `json:"username"`
	FirstName  *string   `json:"first_name"`
	LastName   *string   `json:"last_name"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// Profile carries the mutable fields supplied by an authentication payload.
// A nil field means the client did not supply a value; nil never overwrites
// stored data during reconciliation.
type Profile struct {
	TelegramID int64
	Username   *string
	FirstName  *string
	LastName   *string
}
