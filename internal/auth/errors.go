package auth

import "errors"

// Authentication failures. Every failure is terminal for the attempt; the
// service never retries. ErrStore deliberately carries no detail about the
// underlying persistence failure, and ErrInvalidSignature does not
// distinguish a wrong secret from a tampered payload.
var (
	// ErrUnauthenticated is returned for an empty or absent token.
	ErrUnauthenticated = errors.New("not authenticated")
	// ErrMalformedToken is returned when transport decoding of initData fails.
	ErrMalformedToken = errors.New("malformed init data")
	// ErrMissingField is returned when a required key (hash or user) is absent.
	ErrMissingField = errors.New("missing required init data field")
	// ErrInvalidSignature is returned on an HMAC mismatch.
	ErrInvalidSignature = errors.New("invalid init data signature")
	// ErrExpired is returned when auth_date falls outside the freshness window.
	ErrExpired = errors.New("init data expired")
	// ErrInvalidUserPayload is returned when the user field is not valid JSON.
	ErrInvalidUserPayload = errors.New("invalid user payload")
	// ErrMissingUserID is returned when the user payload lacks a Telegram id.
	ErrMissingUserID = errors.New("missing user id")
	// ErrStore is returned when the user store fails; the cause is logged,
	// never surfaced.
	ErrStore = errors.New("user store failure")
	// ErrMisconfigured is returned when the bot token is unset. Startup
	// validation should catch this first; per-call it still fails closed.
	ErrMisconfigured = errors.New("bot token not configured")
)
