package auth

import (
	"strconv"
	"time"
)

// Fresh reports whether authDate (a decimal Unix timestamp in seconds) is
// within maxAge of the current time. Non-numeric input is treated as stale.
// Timestamps in the future pass: only staleness is policed, clock skew
// between Telegram and this host is not.
func Fresh(authDate string, maxAge time.Duration) bool {
	ts, err := strconv.ParseInt(authDate, 10, 64)
	if err != nil {
		return false
	}
	return time.Now().Unix()-ts <= int64(maxAge.Seconds())
}
