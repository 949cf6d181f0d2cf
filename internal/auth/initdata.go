package auth

import (
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
)

// UserInfo is the identity embedded in the initData user field. Optional
// fields stay nil when the payload omits them so reconciliation can tell
// "absent" from "empty".
type UserInfo struct {
	ID        int64   `json:"id"`
	Username  *string `json:"username"`
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
}

// ParseInitData decodes the raw initData string into a key-value map. The
// wire format is percent-encoded key=value pairs joined by "&"; when a key
// repeats, the last occurrence wins. No field semantics are checked here.
func ParseInitData(raw string) (map[string]string, error) {
	data := make(map[string]string)
	for _, segment := range strings.Split(raw, "&") {
		if segment == "" {
			continue
		}
		key, value, found := strings.Cut(segment, "=")
		if !found {
			return nil, fmt.Errorf("%w: segment %q has no value", ErrMalformedToken, segment)
		}
		decodedKey, err := url.QueryUnescape(key)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformedToken, err)
		}
		decodedValue, err := url.QueryUnescape(value)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformedToken, err)
		}
		data[decodedKey] = decodedValue
	}
	return data, nil
}

// ExtractUser decodes the user JSON sub-document into a UserInfo. The
// Telegram id must be present and non-zero; there is no fallback identity.
func ExtractUser(userJSON string) (UserInfo, error) {
	var info UserInfo
	if err := json.Unmarshal([]byte(userJSON), &info); err != nil {
		return UserInfo{}, fmt.Errorf("%w: %v", ErrInvalidUserPayload, err)
	}
	if info.ID == 0 {
		return UserInfo{}, ErrMissingUserID
	}
	return info, nil
}
