package auth

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"sort"
	"strings"
)

const secretKeySalt = "WebAppData"

// VerifySignature checks the initData HMAC chain: the signing key is
// HMAC-SHA256("WebAppData", botToken), and the signature is HMAC-SHA256 of
// the check string (all entries except hash as sorted key=value lines joined
// by newlines) under that key, hex encoded. Comparison is constant time.
// An empty botToken is a deployment fault, reported as ErrMisconfigured
// rather than a verification failure.
func VerifySignature(data map[string]string, receivedHash, botToken string) (bool, error) {
	if botToken == "" {
		return false, ErrMisconfigured
	}

	mac := hmac.New(sha256.New, []byte(secretKeySalt))
	mac.Write([]byte(botToken))
	secretKey := mac.Sum(nil)

	mac = hmac.New(sha256.New, secretKey)
	mac.Write([]byte(checkString(data)))
	computed := hex.EncodeToString(mac.Sum(nil))

	return hmac.Equal([]byte(computed), []byte(receivedHash)), nil
}

func checkString(data map[string]string) string {
	keys := make([]string, 0, len(data))
	for k := range data {
		if k == "hash" {
			continue
		}
		keys = append(keys, k)
	}
	sort.Strings(keys)

	lines := make([]string, 0, len(keys))
	for _, k := range keys {
		lines = append(lines, k+"="+data[k])
	}
	return strings.Join(lines, "\n")
}
