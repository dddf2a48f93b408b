package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

// hashKey returns the first 16 hex characters of the SHA-256 hash of key.
func hashKey(key string) string {
	h := sha256.Sum256([]byte(key))
	return hex.EncodeToString(h[:8]) // 8 bytes = 16 hex chars
}

// Key joins parts into one cache key. Parts are separated by a byte that
// cannot appear in chart titles or format names, so ("a|b", "c") and
// ("a", "b|c") stay distinct.
func Key(parts ...string) string {
	return strings.Join(parts, "\x00")
}
