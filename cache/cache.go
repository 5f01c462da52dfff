// Package cache provides translation caching implementations.
package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

// Cache is the interface for translation caching.
type Cache interface {
	// Get retrieves a cached value. Returns empty string and false if not
	// found or expired.
	Get(key string) (string, bool)

	// Set stores a value in the cache.
	Set(key string, value string) error
}

// Key builds a cache key for a text/target-language pair. The text is hashed
// so arbitrary input never leaks into backend key space.
func Key(text, targetLang string) string {
	sum := sha256.Sum256([]byte(text))
	return hex.EncodeToString(sum[:]) + ":" + strings.ToLower(targetLang)
}
