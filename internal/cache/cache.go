package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"time"
)

// Cache defines the interface for caching detection reports
type Cache interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte, ttl time.Duration) error
	Delete(key string) error
	Clear() error
}

// TextKey generates a cache key from sample text. Keys hash the full text so
// two samples collide only when they are identical, which keeps cached
// results consistent with the determinism guarantee.
func TextKey(text string) string {
	hash := sha256.Sum256([]byte(text))
	return "textorigin:v1:" + hex.EncodeToString(hash[:])
}
