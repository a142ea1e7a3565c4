package service

import (
	"crypto/sha256"
	"encoding/hex"
	"time"
)

func timeNow() time.Time {
	return time.Now().UTC()
}

// contentHash identifies a log body in cache keys.
func contentHash(text string) string {
	sum := sha256.Sum256([]byte(text))
	return hex.EncodeToString(sum[:8])
}
