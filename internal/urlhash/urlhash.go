// Package urlhash derives the deduplication key for candidate articles.
// Two candidates with equal hashes are the same article regardless of any
// other field differences.
package urlhash

import (
	"crypto/md5"
	"encoding/hex"
	"strings"
)

// Hash returns the MD5 hex digest of the lowercased, trimmed URL.
func Hash(url string) string {
	sum := md5.Sum([]byte(strings.ToLower(strings.TrimSpace(url))))
	return hex.EncodeToString(sum[:])
}
