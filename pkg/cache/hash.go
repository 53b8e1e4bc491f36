package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
)

// hashKey builds a namespaced cache key from its parts: the namespace
// stays readable in the key while the parts (table hash, format, variant,
// style hash) collapse into one SHA-256 digest. The full digest is kept;
// artifact keys must never collide across inputs.
func hashKey(namespace string, parts ...any) string {
	data, _ := json.Marshal(parts)
	sum := sha256.Sum256(data)
	return fmt.Sprintf("%s:%s", namespace, hex.EncodeToString(sum[:]))
}

// Hash returns the SHA-256 digest of data as a 64-character hex string.
// It fingerprints loaded tables and style sets for artifact keying.
func Hash(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}
