// Package cache provides artifact caching for label generation.
//
// Rendering the same spreadsheet with the same options always produces the
// same document, so rendered artifacts can be cached keyed by a content
// hash of the input table plus the generation options. Only derived
// artifacts are ever cached - the uploaded data itself is never persisted.
//
// Two backends are provided:
//   - FileCache: file-based cache for CLI usage (XDG cache directory)
//   - NullCache: no-op cache for tests or when caching is disabled
package cache

import (
	"context"
	"time"
)

// TTL values for cached artifacts.
const (
	// TTLArtifact is how long rendered artifacts are kept.
	TTLArtifact = 24 * time.Hour
)

// Cache is the interface for artifact storage backends.
type Cache interface {
	// Get retrieves a value. The second return value reports whether the
	// key was present and unexpired.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a value with a TTL. A zero TTL means no expiration.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes a value. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases any resources held by the backend.
	Close() error
}

// ArtifactKeyOpts captures the generation options that affect artifact
// content. Two runs with the same table hash and the same opts produce
// byte-identical artifacts.
type ArtifactKeyOpts struct {
	Format    string
	Variant   string
	StyleHash string
}

// Keyer generates cache keys for pipeline artifacts.
type Keyer interface {
	// ArtifactKey generates a key for a rendered artifact.
	ArtifactKey(tableHash string, opts ArtifactKeyOpts) string
}

// DefaultKeyer is the standard key generation strategy.
type DefaultKeyer struct{}

// NewDefaultKeyer creates the default keyer.
func NewDefaultKeyer() Keyer {
	return &DefaultKeyer{}
}

// ArtifactKey generates a key for a rendered artifact.
func (k *DefaultKeyer) ArtifactKey(tableHash string, opts ArtifactKeyOpts) string {
	return hashKey("artifact", tableHash, opts.Format, opts.Variant, opts.StyleHash)
}
