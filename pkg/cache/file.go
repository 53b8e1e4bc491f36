package cache

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"time"
)

// FileCache stores rendered artifacts as JSON entries under a directory,
// fanned out by key hash. It backs the CLI's cross-run artifact cache
// (the XDG cache directory); the server reuses whatever cache its runner
// was built with.
type FileCache struct {
	dir string
	now func() time.Time
}

// NewFileCache creates a file-backed cache rooted at dir, creating the
// directory if needed.
func NewFileCache(dir string) (Cache, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}
	return &FileCache{dir: dir, now: time.Now}, nil
}

// fileEntry is the on-disk form of one cached artifact.
type fileEntry struct {
	Artifact  []byte    `json:"artifact"`
	ExpiresAt time.Time `json:"expires_at,omitempty"`
}

// Get retrieves an artifact. Undecodable and expired entries are removed
// and reported as misses; the cache only ever holds derived bytes, so
// dropping an entry costs one re-render.
func (c *FileCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	path := c.path(key)

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	var entry fileEntry
	if err := json.Unmarshal(data, &entry); err != nil {
		_ = os.Remove(path)
		return nil, false, nil
	}
	if !entry.ExpiresAt.IsZero() && c.now().After(entry.ExpiresAt) {
		_ = os.Remove(path)
		return nil, false, nil
	}

	return entry.Artifact, true, nil
}

// Set stores an artifact. A zero TTL stores it without expiration; a
// negative TTL writes an already-expired entry, which the next Get
// removes.
func (c *FileCache) Set(ctx context.Context, key string, data []byte, ttl time.Duration) error {
	entry := fileEntry{Artifact: data}
	if ttl != 0 {
		entry.ExpiresAt = c.now().Add(ttl)
	}

	encoded, err := json.Marshal(entry)
	if err != nil {
		return err
	}

	path := c.path(key)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	return os.WriteFile(path, encoded, 0644)
}

// Delete removes an artifact. Deleting a missing key is not an error.
func (c *FileCache) Delete(ctx context.Context, key string) error {
	err := os.Remove(c.path(key))
	if os.IsNotExist(err) {
		return nil
	}
	return err
}

// Close does nothing; entries persist for the next run.
func (c *FileCache) Close() error {
	return nil
}

// path maps a key to its file, using the first two hex digits of the key
// hash as a subdirectory so entries spread across the filesystem.
func (c *FileCache) path(key string) string {
	sum := Hash([]byte(key))
	return filepath.Join(c.dir, sum[:2], sum[2:]+".json")
}

var _ Cache = (*FileCache)(nil)
