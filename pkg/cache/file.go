package cache

import (
	"context"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

// expirySuffix names the sidecar file holding an entry's expiry timestamp.
const expirySuffix = ".expires"

// FileCache stores rendered page bitmaps as plain files on disk.
//
// Each entry is the payload written verbatim, so a cached page is a valid
// PNG file that can be opened with any image viewer. Expiring entries carry
// a sidecar file with the expiry as unix nanoseconds; entries without a
// sidecar never expire.
type FileCache struct {
	dir string
}

// NewFileCache creates a file-based cache rooted at dir.
// The directory is created if it does not exist.
func NewFileCache(dir string) (Cache, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}
	return &FileCache{dir: dir}, nil
}

// Get retrieves a value. An expired entry is removed and reported as a miss.
func (c *FileCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	path := c.path(key)

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	if expired(path) {
		c.remove(path)
		return nil, false, nil
	}

	return data, true, nil
}

// Set stores a value. A positive ttl is recorded in the expiry sidecar; a
// zero ttl clears any sidecar left by a previous entry under the same key.
func (c *FileCache) Set(ctx context.Context, key string, data []byte, ttl time.Duration) error {
	path := c.path(key)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return err
	}

	if ttl <= 0 {
		if err := os.Remove(path + expirySuffix); err != nil && !os.IsNotExist(err) {
			return err
		}
		return nil
	}

	stamp := strconv.FormatInt(time.Now().Add(ttl).UnixNano(), 10)
	return os.WriteFile(path+expirySuffix, []byte(stamp), 0644)
}

// Delete removes a value and its expiry sidecar.
func (c *FileCache) Delete(ctx context.Context, key string) error {
	c.remove(c.path(key))
	return nil
}

// Close does nothing for file cache.
func (c *FileCache) Close() error {
	return nil
}

// path converts a cache key to an entry file path. The first two characters
// of the key hash shard entries across subdirectories; entries take a .png
// suffix because page bitmaps are the only payload stored.
func (c *FileCache) path(key string) string {
	hash := Hash([]byte(key))
	return filepath.Join(c.dir, hash[:2], hash[2:]+".png")
}

// remove deletes an entry file together with its sidecar.
func (c *FileCache) remove(path string) {
	_ = os.Remove(path)
	_ = os.Remove(path + expirySuffix)
}

// expired reports whether the entry at path has a sidecar with a past
// expiry. A mangled sidecar counts as expired so the entry gets re-rendered
// rather than trusted forever.
func expired(path string) bool {
	raw, err := os.ReadFile(path + expirySuffix)
	if os.IsNotExist(err) {
		return false
	}
	if err != nil {
		return true
	}
	ns, err := strconv.ParseInt(strings.TrimSpace(string(raw)), 10, 64)
	if err != nil {
		return true
	}
	return time.Now().UnixNano() > ns
}

// Ensure FileCache implements Cache.
var _ Cache = (*FileCache)(nil)
