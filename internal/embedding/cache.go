package embedding

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
	"go.uber.org/zap"
)

const (
	// DefaultCacheSize bounds the in-memory LRU tier.
	DefaultCacheSize = 10000
	// DefaultCacheTTL is how long disk entries stay valid.
	DefaultCacheTTL = 7 * 24 * time.Hour
)

// Cache is a content-addressed, two-tier embedding cache: an in-memory LRU
// in front of one JSON file per key on disk. Entries are keyed by
// sha256(model ":" text), so concurrent writers can only race on identical
// content; a lost write costs a recompute, never correctness.
type Cache struct {
	dir     string
	ttl     time.Duration
	memory  *lru.Cache[string, []float64]
	logger  *zap.Logger
	enabled bool
}

// cacheEntry is the on-disk representation of one embedding.
type cacheEntry struct {
	Model     string    `json:"model"`
	CreatedAt time.Time `json:"created_at"`
	Vector    []float64 `json:"vector"`
}

// CacheConfig configures a Cache. Zero values select defaults; an empty Dir
// disables the disk tier.
type CacheConfig struct {
	Dir     string
	MaxSize int
	TTL     time.Duration
}

// NewCache creates a cache. The disk directory is created if configured.
func NewCache(cfg CacheConfig, logger *zap.Logger) (*Cache, error) {
	if cfg.MaxSize <= 0 {
		cfg.MaxSize = DefaultCacheSize
	}
	if cfg.TTL <= 0 {
		cfg.TTL = DefaultCacheTTL
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	memory, err := lru.New[string, []float64](cfg.MaxSize)
	if err != nil {
		return nil, fmt.Errorf("create lru cache: %w", err)
	}

	if cfg.Dir != "" {
		if err := os.MkdirAll(cfg.Dir, 0755); err != nil {
			return nil, fmt.Errorf("create cache directory %s: %w", cfg.Dir, err)
		}
	}

	return &Cache{
		dir:     cfg.Dir,
		ttl:     cfg.TTL,
		memory:  memory,
		logger:  logger,
		enabled: true,
	}, nil
}

// Key returns the content-addressed cache key for a model/text pair.
func Key(model, text string) string {
	sum := sha256.Sum256([]byte(model + ":" + text))
	return hex.EncodeToString(sum[:])
}

// Get returns the cached vector for the model/text pair, checking memory
// first, then disk. Disk hits are promoted into memory. Expired disk entries
// are removed and reported as misses.
func (c *Cache) Get(model, text string) ([]float64, bool) {
	key := Key(model, text)

	if vec, ok := c.memory.Get(key); ok {
		return vec, true
	}

	if c.dir == "" {
		return nil, false
	}

	path := filepath.Join(c.dir, key+".json")
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, false
	}

	var entry cacheEntry
	if err := json.Unmarshal(data, &entry); err != nil {
		c.logger.Warn("discarding unreadable cache entry", zap.String("path", path), zap.Error(err))
		_ = os.Remove(path)
		return nil, false
	}

	if time.Since(entry.CreatedAt) > c.ttl {
		_ = os.Remove(path)
		return nil, false
	}

	c.memory.Add(key, entry.Vector)
	return entry.Vector, true
}

// Put stores the vector in both tiers. Disk write failures are logged, not
// returned: the cache is an optimization, never a correctness dependency.
func (c *Cache) Put(model, text string, vector []float64) {
	key := Key(model, text)
	c.memory.Add(key, vector)

	if c.dir == "" {
		return
	}

	entry := cacheEntry{
		Model:     model,
		CreatedAt: time.Now().UTC(),
		Vector:    vector,
	}
	data, err := json.Marshal(entry)
	if err != nil {
		c.logger.Warn("marshal cache entry", zap.Error(err))
		return
	}

	path := filepath.Join(c.dir, key+".json")
	if err := os.WriteFile(path, data, 0644); err != nil {
		c.logger.Warn("write cache entry", zap.String("path", path), zap.Error(err))
	}
}

// Len reports the number of entries in the memory tier.
func (c *Cache) Len() int {
	return c.memory.Len()
}
