package memory

import (
	"context"
	"encoding/json"
	"strings"
	"sync"

	"github.com/pkg/errors"

	"github.com/hawkerbazaar/storefront/internal/ports"
)

var errCacheMiss = errors.New("cache miss")

// Cache is a process-local CachePort used when no redis address is
// configured, and by tests. Same contract as the redis adapter, minus
// the TTL: entries live until invalidated or the process exits.
type Cache struct {
	mu      sync.Mutex
	entries map[string][]byte
}

var _ ports.CachePort = (*Cache)(nil)

func NewCache() *Cache {
	return &Cache{entries: make(map[string][]byte)}
}

func (c *Cache) Get(ctx context.Context, key string) ([]byte, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	data, ok := c.entries[key]
	if !ok {
		return nil, errors.Wrap(errCacheMiss, key)
	}
	return data, nil
}

func (c *Cache) Set(ctx context.Context, key string, value interface{}) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = data
	return nil
}

func (c *Cache) DeleteByPrefix(ctx context.Context, prefix string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	for key := range c.entries {
		if strings.HasPrefix(key, prefix) {
			delete(c.entries, key)
		}
	}
	return nil
}

func (c *Cache) Ping(ctx context.Context) error {
	return nil
}
