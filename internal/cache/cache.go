package cache

import (
	"context"
	"crypto/sha256"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"jobfinder/internal/model"
)

// Cache provides Redis-backed caching of raw per-board scrape results.
type Cache struct {
	client *redis.Client
	ttl    time.Duration
}

// New connects to Redis at the given URL and returns a Cache.
// URL format: redis://localhost:6379
func New(redisURL string, ttl time.Duration) (*Cache, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("cache: invalid redis URL: %w", err)
	}

	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("cache: redis ping failed: %w", err)
	}

	return &Cache{client: client, ttl: ttl}, nil
}

// Get retrieves cached postings for a board and its configured queries.
// Returns the postings and true if a valid cache entry exists, or nil and
// false otherwise.
func (c *Cache) Get(ctx context.Context, board string, queries []string) ([]model.Posting, bool) {
	data, err := c.client.Get(ctx, buildKey(board, queries)).Bytes()
	if err != nil {
		return nil, false
	}

	var postings []model.Posting
	if err := json.Unmarshal(data, &postings); err != nil {
		return nil, false
	}

	return postings, true
}

// Set stores a board's postings in the cache with the configured TTL.
func (c *Cache) Set(ctx context.Context, board string, queries []string, postings []model.Posting) error {
	data, err := json.Marshal(postings)
	if err != nil {
		return fmt.Errorf("cache: marshal error: %w", err)
	}

	return c.client.Set(ctx, buildKey(board, queries), data, c.ttl).Err()
}

// Close closes the Redis connection.
func (c *Cache) Close() error {
	return c.client.Close()
}

// buildKey fingerprints the board name and its query set so a config change
// naturally invalidates the entry.
func buildKey(board string, queries []string) string {
	raw := strings.ToLower(board + ":" + strings.Join(queries, "|"))
	hash := sha256.Sum256([]byte(raw))
	return fmt.Sprintf("jobfinder:%s:%x", strings.ToLower(board), hash[:8])
}
