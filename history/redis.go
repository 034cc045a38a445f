package history

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/khandoba/threatindex/score"
)

// RedisOptions configures the Redis connection for a RedisStore.
type RedisOptions struct {
	// URL is the Redis connection string (e.g., "redis://localhost:6379")
	URL string

	// KeyPrefix namespaces the history keys. Default: "threatindex".
	KeyPrefix string

	// Cap overrides the per-vault snapshot cap. Default: DefaultCap.
	Cap int

	// ConnectTimeout is the maximum time to wait for connection establishment
	ConnectTimeout time.Duration

	// ReadTimeout is the maximum time to wait for read operations
	ReadTimeout time.Duration

	// WriteTimeout is the maximum time to wait for write operations
	WriteTimeout time.Duration
}

// RedisStore is a Store backed by Redis lists, one list per vault. Appends
// RPUSH the snapshot and LTRIM the list to the cap, so the oldest entry is
// evicted once the timeline is full. Snapshot ordering and atomicity of the
// append-and-trim pair are handled with a pipeline.
type RedisStore struct {
	client *redis.Client
	prefix string
	cap    int
}

// NewRedisStore creates a Redis-backed history store and verifies
// connectivity with a ping.
func NewRedisStore(opts RedisOptions) (*RedisStore, error) {
	if opts.URL == "" {
		opts.URL = "redis://localhost:6379"
	}
	if opts.KeyPrefix == "" {
		opts.KeyPrefix = "threatindex"
	}
	if opts.Cap <= 0 {
		opts.Cap = DefaultCap
	}
	if opts.ConnectTimeout == 0 {
		opts.ConnectTimeout = 5 * time.Second
	}

	redisOpts, err := redis.ParseURL(opts.URL)
	if err != nil {
		return nil, fmt.Errorf("history: invalid redis URL: %w", err)
	}
	redisOpts.DialTimeout = opts.ConnectTimeout
	redisOpts.ReadTimeout = opts.ReadTimeout
	redisOpts.WriteTimeout = opts.WriteTimeout

	client := redis.NewClient(redisOpts)

	ctx, cancel := context.WithTimeout(context.Background(), opts.ConnectTimeout)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("%w: ping failed: %v", ErrUnavailable, err)
	}

	return &RedisStore{
		client: client,
		prefix: opts.KeyPrefix,
		cap:    opts.Cap,
	}, nil
}

// Append implements Store.
func (s *RedisStore) Append(ctx context.Context, vaultID string, snap score.Snapshot) error {
	if vaultID == "" {
		return ErrInvalidVaultID
	}
	data, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("history: failed to marshal snapshot: %w", err)
	}

	key := s.key(vaultID)
	pipe := s.client.TxPipeline()
	pipe.RPush(ctx, key, data)
	pipe.LTrim(ctx, key, int64(-s.cap), -1)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("%w: append failed for vault %s: %v", ErrUnavailable, vaultID, err)
	}
	return nil
}

// History implements Store.
func (s *RedisStore) History(ctx context.Context, vaultID string) ([]score.Snapshot, error) {
	if vaultID == "" {
		return nil, ErrInvalidVaultID
	}
	raw, err := s.client.LRange(ctx, s.key(vaultID), 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("%w: read failed for vault %s: %v", ErrUnavailable, vaultID, err)
	}
	if len(raw) == 0 {
		return nil, nil
	}

	snaps := make([]score.Snapshot, 0, len(raw))
	for _, item := range raw {
		var snap score.Snapshot
		if err := json.Unmarshal([]byte(item), &snap); err != nil {
			return nil, fmt.Errorf("history: corrupt snapshot for vault %s: %w", vaultID, err)
		}
		snaps = append(snaps, snap)
	}
	return snaps, nil
}

// Last implements Store.
func (s *RedisStore) Last(ctx context.Context, vaultID string) (*score.Snapshot, error) {
	if vaultID == "" {
		return nil, ErrInvalidVaultID
	}
	raw, err := s.client.LIndex(ctx, s.key(vaultID), -1).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: read failed for vault %s: %v", ErrUnavailable, vaultID, err)
	}

	var snap score.Snapshot
	if err := json.Unmarshal([]byte(raw), &snap); err != nil {
		return nil, fmt.Errorf("history: corrupt snapshot for vault %s: %w", vaultID, err)
	}
	return &snap, nil
}

// Close closes the Redis connection.
func (s *RedisStore) Close() error {
	return s.client.Close()
}

func (s *RedisStore) key(vaultID string) string {
	return fmt.Sprintf("%s:history:%s", s.prefix, vaultID)
}
