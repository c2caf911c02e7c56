package snapshot

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/redis/go-redis/v9"
)

// RedisConfig configures a Redis snapshot store.
type RedisConfig struct {
	// Addr is the Redis server address (host:port).
	Addr string

	// Password is optional.
	Password string

	// DB is the Redis database number.
	DB int

	// Prefix namespaces the snapshot keys. Defaults to "pagezone:snapshot:".
	Prefix string
}

// RedisStore is a Redis-backed snapshot store for shared deployments.
type RedisStore struct {
	client *redis.Client
	prefix string
}

// NewRedisStore connects to Redis and verifies the connection.
func NewRedisStore(ctx context.Context, cfg RedisConfig) (*RedisStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("connect to redis: %w", err)
	}

	prefix := cfg.Prefix
	if prefix == "" {
		prefix = "pagezone:snapshot:"
	}
	return &RedisStore{client: client, prefix: prefix}, nil
}

func (s *RedisStore) key(name string) string {
	return s.prefix + name
}

func (s *RedisStore) Save(ctx context.Context, snap *Snapshot) (err error) {
	defer func() { observeSave(ctx, "redis", snap, err) }()
	if err = ValidateName(snap.Name); err != nil {
		return err
	}

	data, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("marshal snapshot: %w", err)
	}
	if err := s.client.Set(ctx, s.key(snap.Name), data, 0).Err(); err != nil {
		return fmt.Errorf("store snapshot: %w", err)
	}
	return nil
}

func (s *RedisStore) Load(ctx context.Context, name string) (snap *Snapshot, err error) {
	defer func() { observeLoad(ctx, "redis", name, err) }()
	if err = ValidateName(name); err != nil {
		return nil, err
	}

	data, err := s.client.Get(ctx, s.key(name)).Bytes()
	if err == redis.Nil {
		return nil, notFound(name)
	}
	if err != nil {
		return nil, fmt.Errorf("fetch snapshot: %w", err)
	}

	var loaded Snapshot
	if err := json.Unmarshal(data, &loaded); err != nil {
		return nil, fmt.Errorf("parse snapshot: %w", err)
	}
	return &loaded, nil
}

func (s *RedisStore) List(ctx context.Context) ([]string, error) {
	var names []string
	iter := s.client.Scan(ctx, 0, s.prefix+"*", 100).Iterator()
	for iter.Next(ctx) {
		names = append(names, strings.TrimPrefix(iter.Val(), s.prefix))
	}
	if err := iter.Err(); err != nil {
		return nil, fmt.Errorf("scan snapshots: %w", err)
	}
	sort.Strings(names)
	return names, nil
}

func (s *RedisStore) Delete(ctx context.Context, name string) error {
	if err := ValidateName(name); err != nil {
		return err
	}
	if err := s.client.Del(ctx, s.key(name)).Err(); err != nil {
		return fmt.Errorf("delete snapshot: %w", err)
	}
	return nil
}

func (s *RedisStore) Close() error {
	return s.client.Close()
}

var _ Store = (*RedisStore)(nil)
