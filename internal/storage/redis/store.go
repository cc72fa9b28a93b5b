// Package redis stores values in a Redis server under a fixed key prefix.
package redis

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/julianstephens/smartpack/internal/constants"
	"github.com/julianstephens/smartpack/internal/storage"
)

var ErrEmbeddedCredentials = errors.New("redis URL must not contain a password")

type Store struct {
	url      string
	password string
	client   *redis.Client
}

// IsURL reports whether config looks like a Redis URL.
func IsURL(config string) bool {
	return strings.HasPrefix(config, "redis://") || strings.HasPrefix(config, "rediss://")
}

// New creates a store for a redis:// URL. The password, if any, is passed
// separately so it never appears in config files or flags.
func New(url, password string) *Store {
	return &Store{url: url, password: password}
}

// ValidateURL parses a Redis URL and rejects embedded passwords.
func ValidateURL(url string) (*redis.Options, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("invalid redis URL: %w", err)
	}
	if opts.Password != "" {
		return nil, ErrEmbeddedCredentials
	}
	return opts, nil
}

func key(k string) string {
	return constants.RedisKeyPrefix + k
}

func (s *Store) connect(ctx context.Context) error {
	if s.client != nil {
		return nil
	}
	opts, err := ValidateURL(s.url)
	if err != nil {
		return err
	}
	if s.password != "" {
		opts.Password = s.password
	}
	opts.DialTimeout = 3 * time.Second

	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return fmt.Errorf("failed to ping redis: %w", err)
	}
	s.client = client
	return nil
}

func (s *Store) Init() error {
	return s.connect(context.Background())
}

func (s *Store) Load() error {
	return s.connect(context.Background())
}

func (s *Store) Close() error {
	if s.client != nil {
		err := s.client.Close()
		s.client = nil
		return err
	}
	return nil
}

// Ping checks the server connection.
func (s *Store) Ping(ctx context.Context) error {
	if s.client == nil {
		return storage.ErrNotInitialized
	}
	return s.client.Ping(ctx).Err()
}

func (s *Store) Get(ctx context.Context, k string) (string, error) {
	if s.client == nil {
		return "", storage.ErrNotInitialized
	}
	v, err := s.client.Get(ctx, key(k)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", storage.ErrNotFound
		}
		return "", fmt.Errorf("failed to read key %s: %w", k, err)
	}
	return v, nil
}

func (s *Store) Set(ctx context.Context, k, value string) error {
	if s.client == nil {
		return storage.ErrNotInitialized
	}
	if err := s.client.Set(ctx, key(k), value, 0).Err(); err != nil {
		return fmt.Errorf("failed to write key %s: %w", k, err)
	}
	return nil
}

func (s *Store) Remove(ctx context.Context, k string) error {
	if s.client == nil {
		return storage.ErrNotInitialized
	}
	if err := s.client.Del(ctx, key(k)).Err(); err != nil {
		return fmt.Errorf("failed to remove key %s: %w", k, err)
	}
	return nil
}

func (s *Store) GetConfigPath() string {
	return "redis"
}
