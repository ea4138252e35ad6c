package archive

import (
	"context"
	"errors"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
	// Prefix namespaces every key, e.g. "classplanner:"
	Prefix string `mapstructure:"prefix"`
}

// RedisStore keeps blobs as Redis strings and token stacks as Redis lists
type RedisStore struct {
	rdb    *goredis.Client
	prefix string
	logger *zap.Logger
}

// NewRedisStore connects to Redis and checks the connection with a Ping
func NewRedisStore(ctx context.Context, config RedisConfig, logger *zap.Logger) (*RedisStore, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	rdb := goredis.NewClient(&goredis.Options{
		Addr:     config.Addr,
		Password: config.Password,
		DB:       config.DB,
	})

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("cannot connect to redis at %v: %w", config.Addr, err)
	}

	logger.Info("redis connected", zap.String("addr", config.Addr), zap.Int("db", config.DB))
	return &RedisStore{rdb: rdb, prefix: config.Prefix, logger: logger}, nil
}

func (store *RedisStore) Get(ctx context.Context, key string) (string, error) {
	value, err := store.rdb.Get(ctx, store.prefix+key).Result()
	if errors.Is(err, goredis.Nil) {
		return "", ErrMissing
	}
	return value, err
}

func (store *RedisStore) Set(ctx context.Context, key, value string) error {
	return store.rdb.Set(ctx, store.prefix+key, value, 0).Err()
}

func (store *RedisStore) Push(ctx context.Context, key, value string) error {
	return store.rdb.RPush(ctx, store.prefix+key, value).Err()
}

func (store *RedisStore) Peek(ctx context.Context, key string) (string, error) {
	value, err := store.rdb.LIndex(ctx, store.prefix+key, -1).Result()
	if errors.Is(err, goredis.Nil) {
		return "", ErrEmptyStack
	}
	return value, err
}

func (store *RedisStore) Pop(ctx context.Context, key string) (string, error) {
	value, err := store.rdb.RPop(ctx, store.prefix+key).Result()
	if errors.Is(err, goredis.Nil) {
		return "", ErrEmptyStack
	}
	return value, err
}

func (store *RedisStore) Close() error {
	return store.rdb.Close()
}
