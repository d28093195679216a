// Package cache keeps read-mostly snapshots in Redis. Entries are keyed by a
// generation counter; bumping the counter after a write makes every older
// entry unreachable at once.
package cache

import (
	"context"
	"crypto/tls"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

type Store interface {
	// Generation returns the current generation. Read it once per load and
	// pass it to both Get and Set.
	Generation(ctx context.Context) (int64, error)
	// Get decodes the entry for key at gen into dest. It reports false on a
	// miss.
	Get(ctx context.Context, key string, gen int64, dest any) (bool, error)
	Set(ctx context.Context, key string, gen int64, value any) error
	// Invalidate moves to a new generation.
	Invalidate(ctx context.Context) error
}

type Options struct {
	Addr     string
	Password string
	DB       int
	TLS      bool
}

// NewRedisClient connects and pings with a short timeout.
func NewRedisClient(opts Options) (*redis.Client, error) {
	var tlsConf *tls.Config
	if opts.TLS {
		tlsConf = &tls.Config{MinVersion: tls.VersionTLS12}
	}
	client := redis.NewClient(&redis.Options{
		Addr:      opts.Addr,
		Password:  opts.Password,
		DB:        opts.DB,
		TLSConfig: tlsConf,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping %s: %w", opts.Addr, err)
	}
	return client, nil
}

type Redis struct {
	rdb    redis.UniversalClient
	prefix string
	ttl    time.Duration
}

func NewRedis(rdb redis.UniversalClient, prefix string, ttl time.Duration) *Redis {
	return &Redis{rdb: rdb, prefix: prefix, ttl: ttl}
}

func (r *Redis) genKey() string { return r.prefix + ":gen" }

func (r *Redis) entryKey(key string, gen int64) string {
	return r.prefix + ":" + key + ":" + strconv.FormatInt(gen, 10)
}

func (r *Redis) Generation(ctx context.Context) (int64, error) {
	gen, err := r.rdb.Get(ctx, r.genKey()).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("read cache generation: %w", err)
	}
	return gen, nil
}

func (r *Redis) Get(ctx context.Context, key string, gen int64, dest any) (bool, error) {
	bs, err := r.rdb.Get(ctx, r.entryKey(key, gen)).Bytes()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("read cache %s: %w", key, err)
	}
	if err := json.Unmarshal(bs, dest); err != nil {
		return false, fmt.Errorf("decode cache %s: %w", key, err)
	}
	return true, nil
}

func (r *Redis) Set(ctx context.Context, key string, gen int64, value any) error {
	bs, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encode cache %s: %w", key, err)
	}
	if err := r.rdb.Set(ctx, r.entryKey(key, gen), bs, r.ttl).Err(); err != nil {
		return fmt.Errorf("write cache %s: %w", key, err)
	}
	return nil
}

func (r *Redis) Invalidate(ctx context.Context) error {
	if err := r.rdb.Incr(ctx, r.genKey()).Err(); err != nil {
		return fmt.Errorf("bump cache generation: %w", err)
	}
	return nil
}

// Nop never stores anything.
type Nop struct{}

func (Nop) Generation(context.Context) (int64, error) { return 0, nil }
func (Nop) Get(context.Context, string, int64, any) (bool, error) { return false, nil }
func (Nop) Set(context.Context, string, int64, any) error { return nil }
func (Nop) Invalidate(context.Context) error { return nil }
