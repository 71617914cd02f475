package usecase

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"github.com/piresc/wakestop/internal/pkg/database"
	"github.com/piresc/wakestop/internal/pkg/logger"
	"github.com/piresc/wakestop/internal/pkg/models"
)

const (
	DebounceBackendMemory = "memory"
	DebounceBackendRedis  = "redis"

	defaultFallbackReset = 5 * time.Second
)

// Debouncer guards a key so that at most one call is in flight for it. A held key
// is released by the returned func, or after the fallback reset if release is
// never called.
type Debouncer interface {
	TryAcquire(ctx context.Context, key string) (release func(), ok bool, err error)
	IsHeld(ctx context.Context, key string) (bool, error)
}

// NewDebouncer builds the debouncer selected by cfg.Backend
func NewDebouncer(cfg models.DebounceConfig, redisClient *database.RedisClient) (Debouncer, error) {
	switch cfg.Backend {
	case "", DebounceBackendMemory:
		return NewMemoryDebouncer(cfg.FallbackReset), nil
	case DebounceBackendRedis:
		if redisClient == nil {
			return nil, fmt.Errorf("redis debounce backend requires a redis client")
		}
		return NewRedisDebouncer(redisClient, cfg.FallbackReset), nil
	default:
		return nil, fmt.Errorf("unknown debounce backend %q", cfg.Backend)
	}
}

func fallbackOrDefault(d time.Duration) time.Duration {
	if d <= 0 {
		return defaultFallbackReset
	}
	return d
}

// MemoryDebouncer holds keys in process memory
type MemoryDebouncer struct {
	mu       sync.Mutex
	held     map[string]uint64
	next     uint64
	fallback time.Duration
}

// NewMemoryDebouncer creates an in-process debouncer
func NewMemoryDebouncer(fallback time.Duration) *MemoryDebouncer {
	return &MemoryDebouncer{
		held:     make(map[string]uint64),
		fallback: fallbackOrDefault(fallback),
	}
}

// TryAcquire sets the key if it is free. The test and the set happen under one lock.
func (d *MemoryDebouncer) TryAcquire(ctx context.Context, key string) (func(), bool, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if _, busy := d.held[key]; busy {
		return nil, false, nil
	}
	d.next++
	gen := d.next
	d.held[key] = gen

	timer := time.AfterFunc(d.fallback, func() {
		if d.releaseGen(key, gen) {
			logger.Warn("Call debounce released by fallback timer", logger.String("key", key))
		}
	})

	var once sync.Once
	release := func() {
		once.Do(func() {
			timer.Stop()
			d.releaseGen(key, gen)
		})
	}
	return release, true, nil
}

// releaseGen frees key only if it is still held by the same acquisition
func (d *MemoryDebouncer) releaseGen(key string, gen uint64) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.held[key] != gen {
		return false
	}
	delete(d.held, key)
	return true
}

// IsHeld reports whether key is currently held
func (d *MemoryDebouncer) IsHeld(ctx context.Context, key string) (bool, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	_, busy := d.held[key]
	return busy, nil
}

// releaseScript deletes the key only when it still carries the caller's token
var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

// RedisDebouncer holds keys in Redis so every backend instance shares them
type RedisDebouncer struct {
	redisClient *database.RedisClient
	fallback    time.Duration
}

// NewRedisDebouncer creates a debouncer backed by SET NX PX
func NewRedisDebouncer(redisClient *database.RedisClient, fallback time.Duration) *RedisDebouncer {
	return &RedisDebouncer{
		redisClient: redisClient,
		fallback:    fallbackOrDefault(fallback),
	}
}

// TryAcquire sets key with a random token; the key expires after the fallback reset
func (d *RedisDebouncer) TryAcquire(ctx context.Context, key string) (func(), bool, error) {
	token := uuid.NewString()
	ok, err := d.redisClient.SetNX(ctx, key, token, d.fallback)
	if err != nil {
		return nil, false, fmt.Errorf("failed to acquire call lock: %w", err)
	}
	if !ok {
		return nil, false, nil
	}

	var once sync.Once
	release := func() {
		once.Do(func() {
			// released on a fresh context so a cancelled request still frees the key
			err := releaseScript.Run(context.Background(), d.redisClient.Client, []string{key}, token).Err()
			if err != nil {
				logger.Warn("Failed to release call lock",
					logger.String("key", key),
					logger.Err(err))
			}
		})
	}
	return release, true, nil
}

// IsHeld reports whether key is currently held
func (d *RedisDebouncer) IsHeld(ctx context.Context, key string) (bool, error) {
	n, err := d.redisClient.Client.Exists(ctx, key).Result()
	if err != nil {
		return false, fmt.Errorf("failed to check call lock: %w", err)
	}
	return n > 0, nil
}
