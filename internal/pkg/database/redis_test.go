package database

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/piresc/wakestop/internal/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMiniRedisClient(t *testing.T) (*RedisClient, *miniredis.Miniredis) {
	mr := miniredis.RunT(t)
	return &RedisClient{Client: redis.NewClient(&redis.Options{Addr: mr.Addr()})}, mr
}

func TestNewRedisClient_ConnectionError(t *testing.T) {
	client, err := NewRedisClient(models.RedisConfig{Host: "127.0.0.1", Port: 1})

	assert.Error(t, err)
	assert.Nil(t, client)
	assert.Contains(t, err.Error(), "failed to connect to redis")
}

func TestRedisClient_SetGetDelete(t *testing.T) {
	client, mr := newMiniRedisClient(t)
	ctx := context.Background()

	require.NoError(t, client.Set(ctx, "trip:snapshot:u1", "payload", time.Hour))
	got, err := client.Get(ctx, "trip:snapshot:u1")
	require.NoError(t, err)
	assert.Equal(t, "payload", got)
	assert.Equal(t, time.Hour, mr.TTL("trip:snapshot:u1"))

	require.NoError(t, client.Delete(ctx, "trip:snapshot:u1"))
	_, err = client.Get(ctx, "trip:snapshot:u1")
	assert.ErrorIs(t, err, redis.Nil)
}

func TestRedisClient_SetNX(t *testing.T) {
	client, _ := newMiniRedisClient(t)
	ctx := context.Background()

	ok, err := client.SetNX(ctx, "call:lock", "a", 5*time.Second)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = client.SetNX(ctx, "call:lock", "b", 5*time.Second)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestRedisClient_PingAndClose(t *testing.T) {
	client, _ := newMiniRedisClient(t)

	assert.NoError(t, client.Ping(context.Background()))
	assert.NoError(t, client.Close())
}
