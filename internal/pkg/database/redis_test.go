package database

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/go-redis/redismock/v8"
	"github.com/piresc/boleias/internal/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRedisClient_ConnectionError(t *testing.T) {
	config := models.RedisConfig{
		Host:     "127.0.0.1",
		Port:     1,
		PoolSize: 1,
	}

	client, err := NewRedisClient(config)

	assert.Error(t, err)
	assert.Nil(t, client)
	assert.Contains(t, err.Error(), "failed to connect to redis")
}

func TestRedisClient_IncrWindow_FirstHit(t *testing.T) {
	db, mock := redismock.NewClientMock()
	client := &RedisClient{Client: db}

	ctx := context.Background()
	mock.ExpectIncr("rate:k").SetVal(1)
	mock.ExpectExpire("rate:k", time.Minute).SetVal(true)

	count, ttl, err := client.IncrWindow(ctx, "rate:k", time.Minute)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
	assert.Equal(t, time.Minute, ttl)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRedisClient_IncrWindow_LaterHit(t *testing.T) {
	db, mock := redismock.NewClientMock()
	client := &RedisClient{Client: db}

	ctx := context.Background()
	mock.ExpectIncr("rate:k").SetVal(4)
	mock.ExpectTTL("rate:k").SetVal(20 * time.Second)

	count, ttl, err := client.IncrWindow(ctx, "rate:k", time.Minute)
	require.NoError(t, err)
	assert.Equal(t, int64(4), count)
	assert.Equal(t, 20*time.Second, ttl)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRedisClient_IncrWindow_Error(t *testing.T) {
	db, mock := redismock.NewClientMock()
	client := &RedisClient{Client: db}

	mock.ExpectIncr("rate:k").SetErr(errors.New("connection refused"))

	_, _, err := client.IncrWindow(context.Background(), "rate:k", time.Minute)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to increment")
}

func TestRedisClient_Ping(t *testing.T) {
	db, mock := redismock.NewClientMock()
	client := &RedisClient{Client: db}

	mock.ExpectPing().SetVal("PONG")
	assert.NoError(t, client.Ping(context.Background()))
	assert.Equal(t, db, client.GetClient())
}
