package state

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	apperrors "github.com/vladimiradmaev/akashic-rays/internal/errors"
)

// RedisOptions configures the redis-backed manager
type RedisOptions struct {
	Addr     string
	Password string
	DB       int
	TTL      time.Duration
}

// RedisManager manages user states using Redis
type RedisManager struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisManager creates a new Redis-based state manager
func NewRedisManager(ctx context.Context, opts RedisOptions) (*RedisManager, error) {
	client := redis.NewClient(&redis.Options{
		Addr:         opts.Addr,
		Password:     opts.Password,
		DB:           opts.DB,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
	})

	// Test connection
	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, apperrors.NewStateError(fmt.Errorf("failed to connect to Redis: %w", err), "connect").
			WithContext("addr", opts.Addr)
	}

	return NewRedisManagerFromClient(client, opts.TTL), nil
}

// NewRedisManagerFromClient wraps an existing client
func NewRedisManagerFromClient(client *redis.Client, ttl time.Duration) *RedisManager {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &RedisManager{client: client, ttl: ttl}
}

func stateKey(userID int64) string {
	return fmt.Sprintf("user:%d:state", userID)
}

func tempKey(userID int64) string {
	return fmt.Sprintf("user:%d:temp", userID)
}

// SetUserState sets the state for a user with TTL
func (m *RedisManager) SetUserState(ctx context.Context, userID int64, state string) error {
	if err := m.client.Set(ctx, stateKey(userID), state, m.ttl).Err(); err != nil {
		return apperrors.NewStateError(err, "set_state").WithContext("user_id", userID)
	}
	return nil
}

// GetUserState gets the state for a user
func (m *RedisManager) GetUserState(ctx context.Context, userID int64) (string, error) {
	state, err := m.client.Get(ctx, stateKey(userID)).Result()
	if err == redis.Nil {
		return None, nil
	}
	if err != nil {
		return None, apperrors.NewStateError(err, "get_state").WithContext("user_id", userID)
	}
	return state, nil
}

// ClearUserState clears the state for a user
func (m *RedisManager) ClearUserState(ctx context.Context, userID int64) error {
	if err := m.client.Del(ctx, stateKey(userID)).Err(); err != nil {
		return apperrors.NewStateError(err, "clear_state").WithContext("user_id", userID)
	}
	return nil
}

// SetTempData sets one field of the user's temp hash and refreshes its TTL
func (m *RedisManager) SetTempData(ctx context.Context, userID int64, key, value string) error {
	hash := tempKey(userID)
	_, err := m.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.HSet(ctx, hash, key, value)
		pipe.Expire(ctx, hash, m.ttl)
		return nil
	})
	if err != nil {
		return apperrors.NewStateError(err, "set_temp").WithContext("user_id", userID).WithContext("key", key)
	}
	return nil
}

// GetTempData gets temporary data for a user
func (m *RedisManager) GetTempData(ctx context.Context, userID int64, key string) (string, bool, error) {
	value, err := m.client.HGet(ctx, tempKey(userID), key).Result()
	if err == redis.Nil {
		return "", false, nil
	}
	if err != nil {
		return "", false, apperrors.NewStateError(err, "get_temp").WithContext("user_id", userID).WithContext("key", key)
	}
	return value, true, nil
}

// ClearTempData clears all temporary data for a user
func (m *RedisManager) ClearTempData(ctx context.Context, userID int64) error {
	if err := m.client.Del(ctx, tempKey(userID)).Err(); err != nil {
		return apperrors.NewStateError(err, "clear_temp").WithContext("user_id", userID)
	}
	return nil
}

// Close closes the Redis connection
func (m *RedisManager) Close() error {
	return m.client.Close()
}
