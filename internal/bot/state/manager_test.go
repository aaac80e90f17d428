package state

import (
	"context"
	"fmt"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vladimiradmaev/akashic-rays/internal/domain"
)

// exerciseManager checks the behaviour every StateManager must share
func exerciseManager(t *testing.T, m StateManager, userID int64) {
	t.Helper()
	ctx := context.Background()

	state, err := m.GetUserState(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, None, state)

	require.NoError(t, m.SetUserState(ctx, userID, WaitingForBirthDate))
	state, err = m.GetUserState(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, WaitingForBirthDate, state)

	_, ok, err := m.GetTempData(ctx, userID, KeyName)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, m.SetTempData(ctx, userID, KeyName, "Carl Jung"))
	value, ok, err := m.GetTempData(ctx, userID, KeyName)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "Carl Jung", value)

	require.NoError(t, m.ClearUserState(ctx, userID))
	state, err = m.GetUserState(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, None, state)

	// Clearing the state keeps the profile available for tab switches.
	_, ok, err = m.GetTempData(ctx, userID, KeyName)
	require.NoError(t, err)
	assert.True(t, ok)

	require.NoError(t, m.ClearTempData(ctx, userID))
	_, ok, err = m.GetTempData(ctx, userID, KeyName)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestManagerBehaviour(t *testing.T) {
	exerciseManager(t, NewManager(time.Minute), 1)
}

func TestManagerUsersAreIsolated(t *testing.T) {
	ctx := context.Background()
	m := NewManager(time.Minute)

	require.NoError(t, m.SetUserState(ctx, 1, WaitingForName))
	require.NoError(t, m.SetTempData(ctx, 1, KeyName, "one"))

	state, err := m.GetUserState(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, None, state)
	_, ok, err := m.GetTempData(ctx, 2, KeyName)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestManagerExpiresIdleSessions(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	m := NewManager(10 * time.Minute)
	m.now = func() time.Time { return now }

	require.NoError(t, m.SetUserState(ctx, 7, WaitingForBirthPlace))
	require.NoError(t, m.SetTempData(ctx, 7, KeyName, "Annie Besant"))

	now = now.Add(9 * time.Minute)
	state, err := m.GetUserState(ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, WaitingForBirthPlace, state)

	now = now.Add(2 * time.Minute)
	state, err = m.GetUserState(ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, None, state)
	_, ok, err := m.GetTempData(ctx, 7, KeyName)
	require.NoError(t, err)
	assert.False(t, ok)

	assert.Equal(t, 1, m.Sweep())
	assert.Equal(t, 0, m.Sweep())
}

func TestManagerDefaultTTL(t *testing.T) {
	assert.Equal(t, DefaultTTL, NewManager(0).ttl)
}

func TestManagerConcurrentAccess(t *testing.T) {
	ctx := context.Background()
	m := NewManager(time.Minute)

	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func(id int64) {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				_ = m.SetUserState(ctx, id, WaitingForName)
				_ = m.SetTempData(ctx, id, KeyName, fmt.Sprint(j))
				_, _ = m.GetUserState(ctx, id)
				_, _, _ = m.GetTempData(ctx, id, KeyName)
			}
		}(int64(i % 4))
	}
	wg.Wait()

	for id := int64(0); id < 4; id++ {
		state, err := m.GetUserState(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, WaitingForName, state)
	}
}

func TestSaveAndLoadProfile(t *testing.T) {
	ctx := context.Background()
	m := NewManager(time.Minute)

	_, ok, err := LoadProfile(ctx, m, 3)
	require.NoError(t, err)
	assert.False(t, ok)

	profile := domain.UserProfile{
		Name:       "Manly P. Hall",
		BirthDate:  "1901-03-18",
		BirthTime:  "",
		BirthPlace: "Peterborough, Canada",
	}
	require.NoError(t, SaveProfile(ctx, m, 3, profile))

	loaded, ok, err := LoadProfile(ctx, m, 3)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, profile, loaded)
}

func TestRedisManagerBehaviour(t *testing.T) {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		t.Skip("REDIS_ADDR not set")
	}

	ctx := context.Background()
	m, err := NewRedisManager(ctx, RedisOptions{Addr: addr, TTL: time.Minute})
	require.NoError(t, err)
	t.Cleanup(func() { _ = m.Close() })

	userID := time.Now().UnixNano()
	t.Cleanup(func() {
		_ = m.ClearUserState(ctx, userID)
		_ = m.ClearTempData(ctx, userID)
	})

	exerciseManager(t, m, userID)

	require.NoError(t, m.SetTempData(ctx, userID, KeyName, "ttl"))
	ttl, err := m.client.TTL(ctx, tempKey(userID)).Result()
	require.NoError(t, err)
	assert.Greater(t, ttl, time.Duration(0))
	assert.LessOrEqual(t, ttl, time.Minute)
}

func TestNewRedisManagerReportsUnreachableServer(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	_, err := NewRedisManager(ctx, RedisOptions{Addr: "127.0.0.1:1"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to connect to Redis")
}

func TestRedisManagerFromClientDefaultsTTL(t *testing.T) {
	client := redis.NewClient(&redis.Options{Addr: "127.0.0.1:1"})
	t.Cleanup(func() { _ = client.Close() })

	m := NewRedisManagerFromClient(client, 0)
	assert.Equal(t, DefaultTTL, m.ttl)
}
