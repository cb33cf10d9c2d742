package session

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/swipeschedule/ss_backendl/config"
	"github.com/swipeschedule/ss_backendl/models"
)

// Spins up the production session backend end to end: the configured
// Redis client, the versioned slot key, and pub/sub sync between two
// store instances. Skipped when no Redis is reachable.
func TestRedisSlotSyncAcrossInstances(t *testing.T) {
	ctx := context.Background()
	client := config.NewRedisClient()
	if err := client.Ping(ctx).Err(); err != nil {
		t.Skipf("redis not available: %v", err)
	}

	// Suffix the configured key so parallel test runs don't collide.
	key := config.NewConfig().SessionKey + ".test." + uuid.NewString()
	t.Cleanup(func() {
		client.Del(ctx, key)
		client.Close()
	})

	firstSlot := NewRedisSlot(client, key)
	secondSlot := NewRedisSlot(client, key)
	t.Cleanup(func() {
		firstSlot.Close()
		secondSlot.Close()
	})

	first := NewStore(firstSlot)
	second := NewStore(secondSlot)
	require.NoError(t, second.BindSync())

	first.LoginWithToken("redis-token", models.RoleBusiness)

	require.Eventually(t, func() bool {
		return second.IsAuthenticated() && second.Token() == "redis-token"
	}, 3*time.Second, 50*time.Millisecond, "second instance never saw the login")
	assert.Equal(t, models.RoleBusiness, second.Role())

	// A fresh instance restores the same persisted state.
	third := NewStore(NewRedisSlot(client, key))
	third.Restore()
	assert.True(t, third.IsAuthenticated())
	assert.Equal(t, "redis-token", third.Token())

	first.Logout()
	require.Eventually(t, func() bool {
		return !second.IsAuthenticated()
	}, 3*time.Second, 50*time.Millisecond, "second instance never saw the logout")
}
