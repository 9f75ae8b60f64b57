package redis

import (
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/require"
)

func setupRedis(t *testing.T) {
	t.Helper()
	mr := miniredis.RunT(t)
	require.NoError(t, Init(mr.Addr(), "", 0))
	t.Cleanup(func() {
		Close()
		Client = nil
	})
}

func TestRoleCache_SetGet(t *testing.T) {
	setupRedis(t)
	cache := &RoleCache{}

	require.NoError(t, cache.SetRoleID("Community Admin", "role-1"))

	id, err := cache.GetRoleID("Community Admin")
	require.NoError(t, err)
	require.Equal(t, "role-1", id)
}

func TestRoleCache_Miss(t *testing.T) {
	setupRedis(t)
	cache := &RoleCache{}

	_, err := cache.GetRoleID("Community Member")
	require.ErrorIs(t, err, ErrRoleNotCached)
}

func TestRoleCache_NoClient(t *testing.T) {
	Client = nil
	cache := &RoleCache{}

	_, err := cache.GetRoleID("Community Admin")
	require.ErrorIs(t, err, ErrRedisUnavailable)
	require.ErrorIs(t, cache.SetRoleID("Community Admin", "role-1"), ErrRedisUnavailable)
}
