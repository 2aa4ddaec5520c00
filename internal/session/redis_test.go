package session

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/magabrotheeeer/voucher-console/internal/config"
	"github.com/magabrotheeeer/voucher-console/internal/models"
)

func setupTestStore(t *testing.T) (*Store, *miniredis.Miniredis) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	store, err := InitServer(context.Background(), config.RedisConnection{AddressRedis: mr.Addr()})
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store, mr
}

func TestCreateAndGet(t *testing.T) {
	store, mr := setupTestStore(t)
	ctx := context.Background()

	expected := models.Session{
		AccessToken: "tok-123",
		Email:       "admin@shop.io",
		Role:        models.RoleAdmin,
		ExpiresAt:   time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC),
	}

	id, err := store.Create(ctx, expected, time.Hour)
	require.NoError(t, err)
	assert.Len(t, id, 36)
	assert.Equal(t, time.Hour, mr.TTL(keyPrefix+id))

	got, err := store.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, expected.AccessToken, got.AccessToken)
	assert.Equal(t, expected.Email, got.Email)
	assert.Equal(t, expected.Role, got.Role)
	assert.True(t, expected.ExpiresAt.Equal(got.ExpiresAt))
}

func TestGetNotFound(t *testing.T) {
	store, _ := setupTestStore(t)

	_, err := store.Get(context.Background(), "1b4e28ba-2fa1-11d2-883f-0016d3cca427")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = store.Get(context.Background(), "not-a-uuid")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestExpired(t *testing.T) {
	store, mr := setupTestStore(t)
	ctx := context.Background()

	id, err := store.Create(ctx, models.Session{AccessToken: "tok"}, time.Minute)
	require.NoError(t, err)

	mr.FastForward(2 * time.Minute)

	_, err = store.Get(ctx, id)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDelete(t *testing.T) {
	store, _ := setupTestStore(t)
	ctx := context.Background()

	id, err := store.Create(ctx, models.Session{AccessToken: "tok"}, time.Minute)
	require.NoError(t, err)

	require.NoError(t, store.Delete(ctx, id))
	require.NoError(t, store.Delete(ctx, id))

	_, err = store.Get(ctx, id)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCreateRejectsNonPositiveTTL(t *testing.T) {
	store, _ := setupTestStore(t)

	_, err := store.Create(context.Background(), models.Session{}, 0)
	assert.Error(t, err)
}

func TestGetInvalidJSON(t *testing.T) {
	store, mr := setupTestStore(t)

	id := "1b4e28ba-2fa1-11d2-883f-0016d3cca427"
	require.NoError(t, mr.Set(keyPrefix+id, "not-json"))

	_, err := store.Get(context.Background(), id)
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrNotFound)
}
