package storage

import (
	"context"
	"testing"
	"time"

	"hostel-eats/internal/domain"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupPendingStore(t *testing.T) (*PendingCommitStore, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return NewPendingCommitStore(client, 30*time.Minute), mr
}

func testPending() *domain.PendingCommit {
	return &domain.PendingCommit{
		OrderID:  "order-1",
		Customer: domain.Customer{Name: "Asha", Phone: "9876543210"},
		Items: []domain.OrderItem{
			{ItemID: 1, Name: "Maggi", UnitPrice: 40, Quantity: 2},
		},
		Total: 80,
	}
}

func TestPendingCommit_StageAndClaim(t *testing.T) {
	store, _ := setupPendingStore(t)
	ctx := context.Background()

	require.NoError(t, store.Stage(ctx, testPending()))

	pending, err := store.Claim(ctx, "order-1")
	require.NoError(t, err)
	assert.Equal(t, "order-1", pending.OrderID)
	assert.Equal(t, int64(80), pending.Total)
	assert.Len(t, pending.Items, 1)
}

func TestPendingCommit_ClaimIsSingleShot(t *testing.T) {
	store, _ := setupPendingStore(t)
	ctx := context.Background()

	require.NoError(t, store.Stage(ctx, testPending()))

	_, err := store.Claim(ctx, "order-1")
	require.NoError(t, err)

	// The second claim must find nothing: that is the idempotency guarantee.
	_, err = store.Claim(ctx, "order-1")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestPendingCommit_ClaimMissing(t *testing.T) {
	store, _ := setupPendingStore(t)

	_, err := store.Claim(context.Background(), "never-staged")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestPendingCommit_Restage(t *testing.T) {
	store, _ := setupPendingStore(t)
	ctx := context.Background()

	require.NoError(t, store.Stage(ctx, testPending()))
	pending, err := store.Claim(ctx, "order-1")
	require.NoError(t, err)

	require.NoError(t, store.Restage(ctx, pending))

	again, err := store.Claim(ctx, "order-1")
	require.NoError(t, err)
	assert.Equal(t, pending.Total, again.Total)
}

func TestPendingCommit_Discard(t *testing.T) {
	store, _ := setupPendingStore(t)
	ctx := context.Background()

	require.NoError(t, store.Stage(ctx, testPending()))
	require.NoError(t, store.Discard(ctx, "order-1"))

	_, err := store.Claim(ctx, "order-1")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestPendingCommit_Expiry(t *testing.T) {
	store, mr := setupPendingStore(t)
	ctx := context.Background()

	require.NoError(t, store.Stage(ctx, testPending()))
	mr.FastForward(31 * time.Minute)

	_, err := store.Claim(ctx, "order-1")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestPendingCommit_PendingOrderIDs(t *testing.T) {
	store, _ := setupPendingStore(t)
	ctx := context.Background()

	first := testPending()
	second := testPending()
	second.OrderID = "order-2"
	require.NoError(t, store.Stage(ctx, first))
	require.NoError(t, store.Stage(ctx, second))

	ids, err := store.PendingOrderIDs(ctx)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"order-1", "order-2"}, ids)
}

func TestPendingCommit_Peek(t *testing.T) {
	store, _ := setupPendingStore(t)
	ctx := context.Background()

	require.NoError(t, store.Stage(ctx, testPending()))

	pending, err := store.Peek(ctx, "order-1")
	require.NoError(t, err)
	assert.Equal(t, "order-1", pending.OrderID)

	// Peek must not consume the record.
	_, err = store.Claim(ctx, "order-1")
	assert.NoError(t, err)
}
