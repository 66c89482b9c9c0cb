package boltdb

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vendapp/repvendas/internal/models"
)

// createTestStorage creates a temporary storage for tests
func createTestStorage(t *testing.T) (*Storage, string) {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "test.db")

	ctx := context.Background()
	store, err := New(ctx, dbPath)
	require.NoError(t, err)
	require.NotNil(t, store)

	t.Cleanup(func() {
		if store.db != nil {
			require.NoError(t, store.Close())
		}
	})

	return store, dbPath
}

// createTestOrder creates a queued order fixture
func createTestOrder(cnpj string, capturedAt time.Time) *models.QueuedOrder {
	return &models.QueuedOrder{
		CapturedAt:    capturedAt,
		SubmissionKey: "key-" + cnpj,
		Client: models.ClientReference{
			CNPJ:        cnpj,
			RazaoSocial: "Empresa " + cnpj,
		},
		PaymentMethodID:    "pm-1",
		DiscountPercentage: 5,
		Items: []models.LineItem{
			{
				Code:        "C-100",
				Description: "Camiseta",
				UnitValue:   10.0,
				Quantity:    map[string]int{"M": 5},
			},
		},
	}
}

func TestStorage_Enqueue(t *testing.T) {
	store, _ := createTestStorage(t)
	ctx := context.Background()

	order := createTestOrder("11222333000144", time.Time{})

	localID, err := store.Enqueue(ctx, order)
	require.NoError(t, err)
	assert.Equal(t, uint64(1), localID)
	assert.Equal(t, localID, order.LocalID)
	assert.False(t, order.CapturedAt.IsZero(), "enqueue must stamp capture time")

	// IDs are monotonic
	second, err := store.Enqueue(ctx, createTestOrder("99888777000155", time.Time{}))
	require.NoError(t, err)
	assert.Equal(t, uint64(2), second)
}

func TestStorage_Enqueue_PreservesCapturedAt(t *testing.T) {
	store, _ := createTestStorage(t)
	ctx := context.Background()

	capturedAt := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	order := createTestOrder("11222333000144", capturedAt)

	_, err := store.Enqueue(ctx, order)
	require.NoError(t, err)
	assert.Equal(t, capturedAt, order.CapturedAt)
}

func TestStorage_ListAll_FIFO(t *testing.T) {
	store, _ := createTestStorage(t)
	ctx := context.Background()

	base := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	cnpjs := []string{"11111111000111", "22222222000122", "33333333000133"}
	for i, cnpj := range cnpjs {
		_, err := store.Enqueue(ctx, createTestOrder(cnpj, base.Add(time.Duration(i)*time.Minute)))
		require.NoError(t, err)
	}

	orders, err := store.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, orders, 3)

	for i, cnpj := range cnpjs {
		assert.Equal(t, cnpj, orders[i].Client.CNPJ)
	}
	assert.True(t, orders[0].CapturedAt.Before(orders[1].CapturedAt))
	assert.True(t, orders[1].CapturedAt.Before(orders[2].CapturedAt))
}

func TestStorage_ListAll_Empty(t *testing.T) {
	store, _ := createTestStorage(t)

	orders, err := store.ListAll(context.Background())
	require.NoError(t, err)
	assert.Empty(t, orders)
}

// Queued orders must survive a close and reopen of the database.
func TestStorage_Durability(t *testing.T) {
	ctx := context.Background()
	store, dbPath := createTestStorage(t)

	original := createTestOrder("11222333000144", time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC))
	localID, err := store.Enqueue(ctx, original)
	require.NoError(t, err)

	require.NoError(t, store.Close())

	reopened, err := New(ctx, dbPath)
	require.NoError(t, err)
	defer func() {
		require.NoError(t, reopened.Close())
	}()

	orders, err := reopened.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, orders, 1)

	got := orders[0]
	assert.Equal(t, localID, got.LocalID)
	assert.Equal(t, original.SubmissionKey, got.SubmissionKey)
	assert.Equal(t, original.Client, got.Client)
	assert.Equal(t, original.Items, got.Items)
	assert.True(t, original.CapturedAt.Equal(got.CapturedAt))
}

func TestStorage_Remove(t *testing.T) {
	store, _ := createTestStorage(t)
	ctx := context.Background()

	first, err := store.Enqueue(ctx, createTestOrder("11111111000111", time.Time{}))
	require.NoError(t, err)
	second, err := store.Enqueue(ctx, createTestOrder("22222222000122", time.Time{}))
	require.NoError(t, err)

	require.NoError(t, store.Remove(ctx, first))

	orders, err := store.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, second, orders[0].LocalID)
}

// Removing the same ID twice, or an ID that never existed, is a no-op.
func TestStorage_Remove_Idempotent(t *testing.T) {
	store, _ := createTestStorage(t)
	ctx := context.Background()

	localID, err := store.Enqueue(ctx, createTestOrder("11111111000111", time.Time{}))
	require.NoError(t, err)

	require.NoError(t, store.Remove(ctx, localID))
	require.NoError(t, store.Remove(ctx, localID))
	require.NoError(t, store.Remove(ctx, 99999))

	orders, err := store.ListAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, orders)
}

func TestStorage_Clear(t *testing.T) {
	store, _ := createTestStorage(t)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		_, err := store.Enqueue(ctx, createTestOrder("11111111000111", time.Time{}))
		require.NoError(t, err)
	}

	require.NoError(t, store.Clear(ctx))

	count, err := store.Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)

	// Local IDs keep growing after a clear, they are never reused
	localID, err := store.Enqueue(ctx, createTestOrder("22222222000122", time.Time{}))
	require.NoError(t, err)
	assert.Equal(t, uint64(4), localID)
}

func TestStorage_Count(t *testing.T) {
	store, _ := createTestStorage(t)
	ctx := context.Background()

	count, err := store.Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)

	for i := 0; i < 5; i++ {
		_, err := store.Enqueue(ctx, createTestOrder("11111111000111", time.Time{}))
		require.NoError(t, err)
	}

	count, err = store.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 5, count)
}
