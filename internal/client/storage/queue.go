package storage

import (
	"context"

	"github.com/vendapp/repvendas/internal/models"
)

//go:generate moq -out queue_mock.go . OrderQueue

// OrderQueue defines the interface for the durable local queue of orders
// captured while offline. Records survive process restarts; a queued order
// is removed only after the server acknowledged it or the user deleted it.
type OrderQueue interface {
	// Enqueue persists an order and returns its store-assigned local ID.
	// The store sets LocalID and, if zero, CapturedAt on the record.
	// A storage error must reach the caller: the user has to know the
	// order was not saved.
	Enqueue(ctx context.Context, order *models.QueuedOrder) (uint64, error)

	// ListAll returns every queued order, oldest first (CapturedAt
	// ascending), for FIFO synchronization and deterministic display.
	ListAll(ctx context.Context) ([]*models.QueuedOrder, error)

	// Remove deletes one queued order by local ID. Removing an ID that
	// does not exist is not an error.
	Remove(ctx context.Context, localID uint64) error

	// Clear deletes all queued orders.
	Clear(ctx context.Context) error

	// Count returns the number of queued orders without loading them.
	Count(ctx context.Context) (int, error)
}
