package boltdb

import (
	"context"
	"encoding/binary"
	"encoding/json"
	"fmt"
	"time"

	"go.etcd.io/bbolt"

	"github.com/vendapp/repvendas/internal/client/storage"
	"github.com/vendapp/repvendas/internal/models"
)

// Queue keys are the bucket's 8-byte big-endian sequence number: bbolt
// iterates keys in byte order, so iteration order is insertion order, which
// is CapturedAt ascending. Sequence numbers are never reused, even after
// deletes.

// Enqueue persists a queued order and returns its store-assigned local ID.
func (s *Storage) Enqueue(ctx context.Context, order *models.QueuedOrder) (uint64, error) {
	if s.db == nil {
		return 0, storage.ErrStorageClosed
	}

	var localID uint64

	err := s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketOrders)
		if bucket == nil {
			return fmt.Errorf("orders bucket missing")
		}

		seq, err := bucket.NextSequence()
		if err != nil {
			return fmt.Errorf("failed to assign local id: %w", err)
		}

		order.LocalID = seq
		if order.CapturedAt.IsZero() {
			order.CapturedAt = time.Now().UTC()
		}

		data, err := json.Marshal(order)
		if err != nil {
			return fmt.Errorf("failed to marshal queued order: %w", err)
		}

		if err := bucket.Put(itob(seq), data); err != nil {
			return fmt.Errorf("failed to save queued order: %w", err)
		}

		localID = seq
		return nil
	})

	if err != nil {
		return 0, fmt.Errorf("enqueue transaction failed: %w", err)
	}

	return localID, nil
}

// ListAll returns every queued order, oldest first.
func (s *Storage) ListAll(ctx context.Context) ([]*models.QueuedOrder, error) {
	if s.db == nil {
		return nil, storage.ErrStorageClosed
	}

	var orders []*models.QueuedOrder

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketOrders)
		if bucket == nil {
			return nil
		}

		return bucket.ForEach(func(k, v []byte) error {
			var order models.QueuedOrder
			if err := json.Unmarshal(v, &order); err != nil {
				return fmt.Errorf("failed to unmarshal queued order: %w", err)
			}
			orders = append(orders, &order)
			return nil
		})
	})

	if err != nil {
		return nil, fmt.Errorf("failed to list queued orders: %w", err)
	}

	return orders, nil
}

// Remove deletes one queued order by local ID. Deleting a missing ID is a
// no-op.
func (s *Storage) Remove(ctx context.Context, localID uint64) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	err := s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketOrders)
		if bucket == nil {
			return nil
		}
		return bucket.Delete(itob(localID))
	})

	if err != nil {
		return fmt.Errorf("remove transaction failed: %w", err)
	}

	return nil
}

// Clear removes all queued orders.
func (s *Storage) Clear(ctx context.Context) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	// Deletes keys one by one instead of dropping the bucket: dropping
	// would reset the sequence counter and local IDs must never be reused.
	err := s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketOrders)
		if bucket == nil {
			return nil
		}

		c := bucket.Cursor()
		for k, _ := c.First(); k != nil; k, _ = c.Next() {
			if err := c.Delete(); err != nil {
				return fmt.Errorf("failed to delete queued order: %w", err)
			}
		}

		return nil
	})

	if err != nil {
		return fmt.Errorf("clear transaction failed: %w", err)
	}

	return nil
}

// Count returns the number of queued orders.
func (s *Storage) Count(ctx context.Context) (int, error) {
	if s.db == nil {
		return 0, storage.ErrStorageClosed
	}

	var count int

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketOrders)
		if bucket == nil {
			return nil
		}
		count = bucket.Stats().KeyN
		return nil
	})

	if err != nil {
		return 0, fmt.Errorf("failed to count queued orders: %w", err)
	}

	return count, nil
}

// itob encodes a sequence number as a big-endian key.
func itob(v uint64) []byte {
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, v)
	return b
}
