package boltdb

import (
	"context"
	"encoding/json"
	"fmt"

	"go.etcd.io/bbolt"

	"github.com/vendapp/repvendas/internal/client/storage"
	"github.com/vendapp/repvendas/internal/models"
)

// SaveProducts replaces the cached catalog with the given products in a
// single transaction, keyed by catalog code.
func (s *Storage) SaveProducts(ctx context.Context, products []models.Product) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	err := s.db.Update(func(tx *bbolt.Tx) error {
		if err := tx.DeleteBucket(bucketProducts); err != nil && err != bbolt.ErrBucketNotFound {
			return fmt.Errorf("failed to delete products bucket: %w", err)
		}

		bucket, err := tx.CreateBucket(bucketProducts)
		if err != nil {
			return fmt.Errorf("failed to create products bucket: %w", err)
		}

		for i := range products {
			data, err := json.Marshal(&products[i])
			if err != nil {
				return fmt.Errorf("failed to marshal product: %w", err)
			}
			if err := bucket.Put([]byte(products[i].Code), data); err != nil {
				return fmt.Errorf("failed to save product: %w", err)
			}
		}

		return nil
	})

	if err != nil {
		return fmt.Errorf("save products transaction failed: %w", err)
	}

	return nil
}

// ListProducts returns all cached products, ordered by catalog code.
func (s *Storage) ListProducts(ctx context.Context) ([]models.Product, error) {
	if s.db == nil {
		return nil, storage.ErrStorageClosed
	}

	var products []models.Product

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketProducts)
		if bucket == nil {
			return nil
		}

		return bucket.ForEach(func(k, v []byte) error {
			var product models.Product
			if err := json.Unmarshal(v, &product); err != nil {
				return fmt.Errorf("failed to unmarshal product: %w", err)
			}
			products = append(products, product)
			return nil
		})
	})

	if err != nil {
		return nil, fmt.Errorf("failed to list cached products: %w", err)
	}

	return products, nil
}

// GetProduct returns one cached product by catalog code.
func (s *Storage) GetProduct(ctx context.Context, code string) (*models.Product, error) {
	if s.db == nil {
		return nil, storage.ErrStorageClosed
	}

	var product *models.Product

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketProducts)
		if bucket == nil {
			return storage.ErrProductNotFound
		}

		data := bucket.Get([]byte(code))
		if data == nil {
			return storage.ErrProductNotFound
		}

		product = &models.Product{}
		if err := json.Unmarshal(data, product); err != nil {
			return fmt.Errorf("failed to unmarshal product: %w", err)
		}

		return nil
	})

	if err != nil {
		return nil, err
	}

	return product, nil
}
