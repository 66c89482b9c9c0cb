package storage

import "errors"

// Common client storage errors
var (
	// ErrOrderNotFound indicates that a queued order was not found
	ErrOrderNotFound = errors.New("queued order not found")

	// ErrProductNotFound indicates that a cached product was not found
	ErrProductNotFound = errors.New("product not found in local cache")

	// ErrStorageClosed indicates that storage is closed
	ErrStorageClosed = errors.New("storage is closed")
)
