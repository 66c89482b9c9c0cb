// Package capture finalizes order entry. It owns the one decision that
// couples the UI workflow to the offline core: a completed order is either
// submitted to the server right away or persisted to the local queue,
// depending on connectivity at the moment of submission.
package capture

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	httpClient "github.com/vendapp/repvendas/internal/client/api"
	"github.com/vendapp/repvendas/internal/client/netmon"
	"github.com/vendapp/repvendas/internal/client/storage"
	"github.com/vendapp/repvendas/internal/models"
	"github.com/vendapp/repvendas/internal/validation"
	apidto "github.com/vendapp/repvendas/pkg/api"
)

// Result reports where a submitted order ended up.
type Result struct {
	// ServerOrder is the created order when it was submitted directly.
	ServerOrder *apidto.Order
	// LocalID identifies the queued record when the order was captured
	// offline.
	LocalID uint64
	// Queued is true when the order waits locally for synchronization.
	Queued bool
}

// Service drives the final step of order capture.
type Service struct {
	apiClient httpClient.ClientAPI
	queue     storage.OrderQueue
	catalog   storage.CatalogCache
	monitor   *netmon.Monitor
	logger    *slog.Logger
}

// NewService creates a new capture service.
func NewService(apiClient httpClient.ClientAPI, queue storage.OrderQueue, catalog storage.CatalogCache, monitor *netmon.Monitor, logger *slog.Logger) *Service {
	return &Service{
		apiClient: apiClient,
		queue:     queue,
		catalog:   catalog,
		monitor:   monitor,
		logger:    logger,
	}
}

// Submit validates a completed order and routes it: online goes straight
// to the server and never touches the queue, offline goes to the local
// queue and waits for synchronization. A storage failure on the offline
// path reaches the caller; the user must know the order was not saved.
func (s *Service) Submit(ctx context.Context, order *models.QueuedOrder) (*Result, error) {
	if err := validation.ValidateOrder(order); err != nil {
		return nil, err
	}

	if order.SubmissionKey == "" {
		order.SubmissionKey = uuid.NewString()
	}

	if s.monitor.Online() {
		created, err := s.apiClient.SubmitOne(ctx, order)
		if err != nil {
			return nil, fmt.Errorf("failed to submit order: %w", err)
		}

		s.logger.Info("order submitted",
			"server_order_id", created.ID,
			"client_cnpj", order.Client.CNPJ)
		return &Result{ServerOrder: created}, nil
	}

	localID, err := s.queue.Enqueue(ctx, order)
	if err != nil {
		return nil, fmt.Errorf("failed to save order locally: %w", err)
	}

	s.logger.Info("order captured offline, pending synchronization",
		"local_id", localID,
		"client_cnpj", order.Client.CNPJ)
	return &Result{Queued: true, LocalID: localID}, nil
}

// ResolveItem builds a line item from the cached catalog, filling in the
// description and unit value for a product code entered during offline
// capture.
func (s *Service) ResolveItem(ctx context.Context, code string, quantity map[string]int) (*models.LineItem, error) {
	product, err := s.catalog.GetProduct(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve product %q: %w", code, err)
	}

	return &models.LineItem{
		Code:        product.Code,
		Description: product.Description,
		UnitValue:   product.UnitValue,
		Quantity:    quantity,
	}, nil
}

// RefreshCatalog replaces the local product cache with the server catalog
// and returns the number of cached products. Requires connectivity.
func (s *Service) RefreshCatalog(ctx context.Context) (int, error) {
	products, err := s.apiClient.ListProducts(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to fetch catalog: %w", err)
	}

	cached := make([]models.Product, 0, len(products))
	for _, p := range products {
		cached = append(cached, models.Product{
			ID:          p.ID,
			Code:        p.Code,
			Description: p.Description,
			UnitValue:   p.UnitValue,
			Sizes:       p.Sizes,
		})
	}

	if err := s.catalog.SaveProducts(ctx, cached); err != nil {
		return 0, fmt.Errorf("failed to cache catalog: %w", err)
	}

	s.logger.Info("catalog cache refreshed", "products", len(cached))
	return len(cached), nil
}
