package capture

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	httpClient "github.com/vendapp/repvendas/internal/client/api"
	"github.com/vendapp/repvendas/internal/client/netmon"
	"github.com/vendapp/repvendas/internal/client/storage"
	"github.com/vendapp/repvendas/internal/models"
	apidto "github.com/vendapp/repvendas/pkg/api"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
}

func draftOrder() *models.QueuedOrder {
	return &models.QueuedOrder{
		Client: models.ClientReference{
			CNPJ:        "11.222.333/0001-44",
			RazaoSocial: "Empresa Exemplo LTDA",
		},
		PaymentMethodID: "pm-30d",
		Items: []models.LineItem{
			{Code: "C-100", Description: "Camiseta", UnitValue: 10.0, Quantity: map[string]int{"M": 5}},
		},
	}
}

// Online: the order goes straight to the server, the queue is untouched.
func TestSubmit_Online(t *testing.T) {
	apiMock := &httpClient.ClientAPIMock{
		SubmitOneFunc: func(ctx context.Context, order *models.QueuedOrder) (*apidto.Order, error) {
			return &apidto.Order{ID: "order-1", Status: "created"}, nil
		},
	}
	queueMock := &storage.OrderQueueMock{}

	svc := NewService(apiMock, queueMock, &storage.CatalogCacheMock{}, netmon.New(true, testLogger()), testLogger())

	result, err := svc.Submit(context.Background(), draftOrder())
	require.NoError(t, err)
	assert.False(t, result.Queued)
	require.NotNil(t, result.ServerOrder)
	assert.Equal(t, "order-1", result.ServerOrder.ID)

	assert.Len(t, apiMock.SubmitOneCalls(), 1)
	assert.Empty(t, queueMock.EnqueueCalls())
}

// Offline: exactly one record lands in the queue, zero submission calls.
func TestSubmit_Offline(t *testing.T) {
	apiMock := &httpClient.ClientAPIMock{}
	queueMock := &storage.OrderQueueMock{
		EnqueueFunc: func(ctx context.Context, order *models.QueuedOrder) (uint64, error) {
			return 7, nil
		},
	}

	svc := NewService(apiMock, queueMock, &storage.CatalogCacheMock{}, netmon.New(false, testLogger()), testLogger())

	result, err := svc.Submit(context.Background(), draftOrder())
	require.NoError(t, err)
	assert.True(t, result.Queued)
	assert.Equal(t, uint64(7), result.LocalID)
	assert.Nil(t, result.ServerOrder)

	assert.Len(t, queueMock.EnqueueCalls(), 1)
	assert.Empty(t, apiMock.SubmitOneCalls())
}

func TestSubmit_AssignsSubmissionKey(t *testing.T) {
	var enqueued *models.QueuedOrder
	queueMock := &storage.OrderQueueMock{
		EnqueueFunc: func(ctx context.Context, order *models.QueuedOrder) (uint64, error) {
			enqueued = order
			return 1, nil
		},
	}

	svc := NewService(&httpClient.ClientAPIMock{}, queueMock, &storage.CatalogCacheMock{}, netmon.New(false, testLogger()), testLogger())

	_, err := svc.Submit(context.Background(), draftOrder())
	require.NoError(t, err)
	require.NotNil(t, enqueued)
	assert.NotEmpty(t, enqueued.SubmissionKey)
}

func TestSubmit_KeepsExistingSubmissionKey(t *testing.T) {
	var enqueued *models.QueuedOrder
	queueMock := &storage.OrderQueueMock{
		EnqueueFunc: func(ctx context.Context, order *models.QueuedOrder) (uint64, error) {
			enqueued = order
			return 1, nil
		},
	}

	svc := NewService(&httpClient.ClientAPIMock{}, queueMock, &storage.CatalogCacheMock{}, netmon.New(false, testLogger()), testLogger())

	order := draftOrder()
	order.SubmissionKey = "existing-key"

	_, err := svc.Submit(context.Background(), order)
	require.NoError(t, err)
	assert.Equal(t, "existing-key", enqueued.SubmissionKey)
}

// A storage failure must reach the caller so the user knows the order was
// not saved.
func TestSubmit_Offline_StorageFailure(t *testing.T) {
	queueMock := &storage.OrderQueueMock{
		EnqueueFunc: func(ctx context.Context, order *models.QueuedOrder) (uint64, error) {
			return 0, errors.New("quota exceeded")
		},
	}

	svc := NewService(&httpClient.ClientAPIMock{}, queueMock, &storage.CatalogCacheMock{}, netmon.New(false, testLogger()), testLogger())

	_, err := svc.Submit(context.Background(), draftOrder())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to save order locally")
}

// An online submission failure does not fall back to the queue: the
// branch is decided by connectivity, not by call outcome.
func TestSubmit_Online_FailureDoesNotQueue(t *testing.T) {
	apiMock := &httpClient.ClientAPIMock{
		SubmitOneFunc: func(ctx context.Context, order *models.QueuedOrder) (*apidto.Order, error) {
			return nil, errors.New("connection reset")
		},
	}
	queueMock := &storage.OrderQueueMock{}

	svc := NewService(apiMock, queueMock, &storage.CatalogCacheMock{}, netmon.New(true, testLogger()), testLogger())

	_, err := svc.Submit(context.Background(), draftOrder())
	require.Error(t, err)
	assert.Empty(t, queueMock.EnqueueCalls())
}

func TestSubmit_InvalidOrder(t *testing.T) {
	apiMock := &httpClient.ClientAPIMock{}
	queueMock := &storage.OrderQueueMock{}

	svc := NewService(apiMock, queueMock, &storage.CatalogCacheMock{}, netmon.New(true, testLogger()), testLogger())

	order := draftOrder()
	order.Client.CNPJ = ""

	_, err := svc.Submit(context.Background(), order)
	require.Error(t, err)
	assert.Empty(t, apiMock.SubmitOneCalls())
	assert.Empty(t, queueMock.EnqueueCalls())
}

func TestResolveItem(t *testing.T) {
	catalogMock := &storage.CatalogCacheMock{
		GetProductFunc: func(ctx context.Context, code string) (*models.Product, error) {
			return &models.Product{Code: code, Description: "Camisa polo", UnitValue: 25.5}, nil
		},
	}

	svc := NewService(&httpClient.ClientAPIMock{}, &storage.OrderQueueMock{}, catalogMock, netmon.New(false, testLogger()), testLogger())

	item, err := svc.ResolveItem(context.Background(), "C-200", map[string]int{"G": 2})
	require.NoError(t, err)
	assert.Equal(t, "Camisa polo", item.Description)
	assert.InDelta(t, 25.5, item.UnitValue, 1e-9)
	assert.Equal(t, map[string]int{"G": 2}, item.Quantity)
}

func TestResolveItem_NotCached(t *testing.T) {
	catalogMock := &storage.CatalogCacheMock{
		GetProductFunc: func(ctx context.Context, code string) (*models.Product, error) {
			return nil, storage.ErrProductNotFound
		},
	}

	svc := NewService(&httpClient.ClientAPIMock{}, &storage.OrderQueueMock{}, catalogMock, netmon.New(false, testLogger()), testLogger())

	_, err := svc.ResolveItem(context.Background(), "C-999", nil)
	assert.ErrorIs(t, err, storage.ErrProductNotFound)
}

func TestRefreshCatalog(t *testing.T) {
	apiMock := &httpClient.ClientAPIMock{
		ListProductsFunc: func(ctx context.Context) ([]apidto.Product, error) {
			return []apidto.Product{
				{ID: "p-1", Code: "C-100", Description: "Camiseta", UnitValue: 10.0},
				{ID: "p-2", Code: "C-200", Description: "Camisa polo", UnitValue: 25.5},
			}, nil
		},
	}

	var saved []models.Product
	catalogMock := &storage.CatalogCacheMock{
		SaveProductsFunc: func(ctx context.Context, products []models.Product) error {
			saved = products
			return nil
		},
	}

	svc := NewService(apiMock, &storage.OrderQueueMock{}, catalogMock, netmon.New(true, testLogger()), testLogger())

	count, err := svc.RefreshCatalog(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, count)
	require.Len(t, saved, 2)
	assert.Equal(t, "C-100", saved[0].Code)
}

func TestRefreshCatalog_FetchFailure(t *testing.T) {
	apiMock := &httpClient.ClientAPIMock{
		ListProductsFunc: func(ctx context.Context) ([]apidto.Product, error) {
			return nil, errors.New("connection refused")
		},
	}
	catalogMock := &storage.CatalogCacheMock{}

	svc := NewService(apiMock, &storage.OrderQueueMock{}, catalogMock, netmon.New(true, testLogger()), testLogger())

	_, err := svc.RefreshCatalog(context.Background())
	require.Error(t, err)
	assert.Empty(t, catalogMock.SaveProductsCalls())
}
