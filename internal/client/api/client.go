package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/vendapp/repvendas/internal/models"
	"github.com/vendapp/repvendas/pkg/api"
)

//go:generate moq -out client_mock.go . ClientAPI

// ClientAPI defines the remote order API surface consumed by the client.
type ClientAPI interface {
	// SubmitOne submits a single order and returns the created server
	// order. Fails with *RejectionError when the server refused the
	// order; any other error is transient.
	SubmitOne(ctx context.Context, order *models.QueuedOrder) (*api.Order, error)

	// SubmitBatch submits queued orders through the bulk sync endpoint.
	// Returns ErrBatchUnsupported when the server does not expose it.
	SubmitBatch(ctx context.Context, orders []*models.QueuedOrder) (*api.SyncResponse, error)

	// ListOrders returns previously synced orders, for display.
	ListOrders(ctx context.Context) ([]api.Order, error)

	// ListProducts returns the product catalog, used to refresh the
	// local cache.
	ListProducts(ctx context.Context) ([]api.Product, error)

	// Reachable reports whether the server answered anything at all.
	// Used to seed the connectivity state at startup.
	Reachable(ctx context.Context) bool
}

// Client is the HTTP client for the remote order API.
type Client struct {
	httpClient *http.Client
	baseURL    string
}

var _ ClientAPI = (*Client)(nil)

// NewClient creates a new API client. timeout bounds every request; a
// timed-out request surfaces as a transient failure.
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				if len(via) >= 10 {
					return fmt.Errorf("stopped after 10 redirects")
				}
				return nil
			},
		},
	}
}

// SubmitOne submits a single order via POST /orders/. The queued order's
// submission key travels as an Idempotency-Key header, so resubmitting the
// same queued order after an interrupted run cannot create a duplicate.
func (c *Client) SubmitOne(ctx context.Context, order *models.QueuedOrder) (*api.Order, error) {
	headers := http.Header{}
	if order.SubmissionKey != "" {
		headers.Set("Idempotency-Key", order.SubmissionKey)
	}

	var resp api.Order
	if err := c.doRequest(ctx, http.MethodPost, "/orders/", headers, orderPayload(order), &resp); err != nil {
		return nil, fmt.Errorf("submit order request failed: %w", err)
	}
	return &resp, nil
}

// SubmitBatch submits queued orders via POST /orders/sync.
func (c *Client) SubmitBatch(ctx context.Context, orders []*models.QueuedOrder) (*api.SyncResponse, error) {
	req := api.SyncRequest{Orders: make([]api.OrderRequest, 0, len(orders))}
	for _, order := range orders {
		req.Orders = append(req.Orders, orderPayload(order))
	}

	var resp api.SyncResponse
	err := c.doRequest(ctx, http.MethodPost, "/orders/sync", nil, req, &resp)
	if err != nil {
		var rejection *RejectionError
		if errors.As(err, &rejection) && (rejection.Status == http.StatusNotFound || rejection.Status == http.StatusMethodNotAllowed) {
			return nil, ErrBatchUnsupported
		}
		return nil, fmt.Errorf("sync request failed: %w", err)
	}
	return &resp, nil
}

// ListOrders returns previously synced orders via GET /orders/.
func (c *Client) ListOrders(ctx context.Context) ([]api.Order, error) {
	var resp []api.Order
	if err := c.doRequest(ctx, http.MethodGet, "/orders/", nil, nil, &resp); err != nil {
		return nil, fmt.Errorf("list orders request failed: %w", err)
	}
	return resp, nil
}

// ListProducts returns the catalog via GET /catalog/products.
func (c *Client) ListProducts(ctx context.Context) ([]api.Product, error) {
	var resp []api.Product
	if err := c.doRequest(ctx, http.MethodGet, "/catalog/products", nil, nil, &resp); err != nil {
		return nil, fmt.Errorf("list products request failed: %w", err)
	}
	return resp, nil
}

// Reachable reports whether the server answered the request at all. Any
// HTTP status counts as reachable; only transport-level failures do not.
func (c *Client) Reachable(ctx context.Context) bool {
	req, err := http.NewRequestWithContext(ctx, http.MethodHead, c.baseURL+"/orders/", nil)
	if err != nil {
		return false
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return false
	}
	_ = resp.Body.Close()
	return true
}

// orderPayload translates a queued order into the wire shape the server
// expects.
func orderPayload(order *models.QueuedOrder) api.OrderRequest {
	items := make([]api.OrderItem, 0, len(order.Items))
	for _, item := range order.Items {
		items = append(items, api.OrderItem{
			Code:        item.Code,
			Description: item.Description,
			UnitValue:   item.UnitValue,
			Quantity:    item.Quantity,
		})
	}

	return api.OrderRequest{
		ClientCNPJ:         order.Client.CNPJ,
		ClientRazaoSocial:  order.Client.RazaoSocial,
		ClientNomeFantasia: order.Client.NomeFantasia,
		PaymentMethodID:    order.PaymentMethodID,
		DiscountPercentage: order.DiscountPercentage,
		Observations:       order.Observations,
		Items:              items,
	}
}

// doRequest performs an HTTP request and decodes the response.
func (c *Client) doRequest(ctx context.Context, method, path string, headers http.Header, body, result interface{}) error {
	url := c.baseURL + path

	var bodyReader io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		bodyReader = bytes.NewReader(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, bodyReader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	for key, values := range headers {
		for _, value := range values {
			req.Header.Add(key, value)
		}
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	// 4xx means the server understood and refused: a rejection, not a
	// retryable failure. 5xx stays transient.
	if resp.StatusCode >= 400 && resp.StatusCode < 500 {
		detail := ""
		var errResp api.ErrorResponse
		if err := json.Unmarshal(respBody, &errResp); err == nil {
			detail = errResp.Error
		}
		return &RejectionError{Status: resp.StatusCode, Detail: detail}
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("request failed with status %d: %s", resp.StatusCode, string(respBody))
	}

	if result != nil {
		if err := json.Unmarshal(respBody, result); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}

	return nil
}
