package api

import "time"

// OrderItem is one catalog line of an order as the server expects it.
// Quantity maps a size label (e.g. "P", "M", "G") to the ordered amount.
type OrderItem struct {
	Quantity    map[string]int `json:"quantity"`
	Code        string         `json:"code"`
	Description string         `json:"description"`
	UnitValue   float64        `json:"unit_value"`
}

// OrderRequest is the body of POST /orders/ and of each entry in
// POST /orders/sync. Client identity is denormalized: an offline-captured
// order may reference a client that does not exist on the server yet, so
// client_id is optional while the CNPJ and razão social always travel.
type OrderRequest struct {
	ClientID           string      `json:"client_id,omitempty"`
	ClientCNPJ         string      `json:"client_cnpj"`
	ClientRazaoSocial  string      `json:"client_razao_social"`
	ClientNomeFantasia string      `json:"client_nome_fantasia,omitempty"`
	PaymentMethodID    string      `json:"payment_method_id"`
	Observations       string      `json:"observations,omitempty"`
	Items              []OrderItem `json:"items"`
	DiscountPercentage float64     `json:"discount_percentage"`
}

// Order is the server representation of a created order.
type Order struct {
	CreatedAt          time.Time   `json:"created_at"`
	ID                 string      `json:"id"`
	ClientCNPJ         string      `json:"client_cnpj"`
	ClientRazaoSocial  string      `json:"client_razao_social"`
	PaymentMethodID    string      `json:"payment_method_id"`
	Status             string      `json:"status"`
	Items              []OrderItem `json:"items"`
	DiscountPercentage float64     `json:"discount_percentage"`
	TotalValue         float64     `json:"total_value"`
}

// SyncRequest is the body of POST /orders/sync.
type SyncRequest struct {
	Orders []OrderRequest `json:"orders"`
}

// SyncOutcome reports the fate of one order in a sync batch. Index refers
// to the position of the order in the request; a flat synced_count alone
// cannot attribute failures to specific orders.
type SyncOutcome struct {
	OrderID string `json:"order_id,omitempty"`
	Error   string `json:"error,omitempty"`
	Index   int    `json:"index"`
	Synced  bool   `json:"synced"`
}

// SyncResponse is the server's answer to POST /orders/sync. Results may be
// absent on older servers that only report aggregate counts.
type SyncResponse struct {
	Results     []SyncOutcome `json:"results,omitempty"`
	SyncedCount int           `json:"synced_count"`
	FailedCount int           `json:"failed_count"`
}

// Product is one catalog entry, served by GET /catalog/products and cached
// locally for offline order entry.
type Product struct {
	ID          string   `json:"id"`
	Code        string   `json:"code"`
	Description string   `json:"description"`
	Sizes       []string `json:"sizes,omitempty"`
	UnitValue   float64  `json:"unit_value"`
}

// ErrorResponse is the error body returned by the server on 4xx responses.
type ErrorResponse struct {
	Error string `json:"error"`
}
