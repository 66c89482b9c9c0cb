package models

import "time"

// ClientReference identifies the buying client on an order. It is
// denormalized on purpose: an order captured in the field may reference a
// client that has not been registered on the server yet.
type ClientReference struct {
	CNPJ         string `json:"cnpj"`
	RazaoSocial  string `json:"razao_social"`
	NomeFantasia string `json:"nome_fantasia,omitempty"`
}

// LineItem is one product line of an order. Quantity maps a size label to
// the ordered amount for that size.
type LineItem struct {
	Quantity    map[string]int `json:"quantity"`
	Code        string         `json:"code"`
	Description string         `json:"description"`
	UnitValue   float64        `json:"unit_value"`
}

// TotalUnits returns the summed quantity across all sizes.
func (li LineItem) TotalUnits() int {
	total := 0
	for _, qty := range li.Quantity {
		total += qty
	}
	return total
}

// QueuedOrder is an order captured while offline, waiting for submission.
// LocalID is assigned by the local store and never reused. SubmissionKey is
// a stable idempotency key generated at capture time, so resubmitting the
// same queued order cannot create a second order on the server.
//
// A queued order is never mutated in place: it stays in the queue unchanged
// until the server acknowledges it (then it is removed) or the user deletes
// it explicitly.
type QueuedOrder struct {
	CapturedAt         time.Time       `json:"captured_at"`
	SubmissionKey      string          `json:"submission_key"`
	PaymentMethodID    string          `json:"payment_method_id"`
	Observations       string          `json:"observations,omitempty"`
	Client             ClientReference `json:"client"`
	Items              []LineItem      `json:"items"`
	LocalID            uint64          `json:"local_id"`
	DiscountPercentage float64         `json:"discount_percentage"`
}

// TotalValue returns the order value after discount.
func (o *QueuedOrder) TotalValue() float64 {
	gross := 0.0
	for _, item := range o.Items {
		gross += item.UnitValue * float64(item.TotalUnits())
	}
	return gross * (1 - o.DiscountPercentage/100)
}

// Product is one catalog entry cached locally so that orders can be
// assembled while offline.
type Product struct {
	ID          string   `json:"id"`
	Code        string   `json:"code"`
	Description string   `json:"description"`
	Sizes       []string `json:"sizes,omitempty"`
	UnitValue   float64  `json:"unit_value"`
}
