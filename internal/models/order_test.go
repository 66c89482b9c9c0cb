package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLineItem_TotalUnits(t *testing.T) {
	tests := []struct {
		quantity map[string]int
		name     string
		want     int
	}{
		{
			name:     "single size",
			quantity: map[string]int{"M": 5},
			want:     5,
		},
		{
			name:     "multiple sizes",
			quantity: map[string]int{"P": 2, "M": 5, "G": 3},
			want:     10,
		},
		{
			name:     "empty",
			quantity: map[string]int{},
			want:     0,
		},
		{
			name:     "nil",
			quantity: nil,
			want:     0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			item := LineItem{Code: "C-1", Quantity: tt.quantity}
			assert.Equal(t, tt.want, item.TotalUnits())
		})
	}
}

func TestQueuedOrder_TotalValue(t *testing.T) {
	order := &QueuedOrder{
		Items: []LineItem{
			{Code: "C-1", UnitValue: 10.0, Quantity: map[string]int{"M": 5}},
			{Code: "C-2", UnitValue: 20.0, Quantity: map[string]int{"P": 1, "G": 1}},
		},
	}

	// 5*10 + 2*20 = 90, no discount
	assert.InDelta(t, 90.0, order.TotalValue(), 1e-9)

	order.DiscountPercentage = 10
	assert.InDelta(t, 81.0, order.TotalValue(), 1e-9)
}

func TestQueuedOrder_TotalValue_Empty(t *testing.T) {
	order := &QueuedOrder{}
	assert.Zero(t, order.TotalValue())
}
