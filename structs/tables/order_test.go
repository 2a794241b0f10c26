package tables

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOrderStatusIsValid(t *testing.T) {
	for _, status := range []OrderStatus{
		OrderStatusPending,
		OrderStatusConfirmed,
		OrderStatusProcessing,
		OrderStatusShipped,
		OrderStatusDelivered,
		OrderStatusCancelled,
	} {
		assert.True(t, status.IsValid(), "status %q should be valid", status)
	}

	assert.False(t, OrderStatus("returned").IsValid())
	assert.False(t, OrderStatus("").IsValid())
}

func TestOrderStatusTransitions(t *testing.T) {
	tests := []struct {
		from    OrderStatus
		to      OrderStatus
		allowed bool
	}{
		{OrderStatusPending, OrderStatusConfirmed, true},
		{OrderStatusPending, OrderStatusCancelled, true},
		{OrderStatusPending, OrderStatusShipped, false},
		{OrderStatusConfirmed, OrderStatusProcessing, true},
		{OrderStatusConfirmed, OrderStatusCancelled, true},
		{OrderStatusConfirmed, OrderStatusPending, false},
		{OrderStatusProcessing, OrderStatusShipped, true},
		{OrderStatusProcessing, OrderStatusCancelled, false},
		{OrderStatusShipped, OrderStatusDelivered, true},
		{OrderStatusShipped, OrderStatusCancelled, false},
		{OrderStatusDelivered, OrderStatusShipped, false},
		{OrderStatusCancelled, OrderStatusPending, false},
		{OrderStatusDelivered, OrderStatusDelivered, false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.allowed, tt.from.CanTransitionTo(tt.to),
			"transition %s to %s", tt.from, tt.to)
	}
}

func TestOrderItemTotalPrice(t *testing.T) {
	item := &OrderItem{Price: 2750, Quantity: 3}
	assert.Equal(t, uint64(8250), item.TotalPrice())
}

func TestOrderTotalItems(t *testing.T) {
	order := &Order{
		Items: []OrderItem{
			{Quantity: 2},
			{Quantity: 1},
			{Quantity: 4},
		},
	}
	assert.Equal(t, 7, order.TotalItems())

	assert.Equal(t, 0, (&Order{}).TotalItems())
}

func TestOrderFullAddress(t *testing.T) {
	order := &Order{
		AddressLine1: "12 Mall Road",
		City:         "Lahore",
		State:        "Punjab",
		PostalCode:   "54000",
		Country:      "Pakistan",
	}
	assert.Equal(t, "12 Mall Road, Lahore, Punjab, 54000, Pakistan", order.FullAddress())

	order.AddressLine2 = "Flat 4B"
	assert.Equal(t, "12 Mall Road, Flat 4B, Lahore, Punjab, 54000, Pakistan", order.FullAddress())
}
