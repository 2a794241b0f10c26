package services

import (
	"teentops_server/lib"
	"teentops_server/structs"
	"teentops_server/structs/tables"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func activeVariant(id uuid.UUID, basePrice uint64, modifier int64, stock int) *tables.ProductVariant {
	return &tables.ProductVariant{
		ID:            id,
		ProductID:     uuid.New(),
		SKU:           "TT-" + id.String()[:8],
		PriceModifier: modifier,
		StockQuantity: stock,
		IsActive:      true,
		Product: &tables.Product{
			BasePrice: basePrice,
			IsActive:  true,
		},
	}
}

func TestMergeItemRequests(t *testing.T) {
	a := uuid.New()
	b := uuid.New()

	merged := mergeItemRequests([]structs.OrderItemRequest{
		{VariantID: a, Quantity: 1},
		{VariantID: b, Quantity: 2},
		{VariantID: a, Quantity: 3},
	})

	require.Len(t, merged, 2)
	assert.Equal(t, a, merged[0].VariantID)
	assert.Equal(t, 4, merged[0].Quantity)
	assert.Equal(t, b, merged[1].VariantID)
	assert.Equal(t, 2, merged[1].Quantity)
}

func TestMergeItemRequestsNoDuplicates(t *testing.T) {
	a := uuid.New()
	b := uuid.New()

	items := []structs.OrderItemRequest{
		{VariantID: a, Quantity: 1},
		{VariantID: b, Quantity: 1},
	}

	merged := mergeItemRequests(items)
	assert.Equal(t, items, merged)
}

func TestAssembleOrderItems(t *testing.T) {
	orderID := uuid.New()
	a := uuid.New()
	b := uuid.New()

	variants := map[uuid.UUID]*tables.ProductVariant{
		a: activeVariant(a, 2500, 300, 10), // effective 2800
		b: activeVariant(b, 1800, -200, 5), // effective 1600
	}

	items, total, err := assembleOrderItems(orderID, []structs.OrderItemRequest{
		{VariantID: a, Quantity: 2},
		{VariantID: b, Quantity: 1},
	}, variants)

	require.NoError(t, err)
	require.Len(t, items, 2)

	assert.Equal(t, orderID, items[0].OrderID)
	assert.Equal(t, a, items[0].VariantID)
	assert.Equal(t, uint64(2800), items[0].Price)
	assert.Equal(t, 2, items[0].Quantity)

	assert.Equal(t, uint64(1600), items[1].Price)

	assert.Equal(t, uint64(2*2800+1600), total)
}

func TestAssembleOrderItemsUnknownVariant(t *testing.T) {
	missing := uuid.New()

	_, _, err := assembleOrderItems(uuid.New(), []structs.OrderItemRequest{
		{VariantID: missing, Quantity: 1},
	}, map[uuid.UUID]*tables.ProductVariant{})

	var notFound *lib.VariantNotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, missing, notFound.VariantID)
}

func TestAssembleOrderItemsInactiveVariant(t *testing.T) {
	id := uuid.New()
	variant := activeVariant(id, 2000, 0, 10)
	variant.IsActive = false

	_, _, err := assembleOrderItems(uuid.New(), []structs.OrderItemRequest{
		{VariantID: id, Quantity: 1},
	}, map[uuid.UUID]*tables.ProductVariant{id: variant})

	var notFound *lib.VariantNotFoundError
	assert.ErrorAs(t, err, &notFound)
}

func TestAssembleOrderItemsInactiveProduct(t *testing.T) {
	id := uuid.New()
	variant := activeVariant(id, 2000, 0, 10)
	variant.Product.IsActive = false

	_, _, err := assembleOrderItems(uuid.New(), []structs.OrderItemRequest{
		{VariantID: id, Quantity: 1},
	}, map[uuid.UUID]*tables.ProductVariant{id: variant})

	var notFound *lib.VariantNotFoundError
	assert.ErrorAs(t, err, &notFound)
}

func TestAssembleOrderItemsInsufficientStock(t *testing.T) {
	id := uuid.New()
	variant := activeVariant(id, 2000, 0, 2)

	_, _, err := assembleOrderItems(uuid.New(), []structs.OrderItemRequest{
		{VariantID: id, Quantity: 3},
	}, map[uuid.UUID]*tables.ProductVariant{id: variant})

	var stockErr *lib.InsufficientStockError
	require.ErrorAs(t, err, &stockErr)
	assert.Equal(t, id, stockErr.VariantID)
	assert.Equal(t, 3, stockErr.Requested)
	assert.Equal(t, 2, stockErr.Available)
}

func TestAssembleOrderItemsPriceFlooredAtZero(t *testing.T) {
	id := uuid.New()
	variant := activeVariant(id, 500, -900, 1)

	items, total, err := assembleOrderItems(uuid.New(), []structs.OrderItemRequest{
		{VariantID: id, Quantity: 1},
	}, map[uuid.UUID]*tables.ProductVariant{id: variant})

	require.NoError(t, err)
	assert.Equal(t, uint64(0), items[0].Price)
	assert.Equal(t, uint64(0), total)
}
