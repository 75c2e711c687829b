package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleProduct(id int64, price float64) Product {
	return Product{
		ID:    id,
		Name:  "Oyster Mushroom Kit",
		Price: price,
		Image: "/media/oyster.jpg",
	}
}

func TestCart_AddItem_MergesSameProduct(t *testing.T) {
	cart := &Cart{}

	require.True(t, cart.AddItem(sampleProduct(1, 249.0), 2))
	require.True(t, cart.AddItem(sampleProduct(1, 249.0), 3))

	require.Len(t, cart.Items, 1)
	assert.Equal(t, 5, cart.Items[0].Quantity)
	assert.Equal(t, int64(1), cart.Items[0].ProductID)
	assert.NotEmpty(t, cart.Items[0].ID)
}

func TestCart_AddItem_DistinctProductsGetDistinctLines(t *testing.T) {
	cart := &Cart{}

	cart.AddItem(sampleProduct(1, 249.0), 1)
	cart.AddItem(sampleProduct(2, 399.0), 1)

	require.Len(t, cart.Items, 2)
	assert.NotEqual(t, cart.Items[0].ID, cart.Items[1].ID)
}

func TestCart_AddItem_RejectsQuantityBelowOne(t *testing.T) {
	cart := &Cart{}

	assert.False(t, cart.AddItem(sampleProduct(1, 249.0), 0))
	assert.False(t, cart.AddItem(sampleProduct(1, 249.0), -3))
	assert.Empty(t, cart.Items)
}

func TestCart_UpdateQuantity_BelowOneIsNoOp(t *testing.T) {
	cart := &Cart{}
	cart.AddItem(sampleProduct(1, 249.0), 2)
	itemID := cart.Items[0].ID

	assert.False(t, cart.UpdateQuantity(itemID, 0))
	assert.Equal(t, 2, cart.Items[0].Quantity)

	assert.True(t, cart.UpdateQuantity(itemID, 7))
	assert.Equal(t, 7, cart.Items[0].Quantity)
}

func TestCart_UpdateQuantity_MissingLine(t *testing.T) {
	cart := &Cart{}
	cart.AddItem(sampleProduct(1, 249.0), 2)

	assert.False(t, cart.UpdateQuantity("nope", 3))
}

func TestCart_RemoveItem(t *testing.T) {
	cart := &Cart{}
	cart.AddItem(sampleProduct(1, 249.0), 1)
	cart.AddItem(sampleProduct(2, 399.0), 1)
	itemID := cart.Items[0].ID

	assert.True(t, cart.RemoveItem(itemID))
	require.Len(t, cart.Items, 1)
	assert.Equal(t, int64(2), cart.Items[0].ProductID)

	assert.False(t, cart.RemoveItem(itemID))
}

func TestCart_Totals(t *testing.T) {
	cart := &Cart{}
	cart.AddItem(sampleProduct(1, 249.50), 2)
	cart.AddItem(sampleProduct(2, 99.99), 3)

	totals := cart.Totals()
	assert.Equal(t, 5, totals.ItemCount)
	// 2*249.50 + 3*99.99 = 798.97, no separate tax line
	assert.InDelta(t, 798.97, totals.TotalPrice, 0.001)
}

func TestCart_Totals_EmptyAndNil(t *testing.T) {
	var nilCart *Cart
	assert.Equal(t, CartTotals{}, nilCart.Totals())
	assert.True(t, nilCart.IsEmpty())

	empty := &Cart{}
	assert.Equal(t, CartTotals{}, empty.Totals())
	assert.True(t, empty.IsEmpty())
}

func TestCart_Clone_IsIndependent(t *testing.T) {
	cart := &Cart{}
	cart.AddItem(sampleProduct(1, 249.0), 2)

	clone := cart.Clone()
	clone.Items[0].Quantity = 99

	assert.Equal(t, 2, cart.Items[0].Quantity)
}

func TestCartItem_LineTotal_Rounds(t *testing.T) {
	item := &CartItem{Price: 0.1, Quantity: 3}
	assert.InDelta(t, 0.3, item.LineTotal(), 0.0001)
}
