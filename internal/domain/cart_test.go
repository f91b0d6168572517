package domain

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func kurti() *Product {
	return &Product{ID: "1", Name: "Embroidered Cotton Kurti", Price: 899, Image: "kurti.jpg", VendorName: "Priya's Boutique"}
}

func jhumka() *Product {
	return &Product{ID: "2", Name: "Traditional Jhumka Earrings", Price: 449, Image: "jhumka.jpg", VendorName: "Meera Jewels"}
}

func TestCart_AddMergesQuantities(t *testing.T) {
	cart := NewCart()
	require.NoError(t, cart.Add(kurti(), 1))
	require.NoError(t, cart.Add(kurti(), 2))

	lines := cart.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, int64(3), lines[0].Quantity)
	assert.Equal(t, int64(3), cart.ItemCount())
}

func TestCart_AddRejectsNonPositiveQuantity(t *testing.T) {
	cart := NewCart()
	assert.True(t, errors.Is(cart.Add(kurti(), 0), ErrInvalidQuantity))
	assert.True(t, errors.Is(cart.Add(kurti(), -1), ErrInvalidQuantity))
	assert.True(t, cart.IsEmpty())
}

func TestCart_AddSnapshotsProduct(t *testing.T) {
	cart := NewCart()
	p := kurti()
	require.NoError(t, cart.Add(p, 1))

	// A later catalog price change must not reach the line.
	p.Price = 1299
	p.Name = "renamed"

	line := cart.Lines()[0]
	assert.Equal(t, int64(899), line.Price)
	assert.Equal(t, "Embroidered Cotton Kurti", line.Name)
	assert.Equal(t, "Priya's Boutique", line.VendorName)
}

func TestCart_SetQuantity(t *testing.T) {
	cart := NewCart()
	require.NoError(t, cart.Add(kurti(), 2))

	require.NoError(t, cart.SetQuantity("1", 5))
	assert.Equal(t, int64(5), cart.Lines()[0].Quantity)

	require.NoError(t, cart.SetQuantity("1", 0))
	assert.True(t, cart.IsEmpty())
	assert.Equal(t, int64(0), cart.ItemCount())
}

func TestCart_SetQuantityZeroOnAbsentIDIsNoop(t *testing.T) {
	cart := NewCart()
	require.NoError(t, cart.Add(kurti(), 1))
	require.NoError(t, cart.SetQuantity("missing", 0))
	assert.Equal(t, int64(1), cart.ItemCount())
}

func TestCart_SetQuantityOnAbsentIDFails(t *testing.T) {
	cart := NewCart()
	err := cart.SetQuantity("missing", 2)
	assert.True(t, errors.Is(err, ErrItemNotFound))
	assert.True(t, cart.IsEmpty())
}

func TestCart_SetQuantityRejectsNegative(t *testing.T) {
	cart := NewCart()
	require.NoError(t, cart.Add(kurti(), 2))
	err := cart.SetQuantity("1", -3)
	assert.True(t, errors.Is(err, ErrInvalidQuantity))
	assert.Equal(t, int64(2), cart.ItemCount())
}

func TestCart_RemoveDropsLine(t *testing.T) {
	cart := NewCart()
	require.NoError(t, cart.Add(kurti(), 1))
	require.NoError(t, cart.Add(jhumka(), 2))

	cart.Remove("1")
	lines := cart.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, "2", lines[0].ProductID)
	assert.Equal(t, int64(2), cart.ItemCount())
}

func TestCart_ClearIsIdempotent(t *testing.T) {
	cart := NewCart()
	require.NoError(t, cart.Add(kurti(), 3))

	cart.Clear()
	assert.True(t, cart.IsEmpty())
	cart.Clear()
	assert.True(t, cart.IsEmpty())
}

func TestCart_LinesKeepInsertionOrder(t *testing.T) {
	cart := NewCart()
	require.NoError(t, cart.Add(kurti(), 1))
	require.NoError(t, cart.Add(jhumka(), 1))

	// A quantity change must not reshuffle the lines.
	require.NoError(t, cart.SetQuantity("1", 4))
	lines := cart.Lines()
	require.Len(t, lines, 2)
	assert.Equal(t, "1", lines[0].ProductID)
	assert.Equal(t, "2", lines[1].ProductID)

	// Removal and re-add moves the product to the end.
	cart.Remove("1")
	require.NoError(t, cart.Add(kurti(), 1))
	lines = cart.Lines()
	assert.Equal(t, "2", lines[0].ProductID)
	assert.Equal(t, "1", lines[1].ProductID)
}

func TestCart_LinesReturnsCopy(t *testing.T) {
	cart := NewCart()
	require.NoError(t, cart.Add(kurti(), 1))

	lines := cart.Lines()
	lines[0].Quantity = 99
	assert.Equal(t, int64(1), cart.Lines()[0].Quantity)
}
