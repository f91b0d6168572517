package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuoteCart(t *testing.T) {
	cfg := DefaultPricing()

	tests := []struct {
		name          string
		lines         []CartItem
		wantSubtotal  int64
		wantShipping  int64
		wantTotal     int64
		wantRemaining int64
	}{
		{
			name:          "below threshold pays flat fee",
			lines:         []CartItem{{ProductID: "1", Price: 899, Quantity: 1}},
			wantSubtotal:  899,
			wantShipping:  50,
			wantTotal:     949,
			wantRemaining: 101,
		},
		{
			name:          "exactly at threshold still pays fee",
			lines:         []CartItem{{ProductID: "1", Price: 500, Quantity: 2}},
			wantSubtotal:  1000,
			wantShipping:  50,
			wantTotal:     1050,
			wantRemaining: 0,
		},
		{
			name:          "one rupee over threshold ships free",
			lines:         []CartItem{{ProductID: "1", Price: 1001, Quantity: 1}},
			wantSubtotal:  1001,
			wantShipping:  0,
			wantTotal:     1001,
			wantRemaining: 0,
		},
		{
			name: "multiple lines sum per quantity",
			lines: []CartItem{
				{ProductID: "1", Price: 449, Quantity: 1},
				{ProductID: "2", Price: 599, Quantity: 1},
			},
			wantSubtotal:  1048,
			wantShipping:  0,
			wantTotal:     1048,
			wantRemaining: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := QuoteCart(tt.lines, cfg)
			assert.Equal(t, tt.wantSubtotal, q.Subtotal)
			assert.Equal(t, tt.wantShipping, q.ShippingFee)
			assert.Equal(t, tt.wantTotal, q.Total)
			assert.Equal(t, tt.wantRemaining, q.RemainingForFreeShipping)
		})
	}
}

// Mirrors the shopper flow: one kurti at 899 pays shipping, two more of
// the same product push the subtotal past the threshold and shipping
// goes free.
func TestQuoteCart_GrowingCartCrossesThreshold(t *testing.T) {
	cfg := DefaultPricing()
	cart := NewCart()
	p := &Product{ID: "A", Name: "Kurti", Price: 899}

	require.NoError(t, cart.Add(p, 1))
	q := QuoteCart(cart.Lines(), cfg)
	assert.Equal(t, int64(899), q.Subtotal)
	assert.Equal(t, int64(50), q.ShippingFee)
	assert.Equal(t, int64(949), q.Total)

	require.NoError(t, cart.Add(p, 2))
	require.Equal(t, int64(3), cart.ItemCount())
	q = QuoteCart(cart.Lines(), cfg)
	assert.Equal(t, int64(2697), q.Subtotal)
	assert.Equal(t, int64(0), q.ShippingFee)
	assert.Equal(t, int64(2697), q.Total)
	assert.Equal(t, int64(0), q.RemainingForFreeShipping)
}

func TestQuoteCart_CustomThreshold(t *testing.T) {
	cfg := PricingConfig{FreeShippingThreshold: 500, ShippingFee: 20}
	q := QuoteCart([]CartItem{{Price: 300, Quantity: 1}}, cfg)
	assert.Equal(t, int64(320), q.Total)
	assert.Equal(t, int64(200), q.RemainingForFreeShipping)
}
