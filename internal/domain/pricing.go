package domain

// PricingConfig are the platform-wide shipping constants, in the same
// whole-rupee unit as product prices.
type PricingConfig struct {
	FreeShippingThreshold int64
	ShippingFee           int64
}

func DefaultPricing() PricingConfig {
	return PricingConfig{FreeShippingThreshold: 1000, ShippingFee: 50}
}

// Quote is the summary derived from a cart. It is recomputed from the
// lines on every call and never stored, so it cannot desync from the
// cart it describes.
type Quote struct {
	Subtotal                 int64 `json:"subtotal"`
	ShippingFee              int64 `json:"shipping_fee"`
	Total                    int64 `json:"total"`
	RemainingForFreeShipping int64 `json:"remaining_for_free_shipping"`
}

// QuoteCart prices a set of cart lines. Shipping is waived only when the
// subtotal strictly exceeds the threshold; a subtotal exactly at the
// threshold still pays the flat fee, though nothing further is owed
// toward free shipping at that point.
func QuoteCart(lines []CartItem, cfg PricingConfig) Quote {
	var subtotal int64
	for _, line := range lines {
		subtotal += line.Price * line.Quantity
	}
	q := Quote{Subtotal: subtotal, Total: subtotal}
	if subtotal <= cfg.FreeShippingThreshold {
		q.ShippingFee = cfg.ShippingFee
		q.Total += cfg.ShippingFee
	}
	if remaining := cfg.FreeShippingThreshold - subtotal; remaining > 0 {
		q.RemainingForFreeShipping = remaining
	}
	return q
}
