package domain

// Closed sets the catalog seed is built from. "All" is the UI's
// no-filter sentinel and leads both lists.
var (
	Categories = []string{"All", "Clothing", "Jewelry", "Accessories", "Home Decor", "Footwear", "Bags"}
	Markets    = []string{"Hill Road, Bandra", "Colaba Causeway", "Linking Road, Bandra", "Fashion Street"}
)

const FilterAll = "All"

type PriceRange string

const (
	PriceRangeAll  PriceRange = "All"
	PriceUnder500  PriceRange = "under500"
	Price500To1000 PriceRange = "500-1000"
	PriceOver1000  PriceRange = "over1000"
)

// ProductFilter narrows a catalog listing. Zero-value or "All" fields
// leave that dimension unfiltered.
type ProductFilter struct {
	Category   string
	Market     string
	PriceRange PriceRange
}

// Matches reports whether p passes every active dimension. The 500 and
// 1000 price boundaries belong to the middle bucket only: a product at
// exactly 500 or 1000 matches "500-1000" and neither edge bucket. This
// is a user-visible filter contract and must not drift.
func (f ProductFilter) Matches(p *Product) bool {
	if f.Category != "" && f.Category != FilterAll && p.Category != f.Category {
		return false
	}
	if f.Market != "" && f.Market != FilterAll && p.Market != f.Market {
		return false
	}
	switch f.PriceRange {
	case PriceUnder500:
		return p.Price < 500
	case Price500To1000:
		return p.Price >= 500 && p.Price <= 1000
	case PriceOver1000:
		return p.Price > 1000
	}
	return true
}
