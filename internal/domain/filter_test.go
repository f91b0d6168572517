package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProductFilter_Matches(t *testing.T) {
	p := &Product{ID: "1", Category: "Jewelry", Market: "Colaba Causeway", Price: 449}

	tests := []struct {
		name   string
		filter ProductFilter
		want   bool
	}{
		{"zero filter matches all", ProductFilter{}, true},
		{"All sentinels match all", ProductFilter{Category: FilterAll, Market: FilterAll, PriceRange: PriceRangeAll}, true},
		{"category exact match", ProductFilter{Category: "Jewelry"}, true},
		{"category mismatch", ProductFilter{Category: "Clothing"}, false},
		{"market exact match", ProductFilter{Market: "Colaba Causeway"}, true},
		{"market mismatch", ProductFilter{Market: "Fashion Street"}, false},
		{"price bucket match", ProductFilter{PriceRange: PriceUnder500}, true},
		{"price bucket mismatch", ProductFilter{PriceRange: PriceOver1000}, false},
		{"combined all match", ProductFilter{Category: "Jewelry", Market: "Colaba Causeway", PriceRange: PriceUnder500}, true},
		{"combined one mismatch", ProductFilter{Category: "Jewelry", Market: "Colaba Causeway", PriceRange: Price500To1000}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.filter.Matches(p))
		})
	}
}

// The 500 and 1000 boundaries belong to the middle bucket only; this is
// the filter contract shoppers see.
func TestProductFilter_PriceBoundaries(t *testing.T) {
	at500 := &Product{Price: 500}
	at1000 := &Product{Price: 1000}

	assert.False(t, ProductFilter{PriceRange: PriceUnder500}.Matches(at500))
	assert.True(t, ProductFilter{PriceRange: Price500To1000}.Matches(at500))
	assert.False(t, ProductFilter{PriceRange: PriceOver1000}.Matches(at500))

	assert.False(t, ProductFilter{PriceRange: PriceUnder500}.Matches(at1000))
	assert.True(t, ProductFilter{PriceRange: Price500To1000}.Matches(at1000))
	assert.False(t, ProductFilter{PriceRange: PriceOver1000}.Matches(at1000))

	assert.True(t, ProductFilter{PriceRange: PriceUnder500}.Matches(&Product{Price: 499}))
	assert.True(t, ProductFilter{PriceRange: PriceOver1000}.Matches(&Product{Price: 1001}))
}
