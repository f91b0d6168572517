package application

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/pkg/errors"

	"github.com/hawkerbazaar/storefront/internal/domain"
	"github.com/hawkerbazaar/storefront/internal/ports"
)

const productsCacheKey = "products"

// CatalogService fronts the read-only catalog with a cache-aside
// listing. The catalog is never written through this service.
type CatalogService struct {
	catalog ports.CatalogPort
	cache   ports.CachePort
	logger  *slog.Logger
}

func NewCatalogService(catalog ports.CatalogPort, cache ports.CachePort, logger *slog.Logger) *CatalogService {
	return &CatalogService{catalog: catalog, cache: cache, logger: logger}
}

func listingCacheKey(filter domain.ProductFilter) string {
	return fmt.Sprintf("%s:%s:%s:%s", productsCacheKey, filter.Category, filter.Market, filter.PriceRange)
}

func (s *CatalogService) ListProducts(ctx context.Context, filter domain.ProductFilter) ([]*domain.Product, error) {
	key := listingCacheKey(filter)
	if data, err := s.cache.Get(ctx, key); err == nil {
		var products []*domain.Product
		if err := json.Unmarshal(data, &products); err == nil {
			return products, nil
		}
	}
	products, err := s.catalog.ListProducts(ctx, filter)
	if err != nil {
		return nil, errors.Wrap(err, "list products")
	}
	if err := s.cache.Set(ctx, key, products); err != nil {
		s.logger.Warn("failed to cache product listing", slog.Any("error", err))
	}
	return products, nil
}

func (s *CatalogService) GetProduct(ctx context.Context, id string) (*domain.Product, error) {
	return s.catalog.GetProduct(ctx, id)
}
