package application

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"

	"github.com/hawkerbazaar/storefront/internal/domain"
	"github.com/hawkerbazaar/storefront/internal/ports"
)

func TestCatalogService_ListProducts(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockCatalog := ports.NewMockCatalogPort(ctrl)
	cache := quietCache()
	svc := NewCatalogService(mockCatalog, cache, testLogger())

	filter := domain.ProductFilter{Category: "Jewelry"}
	products := []*domain.Product{{ID: "2", Name: "Traditional Jhumka Earrings", Price: 449, Category: "Jewelry"}}
	cacheBytes, _ := json.Marshal(products)

	tests := []struct {
		name      string
		mockSetup func()
		wantErr   bool
	}{
		{
			name: "cache hit skips the catalog",
			mockSetup: func() {
				cache.get = func(ctx context.Context, key string) ([]byte, error) { return cacheBytes, nil }
			},
		},
		{
			name: "cache miss queries and fills the cache",
			mockSetup: func() {
				cache.get = func(ctx context.Context, key string) ([]byte, error) { return nil, errors.New("cache miss") }
				mockCatalog.EXPECT().ListProducts(gomock.Any(), filter).Return(products, nil)
			},
		},
		{
			name: "catalog error",
			mockSetup: func() {
				cache.get = func(ctx context.Context, key string) ([]byte, error) { return nil, errors.New("cache miss") }
				mockCatalog.EXPECT().ListProducts(gomock.Any(), filter).Return(nil, errors.New("catalog down"))
			},
			wantErr: true,
		},
		{
			name: "corrupt cache entry falls back to the catalog",
			mockSetup: func() {
				cache.get = func(ctx context.Context, key string) ([]byte, error) { return []byte("{not json"), nil }
				mockCatalog.EXPECT().ListProducts(gomock.Any(), filter).Return(products, nil)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := svc.ListProducts(context.Background(), filter)
			if tt.wantErr {
				if err == nil {
					t.Error("ListProducts() expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("ListProducts() unexpected error: %v", err)
			}
			if len(result) != 1 || result[0].ID != "2" {
				t.Errorf("ListProducts() = %v, want %v", result, products)
			}
		})
	}
}

func TestCatalogService_DistinctFiltersGetDistinctCacheKeys(t *testing.T) {
	a := listingCacheKey(domain.ProductFilter{Category: "Jewelry"})
	b := listingCacheKey(domain.ProductFilter{Market: "Jewelry"})
	if a == b {
		t.Errorf("category and market filters share cache key %q", a)
	}
}

func TestCatalogService_GetProduct(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockCatalog := ports.NewMockCatalogPort(ctrl)
	svc := NewCatalogService(mockCatalog, quietCache(), testLogger())

	mockCatalog.EXPECT().GetProduct(gomock.Any(), "1").Return(&domain.Product{ID: "1", Name: "Embroidered Cotton Kurti"}, nil)
	p, err := svc.GetProduct(context.Background(), "1")
	if err != nil || p.ID != "1" {
		t.Errorf("GetProduct() = %v, %v", p, err)
	}

	mockCatalog.EXPECT().GetProduct(gomock.Any(), "999").Return(nil, domain.ErrNotFound)
	_, err = svc.GetProduct(context.Background(), "999")
	if !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("GetProduct() error = %v, want ErrNotFound", err)
	}
}
