// internal/ports/ports.go
package ports

import (
	"context"

	"github.com/hawkerbazaar/storefront/internal/domain"
)

//go:generate mockgen -source=ports.go -destination=mock_ports.go -package=ports

// CatalogPort is the read-only product catalog the storefront queries.
// The core never mutates it.
type CatalogPort interface {
	ListProducts(ctx context.Context, filter domain.ProductFilter) ([]*domain.Product, error)
	GetProduct(ctx context.Context, id string) (*domain.Product, error)
}

type OrderRepositoryPort interface {
	SaveOrder(ctx context.Context, order *domain.Order) error
	GetOrder(ctx context.Context, id string) (*domain.Order, error)
	ListOrders(ctx context.Context) ([]*domain.Order, error)
	UpdateOrderStatus(ctx context.Context, id string, status domain.OrderStatus) error
}

// VendorRepositoryPort covers the one catalog mutation that exists:
// admin approval of a vendor.
type VendorRepositoryPort interface {
	ListVendors(ctx context.Context) ([]*domain.Vendor, error)
	GetVendor(ctx context.Context, id string) (*domain.Vendor, error)
	ApproveVendor(ctx context.Context, id string) (*domain.Vendor, error)
}

type CachePort interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value interface{}) error
	DeleteByPrefix(ctx context.Context, prefix string) error
	Ping(ctx context.Context) error
}

// AuthPort is the simulated phone/OTP collaborator. The methods take a
// context and return result-or-error so a real network implementation
// can replace the mock without changing callers.
type AuthPort interface {
	RequestCode(ctx context.Context, phone string) error
	VerifyCode(ctx context.Context, phone, code string) (*domain.User, string, error)
	ContinueAsGuest(ctx context.Context) (*domain.User, error)
}
