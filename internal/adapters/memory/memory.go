// Package memory is the in-process backend of the storefront: catalog,
// vendor directory and order history all live in this one store for the
// lifetime of the session. Nothing is persisted; that matches the mock
// dataset the storefront runs on.
package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/pkg/errors"

	"github.com/hawkerbazaar/storefront/internal/domain"
	"github.com/hawkerbazaar/storefront/internal/ports"
)

type Store struct {
	mu       sync.RWMutex
	products []domain.Product
	vendors  []domain.Vendor
	orders   []domain.Order
}

var (
	_ ports.CatalogPort          = (*Store)(nil)
	_ ports.OrderRepositoryPort  = (*Store)(nil)
	_ ports.VendorRepositoryPort = (*Store)(nil)
)

// NewStore builds a store over the given datasets. The store keeps its
// own copies and hands out copies, so callers can never mutate catalog
// state behind its back.
func NewStore(products []domain.Product, vendors []domain.Vendor, orders []domain.Order) *Store {
	s := &Store{
		products: make([]domain.Product, len(products)),
		vendors:  make([]domain.Vendor, len(vendors)),
		orders:   make([]domain.Order, len(orders)),
	}
	copy(s.products, products)
	copy(s.vendors, vendors)
	copy(s.orders, orders)
	return s
}

// NewSeededStore builds a store preloaded with the storefront's demo
// catalog, vendors and order history.
func NewSeededStore() *Store {
	return NewStore(seedProducts, seedVendors, seedOrders)
}

func (s *Store) ListProducts(ctx context.Context, filter domain.ProductFilter) ([]*domain.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	products := make([]*domain.Product, 0, len(s.products))
	for i := range s.products {
		if !filter.Matches(&s.products[i]) {
			continue
		}
		p := s.products[i]
		products = append(products, &p)
	}
	return products, nil
}

func (s *Store) GetProduct(ctx context.Context, id string) (*domain.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for i := range s.products {
		if s.products[i].ID == id {
			p := s.products[i]
			return &p, nil
		}
	}
	return nil, errors.Wrapf(domain.ErrNotFound, "product %s", id)
}

// SaveOrder appends a new order. Ids are caller-generated and must be
// unique; a duplicate is rejected so a botched id generator cannot
// silently overwrite history.
func (s *Store) SaveOrder(ctx context.Context, order *domain.Order) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.orders {
		if s.orders[i].ID == order.ID {
			return errors.Errorf("order %s already exists", order.ID)
		}
	}
	s.orders = append(s.orders, cloneOrder(order))
	return nil
}

func (s *Store) GetOrder(ctx context.Context, id string) (*domain.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for i := range s.orders {
		if s.orders[i].ID == id {
			o := cloneOrder(&s.orders[i])
			return &o, nil
		}
	}
	return nil, errors.Wrapf(domain.ErrNotFound, "order %s", id)
}

// ListOrders returns the order history, newest first.
func (s *Store) ListOrders(ctx context.Context) ([]*domain.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	orders := make([]*domain.Order, 0, len(s.orders))
	for i := range s.orders {
		o := cloneOrder(&s.orders[i])
		orders = append(orders, &o)
	}
	sort.SliceStable(orders, func(i, j int) bool {
		return orders[i].CreatedAt.After(orders[j].CreatedAt)
	})
	return orders, nil
}

func (s *Store) UpdateOrderStatus(ctx context.Context, id string, status domain.OrderStatus) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.orders {
		if s.orders[i].ID == id {
			s.orders[i].Status = status
			return nil
		}
	}
	return errors.Wrapf(domain.ErrNotFound, "order %s", id)
}

func (s *Store) ListVendors(ctx context.Context) ([]*domain.Vendor, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	vendors := make([]*domain.Vendor, 0, len(s.vendors))
	for i := range s.vendors {
		v := s.vendors[i]
		vendors = append(vendors, &v)
	}
	return vendors, nil
}

func (s *Store) GetVendor(ctx context.Context, id string) (*domain.Vendor, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for i := range s.vendors {
		if s.vendors[i].ID == id {
			v := s.vendors[i]
			return &v, nil
		}
	}
	return nil, errors.Wrapf(domain.ErrNotFound, "vendor %s", id)
}

// ApproveVendor flips the vendor's approved flag. Approving an already
// approved vendor is a no-op, not an error.
func (s *Store) ApproveVendor(ctx context.Context, id string) (*domain.Vendor, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.vendors {
		if s.vendors[i].ID == id {
			s.vendors[i].Approved = true
			v := s.vendors[i]
			return &v, nil
		}
	}
	return nil, errors.Wrapf(domain.ErrNotFound, "vendor %s", id)
}

func cloneOrder(o *domain.Order) domain.Order {
	clone := *o
	clone.Items = make([]domain.OrderItem, len(o.Items))
	copy(clone.Items, o.Items)
	return clone
}
