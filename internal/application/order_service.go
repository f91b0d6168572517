// internal/application/order_service.go
package application

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/hawkerbazaar/storefront/internal/domain"
	"github.com/hawkerbazaar/storefront/internal/ports"
)

const ordersCacheKey = "orders"

type OrderService struct {
	repo     ports.OrderRepositoryPort
	cache    ports.CachePort
	pricing  domain.PricingConfig
	validate *validator.Validate
	logger   *slog.Logger
}

func NewOrderService(repo ports.OrderRepositoryPort, cache ports.CachePort, pricing domain.PricingConfig, logger *slog.Logger) *OrderService {
	return &OrderService{
		repo:     repo,
		cache:    cache,
		pricing:  pricing,
		validate: validator.New(),
		logger:   logger,
	}
}

// Quote prices the cart as it stands. Figures are derived fresh on
// every call.
func (s *OrderService) Quote(cart *domain.Cart) domain.Quote {
	return domain.QuoteCart(cart.Lines(), s.pricing)
}

// CreateOrder freezes the given cart lines into a new order: fresh
// unique id, status placed, total computed from the lines at this
// instant. Nothing is stored when validation fails.
func (s *OrderService) CreateOrder(ctx context.Context, lines []domain.CartItem, addr domain.Address) (*domain.Order, error) {
	if len(lines) == 0 {
		return nil, errors.Wrap(domain.ErrEmptyCart, "checkout")
	}
	if err := s.validate.Struct(addr); err != nil {
		return nil, errors.Wrap(domain.ErrIncompleteAddress, err.Error())
	}

	quote := domain.QuoteCart(lines, s.pricing)
	order := &domain.Order{
		ID:              "ORD-" + uuid.NewString(),
		CreatedAt:       time.Now(),
		Status:          domain.StatusPlaced,
		Items:           make([]domain.OrderItem, 0, len(lines)),
		ShippingAddress: addr,
		Total:           quote.Total,
	}
	for _, line := range lines {
		order.Items = append(order.Items, domain.OrderItem{
			ProductID: line.ProductID,
			Name:      line.Name,
			Quantity:  line.Quantity,
			Price:     line.Price,
			Image:     line.Image,
		})
	}

	if err := s.repo.SaveOrder(ctx, order); err != nil {
		return nil, errors.Wrap(err, "save order")
	}
	if err := s.cache.DeleteByPrefix(ctx, ordersCacheKey); err != nil {
		// Stale listings expire on their own; the order itself is safe.
		s.logger.Warn("failed to invalidate order cache", slog.Any("error", err))
	}
	s.logger.Info("order placed",
		slog.String("order_id", order.ID),
		slog.Int64("total", order.Total),
		slog.Int("lines", len(order.Items)))
	return order, nil
}

// Checkout creates an order from the session's cart and clears the cart
// only once the order is stored. A failed checkout leaves the cart
// untouched.
func (s *OrderService) Checkout(ctx context.Context, sess *Session, addr domain.Address) (*domain.Order, error) {
	order, err := s.CreateOrder(ctx, sess.Cart.Lines(), addr)
	if err != nil {
		return nil, err
	}
	sess.Cart.Clear()
	return order, nil
}

// AdvanceOrder moves an order one step along the fulfilment sequence.
// Progressing orders is a vendor operation; any target other than the
// immediate successor fails and the stored status stays put.
func (s *OrderService) AdvanceOrder(ctx context.Context, actor *domain.User, orderID string, next domain.OrderStatus) (*domain.Order, error) {
	if err := Authorize(actor, domain.RoleVendor); err != nil {
		return nil, err
	}
	order, err := s.repo.GetOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if err := order.Advance(next); err != nil {
		return nil, err
	}
	if err := s.repo.UpdateOrderStatus(ctx, orderID, next); err != nil {
		return nil, errors.Wrap(err, "update order status")
	}
	if err := s.cache.DeleteByPrefix(ctx, ordersCacheKey); err != nil {
		s.logger.Warn("failed to invalidate order cache", slog.Any("error", err))
	}
	s.logger.Info("order advanced",
		slog.String("order_id", orderID),
		slog.String("status", string(next)))
	return order, nil
}

// ListOrders returns the order history, newest first, read through the
// cache. Cache trouble is logged and never fails the listing.
func (s *OrderService) ListOrders(ctx context.Context) ([]*domain.Order, error) {
	if data, err := s.cache.Get(ctx, ordersCacheKey); err == nil {
		var orders []*domain.Order
		if err := json.Unmarshal(data, &orders); err == nil {
			return orders, nil
		}
	}
	orders, err := s.repo.ListOrders(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "list orders")
	}
	if err := s.cache.Set(ctx, ordersCacheKey, orders); err != nil {
		s.logger.Warn("failed to cache order listing", slog.Any("error", err))
	}
	return orders, nil
}

// GetOrder looks up a single order, for the confirmation view.
func (s *OrderService) GetOrder(ctx context.Context, id string) (*domain.Order, error) {
	return s.repo.GetOrder(ctx, id)
}
