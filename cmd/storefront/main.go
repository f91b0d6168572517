// cmd/storefront/main.go
package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"github.com/hawkerbazaar/storefront/internal/adapters/memory"
	"github.com/hawkerbazaar/storefront/internal/adapters/redis"
	"github.com/hawkerbazaar/storefront/internal/application"
	"github.com/hawkerbazaar/storefront/internal/domain"
	"github.com/hawkerbazaar/storefront/internal/ports"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("failed to load env variables", err)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	pricing := pricingFromEnv()

	store := memory.NewSeededStore()
	cache := cacheFromEnv()
	if err := cache.Ping(context.Background()); err != nil {
		log.Fatalf("failed to connect to cache: %v", err)
	}

	catalogService := application.NewCatalogService(store, cache, logger)
	orderService := application.NewOrderService(store, cache, pricing, logger)
	vendorService := application.NewVendorService(store, logger)
	authService := application.NewAuthService(logger)

	// A scripted browsing session standing in for the UI: sign in, browse,
	// fill a cart, check out, then progress and inspect the order the way
	// the vendor and admin dashboards would.
	ctx := context.Background()

	if err := authService.RequestCode(ctx, "+91 98765 43210"); err != nil {
		log.Fatalf("request code: %v", err)
	}
	user, _, err := authService.VerifyCode(ctx, "+91 98765 43210", "1234")
	if err != nil {
		log.Fatalf("verify code: %v", err)
	}
	sess := application.NewSession(user)

	clothing, err := catalogService.ListProducts(ctx, domain.ProductFilter{Category: "Clothing"})
	if err != nil {
		log.Fatalf("list products: %v", err)
	}
	logger.Info("browsing catalog", slog.String("category", "Clothing"), slog.Int("products", len(clothing)))

	kurti, err := catalogService.GetProduct(ctx, "1")
	if err != nil {
		log.Fatalf("get product: %v", err)
	}
	if err := sess.Cart.Add(kurti, 1); err != nil {
		log.Fatalf("add to cart: %v", err)
	}
	if err := sess.Cart.Add(kurti, 2); err != nil {
		log.Fatalf("add to cart: %v", err)
	}
	quote := orderService.Quote(sess.Cart)
	logger.Info("cart summary",
		slog.Int64("items", sess.Cart.ItemCount()),
		slog.Int64("subtotal", quote.Subtotal),
		slog.Int64("shipping", quote.ShippingFee),
		slog.Int64("total", quote.Total))

	order, err := orderService.Checkout(ctx, sess, domain.Address{
		Name:    user.Name,
		Phone:   user.Phone,
		Address: "Flat 302, Shanti Apartments, Carter Road",
		City:    "Mumbai",
		Pincode: "400050",
	})
	if err != nil {
		log.Fatalf("checkout: %v", err)
	}

	vendor := &domain.User{ID: "v1-owner", Name: "Priya Shah", Phone: "+91 98765 00001", Role: domain.RoleVendor}
	if _, err := orderService.AdvanceOrder(ctx, vendor, order.ID, domain.StatusAccepted); err != nil {
		log.Fatalf("advance order: %v", err)
	}

	admin := &domain.User{ID: "admin", Name: "Admin", Role: domain.RoleAdmin}
	pending, err := vendorService.PendingApprovals(ctx, admin)
	if err != nil {
		log.Fatalf("pending approvals: %v", err)
	}
	logger.Info("admin dashboard", slog.Int("pending_vendor_approvals", pending))
	if _, err := vendorService.ApproveVendor(ctx, admin, "v6"); err != nil {
		log.Fatalf("approve vendor: %v", err)
	}

	orders, err := orderService.ListOrders(ctx)
	if err != nil {
		log.Fatalf("list orders: %v", err)
	}
	for _, o := range orders {
		logger.Info("order",
			slog.String("id", o.ID),
			slog.String("status", string(o.Status)),
			slog.Int64("total", o.Total))
	}
}

func pricingFromEnv() domain.PricingConfig {
	pricing := domain.DefaultPricing()
	if v := envInt64("FREE_SHIPPING_THRESHOLD"); v > 0 {
		pricing.FreeShippingThreshold = v
	}
	if v := envInt64("SHIPPING_FEE"); v > 0 {
		pricing.ShippingFee = v
	}
	return pricing
}

// cacheFromEnv picks redis when REDIS_ADDR is set, otherwise the
// in-process cache.
func cacheFromEnv() ports.CachePort {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		return memory.NewCache()
	}
	return redis.NewCache(addr, os.Getenv("REDIS_USERNAME"), os.Getenv("REDIS_PASSWORD"), 0, 5*time.Minute)
}

func envInt64(key string) int64 {
	v := os.Getenv(key)
	if v == "" {
		return 0
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		log.Printf("ignoring %s=%q: %v", key, v, err)
		return 0
	}
	return n
}
