package application

import (
	"context"
	"log/slog"

	"github.com/pkg/errors"

	"github.com/hawkerbazaar/storefront/internal/domain"
	"github.com/hawkerbazaar/storefront/internal/ports"
)

// VendorService covers the admin dashboard's vendor operations.
// Approval is the only vendor mutation in the system.
type VendorService struct {
	repo   ports.VendorRepositoryPort
	logger *slog.Logger
}

func NewVendorService(repo ports.VendorRepositoryPort, logger *slog.Logger) *VendorService {
	return &VendorService{repo: repo, logger: logger}
}

func (s *VendorService) ListVendors(ctx context.Context) ([]*domain.Vendor, error) {
	return s.repo.ListVendors(ctx)
}

func (s *VendorService) GetVendor(ctx context.Context, id string) (*domain.Vendor, error) {
	return s.repo.GetVendor(ctx, id)
}

// PendingApprovals is the admin dashboard's count of vendors waiting
// for approval.
func (s *VendorService) PendingApprovals(ctx context.Context, actor *domain.User) (int, error) {
	if err := Authorize(actor, domain.RoleAdmin); err != nil {
		return 0, err
	}
	vendors, err := s.repo.ListVendors(ctx)
	if err != nil {
		return 0, errors.Wrap(err, "list vendors")
	}
	pending := 0
	for _, v := range vendors {
		if !v.Approved {
			pending++
		}
	}
	return pending, nil
}

// ApproveVendor flips a vendor to approved. Admin only; approving an
// already approved vendor is a no-op success.
func (s *VendorService) ApproveVendor(ctx context.Context, actor *domain.User, vendorID string) (*domain.Vendor, error) {
	if err := Authorize(actor, domain.RoleAdmin); err != nil {
		return nil, err
	}
	vendor, err := s.repo.ApproveVendor(ctx, vendorID)
	if err != nil {
		return nil, err
	}
	s.logger.Info("vendor approved",
		slog.String("vendor_id", vendor.ID),
		slog.String("vendor", vendor.Name))
	return vendor, nil
}
