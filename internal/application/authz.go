package application

import (
	"github.com/pkg/errors"

	"github.com/hawkerbazaar/storefront/internal/domain"
)

// Authorize is the single role gate for protected operations: access is
// granted iff a user is present and holds exactly the required role.
// The role itself is trusted as issued by the auth collaborator.
func Authorize(user *domain.User, required domain.Role) error {
	if user == nil {
		return errors.Wrapf(domain.ErrForbidden, "requires role %s, not signed in", required)
	}
	if user.Role != required {
		return errors.Wrapf(domain.ErrForbidden, "requires role %s, have %s", required, user.Role)
	}
	return nil
}
