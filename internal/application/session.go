// Package application holds the storefront's services: catalog
// browsing, cart sessions, checkout, order progression, vendor
// administration and the simulated OTP flow.
package application

import (
	"github.com/google/uuid"

	"github.com/hawkerbazaar/storefront/internal/domain"
)

// Session is the per-shopper context: the signed-in (or guest) user and
// the cart they are building. It is created at session start and passed
// explicitly to whatever needs it; there is no application-global cart
// or user.
type Session struct {
	ID   string
	User *domain.User
	Cart *domain.Cart
}

// NewSession starts an anonymous browsing session when user is nil.
func NewSession(user *domain.User) *Session {
	return &Session{
		ID:   uuid.NewString(),
		User: user,
		Cart: domain.NewCart(),
	}
}

func (s *Session) SignIn(user *domain.User) {
	s.User = user
}

// SignOut drops the user but keeps the cart, matching the storefront's
// behavior of carrying the cart across a login prompt.
func (s *Session) SignOut() {
	s.User = nil
}
