package domain

import "errors"

// All failure modes of the storefront core are local, recoverable
// conditions. Callers wrap these with context and check them with
// errors.Is; none of them abort the process.
var (
	ErrInvalidQuantity   = errors.New("invalid quantity")
	ErrItemNotFound      = errors.New("item not in cart")
	ErrEmptyCart         = errors.New("cart is empty")
	ErrIncompleteAddress = errors.New("incomplete shipping address")
	ErrInvalidTransition = errors.New("invalid order status transition")
	ErrNotFound          = errors.New("not found")
	ErrInvalidPhone      = errors.New("invalid phone number")
	ErrInvalidCode       = errors.New("invalid verification code")
	ErrForbidden         = errors.New("forbidden")
)
