package domain

import "github.com/pkg/errors"

// OrderStatus is one stop in the fixed fulfilment sequence. Transitions
// only move to the immediate successor, never backward and never
// skipping ahead.
type OrderStatus string

const (
	StatusPlaced    OrderStatus = "placed"
	StatusAccepted  OrderStatus = "accepted"
	StatusPacked    OrderStatus = "packed"
	StatusShipped   OrderStatus = "shipped"
	StatusDelivered OrderStatus = "delivered"
)

var statusSuccessor = map[OrderStatus]OrderStatus{
	StatusPlaced:   StatusAccepted,
	StatusAccepted: StatusPacked,
	StatusPacked:   StatusShipped,
	StatusShipped:  StatusDelivered,
}

// Next returns the immediate successor status. ok is false for
// StatusDelivered, the terminal state, and for unknown statuses.
func (s OrderStatus) Next() (next OrderStatus, ok bool) {
	next, ok = statusSuccessor[s]
	return next, ok
}

// Advance moves the order to next. Any target other than the immediate
// successor of the current status fails with ErrInvalidTransition and
// leaves the status untouched.
func (o *Order) Advance(next OrderStatus) error {
	successor, ok := o.Status.Next()
	if !ok || successor != next {
		return errors.Wrapf(ErrInvalidTransition, "order %s: %s -> %s", o.ID, o.Status, next)
	}
	o.Status = next
	return nil
}
