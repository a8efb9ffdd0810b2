package order

import (
	"fmt"

	"fooddelivery/internal/pkg/errs"
)

// Status represents the current state of an order in its lifecycle.
type Status int

const (
	// Unknown is the zero value and is never valid.
	Unknown Status = iota
	// Placed is the initial status after checkout.
	Placed
	// Confirmed means the payment completed.
	Confirmed
	Preparing
	Ready
	OutForDelivery
	// Delivered is terminal.
	Delivered
	// Cancelled is terminal.
	Cancelled
)

var statusNames = map[Status]string{
	Placed:         "placed",
	Confirmed:      "confirmed",
	Preparing:      "preparing",
	Ready:          "ready",
	OutForDelivery: "out_for_delivery",
	Delivered:      "delivered",
	Cancelled:      "cancelled",
}

// transitions lists the allowed targets of every status.
var transitions = map[Status][]Status{
	Placed:         {Confirmed, Cancelled},
	Confirmed:      {Preparing, Cancelled},
	Preparing:      {Ready, Cancelled},
	Ready:          {OutForDelivery, Cancelled},
	OutForDelivery: {Delivered, Cancelled},
	Delivered:      nil,
	Cancelled:      nil,
}

// InProgress lists the statuses an order passes through between confirmation and delivery.
var InProgress = []Status{Confirmed, Preparing, Ready, OutForDelivery}

func (s Status) String() string {
	if name, ok := statusNames[s]; ok {
		return name
	}
	return "unknown"
}

// Validate returns a ValueIsInvalidError for Unknown and out-of-range values.
func (s Status) Validate() error {
	if _, ok := statusNames[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// ParseStatus maps the persisted name of a status.
func ParseStatus(s string) (Status, error) {
	for st, name := range statusNames {
		if name == s {
			return st, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid status", s))
}

// IsTerminal reports whether no transition leaves s.
func (s Status) IsTerminal() bool {
	return s == Delivered || s == Cancelled
}

// CanTransitionTo reports whether the transition table allows s -> target.
func (s Status) CanTransitionTo(target Status) bool {
	for _, allowed := range transitions[s] {
		if allowed == target {
			return true
		}
	}
	return false
}

// Next returns the following status on the delivery path; ok is false for Placed,
// which only moves on payment, and for terminal statuses.
func (s Status) Next() (next Status, ok bool) {
	switch s {
	case Confirmed:
		return Preparing, true
	case Preparing:
		return Ready, true
	case Ready:
		return OutForDelivery, true
	case OutForDelivery:
		return Delivered, true
	default:
		return Unknown, false
	}
}
