package payment

import (
	"fmt"

	"fooddelivery/internal/pkg/errs"
)

// Status is the outcome of a payment attempt, also mirrored on the order.
type Status int

const (
	StatusUnknown Status = iota
	Pending
	Completed
	Failed
)

var statusNames = map[Status]string{
	Pending:   "pending",
	Completed: "completed",
	Failed:    "failed",
}

func (s Status) String() string {
	if name, ok := statusNames[s]; ok {
		return name
	}
	return "unknown"
}

// Validate rejects StatusUnknown and out-of-range values.
func (s Status) Validate() error {
	if _, ok := statusNames[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("paymentStatus", fmt.Errorf("%d is not a valid payment status", s))
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
	return StatusUnknown, errs.NewValueIsInvalidErrorWithCause("paymentStatus", fmt.Errorf("%q is not a valid payment status", s))
}
