package payment

import (
	"fmt"

	"fooddelivery/internal/pkg/errs"
)

// Method is the way a customer pays for an order.
type Method int

const (
	// MethodUnknown is the zero value and is never valid.
	MethodUnknown Method = iota
	Cash
	Card
	UPI
	Wallet
)

var methodNames = map[Method]string{
	Cash:   "cash",
	Card:   "card",
	UPI:    "upi",
	Wallet: "wallet",
}

func (m Method) String() string {
	if name, ok := methodNames[m]; ok {
		return name
	}
	return "unknown"
}

// Validate rejects MethodUnknown and out-of-range values.
func (m Method) Validate() error {
	if _, ok := methodNames[m]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("paymentMethod", fmt.Errorf("%d is not a valid payment method", m))
	}
	return nil
}

// ParseMethod maps the wire name of a method.
func ParseMethod(s string) (Method, error) {
	for m, name := range methodNames {
		if name == s {
			return m, nil
		}
	}
	return MethodUnknown, errs.NewValueIsInvalidErrorWithCause(
		"paymentMethod", fmt.Errorf("%q must be one of cash, card, upi, wallet", s))
}
