package payment

import (
	"errors"
	"time"

	"fooddelivery/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

var (
	// ErrAlreadyPaid is the cause reported when an order already has a completed payment.
	ErrAlreadyPaid = errors.New("Payment already completed")
	// ErrInvalidCardNumber is the gateway error of a card attempt without a usable card number.
	ErrInvalidCardNumber = errors.New("Invalid card number")
)

// Details carries the optional method-specific input of an attempt.
type Details struct {
	CardNumber string
	UPIID      string
}

// Outcome is what the gateway answered for one attempt.
type Outcome struct {
	Status        Status
	TransactionID string
	// GatewayResponse is the opaque payload stored with the attempt.
	GatewayResponse map[string]string
	// Err is set for failed attempts and carries the gateway error message.
	Err error
}

// IsSuccessful reports whether the attempt is reported as successful to the caller.
// Pending cash payments count as successful.
func (o Outcome) IsSuccessful() bool {
	return o.Status != Failed
}

// Payment is one persisted attempt.
type Payment struct {
	id              int64
	orderID         string
	amount          decimal.Decimal
	method          Method
	transactionID   string
	gatewayResponse map[string]string
	status          Status
	createdAt       time.Time
}

// NewPayment records an attempt of amount for orderID with the given outcome.
func NewPayment(orderID string, amount decimal.Decimal, method Method, outcome Outcome, now time.Time) (*Payment, error) {
	var errList []error
	if orderID == "" {
		errList = append(errList, errs.NewValueIsRequiredError("orderId"))
	}
	if amount.IsNegative() {
		errList = append(errList, errs.NewValueIsInvalidErrorWithCause("amount", errors.New("amount must not be negative")))
	}
	errList = append(errList, method.Validate(), outcome.Status.Validate())
	if err := errors.Join(errList...); err != nil {
		return nil, err
	}

	return &Payment{
		orderID:         orderID,
		amount:          amount,
		method:          method,
		transactionID:   outcome.TransactionID,
		gatewayResponse: outcome.GatewayResponse,
		status:          outcome.Status,
		createdAt:       now,
	}, nil
}

// RestorePayment rebuilds a persisted attempt.
func RestorePayment(
	id int64,
	orderID string,
	amount decimal.Decimal,
	method Method,
	transactionID string,
	gatewayResponse map[string]string,
	status Status,
	createdAt time.Time,
) *Payment {
	return &Payment{
		id:              id,
		orderID:         orderID,
		amount:          amount,
		method:          method,
		transactionID:   transactionID,
		gatewayResponse: gatewayResponse,
		status:          status,
		createdAt:       createdAt,
	}
}

func (p *Payment) ID() int64 { return p.id }
func (p *Payment) OrderID() string { return p.orderID }
func (p *Payment) Amount() decimal.Decimal { return p.amount }
func (p *Payment) Method() Method { return p.method }
func (p *Payment) TransactionID() string { return p.transactionID }
func (p *Payment) GatewayResponse() map[string]string { return p.gatewayResponse }
func (p *Payment) Status() Status { return p.status }
func (p *Payment) CreatedAt() time.Time { return p.createdAt }

// AssignID is called by the repository once the attempt has been inserted.
func (p *Payment) AssignID(id int64) {
	p.id = id
}
