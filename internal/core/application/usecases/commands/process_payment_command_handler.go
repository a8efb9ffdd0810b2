package commands

import (
	"context"
	"time"

	"fooddelivery/internal/core/domain/model/payment"
	"fooddelivery/internal/core/domain/services"
	"fooddelivery/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// ProcessPaymentResult reports one attempt. Err is set for failed attempts only.
type ProcessPaymentResult struct {
	PaymentStatus payment.Status
	TransactionID string
	Amount        decimal.Decimal
	Err           error
}

// Message is the human-readable summary of the attempt.
func (r ProcessPaymentResult) Message() string {
	switch r.PaymentStatus {
	case payment.Completed:
		return "Payment processed successfully"
	case payment.Pending:
		return "Payment pending"
	default:
		return "Payment failed"
	}
}

// ProcessPaymentCommandHandler runs the simulated gateway and records the attempt.
//
// The order row is locked first, so two concurrent attempts cannot both observe an unpaid
// order. The payment row and the outcome applied to the order commit together.
type ProcessPaymentCommandHandler struct {
	uowFactory PaymentUoWFactory
	simulator  services.PaymentSimulator
	now        func() time.Time
}

func NewProcessPaymentCommandHandler(
	uowFactory PaymentUoWFactory,
	simulator services.PaymentSimulator,
) ProcessPaymentCommandHandler {
	return ProcessPaymentCommandHandler{uowFactory: uowFactory, simulator: simulator, now: time.Now}
}

// Handle fails with an ObjectNotFoundError for unknown or foreign orders and with a
// ConflictError carrying payment.ErrAlreadyPaid when a completed payment exists.
// A failed gateway outcome is not an error: it is recorded and returned in the result.
func (h *ProcessPaymentCommandHandler) Handle(ctx context.Context, cmd ProcessPaymentCommand) (ProcessPaymentResult, error) {
	if err := cmd.Validate(); err != nil {
		return ProcessPaymentResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return ProcessPaymentResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	paymentRepo := uow.PaymentRepository()

	o, err := orderRepo.GetForUser(ctx, cmd.OrderID(), cmd.UserID())
	if err != nil {
		return ProcessPaymentResult{}, err
	}

	paid, err := paymentRepo.HasCompleted(ctx, o.ID())
	if err != nil {
		return ProcessPaymentResult{}, err
	}
	if paid || o.PaymentStatus() == payment.Completed {
		return ProcessPaymentResult{}, errs.NewConflictErrorWithCause("payment", payment.ErrAlreadyPaid)
	}

	outcome, err := h.simulator.Process(cmd.Method(), cmd.Details())
	if err != nil {
		return ProcessPaymentResult{}, err
	}

	now := h.now().UTC()
	attempt, err := payment.NewPayment(o.ID(), o.TotalAmount(), cmd.Method(), outcome, now)
	if err != nil {
		return ProcessPaymentResult{}, err
	}

	if err = paymentRepo.Add(ctx, attempt); err != nil {
		return ProcessPaymentResult{}, err
	}

	if _, err = o.ApplyPaymentOutcome(outcome.Status, now); err != nil {
		return ProcessPaymentResult{}, err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return ProcessPaymentResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return ProcessPaymentResult{}, err
	}

	return ProcessPaymentResult{
		PaymentStatus: outcome.Status,
		TransactionID: outcome.TransactionID,
		Amount:        o.TotalAmount(),
		Err:           outcome.Err,
	}, nil
}
