package commands

import (
	"context"
	"time"

	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/pkg/errs"
)

// AdvanceOrderStatusCommandHandler applies one progression step under the order row lock.
type AdvanceOrderStatusCommandHandler struct {
	uowFactory OrderUoWFactory
	now        func() time.Time
}

func NewAdvanceOrderStatusCommandHandler(uowFactory OrderUoWFactory) AdvanceOrderStatusCommandHandler {
	return AdvanceOrderStatusCommandHandler{uowFactory: uowFactory, now: time.Now}
}

// Handle returns the new status. A ConflictError means the order was cancelled, delivered
// or advanced by another worker since it was selected.
func (h *AdvanceOrderStatusCommandHandler) Handle(ctx context.Context, cmd AdvanceOrderStatusCommand) (order.Status, error) {
	if err := cmd.Validate(); err != nil {
		return order.Unknown, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return order.Unknown, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	o, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return order.Unknown, err
	}

	if cutoff := cmd.UpdatedBefore(); !cutoff.IsZero() && !o.UpdatedAt().Before(cutoff) {
		return order.Unknown, errs.NewConflictErrorWithCause("order", ErrOrderNotDue)
	}

	if err = o.Advance(h.now().UTC()); err != nil {
		return order.Unknown, err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return order.Unknown, err
	}

	if err = uow.Commit(ctx); err != nil {
		return order.Unknown, err
	}

	return o.Status(), nil
}
