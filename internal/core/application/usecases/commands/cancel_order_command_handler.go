package commands

import (
	"context"
	"time"
)

// CancelOrderCommandHandler cancels a non-terminal order on behalf of its customer.
type CancelOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	now        func() time.Time
}

func NewCancelOrderCommandHandler(uowFactory OrderUoWFactory) CancelOrderCommandHandler {
	return CancelOrderCommandHandler{uowFactory: uowFactory, now: time.Now}
}

// Handle fails with an ObjectNotFoundError for orders of other users and with a
// ConflictError for delivered or already cancelled orders.
func (h *CancelOrderCommandHandler) Handle(ctx context.Context, cmd CancelOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	o, err := orderRepo.GetForUser(ctx, cmd.OrderID(), cmd.UserID())
	if err != nil {
		return err
	}

	if err = o.Cancel(h.now().UTC()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
