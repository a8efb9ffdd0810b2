package commands

import (
	"context"
)

// ClearCartCommandHandler deletes every line of a cart.
type ClearCartCommandHandler struct {
	uowFactory CartUoWFactory
}

func NewClearCartCommandHandler(uowFactory CartUoWFactory) ClearCartCommandHandler {
	return ClearCartCommandHandler{uowFactory: uowFactory}
}

func (h *ClearCartCommandHandler) Handle(ctx context.Context, cmd ClearCartCommand) error {
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

	cartRepo := uow.CartRepository()
	if err := cartRepo.LockForUser(ctx, cmd.UserID()); err != nil {
		return err
	}

	if err := cartRepo.Clear(ctx, cmd.UserID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
