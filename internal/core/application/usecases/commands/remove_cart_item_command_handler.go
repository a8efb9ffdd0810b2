package commands

import (
	"context"
)

// RemoveCartItemCommandHandler deletes a cart line.
type RemoveCartItemCommandHandler struct {
	uowFactory CartUoWFactory
}

func NewRemoveCartItemCommandHandler(uowFactory CartUoWFactory) RemoveCartItemCommandHandler {
	return RemoveCartItemCommandHandler{uowFactory: uowFactory}
}

// Handle returns an ObjectNotFoundError when the line is not in the caller's cart.
func (h *RemoveCartItemCommandHandler) Handle(ctx context.Context, cmd RemoveCartItemCommand) (CartTotals, error) {
	if err := cmd.Validate(); err != nil {
		return CartTotals{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return CartTotals{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	cartRepo := uow.CartRepository()
	if err := cartRepo.LockForUser(ctx, cmd.UserID()); err != nil {
		return CartTotals{}, err
	}

	c, err := cartRepo.Get(ctx, cmd.UserID())
	if err != nil {
		return CartTotals{}, err
	}

	if err = c.Remove(cmd.ItemID()); err != nil {
		return CartTotals{}, err
	}

	if err = cartRepo.Save(ctx, c); err != nil {
		return CartTotals{}, err
	}

	totals, err := cartTotals(ctx, uow.CatalogRepository(), c)
	if err != nil {
		return CartTotals{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return CartTotals{}, err
	}

	return totals, nil
}
