package commands

import (
	"context"
)

// AddCartItemCommandHandler adds or merges a cart line.
//
// The read-modify-write of the cart runs under a per-user lock, so concurrent adds of the
// same user never lose a merged quantity.
type AddCartItemCommandHandler struct {
	uowFactory CartUoWFactory
}

func NewAddCartItemCommandHandler(uowFactory CartUoWFactory) AddCartItemCommandHandler {
	return AddCartItemCommandHandler{uowFactory: uowFactory}
}

func (h *AddCartItemCommandHandler) Handle(ctx context.Context, cmd AddCartItemCommand) (CartTotals, error) {
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
	catalogRepo := uow.CatalogRepository()

	restaurant, err := catalogRepo.GetRestaurant(ctx, cmd.RestaurantID())
	if err != nil {
		return CartTotals{}, err
	}

	menuItem, err := catalogRepo.GetMenuItem(ctx, cmd.MenuItemID())
	if err != nil {
		return CartTotals{}, err
	}

	if err = cartRepo.LockForUser(ctx, cmd.UserID()); err != nil {
		return CartTotals{}, err
	}

	c, err := cartRepo.Get(ctx, cmd.UserID())
	if err != nil {
		return CartTotals{}, err
	}

	if err = c.Add(restaurant, menuItem, cmd.Quantity(), cmd.Note()); err != nil {
		return CartTotals{}, err
	}

	if err = cartRepo.Save(ctx, c); err != nil {
		return CartTotals{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return CartTotals{}, err
	}

	return CartTotals{
		CartTotal: c.Subtotal().Add(restaurant.DeliveryFee),
		ItemCount: c.ItemCount(),
	}, nil
}
