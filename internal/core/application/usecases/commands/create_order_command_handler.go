package commands

import (
	"context"
	"fmt"
	"io"
	"time"

	"fooddelivery/internal/core/domain/model/cart"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/core/domain/services"
	"fooddelivery/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// CreateOrderResult is what checkout reports back.
type CreateOrderResult struct {
	OrderID     string
	TotalAmount decimal.Decimal
	// EstimatedFrom and EstimatedTo bound the delivery time in minutes.
	EstimatedFrom int
	EstimatedTo   int
	Status        order.Status
}

// EstimatedDeliveryRange formats the window as "40-45 minutes".
func (r CreateOrderResult) EstimatedDeliveryRange() string {
	return fmt.Sprintf("%d-%d minutes", r.EstimatedFrom, r.EstimatedTo)
}

// CreateOrderCommandHandler converts the user's cart into a placed order.
//
// The order row, its items, the initial tracking entry and the cart clear are written in
// one transaction: either all of them take effect or none does.
type CreateOrderCommandHandler struct {
	uowFactory CheckoutUoWFactory
	geo        services.GeoFeeCalculator
	now        func() time.Time
	random     io.Reader
}

// NewCreateOrderCommandHandler creates a handler using the wall clock and crypto/rand for ids.
func NewCreateOrderCommandHandler(uowFactory CheckoutUoWFactory) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		geo:        services.NewGeoFeeCalculator(),
		now:        time.Now,
	}
}

// Handle fails with a ValueIsInvalidError for an empty cart or a subtotal below the
// restaurant minimum, and with an ObjectNotFoundError for an address the user does not own.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (CreateOrderResult, error) {
	if err := cmd.Validate(); err != nil {
		return CreateOrderResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return CreateOrderResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	cartRepo := uow.CartRepository()
	if err := cartRepo.LockForUser(ctx, cmd.UserID()); err != nil {
		return CreateOrderResult{}, err
	}

	c, err := cartRepo.Get(ctx, cmd.UserID())
	if err != nil {
		return CreateOrderResult{}, err
	}

	restaurantID, ok := c.RestaurantID()
	if !ok {
		return CreateOrderResult{}, errs.NewValueIsInvalidErrorWithCause("cart", cart.ErrEmptyCart)
	}

	address, err := uow.AddressRepository().GetForUser(ctx, cmd.AddressID(), cmd.UserID())
	if err != nil {
		return CreateOrderResult{}, err
	}

	restaurant, err := uow.CatalogRepository().GetRestaurant(ctx, restaurantID)
	if err != nil {
		return CreateOrderResult{}, err
	}

	now := h.now().UTC()
	orderID, err := order.NewID(now, h.random)
	if err != nil {
		return CreateOrderResult{}, err
	}

	distance := h.geo.DistanceOrPlaceholder(restaurant.Location, address.Location)
	eta := h.geo.EstimatedDeliveryMinutes(distance, restaurant.PrepMinutes())

	o, err := order.NewOrder(order.Params{
		ID:                       orderID,
		UserID:                   cmd.UserID(),
		RestaurantID:             restaurantID,
		AddressID:                address.ID,
		Items:                    orderItems(c),
		DeliveryFee:              restaurant.DeliveryFee,
		MinOrderAmount:           restaurant.MinOrderAmount,
		PaymentMethod:            cmd.PaymentMethod(),
		EstimatedDeliveryMinutes: eta,
		Note:                     cmd.Note(),
		PlacedAt:                 now,
	})
	if err != nil {
		return CreateOrderResult{}, err
	}

	if err = uow.OrderRepository().Add(ctx, o); err != nil {
		return CreateOrderResult{}, err
	}

	if err = cartRepo.Clear(ctx, cmd.UserID()); err != nil {
		return CreateOrderResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return CreateOrderResult{}, err
	}

	from, to := h.geo.DeliveryWindow(eta)
	return CreateOrderResult{
		OrderID:       o.ID(),
		TotalAmount:   o.TotalAmount(),
		EstimatedFrom: from,
		EstimatedTo:   to,
		Status:        o.Status(),
	}, nil
}

func orderItems(c *cart.Cart) []order.Item {
	lines := c.Items()
	items := make([]order.Item, 0, len(lines))
	for _, line := range lines {
		items = append(items, order.Item{
			MenuItemID: line.MenuItemID(),
			Quantity:   line.Quantity(),
			UnitPrice:  line.UnitPrice(),
			Note:       line.Note(),
		})
	}
	return items
}
