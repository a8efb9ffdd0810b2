package order

import (
	"errors"
	"fmt"
	"time"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/payment"
	"fooddelivery/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TaxPercent is the tax applied to the subtotal of every order.
var TaxPercent = decimal.NewFromInt(5)

const (
	NotePlaced    = "Order placed successfully"
	NoteConfirmed = "Order confirmed and payment completed"
	NoteCancelled = "Order cancelled by customer"
)

var progressNotes = map[Status]string{
	Preparing:      "Restaurant is preparing your order",
	Ready:          "Order is ready for pickup",
	OutForDelivery: "Order is out for delivery",
	Delivered:      "Order delivered",
}

var (
	// ErrOrderIsNotConstructed is returned when an Order was not created through NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")
	// ErrBelowMinimumOrder is the cause reported when the subtotal does not reach the restaurant threshold.
	ErrBelowMinimumOrder = errors.New("Minimum order amount is")
	// ErrNotCancellable is the cause reported when a delivered or cancelled order is cancelled.
	ErrNotCancellable = errors.New("Order cannot be cancelled")
	// ErrIllegalTransition is the cause reported for a move the transition table does not allow.
	ErrIllegalTransition = errors.New("illegal status transition")
	// ErrOrderNotFound is the cause reported when an order is unknown or owned by another user.
	ErrOrderNotFound = errors.New("Order not found")
)

// Item is an order line with the price snapshotted at checkout.
type Item struct {
	MenuItemID int64
	Quantity   int
	UnitPrice  decimal.Decimal
	Note       string
}

// LineTotal returns unit price × quantity.
func (i Item) LineTotal() decimal.Decimal {
	return kernel.LineTotal(i.UnitPrice, i.Quantity)
}

// Params carries everything checkout knows about a new order.
type Params struct {
	ID                       string
	UserID                   int64
	RestaurantID             int64
	AddressID                int64
	Items                    []Item
	DeliveryFee              decimal.Decimal
	MinOrderAmount           decimal.Decimal
	PaymentMethod            payment.Method
	EstimatedDeliveryMinutes int
	Note                     string
	PlacedAt                 time.Time
}

// Order is the aggregate root of a checkout.
//
// Status and payment status are the only mutable fields. Every status change goes through
// transitionTo, which enforces the transition table, appends a tracking entry and raises
// a StatusChanged event.
type Order struct {
	id            string
	userID        int64
	restaurantID  int64
	addressID     int64
	items         []Item
	subtotal      decimal.Decimal
	deliveryFee   decimal.Decimal
	tax           decimal.Decimal
	total         decimal.Decimal
	paymentMethod payment.Method
	status        Status
	paymentStatus payment.Status
	etaMinutes    int
	note          string
	createdAt     time.Time
	updatedAt     time.Time

	// tracking holds entries not yet written by the repository.
	tracking []TrackingEntry
	events   []StatusChanged

	isConstructed bool
}

// NewOrder prices the items, checks the minimum order amount and returns a placed order
// with a pending payment and its initial tracking entry.
//
// Example:
//
//	o, err := order.NewOrder(order.Params{
//	    ID: id, UserID: 1, RestaurantID: 2, AddressID: 3,
//	    Items:       []order.Item{{MenuItemID: 10, Quantity: 2, UnitPrice: decimal.NewFromInt(300)}},
//	    DeliveryFee: decimal.NewFromInt(40),
//	    PaymentMethod: payment.Card,
//	    PlacedAt:    time.Now(),
//	})
//	// o.TotalAmount() == 670.00
func NewOrder(p Params) (*Order, error) {
	o := &Order{
		id:            p.ID,
		userID:        p.UserID,
		restaurantID:  p.RestaurantID,
		addressID:     p.AddressID,
		deliveryFee:   kernel.RoundMoney(p.DeliveryFee),
		paymentMethod: p.PaymentMethod,
		status:        Placed,
		paymentStatus: payment.Pending,
		etaMinutes:    p.EstimatedDeliveryMinutes,
		note:          p.Note,
		createdAt:     p.PlacedAt,
		updatedAt:     p.PlacedAt,
		isConstructed: true,
	}

	if err := errors.Join(
		o.validateReferences(),
		o.setItems(p.Items),
		p.PaymentMethod.Validate(),
	); err != nil {
		return nil, err
	}

	if o.subtotal.LessThan(p.MinOrderAmount) {
		return nil, errs.NewValueIsInvalidErrorWithCause("subtotal",
			fmt.Errorf("%w ₹%s", ErrBelowMinimumOrder, p.MinOrderAmount.String()))
	}

	o.tax = kernel.Percent(o.subtotal, TaxPercent)
	o.total = o.subtotal.Add(o.deliveryFee).Add(o.tax)
	o.record(Placed, NotePlaced, p.PlacedAt)

	return o, nil
}

// RestoreOrder rebuilds a persisted order without raising events or tracking entries.
func RestoreOrder(
	id string,
	userID, restaurantID, addressID int64,
	items []Item,
	subtotal, deliveryFee, tax, total decimal.Decimal,
	paymentMethod payment.Method,
	status Status,
	paymentStatus payment.Status,
	etaMinutes int,
	note string,
	createdAt, updatedAt time.Time,
) (*Order, error) {
	if err := errors.Join(status.Validate(), paymentStatus.Validate(), paymentMethod.Validate()); err != nil {
		return nil, err
	}

	return &Order{
		id:            id,
		userID:        userID,
		restaurantID:  restaurantID,
		addressID:     addressID,
		items:         items,
		subtotal:      subtotal,
		deliveryFee:   deliveryFee,
		tax:           tax,
		total:         total,
		paymentMethod: paymentMethod,
		status:        status,
		paymentStatus: paymentStatus,
		etaMinutes:    etaMinutes,
		note:          note,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
		isConstructed: true,
	}, nil
}

// Validate ensures the Order was built through a constructor.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

func (o *Order) ID() string { return o.id }
func (o *Order) UserID() int64 { return o.userID }
func (o *Order) RestaurantID() int64 { return o.restaurantID }
func (o *Order) AddressID() int64 { return o.addressID }
func (o *Order) Subtotal() decimal.Decimal { return o.subtotal }
func (o *Order) DeliveryFee() decimal.Decimal { return o.deliveryFee }
func (o *Order) TaxAmount() decimal.Decimal { return o.tax }
func (o *Order) TotalAmount() decimal.Decimal { return o.total }
func (o *Order) PaymentMethod() payment.Method { return o.paymentMethod }
func (o *Order) Status() Status { return o.status }
func (o *Order) PaymentStatus() payment.Status { return o.paymentStatus }
func (o *Order) EstimatedDeliveryMinutes() int { return o.etaMinutes }
func (o *Order) Note() string { return o.note }
func (o *Order) CreatedAt() time.Time { return o.createdAt }
func (o *Order) UpdatedAt() time.Time { return o.updatedAt }

// Items returns a copy of the order lines.
func (o *Order) Items() []Item {
	items := make([]Item, len(o.items))
	copy(items, o.items)
	return items
}

// IsOwnedBy reports whether userID placed the order.
func (o *Order) IsOwnedBy(userID int64) bool {
	return o.userID == userID
}

// Cancel moves a non-terminal order to Cancelled.
func (o *Order) Cancel(now time.Time) error {
	if o.status.IsTerminal() {
		return errs.NewConflictErrorWithCause("order", ErrNotCancellable)
	}
	return o.transitionTo(Cancelled, NoteCancelled, now)
}

// Advance moves a confirmed or in-progress order one step along the delivery path.
func (o *Order) Advance(now time.Time) error {
	next, ok := o.status.Next()
	if !ok {
		return errs.NewConflictErrorWithCause("order",
			fmt.Errorf("%w: %s has no next status", ErrIllegalTransition, o.status))
	}
	return o.transitionTo(next, progressNotes[next], now)
}

// ApplyPaymentOutcome records the status of a payment attempt on the order.
//
// A completed payment is never downgraded by a later attempt. Only a completed payment
// on a placed order confirms it; every other combination leaves the order status untouched.
// It returns true when the order was confirmed.
func (o *Order) ApplyPaymentOutcome(outcome payment.Status, now time.Time) (bool, error) {
	if err := outcome.Validate(); err != nil {
		return false, err
	}

	if o.paymentStatus != payment.Completed {
		o.paymentStatus = outcome
		o.updatedAt = now
	}

	if outcome != payment.Completed || o.status != Placed {
		return false, nil
	}

	if err := o.transitionTo(Confirmed, NoteConfirmed, now); err != nil {
		return false, err
	}
	return true, nil
}

// UncommittedTracking returns the tracking entries added since the last MarkTrackingCommitted.
func (o *Order) UncommittedTracking() []TrackingEntry {
	entries := make([]TrackingEntry, len(o.tracking))
	copy(entries, o.tracking)
	return entries
}

// MarkTrackingCommitted is called by the repository after writing the pending entries.
func (o *Order) MarkTrackingCommitted() {
	o.tracking = nil
}

// DomainEvents returns the events raised since the last ClearDomainEvents.
func (o *Order) DomainEvents() []StatusChanged {
	events := make([]StatusChanged, len(o.events))
	copy(events, o.events)
	return events
}

// ClearDomainEvents drops the raised events once they have been dispatched.
func (o *Order) ClearDomainEvents() {
	o.events = nil
}

func (o *Order) transitionTo(target Status, note string, now time.Time) error {
	if !o.status.CanTransitionTo(target) {
		return errs.NewConflictErrorWithCause("order",
			fmt.Errorf("%w: %s -> %s", ErrIllegalTransition, o.status, target))
	}

	o.status = target
	o.updatedAt = now
	o.record(target, note, now)
	return nil
}

func (o *Order) record(status Status, note string, now time.Time) {
	o.tracking = append(o.tracking, TrackingEntry{Status: status, Notes: note, CreatedAt: now})
	o.events = append(o.events, StatusChanged{
		EventID:       uuid.New(),
		OrderID:       o.id,
		UserID:        o.userID,
		RestaurantID:  o.restaurantID,
		Status:        status,
		PaymentStatus: o.paymentStatus,
		OccurredAt:    now,
	})
}

func (o *Order) validateReferences() error {
	var errList []error
	if o.id == "" {
		errList = append(errList, errs.NewValueIsRequiredError("orderId"))
	}
	if o.userID <= 0 {
		errList = append(errList, errs.NewValueIsRequiredError("userId"))
	}
	if o.restaurantID <= 0 {
		errList = append(errList, errs.NewValueIsRequiredError("restaurantId"))
	}
	if o.addressID <= 0 {
		errList = append(errList, errs.NewValueIsRequiredError("addressId"))
	}
	return errors.Join(errList...)
}

func (o *Order) setItems(items []Item) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("items")
	}

	subtotal := decimal.Zero
	for _, item := range items {
		if item.Quantity <= 0 {
			return errs.NewValueIsInvalidErrorWithCause("quantity",
				fmt.Errorf("%d is not greater than 0", item.Quantity))
		}
		subtotal = subtotal.Add(item.LineTotal())
	}

	o.items = make([]Item, len(items))
	copy(o.items, items)
	o.subtotal = kernel.RoundMoney(subtotal)
	return nil
}
