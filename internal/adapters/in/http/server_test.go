package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"fooddelivery/internal/core/application/usecases/commands"
	"fooddelivery/internal/core/application/usecases/queries"
	"fooddelivery/internal/core/domain/model/cart"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/core/domain/model/payment"
	"fooddelivery/internal/core/domain/model/review"
	"fooddelivery/internal/pkg/errs"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

type testServer struct {
	echo     *echo.Echo
	handlers Handlers

	addCartItem  *MockAddCartItemHandler
	getCart      *MockGetCartHandler
	clearCart    *MockClearCartHandler
	createOrder  *MockCreateOrderHandler
	cancelOrder  *MockCancelOrderHandler
	listOrders   *MockListOrdersHandler
	orderDetails *MockGetOrderDetailsHandler
	payment      *MockProcessPaymentHandler
	submitReview *MockSubmitReviewHandler
	reviews      *MockGetRestaurantReviewsHandler
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	ts := &testServer{
		addCartItem:  new(MockAddCartItemHandler),
		getCart:      new(MockGetCartHandler),
		clearCart:    new(MockClearCartHandler),
		createOrder:  new(MockCreateOrderHandler),
		cancelOrder:  new(MockCancelOrderHandler),
		listOrders:   new(MockListOrdersHandler),
		orderDetails: new(MockGetOrderDetailsHandler),
		payment:      new(MockProcessPaymentHandler),
		submitReview: new(MockSubmitReviewHandler),
		reviews:      new(MockGetRestaurantReviewsHandler),
	}
	ts.handlers = Handlers{
		AddCartItem:          ts.addCartItem,
		GetCart:              ts.getCart,
		ClearCart:            ts.clearCart,
		CreateOrder:          ts.createOrder,
		CancelOrder:          ts.cancelOrder,
		ListOrders:           ts.listOrders,
		GetOrderDetails:      ts.orderDetails,
		ProcessPayment:       ts.payment,
		SubmitReview:         ts.submitReview,
		GetRestaurantReviews: ts.reviews,
	}

	auth, err := NewAuthenticator(testSecret, nil)
	require.NoError(t, err)

	ts.echo = echo.New()
	NewServer(ts.handlers, auth, nil).Register(ts.echo)
	return ts
}

func signToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)
	return token
}

func userToken(t *testing.T, userID int64) string {
	return signToken(t, jwt.MapClaims{"user_id": userID, "exp": time.Now().Add(time.Hour).Unix()})
}

func (ts *testServer) do(t *testing.T, method, path, body, token string) (int, map[string]any) {
	t.Helper()

	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	ts.echo.ServeHTTP(rec, req)

	var decoded map[string]any
	if strings.HasPrefix(rec.Header().Get(echo.HeaderContentType), echo.MIMEApplicationJSON) {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &decoded))
	}
	return rec.Code, decoded
}

func TestHealth(t *testing.T) {
	ts := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	ts.echo.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Healthy", rec.Body.String())
}

func TestAuth_MissingOrInvalidToken(t *testing.T) {
	ts := newTestServer(t)

	status, body := ts.do(t, http.MethodGet, "/api/v1/cart", "", "")
	assert.Equal(t, http.StatusUnauthorized, status)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "Access token required", body["message"])

	status, body = ts.do(t, http.MethodGet, "/api/v1/cart", "", "not-a-jwt")
	assert.Equal(t, http.StatusUnauthorized, status)
	assert.Equal(t, "Invalid or expired token", body["message"])

	expired := signToken(t, jwt.MapClaims{"user_id": 7, "exp": time.Now().Add(-time.Minute).Unix()})
	status, _ = ts.do(t, http.MethodGet, "/api/v1/cart", "", expired)
	assert.Equal(t, http.StatusUnauthorized, status)

	ts.getCart.AssertNotCalled(t, "Handle", mock.Anything, mock.Anything)
}

func TestAuthenticator_UserIDClaims(t *testing.T) {
	auth, err := NewAuthenticator(testSecret, nil)
	require.NoError(t, err)
	exp := time.Now().Add(time.Hour).Unix()

	tests := []struct {
		name    string
		claims  jwt.MapClaims
		want    int64
		wantErr bool
	}{
		{name: "user_id", claims: jwt.MapClaims{"user_id": 7, "exp": exp}, want: 7},
		{name: "id", claims: jwt.MapClaims{"id": 8, "email": "a@b.c", "exp": exp}, want: 8},
		{name: "sub as string", claims: jwt.MapClaims{"sub": "9", "exp": exp}, want: 9},
		{name: "non numeric sub", claims: jwt.MapClaims{"sub": "abc", "exp": exp}, wantErr: true},
		{name: "no id", claims: jwt.MapClaims{"exp": exp}, wantErr: true},
		{name: "no expiry", claims: jwt.MapClaims{"user_id": 7}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, err := auth.UserID(signToken(t, tt.claims))
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, id)
		})
	}
}

func TestAuthenticator_RejectsOtherSigningMethods(t *testing.T) {
	auth, err := NewAuthenticator(testSecret, nil)
	require.NoError(t, err)

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS512, jwt.MapClaims{
		"user_id": 7, "exp": time.Now().Add(time.Hour).Unix(),
	}).SignedString([]byte(testSecret))
	require.NoError(t, err)

	_, err = auth.UserID(token)
	assert.Error(t, err)
}

func TestAddCartItem(t *testing.T) {
	ts := newTestServer(t)
	ts.addCartItem.On("Handle", mock.Anything, mock.MatchedBy(func(cmd commands.AddCartItemCommand) bool {
		return cmd.UserID() == 7 && cmd.MenuItemID() == 12 && cmd.Quantity() == 2
	})).Return(commands.CartTotals{CartTotal: decimal.NewFromInt(640), ItemCount: 2}, nil).Once()

	status, body := ts.do(t, http.MethodPost, "/api/v1/cart/add",
		`{"restaurantId":3,"itemId":12,"quantity":2,"specialInstructions":"less oil"}`, userToken(t, 7))

	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "Item added to cart", body["message"])
	assert.InDelta(t, 640, body["cartTotal"], 0)
	assert.InDelta(t, 2, body["itemCount"], 0)
	ts.addCartItem.AssertExpectations(t)
}

func TestAddCartItem_InvalidQuantityNeverReachesHandler(t *testing.T) {
	ts := newTestServer(t)

	status, body := ts.do(t, http.MethodPost, "/api/v1/cart/add",
		`{"restaurantId":3,"itemId":12,"quantity":11}`, userToken(t, 7))

	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "Quantity must be between 1 and 10", body["message"])
	ts.addCartItem.AssertNotCalled(t, "Handle", mock.Anything, mock.Anything)
}

func TestAddCartItem_CrossRestaurantConflict(t *testing.T) {
	ts := newTestServer(t)
	ts.addCartItem.On("Handle", mock.Anything, mock.Anything).
		Return(commands.CartTotals{}, errs.NewConflictErrorWithCause("cart", cart.ErrCrossRestaurantConflict)).Once()

	status, body := ts.do(t, http.MethodPost, "/api/v1/cart/add",
		`{"restaurantId":4,"itemId":20,"quantity":1}`, userToken(t, 7))

	assert.Equal(t, http.StatusConflict, status)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, cart.ErrCrossRestaurantConflict.Error(), body["message"])
}

func TestAddCartItem_MalformedBody(t *testing.T) {
	ts := newTestServer(t)

	status, body := ts.do(t, http.MethodPost, "/api/v1/cart/add", `{"quantity":`, userToken(t, 7))

	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "Invalid request body", body["message"])
}

func TestGetCart_Empty(t *testing.T) {
	ts := newTestServer(t)
	ts.getCart.On("Handle", mock.Anything, mock.Anything).Return(queries.GetCartQueryResponse{
		Items:       []queries.CartLine{},
		Subtotal:    decimal.Zero,
		DeliveryFee: decimal.Zero,
		Total:       decimal.Zero,
	}, nil).Once()

	status, body := ts.do(t, http.MethodGet, "/api/v1/cart", "", userToken(t, 7))

	assert.Equal(t, http.StatusOK, status)
	assert.Empty(t, body["items"])
	assert.Nil(t, body["restaurant"])
	assert.InDelta(t, 0, body["total"], 0)
	assert.NotContains(t, body, "message")
}

func TestClearCart(t *testing.T) {
	ts := newTestServer(t)
	ts.clearCart.On("Handle", mock.Anything, mock.Anything).Return(nil).Once()

	status, body := ts.do(t, http.MethodDelete, "/api/v1/cart/clear", "", userToken(t, 7))

	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "Cart cleared successfully", body["message"])
}

func TestCreateOrder(t *testing.T) {
	ts := newTestServer(t)
	ts.createOrder.On("Handle", mock.Anything, mock.MatchedBy(func(cmd commands.CreateOrderCommand) bool {
		return cmd.UserID() == 7 && cmd.AddressID() == 5 && cmd.PaymentMethod() == payment.UPI
	})).Return(commands.CreateOrderResult{
		OrderID:       "ORDM1ABCDEF12",
		TotalAmount:   decimal.RequireFromString("670.00"),
		EstimatedFrom: 40,
		EstimatedTo:   45,
		Status:        order.Placed,
	}, nil).Once()

	status, body := ts.do(t, http.MethodPost, "/api/v1/orders/create",
		`{"addressId":5,"paymentMethod":"upi"}`, userToken(t, 7))

	assert.Equal(t, http.StatusCreated, status)
	assert.Equal(t, "Order placed successfully", body["message"])
	assert.Equal(t, "ORDM1ABCDEF12", body["orderId"])
	assert.InDelta(t, 670, body["totalAmount"], 0)
	assert.Equal(t, "40-45 minutes", body["estimatedDeliveryTime"])
	assert.Equal(t, "placed", body["status"])
}

func TestCreateOrder_UnknownPaymentMethod(t *testing.T) {
	ts := newTestServer(t)

	status, body := ts.do(t, http.MethodPost, "/api/v1/orders/create",
		`{"addressId":5,"paymentMethod":"bitcoin"}`, userToken(t, 7))

	assert.Equal(t, http.StatusBadRequest, status)
	assert.Contains(t, body["message"], "cash, card, upi, wallet")
	ts.createOrder.AssertNotCalled(t, "Handle", mock.Anything, mock.Anything)
}

func TestCreateOrder_EmptyCart(t *testing.T) {
	ts := newTestServer(t)
	ts.createOrder.On("Handle", mock.Anything, mock.Anything).
		Return(commands.CreateOrderResult{}, errs.NewValueIsInvalidErrorWithCause("cart", cart.ErrEmptyCart)).Once()

	status, body := ts.do(t, http.MethodPost, "/api/v1/orders/create",
		`{"addressId":5,"paymentMethod":"cash"}`, userToken(t, 7))

	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "Cart is empty", body["message"])
}

func TestCancelOrder_NotFoundAndConflict(t *testing.T) {
	ts := newTestServer(t)
	ts.cancelOrder.On("Handle", mock.Anything, mock.MatchedBy(func(cmd commands.CancelOrderCommand) bool {
		return cmd.OrderID() == "ORDMISSING"
	})).Return(errs.NewObjectNotFoundErrorWithCause("orderId", "ORDMISSING", order.ErrOrderNotFound)).Once()
	ts.cancelOrder.On("Handle", mock.Anything, mock.MatchedBy(func(cmd commands.CancelOrderCommand) bool {
		return cmd.OrderID() == "ORDDONE"
	})).Return(errs.NewConflictErrorWithCause("order", order.ErrNotCancellable)).Once()

	status, body := ts.do(t, http.MethodPost, "/api/v1/orders/ORDMISSING/cancel", "", userToken(t, 7))
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "Order not found", body["message"])

	status, body = ts.do(t, http.MethodPost, "/api/v1/orders/ORDDONE/cancel", "", userToken(t, 7))
	assert.Equal(t, http.StatusConflict, status)
	assert.Equal(t, "Order cannot be cancelled", body["message"])
}

func TestListOrders_StatusFilter(t *testing.T) {
	ts := newTestServer(t)
	ts.listOrders.On("Handle", mock.Anything, mock.Anything).Return([]queries.OrderSummary{
		{OrderID: "ORD1", RestaurantName: "Spice Route", ItemCount: 2, TotalAmount: decimal.NewFromInt(796), Status: "delivered"},
	}, nil).Once()

	status, body := ts.do(t, http.MethodGet, "/api/v1/orders?status=delivered&limit=5", "", userToken(t, 7))

	assert.Equal(t, http.StatusOK, status)
	orders, ok := body["orders"].([]any)
	require.True(t, ok)
	require.Len(t, orders, 1)
	first := orders[0].(map[string]any)
	assert.Equal(t, "ORD1", first["orderId"])
	assert.InDelta(t, 2, first["items"], 0)

	status, body = ts.do(t, http.MethodGet, "/api/v1/orders?status=lost", "", userToken(t, 7))
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, false, body["success"])

	status, _ = ts.do(t, http.MethodGet, "/api/v1/orders?limit=ten", "", userToken(t, 7))
	assert.Equal(t, http.StatusBadRequest, status)
	ts.listOrders.AssertNumberOfCalls(t, "Handle", 1)
}

func TestGetOrderDetails_WithPartner(t *testing.T) {
	ts := newTestServer(t)
	ts.orderDetails.On("Handle", mock.Anything, mock.Anything).Return(queries.OrderDetails{
		OrderID:         "ORD1",
		DeliveryAddress: "12 MG Road, Bengaluru, Karnataka - 560001",
		Subtotal:        decimal.NewFromInt(600),
		TaxAmount:       decimal.NewFromInt(30),
		TotalAmount:     decimal.NewFromInt(670),
		DeliveryFee:     decimal.NewFromInt(40),
		Status:          "out_for_delivery",
		Items:           []queries.OrderLine{{Name: "Paneer Tikka", Quantity: 2, Price: decimal.NewFromInt(300), Total: decimal.NewFromInt(600)}},
		Tracking:        []queries.TrackingEntry{{Status: "placed", Notes: "Order placed successfully"}},
		DeliveryPartner: &queries.DeliveryPartner{Name: "Vikram", Phone: "+91 9000000001"},
	}, nil).Once()

	status, body := ts.do(t, http.MethodGet, "/api/v1/orders/ORD1", "", userToken(t, 7))

	assert.Equal(t, http.StatusOK, status)
	details := body["order"].(map[string]any)
	assert.Equal(t, "ORD1", details["orderId"])
	assert.InDelta(t, 30, details["taxAmount"], 0)
	assert.Equal(t, "Vikram", details["deliveryPartner"].(map[string]any)["name"])
	assert.Len(t, details["items"], 1)
	assert.Len(t, details["tracking"], 1)
}

func TestProcessPayment_FailedAttempt(t *testing.T) {
	ts := newTestServer(t)
	ts.payment.On("Handle", mock.Anything, mock.MatchedBy(func(cmd commands.ProcessPaymentCommand) bool {
		return cmd.Method() == payment.Card && cmd.Details().CardNumber == "4111"
	})).Return(commands.ProcessPaymentResult{
		PaymentStatus: payment.Failed,
		TransactionID: "TXN1ABCDE",
		Amount:        decimal.NewFromInt(670),
		Err:           payment.ErrInvalidCardNumber,
	}, nil).Once()

	status, body := ts.do(t, http.MethodPost, "/api/v1/payments/process",
		`{"orderId":"ORD1","paymentMethod":"card","paymentDetails":{"cardNumber":"4111"}}`, userToken(t, 7))

	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "Payment failed", body["message"])
	assert.Equal(t, "failed", body["paymentStatus"])
	assert.Equal(t, "Invalid card number", body["error"])
}

func TestProcessPayment_CashPendingWithoutTransaction(t *testing.T) {
	ts := newTestServer(t)
	ts.payment.On("Handle", mock.Anything, mock.Anything).Return(commands.ProcessPaymentResult{
		PaymentStatus: payment.Pending,
		Amount:        decimal.NewFromInt(670),
	}, nil).Once()

	status, body := ts.do(t, http.MethodPost, "/api/v1/payments/process",
		`{"orderId":"ORD1","paymentMethod":"cash"}`, userToken(t, 7))

	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "Payment pending", body["message"])
	assert.Contains(t, body, "transactionId")
	assert.Nil(t, body["transactionId"])
}

func TestProcessPayment_AlreadyPaid(t *testing.T) {
	ts := newTestServer(t)
	ts.payment.On("Handle", mock.Anything, mock.Anything).
		Return(commands.ProcessPaymentResult{}, errs.NewConflictErrorWithCause("payment", payment.ErrAlreadyPaid)).Once()

	status, body := ts.do(t, http.MethodPost, "/api/v1/payments/process",
		`{"orderId":"ORD1","paymentMethod":"upi"}`, userToken(t, 7))

	assert.Equal(t, http.StatusConflict, status)
	assert.Equal(t, "Payment already completed", body["message"])
}

func TestSubmitReview(t *testing.T) {
	ts := newTestServer(t)
	ts.submitReview.On("Handle", mock.Anything, mock.Anything).Return(nil).Once()

	status, body := ts.do(t, http.MethodPost, "/api/v1/reviews/restaurant",
		`{"orderId":"ORD1","restaurantRating":5,"foodRating":4,"deliveryRating":4,"comment":"hot and fresh"}`,
		userToken(t, 7))

	assert.Equal(t, http.StatusCreated, status)
	assert.Equal(t, "Review added successfully", body["message"])
}

func TestSubmitReview_ValidationErrorsAreListed(t *testing.T) {
	ts := newTestServer(t)

	status, body := ts.do(t, http.MethodPost, "/api/v1/reviews/restaurant",
		`{"restaurantRating":5,"foodRating":0,"deliveryRating":6}`, userToken(t, 7))

	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "Validation Error", body["message"])
	details, ok := body["errors"].([]any)
	require.True(t, ok)
	assert.Len(t, details, 3)
	assert.Contains(t, details, "orderId is required")
	assert.Contains(t, details, "foodRating must be between 1 and 5")
	ts.submitReview.AssertNotCalled(t, "Handle", mock.Anything, mock.Anything)
}

func TestSubmitReview_NotDelivered(t *testing.T) {
	ts := newTestServer(t)
	ts.submitReview.On("Handle", mock.Anything, mock.Anything).
		Return(errs.NewValueIsInvalidErrorWithCause("orderStatus", review.ErrOrderNotDelivered)).Once()

	status, body := ts.do(t, http.MethodPost, "/api/v1/reviews/restaurant",
		`{"orderId":"ORD1","restaurantRating":5,"foodRating":4,"deliveryRating":4}`, userToken(t, 7))

	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "You can only review delivered orders", body["message"])
}

func TestGetRestaurantReviews_IsPublic(t *testing.T) {
	ts := newTestServer(t)
	ts.reviews.On("Handle", mock.Anything, mock.Anything).Return(queries.GetRestaurantReviewsQueryResponse{
		Reviews: []queries.ReviewEntry{{ID: 1, OrderID: "ORD1", UserName: "Asha Rao", RestaurantRating: 5, FoodRating: 4, DeliveryRating: 3}},
		Statistics: review.Statistics{
			TotalReviews:      1,
			AverageRestaurant: decimal.NewFromInt(5),
			AverageFood:       decimal.NewFromInt(4),
			AverageDelivery:   decimal.NewFromInt(3),
			Distribution:      map[int]int{1: 0, 2: 0, 3: 0, 4: 0, 5: 1},
		},
	}, nil).Once()

	status, body := ts.do(t, http.MethodGet, "/api/v1/reviews/restaurant/3", "", "")

	assert.Equal(t, http.StatusOK, status)
	stats := body["statistics"].(map[string]any)
	assert.InDelta(t, 1, stats["totalReviews"], 0)
	assert.InDelta(t, 5, stats["averageRating"].(map[string]any)["restaurant"], 0)
	distribution := stats["ratingDistribution"].(map[string]any)
	assert.InDelta(t, 1, distribution["5"], 0)
	assert.InDelta(t, 0, distribution["1"], 0)
	assert.Len(t, body["reviews"], 1)
}

func TestGetRestaurantReviews_BadID(t *testing.T) {
	ts := newTestServer(t)

	status, body := ts.do(t, http.MethodGet, "/api/v1/reviews/restaurant/abc", "", "")

	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "restaurantId must be a positive integer", body["message"])
}

func TestUnexpectedErrorIsHidden(t *testing.T) {
	ts := newTestServer(t)
	ts.getCart.On("Handle", mock.Anything, mock.Anything).
		Return(queries.GetCartQueryResponse{}, errors.New("pq: connection reset by peer")).Once()

	status, body := ts.do(t, http.MethodGet, "/api/v1/cart", "", userToken(t, 7))

	assert.Equal(t, http.StatusInternalServerError, status)
	assert.Equal(t, "Internal server error", body["message"])
}

func TestUnknownRoute(t *testing.T) {
	ts := newTestServer(t)

	status, body := ts.do(t, http.MethodGet, "/api/v1/unknown", "", "")

	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, false, body["success"])
}
