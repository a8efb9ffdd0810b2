package http

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"fooddelivery/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
)

func TestDescribe(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		status  int
		message string
		details []string
	}{
		{
			name:    "not found without cause",
			err:     errs.NewObjectNotFoundError("orderId", "ORD1"),
			status:  http.StatusNotFound,
			message: "orderId not found",
		},
		{
			name:    "wrapped conflict keeps its cause",
			err:     fmt.Errorf("checkout: %w", errs.NewConflictErrorWithCause("cart", errors.New("busy"))),
			status:  http.StatusConflict,
			message: "busy",
		},
		{
			name:    "out of range without cause",
			err:     errs.NewValueIsOutOfRangeError("foodRating", 9, 1, 5),
			status:  http.StatusBadRequest,
			message: "foodRating must be between 1 and 5",
		},
		{
			name: "nested joins are flattened",
			err: errors.Join(
				errs.NewValueIsRequiredError("orderId"),
				errors.Join(errs.NewValueIsOutOfRangeError("foodRating", 0, 1, 5), nil),
			),
			status:  http.StatusBadRequest,
			message: "Validation Error",
			details: []string{"orderId is required", "foodRating must be between 1 and 5"},
		},
		{
			name: "a join with a server failure is a server failure",
			err: errors.Join(
				errs.NewValueIsRequiredError("orderId"),
				errors.New("connection refused"),
			),
			status:  http.StatusInternalServerError,
			message: internalMessage,
		},
		{
			name:    "unknown error",
			err:     errors.New("boom"),
			status:  http.StatusInternalServerError,
			message: internalMessage,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := describe(tt.err)
			assert.Equal(t, tt.status, p.status)
			assert.Equal(t, tt.message, p.message)
			assert.Equal(t, tt.details, p.details)
		})
	}
}

func TestFlatten_TypedErrorIsALeaf(t *testing.T) {
	err := errs.NewValueIsInvalidErrorWithCause("comment", errors.New("too long"))

	assert.Len(t, flatten(err), 1)
}

func TestBearerToken(t *testing.T) {
	token, ok := bearerToken("Bearer abc")
	assert.True(t, ok)
	assert.Equal(t, "abc", token)

	_, ok = bearerToken("Basic abc")
	assert.False(t, ok)

	_, ok = bearerToken("Bearer ")
	assert.False(t, ok)
}
