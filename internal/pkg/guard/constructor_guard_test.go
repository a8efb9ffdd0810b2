package guard_test

import (
	"errors"
	"testing"

	"fooddelivery/internal/pkg/guard"

	"github.com/stretchr/testify/assert"
)

var errTicketIsNotConstructed = errors.New("ticket must be created via newTicket")

type ticket struct {
	number int
	guard  guard.ConstructorGuard
}

func newTicket(number int) ticket {
	return ticket{number: number, guard: guard.NewConstructorGuard()}
}

func (t ticket) Validate() error {
	return t.guard.Validate(errTicketIsNotConstructed)
}

func TestConstructorGuard(t *testing.T) {
	tests := []struct {
		name   string
		guard  guard.ConstructorGuard
		supply error
		want   error
	}{
		{name: "constructed", guard: guard.NewConstructorGuard(), supply: errTicketIsNotConstructed},
		{name: "constructed without error", guard: guard.NewConstructorGuard()},
		{name: "zero value", supply: errTicketIsNotConstructed, want: errTicketIsNotConstructed},
		{name: "zero value without error", want: guard.ErrDefaultConstructorGuard},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.guard.Validate(tt.supply)
			if tt.want == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestConstructorGuard_Embedded(t *testing.T) {
	assert.NoError(t, newTicket(1).Validate())
	assert.ErrorIs(t, ticket{number: 1}.Validate(), errTicketIsNotConstructed)

	// copies keep the mark
	copied := newTicket(2)
	assert.NoError(t, copied.Validate())
}
