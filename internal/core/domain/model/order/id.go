package order

import (
	"io"
	"time"

	"fooddelivery/internal/core/domain/model/kernel"
)

// IDPrefix starts every order id.
const IDPrefix = "ORD"

// NewID returns "ORD" + base-36 Unix millis + five random characters, all uppercase.
// A nil random uses crypto/rand.
func NewID(now time.Time, random io.Reader) (string, error) {
	return kernel.NewReference(IDPrefix, now, random)
}
