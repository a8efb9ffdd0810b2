package kernel

import (
	"crypto/rand"
	"io"
	"strconv"
	"strings"
	"time"
)

const base36Alphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// Base36Millis returns the Unix milliseconds of t in uppercase base 36.
func Base36Millis(t time.Time) string {
	return strings.ToUpper(strconv.FormatInt(t.UnixMilli(), 36))
}

// RandomBase36 returns n uppercase base-36 characters drawn from random.
// A nil random falls back to crypto/rand.
func RandomBase36(random io.Reader, n int) (string, error) {
	if random == nil {
		random = rand.Reader
	}

	buf := make([]byte, n)
	if _, err := io.ReadFull(random, buf); err != nil {
		return "", err
	}

	for i, b := range buf {
		buf[i] = base36Alphabet[int(b)%len(base36Alphabet)]
	}
	return string(buf), nil
}

// NewReference builds "<prefix><base36 millis><5 random base36 chars>", the shape of order
// ids and payment transaction ids.
func NewReference(prefix string, now time.Time, random io.Reader) (string, error) {
	suffix, err := RandomBase36(random, 5)
	if err != nil {
		return "", err
	}
	return prefix + Base36Millis(now) + suffix, nil
}
