package services

import (
	"io"
	"strconv"
	"time"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/payment"
)

const (
	// MinCardNumberLength is the shortest card number the simulated gateway accepts.
	MinCardNumberLength = 16
	// DefaultUPIID is reported when a UPI attempt carries no payer address.
	DefaultUPIID = "user@paytm"
)

// PaymentSimulator stands in for a payment gateway. Outcomes depend only on the method and
// details; the clock and the random source only shape the synthetic references.
type PaymentSimulator struct {
	now    func() time.Time
	random io.Reader
}

// NewPaymentSimulator uses the wall clock and crypto/rand.
func NewPaymentSimulator() PaymentSimulator {
	return PaymentSimulator{now: time.Now}
}

// NewPaymentSimulatorWith injects the clock and random source.
func NewPaymentSimulatorWith(now func() time.Time, random io.Reader) PaymentSimulator {
	return PaymentSimulator{now: now, random: random}
}

// Process simulates one attempt.
//
//   - cash: pending, no transaction id
//   - card: completed with last 4 digits and an authorization code when the card number has
//     at least 16 characters, failed with "Invalid card number" otherwise
//   - upi, wallet: completed with a synthetic reference id
//
// Every non-cash attempt gets a transaction id, failed ones included.
func (s PaymentSimulator) Process(method payment.Method, details payment.Details) (payment.Outcome, error) {
	if err := method.Validate(); err != nil {
		return payment.Outcome{}, err
	}

	now := s.clock()
	millis := strconv.FormatInt(now.UnixMilli(), 10)

	if method == payment.Cash {
		return payment.Outcome{
			Status:          payment.Pending,
			GatewayResponse: map[string]string{"method": "cash", "status": "pending"},
		}, nil
	}

	suffix, err := kernel.RandomBase36(s.random, 5)
	if err != nil {
		return payment.Outcome{}, err
	}
	outcome := payment.Outcome{
		Status:        payment.Completed,
		TransactionID: "TXN" + millis + suffix,
	}

	switch method {
	case payment.Card:
		card := []rune(details.CardNumber)
		if len(card) < MinCardNumberLength {
			outcome.Status = payment.Failed
			outcome.Err = payment.ErrInvalidCardNumber
			outcome.GatewayResponse = map[string]string{"error": payment.ErrInvalidCardNumber.Error()}
			return outcome, nil
		}
		authCode, err := kernel.RandomBase36(s.random, 6)
		if err != nil {
			return payment.Outcome{}, err
		}
		outcome.GatewayResponse = map[string]string{
			"cardLast4": string(card[len(card)-4:]),
			"authCode":  "AUTH" + authCode,
		}
	case payment.UPI:
		upiID := details.UPIID
		if upiID == "" {
			upiID = DefaultUPIID
		}
		outcome.GatewayResponse = map[string]string{"upiId": upiID, "referenceId": "UPI" + millis}
	case payment.Wallet:
		outcome.GatewayResponse = map[string]string{"walletType": "paytm", "walletTxnId": "WALLET" + millis}
	}

	return outcome, nil
}

func (s PaymentSimulator) clock() time.Time {
	if s.now == nil {
		return time.Now()
	}
	return s.now()
}
