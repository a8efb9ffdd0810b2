package kafka

import (
	"encoding/json"
	"time"

	"fooddelivery/internal/core/domain/model/order"

	"github.com/segmentio/kafka-go"
)

const eventTypeHeader = "event-type"

// statusChangedMessage is the wire format of order.StatusChanged.
type statusChangedMessage struct {
	EventID       string    `json:"eventId"`
	OrderID       string    `json:"orderId"`
	UserID        int64     `json:"userId"`
	RestaurantID  int64     `json:"restaurantId"`
	Status        string    `json:"status"`
	PaymentStatus string    `json:"paymentStatus"`
	OccurredAt    time.Time `json:"occurredAt"`
}

func buildMessage(event order.StatusChanged) (kafka.Message, error) {
	value, err := json.Marshal(statusChangedMessage{
		EventID:       event.EventID.String(),
		OrderID:       event.OrderID,
		UserID:        event.UserID,
		RestaurantID:  event.RestaurantID,
		Status:        event.Status.String(),
		PaymentStatus: event.PaymentStatus.String(),
		OccurredAt:    event.OccurredAt.UTC(),
	})
	if err != nil {
		return kafka.Message{}, err
	}

	return kafka.Message{
		Key:   []byte(event.OrderID),
		Value: value,
		Time:  event.OccurredAt,
		Headers: []kafka.Header{
			{Key: eventTypeHeader, Value: []byte("order.status_changed")},
		},
	}, nil
}
