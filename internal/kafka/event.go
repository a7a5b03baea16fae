package kafka

import (
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/segmentio/kafka-go"
)

const (
	EventTicketBooked    = "ticket_booked"
	EventTicketCancelled = "ticket_cancelled"
)

type BookingEvent struct {
	ID            string    `json:"id"`
	Type          string    `json:"type"`
	FlightID      int64     `json:"flight_id"`
	PassengerID   int64     `json:"passenger_id"`
	PassengerName string    `json:"passenger_name"`
	Email         string    `json:"email"`
	Fare          int       `json:"fare,omitempty"`
	OccurredAt    time.Time `json:"occurred_at"`
}

// Key partitions events by flight.
func (e BookingEvent) Key() string {
	return strconv.FormatInt(e.FlightID, 10)
}

func DecodeBookingEvent(msg kafka.Message) (BookingEvent, error) {
	var event BookingEvent
	if err := json.Unmarshal(msg.Value, &event); err != nil {
		return BookingEvent{}, fmt.Errorf("decode booking event: %w", err)
	}
	if event.Type == "" {
		return BookingEvent{}, fmt.Errorf("decode booking event: missing type")
	}
	return event, nil
}
