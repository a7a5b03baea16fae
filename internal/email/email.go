package email

import (
	"context"
	"log/slog"

	"github.com/Domenick1991/airportregistry/internal/kafka"
)

// Sender delivers booking notifications. Delivery is a structured log line;
// no mail transport is wired.
type Sender struct {
	logger *slog.Logger
}

func NewSender(logger *slog.Logger) *Sender {
	return &Sender{logger: logger}
}

func (s *Sender) Send(ctx context.Context, event kafka.BookingEvent) error {
	if event.Email == "" {
		s.logger.DebugContext(ctx, "skip notification without email", "passenger_id", event.PassengerID)
		return nil
	}
	s.logger.InfoContext(ctx, "send email",
		"to", event.Email,
		"subject", subject(event.Type),
		"flight_id", event.FlightID,
		"passenger_id", event.PassengerID,
		"fare", event.Fare,
	)
	return nil
}

func subject(eventType string) string {
	switch eventType {
	case kafka.EventTicketBooked:
		return "Your ticket is booked"
	case kafka.EventTicketCancelled:
		return "Your ticket was cancelled"
	default:
		return "Booking update"
	}
}
