package email

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/Domenick1991/airportregistry/internal/kafka"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSender_Send(t *testing.T) {
	var buf bytes.Buffer
	sender := NewSender(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))

	err := sender.Send(context.Background(), kafka.BookingEvent{
		Type:        kafka.EventTicketCancelled,
		FlightID:    3,
		PassengerID: 9,
		Email:       "asha@example.com",
	})
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "to=asha@example.com")
	assert.Contains(t, buf.String(), `subject="Your ticket was cancelled"`)
}

func TestSender_SendWithoutEmail(t *testing.T) {
	var buf bytes.Buffer
	sender := NewSender(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))

	require.NoError(t, sender.Send(context.Background(), kafka.BookingEvent{Type: kafka.EventTicketBooked, PassengerID: 9}))
	assert.Contains(t, buf.String(), "skip notification")
	assert.NotContains(t, buf.String(), "send email")
}
