package booking

import (
	"context"
	"log/slog"
	"time"

	"github.com/Domenick1991/airportregistry/internal/domain"
	"github.com/Domenick1991/airportregistry/internal/kafka"
	"github.com/Domenick1991/airportregistry/internal/repository"
	"github.com/google/uuid"
)

type BookingUseCase interface {
	AddPassenger(ctx context.Context, passenger *domain.Passenger) error
	BookTicket(ctx context.Context, flightID, passengerID int64) error
	CancelTicket(ctx context.Context, flightID, passengerID int64) error
	BookingCount(ctx context.Context, passengerID int64) int
	Fare(ctx context.Context, flightID int64) (int, error)
	Revenue(ctx context.Context, flightID int64) (int, error)
	Passengers(ctx context.Context, flightID int64) ([]int64, error)
}

type Producer interface {
	Publish(ctx context.Context, topic, key string, value any) error
}

type BookingService struct {
	repo               repository.BookingRepository
	producer           Producer
	bookingTopic       string
	notificationsTopic string
	logger             *slog.Logger
	now                func() time.Time
}

type BookingServiceOption func(*BookingService)

// WithEvents publishes a BookingEvent to topic after every booking change.
func WithEvents(producer Producer, topic string) BookingServiceOption {
	return func(s *BookingService) {
		s.producer = producer
		s.bookingTopic = topic
	}
}

func WithNotificationsTopic(topic string) BookingServiceOption {
	return func(s *BookingService) {
		s.notificationsTopic = topic
	}
}

func WithLogger(logger *slog.Logger) BookingServiceOption {
	return func(s *BookingService) {
		s.logger = logger
	}
}

func NewBookingService(repo repository.BookingRepository, opts ...BookingServiceOption) *BookingService {
	service := &BookingService{
		repo:   repo,
		logger: slog.New(slog.DiscardHandler),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(service)
	}
	return service
}

func (s *BookingService) AddPassenger(ctx context.Context, passenger *domain.Passenger) error {
	if err := s.repo.AddPassenger(passenger); err != nil {
		return err
	}
	s.logger.DebugContext(ctx, "passenger added", "passenger_id", passenger.ID)
	return nil
}

func (s *BookingService) BookTicket(ctx context.Context, flightID, passengerID int64) error {
	fare, err := s.repo.BookTicket(flightID, passengerID)
	if err != nil {
		return err
	}
	s.logger.InfoContext(ctx, "ticket booked", "flight_id", flightID, "passenger_id", passengerID, "fare", fare)
	if err := s.publish(ctx, kafka.EventTicketBooked, flightID, passengerID, fare); err != nil {
		s.logger.WarnContext(ctx, "failed to publish booking event", "type", kafka.EventTicketBooked, "flight_id", flightID, "error", err)
	}
	return nil
}

func (s *BookingService) CancelTicket(ctx context.Context, flightID, passengerID int64) error {
	if err := s.repo.CancelTicket(flightID, passengerID); err != nil {
		return err
	}
	s.logger.InfoContext(ctx, "ticket cancelled", "flight_id", flightID, "passenger_id", passengerID)
	if err := s.publish(ctx, kafka.EventTicketCancelled, flightID, passengerID, 0); err != nil {
		s.logger.WarnContext(ctx, "failed to publish booking event", "type", kafka.EventTicketCancelled, "flight_id", flightID, "error", err)
	}
	return nil
}

func (s *BookingService) BookingCount(_ context.Context, passengerID int64) int {
	return s.repo.BookingCount(passengerID)
}

func (s *BookingService) Fare(_ context.Context, flightID int64) (int, error) {
	return s.repo.Fare(flightID)
}

func (s *BookingService) Revenue(_ context.Context, flightID int64) (int, error) {
	return s.repo.Revenue(flightID)
}

func (s *BookingService) Passengers(_ context.Context, flightID int64) ([]int64, error) {
	return s.repo.Passengers(flightID)
}

// publish sends the event to the booking topic and, when configured, the
// notifications topic. fare is zero for cancellations.
func (s *BookingService) publish(ctx context.Context, eventType string, flightID, passengerID int64, fare int) error {
	if s.producer == nil || s.bookingTopic == "" {
		return nil
	}

	event := kafka.BookingEvent{
		ID:          uuid.NewString(),
		Type:        eventType,
		FlightID:    flightID,
		PassengerID: passengerID,
		Fare:        fare,
		OccurredAt:  s.now().UTC(),
	}
	// The booking already happened; enrichment is best effort.
	if p, err := s.repo.Passenger(passengerID); err == nil {
		event.PassengerName = p.Name
		event.Email = p.Email
	}

	if err := s.producer.Publish(ctx, s.bookingTopic, event.Key(), event); err != nil {
		return err
	}
	if s.notificationsTopic != "" {
		return s.producer.Publish(ctx, s.notificationsTopic, event.Key(), event)
	}
	return nil
}

var _ BookingUseCase = (*BookingService)(nil)
