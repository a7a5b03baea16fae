package flights

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/Domenick1991/airportregistry/internal/domain"
	"github.com/Domenick1991/airportregistry/internal/repository"
)

type FlightUseCase interface {
	AddFlight(ctx context.Context, flight *domain.Flight) error
	ShortestDuration(ctx context.Context, from, to domain.City) (float64, error)
	DepartureAirportName(ctx context.Context, flightID int64) (string, error)
	PeopleCountOn(ctx context.Context, date time.Time, airportName string) int
}

// QueryCache mirrors airports.QueryCache; both are satisfied by cache.RedisCache.
type QueryCache interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
}

type FlightService struct {
	repo   repository.FlightRepository
	cache  QueryCache
	logger *slog.Logger
}

type FlightServiceOption func(*FlightService)

func WithQueryCache(cache QueryCache) FlightServiceOption {
	return func(s *FlightService) {
		s.cache = cache
	}
}

func WithLogger(logger *slog.Logger) FlightServiceOption {
	return func(s *FlightService) {
		s.logger = logger
	}
}

func NewFlightService(repo repository.FlightRepository, opts ...FlightServiceOption) *FlightService {
	service := &FlightService{
		repo:   repo,
		logger: slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(service)
	}
	return service
}

// AddFlight replaces any flight with the same id. Existing bookings on that
// id are kept even if they exceed the new capacity.
func (s *FlightService) AddFlight(ctx context.Context, flight *domain.Flight) error {
	if err := s.repo.AddFlight(flight); err != nil {
		return err
	}
	s.logger.DebugContext(ctx, "flight added", "flight_id", flight.ID, "from", flight.FromCity, "to", flight.ToCity)
	return nil
}

func (s *FlightService) ShortestDuration(ctx context.Context, from, to domain.City) (float64, error) {
	key := fmt.Sprintf("shortest-duration:%d:%s:%s", s.repo.FlightRevision(), from, to)
	if s.cache != nil {
		raw, ok, err := s.cache.Get(ctx, key)
		switch {
		case err != nil:
			s.logger.WarnContext(ctx, "query cache read failed", "key", key, "error", err)
		case ok:
			if d, err := strconv.ParseFloat(raw, 64); err == nil {
				return d, nil
			}
			s.logger.WarnContext(ctx, "query cache holds malformed duration", "key", key, "value", raw)
		}
	}

	d, err := s.repo.ShortestDuration(from, to)
	if err != nil {
		return 0, err
	}
	if s.cache != nil {
		if err := s.cache.Set(ctx, key, strconv.FormatFloat(d, 'g', -1, 64)); err != nil {
			s.logger.WarnContext(ctx, "query cache write failed", "key", key, "error", err)
		}
	}
	return d, nil
}

func (s *FlightService) DepartureAirportName(_ context.Context, flightID int64) (string, error) {
	return s.repo.DepartureAirportName(flightID)
}

func (s *FlightService) PeopleCountOn(_ context.Context, date time.Time, airportName string) int {
	return s.repo.PeopleCountOn(date, airportName)
}

var _ FlightUseCase = (*FlightService)(nil)
