package airports

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/Domenick1991/airportregistry/internal/domain"
	"github.com/Domenick1991/airportregistry/internal/repository"
)

type AirportUseCase interface {
	AddAirport(ctx context.Context, airport *domain.Airport) error
	LargestAirportName(ctx context.Context) (string, error)
}

type QueryCache interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
}

type AirportService struct {
	repo   repository.AirportRepository
	cache  QueryCache
	logger *slog.Logger
}

type AirportServiceOption func(*AirportService)

func WithQueryCache(cache QueryCache) AirportServiceOption {
	return func(s *AirportService) {
		s.cache = cache
	}
}

func WithLogger(logger *slog.Logger) AirportServiceOption {
	return func(s *AirportService) {
		s.logger = logger
	}
}

func NewAirportService(repo repository.AirportRepository, opts ...AirportServiceOption) *AirportService {
	service := &AirportService{
		repo:   repo,
		logger: slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(service)
	}
	return service
}

func (s *AirportService) AddAirport(ctx context.Context, airport *domain.Airport) error {
	if err := s.repo.AddAirport(airport); err != nil {
		return err
	}
	s.logger.DebugContext(ctx, "airport added", "name", airport.Name, "terminals", airport.Terminals)
	return nil
}

func (s *AirportService) LargestAirportName(ctx context.Context) (string, error) {
	key := fmt.Sprintf("largest-airport:%d", s.repo.AirportRevision())
	if s.cache != nil {
		name, ok, err := s.cache.Get(ctx, key)
		if err != nil {
			s.logger.WarnContext(ctx, "query cache read failed", "key", key, "error", err)
		} else if ok {
			return name, nil
		}
	}

	name, err := s.repo.LargestAirportName()
	if err != nil {
		return "", err
	}
	if s.cache != nil {
		if err := s.cache.Set(ctx, key, name); err != nil {
			s.logger.WarnContext(ctx, "query cache write failed", "key", key, "error", err)
		}
	}
	return name, nil
}

var _ AirportUseCase = (*AirportService)(nil)
