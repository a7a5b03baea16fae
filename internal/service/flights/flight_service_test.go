package flights

import (
	"context"
	"testing"
	"time"

	"github.com/Domenick1991/airportregistry/internal/domain"
	"github.com/Domenick1991/airportregistry/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockFlightRepository struct {
	mock.Mock
}

func (m *MockFlightRepository) AddFlight(flight *domain.Flight) error {
	args := m.Called(flight)
	return args.Error(0)
}

func (m *MockFlightRepository) ShortestDuration(from, to domain.City) (float64, error) {
	args := m.Called(from, to)
	return args.Get(0).(float64), args.Error(1)
}

func (m *MockFlightRepository) PeopleCountOn(date time.Time, airportName string) int {
	args := m.Called(date, airportName)
	return args.Int(0)
}

func (m *MockFlightRepository) DepartureAirportName(flightID int64) (string, error) {
	args := m.Called(flightID)
	return args.String(0), args.Error(1)
}

func (m *MockFlightRepository) FlightRevision() uint64 {
	args := m.Called()
	return args.Get(0).(uint64)
}

type MockQueryCache struct {
	mock.Mock
}

func (m *MockQueryCache) Get(ctx context.Context, key string) (string, bool, error) {
	args := m.Called(ctx, key)
	return args.String(0), args.Bool(1), args.Error(2)
}

func (m *MockQueryCache) Set(ctx context.Context, key, value string) error {
	args := m.Called(ctx, key, value)
	return args.Error(0)
}

func TestFlightService_AddFlight(t *testing.T) {
	repo := &MockFlightRepository{}
	service := NewFlightService(repo)

	flight := &domain.Flight{ID: 1, FromCity: domain.CityDelhi, ToCity: domain.CityMumbai, Duration: 2.5, MaxCapacity: 2}
	repo.On("AddFlight", flight).Return(nil).Once()

	assert.NoError(t, service.AddFlight(context.Background(), flight))
	repo.AssertExpectations(t)
}

func TestFlightService_ShortestDuration_CacheMiss(t *testing.T) {
	repo := &MockFlightRepository{}
	cache := &MockQueryCache{}
	service := NewFlightService(repo, WithQueryCache(cache))
	ctx := context.Background()

	key := "shortest-duration:4:DELHI:MUMBAI"
	repo.On("FlightRevision").Return(uint64(4)).Once()
	cache.On("Get", ctx, key).Return("", false, nil).Once()
	repo.On("ShortestDuration", domain.CityDelhi, domain.CityMumbai).Return(1.75, nil).Once()
	cache.On("Set", ctx, key, "1.75").Return(nil).Once()

	d, err := service.ShortestDuration(ctx, domain.CityDelhi, domain.CityMumbai)
	require.NoError(t, err)
	assert.Equal(t, 1.75, d)
	repo.AssertExpectations(t)
	cache.AssertExpectations(t)
}

func TestFlightService_ShortestDuration_CacheHit(t *testing.T) {
	repo := &MockFlightRepository{}
	cache := &MockQueryCache{}
	service := NewFlightService(repo, WithQueryCache(cache))
	ctx := context.Background()

	repo.On("FlightRevision").Return(uint64(4)).Once()
	cache.On("Get", ctx, "shortest-duration:4:DELHI:MUMBAI").Return("2", true, nil).Once()

	d, err := service.ShortestDuration(ctx, domain.CityDelhi, domain.CityMumbai)
	require.NoError(t, err)
	assert.Equal(t, 2.0, d)
	repo.AssertNotCalled(t, "ShortestDuration", mock.Anything, mock.Anything)
}

func TestFlightService_ShortestDuration_MalformedCacheEntry(t *testing.T) {
	repo := &MockFlightRepository{}
	cache := &MockQueryCache{}
	service := NewFlightService(repo, WithQueryCache(cache))
	ctx := context.Background()

	key := "shortest-duration:4:DELHI:MUMBAI"
	repo.On("FlightRevision").Return(uint64(4)).Once()
	cache.On("Get", ctx, key).Return("abc", true, nil).Once()
	repo.On("ShortestDuration", domain.CityDelhi, domain.CityMumbai).Return(3.0, nil).Once()
	cache.On("Set", ctx, key, "3").Return(nil).Once()

	d, err := service.ShortestDuration(ctx, domain.CityDelhi, domain.CityMumbai)
	require.NoError(t, err)
	assert.Equal(t, 3.0, d)
}

func TestFlightService_ShortestDuration_NoRoute(t *testing.T) {
	repo := &MockFlightRepository{}
	service := NewFlightService(repo)

	repo.On("FlightRevision").Return(uint64(0)).Once()
	repo.On("ShortestDuration", domain.CityDelhi, domain.CityMumbai).Return(0.0, repository.ErrRouteNotFound).Once()

	_, err := service.ShortestDuration(context.Background(), domain.CityDelhi, domain.CityMumbai)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestFlightService_DepartureAndPeopleCount(t *testing.T) {
	repo := &MockFlightRepository{}
	service := NewFlightService(repo)
	ctx := context.Background()
	day := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

	repo.On("DepartureAirportName", int64(1)).Return("DELHI", nil).Once()
	repo.On("PeopleCountOn", day, "DELHI").Return(4).Once()

	name, err := service.DepartureAirportName(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "DELHI", name)
	assert.Equal(t, 4, service.PeopleCountOn(ctx, day, "DELHI"))
	repo.AssertExpectations(t)
}
