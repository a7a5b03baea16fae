package api

import (
	"context"
	"time"

	"github.com/Domenick1991/airportregistry/internal/domain"
	"github.com/stretchr/testify/mock"
)

// MockAirportUseCase is a mock implementation of airports.AirportUseCase
type MockAirportUseCase struct {
	mock.Mock
}

func (m *MockAirportUseCase) AddAirport(ctx context.Context, airport *domain.Airport) error {
	args := m.Called(ctx, airport)
	return args.Error(0)
}

func (m *MockAirportUseCase) LargestAirportName(ctx context.Context) (string, error) {
	args := m.Called(ctx)
	return args.String(0), args.Error(1)
}

// MockFlightUseCase is a mock implementation of flights.FlightUseCase
type MockFlightUseCase struct {
	mock.Mock
}

func (m *MockFlightUseCase) AddFlight(ctx context.Context, flight *domain.Flight) error {
	args := m.Called(ctx, flight)
	return args.Error(0)
}

func (m *MockFlightUseCase) ShortestDuration(ctx context.Context, from, to domain.City) (float64, error) {
	args := m.Called(ctx, from, to)
	return args.Get(0).(float64), args.Error(1)
}

func (m *MockFlightUseCase) DepartureAirportName(ctx context.Context, flightID int64) (string, error) {
	args := m.Called(ctx, flightID)
	return args.String(0), args.Error(1)
}

func (m *MockFlightUseCase) PeopleCountOn(ctx context.Context, date time.Time, airportName string) int {
	args := m.Called(ctx, date, airportName)
	return args.Int(0)
}

// MockBookingUseCase is a mock implementation of booking.BookingUseCase
type MockBookingUseCase struct {
	mock.Mock
}

func (m *MockBookingUseCase) AddPassenger(ctx context.Context, passenger *domain.Passenger) error {
	args := m.Called(ctx, passenger)
	return args.Error(0)
}

func (m *MockBookingUseCase) BookTicket(ctx context.Context, flightID, passengerID int64) error {
	args := m.Called(ctx, flightID, passengerID)
	return args.Error(0)
}

func (m *MockBookingUseCase) CancelTicket(ctx context.Context, flightID, passengerID int64) error {
	args := m.Called(ctx, flightID, passengerID)
	return args.Error(0)
}

func (m *MockBookingUseCase) BookingCount(ctx context.Context, passengerID int64) int {
	args := m.Called(ctx, passengerID)
	return args.Int(0)
}

func (m *MockBookingUseCase) Fare(ctx context.Context, flightID int64) (int, error) {
	args := m.Called(ctx, flightID)
	return args.Int(0), args.Error(1)
}

func (m *MockBookingUseCase) Revenue(ctx context.Context, flightID int64) (int, error) {
	args := m.Called(ctx, flightID)
	return args.Int(0), args.Error(1)
}

func (m *MockBookingUseCase) Passengers(ctx context.Context, flightID int64) ([]int64, error) {
	args := m.Called(ctx, flightID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]int64), args.Error(1)
}
