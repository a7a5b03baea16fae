package registry_service_api

import (
	"context"
	"errors"

	"github.com/Domenick1991/airportregistry/internal/domain"
	"github.com/Domenick1991/airportregistry/internal/repository"
	"github.com/Domenick1991/airportregistry/internal/service/airports"
	"github.com/Domenick1991/airportregistry/internal/service/booking"
	"github.com/Domenick1991/airportregistry/internal/service/flights"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

const (
	resultSuccess = "SUCCESS"
	notFoundValue = -1
)

type Server struct {
	airports airports.AirportUseCase
	flights  flights.FlightUseCase
	bookings booking.BookingUseCase
}

var _ RegistryServiceServer = (*Server)(nil)

func NewServer(airportService airports.AirportUseCase, flightService flights.FlightUseCase, bookingService booking.BookingUseCase) *Server {
	return &Server{
		airports: airportService,
		flights:  flightService,
		bookings: bookingService,
	}
}

func success() *wrapperspb.StringValue {
	return wrapperspb.String(resultSuccess)
}

func (s *Server) AddAirport(ctx context.Context, req *structpb.Struct) (*wrapperspb.StringValue, error) {
	name, err := stringField(req, "airport_name")
	if err != nil {
		return nil, err
	}
	terminals, err := intField(req, "no_of_terminals")
	if err != nil {
		return nil, err
	}
	cityName, err := stringField(req, "city")
	if err != nil {
		return nil, err
	}

	airport := &domain.Airport{Name: name, Terminals: int(terminals)}
	if cityName != "" {
		if airport.City, err = domain.ParseCity(cityName); err != nil {
			return nil, invalidArgument("%v", err)
		}
	}
	if err := s.airports.AddAirport(ctx, airport); err != nil {
		return nil, toStatus(err)
	}
	return success(), nil
}

func (s *Server) LargestAirport(ctx context.Context, _ *emptypb.Empty) (*wrapperspb.StringValue, error) {
	name, err := s.airports.LargestAirportName(ctx)
	if err != nil {
		return nil, toStatus(err)
	}
	return wrapperspb.String(name), nil
}

func (s *Server) AddFlight(ctx context.Context, req *structpb.Struct) (*wrapperspb.StringValue, error) {
	id, err := intField(req, "flight_id")
	if err != nil {
		return nil, err
	}
	from, to, err := route(req)
	if err != nil {
		return nil, err
	}
	duration, err := numberField(req, "duration")
	if err != nil {
		return nil, err
	}
	capacity, err := intField(req, "max_capacity")
	if err != nil {
		return nil, err
	}
	rawDate, err := stringField(req, "flight_date")
	if err != nil {
		return nil, err
	}

	flight := &domain.Flight{
		ID:          id,
		FromCity:    from,
		ToCity:      to,
		Duration:    duration,
		MaxCapacity: int(capacity),
	}
	if rawDate != "" {
		if flight.Date, err = domain.ParseDate(rawDate); err != nil {
			return nil, invalidArgument("invalid flight_date %q", rawDate)
		}
	}
	if err := s.flights.AddFlight(ctx, flight); err != nil {
		return nil, toStatus(err)
	}
	return success(), nil
}

func (s *Server) AddPassenger(ctx context.Context, req *structpb.Struct) (*wrapperspb.StringValue, error) {
	id, err := intField(req, "passenger_id")
	if err != nil {
		return nil, err
	}
	age, err := intField(req, "age")
	if err != nil {
		return nil, err
	}
	name, err := stringField(req, "name")
	if err != nil {
		return nil, err
	}
	email, err := stringField(req, "email")
	if err != nil {
		return nil, err
	}

	passenger := &domain.Passenger{ID: id, Name: name, Email: email, Age: int(age)}
	if err := s.bookings.AddPassenger(ctx, passenger); err != nil {
		return nil, toStatus(err)
	}
	return success(), nil
}

// ShortestDuration answers -1 when no flight serves the route.
func (s *Server) ShortestDuration(ctx context.Context, req *structpb.Struct) (*wrapperspb.DoubleValue, error) {
	from, to, err := route(req)
	if err != nil {
		return nil, err
	}
	d, err := s.flights.ShortestDuration(ctx, from, to)
	switch {
	case errors.Is(err, repository.ErrNotFound):
		d = notFoundValue
	case err != nil:
		return nil, toStatus(err)
	}
	return wrapperspb.Double(d), nil
}

func (s *Server) PeopleCount(ctx context.Context, req *structpb.Struct) (*wrapperspb.Int64Value, error) {
	rawDate, err := stringField(req, "date")
	if err != nil {
		return nil, err
	}
	date, err := domain.ParseDate(rawDate)
	if err != nil {
		return nil, invalidArgument("invalid date %q", rawDate)
	}
	airportName, err := stringField(req, "airport_name")
	if err != nil {
		return nil, err
	}
	return wrapperspb.Int64(int64(s.flights.PeopleCountOn(ctx, date, airportName))), nil
}

func (s *Server) CalculateFare(ctx context.Context, req *wrapperspb.Int64Value) (*wrapperspb.Int64Value, error) {
	return amount(ctx, req.GetValue(), s.bookings.Fare)
}

func (s *Server) CalculateRevenue(ctx context.Context, req *wrapperspb.Int64Value) (*wrapperspb.Int64Value, error) {
	return amount(ctx, req.GetValue(), s.bookings.Revenue)
}

func (s *Server) BookTicket(ctx context.Context, req *structpb.Struct) (*wrapperspb.StringValue, error) {
	flightID, passengerID, err := bookingKey(req)
	if err != nil {
		return nil, err
	}
	if err := s.bookings.BookTicket(ctx, flightID, passengerID); err != nil {
		return nil, toStatus(err)
	}
	return success(), nil
}

func (s *Server) CancelTicket(ctx context.Context, req *structpb.Struct) (*wrapperspb.StringValue, error) {
	flightID, passengerID, err := bookingKey(req)
	if err != nil {
		return nil, err
	}
	if err := s.bookings.CancelTicket(ctx, flightID, passengerID); err != nil {
		return nil, toStatus(err)
	}
	return success(), nil
}

func (s *Server) BookingCount(ctx context.Context, req *wrapperspb.Int64Value) (*wrapperspb.Int64Value, error) {
	return wrapperspb.Int64(int64(s.bookings.BookingCount(ctx, req.GetValue()))), nil
}

func (s *Server) DepartureAirport(ctx context.Context, req *wrapperspb.Int64Value) (*wrapperspb.StringValue, error) {
	name, err := s.flights.DepartureAirportName(ctx, req.GetValue())
	if err != nil {
		return nil, toStatus(err)
	}
	return wrapperspb.String(name), nil
}

func amount(ctx context.Context, flightID int64, get func(context.Context, int64) (int, error)) (*wrapperspb.Int64Value, error) {
	v, err := get(ctx, flightID)
	switch {
	case errors.Is(err, repository.ErrNotFound):
		v = notFoundValue
	case err != nil:
		return nil, toStatus(err)
	}
	return wrapperspb.Int64(int64(v)), nil
}

func route(req *structpb.Struct) (domain.City, domain.City, error) {
	rawFrom, err := stringField(req, "from_city")
	if err != nil {
		return "", "", err
	}
	rawTo, err := stringField(req, "to_city")
	if err != nil {
		return "", "", err
	}
	from, err := domain.ParseCity(rawFrom)
	if err != nil {
		return "", "", invalidArgument("%v", err)
	}
	to, err := domain.ParseCity(rawTo)
	if err != nil {
		return "", "", invalidArgument("%v", err)
	}
	return from, to, nil
}

func bookingKey(req *structpb.Struct) (int64, int64, error) {
	flightID, err := intField(req, "flight_id")
	if err != nil {
		return 0, 0, err
	}
	passengerID, err := intField(req, "passenger_id")
	if err != nil {
		return 0, 0, err
	}
	return flightID, passengerID, nil
}
