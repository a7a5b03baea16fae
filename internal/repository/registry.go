package repository

import (
	"slices"
	"sync"
	"time"

	"github.com/Domenick1991/airportregistry/internal/domain"
)

const (
	// BaseFare is the fare quoted for an empty flight.
	BaseFare = 3000
	// FareStep is added to the quoted fare for every seat already booked.
	FareStep = 50
	// SeatRevenue is the flat amount each booked seat contributes to revenue.
	SeatRevenue = 3000
)

type AirportRepository interface {
	AddAirport(airport *domain.Airport) error
	LargestAirportName() (string, error)
	AirportRevision() uint64
}

type FlightRepository interface {
	AddFlight(flight *domain.Flight) error
	ShortestDuration(from, to domain.City) (float64, error)
	PeopleCountOn(date time.Time, airportName string) int
	DepartureAirportName(flightID int64) (string, error)
	FlightRevision() uint64
}

type BookingRepository interface {
	AddPassenger(passenger *domain.Passenger) error
	Passenger(passengerID int64) (domain.Passenger, error)
	BookTicket(flightID, passengerID int64) (int, error)
	CancelTicket(flightID, passengerID int64) error
	BookingCount(passengerID int64) int
	Fare(flightID int64) (int, error)
	Revenue(flightID int64) (int, error)
	Passengers(flightID int64) ([]int64, error)
}

// Stats is a point-in-time size summary of the registry.
type Stats struct {
	Airports   int
	Flights    int
	Passengers int
	Bookings   int
}

// Registry is the in-memory store of airports, flights, passengers and the
// flight to passenger booking sets. One lock guards all four maps so the
// capacity and no-duplicate invariants hold for every operation.
//
// Flights are overwritten by id without touching their booking set, so
// lowering a flight's capacity below its current occupancy leaves the extra
// bookings in place. Only new bookings are checked against the new capacity.
type Registry struct {
	mu         sync.RWMutex
	airports   map[string]domain.Airport
	flights    map[int64]domain.Flight
	passengers map[int64]domain.Passenger
	bookings   map[int64]map[int64]struct{}

	revision        uint64
	airportRevision uint64
	flightRevision  uint64
}

func NewRegistry() *Registry {
	return &Registry{
		airports:   make(map[string]domain.Airport),
		flights:    make(map[int64]domain.Flight),
		passengers: make(map[int64]domain.Passenger),
		bookings:   make(map[int64]map[int64]struct{}),
	}
}

func (r *Registry) AddAirport(airport *domain.Airport) error {
	if airport == nil {
		return invalid("airport is required")
	}
	if airport.Name == "" {
		return invalid("airport name is required")
	}
	if airport.Terminals < 0 {
		return invalid("terminal count must not be negative")
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.airports[airport.Name] = *airport
	r.revision++
	r.airportRevision++
	return nil
}

func (r *Registry) AddFlight(flight *domain.Flight) error {
	if flight == nil {
		return invalid("flight is required")
	}
	if flight.ID == 0 {
		return invalid("flight id is required")
	}
	if !flight.FromCity.Valid() || !flight.ToCity.Valid() {
		return invalid("flight %d has unknown city", flight.ID)
	}
	if flight.MaxCapacity <= 0 {
		return invalid("max capacity must be positive")
	}

	f := *flight
	f.Date = domain.TruncateDay(f.Date)

	r.mu.Lock()
	defer r.mu.Unlock()
	r.flights[f.ID] = f
	r.revision++
	r.flightRevision++
	return nil
}

func (r *Registry) AddPassenger(passenger *domain.Passenger) error {
	if passenger == nil {
		return invalid("passenger is required")
	}
	if passenger.ID <= 0 {
		return invalid("passenger id must be positive")
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.passengers[passenger.ID] = *passenger
	r.revision++
	return nil
}

func (r *Registry) Passenger(passengerID int64) (domain.Passenger, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.passengers[passengerID]
	if !ok {
		return domain.Passenger{}, ErrPassengerNotFound
	}
	return p, nil
}

// LargestAirportName returns the airport with the most terminals. Ties go to
// the lexicographically smallest name.
func (r *Registry) LargestAirportName() (string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var (
		name  string
		most  int
		found bool
	)
	for _, a := range r.airports {
		if !found || a.Terminals > most || (a.Terminals == most && a.Name < name) {
			name, most, found = a.Name, a.Terminals, true
		}
	}
	if !found {
		return "", ErrAirportNotFound
	}
	return name, nil
}

// ShortestDuration only considers direct flights from one city to the other.
func (r *Registry) ShortestDuration(from, to domain.City) (float64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var (
		shortest float64
		found    bool
	)
	for _, f := range r.flights {
		if f.FromCity != from || f.ToCity != to {
			continue
		}
		if !found || f.Duration < shortest {
			shortest, found = f.Duration, true
		}
	}
	if !found {
		return 0, ErrRouteNotFound
	}
	return shortest, nil
}

// PeopleCountOn sums bookings over flights on date whose origin or
// destination city display name equals airportName.
func (r *Registry) PeopleCountOn(date time.Time, airportName string) int {
	day := domain.TruncateDay(date)

	r.mu.RLock()
	defer r.mu.RUnlock()

	count := 0
	for id, f := range r.flights {
		if !f.Date.Equal(day) {
			continue
		}
		if f.FromCity.String() == airportName || f.ToCity.String() == airportName {
			count += len(r.bookings[id])
		}
	}
	return count
}

func (r *Registry) Fare(flightID int64) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if _, ok := r.flights[flightID]; !ok {
		return 0, ErrFlightNotFound
	}
	return BaseFare + FareStep*len(r.bookings[flightID]), nil
}

func (r *Registry) Revenue(flightID int64) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if _, ok := r.flights[flightID]; !ok {
		return 0, ErrFlightNotFound
	}
	return SeatRevenue * len(r.bookings[flightID]), nil
}

// BookTicket returns the fare the passenger paid, quoted from the occupancy
// before the seat was taken.
func (r *Registry) BookTicket(flightID, passengerID int64) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	flight, ok := r.flights[flightID]
	if !ok {
		return 0, ErrFlightNotFound
	}
	if _, ok := r.passengers[passengerID]; !ok {
		return 0, ErrPassengerNotFound
	}
	booked := r.bookings[flightID]
	if _, ok := booked[passengerID]; ok {
		return 0, ErrAlreadyBooked
	}
	if len(booked) >= flight.MaxCapacity {
		return 0, ErrFlightFull
	}
	fare := BaseFare + FareStep*len(booked)
	if booked == nil {
		booked = make(map[int64]struct{})
		r.bookings[flightID] = booked
	}
	booked[passengerID] = struct{}{}
	r.revision++
	return fare, nil
}

func (r *Registry) CancelTicket(flightID, passengerID int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.flights[flightID]; !ok {
		return ErrFlightNotFound
	}
	if _, ok := r.passengers[passengerID]; !ok {
		return ErrPassengerNotFound
	}
	booked := r.bookings[flightID]
	if _, ok := booked[passengerID]; !ok {
		return ErrNotBooked
	}
	delete(booked, passengerID)
	r.revision++
	return nil
}

// BookingCount is the number of distinct flights the passenger is booked on.
func (r *Registry) BookingCount(passengerID int64) int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	count := 0
	for _, booked := range r.bookings {
		if _, ok := booked[passengerID]; ok {
			count++
		}
	}
	return count
}

func (r *Registry) DepartureAirportName(flightID int64) (string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	f, ok := r.flights[flightID]
	if !ok {
		return "", ErrFlightNotFound
	}
	return f.FromCity.String(), nil
}

// Passengers returns the ids booked on a flight in ascending order.
func (r *Registry) Passengers(flightID int64) ([]int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if _, ok := r.flights[flightID]; !ok {
		return nil, ErrFlightNotFound
	}
	ids := make([]int64, 0, len(r.bookings[flightID]))
	for id := range r.bookings[flightID] {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids, nil
}

// Revision increases on every successful mutation.
func (r *Registry) Revision() uint64 {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.revision
}

// AirportRevision increases only when an airport is added or replaced.
func (r *Registry) AirportRevision() uint64 {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.airportRevision
}

// FlightRevision increases only when a flight is added or replaced.
func (r *Registry) FlightRevision() uint64 {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.flightRevision
}

func (r *Registry) Stats() Stats {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s := Stats{
		Airports:   len(r.airports),
		Flights:    len(r.flights),
		Passengers: len(r.passengers),
	}
	for _, booked := range r.bookings {
		s.Bookings += len(booked)
	}
	return s
}

var (
	_ AirportRepository = (*Registry)(nil)
	_ FlightRepository  = (*Registry)(nil)
	_ BookingRepository = (*Registry)(nil)
)
