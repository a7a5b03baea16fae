package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/Domenick1991/airportregistry/internal/domain"
	"github.com/Domenick1991/airportregistry/internal/repository"
	"github.com/Domenick1991/airportregistry/internal/service/flights"
	"github.com/gin-gonic/gin"
)

type FlightHandler struct {
	service flights.FlightUseCase
}

type flightRequest struct {
	FlightID    int64   `json:"flight_id"`
	FromCity    string  `json:"from_city"`
	ToCity      string  `json:"to_city"`
	FlightDate  string  `json:"flight_date"`
	Duration    float64 `json:"duration"`
	MaxCapacity int     `json:"max_capacity"`
}

func NewFlightHandler(service flights.FlightUseCase) *FlightHandler {
	return &FlightHandler{service: service}
}

func (h *FlightHandler) Register(router *gin.RouterGroup) {
	router.POST("/flights", h.create)
	router.GET("/flights/shortest-duration", h.shortestDuration)
	router.GET("/flights/:id/departure-airport", h.departureAirport)
	router.GET("/occupancy/:date", h.peopleCount)
}

func (h *FlightHandler) create(c *gin.Context) {
	var req flightRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBadRequest(c, err.Error())
		return
	}

	from, err := domain.ParseCity(req.FromCity)
	if err != nil {
		writeBadRequest(c, err.Error())
		return
	}
	to, err := domain.ParseCity(req.ToCity)
	if err != nil {
		writeBadRequest(c, err.Error())
		return
	}
	var date time.Time
	if req.FlightDate != "" {
		if date, err = domain.ParseDate(req.FlightDate); err != nil {
			writeBadRequest(c, "invalid flight_date")
			return
		}
	}

	flight := &domain.Flight{
		ID:          req.FlightID,
		FromCity:    from,
		ToCity:      to,
		Date:        date,
		Duration:    req.Duration,
		MaxCapacity: req.MaxCapacity,
	}
	if err := h.service.AddFlight(c.Request.Context(), flight); err != nil {
		writeFailure(c, err)
		return
	}
	writeSuccess(c, http.StatusCreated)
}

func (h *FlightHandler) shortestDuration(c *gin.Context) {
	from, err := domain.ParseCity(c.Query("from_city"))
	if err != nil {
		writeBadRequest(c, err.Error())
		return
	}
	to, err := domain.ParseCity(c.Query("to_city"))
	if err != nil {
		writeBadRequest(c, err.Error())
		return
	}

	d, err := h.service.ShortestDuration(c.Request.Context(), from, to)
	switch {
	case errors.Is(err, repository.ErrNotFound):
		d = notFoundValue
	case err != nil:
		writeFailure(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"duration": d})
}

func (h *FlightHandler) departureAirport(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	name, err := h.service.DepartureAirportName(c.Request.Context(), id)
	if err != nil {
		writeFailure(c, err)
		return
	}
	c.JSON(http.StatusOK, airportNameResponse{AirportName: name})
}

func (h *FlightHandler) peopleCount(c *gin.Context) {
	date, err := domain.ParseDate(c.Param("date"))
	if err != nil {
		writeBadRequest(c, "invalid date")
		return
	}
	count := h.service.PeopleCountOn(c.Request.Context(), date, c.Query("airport_name"))
	c.JSON(http.StatusOK, gin.H{"count": count})
}
