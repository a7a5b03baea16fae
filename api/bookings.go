package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/Domenick1991/airportregistry/internal/domain"
	"github.com/Domenick1991/airportregistry/internal/repository"
	"github.com/Domenick1991/airportregistry/internal/service/booking"
	"github.com/gin-gonic/gin"
)

type BookingHandler struct {
	service booking.BookingUseCase
}

type passengerRequest struct {
	PassengerID int64  `json:"passenger_id"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	Age         int    `json:"age"`
}

type bookTicketRequest struct {
	PassengerID int64 `json:"passenger_id"`
}

type passengersResponse struct {
	FlightID     int64   `json:"flight_id"`
	PassengerIDs []int64 `json:"passenger_ids"`
}

func NewBookingHandler(service booking.BookingUseCase) *BookingHandler {
	return &BookingHandler{service: service}
}

func (h *BookingHandler) Register(router *gin.RouterGroup) {
	router.POST("/passengers", h.addPassenger)
	router.GET("/passengers/:id/bookings/count", h.bookingCount)

	router.POST("/flights/:id/bookings", h.book)
	router.DELETE("/flights/:id/bookings/:passenger_id", h.cancel)
	router.GET("/flights/:id/passengers", h.passengers)
	router.GET("/flights/:id/fare", h.fare)
	router.GET("/flights/:id/revenue", h.revenue)
}

func (h *BookingHandler) addPassenger(c *gin.Context) {
	var req passengerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBadRequest(c, err.Error())
		return
	}

	err := h.service.AddPassenger(c.Request.Context(), &domain.Passenger{
		ID:    req.PassengerID,
		Name:  req.Name,
		Email: req.Email,
		Age:   req.Age,
	})
	if err != nil {
		writeFailure(c, err)
		return
	}
	writeSuccess(c, http.StatusCreated)
}

func (h *BookingHandler) book(c *gin.Context) {
	flightID, ok := paramID(c, "id")
	if !ok {
		return
	}
	var req bookTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBadRequest(c, err.Error())
		return
	}

	if err := h.service.BookTicket(c.Request.Context(), flightID, req.PassengerID); err != nil {
		writeFailure(c, err)
		return
	}
	writeSuccess(c, http.StatusCreated)
}

func (h *BookingHandler) cancel(c *gin.Context) {
	flightID, ok := paramID(c, "id")
	if !ok {
		return
	}
	passengerID, ok := paramID(c, "passenger_id")
	if !ok {
		return
	}

	if err := h.service.CancelTicket(c.Request.Context(), flightID, passengerID); err != nil {
		writeFailure(c, err)
		return
	}
	writeSuccess(c, http.StatusOK)
}

func (h *BookingHandler) bookingCount(c *gin.Context) {
	passengerID, ok := paramID(c, "id")
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": h.service.BookingCount(c.Request.Context(), passengerID)})
}

func (h *BookingHandler) passengers(c *gin.Context) {
	flightID, ok := paramID(c, "id")
	if !ok {
		return
	}
	ids, err := h.service.Passengers(c.Request.Context(), flightID)
	if err != nil {
		writeFailure(c, err)
		return
	}
	c.JSON(http.StatusOK, passengersResponse{FlightID: flightID, PassengerIDs: ids})
}

func (h *BookingHandler) fare(c *gin.Context) {
	h.amount(c, "fare", h.service.Fare)
}

func (h *BookingHandler) revenue(c *gin.Context) {
	h.amount(c, "revenue", h.service.Revenue)
}

// amount writes a per-flight figure, reporting -1 for an unknown flight.
func (h *BookingHandler) amount(c *gin.Context, field string, query func(ctx context.Context, flightID int64) (int, error)) {
	flightID, ok := paramID(c, "id")
	if !ok {
		return
	}
	value, err := query(c.Request.Context(), flightID)
	switch {
	case errors.Is(err, repository.ErrNotFound):
		value = notFoundValue
	case err != nil:
		writeFailure(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{field: value})
}
