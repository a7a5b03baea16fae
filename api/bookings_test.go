package api

import (
	"net/http"
	"testing"

	"github.com/Domenick1991/airportregistry/internal/domain"
	"github.com/Domenick1991/airportregistry/internal/repository"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestBookingHandler_addPassenger(t *testing.T) {
	mockService := &MockBookingUseCase{}
	handler := NewBookingHandler(mockService)

	c, w := newTestContext("POST", "/passengers", []byte(`{"passenger_id":10,"name":"Asha","email":"asha@example.com","age":31}`))
	want := &domain.Passenger{ID: 10, Name: "Asha", Email: "asha@example.com", Age: 31}
	mockService.On("AddPassenger", c.Request.Context(), want).Return(nil).Once()

	handler.addPassenger(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	mockService.AssertExpectations(t)
}

func TestBookingHandler_addPassenger_NonPositiveID(t *testing.T) {
	mockService := &MockBookingUseCase{}
	handler := NewBookingHandler(mockService)

	c, w := newTestContext("POST", "/passengers", []byte(`{"passenger_id":0,"name":"Nobody"}`))
	mockService.On("AddPassenger", c.Request.Context(), mock.Anything).Return(repository.ErrInvalid).Once()

	handler.addPassenger(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, resultFailure, decodeResult(t, w).Result)
}

func TestBookingHandler_book(t *testing.T) {
	testCases := []struct {
		name       string
		err        error
		wantStatus int
		wantResult string
	}{
		{name: "success", wantStatus: http.StatusCreated, wantResult: resultSuccess},
		{name: "unknown passenger", err: repository.ErrPassengerNotFound, wantStatus: http.StatusNotFound, wantResult: resultFailure},
		{name: "duplicate", err: repository.ErrAlreadyBooked, wantStatus: http.StatusConflict, wantResult: resultFailure},
		{name: "full", err: repository.ErrFlightFull, wantStatus: http.StatusConflict, wantResult: resultFailure},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			mockService := &MockBookingUseCase{}
			handler := NewBookingHandler(mockService)

			c, w := newTestContext("POST", "/flights/1/bookings", []byte(`{"passenger_id":10}`))
			c.Params = gin.Params{{Key: "id", Value: "1"}}
			mockService.On("BookTicket", c.Request.Context(), int64(1), int64(10)).Return(tc.err).Once()

			handler.book(c)

			assert.Equal(t, tc.wantStatus, w.Code)
			assert.Equal(t, tc.wantResult, decodeResult(t, w).Result)
			mockService.AssertExpectations(t)
		})
	}
}

func TestBookingHandler_cancel(t *testing.T) {
	mockService := &MockBookingUseCase{}
	handler := NewBookingHandler(mockService)

	c, w := newTestContext("DELETE", "/flights/1/bookings/10", nil)
	c.Params = gin.Params{{Key: "id", Value: "1"}, {Key: "passenger_id", Value: "10"}}
	mockService.On("CancelTicket", c.Request.Context(), int64(1), int64(10)).Return(nil).Once()

	handler.cancel(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, resultSuccess, decodeResult(t, w).Result)
}

func TestBookingHandler_cancel_NotBooked(t *testing.T) {
	mockService := &MockBookingUseCase{}
	handler := NewBookingHandler(mockService)

	c, w := newTestContext("DELETE", "/flights/1/bookings/10", nil)
	c.Params = gin.Params{{Key: "id", Value: "1"}, {Key: "passenger_id", Value: "10"}}
	mockService.On("CancelTicket", c.Request.Context(), int64(1), int64(10)).Return(repository.ErrNotBooked).Once()

	handler.cancel(c)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestBookingHandler_fareAndRevenue(t *testing.T) {
	mockService := &MockBookingUseCase{}
	handler := NewBookingHandler(mockService)

	c, w := newTestContext("GET", "/flights/1/fare", nil)
	c.Params = gin.Params{{Key: "id", Value: "1"}}
	mockService.On("Fare", c.Request.Context(), int64(1)).Return(3100, nil).Once()
	handler.fare(c)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"fare":3100}`, w.Body.String())

	c, w = newTestContext("GET", "/flights/999/revenue", nil)
	c.Params = gin.Params{{Key: "id", Value: "999"}}
	mockService.On("Revenue", c.Request.Context(), int64(999)).Return(0, repository.ErrFlightNotFound).Once()
	handler.revenue(c)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"revenue":-1}`, w.Body.String())
}

func TestBookingHandler_bookingCount(t *testing.T) {
	mockService := &MockBookingUseCase{}
	handler := NewBookingHandler(mockService)

	c, w := newTestContext("GET", "/passengers/10/bookings/count", nil)
	c.Params = gin.Params{{Key: "id", Value: "10"}}
	mockService.On("BookingCount", c.Request.Context(), int64(10)).Return(2).Once()

	handler.bookingCount(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"count":2}`, w.Body.String())
}

func TestBookingHandler_passengers(t *testing.T) {
	mockService := &MockBookingUseCase{}
	handler := NewBookingHandler(mockService)

	c, w := newTestContext("GET", "/flights/1/passengers", nil)
	c.Params = gin.Params{{Key: "id", Value: "1"}}
	mockService.On("Passengers", c.Request.Context(), int64(1)).Return([]int64{10, 11}, nil).Once()

	handler.passengers(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"flight_id":1,"passenger_ids":[10,11]}`, w.Body.String())
}
