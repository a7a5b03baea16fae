package api

import (
	"log/slog"
	"net/http"

	"github.com/Domenick1991/airportregistry/internal/metrics"
	"github.com/Domenick1991/airportregistry/internal/service/airports"
	"github.com/Domenick1991/airportregistry/internal/service/booking"
	"github.com/Domenick1991/airportregistry/internal/service/flights"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Services struct {
	Airports airports.AirportUseCase
	Flights  flights.FlightUseCase
	Bookings booking.BookingUseCase
}

type RouterOptions struct {
	Logger  *slog.Logger
	Metrics *metrics.Metrics
	// Gatherer backs /metrics; the route is omitted when nil.
	Gatherer prometheus.Gatherer
}

func NewRouter(services Services, opts RouterOptions) *gin.Engine {
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	router := gin.New()
	router.Use(gin.Recovery(), instrument(logger, opts.Metrics))

	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	if opts.Gatherer != nil {
		router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(opts.Gatherer, promhttp.HandlerOpts{})))
	}
	registerDocs(router)

	group := router.Group("")
	NewAirportHandler(services.Airports).Register(group)
	NewFlightHandler(services.Flights).Register(group)
	NewBookingHandler(services.Bookings).Register(group)

	return router
}
