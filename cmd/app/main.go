package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Domenick1991/airportregistry/api"
	"github.com/Domenick1991/airportregistry/config"
	registryapi "github.com/Domenick1991/airportregistry/internal/api/registry_service_api"
	"github.com/Domenick1991/airportregistry/internal/bootstrap"
	"github.com/Domenick1991/airportregistry/internal/cache"
	"github.com/Domenick1991/airportregistry/internal/kafka"
	"github.com/Domenick1991/airportregistry/internal/logging"
	"github.com/Domenick1991/airportregistry/internal/metrics"
	"github.com/Domenick1991/airportregistry/internal/repository"
	"github.com/Domenick1991/airportregistry/internal/service/airports"
	"github.com/Domenick1991/airportregistry/internal/service/booking"
	"github.com/Domenick1991/airportregistry/internal/service/flights"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/pflag"
	"google.golang.org/grpc"
)

func main() {
	defaultPath := os.Getenv("CONFIG_PATH")
	if defaultPath == "" {
		defaultPath = "config.yaml"
	}
	cfgPath := pflag.String("config", defaultPath, "path to the yaml config file")
	pflag.Parse()

	cfg, err := config.LoadConfig(*cfgPath)
	if err != nil {
		slog.Error("load config", "error", err)
		os.Exit(1)
	}
	logger := logging.New(os.Stderr, cfg.Log)

	if err := run(cfg, logger); err != nil {
		logger.Error("server error", "error", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config, logger *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	registry := repository.NewRegistry()

	promRegistry := prometheus.NewRegistry()
	promRegistry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	m, err := metrics.New(promRegistry, registry)
	if err != nil {
		return err
	}

	airportOpts := []airports.AirportServiceOption{airports.WithLogger(logger)}
	flightOpts := []flights.FlightServiceOption{flights.WithLogger(logger)}
	bookingOpts := []booking.BookingServiceOption{booking.WithLogger(logger)}

	if cfg.Redis.Addr != "" {
		redisCache := cache.NewRedisCache(cfg.Redis, time.Duration(cfg.Cache.QueryTTLSeconds)*time.Second)
		defer redisCache.Close()
		if err := redisCache.Ping(ctx); err != nil {
			logger.Warn("redis unavailable, queries will bypass it on error", "addr", cfg.Redis.Addr, "error", err)
		}
		airportOpts = append(airportOpts, airports.WithQueryCache(redisCache))
		flightOpts = append(flightOpts, flights.WithQueryCache(redisCache))
	}

	if len(cfg.Kafka.Brokers) > 0 {
		producer := kafka.NewProducer(cfg.Kafka.Brokers, logger)
		defer producer.Close()
		if err := producer.CheckConnection(ctx); err != nil {
			logger.Warn("kafka unavailable, booking events may be lost", "brokers", cfg.Kafka.Brokers, "error", err)
		}
		bookingOpts = append(bookingOpts,
			booking.WithEvents(producer, cfg.Kafka.BookingEventsTopic),
			booking.WithNotificationsTopic(cfg.Kafka.NotificationsTopic),
		)
	}

	airportService := airports.NewAirportService(registry, airportOpts...)
	flightService := flights.NewFlightService(registry, flightOpts...)
	bookingService := booking.NewBookingService(registry, bookingOpts...)

	gin.SetMode(gin.ReleaseMode)
	router := api.NewRouter(api.Services{
		Airports: airportService,
		Flights:  flightService,
		Bookings: bookingService,
	}, api.RouterOptions{
		Logger:   logger,
		Metrics:  m,
		Gatherer: promRegistry,
	})

	servers := bootstrap.NewServers(cfg, router,
		registryapi.NewServer(airportService, flightService, bookingService),
		grpc.UnaryInterceptor(registryapi.UnaryInterceptor(logger, m)),
	)
	return servers.Run(ctx, cfg, logger)
}
