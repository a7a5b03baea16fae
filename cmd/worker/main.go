package main

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/Domenick1991/airportregistry/config"
	"github.com/Domenick1991/airportregistry/internal/email"
	"github.com/Domenick1991/airportregistry/internal/kafka"
	"github.com/Domenick1991/airportregistry/internal/logging"
	"github.com/spf13/pflag"
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

	if len(cfg.Kafka.Brokers) == 0 {
		logger.Error("kafka brokers are not configured")
		os.Exit(1)
	}

	topic := cfg.Kafka.NotificationsTopic
	if topic == "" {
		topic = cfg.Kafka.BookingEventsTopic
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	consumer := kafka.NewConsumer(cfg.Kafka.Brokers, cfg.Kafka.GroupID, topic, logger)
	defer consumer.Close()

	sender := email.NewSender(logger)

	logger.Info("worker started", "topic", topic, "group_id", cfg.Kafka.GroupID)
	err = consumer.ConsumeBookingEvents(ctx, sender.Send)
	if err != nil && !errors.Is(err, context.Canceled) {
		logger.Error("consumer stopped", "error", err)
		os.Exit(1)
	}
	logger.Info("worker stopped")
}
