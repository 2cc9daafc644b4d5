// Package main provides the entry point for the fleetrisk-backend
// microservice: IoT fleet risk scoring, RBAC-gated report viewing and the
// recommendation workflow, served over REST and GraphQL.
package main

import (
	"context"
	"strings"
	"time"

	fleetevents "github.com/fleetwatch/fleetrisk-backend/events/modules/fleet"
	"github.com/fleetwatch/fleetrisk-backend/internal/api"
	"github.com/fleetwatch/fleetrisk-backend/internal/services"
	"github.com/fleetwatch/fleetrisk-backend/risk"
	"github.com/fleetwatch/fleetrisk-backend/util"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	// Optional .env for local development
	_ = godotenv.Load()

	logger := util.InitLogger()
	defer logger.Sync()

	// Risk table: built-in defaults unless an external YAML file is given
	table := risk.DefaultTable()
	if path := util.GetEnvDefault("FLEETRISK_RISK_TABLE", ""); path != "" {
		loaded, err := risk.LoadTable(path)
		if err != nil {
			logger.Fatal("Failed to load risk table", zap.String("path", path), zap.Error(err))
		}
		table = loaded
		logger.Info("Loaded risk table", zap.String("path", path))
	}

	fleet := services.NewFleet(risk.NewScorer(table), logger)

	// Fleet events are optional; without brokers the producer stays nil
	if brokersEnv := util.GetEnvDefault("FLEETRISK_KAFKA_BROKERS", ""); brokersEnv != "" {
		brokers := strings.Split(brokersEnv, ",")
		topic := util.GetEnvDefault("FLEETRISK_KAFKA_TOPIC", "fleet-events")
		producer := fleetevents.NewProducer(brokers, topic)

		ctx, cancel := context.WithTimeout(context.Background(), 45*time.Second)
		err := producer.Ping(ctx)
		cancel()
		if err != nil {
			logger.Warn("Kafka brokers unreachable, fleet events disabled", zap.Error(err))
		} else {
			fleet.Events = producer
			defer producer.Close()
			logger.Info("Fleet event producer started", zap.String("topic", topic))
		}
	}

	app := api.NewFiberApp(fleet)

	port := util.GetEnvDefault("MS_PORT", "3000")
	logger.Info("Starting server", zap.String("port", port))
	if err := app.Listen(":" + port); err != nil {
		logger.Fatal("Failed to start server", zap.Error(err))
	}
}
