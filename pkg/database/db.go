// Package database owns the single MongoDB connection shared by every
// request handler.
package database

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/event"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/shashiranjanraj/vastra/config"
	"github.com/shashiranjanraj/vastra/pkg/logger"
)

// Connect opens one client from MONGODB_URI and returns the application
// database handle. Connection lifecycle events (connected, error,
// disconnected) are logged for observability, never acted on: a dead store
// is only logged and requests keep being accepted, failing at query time.
// There is no retry or backoff; restarting the process is the recovery path.
func Connect(ctx context.Context) (*mongo.Database, error) {
	uri := config.MongoURI()

	clientOpts := options.Client().
		ApplyURI(uri).
		SetConnectTimeout(5 * time.Second).
		SetServerSelectionTimeout(5 * time.Second).
		SetPoolMonitor(poolMonitor()).
		SetMonitor(commandMonitor())

	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, clientOpts)
	if err != nil {
		return nil, fmt.Errorf("database: connect: %w", err)
	}

	// Ping failure is logged, not fatal: the listener stays up and queries
	// surface their own errors per-request.
	if err := client.Ping(ctx, nil); err != nil {
		logger.Error("mongodb connection error", "uri", uri, "error", err)
	} else {
		logger.Info("connected to mongodb server", "db", config.MongoDatabase())
	}

	return client.Database(config.MongoDatabase()), nil
}

// poolMonitor surfaces the driver's connection lifecycle as log events.
func poolMonitor() *event.PoolMonitor {
	return &event.PoolMonitor{
		Event: func(e *event.PoolEvent) {
			switch e.Type {
			case event.ConnectionCreated:
				logger.Debug("mongodb connection opened", "address", e.Address)
			case event.ConnectionClosed:
				logger.Debug("mongodb connection closed", "address", e.Address, "reason", e.Reason)
			case event.PoolCleared:
				logger.Warn("mongodb disconnected", "address", e.Address)
			}
		},
	}
}

// commandMonitor logs failed store commands; successes stay quiet.
func commandMonitor() *event.CommandMonitor {
	return &event.CommandMonitor{
		Failed: func(_ context.Context, e *event.CommandFailedEvent) {
			logger.Error("mongodb command failed",
				"command", e.CommandName,
				"duration", e.Duration.String(),
				"error", e.Failure,
			)
		},
	}
}
