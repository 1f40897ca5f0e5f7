// Package server boots the HTTP application shell.
package server

import (
	"context"
	"net/http"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/shashiranjanraj/vastra/app/routes"
	"github.com/shashiranjanraj/vastra/config"
	"github.com/shashiranjanraj/vastra/pkg/database"
	"github.com/shashiranjanraj/vastra/pkg/logger"
	"github.com/shashiranjanraj/vastra/pkg/metrics"
	"github.com/shashiranjanraj/vastra/pkg/middleware"
	"github.com/shashiranjanraj/vastra/pkg/reqid"
	"github.com/shashiranjanraj/vastra/pkg/router"
	"github.com/shashiranjanraj/vastra/pkg/storage"
)

// Start runs the long-lived listener: load config, open the store
// connection, boot storage, serve. A store that cannot be reached is logged
// and the listener keeps accepting requests — they fail at query time.
func Start() error {
	if err := config.Load(); err != nil {
		return err
	}

	db, err := database.Connect(context.Background())
	if err != nil {
		return err
	}

	storage.Connect()

	addr := ":" + config.AppPort()
	logger.Info("vastra running", "addr", addr)
	return http.ListenAndServe(addr, Handler(db))
}

// Handler builds the full HTTP stack around db. It is exported separately
// from Start so a managed-hosting adapter can drive it one
// request/response at a time, and so tests can exercise the stack
// in-process.
func Handler(db *mongo.Database) http.Handler {
	r := router.New()

	// Global middleware (outermost → innermost):
	//  1. Prometheus metrics — outermost for accurate total latency
	//  2. Recovery           — catches panics before they kill the goroutine
	//  3. Request ID         — inject unique ID before anything logs
	//  4. Logger             — logs request_id from context
	//  5. CORS               — enabled for all routes
	r.Use(metrics.Middleware())
	r.Use(middleware.Recovery)
	r.Use(reqid.Middleware())
	r.Use(middleware.Logger)
	r.Use(middleware.CORS(middleware.DefaultCORSOptions()))

	r.Get("/metrics", "metrics", metrics.Handler())

	routes.RegisterAPI(r, db)

	return r.Handler()
}
