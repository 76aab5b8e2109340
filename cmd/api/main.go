package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.mongodb.org/mongo-driver/mongo"

	"issue-tracker/config"
	"issue-tracker/internal/httpserver"
	"issue-tracker/internal/issue/repository/mongodb"
	"issue-tracker/internal/middleware"
	"issue-tracker/pkg/log"
	pkgMongo "issue-tracker/pkg/mongodb"
)

// @title       Issue Tracker API
// @description CRUD service for issue records backed by a document store.
// @version     1
// @host        localhost:5000
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		os.Exit(1)
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Issue Tracker API...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)
	logger.Infof(ctx, "Store driver: %s", cfg.Store.Driver)

	// 3. Issue store
	var mongoDB *mongo.Database
	if cfg.Store.Driver == config.StoreDriverMongo {
		client, err := pkgMongo.Connect(ctx, pkgMongo.Config{
			URI:      cfg.Mongo.URI,
			Database: cfg.Mongo.Database,
			Timeout:  cfg.Mongo.Timeout,
		})
		if err != nil {
			logger.Fatalf(ctx, "Failed to connect to MongoDB: %v", err)
		}
		defer func() {
			if err := pkgMongo.Disconnect(client, cfg.Mongo.Timeout); err != nil {
				logger.Warnf(context.Background(), "MongoDB disconnect: %v", err)
			}
		}()
		logger.Infof(ctx, "Connected to MongoDB database %q", cfg.Mongo.Database)

		mongoDB = client.Database(cfg.Mongo.Database)
		if err := mongodb.EnsureIndexes(ctx, mongoDB, cfg.Mongo.Collection); err != nil {
			logger.Warnf(ctx, "Failed to ensure issue indexes: %v", err)
		}
	}

	// 4. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:      logger,
		Port:        cfg.HTTPServer.Port,
		Mode:        cfg.HTTPServer.Mode,
		Environment: cfg.Environment.Name,
		Middleware: middleware.Config{
			AllowedOrigins:   cfg.CORS.AllowedOrigins,
			RateLimitEnabled: cfg.RateLimit.Enabled,
			RequestsPerMin:   cfg.RateLimit.RequestsPerMin,
		},
		StoreDriver:     cfg.Store.Driver,
		MongoDB:         mongoDB,
		MongoCollection: cfg.Mongo.Collection,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 5. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
