package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2/log"

	"github.com/healthhub/portal-api/internal/config"
	"github.com/healthhub/portal-api/internal/db"
	"github.com/healthhub/portal-api/internal/server"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	ctx := context.Background()

	// Connect to MongoDB
	client, err := db.ConnectMongoDB(ctx, cfg.MongoURI)
	if err != nil {
		log.Fatal(err)
	}
	defer func() {
		if err := client.Disconnect(context.Background()); err != nil {
			log.Errorf("MongoDB disconnect failed: %v", err)
		}
	}()

	store := db.NewStore(client.Database(cfg.DBName))
	if err := store.EnsureIndexes(ctx); err != nil {
		log.Warnf("continuing without indexes: %v", err)
	}

	app := server.New(cfg, store)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-quit
		log.Info("Shutting down")
		if err := app.ShutdownWithTimeout(shutdownTimeout); err != nil {
			log.Errorf("shutdown failed: %v", err)
		}
	}()

	log.Infof("Server is running on http://localhost:%s", cfg.Port)
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Errorf("server stopped: %v", err)
	}
}
