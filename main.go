// main.go
package main

import (
	"context"
	"fmt"
	"log"

	"cine-reserve/cmd"
	"cine-reserve/internal/data/snapshot"
	"cine-reserve/internal/data/store"
	"cine-reserve/internal/wire"
	"cine-reserve/pkg/database"
	"cine-reserve/pkg/utils"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func main() {
	// Load config
	config, err := utils.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	logger, err := utils.InitLogger(config.App.LogPath, config.App.Debug)
	if err != nil {
		log.Printf("Failed to init logger: %v. Using standard log.", err)
		logger, _ = zap.NewProduction()
	}
	defer logger.Sync()

	logger.Info("Starting application",
		zap.String("app", config.App.Name),
		zap.String("port", config.App.Port),
		zap.String("storage", config.Storage.Backend),
		zap.Bool("debug", config.App.Debug),
	)

	ctx := context.Background()

	// Open the configured snapshot backend
	kv, cleanup, err := openSnapshotKV(ctx, config.Storage)
	if err != nil {
		logger.Fatal("Failed to open snapshot storage", zap.Error(err))
	}
	defer cleanup()

	gateway := snapshot.NewGateway(kv, logger)

	// Load state and build the booking engine
	st := store.New(ctx, gateway, store.Options{
		TicketPrice:      config.Booking.TicketPrice,
		SeatsPerShowtime: config.Booking.SeatsPerShowtime,
	}, logger)

	// Wire all dependencies
	app := wire.Wiring(st, config, logger)

	// Start server
	logger.Info("Starting HTTP server", zap.String("port", config.App.Port))

	cmd.APIServer(app.Router, config.App.Port)
}

func openSnapshotKV(ctx context.Context, cfg utils.StorageConfig) (snapshot.KV, func(), error) {
	switch cfg.Backend {
	case "file", "":
		kv, err := snapshot.NewFileKV(cfg.FileDir)
		if err != nil {
			return nil, nil, err
		}
		return kv, func() {}, nil

	case "postgres":
		db, err := database.InitDB(cfg.Postgres)
		if err != nil {
			return nil, nil, err
		}
		kv, err := snapshot.NewPostgresKV(ctx, db)
		if err != nil {
			db.Close()
			return nil, nil, err
		}
		return kv, db.Close, nil

	case "redis":
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err := client.Ping(ctx).Err(); err != nil {
			return nil, nil, fmt.Errorf("ping redis %s: %w", cfg.Redis.Addr, err)
		}
		return snapshot.NewRedisKV(client, cfg.Redis.Prefix), func() { client.Close() }, nil

	default:
		return nil, nil, fmt.Errorf("unknown storage backend %q", cfg.Backend)
	}
}
