package app

import (
	"context"
	"fmt"
	"log/slog"

	"socialwall/internal/config"
	"socialwall/internal/database"
	"socialwall/internal/messaging"
	"socialwall/internal/repository"
	"socialwall/internal/service"
	"socialwall/internal/storage"
)

// App holds the connections the services were built on, so main can close them.
type App struct {
	DB        *database.DB
	Publisher messaging.Publisher
	Services  *service.Service
}

func New(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	// connection DB
	db, err := database.ConnectDB(cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// connection MinIO
	minioClient, err := storage.NewMinIOClient(ctx, cfg, logger)
	if err != nil {
		_ = db.CloseDB()
		return nil, fmt.Errorf("failed to initialize MinIO: %w", err)
	}

	// connection NATS
	publisher, err := messaging.ConnectNATS(cfg, logger)
	if err != nil {
		_ = db.CloseDB()
		return nil, err
	}

	repo := repository.NewRepository(db.DB)
	services := service.NewService(repo, cfg, minioClient, publisher, logger)

	return &App{DB: db, Publisher: publisher, Services: services}, nil
}

func (a *App) Close() {
	a.Publisher.Close()
	_ = a.DB.CloseDB()
}
