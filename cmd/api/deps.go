package main

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"freelancernow/internal/domain/user"
	"freelancernow/internal/infrastructure/crypto"
	"freelancernow/internal/infrastructure/postgres"
	httphandlers "freelancernow/internal/interfaces/http"
	"freelancernow/internal/shared/auth"
	"freelancernow/internal/shared/config"
	"freelancernow/internal/shared/messages"
)

// Dependencies holds all initialized application components.
type Dependencies struct {
	DB *postgres.DB

	// Handlers
	HealthHandler   *httphandlers.HealthHandler
	DocumentHandler *httphandlers.DocumentHandler
	UserHandler     *httphandlers.UserHandler

	// Auth
	JWT *auth.JWT
}

// NewDependencies connects to the database, applies the schema and builds
// the handlers.
func NewDependencies(ctx context.Context, cfg *config.Config, log *zap.Logger) (*Dependencies, error) {
	db, err := postgres.New(ctx, cfg.Database)
	if err != nil {
		return nil, err
	}
	log.Info("connected to database", zap.String("host", cfg.Database.Host), zap.String("db", cfg.Database.DBName))

	if err := db.Migrate(ctx); err != nil {
		db.Close()
		return nil, err
	}

	encryptor, err := crypto.NewEncryptor(cfg.Encryption.Key)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create encryptor: %w", err)
	}

	catalog, err := messages.Default()
	if err != nil {
		db.Close()
		return nil, err
	}

	userRepo := postgres.NewUserRepository(db, encryptor)
	userService := user.NewService(userRepo, log.Named("user"))

	return &Dependencies{
		DB:              db,
		HealthHandler:   httphandlers.NewHealthHandler(db, log),
		DocumentHandler: httphandlers.NewDocumentHandler(catalog, log.Named("document")),
		UserHandler:     httphandlers.NewUserHandler(userService, catalog, log.Named("user")),
		JWT:             auth.NewJWT(cfg.JWT.Secret),
	}, nil
}

// Close releases all resources held by dependencies.
func (d *Dependencies) Close() {
	if d.DB != nil {
		d.DB.Close()
	}
}
