package main

import (
	"context"
	"log"

	"student-notes-be/internal/bootstrap"
	"student-notes-be/internal/config"
	"student-notes-be/internal/server"
	"student-notes-be/pkg/database"

	"gorm.io/gorm"
)

func main() {
	// 1. Load configuration
	cfg := config.Load()

	// 2. Initialize database
	db, err := connect(cfg)
	if err != nil {
		log.Panicf("Unable to connect to GORM DB: %v", err)
	}

	// 3. Bootstrap dependencies (container)
	container := bootstrap.NewContainer(db, cfg)

	// 4. Start background notifier
	if err := container.NotifierService.Consume(context.Background()); err != nil {
		log.Printf("Background notifier error: %v", err)
	}

	// 5. Run server. Flush the logger before exiting; log.Fatal would
	// skip a deferred Sync.
	srv := server.New(cfg, container)
	err = srv.Run()
	container.Logger.Sync()
	if err != nil {
		log.Fatalf("Server stopped: %v", err)
	}
}

func connect(cfg *config.Config) (*gorm.DB, error) {
	if cfg.Database.Connection != "" {
		return database.NewGormDBFromDSN(cfg.Database.Connection)
	}
	return database.NewGormDB(database.GormConfig{
		Host:     cfg.Database.Host,
		Port:     cfg.Database.Port,
		User:     cfg.Database.User,
		Password: cfg.Database.Password,
		DBName:   cfg.Database.Name,
		SSLMode:  cfg.Database.SSLMode,
	})
}
