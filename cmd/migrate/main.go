package main

import (
	"log"

	"student-notes-be/internal/config"
	"student-notes-be/internal/model"
	"student-notes-be/pkg/database"

	"gorm.io/gorm"
)

func main() {
	// 1. Load environment variables
	cfg := config.Load()

	// 2. Connect to the database using the existing GORM helpers
	db, err := connect(cfg)
	if err != nil {
		log.Fatal("Error: Failed to connect to database: ", err)
	}

	log.Println("Starting GORM migration...")

	// 3. AutoMigrate. Students first so the notes FK has its target.
	models := []interface{}{
		&model.Student{},
		&model.Note{},
	}

	if err := db.AutoMigrate(models...); err != nil {
		log.Fatalf("Error: AutoMigrate failed: %v", err)
	}

	// 4. Older deployments predate the cascade rule on notes.student_id;
	// reassert it so student deletes always sweep their notes.
	constraintSQL := []string{
		`ALTER TABLE notes DROP CONSTRAINT IF EXISTS fk_notes_student;`,
		`ALTER TABLE notes ADD CONSTRAINT fk_notes_student
		 FOREIGN KEY (student_id) REFERENCES students(id) ON DELETE CASCADE;`,
	}

	for _, sql := range constraintSQL {
		if err := db.Exec(sql).Error; err != nil {
			log.Printf("Warn: Failed to execute constraint SQL: %v", err)
		}
	}

	log.Println("Success: Database migration completed via GORM.")
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
