package database

import (
	"log"

	"github.com/rmatch-app/rmatch-backend/internal/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Connect opens the postgres connection and runs migrations.
func Connect(dsn string) *gorm.DB {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	log.Println("Database connection established")

	if err := Migrate(db); err != nil {
		log.Fatal("Migration failed:", err)
	}
	return db
}

// Migrate creates/updates the schema. Split out so tests can run it
// against an in-memory database.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.College{},
		&models.Department{},
		&models.Course{},
		&models.Student{},
		&models.FacultyMember{},
		&models.Job{},
		&models.JobApplication{},
		&models.WorkExperience{},
		&models.Document{},
		&models.Message{},
		&models.VerificationKey{},
	)
}
