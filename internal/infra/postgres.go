package infra

import (
	"log"
	"os"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"mockmate/internal/models/db_models"
)

func InitPostgresql() *gorm.DB {

	dsn := os.Getenv("POSTGRES_URL")

	connectionPool, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})

	if err != nil {
		log.Printf("Error connecting to database: %v", err)
		log.Fatal("Error connecting to database")
	}

	return connectionPool
}

func ClosePostgresql(db *gorm.DB) {
	sqlDB, err := db.DB()
	if err != nil {
		log.Printf("Error getting database instance: %v", err)
		return
	}

	if err := sqlDB.Close(); err != nil {
		log.Printf("Error closing database connection: %v", err)
	} else {
		log.Println("PostgreSQL database connection closed successfully")
	}
}

// MigrateAndSeed creates the schema and loads the question bank when the
// questions table is empty.
func MigrateAndSeed(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&db_models.Question{},
		&db_models.Interview{},
		&db_models.Response{},
		&db_models.Feedback{},
	); err != nil {
		return err
	}
	return SeedQuestions(db)
}
