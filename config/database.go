package config

import (
	"log"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// ConnectDB opens the database handle and waits for the database to become
// reachable, retrying a fixed number of times. Exhausting the retries is
// logged but does not abort startup: the server comes up anyway and requests
// fail with 500s until the database appears.
func ConnectDB(cfg Config) *gorm.DB {
	db, err := gorm.Open(postgres.Open(cfg.DatabaseURL), &gorm.Config{
		DisableAutomaticPing: true,
	})
	if err != nil {
		log.Fatalf("invalid database configuration: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("failed to access connection pool: %v", err)
	}
	sqlDB.SetMaxIdleConns(25)
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetConnMaxLifetime(5 * time.Minute)
	sqlDB.SetConnMaxIdleTime(time.Minute)

	for attempt := 1; attempt <= cfg.ConnectRetries; attempt++ {
		if err = sqlDB.Ping(); err == nil {
			log.Println("Connected to database!")
			return db
		}
		log.Printf("Database not ready, waiting %v... (attempt %d/%d): %v",
			cfg.ConnectRetryDelay, attempt, cfg.ConnectRetries, err)
		time.Sleep(cfg.ConnectRetryDelay)
	}

	log.Printf("Could not connect to database after %d attempts: %v", cfg.ConnectRetries, err)
	return db
}
