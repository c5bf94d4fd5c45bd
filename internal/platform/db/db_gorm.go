// Package db opens the gorm connection for whichever backend the deployment
// selects.
package db

import (
	"fmt"
	"log"
	"time"

	gmysql "gorm.io/driver/mysql"
	gpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"

	authentity "notes_backend/internal/feature/auth/domain/entity"
	notesentity "notes_backend/internal/feature/notes/domain/entity"
	"notes_backend/internal/platform/config"
)

const (
	connectTimeout = 60 * time.Second
	retryInterval  = 3 * time.Second
)

// Opener abstracts gorm.Open so connection retries are testable without a
// real database.
type Opener func(dsn string) (*gorm.DB, error)

// BuildDSN renders the connection string for the configured driver.
// MySQL is the default; a non-empty InstanceConnectionName switches it to a
// Cloud SQL unix socket, taking precedence over host/port.
func BuildDSN(cfg *config.Config) string {
	if cfg.DBDriver == "postgres" {
		return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
			cfg.DBHost, cfg.DBUser, cfg.DBPassword, cfg.DBName, cfg.DBPort)
	}
	if cfg.InstanceConnectionName != "" {
		return fmt.Sprintf("%s:%s@unix(/cloudsql/%s)/%s?charset=utf8mb4&parseTime=true&loc=Local",
			cfg.DBUser, cfg.DBPassword, cfg.InstanceConnectionName, cfg.DBName)
	}
	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=true&loc=Local",
		cfg.DBUser, cfg.DBPassword, cfg.DBHost, cfg.DBPort, cfg.DBName)
}

// ConnectWithRetry keeps calling the opener until it succeeds or the timeout
// passes, waiting between attempts while the database container comes up.
func ConnectWithRetry(dsn string, timeout time.Duration, opener Opener) (*gorm.DB, error) {
	deadline := time.Now().Add(timeout)
	for {
		db, err := opener(dsn)
		if err == nil {
			return db, nil
		}
		if time.Now().After(deadline) {
			return nil, fmt.Errorf("DB connect failed after %s: %w", timeout, err)
		}
		log.Printf("DB connect failed, retrying...: %v", err)
		time.Sleep(retryInterval)
	}
}

// gormOpener returns an Opener for the configured driver. TranslateError is
// enabled so unique-key violations surface uniformly as gorm.ErrDuplicatedKey
// across drivers.
func gormOpener(cfg *config.Config) Opener {
	return func(dsn string) (*gorm.DB, error) {
		var dial gorm.Dialector
		if cfg.DBDriver == "postgres" {
			dial = gpostgres.Open(dsn)
		} else {
			dial = gmysql.Open(dsn)
		}
		return gorm.Open(dial, &gorm.Config{TranslateError: true})
	}
}

// Open connects to the configured database and optionally runs migrations.
// It fatals on failure; there is nothing useful the process can do without
// storage.
func Open(cfg *config.Config) *gorm.DB {
	db, err := ConnectWithRetry(BuildDSN(cfg), connectTimeout, gormOpener(cfg))
	if err != nil {
		log.Fatal(err)
	}

	if cfg.RunMigrations {
		if err := db.AutoMigrate(
			&authentity.User{},
			&notesentity.Note{},
		); err != nil {
			log.Fatalf("failed to migrate: %v", err)
		}
	}

	return db
}
