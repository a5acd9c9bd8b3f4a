package database

import (
	"fmt"
	"log"
	"time"

	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/davinevae-hub/PeriPath/app/models"
	"github.com/davinevae-hub/PeriPath/internal/pkg/env"
)

var DB *gorm.DB

const maxRetries = 5
const retryDelay = 5 * time.Second

// SetupDatabase opens the configured database and migrates the schema. The
// default is an embedded SQLite file next to the binary, which keeps all data
// on the device. DB_DRIVER=mysql switches to a hosted MySQL for people running
// PeriPath on a home server.
func SetupDatabase() {
	var err error

	switch env.GetEnv("DB_DRIVER", "sqlite") {
	case "mysql":
		dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
			env.GetEnv("DB_USER", ""),
			env.GetEnv("DB_PASSWORD", ""),
			env.GetEnv("DB_HOST", "127.0.0.1"),
			env.GetEnv("DB_PORT", "3306"),
			env.GetEnv("DB_NAME", "peripath"),
		)

		for i := 0; i < maxRetries; i++ {
			DB, err = gorm.Open(mysql.New(mysql.Config{
				DSN:                      dsn,
				DefaultStringSize:        256,
				DisableDatetimePrecision: true,
			}), &gorm.Config{})
			if err == nil {
				break
			}
			log.Printf("Failed to connect to database (try %d/%d): %v", i+1, maxRetries, err)
			if i < maxRetries-1 {
				time.Sleep(retryDelay)
			}
		}
	default:
		path := env.GetEnv("DB_PATH", "peripath.db")
		DB, err = gorm.Open(sqlite.Open(path), &gorm.Config{})
	}

	if err != nil {
		panic(err)
	}

	if err := DB.AutoMigrate(
		&models.DailyLog{},
		&models.Setting{},
	); err != nil {
		panic(err)
	}

	if err := models.LoadSettings(DB); err != nil {
		log.Printf("Warning: could not load settings: %v", err)
	}
}

// GetDB returns the shared connection. Nil until SetupDatabase has run.
func GetDB() *gorm.DB {
	return DB
}

// SetDB swaps the shared connection; used by tests to point the app at an
// in-memory database.
func SetDB(db *gorm.DB) {
	DB = db
}
