package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/davinevae-hub/PeriPath/app/models"
)

// LogRepository defines the interface for daily-log database operations.
// A put fully replaces any prior record for the same date; deleting an absent
// date and looking up a date with no entry are normal empty outcomes, not
// errors.
type LogRepository interface {
	Put(ctx context.Context, log *models.DailyLog) error
	GetByDate(ctx context.Context, date string) (*models.DailyLog, error)
	GetAll(ctx context.Context) ([]models.DailyLog, error)
	GetRange(ctx context.Context, from, to string) ([]models.DailyLog, error)
	Delete(ctx context.Context, date string) error
	Clear(ctx context.Context) error
	Count(ctx context.Context) (int64, error)
}

// SettingRepository defines the interface for application settings
type SettingRepository interface {
	Get() (*models.AppSettings, error)
	Save(settings *models.AppSettings) error
	GetValue(key string) (string, error)
	SetValue(key, value string) error
}

// Repositories holds all repository instances
type Repositories struct {
	Log     LogRepository
	Setting SettingRepository
}

// NewRepositories creates a new instance of all repositories
func NewRepositories(db *gorm.DB) *Repositories {
	return &Repositories{
		Log:     NewLogRepository(db),
		Setting: NewSettingRepository(db),
	}
}
