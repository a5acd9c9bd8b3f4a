package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/davinevae-hub/PeriPath/app/models"
)

// logRepository implements the LogRepository interface
type logRepository struct {
	db *gorm.DB
}

// NewLogRepository creates a new daily-log repository instance
func NewLogRepository(db *gorm.DB) LogRepository {
	return &logRepository{db: db}
}

// Put inserts or replaces the record for the entry's date. A zero UpdatedAt
// is stamped with the current time; import passes a non-zero one through.
func (r *logRepository) Put(ctx context.Context, log *models.DailyLog) error {
	if log.UpdatedAt.IsZero() {
		log.UpdatedAt = time.Now()
	}
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "date"}},
		UpdateAll: true,
	}).Create(log).Error
}

// GetByDate is a point lookup. A date with no entry returns (nil, nil).
func (r *logRepository) GetByDate(ctx context.Context, date string) (*models.DailyLog, error) {
	var log models.DailyLog
	err := r.db.WithContext(ctx).First(&log, "date = ?", date).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &log, nil
}

// GetAll returns every record ordered by date ascending.
func (r *logRepository) GetAll(ctx context.Context) ([]models.DailyLog, error) {
	var logs []models.DailyLog
	err := r.db.WithContext(ctx).Order("date ASC").Find(&logs).Error
	return logs, err
}

// GetRange returns records with from <= date <= to, ordered by date ascending.
// ISO date strings compare lexicographically in chronological order, so this
// is a plain string range.
func (r *logRepository) GetRange(ctx context.Context, from, to string) ([]models.DailyLog, error) {
	var logs []models.DailyLog
	err := r.db.WithContext(ctx).
		Where("date >= ? AND date <= ?", from, to).
		Order("date ASC").Find(&logs).Error
	return logs, err
}

// Delete removes the record for a date. Deleting an absent date is a no-op.
func (r *logRepository) Delete(ctx context.Context, date string) error {
	return r.db.WithContext(ctx).Delete(&models.DailyLog{}, "date = ?", date).Error
}

// Clear removes every record. Only the explicit, user-confirmed wipe calls
// this.
func (r *logRepository) Clear(ctx context.Context) error {
	return r.db.WithContext(ctx).Where("1 = 1").Delete(&models.DailyLog{}).Error
}

// Count returns the total number of records
func (r *logRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.DailyLog{}).Count(&count).Error
	return count, err
}
