package models

import (
	"fmt"
	"strconv"
	"sync"
	"time"

	"gorm.io/gorm"
)

// Setting represents one persisted preference row
type Setting struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Key       string    `gorm:"column:setting_key;size:255;not null;uniqueIndex" json:"key" validate:"required,min=1,max=255"`
	Value     string    `gorm:"type:text" json:"value"`
	Type      string    `gorm:"size:50;not null" json:"type" validate:"required"` // string, boolean, integer
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName specifies the table name for the Setting model
func (Setting) TableName() string {
	return "settings"
}

// AppSettings holds the user preferences loaded into memory at boot.
type AppSettings struct {
	SiteTitle          string `json:"site_title" validate:"required,min=1,max=255"`
	DefaultShadeMode   string `json:"default_shade_mode" validate:"required"`
	DefaultReportRange int    `json:"default_report_range" validate:"oneof=0 7 30 90 365"`
	mu                 sync.RWMutex
}

var (
	appSettings *AppSettings
	settingsMu  sync.RWMutex
)

// GetAppSettings returns the current application settings
func GetAppSettings() *AppSettings {
	settingsMu.RLock()
	defer settingsMu.RUnlock()
	if appSettings == nil {
		return defaultAppSettings()
	}
	return appSettings
}

func defaultAppSettings() *AppSettings {
	return &AppSettings{
		SiteTitle:          "PeriPath",
		DefaultShadeMode:   "score",
		DefaultReportRange: 30,
	}
}

// LoadSettings loads settings from the database into memory, falling back to
// defaults for anything not stored yet.
func LoadSettings(db *gorm.DB) error {
	settingsMu.Lock()
	defer settingsMu.Unlock()

	appSettings = defaultAppSettings()

	var settings []Setting
	if err := db.Find(&settings).Error; err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}

	for _, setting := range settings {
		switch setting.Key {
		case "site_title":
			appSettings.SiteTitle = setting.Value
		case "default_shade_mode":
			if setting.Value == "score" || IsSymptomKey(setting.Value) {
				appSettings.DefaultShadeMode = setting.Value
			}
		case "default_report_range":
			if n, err := strconv.Atoi(setting.Value); err == nil {
				appSettings.DefaultReportRange = n
			}
		}
	}

	return nil
}

// SaveSettings validates and persists the given settings, then swaps them in
// as the active in-memory set.
func SaveSettings(db *gorm.DB, settings *AppSettings) error {
	settingsMu.Lock()
	defer settingsMu.Unlock()

	if err := settings.Validate(); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	values := map[string]string{
		"site_title":           settings.SiteTitle,
		"default_shade_mode":   settings.DefaultShadeMode,
		"default_report_range": strconv.Itoa(settings.DefaultReportRange),
	}

	for key, value := range values {
		var row Setting
		err := db.Where("setting_key = ?", key).First(&row).Error
		switch {
		case err == nil:
			row.Value = value
			row.Type = settingType(key)
			if err := db.Save(&row).Error; err != nil {
				return fmt.Errorf("failed to save setting %s: %w", key, err)
			}
		case err == gorm.ErrRecordNotFound:
			row = Setting{Key: key, Value: value, Type: settingType(key)}
			if err := db.Create(&row).Error; err != nil {
				return fmt.Errorf("failed to save setting %s: %w", key, err)
			}
		default:
			return fmt.Errorf("failed to save setting %s: %w", key, err)
		}
	}

	appSettings = settings
	return nil
}

func settingType(key string) string {
	switch key {
	case "default_report_range":
		return "integer"
	default:
		return "string"
	}
}

// Validate validates the settings
func (s *AppSettings) Validate() error {
	return validate.Struct(s)
}

// GetSiteTitle returns the site title
func (s *AppSettings) GetSiteTitle() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.SiteTitle
}

// GetDefaultShadeMode returns the calendar shade mode preference
func (s *AppSettings) GetDefaultShadeMode() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.DefaultShadeMode
}

// GetDefaultReportRange returns the preferred report range in days (0 = all)
func (s *AppSettings) GetDefaultReportRange() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.DefaultReportRange
}
