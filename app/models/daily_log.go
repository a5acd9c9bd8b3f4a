package models

import (
	"regexp"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

// DateLayout is the canonical per-day key format. Lexicographic order on these
// strings equals chronological order.
const DateLayout = "2006-01-02"

var dateKeyPattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// IsDateKey reports whether s is a strict YYYY-MM-DD calendar date.
func IsDateKey(s string) bool {
	if !dateKeyPattern.MatchString(s) {
		return false
	}
	_, err := time.Parse(DateLayout, s)
	return err == nil
}

// SymptomValues maps catalog keys to severities. Stored as a JSON text column.
type SymptomValues map[string]int

// Sum adds up the severities of all catalog keys; missing keys count as zero.
// Keys outside the catalog never contribute to the score.
func (sv SymptomValues) Sum() int {
	total := 0
	for _, s := range SymptomCatalog {
		total += sv[s.Key]
	}
	return total
}

// Normalized returns a copy holding every catalog key exactly once, clamped to
// the valid severity range. Unknown keys are dropped.
func (sv SymptomValues) Normalized() SymptomValues {
	out := make(SymptomValues, len(SymptomCatalog))
	for _, s := range SymptomCatalog {
		out[s.Key] = ClampSeverity(sv[s.Key])
	}
	return out
}

// UnknownKeys returns the keys in sv that are not part of the catalog, in no
// particular order. Import surfaces these as a diagnostic.
func (sv SymptomValues) UnknownKeys() []string {
	var out []string
	for k := range sv {
		if !IsSymptomKey(k) {
			out = append(out, k)
		}
	}
	return out
}

// DailyLog is one day's symptom record. Date is the primary key; a save fully
// replaces any prior record for that date.
type DailyLog struct {
	Date      string        `gorm:"primaryKey;type:varchar(10)" json:"date" validate:"required,datetime=2006-01-02"`
	Symptoms  SymptomValues `gorm:"serializer:json;type:text" json:"symptoms"`
	Score     int           `json:"score" validate:"min=0,max=30"`
	Period    bool          `json:"period"`
	Notes     string        `gorm:"type:text" json:"notes"`
	UpdatedAt time.Time     `json:"updatedAt"`
}

// TableName specifies the table name for the DailyLog model
func (DailyLog) TableName() string {
	return "daily_logs"
}

// Normalize clamps the symptom values, fills missing catalog keys with zero,
// trims the notes and recomputes the derived score. Every write path calls
// this before persisting, so the stored score is never stale.
func (l *DailyLog) Normalize() {
	l.Symptoms = l.Symptoms.Normalized()
	l.Score = l.Symptoms.Sum()
	l.Notes = strings.TrimSpace(l.Notes)
}

// EffectiveScore returns the stored score when it matches the symptom sum and
// the recomputed sum otherwise. Readers use this instead of trusting Score.
func (l *DailyLog) EffectiveScore() int {
	return l.Symptoms.Sum()
}

var validate = validator.New()

// Validate checks the struct-level constraints (date shape, score range).
func (l *DailyLog) Validate() error {
	return validate.Struct(l)
}
