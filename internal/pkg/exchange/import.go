package exchange

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/davinevae-hub/PeriPath/app/models"
	"github.com/davinevae-hub/PeriPath/app/repository"
)

// ErrInvalidPayload means the file as a whole is unusable (bad JSON, or no
// logs array). Individual bad records do not produce this; they are skipped.
var ErrInvalidPayload = errors.New("invalid import payload: missing logs[]")

// ImportResult summarizes one import batch.
type ImportResult struct {
	BatchID     string   `json:"batchId"`
	Imported    int      `json:"imported"`
	Skipped     int      `json:"skipped"`
	UnknownKeys []string `json:"unknownKeys,omitempty"`
}

// importRecord mirrors the export shape, decoded leniently per record.
type importRecord struct {
	Date      string               `json:"date"`
	Symptoms  models.SymptomValues `json:"symptoms"`
	Period    bool                 `json:"period"`
	Notes     string               `json:"notes"`
	UpdatedAt string               `json:"updatedAt"`
}

// Import reads a JSON export and puts every valid record into the store.
// The stored score is recomputed from the symptoms rather than trusted, and
// symptom values are clamped; records with an invalid date are skipped
// without aborting the batch. Unknown symptom keys across the batch are
// collected for reporting and dropped from the stored entries.
func Import(ctx context.Context, repo repository.LogRepository, data []byte) (ImportResult, error) {
	result := ImportResult{BatchID: uuid.New().String()}

	var envelope struct {
		Logs json.RawMessage `json:"logs"`
	}
	if err := json.Unmarshal(data, &envelope); err != nil {
		return result, fmt.Errorf("%w: %v", ErrInvalidPayload, err)
	}
	if envelope.Logs == nil {
		return result, ErrInvalidPayload
	}

	var rawLogs []json.RawMessage
	if err := json.Unmarshal(envelope.Logs, &rawLogs); err != nil {
		return result, ErrInvalidPayload
	}

	unknown := map[string]bool{}
	for _, raw := range rawLogs {
		var rec importRecord
		if err := json.Unmarshal(raw, &rec); err != nil {
			result.Skipped++
			continue
		}
		if !models.IsDateKey(rec.Date) {
			result.Skipped++
			continue
		}

		for _, k := range rec.Symptoms.UnknownKeys() {
			unknown[k] = true
		}

		entry := &models.DailyLog{
			Date:     rec.Date,
			Symptoms: rec.Symptoms,
			Period:   rec.Period,
			Notes:    rec.Notes,
		}
		entry.Normalize()
		if ts, err := time.Parse(time.RFC3339, rec.UpdatedAt); err == nil {
			// keep the original timestamp when the source has one; it is
			// informational only
			entry.UpdatedAt = ts
		}

		if err := repo.Put(ctx, entry); err != nil {
			return result, err
		}
		result.Imported++
	}

	for k := range unknown {
		result.UnknownKeys = append(result.UnknownKeys, k)
	}
	sort.Strings(result.UnknownKeys)
	return result, nil
}
