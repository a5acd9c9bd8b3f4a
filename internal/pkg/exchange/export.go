package exchange

import (
	"encoding/csv"
	"encoding/json"
	"io"
	"strconv"
	"time"

	"github.com/davinevae-hub/PeriPath/app/models"
)

// The export payload is a stable interchange format: importing a previously
// exported file must reproduce the same set of entries.
const (
	AppName       = "PeriPath"
	FormatVersion = 2
)

// ExportPayload is the JSON export envelope.
type ExportPayload struct {
	App        string            `json:"app"`
	Version    int               `json:"version"`
	ExportedAt string            `json:"exportedAt"`
	Logs       []models.DailyLog `json:"logs"`
}

// NewExport builds the envelope around the given logs.
func NewExport(logs []models.DailyLog, now time.Time) ExportPayload {
	if logs == nil {
		logs = []models.DailyLog{}
	}
	return ExportPayload{
		App:        AppName,
		Version:    FormatVersion,
		ExportedAt: now.UTC().Format(time.RFC3339),
		Logs:       logs,
	}
}

// WriteJSON writes the indented JSON export to w.
func WriteJSON(w io.Writer, logs []models.DailyLog, now time.Time) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(NewExport(logs, now))
}

// WriteCSV writes the CSV export to w: a header row of
// date,score,period,notes followed by one column per catalog symptom, then
// one row per entry. Period serializes as 1/0; encoding/csv quotes notes and
// doubles embedded quotes.
func WriteCSV(w io.Writer, logs []models.DailyLog) error {
	cw := csv.NewWriter(w)

	header := append([]string{"date", "score", "period", "notes"}, models.SymptomKeys()...)
	if err := cw.Write(header); err != nil {
		return err
	}

	for _, l := range logs {
		period := "0"
		if l.Period {
			period = "1"
		}
		row := []string{
			l.Date,
			strconv.Itoa(l.EffectiveScore()),
			period,
			l.Notes,
		}
		for _, key := range models.SymptomKeys() {
			row = append(row, strconv.Itoa(l.Symptoms[key]))
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}
