package exchange

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/davinevae-hub/PeriPath/app/models"
	"github.com/davinevae-hub/PeriPath/app/repository"
)

func newTestRepo(t *testing.T, name string) repository.LogRepository {
	t.Helper()
	dsn := fmt.Sprintf("file:%s_%s?mode=memory&cache=shared", t.Name(), name)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.DailyLog{}))
	return repository.NewLogRepository(db)
}

func logEntry(date string, symptoms models.SymptomValues, period bool, notes string) models.DailyLog {
	l := models.DailyLog{Date: date, Symptoms: symptoms, Period: period, Notes: notes}
	l.Normalize()
	return l
}

func TestWriteJSONEnvelope(t *testing.T) {
	now := time.Date(2024, 5, 14, 10, 30, 0, 0, time.UTC)
	logs := []models.DailyLog{
		logEntry("2024-05-01", models.SymptomValues{"hotFlashes": 2}, true, "warm"),
	}

	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, logs, now))

	var payload map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &payload))
	assert.Equal(t, "PeriPath", payload["app"])
	assert.EqualValues(t, 2, payload["version"])
	assert.Equal(t, "2024-05-14T10:30:00Z", payload["exportedAt"])

	rawLogs, ok := payload["logs"].([]interface{})
	require.True(t, ok)
	require.Len(t, rawLogs, 1)

	// empty store still exports an array, not null
	buf.Reset()
	require.NoError(t, WriteJSON(&buf, nil, now))
	assert.Contains(t, buf.String(), `"logs": []`)
}

func TestWriteCSV(t *testing.T) {
	logs := []models.DailyLog{
		logEntry("2024-05-01", models.SymptomValues{"hotFlashes": 2, "mood": 1}, true, `she said "rest"`),
		logEntry("2024-05-02", nil, false, ""),
	}

	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, logs))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "date,score,period,notes,hotFlashes,nightSweats,sleep,fatigue,mood,anxiety,brainFog,jointAches,dryness,libido", lines[0])
	assert.True(t, strings.HasPrefix(lines[1], `2024-05-01,3,1,"she said ""rest""",2,`), lines[1])
	assert.True(t, strings.HasPrefix(lines[2], "2024-05-02,0,0,,0,"), lines[2])
}

func TestImportRecomputesScoreAndClamps(t *testing.T) {
	repo := newTestRepo(t, "store")
	ctx := context.Background()

	data := []byte(`{
		"app": "PeriPath", "version": 2,
		"logs": [
			{"date": "2024-05-01", "symptoms": {"hotFlashes": 9, "mood": 1}, "score": 999, "period": true, "notes": "x"}
		]
	}`)

	result, err := Import(ctx, repo, data)
	require.NoError(t, err)
	assert.Equal(t, 1, result.Imported)
	assert.Equal(t, 0, result.Skipped)
	assert.NotEmpty(t, result.BatchID)

	got, err := repo.GetByDate(ctx, "2024-05-01")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, 4, got.Score, "score recomputed from clamped symptoms")
	assert.Equal(t, 3, got.Symptoms["hotFlashes"])
}

func TestImportSkipsBadDatesKeepsSiblings(t *testing.T) {
	repo := newTestRepo(t, "store")
	ctx := context.Background()

	data := []byte(`{
		"logs": [
			{"date": "2024-13-40", "symptoms": {"mood": 1}},
			{"date": "2024-05-02", "symptoms": {"mood": 2}},
			{"date": 12345},
			{"date": "2024-05-03"}
		]
	}`)

	result, err := Import(ctx, repo, data)
	require.NoError(t, err)
	assert.Equal(t, 2, result.Imported)
	assert.Equal(t, 2, result.Skipped)

	got, err := repo.GetByDate(ctx, "2024-05-02")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, 2, got.Score)

	// missing symptoms default to all zeros
	got, err = repo.GetByDate(ctx, "2024-05-03")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, 0, got.Score)
}

func TestImportRejectsMissingLogs(t *testing.T) {
	repo := newTestRepo(t, "store")

	_, err := Import(context.Background(), repo, []byte(`{"app": "PeriPath"}`))
	assert.ErrorIs(t, err, ErrInvalidPayload)

	_, err = Import(context.Background(), repo, []byte(`{"logs": "nope"}`))
	assert.ErrorIs(t, err, ErrInvalidPayload)

	_, err = Import(context.Background(), repo, []byte(`not json`))
	assert.Error(t, err)
}

func TestImportReportsUnknownSymptomKeys(t *testing.T) {
	repo := newTestRepo(t, "store")

	data := []byte(`{"logs": [
		{"date": "2024-05-01", "symptoms": {"mood": 2, "headache": 3}},
		{"date": "2024-05-02", "symptoms": {"cramps": 1}}
	]}`)

	result, err := Import(context.Background(), repo, data)
	require.NoError(t, err)
	assert.Equal(t, 2, result.Imported)
	assert.Equal(t, []string{"cramps", "headache"}, result.UnknownKeys)

	// unknown keys are not persisted
	got, err := repo.GetByDate(context.Background(), "2024-05-01")
	require.NoError(t, err)
	_, has := got.Symptoms["headache"]
	assert.False(t, has)
}

func TestExportImportRoundTrip(t *testing.T) {
	src := newTestRepo(t, "src")
	dst := newTestRepo(t, "dst")
	ctx := context.Background()

	entries := []models.DailyLog{
		logEntry("2024-05-01", models.SymptomValues{"hotFlashes": 2, "anxiety": 3}, true, "note one"),
		logEntry("2024-05-02", models.SymptomValues{"fatigue": 1}, false, ""),
		logEntry("2024-05-03", nil, false, `quoted "note"`),
	}
	for i := range entries {
		e := entries[i]
		require.NoError(t, src.Put(ctx, &e))
	}

	all, err := src.GetAll(ctx)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, all, time.Now()))

	result, err := Import(ctx, dst, buf.Bytes())
	require.NoError(t, err)
	assert.Equal(t, len(entries), result.Imported)

	imported, err := dst.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, imported, len(entries))
	for i, got := range imported {
		assert.Equal(t, entries[i].Date, got.Date)
		assert.Equal(t, entries[i].Score, got.Score)
		assert.Equal(t, entries[i].Period, got.Period)
		assert.Equal(t, entries[i].Notes, got.Notes)
		assert.Equal(t, entries[i].Symptoms, got.Symptoms)
	}
}
