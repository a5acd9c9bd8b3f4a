package statistics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/davinevae-hub/PeriPath/app/models"
)

func TestComputeInsightsEmpty(t *testing.T) {
	today := time.Date(2024, 5, 14, 0, 0, 0, 0, time.UTC)
	snap := ComputeInsights(nil, today)

	assert.False(t, snap.HasData)
	assert.Equal(t, TrendUnknown, snap.Rolling.Trend)
	assert.Empty(t, snap.Top)
	assert.Empty(t, snap.Series)
	assert.Equal(t, "2024-05-14", snap.To)
}

func TestComputeInsights(t *testing.T) {
	today := time.Date(2024, 5, 14, 0, 0, 0, 0, time.UTC)
	logs := []models.DailyLog{
		day(DateKey(today.AddDate(0, 0, -10)), 2, false, ""),
		day(DateKey(today.AddDate(0, 0, -2)), 6, false, ""),
		day(DateKey(today), 4, false, ""),
	}

	snap := ComputeInsights(logs, today)
	require.True(t, snap.HasData)
	assert.Len(t, snap.Series, 30)
	assert.Equal(t, models.MaxScore, snap.ChartMax)

	require.True(t, snap.Rolling.Last7OK)
	assert.InDelta(t, 5.0, snap.Rolling.Last7, 1e-9)
	require.True(t, snap.Rolling.Prev7OK)
	assert.InDelta(t, 2.0, snap.Rolling.Prev7, 1e-9)
	assert.Equal(t, TrendUp, snap.Rolling.Trend)

	require.NotEmpty(t, snap.Top)
	assert.LessOrEqual(t, len(snap.Top), InsightsTopLimit)
}

func TestComputeReportFixedRange(t *testing.T) {
	today := time.Date(2024, 5, 30, 0, 0, 0, 0, time.UTC)
	logs := []models.DailyLog{
		day("2024-03-01", 20, true, "old, outside range"),
		day("2024-05-10", 4, true, "cramping"),
		day("2024-05-20", 8, false, ""),
	}

	snap := ComputeReport(logs, 30, today)
	assert.Equal(t, "2024-05-01", snap.From)
	assert.Equal(t, "2024-05-30", snap.To)
	assert.Equal(t, 2, snap.Stats.Entries)
	assert.Equal(t, 8, snap.Stats.MaxScore)
	assert.Equal(t, 1, snap.Stats.PeriodDays)
	require.Len(t, snap.Notes, 1)
	assert.Equal(t, "2024-05-10", snap.Notes[0].Date)
}

func TestComputeReportAllRange(t *testing.T) {
	today := time.Date(2024, 5, 30, 0, 0, 0, 0, time.UTC)
	logs := []models.DailyLog{
		day("2024-03-01", 20, true, ""),
		day("2024-05-10", 4, true, ""),
	}

	snap := ComputeReport(logs, 0, today)
	assert.Equal(t, "2024-03-01", snap.From, "all-range meta starts at first entry")
	assert.Equal(t, 2, snap.Stats.Entries)
	assert.Equal(t, 20, snap.Stats.MaxScore)

	empty := ComputeReport(nil, 0, today)
	assert.Equal(t, empty.From, empty.To)
	assert.Equal(t, 0, empty.Stats.Entries)
}

func TestComputeReportCycleWithinRange(t *testing.T) {
	today := time.Date(2024, 5, 30, 0, 0, 0, 0, time.UTC)
	logs := []models.DailyLog{
		day("2024-05-01", 0, true, ""),
		day("2024-05-02", 0, false, ""),
		day("2024-05-29", 0, true, ""),
	}

	snap := ComputeReport(logs, 30, today)
	require.True(t, snap.Cycle.Sufficient)
	assert.Equal(t, []int{28}, snap.Cycle.Intervals)
}
