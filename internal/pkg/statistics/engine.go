package statistics

import (
	"sort"
	"strings"
	"time"

	"github.com/davinevae-hub/PeriPath/app/models"
)

// The engine is pure: every function here maps an already-sorted slice of
// daily logs (plus an explicit reference time where windows are involved) to a
// result, touching neither the store nor the cache.

// Trend classifies the direction of the 7-day rolling comparison.
type Trend string

const (
	TrendUp      Trend = "up"
	TrendDown    Trend = "down"
	TrendFlat    Trend = "flat"
	TrendUnknown Trend = "unknown"
)

// TrendDeadZone is the band around zero inside which a delta counts as flat,
// so the arrow does not flip on sub-threshold noise.
const TrendDeadZone = 0.2

// Result list caps.
const (
	InsightsTopLimit = 6
	ReportTopLimit   = 8
	RecentNotesLimit = 8
)

// DateKey formats t as a store key.
func DateKey(t time.Time) string {
	return t.Format(models.DateLayout)
}

// DaysBetween returns b - a in whole days for two date keys.
func DaysBetween(a, b string) int {
	ta, err := time.Parse(models.DateLayout, a)
	if err != nil {
		return 0
	}
	tb, err := time.Parse(models.DateLayout, b)
	if err != nil {
		return 0
	}
	return int(tb.Sub(ta).Hours() / 24)
}

// EntryScore is the canonical per-day severity: the sum of the entry's
// symptom values. The stored score is never trusted here, so stale or
// imported values cannot skew an aggregate.
func EntryScore(l models.DailyLog) int {
	return l.Symptoms.Sum()
}

// FilterRange keeps logs with from <= date <= to. Input order is preserved.
func FilterRange(logs []models.DailyLog, from, to string) []models.DailyLog {
	var out []models.DailyLog
	for _, l := range logs {
		if l.Date >= from && l.Date <= to {
			out = append(out, l)
		}
	}
	return out
}

// Average returns the mean score of the given logs. ok is false for an empty
// window, which renders as "no data".
func Average(logs []models.DailyLog) (float64, bool) {
	if len(logs) == 0 {
		return 0, false
	}
	sum := 0
	for _, l := range logs {
		sum += EntryScore(l)
	}
	return float64(sum) / float64(len(logs)), true
}

// RollingComparison holds the two 7-day window averages and their trend.
type RollingComparison struct {
	Last7     float64 `json:"last7"`
	Prev7     float64 `json:"prev7"`
	Last7OK   bool    `json:"last7Ok"`
	Prev7OK   bool    `json:"prev7Ok"`
	Delta     float64 `json:"delta"`
	Trend     Trend   `json:"trend"`
	Last7From string  `json:"last7From"`
	Prev7From string  `json:"prev7From"`
	Prev7To   string  `json:"prev7To"`
}

// Rolling7 compares [today-6, today] against [today-13, today-7].
func Rolling7(logs []models.DailyLog, today time.Time) RollingComparison {
	rc := RollingComparison{
		Last7From: DateKey(today.AddDate(0, 0, -6)),
		Prev7From: DateKey(today.AddDate(0, 0, -13)),
		Prev7To:   DateKey(today.AddDate(0, 0, -7)),
		Trend:     TrendUnknown,
	}

	rc.Last7, rc.Last7OK = Average(FilterRange(logs, rc.Last7From, DateKey(today)))
	rc.Prev7, rc.Prev7OK = Average(FilterRange(logs, rc.Prev7From, rc.Prev7To))

	if !rc.Last7OK || !rc.Prev7OK {
		return rc
	}

	rc.Delta = rc.Last7 - rc.Prev7
	switch {
	case rc.Delta > TrendDeadZone:
		rc.Trend = TrendUp
	case rc.Delta < -TrendDeadZone:
		rc.Trend = TrendDown
	default:
		rc.Trend = TrendFlat
	}
	return rc
}

// SymptomAverage is one row of the top-symptom ranking.
type SymptomAverage struct {
	Key     string  `json:"key"`
	Label   string  `json:"label"`
	Average float64 `json:"average"`
}

// TopSymptoms ranks catalog symptoms by their mean value across the given
// window's entries (days with no entry do not dilute the mean; a missing key
// on a logged day counts as zero). Symptoms that never occurred are dropped,
// and at most limit rows come back. Ties keep catalog order.
func TopSymptoms(logs []models.DailyLog, limit int) []SymptomAverage {
	if len(logs) == 0 {
		return nil
	}

	averages := make([]SymptomAverage, 0, len(models.SymptomCatalog))
	for _, s := range models.SymptomCatalog {
		sum := 0
		for _, l := range logs {
			sum += l.Symptoms[s.Key]
		}
		averages = append(averages, SymptomAverage{
			Key:     s.Key,
			Label:   s.Label,
			Average: float64(sum) / float64(len(logs)),
		})
	}

	sort.SliceStable(averages, func(i, j int) bool {
		return averages[i].Average > averages[j].Average
	})

	out := make([]SymptomAverage, 0, limit)
	for _, a := range averages {
		if len(out) == limit {
			break
		}
		if a.Average > 0 {
			out = append(out, a)
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

// SeriesPoint is one calendar day of the chart series. Score is nil for days
// with no entry; the renderer breaks the line there instead of interpolating.
type SeriesPoint struct {
	Date  string `json:"date"`
	Score *int   `json:"score"`
}

// DailySeries emits one point per calendar day for the days-long window
// ending at end, matching entries by exact date key.
func DailySeries(logs []models.DailyLog, end time.Time, days int) []SeriesPoint {
	byDate := make(map[string]int, len(logs))
	for _, l := range logs {
		byDate[l.Date] = EntryScore(l)
	}

	series := make([]SeriesPoint, 0, days)
	start := end.AddDate(0, 0, -(days - 1))
	for i := 0; i < days; i++ {
		key := DateKey(start.AddDate(0, 0, i))
		p := SeriesPoint{Date: key}
		if score, ok := byDate[key]; ok {
			s := score
			p.Score = &s
		}
		series = append(series, p)
	}
	return series
}

// ScoreBucket classifies a summed daily score into one of four severity
// buckets used for calendar shading.
func ScoreBucket(score int) int {
	switch {
	case score <= 2:
		return 1
	case score <= 8:
		return 2
	case score <= 16:
		return 3
	default:
		return 4
	}
}

// SymptomBucket classifies a single symptom's raw value the same way.
func SymptomBucket(v int) int {
	switch {
	case v <= 0:
		return 1
	case v == 1:
		return 2
	case v == 2:
		return 3
	default:
		return 4
	}
}

// ReportStats summarizes a report range.
type ReportStats struct {
	Entries      int     `json:"entries"`
	AverageScore float64 `json:"averageScore"`
	HasAverage   bool    `json:"hasAverage"`
	MaxScore     int     `json:"maxScore"`
	PeriodDays   int     `json:"periodDays"`
}

// Report computes entry count, mean and max score, and period-day count.
func Report(logs []models.DailyLog) ReportStats {
	stats := ReportStats{Entries: len(logs)}
	if len(logs) == 0 {
		return stats
	}

	sum := 0
	for _, l := range logs {
		score := EntryScore(l)
		sum += score
		if score > stats.MaxScore {
			stats.MaxScore = score
		}
		if l.Period {
			stats.PeriodDays++
		}
	}
	stats.AverageScore = float64(sum) / float64(len(logs))
	stats.HasAverage = true
	return stats
}

// CycleStats holds detected period starts and the intervals between them.
type CycleStats struct {
	Starts          []string `json:"starts"`
	Intervals       []int    `json:"intervals"`
	AverageInterval float64  `json:"averageInterval"`
	Sufficient      bool     `json:"sufficient"`
}

// Cycle detects period starts in date order: any period-flagged entry whose
// predecessor in the sequence was not flagged (or does not exist) starts a
// cycle. A logging gap between two flagged entries therefore splits what may
// have been one continuous period into two starts; that approximation is kept
// deliberately. At least two starts are needed for intervals.
func Cycle(logs []models.DailyLog) CycleStats {
	var cs CycleStats
	prevWasPeriod := false
	for _, l := range logs {
		if l.Period && !prevWasPeriod {
			cs.Starts = append(cs.Starts, l.Date)
		}
		prevWasPeriod = l.Period
	}

	if len(cs.Starts) < 2 {
		return cs
	}

	cs.Sufficient = true
	sum := 0
	for i := 1; i < len(cs.Starts); i++ {
		d := DaysBetween(cs.Starts[i-1], cs.Starts[i])
		cs.Intervals = append(cs.Intervals, d)
		sum += d
	}
	cs.AverageInterval = float64(sum) / float64(len(cs.Intervals))
	return cs
}

// NoteEntry is one dated note for the report.
type NoteEntry struct {
	Date  string `json:"date"`
	Notes string `json:"notes"`
}

// RecentNotes keeps entries with non-empty trimmed notes, returning the last
// limit of them in most-recent-first order.
func RecentNotes(logs []models.DailyLog, limit int) []NoteEntry {
	var noted []models.DailyLog
	for _, l := range logs {
		if strings.TrimSpace(l.Notes) != "" {
			noted = append(noted, l)
		}
	}
	if len(noted) > limit {
		noted = noted[len(noted)-limit:]
	}

	out := make([]NoteEntry, 0, len(noted))
	for i := len(noted) - 1; i >= 0; i-- {
		out = append(out, NoteEntry{Date: noted[i].Date, Notes: strings.TrimSpace(noted[i].Notes)})
	}
	if len(out) == 0 {
		return nil
	}
	return out
}
