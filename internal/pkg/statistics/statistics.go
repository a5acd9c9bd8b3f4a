package statistics

import (
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/davinevae-hub/PeriPath/app/models"
	"github.com/davinevae-hub/PeriPath/internal/pkg/cache"
)

const (
	CacheKeyRevision = "statistics:logs:rev"
	CacheKeyInsights = "statistics:insights:%d"  // revision
	CacheKeyReport   = "statistics:report:%d:%d" // range days, revision
	CacheExpiration  = 5 * time.Minute
)

// InsightsSnapshot is everything the insights view needs.
type InsightsSnapshot struct {
	HasData   bool              `json:"hasData"`
	Rolling   RollingComparison `json:"rolling"`
	Top       []SymptomAverage  `json:"top"`
	Series    []SeriesPoint     `json:"series"`
	From      string            `json:"from"`
	To        string            `json:"to"`
	ChartMax  int               `json:"chartMax"`
	ChartDays int               `json:"chartDays"`
}

// ReportSnapshot is everything the report view needs for one range.
type ReportSnapshot struct {
	RangeDays int              `json:"rangeDays"` // 0 = all
	From      string           `json:"from"`
	To        string           `json:"to"`
	Stats     ReportStats      `json:"stats"`
	Top       []SymptomAverage `json:"top"`
	Cycle     CycleStats       `json:"cycle"`
	Notes     []NoteEntry      `json:"notes"`
}

// ComputeInsights builds the insights snapshot from sorted logs. Pure.
func ComputeInsights(logs []models.DailyLog, today time.Time) InsightsSnapshot {
	snap := InsightsSnapshot{
		HasData:   len(logs) > 0,
		To:        DateKey(today),
		From:      DateKey(today.AddDate(0, 0, -29)),
		ChartMax:  models.MaxScore,
		ChartDays: 30,
	}
	if !snap.HasData {
		snap.Rolling.Trend = TrendUnknown
		return snap
	}

	snap.Rolling = Rolling7(logs, today)

	last30 := FilterRange(logs, snap.From, snap.To)
	snap.Top = TopSymptoms(last30, InsightsTopLimit)
	snap.Series = DailySeries(last30, today, 30)
	return snap
}

// ComputeReport builds the report snapshot for a range of rangeDays ending
// today; rangeDays 0 means every entry. Pure.
func ComputeReport(logs []models.DailyLog, rangeDays int, today time.Time) ReportSnapshot {
	snap := ReportSnapshot{RangeDays: rangeDays, To: DateKey(today)}

	var filtered []models.DailyLog
	if rangeDays <= 0 {
		filtered = logs
		if len(logs) > 0 {
			snap.From = logs[0].Date
		} else {
			snap.From = snap.To
		}
	} else {
		snap.From = DateKey(today.AddDate(0, 0, -(rangeDays - 1)))
		filtered = FilterRange(logs, snap.From, snap.To)
	}

	snap.Stats = Report(filtered)
	snap.Top = TopSymptoms(filtered, ReportTopLimit)
	snap.Cycle = Cycle(filtered)
	snap.Notes = RecentNotes(filtered, RecentNotesLimit)
	return snap
}

// Revision returns the current snapshot revision. Every mutation of the log
// store bumps it, so cached snapshots built against an older revision are
// simply never read again — there is no explicit invalidation to get wrong.
func Revision() int64 {
	if !cache.Enabled() {
		return 0
	}
	rev, err := cache.GetInt64(CacheKeyRevision)
	if err != nil {
		return 0
	}
	return rev
}

// BumpRevision marks all cached snapshots stale. Called after every put,
// delete, import and wipe.
func BumpRevision() {
	if !cache.Enabled() {
		return
	}
	if _, err := cache.Incr(CacheKeyRevision); err != nil {
		log.Printf("Error bumping statistics revision: %v", err)
	}
}

// CachedInsights returns a cached insights snapshot when one exists for the
// current revision, computing and caching it otherwise.
func CachedInsights(logs []models.DailyLog, today time.Time) InsightsSnapshot {
	if !cache.Enabled() {
		return ComputeInsights(logs, today)
	}

	key := fmt.Sprintf(CacheKeyInsights, Revision())
	if raw, err := cache.Get(key); err == nil {
		var snap InsightsSnapshot
		if err := json.Unmarshal([]byte(raw), &snap); err == nil && snap.To == DateKey(today) {
			return snap
		}
	}

	snap := ComputeInsights(logs, today)
	storeSnapshot(key, snap)
	return snap
}

// CachedReport is CachedInsights for report snapshots.
func CachedReport(logs []models.DailyLog, rangeDays int, today time.Time) ReportSnapshot {
	if !cache.Enabled() {
		return ComputeReport(logs, rangeDays, today)
	}

	key := fmt.Sprintf(CacheKeyReport, rangeDays, Revision())
	if raw, err := cache.Get(key); err == nil {
		var snap ReportSnapshot
		if err := json.Unmarshal([]byte(raw), &snap); err == nil && snap.To == DateKey(today) {
			return snap
		}
	}

	snap := ComputeReport(logs, rangeDays, today)
	storeSnapshot(key, snap)
	return snap
}

func storeSnapshot(key string, snap interface{}) {
	data, err := json.Marshal(snap)
	if err != nil {
		log.Printf("Error marshaling statistics snapshot: %v", err)
		return
	}
	if err := cache.Set(key, string(data), CacheExpiration); err != nil {
		log.Printf("Error caching statistics snapshot: %v", err)
	}
}
