package controllers

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/davinevae-hub/PeriPath/app/models"
	"github.com/davinevae-hub/PeriPath/internal/pkg/flash"
	"github.com/davinevae-hub/PeriPath/internal/pkg/statistics"
)

// CalendarCell is one day of the month grid.
type CalendarCell struct {
	Date    string `json:"date"`
	Day     int    `json:"day"`
	InMonth bool   `json:"inMonth"`
	HasData bool   `json:"hasData"`
	Period  bool   `json:"period"`
	Score   int    `json:"score"`
	Bucket  int    `json:"bucket"` // 0 when the day has no entry
}

// CalendarMonth is the fully prepared month view: a Sunday-aligned grid
// covering the whole month plus the cursor dates for prev/next navigation.
type CalendarMonth struct {
	Year      int            `json:"year"`
	Month     int            `json:"month"`
	Label     string         `json:"label"`
	Mode      string         `json:"mode"`
	Cells     []CalendarCell `json:"cells"`
	PrevYear  int            `json:"prevYear"`
	PrevMonth int            `json:"prevMonth"`
	NextYear  int            `json:"nextYear"`
	NextMonth int            `json:"nextMonth"`
}

// BuildCalendarMonth classifies each day of the grid into a shading bucket.
// Mode "score" buckets the summed daily score; a symptom key buckets that
// symptom's raw value instead.
func BuildCalendarMonth(logs []models.DailyLog, year int, month time.Month, mode string) CalendarMonth {
	byDate := make(map[string]models.DailyLog, len(logs))
	for _, l := range logs {
		byDate[l.Date] = l
	}

	monthStart := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	monthEnd := monthStart.AddDate(0, 1, -1)

	// Sunday start, Saturday end
	gridStart := monthStart.AddDate(0, 0, -int(monthStart.Weekday()))
	gridEnd := monthEnd.AddDate(0, 0, int(time.Saturday-monthEnd.Weekday()))

	cm := CalendarMonth{
		Year:  year,
		Month: int(month),
		Label: monthStart.Format("January 2006"),
		Mode:  mode,
	}
	prev := monthStart.AddDate(0, -1, 0)
	next := monthStart.AddDate(0, 1, 0)
	cm.PrevYear, cm.PrevMonth = prev.Year(), int(prev.Month())
	cm.NextYear, cm.NextMonth = next.Year(), int(next.Month())

	for d := gridStart; !d.After(gridEnd); d = d.AddDate(0, 0, 1) {
		key := statistics.DateKey(d)
		cell := CalendarCell{
			Date:    key,
			Day:     d.Day(),
			InMonth: d.Month() == month,
		}
		if entry, ok := byDate[key]; ok {
			cell.HasData = true
			cell.Period = entry.Period
			cell.Score = statistics.EntryScore(entry)
			if mode == "score" {
				cell.Bucket = statistics.ScoreBucket(cell.Score)
			} else {
				cell.Bucket = statistics.SymptomBucket(entry.Symptoms[mode])
			}
		}
		cm.Cells = append(cm.Cells, cell)
	}
	return cm
}

// HandleCalendar renders the month view for ?year=&month=&mode= (default the
// current month and the preferred shade mode).
func HandleCalendar(c *fiber.Ctx) error {
	now := time.Now()
	year, err := strconv.Atoi(c.Query("year"))
	if err != nil {
		year = now.Year()
	}
	month, err := strconv.Atoi(c.Query("month"))
	if err != nil || month < 1 || month > 12 {
		month = int(now.Month())
	}
	mode := shadeModeQuery(c)

	logs, err := logRepo().GetAll(c.UserContext())
	if err != nil {
		flash.Error(c, "Could not load calendar: "+err.Error())
	}

	return c.Render("calendar", fiber.Map{
		"Title":    models.GetAppSettings().GetSiteTitle(),
		"Month":    BuildCalendarMonth(logs, year, time.Month(month), mode),
		"Catalog":  models.SymptomCatalog,
		"Flash":    flash.Get(c),
		"ShadeSel": mode,
	}, "layouts/main")
}
