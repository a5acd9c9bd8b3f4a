package controllers

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/davinevae-hub/PeriPath/internal/pkg/statistics"
)

// HandleInsightsAPI returns the insights snapshot as JSON.
func HandleInsightsAPI(c *fiber.Ctx) error {
	logs, err := logRepo().GetAll(c.UserContext())
	if err != nil {
		return storeError(c, err)
	}
	return c.JSON(statistics.CachedInsights(logs, time.Now()))
}

// HandleReportAPI returns the report snapshot for ?range=7|30|90|365|all.
func HandleReportAPI(c *fiber.Ctx) error {
	logs, err := logRepo().GetAll(c.UserContext())
	if err != nil {
		return storeError(c, err)
	}
	return c.JSON(statistics.CachedReport(logs, rangeDaysQuery(c), time.Now()))
}

// HandleCalendarAPI returns the shaded month grid for ?year=&month=&mode=.
func HandleCalendarAPI(c *fiber.Ctx) error {
	now := time.Now()
	year, err := strconv.Atoi(c.Query("year"))
	if err != nil {
		year = now.Year()
	}
	month, err := strconv.Atoi(c.Query("month"))
	if err != nil || month < 1 || month > 12 {
		month = int(now.Month())
	}

	logs, err := logRepo().GetAll(c.UserContext())
	if err != nil {
		return storeError(c, err)
	}
	return c.JSON(BuildCalendarMonth(logs, year, time.Month(month), shadeModeQuery(c)))
}
