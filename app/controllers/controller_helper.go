package controllers

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/davinevae-hub/PeriPath/app/models"
	"github.com/davinevae-hub/PeriPath/app/repository"
	"github.com/davinevae-hub/PeriPath/internal/pkg/statistics"
)

// report range presets in days; 0 means "all"
var reportRanges = []int{7, 30, 90, 365, 0}

func logRepo() repository.LogRepository {
	return repository.GetGlobalFactory().GetLogRepository()
}

func settingRepo() repository.SettingRepository {
	return repository.GetGlobalFactory().GetSettingRepository()
}

func todayKey() string {
	return statistics.DateKey(time.Now())
}

// dateParam reads a :date route param and checks its shape. ok is false for
// anything that is not a strict calendar date.
func dateParam(c *fiber.Ctx) (string, bool) {
	date := c.Params("date")
	return date, models.IsDateKey(date)
}

// rangeDaysQuery reads range=7|30|90|365|all from the query string, falling
// back to the stored preference.
func rangeDaysQuery(c *fiber.Ctx) int {
	raw := c.Query("range")
	if raw == "" {
		return models.GetAppSettings().GetDefaultReportRange()
	}
	if raw == "all" {
		return 0
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return models.GetAppSettings().GetDefaultReportRange()
	}
	for _, preset := range reportRanges {
		if n == preset {
			return n
		}
	}
	return models.GetAppSettings().GetDefaultReportRange()
}

// shadeModeQuery reads mode= from the query string: "score" or a catalog
// symptom key. Anything else falls back to the stored preference.
func shadeModeQuery(c *fiber.Ctx) string {
	mode := c.Query("mode")
	if mode == "score" || models.IsSymptomKey(mode) {
		return mode
	}
	return models.GetAppSettings().GetDefaultShadeMode()
}

func jsonError(c *fiber.Ctx, status int, code, message string) error {
	return c.Status(status).JSON(fiber.Map{"error": code, "message": message})
}

// storeError reports a storage-layer failure to the API caller. The store
// never retries; surfacing the message is the whole failure policy.
func storeError(c *fiber.Ctx, err error) error {
	return jsonError(c, fiber.StatusInternalServerError, "storage_error", err.Error())
}
