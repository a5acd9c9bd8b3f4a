package controllers

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/davinevae-hub/PeriPath/app/models"
	"github.com/davinevae-hub/PeriPath/internal/pkg/flash"
	"github.com/davinevae-hub/PeriPath/internal/pkg/statistics"
)

// HandleReport renders the printable report for a selected range.
func HandleReport(c *fiber.Ctx) error {
	rangeDays := rangeDaysQuery(c)

	logs, err := logRepo().GetAll(c.UserContext())
	if err != nil {
		flash.Error(c, "Could not load report: "+err.Error())
	}

	snap := statistics.CachedReport(logs, rangeDays, time.Now())

	return c.Render("report", fiber.Map{
		"Title":  models.GetAppSettings().GetSiteTitle(),
		"Report": snap,
		"Ranges": reportRanges,
		"Flash":  flash.Get(c),
	}, "layouts/main")
}
