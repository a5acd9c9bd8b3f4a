package controllers

import (
	"fmt"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/davinevae-hub/PeriPath/app/models"
	"github.com/davinevae-hub/PeriPath/internal/pkg/flash"
	"github.com/davinevae-hub/PeriPath/internal/pkg/statistics"
)

// HandleCheckinForm renders the daily check-in for ?date= (default today),
// prefilled from the store when an entry exists.
func HandleCheckinForm(c *fiber.Ctx) error {
	date := c.Query("date")
	if !models.IsDateKey(date) {
		date = todayKey()
	}

	entry, err := logRepo().GetByDate(c.UserContext(), date)
	if err != nil {
		flash.Error(c, "Could not load entry: "+err.Error())
	}
	if entry == nil {
		entry = &models.DailyLog{Date: date, Symptoms: models.SymptomValues{}.Normalized()}
	}

	return c.Render("checkin", fiber.Map{
		"Title":      models.GetAppSettings().GetSiteTitle(),
		"Date":       date,
		"Entry":      entry,
		"Categories": models.SymptomsByCategory(),
		"Flash":      flash.Get(c),
	}, "layouts/main")
}

// HandleCheckinSave persists a check-in form post and redirects back to the
// form. Symptom values are clamped, the score recomputed and notes trimmed
// before the write.
func HandleCheckinSave(c *fiber.Ctx) error {
	date := c.FormValue("date")
	if !models.IsDateKey(date) {
		flash.Error(c, "Invalid date.")
		return c.Redirect("/", fiber.StatusSeeOther)
	}

	entry := entryFromForm(c, date)
	if err := logRepo().Put(c.UserContext(), entry); err != nil {
		flash.Error(c, "Save failed: "+err.Error())
		return c.Redirect("/?date="+date, fiber.StatusSeeOther)
	}
	statistics.BumpRevision()

	flash.Success(c, fmt.Sprintf("Saved entry for %s.", date))
	return c.Redirect("/?date="+date, fiber.StatusSeeOther)
}

// HandleDaySave is the calendar day editor save: same write path as the
// check-in form, addressed by route date.
func HandleDaySave(c *fiber.Ctx) error {
	date, ok := dateParam(c)
	if !ok {
		flash.Error(c, "Invalid date.")
		return c.Redirect("/calendar", fiber.StatusSeeOther)
	}

	entry := entryFromForm(c, date)
	if err := logRepo().Put(c.UserContext(), entry); err != nil {
		flash.Error(c, "Save failed: "+err.Error())
		return c.Redirect("/calendar", fiber.StatusSeeOther)
	}
	statistics.BumpRevision()

	flash.Success(c, fmt.Sprintf("Saved entry for %s.", date))
	return c.Redirect("/calendar", fiber.StatusSeeOther)
}

// HandleDayDelete removes a day's entry. Deleting a day that has no entry is
// fine and reported as success.
func HandleDayDelete(c *fiber.Ctx) error {
	date, ok := dateParam(c)
	if !ok {
		flash.Error(c, "Invalid date.")
		return c.Redirect("/calendar", fiber.StatusSeeOther)
	}

	if err := logRepo().Delete(c.UserContext(), date); err != nil {
		flash.Error(c, "Delete failed: "+err.Error())
		return c.Redirect("/calendar", fiber.StatusSeeOther)
	}
	statistics.BumpRevision()

	flash.Success(c, fmt.Sprintf("Deleted entry for %s.", date))
	return c.Redirect("/calendar", fiber.StatusSeeOther)
}

// entryFromForm builds a normalized DailyLog from posted form values. Form
// fields are named after the catalog keys.
func entryFromForm(c *fiber.Ctx, date string) *models.DailyLog {
	symptoms := models.SymptomValues{}
	for _, key := range models.SymptomKeys() {
		v, err := strconv.Atoi(c.FormValue(key, "0"))
		if err != nil {
			v = 0
		}
		symptoms[key] = v
	}

	entry := &models.DailyLog{
		Date:     date,
		Symptoms: symptoms,
		Period:   c.FormValue("period") == "on" || c.FormValue("period") == "1",
		Notes:    c.FormValue("notes"),
	}
	entry.Normalize()
	return entry
}
