package controllers

import (
	"fmt"
	"io"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/davinevae-hub/PeriPath/app/models"
	"github.com/davinevae-hub/PeriPath/internal/pkg/exchange"
	"github.com/davinevae-hub/PeriPath/internal/pkg/flash"
	"github.com/davinevae-hub/PeriPath/internal/pkg/statistics"
)

// WipeConfirmToken must be posted verbatim before the store is cleared.
const WipeConfirmToken = "DELETE"

// HandleSettings renders the data management page.
func HandleSettings(c *fiber.Ctx) error {
	count, err := logRepo().Count(c.UserContext())
	if err != nil {
		flash.Error(c, "Could not read store: "+err.Error())
	}

	return c.Render("settings", fiber.Map{
		"Title":    models.GetAppSettings().GetSiteTitle(),
		"Settings": models.GetAppSettings(),
		"Catalog":  models.SymptomCatalog,
		"Ranges":   reportRanges,
		"Count":    count,
		"Flash":    flash.Get(c),
	}, "layouts/main")
}

// HandleSavePreferences stores the UI preferences.
func HandleSavePreferences(c *fiber.Ctx) error {
	rangeDays, err := strconv.Atoi(c.FormValue("default_report_range", "30"))
	if err != nil {
		rangeDays = 30
	}

	settings := &models.AppSettings{
		SiteTitle:          c.FormValue("site_title", "PeriPath"),
		DefaultShadeMode:   c.FormValue("default_shade_mode", "score"),
		DefaultReportRange: rangeDays,
	}

	if err := settingRepo().Save(settings); err != nil {
		flash.Error(c, "Could not save preferences: "+err.Error())
		return c.Redirect("/settings", fiber.StatusSeeOther)
	}

	flash.Success(c, "Preferences saved.")
	return c.Redirect("/settings", fiber.StatusSeeOther)
}

// HandleImportForm imports an uploaded JSON export from the settings page.
func HandleImportForm(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		flash.Error(c, "Choose a JSON export file to import.")
		return c.Redirect("/settings", fiber.StatusSeeOther)
	}

	f, err := fileHeader.Open()
	if err != nil {
		flash.Error(c, "Could not read file: "+err.Error())
		return c.Redirect("/settings", fiber.StatusSeeOther)
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		flash.Error(c, "Could not read file: "+err.Error())
		return c.Redirect("/settings", fiber.StatusSeeOther)
	}

	result, err := exchange.Import(c.UserContext(), logRepo(), data)
	if err != nil {
		flash.Error(c, "Import failed: "+err.Error())
		return c.Redirect("/settings", fiber.StatusSeeOther)
	}
	statistics.BumpRevision()

	msg := fmt.Sprintf("Imported %d entries.", result.Imported)
	if result.Skipped > 0 {
		msg = fmt.Sprintf("Imported %d entries, skipped %d invalid records.", result.Imported, result.Skipped)
	}
	flash.Success(c, msg)
	return c.Redirect("/settings", fiber.StatusSeeOther)
}

// HandleWipe irreversibly clears the store. The form must post the literal
// confirmation token; anything else is rejected without touching data.
func HandleWipe(c *fiber.Ctx) error {
	if c.FormValue("confirm") != WipeConfirmToken {
		flash.Error(c, fmt.Sprintf("Type %s to confirm deleting all data.", WipeConfirmToken))
		return c.Redirect("/settings", fiber.StatusSeeOther)
	}

	if err := logRepo().Clear(c.UserContext()); err != nil {
		flash.Error(c, "Wipe failed: "+err.Error())
		return c.Redirect("/settings", fiber.StatusSeeOther)
	}
	statistics.BumpRevision()

	flash.Success(c, "All data deleted.")
	return c.Redirect("/settings", fiber.StatusSeeOther)
}
