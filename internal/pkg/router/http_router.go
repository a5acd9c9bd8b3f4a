package router

import (
	"github.com/gofiber/fiber/v2"

	"github.com/davinevae-hub/PeriPath/app/controllers"
)

type HttpRouter struct {
}

func (h HttpRouter) InstallRouter(app *fiber.App) {
	// check-in
	app.Get("/", controllers.HandleCheckinForm)
	app.Post("/checkin", controllers.HandleCheckinSave)

	// calendar + day editor
	app.Get("/calendar", controllers.HandleCalendar)
	app.Post("/day/:date", controllers.HandleDaySave)
	app.Post("/day/:date/delete", controllers.HandleDayDelete)

	// derived views
	app.Get("/insights", controllers.HandleInsights)
	app.Get("/report", controllers.HandleReport)

	// data management
	app.Get("/settings", controllers.HandleSettings)
	app.Post("/settings/preferences", controllers.HandleSavePreferences)
	app.Post("/settings/import", controllers.HandleImportForm)
	app.Post("/wipe", controllers.HandleWipe)
}

func NewHttpRouter() *HttpRouter {
	return &HttpRouter{}
}
