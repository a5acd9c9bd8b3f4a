package apiv1

import (
	"github.com/gofiber/fiber/v2"

	// Delegate to existing controllers to keep behavior consistent
	"github.com/davinevae-hub/PeriPath/app/controllers"
)

// APIServer implements the v1 API surface
type APIServer struct{}

// NewAPIServer creates a new API server instance
func NewAPIServer() *APIServer {
	return &APIServer{}
}

// GetPing handles the ping endpoint
func (s *APIServer) GetPing(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"ping": "pong"})
}

// ListLogs returns all entries, optionally bounded by from/to.
func (s *APIServer) ListLogs(c *fiber.Ctx) error {
	return controllers.HandleListLogsAPI(c)
}

// GetLog returns one entry by date.
func (s *APIServer) GetLog(c *fiber.Ctx) error {
	return controllers.HandleGetLogAPI(c)
}

// PutLog inserts or replaces one entry.
func (s *APIServer) PutLog(c *fiber.Ctx) error {
	return controllers.HandlePutLogAPI(c)
}

// DeleteLog removes one entry.
func (s *APIServer) DeleteLog(c *fiber.Ctx) error {
	return controllers.HandleDeleteLogAPI(c)
}

// GetInsights returns the insights snapshot.
func (s *APIServer) GetInsights(c *fiber.Ctx) error {
	return controllers.HandleInsightsAPI(c)
}

// GetReport returns the report snapshot for a range.
func (s *APIServer) GetReport(c *fiber.Ctx) error {
	return controllers.HandleReportAPI(c)
}

// GetCalendar returns the shaded month grid.
func (s *APIServer) GetCalendar(c *fiber.Ctx) error {
	return controllers.HandleCalendarAPI(c)
}

// ExportJSON streams the JSON export.
func (s *APIServer) ExportJSON(c *fiber.Ctx) error {
	return controllers.HandleExportJSONAPI(c)
}

// ExportCSV streams the CSV export.
func (s *APIServer) ExportCSV(c *fiber.Ctx) error {
	return controllers.HandleExportCSVAPI(c)
}

// Import imports a posted JSON export.
func (s *APIServer) Import(c *fiber.Ctx) error {
	return controllers.HandleImportAPI(c)
}

// Wipe clears the store after explicit confirmation.
func (s *APIServer) Wipe(c *fiber.Ctx) error {
	return controllers.HandleWipeAPI(c)
}

// RegisterHandlers attaches the v1 routes to the given router group.
func RegisterHandlers(r fiber.Router, s *APIServer) {
	r.Get("/ping", s.GetPing)

	r.Get("/logs", s.ListLogs)
	r.Get("/logs/:date", s.GetLog)
	r.Put("/logs/:date", s.PutLog)
	r.Delete("/logs/:date", s.DeleteLog)

	r.Get("/insights", s.GetInsights)
	r.Get("/report", s.GetReport)
	r.Get("/calendar", s.GetCalendar)

	r.Get("/export/json", s.ExportJSON)
	r.Get("/export/csv", s.ExportCSV)
	r.Post("/import", s.Import)
	r.Post("/wipe", s.Wipe)
}
