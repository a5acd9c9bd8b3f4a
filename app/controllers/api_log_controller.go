package controllers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/davinevae-hub/PeriPath/app/models"
	"github.com/davinevae-hub/PeriPath/internal/pkg/statistics"
)

// HandleListLogsAPI returns all entries, optionally bounded by from/to date
// query params, sorted by date ascending. Each bound applies on its own; a
// bound that is present but not a date is rejected.
func HandleListLogsAPI(c *fiber.Ctx) error {
	from, to := c.Query("from"), c.Query("to")
	if from != "" && !models.IsDateKey(from) {
		return jsonError(c, fiber.StatusBadRequest, "bad_request", "from must be YYYY-MM-DD")
	}
	if to != "" && !models.IsDateKey(to) {
		return jsonError(c, fiber.StatusBadRequest, "bad_request", "to must be YYYY-MM-DD")
	}

	var (
		logs []models.DailyLog
		err  error
	)
	if from == "" && to == "" {
		logs, err = logRepo().GetAll(c.UserContext())
	} else {
		if from == "" {
			from = "0000-01-01"
		}
		if to == "" {
			to = "9999-12-31"
		}
		logs, err = logRepo().GetRange(c.UserContext(), from, to)
	}
	if err != nil {
		return storeError(c, err)
	}

	if logs == nil {
		logs = []models.DailyLog{}
	}
	return c.JSON(fiber.Map{"logs": logs, "count": len(logs)})
}

// HandleGetLogAPI is the point lookup. A date with no entry is 404 with a
// not_found code, not a storage error.
func HandleGetLogAPI(c *fiber.Ctx) error {
	date, ok := dateParam(c)
	if !ok {
		return jsonError(c, fiber.StatusBadRequest, "bad_request", "date must be YYYY-MM-DD")
	}

	entry, err := logRepo().GetByDate(c.UserContext(), date)
	if err != nil {
		return storeError(c, err)
	}
	if entry == nil {
		return jsonError(c, fiber.StatusNotFound, "not_found", "no entry for "+date)
	}
	return c.JSON(entry)
}

// HandlePutLogAPI inserts or replaces the entry for the route date. The body
// carries symptoms/period/notes; values are clamped and the score recomputed
// server-side regardless of what the client sent.
func HandlePutLogAPI(c *fiber.Ctx) error {
	date, ok := dateParam(c)
	if !ok {
		return jsonError(c, fiber.StatusBadRequest, "bad_request", "date must be YYYY-MM-DD")
	}

	var body struct {
		Symptoms models.SymptomValues `json:"symptoms"`
		Period   bool                 `json:"period"`
		Notes    string               `json:"notes"`
	}
	if err := c.BodyParser(&body); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "bad_request", "invalid JSON body")
	}

	entry := &models.DailyLog{
		Date:     date,
		Symptoms: body.Symptoms,
		Period:   body.Period,
		Notes:    body.Notes,
	}
	entry.Normalize()
	if err := entry.Validate(); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "bad_request", err.Error())
	}

	if err := logRepo().Put(c.UserContext(), entry); err != nil {
		return storeError(c, err)
	}
	statistics.BumpRevision()

	return c.JSON(entry)
}

// HandleDeleteLogAPI removes the entry for the route date. Deleting an
// absent date succeeds.
func HandleDeleteLogAPI(c *fiber.Ctx) error {
	date, ok := dateParam(c)
	if !ok {
		return jsonError(c, fiber.StatusBadRequest, "bad_request", "date must be YYYY-MM-DD")
	}

	if err := logRepo().Delete(c.UserContext(), date); err != nil {
		return storeError(c, err)
	}
	statistics.BumpRevision()

	return c.JSON(fiber.Map{"deleted": date})
}
