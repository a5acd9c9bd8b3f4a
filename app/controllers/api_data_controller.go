package controllers

import (
	"bytes"
	"errors"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/davinevae-hub/PeriPath/internal/pkg/exchange"
	"github.com/davinevae-hub/PeriPath/internal/pkg/statistics"
)

// HandleExportJSONAPI streams the JSON export as a download.
func HandleExportJSONAPI(c *fiber.Ctx) error {
	logs, err := logRepo().GetAll(c.UserContext())
	if err != nil {
		return storeError(c, err)
	}

	var buf bytes.Buffer
	now := time.Now()
	if err := exchange.WriteJSON(&buf, logs, now); err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "export_failed", err.Error())
	}

	filename := fmt.Sprintf("peripath-export-%s.json", statistics.DateKey(now))
	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(buf.Bytes())
}

// HandleExportCSVAPI streams the CSV export as a download.
func HandleExportCSVAPI(c *fiber.Ctx) error {
	logs, err := logRepo().GetAll(c.UserContext())
	if err != nil {
		return storeError(c, err)
	}

	var buf bytes.Buffer
	if err := exchange.WriteCSV(&buf, logs); err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "export_failed", err.Error())
	}

	filename := fmt.Sprintf("peripath-export-%s.csv", statistics.DateKey(time.Now()))
	c.Set(fiber.HeaderContentType, "text/csv")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(buf.Bytes())
}

// HandleImportAPI imports a JSON export posted as the request body. A
// payload without a logs array fails as a whole; individual bad records are
// skipped and counted.
func HandleImportAPI(c *fiber.Ctx) error {
	result, err := exchange.Import(c.UserContext(), logRepo(), c.Body())
	if err != nil {
		if errors.Is(err, exchange.ErrInvalidPayload) {
			return jsonError(c, fiber.StatusBadRequest, "invalid_payload", err.Error())
		}
		return storeError(c, err)
	}
	statistics.BumpRevision()

	return c.JSON(result)
}

// HandleWipeAPI clears the store. The caller must send {"confirm":"DELETE"}.
func HandleWipeAPI(c *fiber.Ctx) error {
	var body struct {
		Confirm string `json:"confirm"`
	}
	if err := c.BodyParser(&body); err != nil || body.Confirm != WipeConfirmToken {
		return jsonError(c, fiber.StatusBadRequest, "confirm_required",
			fmt.Sprintf("send {\"confirm\":%q} to wipe all data", WipeConfirmToken))
	}

	if err := logRepo().Clear(c.UserContext()); err != nil {
		return storeError(c, err)
	}
	statistics.BumpRevision()

	return c.JSON(fiber.Map{"wiped": true})
}
