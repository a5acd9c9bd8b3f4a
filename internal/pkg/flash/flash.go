package flash

import (
	"github.com/gofiber/fiber/v2"
	sbflash "github.com/sujit-baniya/flash"
)

// Flash message key in locals
const FlashKey = "flash"

// Messages ride a cookie so they survive the POST -> redirect -> GET flow
// every form handler uses. The locals copy covers handlers that set a status
// and render in the same request.

// Set stores a flash message for the next request and the current one.
func Set(c *fiber.Ctx, message fiber.Map) {
	c.Locals(FlashKey, message)
	sbflash.WithData(c, message)
}

// Success sets a success-flavored status message
func Success(c *fiber.Ctx, text string) {
	Set(c, fiber.Map{"type": "success", "message": text})
}

// Error sets an error-flavored status message
func Error(c *fiber.Ctx, text string) {
	Set(c, fiber.Map{"type": "error", "message": text})
}

// Get consumes the pending flash message; nil when there is none.
func Get(c *fiber.Ctx) fiber.Map {
	if fm, ok := c.Locals(FlashKey).(fiber.Map); ok {
		return fm
	}
	fm := sbflash.Get(c)
	if len(fm) == 0 {
		return nil
	}
	return fm
}
