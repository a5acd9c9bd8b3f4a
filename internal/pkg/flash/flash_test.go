package flash

import (
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFlashApp() *fiber.App {
	app := fiber.New()
	app.Post("/save", func(c *fiber.Ctx) error {
		Success(c, "Saved entry for 2024-05-01.")
		return c.Redirect("/done", fiber.StatusSeeOther)
	})
	app.Post("/fail", func(c *fiber.Ctx) error {
		Error(c, "Save failed.")
		return c.Redirect("/done", fiber.StatusSeeOther)
	})
	app.Get("/done", func(c *fiber.Ctx) error {
		fm := Get(c)
		if fm == nil {
			return c.SendString("none")
		}
		return c.SendString(fm["type"].(string) + "|" + fm["message"].(string))
	})
	return app
}

// followRedirect replays the flash cookie from the write response on the
// redirect target, the way a browser does.
func followRedirect(t *testing.T, app *fiber.App, writePath string) string {
	t.Helper()

	resp, err := app.Test(httptest.NewRequest("POST", writePath, nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusSeeOther, resp.StatusCode)

	cookie := resp.Header.Get("Set-Cookie")
	require.NotEmpty(t, cookie, "write must set the flash cookie")

	req := httptest.NewRequest("GET", resp.Header.Get("Location"), nil)
	req.Header.Set("Cookie", strings.SplitN(cookie, ";", 2)[0])
	resp, err = app.Test(req)
	require.NoError(t, err)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	resp.Body.Close()
	return string(body)
}

func TestFlashSurvivesPostRedirectGet(t *testing.T) {
	app := newFlashApp()

	assert.Equal(t, "success|Saved entry for 2024-05-01.", followRedirect(t, app, "/save"))
	assert.Equal(t, "error|Save failed.", followRedirect(t, app, "/fail"))
}

func TestFlashIsConsumedByFirstRead(t *testing.T) {
	app := newFlashApp()
	followRedirect(t, app, "/save")

	// a later request without the cookie sees nothing
	resp, err := app.Test(httptest.NewRequest("GET", "/done", nil))
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, "none", string(body))
}

func TestFlashVisibleWithinTheSameRequest(t *testing.T) {
	app := fiber.New()
	app.Get("/load", func(c *fiber.Ctx) error {
		Error(c, "Could not load entry.")
		fm := Get(c)
		require.NotNil(t, fm)
		return c.SendString(fm["message"].(string))
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/load", nil))
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, "Could not load entry.", string(body))
}
