package handlers

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"SmartCart-Backend/internal/api/presenters"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
)

const testUserID = "8a4f5e3c-1d2b-4c6a-9e7f-0b1c2d3e4f50"

// newTestApp builds an app whose requests already carry an authenticated
// user, the way AuthMiddleware leaves them. Mocks keep request values past
// the handler, so the app is immutable.
func newTestApp(register func(app *fiber.App)) *fiber.App {
	app := fiber.New(fiber.Config{Immutable: true})
	app.Use(func(c *fiber.Ctx) error {
		c.Locals("user_id", testUserID)
		c.Locals("access_token", "test-token")
		return c.Next()
	})
	register(app)
	return app
}

func newValidator() *validator.Validate {
	return validator.New()
}

type envelope struct {
	presenters.Response
	Data json.RawMessage `json:"data"`
}

func doRequest(t *testing.T, app *fiber.App, method, target string, body any) (int, envelope) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, target, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("X-Client-ID", "client-1")

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	var env envelope
	if resp.StatusCode != http.StatusFound {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&env))
	}
	return resp.StatusCode, env
}
