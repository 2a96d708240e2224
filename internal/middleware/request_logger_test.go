package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"portfolio/internal/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func newTestApp() (*fiber.App, *observer.ObservedLogs) {
	core, logs := observer.New(zap.InfoLevel)
	app := fiber.New()
	app.Use(middleware.RequestLogger(zap.New(core)))
	app.Get("/ok", func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})
	app.Get("/missing", func(c *fiber.Ctx) error {
		return fiber.ErrNotFound
	})
	return app, logs
}

func TestRequestLogger_AssignsRequestID(t *testing.T) {
	app, logs := newTestApp()

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/ok", nil), -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.NotEmpty(t, resp.Header.Get(middleware.RequestIDHeader))

	entries := logs.FilterMessage("Request handled").All()
	require.Len(t, entries, 1)
	assert.Equal(t, "/ok", entries[0].ContextMap()["path"])
	assert.EqualValues(t, http.StatusOK, entries[0].ContextMap()["status"])
}

func TestRequestLogger_PropagatesRequestID(t *testing.T) {
	app, _ := newTestApp()

	req := httptest.NewRequest(http.MethodGet, "/ok", nil)
	req.Header.Set(middleware.RequestIDHeader, "abc-123")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, "abc-123", resp.Header.Get(middleware.RequestIDHeader))
}

func TestRequestLogger_LogsRejectedRequests(t *testing.T) {
	app, logs := newTestApp()

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/missing", nil), -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	entries := logs.FilterMessage("Request rejected").All()
	require.Len(t, entries, 1)
	assert.EqualValues(t, http.StatusNotFound, entries[0].ContextMap()["status"])
}
