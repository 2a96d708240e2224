package app_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"portfolio/internal/app"
	"portfolio/internal/config"
	"portfolio/internal/database"

	"github.com/gofiber/fiber/v2"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func newApp(t *testing.T) (*gorm.DB, string, func(*http.Request) *http.Response) {
	t.Helper()
	a, db, staticDir := buildApp(t)
	return db, staticDir, func(req *http.Request) *http.Response {
		resp, err := a.Test(req, -1)
		require.NoError(t, err)
		t.Cleanup(func() { resp.Body.Close() })
		return resp
	}
}

func buildApp(t *testing.T) (*fiber.App, *gorm.DB, string) {
	t.Helper()
	staticDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(staticDir, "index.html"), []byte("<h1>portfolio</h1>"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(staticDir, "admin.html"), []byte("<h1>admin</h1>"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(staticDir, "script.js"), []byte("console.log('hi')"), 0644))

	v := viper.New()
	v.Set("DB_DSN", filepath.Join(t.TempDir(), "portfolio.db"))
	v.Set("STATIC_DIR", staticDir)
	cfg := config.Load(v)

	db, err := database.Open(cfg.Database)
	require.NoError(t, err)
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
	require.NoError(t, database.Initialize(db, zap.NewNop()))

	return app.New(app.Deps{Config: cfg, DB: db, Logger: zap.NewNop()}), db, staticDir
}

func readBody(t *testing.T, resp *http.Response) string {
	t.Helper()
	b, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return string(b)
}

func TestHealthCheck(t *testing.T) {
	_, _, do := newApp(t)

	resp := do(httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, readBody(t, resp), `"status":"healthy"`)
}

func TestHealthCheck_DatabaseDown(t *testing.T) {
	db, _, do := newApp(t)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	require.NoError(t, sqlDB.Close())

	resp := do(httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
}

func TestStaticPages(t *testing.T) {
	_, _, do := newApp(t)

	resp := do(httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, readBody(t, resp), "portfolio")

	resp = do(httptest.NewRequest(http.MethodGet, "/admin", nil))
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, readBody(t, resp), "admin")

	resp = do(httptest.NewRequest(http.MethodGet, "/script.js", nil))
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestUnknownRouteReturnsJSON404(t *testing.T) {
	_, _, do := newApp(t)

	resp := do(httptest.NewRequest(http.MethodGet, "/api/nothing-here", nil))
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "404 - Not Found", body["error"])
}

func TestCORSPreflight(t *testing.T) {
	_, _, do := newApp(t)

	req := httptest.NewRequest(http.MethodOptions, "/api/skills", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	resp := do(req)

	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	assert.Equal(t, "*", resp.Header.Get("Access-Control-Allow-Origin"))
}

func TestStaticDoesNotServeDatabaseFiles(t *testing.T) {
	_, staticDir, do := newApp(t)
	for _, name := range []string{"portfolio.db", "portfolio.db-wal", "portfolio.db-journal"} {
		require.NoError(t, os.WriteFile(filepath.Join(staticDir, name), []byte("SQLite format 3\x00"), 0644))
	}

	for _, path := range []string{"/portfolio.db", "/portfolio.db-wal", "/portfolio.db-journal", "/PORTFOLIO.DB"} {
		resp := do(httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, http.StatusNotFound, resp.StatusCode, path)
		body := readBody(t, resp)
		assert.NotContains(t, body, "SQLite format 3", path)
		assert.Contains(t, body, "404 - Not Found", path)
	}

	// Other files in the same directory are still served
	resp := do(httptest.NewRequest(http.MethodGet, "/script.js", nil))
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestPanicInHandlerReturns500(t *testing.T) {
	a, _, _ := buildApp(t)
	a.Get("/api/explode", func(c *fiber.Ctx) error {
		panic("boom")
	})

	resp, err := a.Test(httptest.NewRequest(http.MethodGet, "/api/explode", nil), -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "500 - Server Error", body["error"])

	// The app keeps serving after the panic
	resp, err = a.Test(httptest.NewRequest(http.MethodGet, "/health", nil), -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
