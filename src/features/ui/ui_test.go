package ui

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/contre95/mediastore/src/features/config"
	"github.com/contre95/mediastore/src/features/mediastore"
	"github.com/contre95/mediastore/src/infra/files"
	"github.com/contre95/mediastore/src/media"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestApp(t *testing.T) (*fiber.App, *mediastore.Service) {
	t.Helper()
	root := filepath.Join(t.TempDir(), "media")
	service := mediastore.NewService(files.NewFileStore(media.StaticRoot(root)), nil)
	cfg := config.NewManager(&config.Config{AppIdentifier: "com.example.display"})

	app := fiber.New(fiber.Config{Views: NewEngine(false)})
	RegisterRoutes(app, NewHandler(cfg, service))
	return app, service
}

func get(t *testing.T, app *fiber.App, target string) (int, string) {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, string(body)
}

func TestRootRedirectsToMedia(t *testing.T) {
	app, _ := newTestApp(t)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusFound, resp.StatusCode)
	assert.Equal(t, "/ui/media", resp.Header.Get("Location"))
}

func TestRenderMediaSection(t *testing.T) {
	app, service := newTestApp(t)
	src := filepath.Join(t.TempDir(), "banner.png")
	require.NoError(t, os.WriteFile(src, []byte("png"), 0644))
	_, err := service.ImportFile(context.Background(), src, "Image")
	require.NoError(t, err)

	status, body := get(t, app, "/ui/media")
	require.Equal(t, fiber.StatusOK, status)
	assert.Contains(t, body, "<!DOCTYPE html>")
	assert.Contains(t, body, "com.example.display")
	assert.Contains(t, body, `href="/asset/Image/banner.png"`)
	assert.Contains(t, body, "No files yet.")
}

func TestGetCategoryCardIsFragment(t *testing.T) {
	app, _ := newTestApp(t)

	status, body := get(t, app, "/ui/media/Audio")
	require.Equal(t, fiber.StatusOK, status)
	assert.NotContains(t, body, "<!DOCTYPE html>")
	assert.Contains(t, body, "Audio")
	assert.Contains(t, body, "mp3, wav")
	assert.Contains(t, body, "No files yet.")
}
