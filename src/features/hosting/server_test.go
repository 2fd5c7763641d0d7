package hosting

import (
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/contre95/mediastore/src/features/config"
	"github.com/contre95/mediastore/src/features/mediastore"
	"github.com/contre95/mediastore/src/features/metrics"
	"github.com/contre95/mediastore/src/infra/files"
	"github.com/contre95/mediastore/src/media"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T, metricsEnabled bool) *Server {
	t.Helper()
	cfg := config.NewManager(&config.Config{
		AppIdentifier: "com.example.display",
		Logger:        config.Logger{Level: "info"},
		Server:        config.Server{Host: "127.0.0.1", Port: 3535},
		Metrics:       config.Metrics{Enabled: metricsEnabled, Path: "/metrics"},
	})
	reg := prometheus.NewRegistry()
	recorder := metrics.NewRecorder(reg)
	store := files.NewFileStore(media.StaticRoot(filepath.Join(t.TempDir(), "media")))
	return NewServer(cfg, mediastore.NewService(store, recorder), reg)
}

func TestServerAddr(t *testing.T) {
	s := newTestServer(t, false)
	assert.Equal(t, "127.0.0.1:3535", s.Addr())
}

func TestHealthAndRequestID(t *testing.T) {
	s := newTestServer(t, false)

	resp, err := s.App().Test(httptest.NewRequest(http.MethodGet, "/health", nil))
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, "OK", string(body))

	_, err = uuid.Parse(resp.Header.Get(RequestIDHeader))
	assert.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set(RequestIDHeader, "caller-id")
	resp, err = s.App().Test(req)
	require.NoError(t, err)
	assert.Equal(t, "caller-id", resp.Header.Get(RequestIDHeader))
}

func TestFilenamesAreUnescaped(t *testing.T) {
	s := newTestServer(t, false)

	resp, err := s.App().Test(httptest.NewRequest(http.MethodGet, "/api/media/Image/no%20such%20file.png/path", nil))
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Contains(t, string(body), "no such file.png")
}

func TestMetricsRoute(t *testing.T) {
	s := newTestServer(t, true)
	_, err := s.App().Test(httptest.NewRequest(http.MethodGet, "/api/media/base", nil))
	require.NoError(t, err)

	resp, err := s.App().Test(httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(body), `mediastore_operations_total{operation="base",result="ok"} 1`)

	s = newTestServer(t, false)
	resp, err = s.App().Test(httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
