package http

import (
	"net/http"
	"net/http/httptest"
	"scams/config"
	otelMocks "scams/infras/otel/mocks"
	cacheMocks "scams/shared/cache/mocks"
	"scams/transport/http/middleware"
	"scams/transport/http/router"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

type passThrough struct{}

func (passThrough) Auth(next http.Handler) http.Handler   { return next }
func (passThrough) APIKey(next http.Handler) http.Handler { return next }
func (passThrough) RBAC(next http.Handler) http.Handler   { return next }

func newTestServer(t *testing.T) *HTTP {
	t.Helper()

	ctrl := gomock.NewController(t)

	cfg := &config.Config{}
	cfg.App.Name = "scams"
	cfg.App.CORS.Enable = true
	cfg.App.CORS.AllowedOrigins = []string{"http://localhost:3000"}
	cfg.App.CORS.AllowedMethods = []string{http.MethodGet, http.MethodPost}

	app := middleware.NewAppMiddleware(otelMocks.NewOtel(), cfg, cacheMocks.NewMockRedisCache(ctrl))

	return New(cfg, router.New(router.DomainHandlers{}, passThrough{}), app)
}

func TestHealth(t *testing.T) {
	server := newTestServer(t)

	recorder := httptest.NewRecorder()
	server.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.JSONEq(t, `{"data":{"status":"ok","state":"ready"}}`, recorder.Body.String())
}

func TestHealth_GracePeriod(t *testing.T) {
	server := newTestServer(t)
	server.setup()
	server.setState(ServerStateInGracePeriod)

	recorder := httptest.NewRecorder()
	server.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusServiceUnavailable, recorder.Code)
	assert.JSONEq(t, `{"message":"SERVER PREPARING TO SHUT DOWN"}`, recorder.Body.String())
}

func TestShutdownGuard(t *testing.T) {
	server := newTestServer(t)
	server.setup()

	recorder := httptest.NewRecorder()
	server.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/v1/unknown", nil))

	assert.Equal(t, http.StatusNotFound, recorder.Code)

	server.setState(ServerStateInCleanupPeriod)

	recorder = httptest.NewRecorder()
	server.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/v1/unknown", nil))

	assert.Equal(t, http.StatusServiceUnavailable, recorder.Code)
}

func TestCORSPreflight(t *testing.T) {
	server := newTestServer(t)

	request := httptest.NewRequest(http.MethodOptions, "/v1/rooms", nil)
	request.Header.Set("Origin", "http://localhost:3000")
	request.Header.Set("Access-Control-Request-Method", http.MethodGet)

	recorder := httptest.NewRecorder()
	server.ServeHTTP(recorder, request)

	assert.Equal(t, "http://localhost:3000", recorder.Header().Get("Access-Control-Allow-Origin"))
}

func TestServerStateString(t *testing.T) {
	assert.Equal(t, "ready", ServerStateReady.String())
	assert.Equal(t, "grace", ServerStateInGracePeriod.String())
	assert.Equal(t, "cleanup", ServerStateInCleanupPeriod.String())
	assert.Equal(t, "starting", ServerState(0).String())
}
