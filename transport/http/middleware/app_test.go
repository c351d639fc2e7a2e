package middleware_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"scams/config"
	otelMocks "scams/infras/otel/mocks"
	cacheMocks "scams/shared/cache/mocks"
	"scams/shared/constant"
	"scams/transport/http/middleware"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func limiterConfig(enable bool) *config.Config {
	cfg := &config.Config{}
	cfg.App.Name = "scams"
	cfg.App.RateLimiter.Enable = enable
	cfg.App.RateLimiter.MaxRequests = 5
	cfg.App.RateLimiter.WindowSeconds = 60

	return cfg
}

var okHandler = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
})

func limitedRequest() *http.Request {
	request := httptest.NewRequest(http.MethodGet, "/v1/rooms", nil)
	request.Header.Set(constant.RequestHeaderForwardedFor, "10.1.2.3, 172.16.0.1")
	request.Header.Set(constant.RequestHeaderUserAgent, "campus-app")

	return request
}

func TestRateLimit_UnderLimit(t *testing.T) {
	ctrl := gomock.NewController(t)
	cache := cacheMocks.NewMockRedisCache(ctrl)

	cache.EXPECT().Increment(gomock.Any(), "limiter:10.1.2.3:campus-app", time.Minute).Return(int64(2), nil)

	app := middleware.NewAppMiddleware(otelMocks.NewOtel(), limiterConfig(true), cache)
	recorder := httptest.NewRecorder()

	app.RateLimit()(okHandler).ServeHTTP(recorder, limitedRequest())

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, "5", recorder.Header().Get(constant.RequestHeaderRateLimit))
	assert.Equal(t, "3", recorder.Header().Get(constant.RequestHeaderRateLimitRemaining))
	assert.Equal(t, "60", recorder.Header().Get(constant.RequestHeaderRateLimitWindow))
}

func TestRateLimit_OverLimit(t *testing.T) {
	ctrl := gomock.NewController(t)
	cache := cacheMocks.NewMockRedisCache(ctrl)

	cache.EXPECT().Increment(gomock.Any(), gomock.Any(), gomock.Any()).Return(int64(6), nil)

	app := middleware.NewAppMiddleware(otelMocks.NewOtel(), limiterConfig(true), cache)
	recorder := httptest.NewRecorder()

	app.RateLimit()(okHandler).ServeHTTP(recorder, limitedRequest())

	assert.Equal(t, http.StatusTooManyRequests, recorder.Code)
	assert.Equal(t, "0", recorder.Header().Get(constant.RequestHeaderRateLimitRemaining))
	assert.JSONEq(t, `{"message":"REQUEST LIMIT EXCEEDED"}`, recorder.Body.String())
}

func TestRateLimit_CacheDown(t *testing.T) {
	ctrl := gomock.NewController(t)
	cache := cacheMocks.NewMockRedisCache(ctrl)

	cache.EXPECT().Increment(gomock.Any(), gomock.Any(), gomock.Any()).Return(int64(0), errors.New("connection refused"))

	app := middleware.NewAppMiddleware(otelMocks.NewOtel(), limiterConfig(true), cache)
	recorder := httptest.NewRecorder()

	app.RateLimit()(okHandler).ServeHTTP(recorder, limitedRequest())

	assert.Equal(t, http.StatusOK, recorder.Code)
}

func TestRateLimit_Disabled(t *testing.T) {
	ctrl := gomock.NewController(t)
	cache := cacheMocks.NewMockRedisCache(ctrl)

	app := middleware.NewAppMiddleware(otelMocks.NewOtel(), limiterConfig(false), cache)
	recorder := httptest.NewRecorder()

	app.RateLimit()(okHandler).ServeHTTP(recorder, limitedRequest())

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Empty(t, recorder.Header().Get(constant.RequestHeaderRateLimit))
}

func TestTracing(t *testing.T) {
	ctrl := gomock.NewController(t)
	tracer := otelMocks.NewOtel()

	app := middleware.NewAppMiddleware(tracer, limiterConfig(false), cacheMocks.NewMockRedisCache(ctrl))

	failing := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	recorder := httptest.NewRecorder()
	app.Tracing(failing).ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/v1/rooms", nil))

	assert.Equal(t, http.StatusInternalServerError, recorder.Code)
	require.Len(t, tracer.Spans, 1)
	assert.Equal(t, "GET /v1/rooms", tracer.Spans[0])
	assert.Len(t, tracer.Errors, 1)

	recorder = httptest.NewRecorder()
	app.Tracing(okHandler).ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/v1/rooms", nil))

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Len(t, tracer.Errors, 1)
}
