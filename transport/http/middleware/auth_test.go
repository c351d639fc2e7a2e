package middleware_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"scams/config"
	"scams/infras/jwt"
	jwtMocks "scams/infras/jwt/mocks"
	otelMocks "scams/infras/otel/mocks"
	"scams/permissions"
	cacheMocks "scams/shared/cache/mocks"
	"scams/shared/constant"
	"scams/transport/http/middleware"
	"strconv"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	gojwt "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const testAPIKey = "internal-secret"

type authFixture struct {
	router *chi.Mux
	jwt    *jwtMocks.MockJWT
	cache  *cacheMocks.MockRedisCache
}

func newAuthFixture(t *testing.T) authFixture {
	t.Helper()

	ctrl := gomock.NewController(t)
	jwtService := jwtMocks.NewMockJWT(ctrl)
	cache := cacheMocks.NewMockRedisCache(ctrl)

	cfg := &config.Config{}
	cfg.App.APIKey = testAPIKey
	cfg.App.Session.CookieName = "access_token"

	perms := permissions.Get()
	require.NotNil(t, perms)

	authRole := middleware.NewAuthRoleMiddleware(jwtService, otelMocks.NewOtel(), perms, cache, cfg)

	echoUser := func(w http.ResponseWriter, r *http.Request) {
		userID, _ := r.Context().Value(constant.ContextKeyUserID).(int64)
		w.Header().Set("X-User-ID", strconv.FormatInt(userID, 10))
		w.WriteHeader(http.StatusOK)
	}

	router := chi.NewRouter()
	router.Route("/v1", func(group chi.Router) {
		group.Use(authRole.APIKey, authRole.Auth, authRole.RBAC)

		group.Post("/user/signin", echoUser)
		group.Get("/rooms/{id}", echoUser)
		group.Put("/rooms/{id}/image", echoUser)
		group.Post("/schedules", echoUser)
	})

	return authFixture{router: router, jwt: jwtService, cache: cache}
}

func claims(userID int64, role string) *jwt.Claims {
	return &jwt.Claims{
		UserID:  userID,
		Role:    role,
		TokenID: "token-" + role,
		Type:    jwt.AccessToken,
		RegisteredClaims: gojwt.RegisteredClaims{
			ExpiresAt: gojwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
}

func (f authFixture) serve(request *http.Request) *httptest.ResponseRecorder {
	recorder := httptest.NewRecorder()
	f.router.ServeHTTP(recorder, request)

	return recorder
}

func TestAuth_SkipsPublicEndpoints(t *testing.T) {
	f := newAuthFixture(t)

	recorder := f.serve(httptest.NewRequest(http.MethodPost, "/v1/user/signin", nil))

	assert.Equal(t, http.StatusOK, recorder.Code)
}

func TestAuth_MissingToken(t *testing.T) {
	f := newAuthFixture(t)

	recorder := f.serve(httptest.NewRequest(http.MethodGet, "/v1/rooms/1", nil))

	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	assert.JSONEq(t, `{"error":"missing token"}`, recorder.Body.String())
}

func TestAuth_MalformedHeader(t *testing.T) {
	f := newAuthFixture(t)

	request := httptest.NewRequest(http.MethodGet, "/v1/rooms/1", nil)
	request.Header.Set(constant.RequestHeaderAuthorization, "Token abc")

	recorder := f.serve(request)

	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	assert.JSONEq(t, `{"error":"invalid authorization header format"}`, recorder.Body.String())
}

func TestAuth_BearerToken(t *testing.T) {
	f := newAuthFixture(t)

	f.jwt.EXPECT().ValidateToken(gomock.Any(), "good", jwt.AccessToken).Return(claims(7, constant.RoleStudent), nil)
	f.cache.EXPECT().Exists(gomock.Any(), "revoked:token-student").Return(false, nil)

	request := httptest.NewRequest(http.MethodGet, "/v1/rooms/1", nil)
	request.Header.Set(constant.RequestHeaderAuthorization, "Bearer good")

	recorder := f.serve(request)

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, "7", recorder.Header().Get("X-User-ID"))
}

func TestAuth_SessionCookie(t *testing.T) {
	f := newAuthFixture(t)

	f.jwt.EXPECT().ValidateToken(gomock.Any(), "from-cookie", jwt.AccessToken).Return(claims(3, constant.RoleLecturer), nil)
	f.cache.EXPECT().Exists(gomock.Any(), "revoked:token-lecturer").Return(false, nil)

	request := httptest.NewRequest(http.MethodGet, "/v1/rooms/1", nil)
	request.AddCookie(&http.Cookie{Name: "access_token", Value: "from-cookie"})

	recorder := f.serve(request)

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, "3", recorder.Header().Get("X-User-ID"))
}

func TestAuth_ExpiredToken(t *testing.T) {
	f := newAuthFixture(t)

	f.jwt.EXPECT().ValidateToken(gomock.Any(), "old", jwt.AccessToken).Return(nil, jwt.ErrExpiredToken)

	request := httptest.NewRequest(http.MethodGet, "/v1/rooms/1", nil)
	request.Header.Set(constant.RequestHeaderAuthorization, "Bearer old")

	recorder := f.serve(request)

	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	assert.JSONEq(t, `{"error":"token has expired"}`, recorder.Body.String())
}

func TestAuth_RevokedToken(t *testing.T) {
	f := newAuthFixture(t)

	f.jwt.EXPECT().ValidateToken(gomock.Any(), "signed-out", jwt.AccessToken).Return(claims(7, constant.RoleStudent), nil)
	f.cache.EXPECT().Exists(gomock.Any(), "revoked:token-student").Return(true, nil)

	request := httptest.NewRequest(http.MethodGet, "/v1/rooms/1", nil)
	request.Header.Set(constant.RequestHeaderAuthorization, "Bearer signed-out")

	recorder := f.serve(request)

	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	assert.JSONEq(t, `{"error":"token has been revoked"}`, recorder.Body.String())
}

func TestRBAC(t *testing.T) {
	tests := []struct {
		name     string
		role     string
		method   string
		path     string
		expected int
	}{
		{"lecturer books a room", constant.RoleLecturer, http.MethodPost, "/v1/schedules", http.StatusOK},
		{"student cannot book a room", constant.RoleStudent, http.MethodPost, "/v1/schedules", http.StatusForbidden},
		{"student reads a room", constant.RoleStudent, http.MethodGet, "/v1/rooms/4", http.StatusOK},
		{"lecturer cannot upload images", constant.RoleLecturer, http.MethodPut, "/v1/rooms/4/image", http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newAuthFixture(t)

			f.jwt.EXPECT().ValidateToken(gomock.Any(), "token", jwt.AccessToken).Return(claims(1, tt.role), nil)
			f.cache.EXPECT().Exists(gomock.Any(), gomock.Any()).Return(false, nil)

			request := httptest.NewRequest(tt.method, tt.path, nil)
			request.Header.Set(constant.RequestHeaderAuthorization, "Bearer token")

			recorder := f.serve(request)

			assert.Equal(t, tt.expected, recorder.Code)
		})
	}
}

func TestAPIKey(t *testing.T) {
	t.Run("valid key skips session checks", func(t *testing.T) {
		f := newAuthFixture(t)

		request := httptest.NewRequest(http.MethodPut, "/v1/rooms/4/image", nil)
		request.Header.Set(constant.RequestHeaderAPIKey, testAPIKey)

		recorder := f.serve(request)

		assert.Equal(t, http.StatusOK, recorder.Code)
	})

	t.Run("wrong key is forbidden", func(t *testing.T) {
		f := newAuthFixture(t)

		request := httptest.NewRequest(http.MethodPut, "/v1/rooms/4/image", nil)
		request.Header.Set(constant.RequestHeaderAPIKey, "guess")

		recorder := f.serve(request)

		assert.Equal(t, http.StatusForbidden, recorder.Code)
	})
}

func TestAuth_SkipFlagIgnoresForeignContext(t *testing.T) {
	f := newAuthFixture(t)

	ctx := context.WithValue(context.Background(), middleware.SkipAuthKey("skip"), true)
	request := httptest.NewRequest(http.MethodGet, "/v1/rooms/1", nil).WithContext(ctx)

	recorder := f.serve(request)

	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
}
