package auth

import (
	"net/http"
	"scams/config"
	"scams/infras/otel"
	"scams/internal/domains/auth/model/dto"
	"scams/internal/domains/auth/service"
	"scams/shared"
	"scams/shared/constant"
	"scams/shared/validator"
	"scams/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Auth
	cfg     *config.Config
	otel    otel.Otel
}

func New(service service.Auth, cfg *config.Config, otel otel.Otel) Handler {
	return Handler{
		service: service,
		cfg:     cfg,
		otel:    otel,
	}
}

func (handler *Handler) Router(r chi.Router) {
	r.Post("/user/signup", handler.SignUp)
	r.Post("/user/signin", handler.SignIn)
	r.Post("/user/refresh-token", handler.RefreshToken)
	r.Post("/user/signout", handler.SignOut)
}

func (handler *Handler) session() response.SessionCookie {
	return response.SessionCookie{
		Name:   handler.cfg.App.Session.CookieName,
		Secure: handler.cfg.App.Session.CookieSecure,
	}
}

// SignUp handles user registration
// @Summary Register a new user
// @Description Registers a lecturer or a student. The email is matched case-insensitively.
// @Tags User
// @Accept json
// @Produce json
// @Param request body dto.SignUpRequest true "Sign Up Request"
// @Success 201 {object} response.Data[userDto.UserProfile]
// @Failure 400 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/user/signup [post]
func (handler *Handler) SignUp(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".SignUp")
	defer scope.End()

	req := dto.SignUpRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.SignUp(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to sign up user")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("User registered successfully")

	response.WithJSON(w, http.StatusCreated, res)
}

// SignIn handles user login
// @Summary Sign in
// @Description Returns the profile and a token pair. The access token is also set as an HttpOnly cookie.
// @Tags User
// @Accept json
// @Produce json
// @Param request body dto.SignInRequest true "Sign In Request"
// @Success 200 {object} response.Data[dto.SignInResponse]
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/user/signin [post]
func (handler *Handler) SignIn(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".SignIn")
	defer scope.End()

	req := dto.SignInRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.SignIn(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Warn().Err(err).Msg("failed to sign in user")

		response.WithError(w, err)

		return
	}

	handler.session().Set(w, res.Token.AccessToken, res.Token.ExpiresAt)

	scope.AddEvent("User signed in successfully")

	response.WithJSON(w, http.StatusOK, res)
}

// RefreshToken handles token refresh
// @Summary Refresh tokens
// @Description Issues a new pair and revokes the presented refresh token.
// @Tags User
// @Accept json
// @Produce json
// @Param request body dto.RefreshTokenRequest true "Refresh Token Request"
// @Success 200 {object} response.Data[jwt.TokenPair]
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/user/refresh-token [post]
func (handler *Handler) RefreshToken(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".RefreshToken")
	defer scope.End()

	req := dto.RefreshTokenRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.Refresh(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Warn().Err(err).Msg("failed to refresh token")

		response.WithError(w, err)

		return
	}

	handler.session().Set(w, res.AccessToken, res.ExpiresAt)

	scope.AddEvent("Token refreshed successfully")

	response.WithJSON(w, http.StatusOK, res)
}

// SignOut revokes the session
// @Summary Sign out
// @Description Revokes the access token in use and, when supplied, the refresh token. Clears the session cookie.
// @Tags User
// @Accept json
// @Produce json
// @Param request body dto.SignOutRequest false "Sign Out Request"
// @Success 200 {object} response.Message
// @Failure 401 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/user/signout [post]
// @Security BearerAuth
func (handler *Handler) SignOut(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".SignOut")
	defer scope.End()

	req := dto.SignOutRequest{}

	if r.ContentLength > 0 {
		if err := validator.Validate(r.Body, &req); err != nil {
			scope.TraceError(err)
			response.WithError(w, err)

			return
		}
	}

	tokenID, expiresAt := shared.TokenFromContext(ctx)

	if err := handler.service.SignOut(ctx, req, tokenID, expiresAt); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to sign out user")

		response.WithError(w, err)

		return
	}

	handler.session().Clear(w)

	response.WithMessage(w, http.StatusOK, "Signed out successfully")
}
