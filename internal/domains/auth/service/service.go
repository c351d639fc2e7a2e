package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"scams/infras/jwt"
	"scams/infras/otel"
	"scams/internal/domains/auth/model/dto"
	userDto "scams/internal/domains/user/model/dto"
	userRepo "scams/internal/domains/user/repository"
	"scams/shared"
	"scams/shared/cache"
	"scams/shared/constant"
	"scams/shared/encryption"
	"scams/shared/failure"
	"scams/shared/password"
	"scams/shared/timezone"
	"time"

	"github.com/lib/pq"
	"github.com/rs/zerolog/log"
)

const (
	msgEmailRegistered = "email already registered"
	msgInvalidRefresh  = "invalid refresh token"
	msgRevokedToken    = "token has been revoked"
)

type Auth interface {
	SignUp(ctx context.Context, req dto.SignUpRequest) (userDto.UserProfile, error)
	SignIn(ctx context.Context, req dto.SignInRequest) (dto.SignInResponse, error)
	Refresh(ctx context.Context, req dto.RefreshTokenRequest) (jwt.TokenPair, error)
	SignOut(ctx context.Context, req dto.SignOutRequest, tokenID string, expiresAt time.Time) error
}

type serviceImpl struct {
	userRepo   userRepo.User
	cipher     encryption.Cipher
	cache      cache.RedisCache
	otel       otel.Otel
	jwtService jwt.JWT
}

func New(userRepo userRepo.User, cipher encryption.Cipher, cache cache.RedisCache, otel otel.Otel, jwt jwt.JWT) Auth {
	return &serviceImpl{
		userRepo:   userRepo,
		cipher:     cipher,
		cache:      cache,
		otel:       otel,
		jwtService: jwt,
	}
}

func (s *serviceImpl) SignUp(ctx context.Context, req dto.SignUpRequest) (res userDto.UserProfile, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".SignUp")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	req.Normalize()

	exists, err := s.userRepo.EmailHashExists(ctx, s.cipher.HashEmail(req.Email))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if user exists")

		return res, fmt.Errorf("failed to check if user exists: %w", err)
	}

	if exists {
		return res, failure.Conflict(msgEmailRegistered)
	}

	hashedPassword, err := password.Hash(req.Password)
	if err != nil {
		log.Error().Err(err).Msg("failed to hash password")

		return res, fmt.Errorf("failed to hash password: %w", err)
	}

	user, err := req.ToUserModel(s.cipher, hashedPassword)
	if err != nil {
		log.Error().Err(err).Msg("failed to encrypt user")

		return res, fmt.Errorf("failed to encrypt user: %w", err)
	}

	user.ID, err = s.userRepo.Insert(ctx, user)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && string(pqErr.Code) == constant.PqErrorCodeUniqueViolation {
			return res, failure.Conflict(msgEmailRegistered)
		}

		log.Error().Err(err).Msg("failed to create user")

		return res, fmt.Errorf("failed to create user: %w", err)
	}

	if err = res.FromModel(user, s.cipher); err != nil {
		return res, fmt.Errorf("failed to decrypt user: %w", err)
	}

	return res, nil
}

// SignIn answers an unknown email and a wrong password identically.
func (s *serviceImpl) SignIn(ctx context.Context, req dto.SignInRequest) (res dto.SignInResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".SignIn")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	user, err := s.userRepo.GetByEmailHash(ctx, s.cipher.HashEmail(req.Email))
	if err != nil {
		log.Error().Err(err).Msg("failed to get user")

		return res, fmt.Errorf("failed to get user: %w", err)
	}

	if user.ID == 0 {
		log.Warn().Msg("sign in attempt with unknown email")

		return res, failure.InvalidCredentials
	}

	if err = password.Verify(req.Password, user.HashedPassword); err != nil {
		log.Warn().Int64("user_id", user.ID).Msg("sign in attempt with wrong password")

		return res, failure.InvalidCredentials
	}

	if err = res.User.FromModel(user, s.cipher); err != nil {
		log.Error().Err(err).Int64("user_id", user.ID).Msg("failed to decrypt user")

		return res, fmt.Errorf("failed to decrypt user: %w", err)
	}

	tokenPair, err := s.jwtService.GenerateTokenPair(ctx, jwt.Subject{
		UserID:   user.ID,
		Email:    res.User.Email,
		FullName: res.User.FullName,
		Role:     user.Role,
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to generate tokens")

		return res, fmt.Errorf("failed to generate tokens: %w", err)
	}

	res.Token = *tokenPair

	return res, nil
}

// Refresh rotates the pair: the presented refresh token is revoked once the new pair
// is issued.
func (s *serviceImpl) Refresh(ctx context.Context, req dto.RefreshTokenRequest) (res jwt.TokenPair, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Refresh")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	tokenPair, claims, err := s.jwtService.RefreshTokens(ctx, req.RefreshToken)
	if err != nil {
		log.Warn().Err(err).Msg("failed to refresh tokens")

		return res, failure.Unauthorized(msgInvalidRefresh)
	}

	revoked, err := s.cache.Exists(ctx, shared.RevokedTokenKey(claims.TokenID))
	if err != nil {
		log.Error().Err(err).Msg("failed to check token revocation")

		return res, fmt.Errorf("failed to check token revocation: %w", err)
	}

	if revoked {
		return res, failure.Unauthorized(msgRevokedToken)
	}

	if err = s.revoke(ctx, claims.TokenID, expiry(claims)); err != nil {
		return res, err
	}

	return *tokenPair, nil
}

// SignOut revokes the access token and, when given, the refresh token until they
// would have expired anyway.
func (s *serviceImpl) SignOut(ctx context.Context, req dto.SignOutRequest, tokenID string, expiresAt time.Time) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".SignOut")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = s.revoke(ctx, tokenID, expiresAt); err != nil {
		return err
	}

	if req.RefreshToken == constant.Empty {
		return nil
	}

	claims, err := s.jwtService.ValidateToken(ctx, req.RefreshToken, jwt.RefreshToken)
	if err != nil {
		log.Warn().Err(err).Msg("sign out with invalid refresh token")

		return nil
	}

	return s.revoke(ctx, claims.TokenID, expiry(claims))
}

func expiry(claims *jwt.Claims) time.Time {
	if claims.ExpiresAt == nil {
		return time.Time{}
	}

	return claims.ExpiresAt.Time
}

func (s *serviceImpl) revoke(ctx context.Context, tokenID string, expiresAt time.Time) error {
	ttl := expiresAt.Sub(timezone.Now())
	if ttl <= 0 {
		return nil
	}

	if err := s.cache.Save(ctx, shared.RevokedTokenKey(tokenID), true, ttl); err != nil {
		log.Error().Err(err).Str("token_id", tokenID).Msg("failed to revoke token")

		return fmt.Errorf("failed to revoke token: %w", err)
	}

	return nil
}
