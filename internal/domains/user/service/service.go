package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"
	"scams/infras/otel"
	"scams/internal/domains/user/model/dto"
	"scams/internal/domains/user/repository"
	"scams/shared/constant"
	"scams/shared/encryption"

	"github.com/rs/zerolog/log"
)

type User interface {
	ListLecturers(ctx context.Context) (dto.ListLecturersResponse, error)
}

type serviceImpl struct {
	repo   repository.User
	cipher encryption.Cipher
	otel   otel.Otel
}

func New(repo repository.User, cipher encryption.Cipher, otel otel.Otel) User {
	return &serviceImpl{
		repo:   repo,
		cipher: cipher,
		otel:   otel,
	}
}

// ListLecturers returns every lecturer ordered by id with the name decrypted.
func (s *serviceImpl) ListLecturers(ctx context.Context) (res dto.ListLecturersResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ListLecturers")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	users, err := s.repo.ListLecturers(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to get lecturers")

		return res, fmt.Errorf("failed to get lecturers: %w", err)
	}

	res.Lecturers = make([]dto.LecturerResponse, 0, len(users))

	for _, user := range users {
		fullName, err := s.cipher.Decrypt(user.FullName)
		if err != nil {
			log.Error().Err(err).Int64("user_id", user.ID).Msg("failed to decrypt lecturer name")

			return res, fmt.Errorf("failed to decrypt lecturer name: %w", err)
		}

		res.Lecturers = append(res.Lecturers, dto.LecturerResponse{ID: user.ID, FullName: fullName})
	}

	return res, nil
}
