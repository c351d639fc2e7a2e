package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"
	"scams/infras/otel"
	"scams/internal/domains/building/model"
	"scams/internal/domains/building/model/dto"
	"scams/internal/domains/building/repository"
	"scams/shared/constant"
	gDto "scams/shared/dto"

	"github.com/rs/zerolog/log"
)

type Building interface {
	List(ctx context.Context) (dto.ListBuildingsResponse, error)
}

type serviceImpl struct {
	repo repository.Building
	otel otel.Otel
}

func New(repo repository.Building, otel otel.Otel) Building {
	return &serviceImpl{
		repo: repo,
		otel: otel,
	}
}

func (s *serviceImpl) List(ctx context.Context) (res dto.ListBuildingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".List")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	params := gDto.QueryParams{SortBy: model.TableName + "." + model.FieldName}

	buildings, err := s.repo.GetAll(ctx, params, gDto.FilterGroup{})
	if err != nil {
		log.Error().Err(err).Msg("failed to get buildings")

		return res, fmt.Errorf("failed to get buildings: %w", err)
	}

	res.FromModels(buildings)

	return res, nil
}
