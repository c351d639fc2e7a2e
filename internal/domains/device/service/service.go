package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"
	"scams/infras/otel"
	"scams/internal/domains/device/model"
	"scams/internal/domains/device/model/dto"
	"scams/internal/domains/device/repository"
	"scams/shared/constant"
	gDto "scams/shared/dto"

	"github.com/rs/zerolog/log"
)

type Device interface {
	List(ctx context.Context) (dto.ListDevicesResponse, error)
}

type serviceImpl struct {
	repo repository.Device
	otel otel.Otel
}

func New(repo repository.Device, otel otel.Otel) Device {
	return &serviceImpl{
		repo: repo,
		otel: otel,
	}
}

func (s *serviceImpl) List(ctx context.Context) (res dto.ListDevicesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".List")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	params := gDto.QueryParams{SortBy: model.TableName + "." + model.FieldName}

	devices, err := s.repo.GetAll(ctx, params, gDto.FilterGroup{})
	if err != nil {
		log.Error().Err(err).Msg("failed to get devices")

		return res, fmt.Errorf("failed to get devices: %w", err)
	}

	res.FromModels(devices)

	return res, nil
}
