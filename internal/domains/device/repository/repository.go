package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"scams/infras/otel"
	"scams/infras/postgres"
	"scams/internal/domains/device/model"
	gDto "scams/shared/dto"
	gRepo "scams/shared/repository"
)

type Device interface {
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Device, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Device]
}

func New(db *postgres.Connection, otel otel.Otel) Device {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Device](model.EntityName, model.TableName, model.FieldID, db, otel),
	}
}
