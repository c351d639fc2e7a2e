package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"scams/infras/otel"
	"scams/infras/postgres"
	"scams/internal/domains/building/model"
	gDto "scams/shared/dto"
	gRepo "scams/shared/repository"
)

type Building interface {
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Building, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Building]
}

func New(db *postgres.Connection, otel otel.Otel) Building {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Building](model.EntityName, model.TableName, model.FieldID, db, otel),
	}
}
