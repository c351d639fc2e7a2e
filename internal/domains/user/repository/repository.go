package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"scams/infras/otel"
	"scams/infras/postgres"
	"scams/internal/domains/user/model"
	"scams/shared/constant"
	gDto "scams/shared/dto"
	gRepo "scams/shared/repository"
)

type User interface {
	Insert(ctx context.Context, model model.User) (int64, error)
	// GetByEmailHash returns a zero User when nobody registered the address.
	GetByEmailHash(ctx context.Context, emailHash string) (model.User, error)
	EmailHashExists(ctx context.Context, emailHash string) (bool, error)
	IsLecturer(ctx context.Context, userID int64) (bool, error)
	ListLecturers(ctx context.Context) ([]model.User, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.User]
}

func New(db *postgres.Connection, otel otel.Otel) User {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.User](model.EntityName, model.TableName, model.FieldID, db, otel),
	}
}

func emailHashFilter(emailHash string) gDto.FilterGroup {
	filter := gDto.FilterGroup{}
	filter.Add(gDto.Eq(model.TableName, model.FieldEmailHash, emailHash))

	return filter
}

func lecturerFilter() gDto.FilterGroup {
	filter := gDto.FilterGroup{Operator: gDto.FilterGroupOperatorAnd}
	filter.Add(gDto.Eq(model.TableName, model.FieldRole, constant.RoleLecturer))

	return filter
}

func (r *repositoryImpl) GetByEmailHash(ctx context.Context, emailHash string) (model.User, error) {
	return r.Get(ctx, emailHashFilter(emailHash))
}

func (r *repositoryImpl) EmailHashExists(ctx context.Context, emailHash string) (bool, error) {
	return r.Exist(ctx, emailHashFilter(emailHash))
}

func (r *repositoryImpl) IsLecturer(ctx context.Context, userID int64) (bool, error) {
	filter := lecturerFilter()
	filter.Add(gDto.Eq(model.TableName, model.FieldID, userID))

	return r.Exist(ctx, filter)
}

// ListLecturers loads only ids and encrypted names, ordered by id.
func (r *repositoryImpl) ListLecturers(ctx context.Context) ([]model.User, error) {
	params := gDto.QueryParams{SortBy: model.TableName + "." + model.FieldID, SortDir: gDto.SortDirAsc}

	return r.GetAll(ctx, params, lecturerFilter(), model.FieldID, model.FieldFullName)
}
