package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"scams/infras/otel"
	"scams/infras/postgres"
	"scams/internal/domains/schedule/model"
	"scams/internal/domains/schedule/model/dto"
	gDto "scams/shared/dto"
	gRepo "scams/shared/repository"

	"github.com/jmoiron/sqlx"
)

type Schedule interface {
	InsertTx(ctx context.Context, tx *sqlx.Tx, schedule model.Schedule) (int64, error)
	BookedHoursTx(ctx context.Context, tx *sqlx.Tx, roomID int64, date model.Date, hours []model.Hour) ([]model.Hour, error)
	DetailsTx(ctx context.Context, tx *sqlx.Tx, ids []int64) ([]model.ScheduleDetail, error)
	ListByLecturer(ctx context.Context, lecturerID int64, params gDto.QueryParams) ([]model.ScheduleDetail, error)
	ListByDate(ctx context.Context, filter dto.ScheduleFilter) ([]model.ScheduleDetail, error)
	BookedHours(ctx context.Context, roomID int64, date model.Date) ([]model.Hour, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Schedule]
	details gRepo.Repository[model.ScheduleDetail]
}

func New(db *postgres.Connection, otel otel.Otel) Schedule {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Schedule](model.EntityName, model.TableName, model.FieldID, db, otel),
		details:    gRepo.NewRepository[model.ScheduleDetail](model.EntityName, model.TableName, model.FieldID, db, otel),
	}
}

func slotFilter(roomID int64, date model.Date) gDto.FilterGroup {
	filter := gDto.FilterGroup{Operator: gDto.FilterGroupOperatorAnd}
	filter.Add(gDto.Eq(model.TableName, model.FieldRoomID, roomID)).
		Add(gDto.Eq(model.TableName, model.FieldDate, date))

	return filter
}

func startTimes(schedules []model.Schedule) []model.Hour {
	hours := make([]model.Hour, len(schedules))
	for i, schedule := range schedules {
		hours[i] = schedule.StartTime
	}

	return hours
}

func byStartTime() gDto.QueryParams {
	return gDto.QueryParams{SortBy: model.TableName + "." + model.FieldStartTime, SortDir: gDto.SortDirAsc}
}

// BookedHoursTx returns which of hours are already taken for the room on date, in
// ascending order. It must run after the room lock so the answer holds until commit.
func (r *repositoryImpl) BookedHoursTx(ctx context.Context, tx *sqlx.Tx, roomID int64, date model.Date, hours []model.Hour) ([]model.Hour, error) {
	if len(hours) == 0 {
		return []model.Hour{}, nil
	}

	filter := slotFilter(roomID, date)
	filter.Add(gDto.Filter{
		Field:    model.FieldStartTime,
		Table:    model.TableName,
		Operator: gDto.FilterOperatorIn,
		Value:    hours,
	})

	schedules, err := r.GetAllTx(ctx, tx, byStartTime(), filter, model.FieldID, model.FieldStartTime)
	if err != nil {
		return nil, err
	}

	return startTimes(schedules), nil
}

func (r *repositoryImpl) DetailsTx(ctx context.Context, tx *sqlx.Tx, ids []int64) ([]model.ScheduleDetail, error) {
	if len(ids) == 0 {
		return []model.ScheduleDetail{}, nil
	}

	filter := gDto.FilterGroup{}
	filter.Add(gDto.Filter{
		Field:    model.FieldID,
		Table:    model.TableName,
		Operator: gDto.FilterOperatorIn,
		Value:    ids,
	})

	return r.details.GetAllTx(ctx, tx, byStartTime(), filter)
}

// ListByLecturer pages through a lecturer's bookings, newest first.
func (r *repositoryImpl) ListByLecturer(ctx context.Context, lecturerID int64, params gDto.QueryParams) ([]model.ScheduleDetail, error) {
	filter := gDto.FilterGroup{}
	filter.Add(gDto.Eq(model.TableName, model.FieldLecturerID, lecturerID))

	params.SortBy = model.TableName + "." + model.FieldCreatedAt
	params.SortDir = gDto.SortDirDesc

	return r.details.GetAll(ctx, params, filter)
}

// ListByDate returns every booking on the filter's day, earliest hour first.
func (r *repositoryImpl) ListByDate(ctx context.Context, req dto.ScheduleFilter) ([]model.ScheduleDetail, error) {
	filter := gDto.FilterGroup{Operator: gDto.FilterGroupOperatorAnd}
	filter.Add(gDto.Eq(model.TableName, model.FieldDate, req.Date))

	if req.RoomID != nil {
		filter.Add(gDto.Eq(model.TableName, model.FieldRoomID, *req.RoomID))
	}

	if req.LecturerID != nil {
		filter.Add(gDto.Eq(model.TableName, model.FieldLecturerID, *req.LecturerID))
	}

	if req.BuildingID != nil {
		filter.Add(gDto.Eq(model.RoomTableName, model.RoomFieldBuilding, *req.BuildingID))
	}

	return r.details.GetAll(ctx, byStartTime(), filter)
}

// BookedHours lists the taken hours of a room on date.
func (r *repositoryImpl) BookedHours(ctx context.Context, roomID int64, date model.Date) ([]model.Hour, error) {
	schedules, err := r.GetAll(ctx, byStartTime(), slotFilter(roomID, date), model.FieldID, model.FieldStartTime)
	if err != nil {
		return nil, err
	}

	return startTimes(schedules), nil
}
