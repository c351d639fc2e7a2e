package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"scams/infras/otel"
	"scams/infras/postgres"
	"scams/internal/domains/room/model"
	"scams/internal/domains/room/model/dto"
	"scams/shared/constant"
	gDto "scams/shared/dto"
	"scams/shared/logger"
	gRepo "scams/shared/repository"
	"strings"

	"github.com/jmoiron/sqlx"
)

const (
	deviceNamesQuery = `SELECT room_devices.room_id, devices.name
		FROM room_devices
		JOIN devices ON devices.id = room_devices.device_id
		WHERE room_devices.room_id IN (?)
		ORDER BY room_devices.room_id, devices.name`

	lockQuery = `SELECT id FROM rooms WHERE id = $1 FOR UPDATE`

	windowQuery = `NOT EXISTS (SELECT 1 FROM schedules
		WHERE schedules.room_id = rooms.id
		AND schedules.date = :window_date
		AND schedules.start_time >= :window_start
		AND schedules.start_time < :window_end)`

	devicesQuery = `rooms.id IN (SELECT room_devices.room_id FROM room_devices
		WHERE room_devices.device_id IN (%s)
		GROUP BY room_devices.room_id
		HAVING COUNT(DISTINCT room_devices.device_id) = :device_count)`
)

type Room interface {
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Room, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	FindAvailable(ctx context.Context, criteria dto.RoomCriteria) ([]int64, error)
	GetView(ctx context.Context, id int64) (model.RoomView, error)
	GetViews(ctx context.Context, ids []int64) ([]model.RoomView, error)
	DeviceNames(ctx context.Context, roomIDs []int64) (map[int64][]string, error)
	LockTx(ctx context.Context, tx *sqlx.Tx, id int64) (bool, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Room]
	views gRepo.Repository[model.RoomView]
	db    *postgres.Connection
	otel  otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Room {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Room](model.EntityName, model.TableName, model.FieldID, db, otel),
		views:      gRepo.NewRepository[model.RoomView](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

// AvailabilityFilter renders the criteria as one conjunctive filter over rooms.
func AvailabilityFilter(criteria dto.RoomCriteria) gDto.FilterGroup {
	filter := gDto.FilterGroup{Operator: gDto.FilterGroupOperatorAnd}

	if criteria.BuildingID != nil {
		filter.Add(gDto.Eq(model.TableName, model.FieldBuildingID, *criteria.BuildingID))
	}

	if criteria.MinCapacity != nil {
		filter.Add(gDto.Filter{
			Field:    model.FieldCapacity,
			Table:    model.TableName,
			Operator: gDto.FilterOperatorGreaterEq,
			ArgName:  "min_capacity",
			Value:    *criteria.MinCapacity,
		})
	}

	if deviceIDs := criteria.UniqueDeviceIDs(); len(deviceIDs) > 0 {
		args := map[string]any{"device_count": len(deviceIDs)}
		placeholders := make([]string, len(deviceIDs))

		for i, id := range deviceIDs {
			name := fmt.Sprintf("device_id_%d", i)
			placeholders[i] = ":" + name
			args[name] = id
		}

		filter.Add(gDto.Filter{
			Operator: gDto.FilterPlainQuery,
			Value:    fmt.Sprintf(devicesQuery, strings.Join(placeholders, ", ")),
			Args:     args,
		})
	}

	if criteria.Window != nil {
		filter.Add(gDto.Filter{
			Operator: gDto.FilterPlainQuery,
			Value:    windowQuery,
			Args: map[string]any{
				"window_date":  criteria.Window.Date,
				"window_start": criteria.Window.Start,
				"window_end":   criteria.Window.End,
			},
		})
	}

	return filter
}

// FindAvailable returns the ids of rooms matching every criterion, by ascending id.
func (r *repositoryImpl) FindAvailable(ctx context.Context, criteria dto.RoomCriteria) ([]int64, error) {
	params := criteria.QueryParams
	params.SortBy = model.TableName + "." + model.FieldID
	params.SortDir = gDto.SortDirAsc

	rooms, err := r.GetAll(ctx, params, AvailabilityFilter(criteria), model.FieldID)
	if err != nil {
		return nil, err
	}

	ids := make([]int64, len(rooms))
	for i, room := range rooms {
		ids[i] = room.ID
	}

	return ids, nil
}

// GetView returns the zero value when the room does not exist.
func (r *repositoryImpl) GetView(ctx context.Context, id int64) (model.RoomView, error) {
	filter := gDto.FilterGroup{}
	filter.Add(gDto.Eq(model.TableName, model.FieldID, id))

	return r.views.Get(ctx, filter)
}

func (r *repositoryImpl) GetViews(ctx context.Context, ids []int64) ([]model.RoomView, error) {
	if len(ids) == 0 {
		return []model.RoomView{}, nil
	}

	filter := gDto.FilterGroup{}
	filter.Add(gDto.Filter{
		Field:    model.FieldID,
		Table:    model.TableName,
		Operator: gDto.FilterOperatorIn,
		Value:    ids,
	})

	return r.views.GetAll(ctx, gDto.QueryParams{SortBy: model.TableName + "." + model.FieldID}, filter)
}

// DeviceNames groups device names by room, each list sorted by name. Rooms without
// devices are absent from the map.
func (r *repositoryImpl) DeviceNames(ctx context.Context, roomIDs []int64) (res map[int64][]string, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".room.DeviceNames")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	res = map[int64][]string{}
	if len(roomIDs) == 0 {
		return res, nil
	}

	query, args, err := sqlx.In(deviceNamesQuery, roomIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to build device names query: %w", err)
	}

	query = r.db.Read.Rebind(query)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	rows := []model.RoomDeviceName{}
	if err = r.db.Read.SelectContext(ctx, &rows, query, args...); err != nil {
		logger.ErrorWithStack(err)

		return nil, fmt.Errorf("failed to get device names (%s): %w", model.EntityName, err)
	}

	for _, row := range rows {
		res[row.RoomID] = append(res[row.RoomID], row.Name)
	}

	return res, nil
}

// LockTx takes a row lock on the room for the rest of the transaction so concurrent
// bookings of the same room run one after another. It reports false when the room
// does not exist.
func (r *repositoryImpl) LockTx(ctx context.Context, tx *sqlx.Tx, id int64) (found bool, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".room.LockTx")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttribute(constant.OtelQueryAttributeKey, lockQuery)

	var lockedID int64

	err = tx.GetContext(ctx, &lockedID, lockQuery, id)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}

	if err != nil {
		logger.ErrorWithStack(err)

		return false, fmt.Errorf("failed to lock room: %w", err)
	}

	return true, nil
}
