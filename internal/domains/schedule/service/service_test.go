package service_test

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"scams/config"
	kafkaMocks "scams/infras/kafka/mocks"
	"scams/infras/otel/mocks"
	"scams/infras/postgres"
	pgMocks "scams/infras/postgres/mocks"
	roomMocks "scams/internal/domains/room/mocks"
	roomModel "scams/internal/domains/room/model"
	scheduleMocks "scams/internal/domains/schedule/mocks"
	"scams/internal/domains/schedule/model"
	"scams/internal/domains/schedule/model/dto"
	"scams/internal/domains/schedule/service"
	userMocks "scams/internal/domains/user/mocks"
	gDto "scams/shared/dto"
	"scams/shared/encryption"
	"scams/shared/failure"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const topic = "scams.schedule.created"

type fixture struct {
	svc        service.Schedule
	repo       *scheduleMocks.MockSchedule
	rooms      *roomMocks.MockRoom
	users      *userMocks.MockUser
	transactor *pgMocks.MockTransactor
	kafka      *kafkaMocks.MockClient
	cipher     encryption.Cipher
}

func newFixture(t *testing.T) fixture {
	t.Helper()

	ctrl := gomock.NewController(t)

	cfg := &config.Config{}
	cfg.Encryption.AESKey = "MDEyMzQ1Njc4OWFiY2RlZjAxMjM0NTY3ODlhYmNkZWY="
	cfg.Encryption.EmailPepper = "pepper"
	cfg.Kafka.Topics.ScheduleCreated = topic

	cipher, err := encryption.New(cfg)
	require.NoError(t, err)

	f := fixture{
		repo:       scheduleMocks.NewMockSchedule(ctrl),
		rooms:      roomMocks.NewMockRoom(ctrl),
		users:      userMocks.NewMockUser(ctrl),
		transactor: pgMocks.NewMockTransactor(ctrl),
		kafka:      kafkaMocks.NewMockClient(ctrl),
		cipher:     cipher,
	}

	f.svc = service.New(f.repo, f.rooms, f.users, f.transactor, cipher, f.kafka, cfg, mocks.NewOtel())

	return f
}

func (f fixture) runTransaction() *gomock.Call {
	return f.transactor.EXPECT().
		WithTransaction(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, fn postgres.TxFunc) error {
			return fn(&sqlx.Tx{})
		})
}

func (f fixture) detail(t *testing.T, id int64, hour model.Hour) model.ScheduleDetail {
	t.Helper()

	name, err := f.cipher.Encrypt("Dr. Ana Lim")
	require.NoError(t, err)

	purpose, err := f.cipher.Encrypt("Algorithms lecture")
	require.NoError(t, err)

	date, err := model.ParseDate("2025-12-10")
	require.NoError(t, err)

	return model.ScheduleDetail{
		ID:           id,
		RoomID:       1,
		RoomName:     "Lab 101",
		BuildingID:   1,
		BuildingName: "A1 - Science Building",
		LecturerID:   2,
		LecturerName: name,
		Date:         date,
		StartTime:    hour,
		Purpose:      purpose,
		CreatedAt:    time.Date(2025, 12, 1, 8, 0, 0, 0, time.UTC),
	}
}

func request() dto.CreateScheduleRequest {
	return dto.CreateScheduleRequest{
		RoomID:    1,
		Date:      "2025-12-10",
		StartTime: "10:00",
		EndTime:   "12:00",
		Purpose:   "Algorithms lecture",
	}
}

func TestCreate_BooksOneRowPerHour(t *testing.T) {
	f := newFixture(t)

	f.users.EXPECT().IsLecturer(gomock.Any(), gomock.Any()).Return(true, nil)
	f.runTransaction()
	f.rooms.EXPECT().LockTx(gomock.Any(), gomock.Any(), int64(1)).Return(true, nil)
	f.repo.EXPECT().BookedHoursTx(gomock.Any(), gomock.Any(), int64(1), gomock.Any(), []model.Hour{10, 11}).Return([]model.Hour{}, nil)

	var inserted []model.Schedule

	f.repo.EXPECT().InsertTx(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ *sqlx.Tx, schedule model.Schedule) (int64, error) {
			inserted = append(inserted, schedule)

			return int64(len(inserted) + 10), nil
		}).Times(2)
	f.repo.EXPECT().DetailsTx(gomock.Any(), gomock.Any(), []int64{11, 12}).
		Return([]model.ScheduleDetail{f.detail(t, 11, 10), f.detail(t, 12, 11)}, nil)
	f.kafka.EXPECT().SendMessages(gomock.Any(), topic, gomock.Any()).Return(nil)

	res, err := f.svc.Create(context.Background(), request(), 2)
	require.NoError(t, err)
	require.Len(t, res.Schedule, 2)

	require.Len(t, inserted, 2)
	assert.Equal(t, model.Hour(10), inserted[0].StartTime)
	assert.Equal(t, model.Hour(11), inserted[1].StartTime)
	assert.NotEqual(t, "Algorithms lecture", inserted[0].Purpose)
	assert.False(t, inserted[0].TeamMembers.Valid)

	assert.Equal(t, "10:00", res.Schedule[0].StartTime)
	assert.Equal(t, "11:00", res.Schedule[1].StartTime)
	assert.Equal(t, "Dr. Ana Lim", res.Schedule[0].LecturerName)
	assert.Equal(t, "Algorithms lecture", res.Schedule[0].Purpose)
	assert.Equal(t, "2025-12-10", res.Schedule[0].Date)
	assert.Equal(t, "2025-12-01T08:00:00Z", res.Schedule[0].CreatedAt)
	assert.Nil(t, res.Schedule[0].TeamMembers)
}

func TestCreate_EncryptsTeamMembers(t *testing.T) {
	f := newFixture(t)

	req := request()
	req.EndTime = "11:00"
	team := "Budi, Citra"
	req.TeamMembers = &team

	f.users.EXPECT().IsLecturer(gomock.Any(), gomock.Any()).Return(true, nil)
	f.runTransaction()
	f.rooms.EXPECT().LockTx(gomock.Any(), gomock.Any(), int64(1)).Return(true, nil)
	f.repo.EXPECT().BookedHoursTx(gomock.Any(), gomock.Any(), int64(1), gomock.Any(), []model.Hour{10}).Return(nil, nil)
	f.repo.EXPECT().InsertTx(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ *sqlx.Tx, schedule model.Schedule) (int64, error) {
			require.True(t, schedule.TeamMembers.Valid)

			plain, err := f.cipher.Decrypt(schedule.TeamMembers.String)
			require.NoError(t, err)
			assert.Equal(t, team, plain)

			return 1, nil
		})
	f.repo.EXPECT().DetailsTx(gomock.Any(), gomock.Any(), []int64{1}).Return([]model.ScheduleDetail{f.detail(t, 1, 10)}, nil)
	f.kafka.EXPECT().SendMessages(gomock.Any(), topic, gomock.Any()).Return(nil)

	_, err := f.svc.Create(context.Background(), req, 2)
	require.NoError(t, err)
}

func TestCreate_ConflictOnFirstBookedHour(t *testing.T) {
	f := newFixture(t)

	req := request()
	req.StartTime = "09:00"
	req.EndTime = "13:00"

	f.users.EXPECT().IsLecturer(gomock.Any(), gomock.Any()).Return(true, nil)
	f.runTransaction()
	f.rooms.EXPECT().LockTx(gomock.Any(), gomock.Any(), int64(1)).Return(true, nil)
	f.repo.EXPECT().BookedHoursTx(gomock.Any(), gomock.Any(), int64(1), gomock.Any(), []model.Hour{9, 10, 11, 12}).
		Return([]model.Hour{10, 12}, nil)

	_, err := f.svc.Create(context.Background(), req, 2)
	require.Error(t, err)

	assert.Equal(t, http.StatusConflict, failure.GetCode(err))
	assert.Equal(t, "time slot 10:00 already booked for this room", err.Error())

	var conflict *service.SlotConflictError
	require.ErrorAs(t, err, &conflict)
	assert.Equal(t, model.Hour(10), conflict.Hour)
}

func TestCreate_InsertFailureRollsBack(t *testing.T) {
	f := newFixture(t)

	var txErr error

	f.users.EXPECT().IsLecturer(gomock.Any(), gomock.Any()).Return(true, nil)
	f.transactor.EXPECT().
		WithTransaction(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, fn postgres.TxFunc) error {
			txErr = fn(&sqlx.Tx{})

			return txErr
		})
	f.rooms.EXPECT().LockTx(gomock.Any(), gomock.Any(), int64(1)).Return(true, nil)
	f.repo.EXPECT().BookedHoursTx(gomock.Any(), gomock.Any(), int64(1), gomock.Any(), gomock.Any()).Return(nil, nil)
	f.repo.EXPECT().InsertTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(int64(1), nil)
	f.repo.EXPECT().InsertTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(int64(0), sql.ErrConnDone)

	res, err := f.svc.Create(context.Background(), request(), 2)
	require.Error(t, err)

	assert.Equal(t, http.StatusInternalServerError, failure.GetCode(err))
	assert.ErrorIs(t, err, sql.ErrConnDone)
	assert.ErrorIs(t, txErr, sql.ErrConnDone)
	assert.Contains(t, err.Error(), "failed to create schedule")
	assert.Empty(t, res.Schedule)
}

func TestCreate_CommitFailureIsCreationError(t *testing.T) {
	f := newFixture(t)

	commitErr := fmt.Errorf("failed to commit transaction: %w", sql.ErrTxDone)

	f.users.EXPECT().IsLecturer(gomock.Any(), gomock.Any()).Return(true, nil)
	f.transactor.EXPECT().
		WithTransaction(gomock.Any(), gomock.Any()).
		Return(commitErr)

	res, err := f.svc.Create(context.Background(), request(), 2)
	require.Error(t, err)

	var fail *failure.Failure
	require.ErrorAs(t, err, &fail)
	assert.Equal(t, http.StatusInternalServerError, fail.Code)
	assert.Equal(t, "failed to create schedule: failed to commit transaction: sql: transaction has already been committed or rolled back", fail.Message)
	assert.ErrorIs(t, err, sql.ErrTxDone)
	assert.Empty(t, res.Schedule)
}

func TestCreate_UniqueViolationIsConflict(t *testing.T) {
	f := newFixture(t)

	f.users.EXPECT().IsLecturer(gomock.Any(), gomock.Any()).Return(true, nil)
	f.runTransaction()
	f.rooms.EXPECT().LockTx(gomock.Any(), gomock.Any(), int64(1)).Return(true, nil)
	f.repo.EXPECT().BookedHoursTx(gomock.Any(), gomock.Any(), int64(1), gomock.Any(), gomock.Any()).Return(nil, nil)
	f.repo.EXPECT().InsertTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(int64(0), &pq.Error{Code: "23505"})

	_, err := f.svc.Create(context.Background(), request(), 2)
	require.Error(t, err)
	assert.Equal(t, http.StatusConflict, failure.GetCode(err))
}

func TestCreate_RoomNotFound(t *testing.T) {
	f := newFixture(t)

	f.users.EXPECT().IsLecturer(gomock.Any(), gomock.Any()).Return(true, nil)
	f.runTransaction()
	f.rooms.EXPECT().LockTx(gomock.Any(), gomock.Any(), int64(1)).Return(false, nil)

	_, err := f.svc.Create(context.Background(), request(), 2)
	require.Error(t, err)
	assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	assert.Equal(t, "room does not exist", err.Error())
}

func TestCreate_RequiresLecturer(t *testing.T) {
	f := newFixture(t)

	f.users.EXPECT().IsLecturer(gomock.Any(), gomock.Any()).Return(false, nil)

	_, err := f.svc.Create(context.Background(), request(), 5)
	require.Error(t, err)
	assert.Equal(t, http.StatusForbidden, failure.GetCode(err))
}

func TestCreate_EndNotAfterStart(t *testing.T) {
	f := newFixture(t)

	req := request()
	req.EndTime = "10:00"

	f.users.EXPECT().IsLecturer(gomock.Any(), gomock.Any()).Return(true, nil)

	_, err := f.svc.Create(context.Background(), req, 2)
	require.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	assert.Equal(t, "end_time must be after start_time", err.Error())
}

func TestCreate_PublishFailureIsIgnored(t *testing.T) {
	f := newFixture(t)

	req := request()
	req.EndTime = "11:00"

	f.users.EXPECT().IsLecturer(gomock.Any(), gomock.Any()).Return(true, nil)
	f.runTransaction()
	f.rooms.EXPECT().LockTx(gomock.Any(), gomock.Any(), int64(1)).Return(true, nil)
	f.repo.EXPECT().BookedHoursTx(gomock.Any(), gomock.Any(), int64(1), gomock.Any(), gomock.Any()).Return(nil, nil)
	f.repo.EXPECT().InsertTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(int64(7), nil)
	f.repo.EXPECT().DetailsTx(gomock.Any(), gomock.Any(), []int64{7}).Return([]model.ScheduleDetail{f.detail(t, 7, 10)}, nil)
	f.kafka.EXPECT().SendMessages(gomock.Any(), topic, gomock.Any()).Return(errors.New("broker down"))

	res, err := f.svc.Create(context.Background(), req, 2)
	require.NoError(t, err)
	assert.Len(t, res.Schedule, 1)
}

func TestListMine(t *testing.T) {
	f := newFixture(t)

	params := gDto.QueryParams{Limit: 10}

	f.users.EXPECT().IsLecturer(gomock.Any(), gomock.Any()).Return(true, nil)
	f.repo.EXPECT().ListByLecturer(gomock.Any(), int64(2), params).
		Return([]model.ScheduleDetail{f.detail(t, 12, 11), f.detail(t, 11, 10)}, nil)

	res, err := f.svc.ListMine(context.Background(), 2, params)
	require.NoError(t, err)
	assert.Equal(t, int64(2), res.LecturerID)
	require.Len(t, res.Schedules, 2)
	assert.Equal(t, int64(12), res.Schedules[0].ID)
}

func TestListMine_RequiresLecturer(t *testing.T) {
	f := newFixture(t)

	f.users.EXPECT().IsLecturer(gomock.Any(), gomock.Any()).Return(false, nil)

	_, err := f.svc.ListMine(context.Background(), 3, gDto.QueryParams{Limit: 10})
	require.Error(t, err)
	assert.Equal(t, http.StatusForbidden, failure.GetCode(err))
}

func TestListAll_DefaultsToToday(t *testing.T) {
	f := newFixture(t)

	f.repo.EXPECT().ListByDate(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, filter dto.ScheduleFilter) ([]model.ScheduleDetail, error) {
			assert.False(t, filter.Date.IsZero())

			return nil, nil
		})

	res, err := f.svc.ListAll(context.Background(), dto.ScheduleFilter{})
	require.NoError(t, err)
	assert.NotNil(t, res.Schedules)
	assert.Empty(t, res.Schedules)
}

func TestRoomSlots(t *testing.T) {
	f := newFixture(t)

	date, err := model.ParseDate("2025-12-10")
	require.NoError(t, err)

	f.rooms.EXPECT().GetView(gomock.Any(), int64(1)).Return(roomModel.RoomView{Room: roomModel.Room{ID: 1}}, nil)
	f.repo.EXPECT().BookedHours(gomock.Any(), int64(1), date).Return([]model.Hour{9, 10}, nil)

	res, err := f.svc.RoomSlots(context.Background(), 1, date)
	require.NoError(t, err)
	assert.Equal(t, dto.RoomSlotsResponse{RoomID: 1, Date: "2025-12-10", ScheduledSlots: []string{"09:00", "10:00"}}, res)
}

func TestRoomSlots_RoomNotFound(t *testing.T) {
	f := newFixture(t)

	f.rooms.EXPECT().GetView(gomock.Any(), int64(9)).Return(roomModel.RoomView{}, nil)

	_, err := f.svc.RoomSlots(context.Background(), 9, model.Date{})
	require.Error(t, err)
	assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
}
