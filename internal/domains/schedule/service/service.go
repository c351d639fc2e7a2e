package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"scams/config"
	"scams/infras/kafka"
	"scams/infras/otel"
	"scams/infras/postgres"
	roomRepo "scams/internal/domains/room/repository"
	"scams/internal/domains/schedule/model"
	"scams/internal/domains/schedule/model/dto"
	"scams/internal/domains/schedule/repository"
	userRepo "scams/internal/domains/user/repository"
	"scams/shared/constant"
	gDto "scams/shared/dto"
	"scams/shared/encryption"
	"scams/shared/failure"
	"scams/shared/timezone"
	"strconv"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/rs/zerolog/log"
)

const (
	msgRoomNotFound      = "room does not exist"
	msgCreateFailed      = "failed to create schedule"
	msgSlotAlreadyBooked = "time slot already booked for this room"
)

type Schedule interface {
	Create(ctx context.Context, req dto.CreateScheduleRequest, lecturerID int64) (dto.CreateScheduleResponse, error)
	ListMine(ctx context.Context, lecturerID int64, params gDto.QueryParams) (dto.MySchedulesResponse, error)
	ListAll(ctx context.Context, filter dto.ScheduleFilter) (dto.ListSchedulesResponse, error)
	RoomSlots(ctx context.Context, roomID int64, date model.Date) (dto.RoomSlotsResponse, error)
}

type serviceImpl struct {
	repo       repository.Schedule
	rooms      roomRepo.Room
	users      userRepo.User
	transactor postgres.Transactor
	cipher     encryption.Cipher
	kafka      kafka.Client
	cfg        *config.Config
	otel       otel.Otel
}

func New(
	repo repository.Schedule,
	rooms roomRepo.Room,
	users userRepo.User,
	transactor postgres.Transactor,
	cipher encryption.Cipher,
	kafka kafka.Client,
	cfg *config.Config,
	otel otel.Otel,
) Schedule {
	return &serviceImpl{
		repo:       repo,
		rooms:      rooms,
		users:      users,
		transactor: transactor,
		cipher:     cipher,
		kafka:      kafka,
		cfg:        cfg,
		otel:       otel,
	}
}

func (s *serviceImpl) requireLecturer(ctx context.Context, userID int64) error {
	exist, err := s.users.IsLecturer(ctx, userID)
	if err != nil {
		log.Error().Err(err).Int64("user_id", userID).Msg("failed to check lecturer")

		return fmt.Errorf("failed to check lecturer: %w", err)
	}

	if !exist {
		return failure.LecturerRoleRequired
	}

	return nil
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error

	return errors.As(err, &pqErr) && string(pqErr.Code) == constant.PqErrorCodeUniqueViolation
}

// Create books every hour of the request for the acting lecturer. Either all hours
// are written or none are.
func (s *serviceImpl) Create(ctx context.Context, req dto.CreateScheduleRequest, lecturerID int64) (res dto.CreateScheduleResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = s.requireLecturer(ctx, lecturerID); err != nil {
		return res, err
	}

	hours, err := req.HourRange()
	if err != nil {
		return res, failure.BadRequest(err)
	}

	date, err := model.ParseDate(req.Date)
	if err != nil {
		return res, failure.BadRequest(err)
	}

	purpose, err := s.cipher.Encrypt(req.Purpose)
	if err != nil {
		log.Error().Err(err).Msg("failed to encrypt purpose")

		return res, failure.InternalErrorWithCause(msgCreateFailed, err)
	}

	teamMembers := sql.NullString{}
	if req.TeamMembers != nil {
		encrypted, encErr := s.cipher.Encrypt(*req.TeamMembers)
		if encErr != nil {
			log.Error().Err(encErr).Msg("failed to encrypt team members")

			return res, failure.InternalErrorWithCause(msgCreateFailed, encErr)
		}

		teamMembers = sql.NullString{String: encrypted, Valid: true}
	}

	scope.SetAttributes(map[string]any{
		"room_id":     req.RoomID,
		"lecturer_id": lecturerID,
		"date":        date,
		"start_time":  model.Hour(hours.Start),
	})

	err = s.transactor.WithTransaction(ctx, func(tx *sqlx.Tx) error {
		found, txErr := s.rooms.LockTx(ctx, tx, req.RoomID)
		if txErr != nil {
			return failure.InternalErrorWithCause(msgCreateFailed, txErr)
		}

		if !found {
			return failure.NotFound(msgRoomNotFound)
		}

		booked, txErr := s.repo.BookedHoursTx(ctx, tx, req.RoomID, date, hours.Hours())
		if txErr != nil {
			return failure.InternalErrorWithCause(msgCreateFailed, txErr)
		}

		if txErr = checkConflicts(hours, booked); txErr != nil {
			return txErr
		}

		ids := make([]int64, 0, hours.End-hours.Start)

		for _, hour := range hours.Hours() {
			id, insErr := s.repo.InsertTx(ctx, tx, model.Schedule{
				RoomID:      req.RoomID,
				LecturerID:  lecturerID,
				Date:        date,
				StartTime:   hour,
				Purpose:     purpose,
				TeamMembers: teamMembers,
			})
			if insErr != nil {
				if isUniqueViolation(insErr) {
					return failure.ConflictWithCause(msgSlotAlreadyBooked, insErr)
				}

				return failure.InternalErrorWithCause(msgCreateFailed, insErr)
			}

			ids = append(ids, id)
		}

		details, txErr := s.repo.DetailsTx(ctx, tx, ids)
		if txErr != nil {
			return failure.InternalErrorWithCause(msgCreateFailed, txErr)
		}

		res.Schedule, txErr = dto.FromModels(details, s.cipher)
		if txErr != nil {
			return failure.InternalErrorWithCause(msgCreateFailed, txErr)
		}

		return nil
	})
	if err != nil {
		log.Error().Err(err).Int64("room_id", req.RoomID).Str("date", req.Date).Msg("failed to create schedule")

		var fail *failure.Failure
		if !errors.As(err, &fail) {
			// begin or commit failed outside the callback
			err = failure.InternalErrorWithCause(msgCreateFailed, err)
		}

		return dto.CreateScheduleResponse{}, err
	}

	s.publishCreated(ctx, res.Schedule, lecturerID, req)

	return res, nil
}

func (s *serviceImpl) publishCreated(ctx context.Context, schedules []dto.ScheduleDetail, lecturerID int64, req dto.CreateScheduleRequest) {
	event := dto.ScheduleCreatedEvent{
		ScheduleIDs: make([]int64, len(schedules)),
		RoomID:      req.RoomID,
		LecturerID:  lecturerID,
		Date:        req.Date,
		Slots:       make([]string, len(schedules)),
		CreatedAt:   timezone.Format(timezone.Now(), constant.DateFormat),
	}

	for i, schedule := range schedules {
		event.ScheduleIDs[i] = schedule.ID
		event.Slots[i] = schedule.StartTime
	}

	msg := kafka.Message{Key: strconv.FormatInt(req.RoomID, 10), Value: event}

	if err := s.kafka.SendMessages(ctx, s.cfg.Kafka.Topics.ScheduleCreated, msg); err != nil {
		log.Warn().Err(err).Int64("room_id", req.RoomID).Msg("failed to publish schedule created event")
	}
}

// ListMine pages through the acting lecturer's own bookings, newest first.
func (s *serviceImpl) ListMine(ctx context.Context, lecturerID int64, params gDto.QueryParams) (res dto.MySchedulesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ListMine")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = s.requireLecturer(ctx, lecturerID); err != nil {
		return res, err
	}

	schedules, err := s.repo.ListByLecturer(ctx, lecturerID, params)
	if err != nil {
		log.Error().Err(err).Int64("lecturer_id", lecturerID).Msg("failed to list schedules")

		return res, fmt.Errorf("failed to list schedules: %w", err)
	}

	res.LecturerID = lecturerID

	res.Schedules, err = dto.FromModels(schedules, s.cipher)
	if err != nil {
		log.Error().Err(err).Msg("failed to decrypt schedules")

		return res, fmt.Errorf("failed to decrypt schedules: %w", err)
	}

	return res, nil
}

// ListAll returns every booking of one day. A zero date means today in the app timezone.
func (s *serviceImpl) ListAll(ctx context.Context, filter dto.ScheduleFilter) (res dto.ListSchedulesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ListAll")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if filter.Date.IsZero() {
		filter.Date = model.NewDate(timezone.Today())
	}

	schedules, err := s.repo.ListByDate(ctx, filter)
	if err != nil {
		log.Error().Err(err).Str("date", filter.Date.String()).Msg("failed to list schedules")

		return res, fmt.Errorf("failed to list schedules: %w", err)
	}

	res.Schedules, err = dto.FromModels(schedules, s.cipher)
	if err != nil {
		log.Error().Err(err).Msg("failed to decrypt schedules")

		return res, fmt.Errorf("failed to decrypt schedules: %w", err)
	}

	return res, nil
}

// RoomSlots lists the booked hours of a room on date.
func (s *serviceImpl) RoomSlots(ctx context.Context, roomID int64, date model.Date) (res dto.RoomSlotsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".RoomSlots")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttribute("date", date)

	if date.IsZero() {
		date = model.NewDate(timezone.Today())
	}

	view, err := s.rooms.GetView(ctx, roomID)
	if err != nil {
		log.Error().Err(err).Int64("room_id", roomID).Msg("failed to get room")

		return res, fmt.Errorf("failed to get room: %w", err)
	}

	if view.ID == 0 {
		return res, failure.NotFound(msgRoomNotFound)
	}

	hours, err := s.repo.BookedHours(ctx, roomID, date)
	if err != nil {
		log.Error().Err(err).Int64("room_id", roomID).Msg("failed to get booked hours")

		return res, fmt.Errorf("failed to get booked hours: %w", err)
	}

	res.RoomID = roomID
	res.Date = date.String()
	res.ScheduledSlots = make([]string, len(hours))

	for i, hour := range hours {
		res.ScheduledSlots[i] = hour.String()
	}

	return res, nil
}
