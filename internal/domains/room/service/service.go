package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"
	"path"
	"scams/config"
	"scams/infras/otel"
	"scams/infras/s3"
	"scams/internal/domains/room/model"
	"scams/internal/domains/room/model/dto"
	"scams/internal/domains/room/repository"
	"scams/shared"
	"scams/shared/constant"
	"scams/shared/failure"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const msgRoomNotFound = "room does not exist"

type Room interface {
	List(ctx context.Context, criteria dto.RoomCriteria) (dto.ListRoomsResponse, error)
	Get(ctx context.Context, id int64) (dto.RoomDetail, error)
	UploadImage(ctx context.Context, id int64, req dto.UploadImageRequest) (dto.RoomDetail, error)
}

type serviceImpl struct {
	repo repository.Room
	cfg  *config.Config
	otel otel.Otel
	s3   s3.S3
}

func New(repo repository.Room, cfg *config.Config, otel otel.Otel, s3 s3.S3) Room {
	return &serviceImpl{
		repo: repo,
		cfg:  cfg,
		otel: otel,
		s3:   s3,
	}
}

// List resolves the rooms matching criteria and assembles their details in id order.
func (s *serviceImpl) List(ctx context.Context, criteria dto.RoomCriteria) (res dto.ListRoomsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".List")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	res.Rooms = []dto.RoomDetail{}

	ids, err := s.repo.FindAvailable(ctx, criteria)
	if err != nil {
		log.Error().Err(err).Msg("failed to find available rooms")

		return res, fmt.Errorf("failed to find available rooms: %w", err)
	}

	if len(ids) == 0 {
		return res, nil
	}

	views, err := s.repo.GetViews(ctx, ids)
	if err != nil {
		log.Error().Err(err).Msg("failed to get rooms")

		return res, fmt.Errorf("failed to get rooms: %w", err)
	}

	devices, err := s.repo.DeviceNames(ctx, ids)
	if err != nil {
		log.Error().Err(err).Msg("failed to get room devices")

		return res, fmt.Errorf("failed to get room devices: %w", err)
	}

	byID := make(map[int64]model.RoomView, len(views))
	for _, view := range views {
		byID[view.ID] = view
	}

	for _, id := range ids {
		view, ok := byID[id]
		if !ok {
			continue
		}

		var detail dto.RoomDetail
		detail.FromModel(view, devices[id])

		res.Rooms = append(res.Rooms, detail)
	}

	return res, nil
}

// Get checks existence through the building join before reading devices, so a room
// without devices is still found.
func (s *serviceImpl) Get(ctx context.Context, id int64) (res dto.RoomDetail, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	view, err := s.repo.GetView(ctx, id)
	if err != nil {
		log.Error().Err(err).Int64("room_id", id).Msg("failed to get room")

		return res, fmt.Errorf("failed to get room: %w", err)
	}

	if view.ID == 0 {
		return res, failure.NotFound(msgRoomNotFound)
	}

	devices, err := s.repo.DeviceNames(ctx, []int64{id})
	if err != nil {
		log.Error().Err(err).Int64("room_id", id).Msg("failed to get room devices")

		return res, fmt.Errorf("failed to get room devices: %w", err)
	}

	res.FromModel(view, devices[id])

	return res, nil
}

// UploadImage stores a new picture for the room and replaces the previous one.
func (s *serviceImpl) UploadImage(ctx context.Context, id int64, req dto.UploadImageRequest) (res dto.RoomDetail, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UploadImage")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	room, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Int64("room_id", id).Msg("failed to get room")

		return res, fmt.Errorf("failed to get room: %w", err)
	}

	if room.ID == 0 {
		return res, failure.NotFound(msgRoomNotFound)
	}

	directory := s.cfg.External.S3.RoomImageDir
	fileName := fmt.Sprintf("%d-%s.%s", id, uuid.NewString(), req.Extension())

	url, err := s.s3.Upload(ctx, directory, fileName, req.ContentType, req.Data)
	if err != nil {
		log.Error().Err(err).Int64("room_id", id).Msg("failed to upload room image")

		return res, fmt.Errorf("failed to upload room image: %w", err)
	}

	if err = s.repo.Update(ctx, map[string]any{model.FieldImageURL: url}, filter); err != nil {
		log.Error().Err(err).Int64("room_id", id).Msg("failed to update room image")

		if delErr := s.s3.Delete(ctx, path.Join(directory, fileName)); delErr != nil {
			log.Error().Err(delErr).Str("file", fileName).Msg("failed to remove orphaned room image")
		}

		return res, fmt.Errorf("failed to update room image: %w", err)
	}

	if room.ImageURL.Valid {
		if oldKey := s.s3.ObjectKeyFromURL(room.ImageURL.String); oldKey != constant.Empty {
			if delErr := s.s3.Delete(ctx, oldKey); delErr != nil {
				log.Warn().Err(delErr).Str("key", oldKey).Msg("failed to delete previous room image")
			}
		}
	}

	return s.Get(ctx, id)
}
