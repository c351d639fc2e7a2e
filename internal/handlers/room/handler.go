package room

import (
	"io"
	"net/http"
	"scams/infras/otel"
	"scams/internal/domains/room/model/dto"
	"scams/internal/domains/room/service"
	scheduleModel "scams/internal/domains/schedule/model"
	scheduleDto "scams/internal/domains/schedule/model/dto"
	scheduleService "scams/internal/domains/schedule/service"
	"scams/shared"
	"scams/shared/constant"
	"scams/shared/failure"
	"scams/shared/validator"
	"scams/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service   service.Room
	schedules scheduleService.Schedule
	otel      otel.Otel
}

func New(service service.Room, schedules scheduleService.Schedule, otel otel.Otel) Handler {
	return Handler{
		service:   service,
		schedules: schedules,
		otel:      otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Get("/rooms", handler.GetRooms)
	router.Get("/rooms/{id}", handler.GetRoomByID)
	router.Get("/rooms/{id}/schedule", handler.GetRoomSchedule)
	router.Put("/rooms/{id}/image", handler.UploadImage)
}

func pathID(request *http.Request) (int64, error) {
	id, err := shared.ParseInt64(chi.URLParam(request, constant.RequestParamID), constant.RequestParamID)
	if err != nil {
		return 0, failure.BadRequest(err)
	}

	return id, nil
}

// GetRooms lists rooms matching every supplied criterion.
// @Summary List available rooms
// @Description Rooms in a building, holding all requested devices, with enough capacity and free during the time window.
// @Tags Room
// @Produce json
// @Param building_id query integer false "Building id"
// @Param device_ids query []integer false "Device ids, repeated or comma separated" collectionFormat(multi)
// @Param min_capacity query integer false "Minimum capacity"
// @Param start_time query string false "Window start (RFC3339)"
// @Param end_time query string false "Window end (RFC3339)"
// @Param limit query integer false "Page size" default(100)
// @Param offset query integer false "Page offset" default(0)
// @Success 200 {object} response.Data[dto.ListRoomsResponse]
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/rooms [get]
// @Security BearerAuth
func (handler *Handler) GetRooms(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetRooms")
	defer scope.End()

	criteria, err := dto.ParseRoomCriteria(request.URL.Query())
	if err != nil {
		scope.TraceError(err)
		response.WithError(writer, err)

		return
	}

	if err = criteria.QueryParams.FromRequest(request, constant.DefaultValueRoomLimit); err != nil {
		scope.TraceError(err)
		response.WithError(writer, err)

		return
	}

	res, err := handler.service.List(ctx, criteria)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to list rooms")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}

// GetRoomByID returns one room with its building and devices.
// @Summary Get room detail
// @Tags Room
// @Produce json
// @Param id path integer true "Room id"
// @Success 200 {object} response.Data[dto.RoomDetail]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/rooms/{id} [get]
// @Security BearerAuth
func (handler *Handler) GetRoomByID(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetRoomByID")
	defer scope.End()

	id, err := pathID(request)
	if err != nil {
		scope.TraceError(err)
		response.WithError(writer, err)

		return
	}

	res, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Int64("room_id", id).Msg("failed to get room")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}

// GetRoomSchedule lists the booked hours of a room on one day.
// @Summary Get booked slots of a room
// @Tags Room
// @Produce json
// @Param id path integer true "Room id"
// @Param date query string false "Date (YYYY-MM-DD), defaults to today"
// @Success 200 {object} response.Data[scheduleDto.RoomSlotsResponse]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/rooms/{id}/schedule [get]
// @Security BearerAuth
func (handler *Handler) GetRoomSchedule(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetRoomSchedule")
	defer scope.End()

	id, err := pathID(request)
	if err != nil {
		scope.TraceError(err)
		response.WithError(writer, err)

		return
	}

	var date scheduleModel.Date

	if raw := request.URL.Query().Get(constant.RequestParamDate); raw != "" {
		if date, err = scheduleModel.ParseDate(raw); err != nil {
			err = failure.BadRequestFromString("date must be formatted as YYYY-MM-DD")
			scope.TraceError(err)
			response.WithError(writer, err)

			return
		}
	}

	var res scheduleDto.RoomSlotsResponse

	res, err = handler.schedules.RoomSlots(ctx, id, date)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Int64("room_id", id).Msg("failed to get room schedule")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}

// UploadImage replaces the picture of a room.
// @Summary Upload room image
// @Description Internal endpoint, authenticated with the X-API-Key header.
// @Tags Room
// @Accept multipart/form-data
// @Produce json
// @Param id path integer true "Room id"
// @Param file formData file true "PNG, JPEG or WEBP image up to 2 MB"
// @Success 200 {object} response.Data[dto.RoomDetail]
// @Failure 400 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/rooms/{id}/image [put]
// @Security ApiKeyAuth
func (handler *Handler) UploadImage(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UploadImage")
	defer scope.End()

	id, err := pathID(request)
	if err != nil {
		scope.TraceError(err)
		response.WithError(writer, err)

		return
	}

	if err = request.ParseMultipartForm(constant.RequestMaxMemory); err != nil {
		err = failure.BadRequest(err)
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to parse multipart form")

		response.WithError(writer, err)

		return
	}

	file, fileHeader, err := request.FormFile(constant.FormFile)
	if err != nil {
		err = failure.BadRequestFromString("file is required")
		scope.TraceError(err)
		response.WithError(writer, err)

		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to read uploaded file")

		response.WithError(writer, failure.BadRequest(err))

		return
	}

	req := dto.UploadImageRequest{
		ContentType: http.DetectContentType(data),
		Size:        fileHeader.Size,
		Data:        data,
	}

	if err = validator.ValidateStruct(&req); err != nil {
		scope.TraceError(err)
		response.WithError(writer, err)

		return
	}

	res, err := handler.service.UploadImage(ctx, id, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Int64("room_id", id).Msg("failed to upload room image")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Room image uploaded")

	response.WithJSON(writer, http.StatusOK, res)
}
