package schedule

import (
	"net/http"
	"scams/infras/otel"
	"scams/internal/domains/schedule/model"
	"scams/internal/domains/schedule/model/dto"
	"scams/internal/domains/schedule/service"
	"scams/shared"
	"scams/shared/constant"
	gDto "scams/shared/dto"
	"scams/shared/failure"
	"scams/shared/validator"
	"scams/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Schedule
	otel    otel.Otel
}

func New(service service.Schedule, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Post("/schedules", handler.CreateSchedule)
	router.Get("/schedules", handler.GetSchedules)
	router.Get("/schedules/me", handler.GetMySchedules)
}

// CreateSchedule books a room for consecutive hours.
// @Summary Create schedule
// @Description Books every hour in [start_time, end_time) for the signed-in lecturer. All hours are booked or none.
// @Tags Schedule
// @Accept json
// @Produce json
// @Param request body dto.CreateScheduleRequest true "Create Schedule Request"
// @Success 201 {object} response.Data[dto.CreateScheduleResponse]
// @Failure 400 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/schedules [post]
// @Security BearerAuth
func (handler *Handler) CreateSchedule(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateSchedule")
	defer scope.End()

	req := dto.CreateScheduleRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	res, err := handler.service.Create(ctx, req, shared.UserIDFromContext(ctx))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create schedule")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Schedule created successfully")

	response.WithJSON(writer, http.StatusCreated, res)
}

// GetMySchedules pages through the signed-in lecturer's bookings.
// @Summary List my schedules
// @Tags Schedule
// @Produce json
// @Param limit query integer false "Page size" default(10)
// @Param offset query integer false "Page offset" default(0)
// @Success 200 {object} response.Data[dto.MySchedulesResponse]
// @Failure 400 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/schedules/me [get]
// @Security BearerAuth
func (handler *Handler) GetMySchedules(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetMySchedules")
	defer scope.End()

	params := gDto.QueryParams{}
	if err := params.FromRequest(request, constant.DefaultValueLimit); err != nil {
		scope.TraceError(err)
		response.WithError(writer, err)

		return
	}

	res, err := handler.service.ListMine(ctx, shared.UserIDFromContext(ctx), params)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to list my schedules")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}

func parseFilter(request *http.Request) (dto.ScheduleFilter, error) {
	var (
		filter dto.ScheduleFilter
		err    error
	)

	query := request.URL.Query()

	if raw := query.Get(constant.RequestParamDate); raw != "" {
		if filter.Date, err = model.ParseDate(raw); err != nil {
			return filter, failure.BadRequestFromString("date must be formatted as YYYY-MM-DD")
		}
	}

	if filter.RoomID, err = shared.OptionalInt64(query, constant.RequestParamRoomID); err != nil {
		return filter, failure.BadRequest(err)
	}

	if filter.LecturerID, err = shared.OptionalInt64(query, constant.RequestParamLecturerID); err != nil {
		return filter, failure.BadRequest(err)
	}

	if filter.BuildingID, err = shared.OptionalInt64(query, constant.RequestParamBuildingID); err != nil {
		return filter, failure.BadRequest(err)
	}

	return filter, nil
}

// GetSchedules lists every booking of one day.
// @Summary List schedules
// @Tags Schedule
// @Produce json
// @Param date query string false "Date (YYYY-MM-DD), defaults to today"
// @Param room_id query integer false "Room id"
// @Param lecturer_id query integer false "Lecturer id"
// @Param building_id query integer false "Building id"
// @Success 200 {object} response.Data[dto.ListSchedulesResponse]
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/schedules [get]
// @Security BearerAuth
func (handler *Handler) GetSchedules(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetSchedules")
	defer scope.End()

	filter, err := parseFilter(request)
	if err != nil {
		scope.TraceError(err)
		response.WithError(writer, err)

		return
	}

	res, err := handler.service.ListAll(ctx, filter)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to list schedules")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}
