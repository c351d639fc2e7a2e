package resource

import (
	"net/http"
	"scams/infras/otel"
	buildingService "scams/internal/domains/building/service"
	deviceService "scams/internal/domains/device/service"
	userService "scams/internal/domains/user/service"
	"scams/shared/constant"
	"scams/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

// Handler serves the reference lists the booking screens are built from.
type Handler struct {
	buildings buildingService.Building
	devices   deviceService.Device
	users     userService.User
	otel      otel.Otel
}

func New(buildings buildingService.Building, devices deviceService.Device, users userService.User, otel otel.Otel) Handler {
	return Handler{
		buildings: buildings,
		devices:   devices,
		users:     users,
		otel:      otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Get("/buildings", handler.GetBuildings)
	router.Get("/devices", handler.GetDevices)
	router.Get("/lecturers", handler.GetLecturers)
}

// GetBuildings lists every building.
// @Summary List buildings
// @Tags Resource
// @Produce json
// @Success 200 {object} response.Data[buildingDto.ListBuildingsResponse]
// @Failure 500 {object} response.Error
// @Router /v1/buildings [get]
// @Security BearerAuth
func (handler *Handler) GetBuildings(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBuildings")
	defer scope.End()

	res, err := handler.buildings.List(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to list buildings")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}

// GetDevices lists every device type a room can hold.
// @Summary List devices
// @Tags Resource
// @Produce json
// @Success 200 {object} response.Data[deviceDto.ListDevicesResponse]
// @Failure 500 {object} response.Error
// @Router /v1/devices [get]
// @Security BearerAuth
func (handler *Handler) GetDevices(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetDevices")
	defer scope.End()

	res, err := handler.devices.List(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to list devices")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}

// GetLecturers lists lecturers with their names decrypted.
// @Summary List lecturers
// @Tags Resource
// @Produce json
// @Success 200 {object} response.Data[userDto.ListLecturersResponse]
// @Failure 500 {object} response.Error
// @Router /v1/lecturers [get]
// @Security BearerAuth
func (handler *Handler) GetLecturers(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetLecturers")
	defer scope.End()

	res, err := handler.users.ListLecturers(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to list lecturers")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}
