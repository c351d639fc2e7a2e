//go:build wireinject
// +build wireinject

package di

import (
	"scams/config"
	"scams/infras/jwt"
	"scams/infras/kafka"
	"scams/infras/otel"
	"scams/infras/postgres"
	"scams/infras/redis"
	"scams/infras/s3"
	"scams/permissions"
	"scams/shared/cache"
	"scams/shared/encryption"
	"scams/transport/http"
	"scams/transport/http/middleware"
	"scams/transport/http/router"

	"github.com/google/wire"

	authService "scams/internal/domains/auth/service"
	buildingRepository "scams/internal/domains/building/repository"
	buildingService "scams/internal/domains/building/service"
	deviceRepository "scams/internal/domains/device/repository"
	deviceService "scams/internal/domains/device/service"
	roomRepository "scams/internal/domains/room/repository"
	roomService "scams/internal/domains/room/service"
	scheduleRepository "scams/internal/domains/schedule/repository"
	scheduleService "scams/internal/domains/schedule/service"
	userRepository "scams/internal/domains/user/repository"
	userService "scams/internal/domains/user/service"
	authHandler "scams/internal/handlers/auth"
	resourceHandler "scams/internal/handlers/resource"
	roomHandler "scams/internal/handlers/room"
	scheduleHandler "scams/internal/handlers/schedule"
)

var configurations = wire.NewSet(
	config.Get,
	permissions.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	postgres.NewTransactor,
	otel.New,
	redis.New,
	jwt.New,
	kafka.New,
	s3.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewAuthRoleMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
	encryption.New,
)

var userDomain = wire.NewSet(
	userRepository.New,
	userService.New,
)

var authDomain = wire.NewSet(
	authService.New,
)

var resourceDomain = wire.NewSet(
	buildingRepository.New,
	buildingService.New,
	deviceRepository.New,
	deviceService.New,
)

var roomDomain = wire.NewSet(
	roomRepository.New,
	roomService.New,
)

var scheduleDomain = wire.NewSet(
	scheduleRepository.New,
	scheduleService.New,
)

var domains = wire.NewSet(
	userDomain,
	authDomain,
	resourceDomain,
	roomDomain,
	scheduleDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	authHandler.New,
	roomHandler.New,
	scheduleHandler.New,
	resourceHandler.New,
	router.New,
)

func InitializeService() (*http.HTTP, error) {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		domains,
		routing,
		newServer,
	)

	return &http.HTTP{}, nil
}
