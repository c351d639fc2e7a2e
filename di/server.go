package di

import (
	"context"
	"scams/config"
	"scams/infras/kafka"
	"scams/infras/otel"
	"scams/infras/postgres"
	"scams/transport/http"
	"scams/transport/http/middleware"
	"scams/transport/http/router"

	goRedis "github.com/redis/go-redis/v9"
)

// newServer builds the HTTP server and hands it every backing resource to release on shutdown.
func newServer(
	cfg *config.Config,
	r router.Router,
	app middleware.AppMiddleware,
	conn *postgres.Connection,
	client *goRedis.Client,
	producer kafka.Client,
	tracer otel.Otel,
) *http.HTTP {
	server := http.New(cfg, r, app)

	server.OnShutdown(
		func(context.Context) error { return producer.Close() },
		func(context.Context) error { return client.Close() },
		func(context.Context) error { return conn.Close() },
		tracer.Shutdown,
	)

	return server
}
