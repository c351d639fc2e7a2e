package handler

import (
	"net/http"
	"scams/config"
	"scams/di"
	"scams/shared/logger"
	"sync"

	"github.com/rs/zerolog/log"
)

var (
	server http.Handler
	once   sync.Once
)

// Handler serves the API from a serverless runtime. The dependency graph is built on
// the first request and reused while the instance stays warm.
func Handler(w http.ResponseWriter, r *http.Request) {
	r.RequestURI = r.URL.String()

	once.Do(func() {
		logger.InitLogger()
		logger.Configure(config.Get())

		service, err := di.InitializeService()
		if err != nil {
			log.Error().Err(err).Msg("Failed to initialize service")

			return
		}

		server = service
	})

	if server == nil {
		http.Error(w, http.StatusText(http.StatusServiceUnavailable), http.StatusServiceUnavailable)

		return
	}

	server.ServeHTTP(w, r)
}
