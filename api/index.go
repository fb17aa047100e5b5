package handler

import (
	"aircon/config"
	"aircon/di"
	"aircon/shared/logger"
	"net/http"
	"sync"

	appHTTP "aircon/transport/http"
)

var (
	server *appHTTP.HTTP
	once   sync.Once
)

// Handler is the serverless entrypoint. The service graph is built once per instance.
func Handler(w http.ResponseWriter, r *http.Request) {
	r.RequestURI = r.URL.String()

	once.Do(func() {
		cfg := config.Get()

		logger.InitLogger(cfg)

		logger.SetLogLevel(cfg)

		server = di.InitializeService()
	})

	server.ServeHTTP(w, r)

	// the instance may be frozen once the handler returns
	server.Dispatcher.Wait()
}
