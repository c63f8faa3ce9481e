package handler

import (
	"net/http"
	"os"
	"sync"

	"risecheckout/config"
	"risecheckout/di"
	"risecheckout/shared/logger"
	httpTransport "risecheckout/transport/http"
)

var (
	app  *httpTransport.HTTP
	once sync.Once
)

// Handler is the serverless entry point. The dependency graph is built on the
// first request and reused by warm invocations.
func Handler(w http.ResponseWriter, r *http.Request) {
	once.Do(func() {
		cfg := config.Get()

		logger.InitLogger()
		logger.UseOutput(cfg, os.Stdout)
		logger.SetLogLevel(cfg)

		app = di.InitializeService()
	})

	r.RequestURI = r.URL.String()

	app.ServeHTTP(w, r)
}
