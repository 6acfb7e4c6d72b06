package main

import (
	"net/http"
	"os"

	"github.com/labstack/gommon/log"
)

func main() {
	cfg := LoadConfig()
	logger := NewLogger(cfg.LogLevel, os.Stdout)
	os.Exit(run(cfg, logger))
}

// run only returns when the listener could not be bound; the result is the
// process exit status.
func run(cfg Config, logger *log.Logger) int {
	listener, err := Listen(cfg.ListenAddr(), NewService(logger), logger)
	if err != nil {
		logger.Errorf("unable to bind to address '%s' port '%s' err: %v", cfg.Host, cfg.Port, err)
		return 1
	}

	if cfg.HealthAddr != "" {
		go func() {
			router := NewHTTPRouter(listener, logger)
			if err := router.Start(cfg.HealthAddr); err != nil && err != http.ErrServerClosed {
				logger.Errorf("health server stopped err: %v", err)
			}
		}()
	}

	listener.Serve()
	return 0
}
