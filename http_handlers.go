package main

// this file contains the optional HTTP health endpoint

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
)

func NewHTTPRouter(listener *Listener, logger *log.Logger) *echo.Echo {
	r := echo.New()
	r.HideBanner = true
	r.HidePort = true
	r.Logger = logger
	r.Use(middleware.LoggerWithConfig(middleware.LoggerConfig{
		Format: "method=${method}, uri=${uri}, status=${status}\n",
		Output: logger.Output(),
	}))

	router := r.Group("/api")
	router.GET("/health", healthCheckHandler(listener))

	return r
}

func healthCheckHandler(listener *Listener) echo.HandlerFunc {
	return func(c echo.Context) error {
		return c.JSON(http.StatusOK, echo.Map{
			"status":      "up",
			"listen_addr": listener.Addr().String(),
			"started_at":  listener.startedAt.UTC().Format(time.RFC3339),
		})
	}
}
