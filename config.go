package main

import (
	"net"
	"os"
	"strings"

	"github.com/labstack/gommon/log"
)

// the websocket listener always binds here
const (
	serverAddress = "localhost"
	serverPort    = "27745"
)

const (
	envLogLevel   = "LOG_LEVEL"
	envHealthAddr = "HEALTH_ADDR"
)

type Config struct {
	Host       string
	Port       string
	HealthAddr string
	LogLevel   log.Lvl
}

func LoadConfig() Config {
	cfg := Config{
		Host:       serverAddress,
		Port:       serverPort,
		HealthAddr: os.Getenv(envHealthAddr),
		LogLevel:   log.INFO,
	}
	if lvl, ok := parseLevel(os.Getenv(envLogLevel)); ok {
		cfg.LogLevel = lvl
	}
	return cfg
}

func (c Config) ListenAddr() string {
	return net.JoinHostPort(c.Host, c.Port)
}

func parseLevel(s string) (log.Lvl, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return log.DEBUG, true
	case "info":
		return log.INFO, true
	case "warn", "warning":
		return log.WARN, true
	case "error":
		return log.ERROR, true
	case "off":
		return log.OFF, true
	}
	return 0, false
}
