package main

import (
	"io"

	"github.com/labstack/gommon/log"
)

const logHeader = "${time_rfc3339} ${level}"

// NewLogger builds the process logger. It is shared by every connection
// goroutine; gommon serializes writes internally.
func NewLogger(level log.Lvl, out io.Writer) *log.Logger {
	logger := log.New("upnext")
	logger.SetHeader(logHeader)
	logger.SetLevel(level)
	if out != nil {
		// colour is dropped automatically when out is not a terminal
		logger.SetOutput(out)
	}
	return logger
}
