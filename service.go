package main

import (
	"github.com/labstack/gommon/log"
)

// Service receives every successfully decoded record.
type Service interface {
	RecordReceived(connID string, rec IncomingRecord)
}

type ServiceImpl struct {
	logger *log.Logger
}

func NewService(logger *log.Logger) *ServiceImpl {
	return &ServiceImpl{logger: logger}
}

func (s *ServiceImpl) RecordReceived(connID string, rec IncomingRecord) {
	s.logger.Infof("[%s] current time: %s", connID, rec.CurrentTime)
	s.logger.Infof("[%s] playlist contents: %s", connID, rec.PlaylistContents)
}
