package service

import (
	"gcn-navigator-be/internal/dto"
	"gcn-navigator-be/internal/pkg/logger"
)

type ILogService interface {
	GetSince(lastId int64) *dto.LogsResponse
}

// logService exposes the in-process log ring for incremental polling.
type logService struct {
	ring *logger.Ring
}

func NewLogService(ring *logger.Ring) ILogService {
	return &logService{ring: ring}
}

func (l *logService) GetSince(lastId int64) *dto.LogsResponse {
	entries := l.ring.Since(lastId)

	res := &dto.LogsResponse{
		Logs:      make([]dto.LogEntryResponse, len(entries)),
		LastLogId: lastId,
	}
	for i, e := range entries {
		res.Logs[i] = dto.LogEntryResponse{
			Id:        e.Id,
			Timestamp: e.Timestamp.Format("2006-01-02T15:04:05.000Z07:00"),
			Level:     e.Level,
			Module:    e.Module,
			Message:   e.Message,
		}
		res.LastLogId = e.Id
	}
	return res
}
