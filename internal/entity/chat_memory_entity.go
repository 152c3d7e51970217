package entity

import (
	"time"

	"github.com/google/uuid"
)

type ChatMemory struct {
	Id            uuid.UUID
	ChatSessionId uuid.UUID
	Summary       string
	KeyPoints     []string
	CreatedAt     time.Time
	UpdatedAt     *time.Time
}
