package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// ChatMemory is the evolving long-conversation summary, at most one row per
// session, created lazily and overwritten as the conversation grows.
type ChatMemory struct {
	Id            uuid.UUID      `gorm:"type:uuid;primaryKey"`
	ChatSessionId uuid.UUID      `gorm:"type:uuid;not null;uniqueIndex"`
	Summary       string         `gorm:"type:text;not null"`
	KeyPoints     datatypes.JSON `gorm:"type:jsonb;default:'[]'"`
	CreatedAt     time.Time      `gorm:"autoCreateTime"`
	UpdatedAt     time.Time      `gorm:"autoUpdateTime"`

	ChatSession ChatSession `gorm:"foreignKey:ChatSessionId;constraint:OnUpdate:CASCADE"`
}

func (ChatMemory) TableName() string {
	return "chat_memory"
}
