package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// ChatTurn is one append-only question/answer exchange. The artifact
// collections are ordered JSON arrays; order is part of the contract.
type ChatTurn struct {
	Id              uuid.UUID      `gorm:"type:uuid;primaryKey"`
	ChatSessionId   uuid.UUID      `gorm:"type:uuid;not null;index"`
	Query           string         `gorm:"type:text;not null"`
	Answer          string         `gorm:"type:text;not null"`
	PdfReferences   datatypes.JSON `gorm:"type:jsonb;default:'[]'"`
	SimilarImages   datatypes.JSON `gorm:"type:jsonb;default:'[]'"`
	OnlineImages    datatypes.JSON `gorm:"type:jsonb;default:'[]'"`
	OnlineVideos    datatypes.JSON `gorm:"type:jsonb;default:'[]'"`
	OnlineLinks     datatypes.JSON `gorm:"type:jsonb;default:'[]'"`
	RelevantQueries datatypes.JSON `gorm:"type:jsonb;default:'[]'"`
	Settings        datatypes.JSON `gorm:"type:jsonb"`
	CreatedAt       time.Time      `gorm:"autoCreateTime;index"`

	ChatSession ChatSession `gorm:"foreignKey:ChatSessionId;constraint:OnUpdate:CASCADE"`
}

func (ChatTurn) TableName() string {
	return "chat_turns"
}
