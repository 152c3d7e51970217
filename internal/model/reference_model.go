package model

import (
	"time"

	"github.com/google/uuid"
)

// Reference is a catalog entry users can attach to a draft query via @name.
type Reference struct {
	Id        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name      string    `gorm:"type:text;not null;uniqueIndex"`
	Info      string    `gorm:"type:text;not null"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

func (Reference) TableName() string {
	return "references"
}
