package entity

import (
	"time"

	"github.com/google/uuid"
)

type Reference struct {
	Id        uuid.UUID
	Name      string
	Info      string
	CreatedAt time.Time
}
