package entity

import (
	"time"

	"github.com/google/uuid"
)

type ChatSession struct {
	Id        uuid.UUID
	Name      string
	CreatedAt time.Time
}

// ChatSessionListItem is a session enriched with the first exchange ever
// held in it, used by the conversation index.
type ChatSessionListItem struct {
	Id          uuid.UUID
	Name        string
	FirstQuery  string
	FirstAnswer string
	CreatedAt   time.Time
}
