package contract

import (
	"context"

	"gcn-navigator-be/internal/entity"

	"github.com/google/uuid"
)

type ChatMemoryRepository interface {
	// Upsert writes the memory row for its session, replacing the summary
	// and key points if one already exists.
	Upsert(ctx context.Context, memory *entity.ChatMemory) error
	FindByChatSessionId(ctx context.Context, chatSessionId uuid.UUID) (*entity.ChatMemory, error)
	DeleteByChatSessionId(ctx context.Context, chatSessionId uuid.UUID) error
}
