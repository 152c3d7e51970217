package contract

import (
	"context"

	"gcn-navigator-be/internal/entity"
	"gcn-navigator-be/internal/repository/specification"

	"github.com/google/uuid"
)

type ChatSessionRepository interface {
	// CreateIfAbsent inserts the session unless a row with the same id
	// already exists. Concurrent submissions for the same id must both
	// succeed with exactly one row winning.
	CreateIfAbsent(ctx context.Context, session *entity.ChatSession) error
	Delete(ctx context.Context, id uuid.UUID) (int64, error)
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.ChatSession, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ChatSession, error)
	// FindListWithFirstTurn returns every session newest first, each
	// paired with the earliest query asked in it.
	FindListWithFirstTurn(ctx context.Context) ([]*entity.ChatSessionListItem, error)
}
