package contract

import (
	"context"

	"gcn-navigator-be/internal/entity"
	"gcn-navigator-be/internal/repository/specification"

	"github.com/google/uuid"
)

type ChatTurnRepository interface {
	Create(ctx context.Context, turn *entity.ChatTurn) error
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ChatTurn, error)
	DeleteByChatSessionId(ctx context.Context, chatSessionId uuid.UUID) error
}
