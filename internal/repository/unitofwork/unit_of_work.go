package unitofwork

import (
	"context"

	"gcn-navigator-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	ChatSessionRepository() contract.ChatSessionRepository
	ChatTurnRepository() contract.ChatTurnRepository
	ChatMemoryRepository() contract.ChatMemoryRepository
	ReferenceRepository() contract.ReferenceRepository
}
