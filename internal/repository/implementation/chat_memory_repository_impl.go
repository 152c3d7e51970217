package implementation

import (
	"context"
	"errors"

	"gcn-navigator-be/internal/entity"
	"gcn-navigator-be/internal/mapper"
	"gcn-navigator-be/internal/model"
	"gcn-navigator-be/internal/repository/contract"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ChatMemoryRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.ChatMapper
}

func NewChatMemoryRepository(db *gorm.DB) contract.ChatMemoryRepository {
	return &ChatMemoryRepositoryImpl{
		db:     db,
		mapper: mapper.NewChatMapper(),
	}
}

func (r *ChatMemoryRepositoryImpl) Upsert(ctx context.Context, memory *entity.ChatMemory) error {
	m := r.mapper.ChatMemoryToModel(memory)
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "chat_session_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"summary", "key_points", "updated_at"}),
		}).
		Create(m).Error
}

func (r *ChatMemoryRepositoryImpl) FindByChatSessionId(ctx context.Context, chatSessionId uuid.UUID) (*entity.ChatMemory, error) {
	var m model.ChatMemory
	err := r.db.WithContext(ctx).
		Where("chat_session_id = ?", chatSessionId).
		First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ChatMemoryToEntity(&m), nil
}

func (r *ChatMemoryRepositoryImpl) DeleteByChatSessionId(ctx context.Context, chatSessionId uuid.UUID) error {
	return r.db.WithContext(ctx).
		Where("chat_session_id = ?", chatSessionId).
		Delete(&model.ChatMemory{}).Error
}
