package implementation

import (
	"context"
	"errors"

	"gcn-navigator-be/internal/entity"
	"gcn-navigator-be/internal/mapper"
	"gcn-navigator-be/internal/model"
	"gcn-navigator-be/internal/repository/contract"
	"gcn-navigator-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ChatSessionRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.ChatMapper
}

func NewChatSessionRepository(db *gorm.DB) contract.ChatSessionRepository {
	return &ChatSessionRepositoryImpl{
		db:     db,
		mapper: mapper.NewChatMapper(),
	}
}

func (r *ChatSessionRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

// CreateIfAbsent relies on ON CONFLICT DO NOTHING so that racing inserts for
// the same session id never fail; the first write wins and later ones are
// silently absorbed.
func (r *ChatSessionRepositoryImpl) CreateIfAbsent(ctx context.Context, session *entity.ChatSession) error {
	m := r.mapper.ChatSessionToModel(session)
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "id"}}, DoNothing: true}).
		Create(m).Error
}

func (r *ChatSessionRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) (int64, error) {
	result := r.db.WithContext(ctx).Delete(&model.ChatSession{}, id)
	return result.RowsAffected, result.Error
}

func (r *ChatSessionRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.ChatSession, error) {
	var m model.ChatSession
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ChatSessionToEntity(&m), nil
}

func (r *ChatSessionRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ChatSession, error) {
	var models []*model.ChatSession
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	entities := make([]*entity.ChatSession, len(models))
	for i, m := range models {
		entities[i] = r.mapper.ChatSessionToEntity(m)
	}
	return entities, nil
}

// FindListWithFirstTurn pairs each session with the query and answer of its
// oldest turn via correlated subqueries, newest session first. Sessions
// without turns surface with empty strings rather than being filtered out.
func (r *ChatSessionRepositoryImpl) FindListWithFirstTurn(ctx context.Context) ([]*entity.ChatSessionListItem, error) {
	var items []*entity.ChatSessionListItem
	err := r.db.WithContext(ctx).
		Model(&model.ChatSession{}).
		Select(`chat_sessions.id,
			chat_sessions.name,
			chat_sessions.created_at,
			COALESCE((
				SELECT ct.query FROM chat_turns ct
				WHERE ct.chat_session_id = chat_sessions.id
				ORDER BY ct.created_at ASC
				LIMIT 1
			), '') AS first_query,
			COALESCE((
				SELECT ct.answer FROM chat_turns ct
				WHERE ct.chat_session_id = chat_sessions.id
				ORDER BY ct.created_at ASC
				LIMIT 1
			), '') AS first_answer`).
		Order("chat_sessions.created_at DESC").
		Scan(&items).Error
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []*entity.ChatSessionListItem{}
	}
	return items, nil
}
