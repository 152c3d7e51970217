package mapper

import (
	"encoding/json"
	"time"

	"gcn-navigator-be/internal/entity"
	"gcn-navigator-be/internal/model"

	"gorm.io/datatypes"
)

type ChatMapper struct{}

func NewChatMapper() *ChatMapper {
	return &ChatMapper{}
}

func (m *ChatMapper) ChatSessionToEntity(s *model.ChatSession) *entity.ChatSession {
	if s == nil {
		return nil
	}

	return &entity.ChatSession{
		Id:        s.Id,
		Name:      s.Name,
		CreatedAt: s.CreatedAt,
	}
}

func (m *ChatMapper) ChatSessionToModel(s *entity.ChatSession) *model.ChatSession {
	if s == nil {
		return nil
	}

	return &model.ChatSession{
		Id:        s.Id,
		Name:      s.Name,
		CreatedAt: s.CreatedAt,
	}
}

func (m *ChatMapper) ChatTurnToEntity(t *model.ChatTurn) *entity.ChatTurn {
	if t == nil {
		return nil
	}

	var refs []entity.PdfReference
	unmarshalJSON(t.PdfReferences, &refs)
	if refs == nil {
		refs = []entity.PdfReference{}
	}

	var settings *entity.TurnSettings
	if len(t.Settings) > 0 {
		settings = &entity.TurnSettings{}
		if err := json.Unmarshal(t.Settings, settings); err != nil {
			settings = nil
		}
	}

	return &entity.ChatTurn{
		Id:              t.Id,
		ChatSessionId:   t.ChatSessionId,
		Query:           t.Query,
		Answer:          t.Answer,
		PdfReferences:   refs,
		SimilarImages:   toStringSlice(t.SimilarImages),
		OnlineImages:    toStringSlice(t.OnlineImages),
		OnlineVideos:    toStringSlice(t.OnlineVideos),
		OnlineLinks:     toStringSlice(t.OnlineLinks),
		RelevantQueries: toStringSlice(t.RelevantQueries),
		Settings:        settings,
		CreatedAt:       t.CreatedAt,
	}
}

func (m *ChatMapper) ChatTurnToModel(t *entity.ChatTurn) *model.ChatTurn {
	if t == nil {
		return nil
	}

	var settings datatypes.JSON
	if t.Settings != nil {
		settings = marshalJSON(t.Settings)
	}

	return &model.ChatTurn{
		Id:              t.Id,
		ChatSessionId:   t.ChatSessionId,
		Query:           t.Query,
		Answer:          t.Answer,
		PdfReferences:   marshalJSON(t.PdfReferences),
		SimilarImages:   marshalJSON(t.SimilarImages),
		OnlineImages:    marshalJSON(t.OnlineImages),
		OnlineVideos:    marshalJSON(t.OnlineVideos),
		OnlineLinks:     marshalJSON(t.OnlineLinks),
		RelevantQueries: marshalJSON(t.RelevantQueries),
		Settings:        settings,
		CreatedAt:       t.CreatedAt,
	}
}

func (m *ChatMapper) ChatTurnsToEntities(turns []*model.ChatTurn) []*entity.ChatTurn {
	entities := make([]*entity.ChatTurn, len(turns))
	for i, t := range turns {
		entities[i] = m.ChatTurnToEntity(t)
	}
	return entities
}

func (m *ChatMapper) ChatMemoryToEntity(mem *model.ChatMemory) *entity.ChatMemory {
	if mem == nil {
		return nil
	}

	var updatedAt *time.Time
	if !mem.UpdatedAt.IsZero() {
		t := mem.UpdatedAt
		updatedAt = &t
	}

	keyPoints := toStringSlice(mem.KeyPoints)

	return &entity.ChatMemory{
		Id:            mem.Id,
		ChatSessionId: mem.ChatSessionId,
		Summary:       mem.Summary,
		KeyPoints:     keyPoints,
		CreatedAt:     mem.CreatedAt,
		UpdatedAt:     updatedAt,
	}
}

func (m *ChatMapper) ChatMemoryToModel(mem *entity.ChatMemory) *model.ChatMemory {
	if mem == nil {
		return nil
	}

	var updatedAt time.Time
	if mem.UpdatedAt != nil {
		updatedAt = *mem.UpdatedAt
	}

	return &model.ChatMemory{
		Id:            mem.Id,
		ChatSessionId: mem.ChatSessionId,
		Summary:       mem.Summary,
		KeyPoints:     marshalJSON(mem.KeyPoints),
		CreatedAt:     mem.CreatedAt,
		UpdatedAt:     updatedAt,
	}
}

// toStringSlice decodes a JSON array column, normalizing NULL and malformed
// payloads to an empty slice so callers always see a well-formed collection.
func toStringSlice(raw datatypes.JSON) []string {
	var out []string
	unmarshalJSON(raw, &out)
	if out == nil {
		out = []string{}
	}
	return out
}

func unmarshalJSON(raw datatypes.JSON, dst interface{}) {
	if len(raw) == 0 {
		return
	}
	_ = json.Unmarshal(raw, dst)
}

func marshalJSON(v interface{}) datatypes.JSON {
	raw, err := json.Marshal(v)
	if err != nil {
		return datatypes.JSON("[]")
	}
	return datatypes.JSON(raw)
}
