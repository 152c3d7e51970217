package mapper

import (
	"gcn-navigator-be/internal/entity"
	"gcn-navigator-be/internal/model"
)

type ReferenceMapper struct{}

func NewReferenceMapper() *ReferenceMapper {
	return &ReferenceMapper{}
}

func (m *ReferenceMapper) ToEntity(r *model.Reference) *entity.Reference {
	if r == nil {
		return nil
	}

	return &entity.Reference{
		Id:        r.Id,
		Name:      r.Name,
		Info:      r.Info,
		CreatedAt: r.CreatedAt,
	}
}

func (m *ReferenceMapper) ToEntities(refs []*model.Reference) []*entity.Reference {
	entities := make([]*entity.Reference, len(refs))
	for i, r := range refs {
		entities[i] = m.ToEntity(r)
	}
	return entities
}
