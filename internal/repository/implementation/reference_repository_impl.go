package implementation

import (
	"context"

	"gcn-navigator-be/internal/entity"
	"gcn-navigator-be/internal/mapper"
	"gcn-navigator-be/internal/model"
	"gcn-navigator-be/internal/repository/contract"
	"gcn-navigator-be/internal/repository/specification"

	"gorm.io/gorm"
)

type ReferenceRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.ReferenceMapper
}

func NewReferenceRepository(db *gorm.DB) contract.ReferenceRepository {
	return &ReferenceRepositoryImpl{
		db:     db,
		mapper: mapper.NewReferenceMapper(),
	}
}

func (r *ReferenceRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Reference, error) {
	var models []*model.Reference
	query := r.db.WithContext(ctx)
	for _, spec := range specs {
		query = spec.Apply(query)
	}
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}
