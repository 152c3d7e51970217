package contract

import (
	"context"

	"gcn-navigator-be/internal/entity"
	"gcn-navigator-be/internal/repository/specification"
)

type ReferenceRepository interface {
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Reference, error)
}
