package service

import (
	"context"

	"gcn-navigator-be/internal/dto"
	"gcn-navigator-be/internal/pkg/serverutils"
	"gcn-navigator-be/internal/repository/memory"
	"gcn-navigator-be/internal/repository/specification"
	"gcn-navigator-be/internal/repository/unitofwork"
)

type IReferenceService interface {
	GetAll(ctx context.Context) ([]*dto.ReferenceResponse, error)
}

// referenceService serves the mention catalog, caching it in memory so
// keystroke-driven fetches don't hammer the store.
type referenceService struct {
	uowFactory unitofwork.RepositoryFactory
	cache      *memory.ReferenceCache
}

func NewReferenceService(uowFactory unitofwork.RepositoryFactory, cache *memory.ReferenceCache) IReferenceService {
	return &referenceService{
		uowFactory: uowFactory,
		cache:      cache,
	}
}

func (r *referenceService) GetAll(ctx context.Context) ([]*dto.ReferenceResponse, error) {
	refs, found := r.cache.Get()
	if !found {
		uow := r.uowFactory.NewUnitOfWork(ctx)

		var err error
		refs, err = uow.ReferenceRepository().FindAll(ctx, specification.OrderBy{Field: "name"})
		if err != nil {
			return nil, serverutils.NewStoreUnavailable(err)
		}
		r.cache.Save(refs)
	}

	result := make([]*dto.ReferenceResponse, len(refs))
	for i, ref := range refs {
		result[i] = &dto.ReferenceResponse{
			Id:   ref.Id.String(),
			Name: ref.Name,
			Info: ref.Info,
		}
	}
	return result, nil
}
