package usecase

import (
	"context"

	straatnamen "github.com/goudatijdmachine/straatnamen-api"
	"github.com/goudatijdmachine/straatnamen-api/internal/domain"
	"github.com/goudatijdmachine/straatnamen-api/internal/mapping"
	"github.com/goudatijdmachine/straatnamen-api/internal/sparql"
)

type PhotoUsecase struct {
	cache    CacheStore
	executor QueryExecutor
}

func NewPhotoUsecase(cache CacheStore, executor QueryExecutor) *PhotoUsecase {
	return &PhotoUsecase{
		cache:    cache,
		executor: executor,
	}
}

// List fetches the full photo window for a street and slices the requested
// page client-side. A zero total means the street is unknown or has no
// photos; callers wanting to tell those apart must check the street first.
func (uc *PhotoUsecase) List(ctx context.Context, identifier string, limit, offset int) (straatnamen.PhotoPage, error) {
	ctx, span := tracer.Start(ctx, "Photo.Usecase.List")
	defer span.End()

	if !straatnamen.IsArkIdentifier(identifier) {
		return straatnamen.PhotoPage{}, domain.NotFoundError{Resource: "street"}
	}

	rows := queryRows(ctx, uc.cache, uc.executor, sparql.PhotosByStreet(identifier), 0)
	photos := mapping.PhotosFromRows(rows)

	total, page := mapping.PagePhotos(photos, limit, offset)
	if total == 0 {
		return straatnamen.PhotoPage{}, domain.NotFoundError{Resource: "photos"}
	}

	return straatnamen.PhotoPage{
		Total:  total,
		Photos: page,
	}, nil
}
