package usecase

import (
	"context"
)

type CacheUsecase struct {
	cache CacheStore
}

func NewCacheUsecase(cache CacheStore) *CacheUsecase {
	return &CacheUsecase{cache: cache}
}

// Clear drops every cached query result and reports how many entries
// existed before removal.
func (uc *CacheUsecase) Clear(ctx context.Context) (int, error) {
	ctx, span := tracer.Start(ctx, "Cache.Usecase.Clear")
	defer span.End()

	return uc.cache.Clear(ctx)
}
