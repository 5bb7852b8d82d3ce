package usecase

import (
	"context"

	"github.com/paulmach/orb/geojson"

	straatnamen "github.com/goudatijdmachine/straatnamen-api"
	"github.com/goudatijdmachine/straatnamen-api/internal/domain"
	"github.com/goudatijdmachine/straatnamen-api/internal/mapping"
	"github.com/goudatijdmachine/straatnamen-api/internal/sparql"
)

type StreetUsecase struct {
	cache    CacheStore
	executor QueryExecutor
}

func NewStreetUsecase(cache CacheStore, executor QueryExecutor) *StreetUsecase {
	return &StreetUsecase{
		cache:    cache,
		executor: executor,
	}
}

// Search runs the street-index query for the given filter. An empty result
// set after mapping is reported as not-found; the boundary decides the
// status code.
func (uc *StreetUsecase) Search(ctx context.Context, filter straatnamen.Filter) (straatnamen.SearchResult, error) {
	ctx, span := tracer.Start(ctx, "Street.Usecase.Search")
	defer span.End()

	filter.Query = sparql.SanitizeSearch(filter.Query)

	rows := queryRows(ctx, uc.cache, uc.executor, sparql.StreetIndex(filter), filter.Offset)
	streets := mapping.StreetsFromRows(rows)

	if len(streets) == 0 {
		return straatnamen.SearchResult{}, domain.NotFoundError{Resource: "streets"}
	}

	return straatnamen.SearchResult{
		Streets: streets,
		Total:   len(streets),
	}, nil
}

// SearchGeoJSON runs the street-index query and maps rows carrying geometry
// into a feature collection. An empty collection is a valid response.
func (uc *StreetUsecase) SearchGeoJSON(ctx context.Context, filter straatnamen.Filter) (*geojson.FeatureCollection, error) {
	ctx, span := tracer.Start(ctx, "Street.Usecase.SearchGeoJSON")
	defer span.End()

	filter.Query = sparql.SanitizeSearch(filter.Query)

	rows := queryRows(ctx, uc.cache, uc.executor, sparql.StreetIndex(filter), filter.Offset)

	return mapping.FeatureCollectionFromRows(rows), nil
}

// Get fetches one street with its photos merged in. Malformed identifiers
// are treated as unknown streets rather than reaching the store.
func (uc *StreetUsecase) Get(ctx context.Context, identifier string) (straatnamen.Street, error) {
	ctx, span := tracer.Start(ctx, "Street.Usecase.Get")
	defer span.End()

	if !straatnamen.IsArkIdentifier(identifier) {
		return straatnamen.Street{}, domain.NotFoundError{Resource: "street"}
	}

	rows := queryRows(ctx, uc.cache, uc.executor, sparql.StreetDetail(identifier), 0)
	if len(rows) == 0 {
		return straatnamen.Street{}, domain.NotFoundError{Resource: "street"}
	}

	street := mapping.StreetFromDetailRow(identifier, rows[0])

	photoRows := queryRows(ctx, uc.cache, uc.executor, sparql.PhotosByStreet(identifier), 0)
	street.Photos = mapping.PhotosFromRows(photoRows)

	return street, nil
}
