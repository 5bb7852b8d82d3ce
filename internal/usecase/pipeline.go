package usecase

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/goudatijdmachine/straatnamen-api/internal/infra/cache"
	"github.com/goudatijdmachine/straatnamen-api/internal/sparql"
)

var tracer = otel.Tracer("usecase")

// queryRows runs the cached query pipeline: cache lookup, remote fetch on
// miss, cache store, decode. Upstream and decode failures degrade to an
// empty row set after being recorded on the span; a single failed fetch
// yields one degraded response, with no retries.
func queryRows(ctx context.Context, store CacheStore, executor QueryExecutor, query string, offset int) []sparql.Row {
	ctx, span := tracer.Start(ctx, "Query.Pipeline")
	defer span.End()

	key := cache.Fingerprint(query, offset)
	span.SetAttributes(attribute.String("cache.key", key))

	body, hit, err := store.Get(ctx, key)
	if err != nil {
		// A broken cache degrades to a miss; the fetch below still works.
		span.RecordError(err)
		hit = false
	}
	span.SetAttributes(attribute.Bool("cache.hit", hit))

	if !hit {
		body, err = executor.Execute(ctx, query)
		if err != nil {
			recordDegrade(span, err)
			return nil
		}
		if err := store.Put(ctx, key, body); err != nil {
			span.RecordError(err)
		}
	}

	rows, err := sparql.DecodeResults(body)
	if err != nil {
		recordDegrade(span, err)
		return nil
	}

	return rows
}

func recordDegrade(span trace.Span, err error) {
	span.RecordError(err)
	span.SetAttributes(attribute.Bool("degraded", true))
}
