package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	straatnamen "github.com/goudatijdmachine/straatnamen-api"
	"github.com/goudatijdmachine/straatnamen-api/internal/domain"
)

type mockCache struct {
	entries map[string][]byte
	getErr  error
	putErr  error
}

func newMockCache() *mockCache {
	return &mockCache{entries: map[string][]byte{}}
}

func (m *mockCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	if m.getErr != nil {
		return nil, false, m.getErr
	}
	value, ok := m.entries[key]
	return value, ok, nil
}

func (m *mockCache) Put(ctx context.Context, key string, value []byte) error {
	if m.putErr != nil {
		return m.putErr
	}
	m.entries[key] = value
	return nil
}

func (m *mockCache) Clear(ctx context.Context) (int, error) {
	count := len(m.entries)
	m.entries = map[string][]byte{}
	return count, nil
}

type mockExecutor struct {
	body    []byte
	err     error
	calls   int
	queries []string
}

func (m *mockExecutor) Execute(ctx context.Context, query string) ([]byte, error) {
	m.calls++
	m.queries = append(m.queries, query)
	if m.err != nil {
		return nil, m.err
	}
	return m.body, nil
}

func indexBody(names ...string) []byte {
	rows := make([]string, 0, len(names))
	for i, name := range names {
		rows = append(rows, fmt.Sprintf(`{
			"identifier": {"type": "uri", "value": "https://n2t.net/ark:/60537/s%d"},
			"naam": {"type": "literal", "value": "%s"},
			"type": {"type": "literal", "value": "heden"}
		}`, i, name))
	}
	return []byte(`{"results":{"bindings":[` + strings.Join(rows, ",") + `]}}`)
}

const emptyBody = `{"results":{"bindings":[]}}`

func TestStreetSearch(t *testing.T) {
	executor := &mockExecutor{body: indexBody("Kerkstraat", "Markt")}
	uc := NewStreetUsecase(newMockCache(), executor)

	result, err := uc.Search(context.Background(), straatnamen.Filter{Limit: 10, Type: straatnamen.TypeAll})
	if err != nil {
		t.Fatalf("search failed: %v", err)
	}

	if result.Total != 2 || len(result.Streets) != 2 {
		t.Fatalf("expected 2 streets, got total=%d len=%d", result.Total, len(result.Streets))
	}
	if result.Streets[0].Name != "Kerkstraat" {
		t.Fatalf("expected Kerkstraat first, got %s", result.Streets[0].Name)
	}
}

func TestStreetSearchSanitizesQueryText(t *testing.T) {
	executor := &mockExecutor{body: indexBody("Kerkstraat")}
	uc := NewStreetUsecase(newMockCache(), executor)

	_, err := uc.Search(context.Background(), straatnamen.Filter{
		Query: `Kerk"} UNION {?s ?p ?o`,
		Limit: 10,
		Type:  straatnamen.TypeAll,
	})
	if err != nil {
		t.Fatalf("search failed: %v", err)
	}

	if len(executor.queries) != 1 {
		t.Fatalf("expected 1 query, got %d", len(executor.queries))
	}
	if strings.Contains(executor.queries[0], "UNION") {
		t.Fatalf("unsanitized input reached the query: %s", executor.queries[0])
	}
}

func TestStreetSearchEmptyIsNotFound(t *testing.T) {
	executor := &mockExecutor{body: []byte(emptyBody)}
	uc := NewStreetUsecase(newMockCache(), executor)

	_, err := uc.Search(context.Background(), straatnamen.Filter{Limit: 10, Type: straatnamen.TypeAll})
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestStreetSearchUpstreamFailureDegrades(t *testing.T) {
	executor := &mockExecutor{err: domain.UpstreamError{Reason: "transport"}}
	uc := NewStreetUsecase(newMockCache(), executor)

	_, err := uc.Search(context.Background(), straatnamen.Filter{Limit: 10, Type: straatnamen.TypeAll})
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected degraded not-found, got %v", err)
	}
	if errors.Is(err, domain.ErrUpstream) {
		t.Fatalf("upstream failure must not surface to the caller")
	}
}

func TestStreetSearchUsesCache(t *testing.T) {
	cache := newMockCache()
	executor := &mockExecutor{body: indexBody("Kerkstraat")}
	uc := NewStreetUsecase(cache, executor)

	filter := straatnamen.Filter{Limit: 10, Type: straatnamen.TypeAll}

	if _, err := uc.Search(context.Background(), filter); err != nil {
		t.Fatalf("first search failed: %v", err)
	}
	if _, err := uc.Search(context.Background(), filter); err != nil {
		t.Fatalf("second search failed: %v", err)
	}

	if executor.calls != 1 {
		t.Fatalf("expected a single remote fetch, got %d", executor.calls)
	}
}

func TestStreetSearchBrokenCacheStillFetches(t *testing.T) {
	cache := newMockCache()
	cache.getErr = errors.New("redis down")
	cache.putErr = errors.New("redis down")
	executor := &mockExecutor{body: indexBody("Kerkstraat")}
	uc := NewStreetUsecase(cache, executor)

	result, err := uc.Search(context.Background(), straatnamen.Filter{Limit: 10, Type: straatnamen.TypeAll})
	if err != nil {
		t.Fatalf("search failed: %v", err)
	}
	if result.Total != 1 {
		t.Fatalf("expected 1 street, got %d", result.Total)
	}
}

func TestStreetSearchGeoJSONAllowsEmpty(t *testing.T) {
	executor := &mockExecutor{body: []byte(emptyBody)}
	uc := NewStreetUsecase(newMockCache(), executor)

	fc, err := uc.SearchGeoJSON(context.Background(), straatnamen.Filter{Limit: 10, Type: straatnamen.TypeAll})
	if err != nil {
		t.Fatalf("geojson search failed: %v", err)
	}
	if len(fc.Features) != 0 {
		t.Fatalf("expected empty collection, got %d features", len(fc.Features))
	}
}

func TestStreetGetInvalidIdentifier(t *testing.T) {
	executor := &mockExecutor{body: []byte(emptyBody)}
	uc := NewStreetUsecase(newMockCache(), executor)

	_, err := uc.Get(context.Background(), "https://evil.example.org/ark:/60537/abc")
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
	if executor.calls != 0 {
		t.Fatalf("malformed identifier must not reach the store")
	}
}

func TestStreetGetMergesPhotos(t *testing.T) {
	detail := `{"results":{"bindings":[{
		"naam": {"type": "literal", "value": "Kerkstraat"},
		"type": {"type": "literal", "value": "heden"},
		"alt_names": {"type": "literal", "value": "Achter de Kerk|Kerkweg"}
	}]}}`
	photos := `{"results":{"bindings":[{
		"identifier": {"type": "uri", "value": "https://n2t.net/ark:/60537/foto1"},
		"titel": {"type": "literal", "value": "Gezicht op de kerk"},
		"url": {"type": "literal", "value": "https://www.samh.nl/beeld/1"}
	}]}}`

	executor := &sequencedExecutor{bodies: [][]byte{[]byte(detail), []byte(photos)}}
	uc := NewStreetUsecase(newMockCache(), executor)

	identifier := "https://n2t.net/ark:/60537/abc"
	street, err := uc.Get(context.Background(), identifier)
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}

	if street.Identifier != identifier {
		t.Fatalf("expected identifier %s, got %s", identifier, street.Identifier)
	}
	if street.Name != "Kerkstraat" {
		t.Fatalf("expected Kerkstraat, got %s", street.Name)
	}
	if len(street.AlternateNames) != 2 {
		t.Fatalf("expected 2 alternate names, got %v", street.AlternateNames)
	}
	if len(street.Photos) != 1 {
		t.Fatalf("expected 1 photo, got %d", len(street.Photos))
	}
	if street.Photos[0].SourceOrganization != "Streekarchief Midden-Holland" {
		t.Fatalf("unexpected organization %s", street.Photos[0].SourceOrganization)
	}
}

func TestStreetGetUnknownIsNotFound(t *testing.T) {
	executor := &mockExecutor{body: []byte(emptyBody)}
	uc := NewStreetUsecase(newMockCache(), executor)

	_, err := uc.Get(context.Background(), "https://n2t.net/ark:/60537/onbekend")
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

// sequencedExecutor returns one canned body per call, in order.
type sequencedExecutor struct {
	bodies [][]byte
	calls  int
}

func (m *sequencedExecutor) Execute(ctx context.Context, query string) ([]byte, error) {
	if m.calls >= len(m.bodies) {
		return []byte(emptyBody), nil
	}
	body := m.bodies[m.calls]
	m.calls++
	return body, nil
}
