package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/goudatijdmachine/straatnamen-api/internal/domain"
)

func photosBody(n int) []byte {
	rows := make([]string, 0, n)
	for i := 0; i < n; i++ {
		rows = append(rows, fmt.Sprintf(`{
			"identifier": {"type": "uri", "value": "https://n2t.net/ark:/60537/foto%d"},
			"titel": {"type": "literal", "value": "Foto %d"}
		}`, i, i))
	}
	return []byte(`{"results":{"bindings":[` + strings.Join(rows, ",") + `]}}`)
}

func TestPhotoList(t *testing.T) {
	executor := &mockExecutor{body: photosBody(10)}
	uc := NewPhotoUsecase(newMockCache(), executor)

	page, err := uc.List(context.Background(), "https://n2t.net/ark:/60537/abc", 3, 5)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}

	if page.Total != 10 {
		t.Fatalf("expected total 10, got %d", page.Total)
	}
	if len(page.Photos) != 3 {
		t.Fatalf("expected 3 photos, got %d", len(page.Photos))
	}
	if page.Photos[0].Identifier != "https://n2t.net/ark:/60537/foto5" {
		t.Fatalf("unexpected first photo %s", page.Photos[0].Identifier)
	}
}

func TestPhotoListOffsetBeyondEnd(t *testing.T) {
	executor := &mockExecutor{body: photosBody(10)}
	uc := NewPhotoUsecase(newMockCache(), executor)

	page, err := uc.List(context.Background(), "https://n2t.net/ark:/60537/abc", 25, 15)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}

	if page.Total != 10 {
		t.Fatalf("expected total 10, got %d", page.Total)
	}
	if len(page.Photos) != 0 {
		t.Fatalf("expected empty page, got %d photos", len(page.Photos))
	}
}

func TestPhotoListNoPhotosIsNotFound(t *testing.T) {
	executor := &mockExecutor{body: []byte(emptyBody)}
	uc := NewPhotoUsecase(newMockCache(), executor)

	_, err := uc.List(context.Background(), "https://n2t.net/ark:/60537/abc", 25, 0)
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestPhotoListInvalidIdentifier(t *testing.T) {
	executor := &mockExecutor{body: photosBody(3)}
	uc := NewPhotoUsecase(newMockCache(), executor)

	_, err := uc.List(context.Background(), "ftp://n2t.net/ark:/60537/abc", 25, 0)
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
	if executor.calls != 0 {
		t.Fatalf("malformed identifier must not reach the store")
	}
}

func TestCacheClear(t *testing.T) {
	cache := newMockCache()
	cache.entries["a"] = []byte("1")
	cache.entries["b"] = []byte("2")

	uc := NewCacheUsecase(cache)

	count, err := uc.Clear(context.Background())
	if err != nil {
		t.Fatalf("clear failed: %v", err)
	}
	if count != 2 {
		t.Fatalf("expected 2 cleared entries, got %d", count)
	}

	count, err = uc.Clear(context.Background())
	if err != nil {
		t.Fatalf("second clear failed: %v", err)
	}
	if count != 0 {
		t.Fatalf("expected 0 cleared entries, got %d", count)
	}
}
