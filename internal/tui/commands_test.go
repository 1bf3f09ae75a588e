package tui

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestLoadCatalogJobEmbedded(t *testing.T) {
	msg, err := loadCatalogJob("")(context.Background())
	if err != nil {
		t.Fatalf("loadCatalogJob error = %v", err)
	}
	result, ok := msg.(catalogResultMsg)
	if !ok {
		t.Fatalf("unexpected payload %T", msg)
	}
	if result.source != "embedded" || result.catalog == nil {
		t.Fatalf("result = %+v", result)
	}
}

func TestLoadCatalogJobFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.json")
	doc := `{"slides":[{"icon":"search","accent":"blue","title":"Só um","body":"x"}],"carouselDots":1}`
	if err := os.WriteFile(path, []byte(doc), 0o600); err != nil {
		t.Fatalf("write catalog: %v", err)
	}
	msg, err := loadCatalogJob(path)(context.Background())
	if err != nil {
		t.Fatalf("loadCatalogJob error = %v", err)
	}
	result := msg.(catalogResultMsg)
	if result.source != path || len(result.catalog.Slides) != 1 {
		t.Fatalf("result = %+v", result)
	}
}

func TestLoadCatalogJobMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.json")
	msg, err := loadCatalogJob(path)(context.Background())
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("err = %v, want not exist", err)
	}
	if result := msg.(catalogResultMsg); result.err == nil || result.source != path {
		t.Fatalf("result = %+v", result)
	}
}

func TestLoadCatalogJobCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := loadCatalogJob("")(ctx); !errors.Is(err, context.Canceled) {
		t.Fatalf("err = %v, want context.Canceled", err)
	}
}

func TestJobBusIDsAreSequential(t *testing.T) {
	bus := newJobBus()
	if got := bus.nextID(jobKindCatalog); got != "catalog-1" {
		t.Fatalf("first id = %q", got)
	}
	if got := bus.nextID(jobKindCatalog); got != "catalog-2" {
		t.Fatalf("second id = %q", got)
	}
}
