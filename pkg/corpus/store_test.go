package corpus

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/contentforge/blockinfer/models"
)

func writeEntry(t *testing.T, root, name string, schema models.BlockSchema) {
	t.Helper()
	dir := filepath.Join(root, name)
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatalf("failed to create entry dir: %v", err)
	}
	data, err := json.Marshal(schema)
	if err != nil {
		t.Fatalf("failed to marshal schema: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, DocumentName), data, 0644); err != nil {
		t.Fatalf("failed to write schema: %v", err)
	}
}

func TestStore_NamesSorted(t *testing.T) {
	root := t.TempDir()
	writeEntry(t, root, "teaser-list", models.BlockSchema{})
	writeEntry(t, root, "accordion", models.BlockSchema{})
	if err := os.WriteFile(filepath.Join(root, "hero.json"), []byte(`{}`), 0644); err != nil {
		t.Fatalf("failed to write flat entry: %v", err)
	}

	store := NewStore(root)
	names, err := store.Names()
	if err != nil {
		t.Fatalf("Names() error: %v", err)
	}

	want := []string{"accordion", "hero", "teaser-list"}
	if len(names) != len(want) {
		t.Fatalf("Names() = %v, want %v", names, want)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Errorf("Names()[%d] = %q, want %q", i, names[i], want[i])
		}
	}
}

func TestStore_MissingDirectoryIsEmptyCorpus(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "does-not-exist"))

	names, err := store.Names()
	if err != nil {
		t.Fatalf("missing corpus directory must not error, got %v", err)
	}
	if len(names) != 0 {
		t.Errorf("Names() = %v, want empty", names)
	}
}

func TestStore_LoadAbsentDocumentIsSkip(t *testing.T) {
	root := t.TempDir()
	if err := os.MkdirAll(filepath.Join(root, "empty-entry"), 0755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	store := NewStore(root)
	schema, ok, err := store.Load("empty-entry")
	if err != nil {
		t.Errorf("absent document must not error, got %v", err)
	}
	if ok || schema != nil {
		t.Errorf("Load() = %v, %v; want nil, false", schema, ok)
	}
}

func TestStore_LoadMalformedDocumentErrors(t *testing.T) {
	root := t.TempDir()
	dir := filepath.Join(root, "broken")
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, DocumentName), []byte(`{not json`), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}

	store := NewStore(root)
	if _, _, err := store.Load("broken"); err == nil {
		t.Error("malformed entry should surface an error for the caller to skip")
	}
}

func TestStore_CacheInvalidatedOnModTimeChange(t *testing.T) {
	root := t.TempDir()
	writeEntry(t, root, "cards", models.BlockSchema{BlockName: "cards", JSPattern: models.JSPatternCards})

	store := NewStore(root)
	first, ok, err := store.Load("cards")
	if err != nil || !ok {
		t.Fatalf("Load() = %v, %v, %v", first, ok, err)
	}
	if first.JSPattern != models.JSPatternCards {
		t.Fatalf("JSPattern = %v, want cards", first.JSPattern)
	}

	// Rewrite the entry with a different pattern and a newer mod time.
	writeEntry(t, root, "cards", models.BlockSchema{BlockName: "cards", JSPattern: models.JSPatternCarousel})
	future := time.Now().Add(2 * time.Second)
	docPath := filepath.Join(root, "cards", DocumentName)
	if err := os.Chtimes(docPath, future, future); err != nil {
		t.Fatalf("chtimes: %v", err)
	}

	second, ok, err := store.Load("cards")
	if err != nil || !ok {
		t.Fatalf("reload failed: %v, %v, %v", second, ok, err)
	}
	if second.JSPattern != models.JSPatternCarousel {
		t.Errorf("cache not invalidated on mod time change: JSPattern = %v, want carousel", second.JSPattern)
	}
}

func TestStore_DefaultsBlockNameToEntryName(t *testing.T) {
	root := t.TempDir()
	writeEntry(t, root, "promo-banner", models.BlockSchema{})

	store := NewStore(root)
	schema, ok, err := store.Load("promo-banner")
	if err != nil || !ok {
		t.Fatalf("Load() failed: %v, %v", ok, err)
	}
	if schema.BlockName != "promo-banner" {
		t.Errorf("BlockName = %q, want entry name default", schema.BlockName)
	}
}
