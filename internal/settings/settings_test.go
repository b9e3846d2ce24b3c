package settings

import (
	"os"
	"path/filepath"
	"testing"
)

func TestRoundTrip(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "localize.json"))

	saved := Settings{SourceRoot: "A", DestinationRoot: "B"}
	if err := store.Save(saved); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	if got := store.Load(); got != saved {
		t.Fatalf("expected %+v, got %+v", saved, got)
	}
}

func TestLoadMissingFileReturnsEmpty(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "does-not-exist.json"))
	if got := store.Load(); got != (Settings{}) {
		t.Fatalf("expected empty settings, got %+v", got)
	}
}

func TestLoadCorruptFileReturnsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "localize.json")
	if err := os.WriteFile(path, []byte(`{"source_root": "A", truncated`), 0o644); err != nil {
		t.Fatalf("write failed: %v", err)
	}

	store := NewStore(path)
	if got := store.Load(); got != (Settings{}) {
		t.Fatalf("expected empty settings for corrupt file, got %+v", got)
	}
}

func TestSaveOverwritesWholesale(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "localize.json"))

	if err := store.Save(Settings{SourceRoot: "old", DestinationRoot: "old"}); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	if err := store.Save(Settings{SourceRoot: "new"}); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	got := store.Load()
	if got.SourceRoot != "new" || got.DestinationRoot != "" {
		t.Fatalf("expected wholesale overwrite, got %+v", got)
	}
}
