package lib

import (
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()

	store, err := NewStore(t.TempDir())
	if err != nil {
		t.Fatalf("failed to open store: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	return store
}

func TestStoreLayouts(t *testing.T) {
	store := openTestStore(t)

	layout := DefaultLayout()
	layout.TerminalWidth = 25
	if err := store.SaveLayout("wide", layout); err != nil {
		t.Fatalf("failed to save: %v", err)
	}

	read, err := store.GetLayout("wide")
	if err != nil {
		t.Fatalf("failed to get: %v", err)
	}
	if read != layout {
		t.Errorf("expected %+v, got %+v", layout, read)
	}

	names, err := store.ListLayouts()
	if err != nil {
		t.Fatalf("failed to list: %v", err)
	}
	if len(names) != 1 || names[0] != "wide" {
		t.Errorf("expected [wide], got %v", names)
	}

	if err := store.DeleteLayout("wide"); err != nil {
		t.Fatalf("failed to delete: %v", err)
	}
	if _, err := store.GetLayout("wide"); err == nil {
		t.Error("expected missing profile to fail")
	}
}

func TestStoreProjectLayouts(t *testing.T) {
	store := openTestStore(t)

	if store.ProjectLayout("plant.qet") != "" {
		t.Error("expected no profile for unknown project")
	}

	if err := store.RememberProjectLayout("plant.qet", "wide"); err != nil {
		t.Fatalf("failed to remember: %v", err)
	}
	if store.ProjectLayout("plant.qet") != "wide" {
		t.Errorf("expected wide, got %s", store.ProjectLayout("plant.qet"))
	}

	/* keys are normalized paths */
	if store.ProjectLayout("./plant.qet") != "wide" {
		t.Error("expected normalized lookup to match")
	}
}
