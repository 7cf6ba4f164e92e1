package lib

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultLayoutValid(t *testing.T) {
	if err := DefaultLayout().Validate(); err != nil {
		t.Errorf("default layout invalid: %v", err)
	}
}

func TestLayoutValidation(t *testing.T) {
	layout := DefaultLayout()
	layout.TerminalWidth = 0
	if layout.Validate() == nil {
		t.Error("expected zero terminal width to fail validation")
	}

	layout = DefaultLayout()
	layout.HeadFont = 100
	if layout.Validate() == nil {
		t.Error("expected oversized font to fail validation")
	}
}

func TestLoadLayoutEmptyPath(t *testing.T) {
	layout, err := LoadLayout("")
	if err != nil {
		t.Fatalf("failed to load: %v", err)
	}
	if layout != DefaultLayout() {
		t.Error("expected defaults for empty path")
	}
}

func TestLayoutRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "layout.yaml")

	layout := DefaultLayout()
	layout.TerminalWidth = 30
	layout.SplitSize = 12
	if err := WriteLayout(path, layout); err != nil {
		t.Fatalf("failed to write: %v", err)
	}

	read, err := LoadLayout(path)
	if err != nil {
		t.Fatalf("failed to load: %v", err)
	}
	if read != layout {
		t.Errorf("expected %+v, got %+v", layout, read)
	}
}

func TestLoadLayoutPartialFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "layout.yaml")
	if err := os.WriteFile(path, []byte("terminal_width: 25\n"), 0644); err != nil {
		t.Fatal(err)
	}

	layout, err := LoadLayout(path)
	if err != nil {
		t.Fatalf("failed to load: %v", err)
	}
	if layout.TerminalWidth != 25 {
		t.Errorf("expected terminal width 25, got %d", layout.TerminalWidth)
	}
	if layout.HeadHeight != DefaultLayout().HeadHeight {
		t.Error("expected unset fields to keep defaults")
	}
}

func TestLoadLayoutRejectsInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "layout.yaml")
	if err := os.WriteFile(path, []byte("split_size: 0\n"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := LoadLayout(path); err == nil {
		t.Error("expected invalid layout to fail")
	}
}
