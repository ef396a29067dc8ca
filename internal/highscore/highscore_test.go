package highscore

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

func TestLoadMissingCreatesZero(t *testing.T) {
	path := filepath.Join(t.TempDir(), "highscore.txt")
	f := NewFile(path)

	if got := f.Load(); got != 0 {
		t.Errorf("Load() = %d, expected 0", got)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("expected file to be created: %v", err)
	}
	if string(data) != "0" {
		t.Errorf("file content = %q, expected %q", data, "0")
	}
}

func TestLoadContents(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		expected int
	}{
		{"plain", "42", 42},
		{"trailing newline", "17\n", 17},
		{"surrounding spaces", "  9 ", 9},
		{"malformed", "abc", 0},
		{"empty", "", 0},
		{"float", "3.5", 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "hs.txt")
			if err := os.WriteFile(path, []byte(tc.content), 0o644); err != nil {
				t.Fatal(err)
			}
			if got := NewFile(path).Load(); got != tc.expected {
				t.Errorf("Load() = %d, expected %d", got, tc.expected)
			}
		})
	}
}

func TestSaveOverwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "hs.txt")
	f := NewFile(path)

	if err := f.Save(120); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if err := f.Save(7); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if got := f.Load(); got != 7 {
		t.Errorf("Load() = %d, expected last write 7", got)
	}
}

func TestSaveUnwritable(t *testing.T) {
	dir := t.TempDir()
	// A directory at the target path cannot be overwritten as a file.
	path := filepath.Join(dir, "hs")
	if err := os.Mkdir(path, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := NewFile(path).Save(1); err == nil {
		t.Error("expected error writing over a directory")
	}
	if got := NewFile(path).Load(); got != 0 {
		t.Errorf("Load() = %d, expected 0 for unreadable path", got)
	}
}

func TestMemory(t *testing.T) {
	m := NewMemory(5)
	if m.Load() != 5 {
		t.Errorf("Load() = %d, expected 5", m.Load())
	}
	if err := m.Save(9); err != nil {
		t.Fatal(err)
	}

	m.FailWith(errors.New("disk full"))
	if err := m.Save(11); err == nil {
		t.Error("expected injected error")
	}
	if m.Load() != 9 {
		t.Errorf("Load() = %d, expected 9 after failed save", m.Load())
	}
	if m.Saves() != 2 {
		t.Errorf("Saves() = %d, expected 2", m.Saves())
	}
}

func TestPropertyRoundTrip(t *testing.T) {
	dir := t.TempDir()
	properties := gopter.NewProperties(gopter.DefaultTestParameters())

	properties.Property("load after save returns the saved score", prop.ForAll(
		func(score int) bool {
			f := NewFile(filepath.Join(dir, "hs.txt"))
			if err := f.Save(score); err != nil {
				return false
			}
			return f.Load() == score
		},
		gen.IntRange(0, 1<<30),
	))

	properties.TestingRun(t)
}
