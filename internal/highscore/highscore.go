// Package highscore persists the best score across runs as a single decimal
// integer in a text file.
package highscore

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
)

// File stores the high score at Path.
type File struct {
	Path string
}

// NewFile returns a store backed by path.
func NewFile(path string) *File {
	return &File{Path: path}
}

// Load returns the stored high score. A missing file is created with "0";
// an unreadable or malformed file yields 0. Load never fails.
func (f *File) Load() int {
	data, err := os.ReadFile(f.Path)
	if errors.Is(err, fs.ErrNotExist) {
		_ = f.Save(0)
		return 0
	}
	if err != nil {
		return 0
	}

	n, err := strconv.Atoi(strings.TrimSpace(string(data)))
	if err != nil {
		return 0
	}
	return n
}

// Save overwrites the file with score.
func (f *File) Save(score int) error {
	if dir := filepath.Dir(f.Path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("highscore: create dir: %w", err)
		}
	}
	if err := os.WriteFile(f.Path, []byte(strconv.Itoa(score)), 0o644); err != nil {
		return fmt.Errorf("highscore: write %s: %w", f.Path, err)
	}
	return nil
}

// Memory is an in-process store.
type Memory struct {
	mu    sync.Mutex
	score int
	saves int
	err   error
}

// NewMemory returns a store holding score.
func NewMemory(score int) *Memory {
	return &Memory{score: score}
}

// Load returns the held score.
func (m *Memory) Load() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.score
}

// Save records score unless a failure was injected with FailWith.
func (m *Memory) Save(score int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.saves++
	if m.err != nil {
		return m.err
	}
	m.score = score
	return nil
}

// FailWith makes every following Save return err.
func (m *Memory) FailWith(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.err = err
}

// Saves returns how many times Save was called.
func (m *Memory) Saves() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.saves
}
