package tui

import (
	"errors"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/snake-master/internal/storage"
)

type fakeRunSource struct {
	runs    []storage.Run
	err     error
	filters []string
}

func (f *fakeRunSource) TopRuns(difficulty string, limit int) ([]storage.Run, error) {
	f.filters = append(f.filters, difficulty)
	if f.err != nil {
		return nil, f.err
	}
	var out []storage.Run
	for _, r := range f.runs {
		if difficulty == "" || r.Difficulty == difficulty {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeRunSource) AllStats() (map[string]*storage.Stats, error) {
	stats := make(map[string]*storage.Stats)
	for _, r := range f.runs {
		st, ok := stats[r.Difficulty]
		if !ok {
			st = &storage.Stats{Difficulty: r.Difficulty}
			stats[r.Difficulty] = st
		}
		st.RunsCount++
		st.HighScore = max(st.HighScore, r.Score)
		st.BestLevel = max(st.BestLevel, r.Level)
		st.PlayTime += r.Duration
	}
	return stats, nil
}

func sampleRuns() []storage.Run {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	return []storage.Run{
		{RunID: "a", Difficulty: "hard", Score: 42, Level: 3, EndReason: "obstacle_collision", Duration: 95 * time.Second, CreatedAt: now},
		{RunID: "b", Difficulty: "easy", Score: 7, Level: 1, EndReason: "self_collision", Duration: 20 * time.Second, CreatedAt: now},
	}
}

func TestScoreboardTabs(t *testing.T) {
	src := &fakeRunSource{runs: sampleRuns()}
	m := NewScoreboardModel(src, 100, 30)

	if len(m.runs) != 2 {
		t.Fatalf("All tab runs = %d, expected 2", len(m.runs))
	}

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = next.(ScoreboardModel)
	if m.tabs[m.tabCursor].filter != "easy" {
		t.Errorf("filter = %q, expected easy", m.tabs[m.tabCursor].filter)
	}
	if len(m.runs) != 1 || m.runs[0].RunID != "b" {
		t.Errorf("easy tab runs = %+v, expected run b", m.runs)
	}

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	next, _ = next.(ScoreboardModel).Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	m = next.(ScoreboardModel)
	if m.tabs[m.tabCursor].filter != "hard" {
		t.Errorf("filter = %q, expected hard after wrapping", m.tabs[m.tabCursor].filter)
	}
}

func TestScoreboardView(t *testing.T) {
	m := NewScoreboardModel(&fakeRunSource{runs: sampleRuns()}, 100, 30)
	out := m.View()

	for _, want := range []string{"RUN HISTORY", "Runs: 2", "Best: 42", "obstacle collision", "1:35"} {
		if !strings.Contains(out, want) {
			t.Errorf("view is missing %q", want)
		}
	}
}

func TestScoreboardEmptyAndError(t *testing.T) {
	m := NewScoreboardModel(&fakeRunSource{}, 100, 30)
	if !strings.Contains(m.View(), "No runs recorded yet.") {
		t.Error("empty history should say so")
	}

	m = NewScoreboardModel(&fakeRunSource{err: errors.New("disk gone")}, 100, 30)
	if !strings.Contains(m.View(), "disk gone") {
		t.Error("load errors should be shown")
	}
}

func TestScoreboardQuit(t *testing.T) {
	m := NewScoreboardModel(&fakeRunSource{}, 100, 30)
	next, cmd := m.Update(runeKey('q'))
	if cmd == nil {
		t.Fatal("expected tea.Quit")
	}
	if next.View() != "" {
		t.Error("view should be empty after quitting")
	}
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		d    time.Duration
		want string
	}{
		{0, "0:00"},
		{59 * time.Second, "0:59"},
		{95 * time.Second, "1:35"},
		{61*time.Minute + 1500*time.Millisecond, "61:02"},
	}
	for _, tt := range tests {
		if got := formatDuration(tt.d); got != tt.want {
			t.Errorf("formatDuration(%v) = %q, expected %q", tt.d, got, tt.want)
		}
	}
}
