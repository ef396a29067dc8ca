package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/vovakirdan/snake-master/internal/engine"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func saveRun(t *testing.T, store *Store, difficulty string, score int) Run {
	t.Helper()
	run := Run{
		RunID:      uuid.NewString(),
		Difficulty: difficulty,
		Score:      score,
		Level:      1,
		EndReason:  string(engine.EndSelfCollision),
		Duration:   1500 * time.Millisecond,
	}
	id, err := store.SaveRun(run)
	if err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}
	run.ID = id
	return run
}

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Check that the file was created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreReopenKeepsRuns(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	saveRun(t, store, "easy", 12)
	store.Close()

	store, err = Open(dbPath)
	if err != nil {
		t.Fatalf("second Open() failed: %v", err)
	}
	defer store.Close()

	high, err := store.HighScore("easy")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 12 {
		t.Errorf("HighScore() = %d, expected 12 after reopen", high)
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	saveRun(t, store, "easy", 10)
	saveRun(t, store, "easy", 5)
	saveRun(t, store, "easy", 20)
	saveRun(t, store, "hard", 50)

	runs, err := store.TopRuns("easy", 10)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}

	if len(runs) != 3 {
		t.Fatalf("Expected 3 runs, got %d", len(runs))
	}

	// Should be sorted descending
	if runs[0].Score != 20 || runs[1].Score != 10 || runs[2].Score != 5 {
		t.Errorf("Runs not in expected order: %v", runs)
	}
	if runs[0].Duration != 1500*time.Millisecond {
		t.Errorf("Duration = %v, expected 1.5s", runs[0].Duration)
	}
	if runs[0].CreatedAt.IsZero() {
		t.Error("CreatedAt was not parsed")
	}

	all, err := store.TopRuns("", 10)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(all) != 4 || all[0].Difficulty != "hard" {
		t.Errorf("TopRuns(all) = %v, expected 4 runs led by hard", all)
	}
}

func TestStoreTopRunsLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		saveRun(t, store, "medium", (i+1)*10)
	}

	runs, err := store.TopRuns("medium", 3)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}

	if len(runs) != 3 {
		t.Errorf("Expected 3 runs with limit, got %d", len(runs))
	}

	// Should be 50, 40, 30 (top 3)
	if runs[0].Score != 50 || runs[1].Score != 40 || runs[2].Score != 30 {
		t.Errorf("Runs not in expected order: %v", runs)
	}
}

func TestStoreRecentRuns(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 4; i++ {
		saveRun(t, store, "easy", i)
	}

	runs, err := store.RecentRuns(2)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(runs) != 2 || runs[0].Score != 3 || runs[1].Score != 2 {
		t.Errorf("RecentRuns(2) = %v, expected the last two newest first", runs)
	}
}

func TestStoreDuplicateRunID(t *testing.T) {
	store := openTestStore(t)
	run := saveRun(t, store, "easy", 1)

	if _, err := store.SaveRun(run); err == nil {
		t.Error("expected error saving the same run id twice")
	}
}

func TestStoreRunByID(t *testing.T) {
	store := openTestStore(t)
	saved := saveRun(t, store, "hard", 33)

	run, err := store.RunByID(saved.RunID)
	if err != nil {
		t.Fatalf("RunByID() failed: %v", err)
	}
	if run == nil || run.Score != 33 || run.Difficulty != "hard" {
		t.Errorf("RunByID() = %+v, expected the saved run", run)
	}

	missing, err := store.RunByID("nope")
	if err != nil || missing != nil {
		t.Errorf("RunByID(missing) = %v, %v, expected nil, nil", missing, err)
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	// No runs yet
	high, err := store.HighScore("easy")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 with no runs, got %d", high)
	}

	saveRun(t, store, "easy", 10)
	saveRun(t, store, "easy", 30)
	saveRun(t, store, "hard", 45)

	high, err = store.HighScore("easy")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 30 {
		t.Errorf("Expected high score of 30, got %d", high)
	}

	high, _ = store.HighScore("")
	if high != 45 {
		t.Errorf("Expected overall high score of 45, got %d", high)
	}
}

func TestStoreClear(t *testing.T) {
	store := openTestStore(t)

	saveRun(t, store, "easy", 10)
	saveRun(t, store, "easy", 20)
	saveRun(t, store, "hard", 30)

	// Clear only easy runs
	if err := store.Clear("easy"); err != nil {
		t.Fatalf("Clear() failed: %v", err)
	}

	easy, _ := store.TopRuns("easy", 10)
	if len(easy) != 0 {
		t.Errorf("Expected 0 easy runs after clear, got %d", len(easy))
	}

	hard, _ := store.TopRuns("hard", 10)
	if len(hard) != 1 {
		t.Errorf("Hard runs should not be affected by clearing easy")
	}

	if err := store.Clear(""); err != nil {
		t.Fatalf("Clear(all) failed: %v", err)
	}
	all, _ := store.TopRuns("", 10)
	if len(all) != 0 {
		t.Errorf("Expected no runs after clearing all, got %d", len(all))
	}
}

func TestStoreAllStats(t *testing.T) {
	store := openTestStore(t)

	saveRun(t, store, "easy", 10)
	saveRun(t, store, "easy", 30)
	saveRun(t, store, "hard", 7)

	stats, err := store.AllStats()
	if err != nil {
		t.Fatalf("AllStats() failed: %v", err)
	}

	easy := stats["easy"]
	if easy == nil {
		t.Fatal("missing easy stats")
	}
	if easy.RunsCount != 2 || easy.HighScore != 30 || easy.TotalScore != 40 || easy.AvgScore != 20 {
		t.Errorf("easy stats = %+v, expected 2 runs, high 30, total 40, avg 20", *easy)
	}
	if easy.PlayTime != 3*time.Second {
		t.Errorf("PlayTime = %v, expected 3s", easy.PlayTime)
	}
	if stats["hard"] == nil || stats["hard"].RunsCount != 1 {
		t.Errorf("hard stats = %+v, expected 1 run", stats["hard"])
	}
}

func TestStoreRecordRun(t *testing.T) {
	store := openTestStore(t)

	err := store.RecordRun(engine.RunRecord{
		RunID:      "run-1",
		Difficulty: "medium",
		Score:      41,
		Level:      3,
		Ticks:      900,
		EndReason:  engine.EndObstacleCollision,
		Duration:   75 * time.Second,
	})
	if err != nil {
		t.Fatalf("RecordRun() failed: %v", err)
	}

	run, err := store.RunByID("run-1")
	if err != nil || run == nil {
		t.Fatalf("RunByID() = %v, %v", run, err)
	}
	if run.Level != 3 || run.Ticks != 900 || run.EndReason != "obstacle_collision" || run.Duration != 75*time.Second {
		t.Errorf("stored run = %+v", *run)
	}
}

func TestStoreNestedPath(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	// Verify nested directories were created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}
