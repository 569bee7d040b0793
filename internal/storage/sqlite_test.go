package storage

import (
	"os"
	"path/filepath"
	"testing"
)

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

func TestStoreRecordAndBest(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// No runs yet: best is 0, not an error.
	best, err := store.BestDistance("rush")
	if err != nil {
		t.Fatalf("BestDistance() failed: %v", err)
	}
	if best != 0 {
		t.Errorf("BestDistance() = %d with empty table, expected 0", best)
	}

	for _, d := range []int{300, 150, 220} {
		if _, err := store.RecordRun("rush", d, 42); err != nil {
			t.Fatalf("RecordRun() failed: %v", err)
		}
	}

	// Best is the maximum, so a worse later run never lowers it.
	best, err = store.BestDistance("rush")
	if err != nil {
		t.Fatalf("BestDistance() failed: %v", err)
	}
	if best != 300 {
		t.Errorf("BestDistance() = %d, expected 300", best)
	}
}

func TestStoreTopRuns(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	for _, d := range []int{100, 50, 200, 75, 180} {
		if _, err := store.RecordRun("rush", d, 10); err != nil {
			t.Fatalf("RecordRun() failed: %v", err)
		}
	}
	// A different game's runs must not bleed in.
	if _, err := store.RecordRun("other", 999, 10); err != nil {
		t.Fatalf("RecordRun() failed: %v", err)
	}

	runs, err := store.TopRuns("rush", 3)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}

	if len(runs) != 3 {
		t.Fatalf("Expected 3 runs, got %d", len(runs))
	}
	if runs[0].Distance != 200 || runs[1].Distance != 180 || runs[2].Distance != 100 {
		t.Errorf("TopRuns order wrong: %d, %d, %d", runs[0].Distance, runs[1].Distance, runs[2].Distance)
	}
}

func TestStoreRecentRuns(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	for _, d := range []int{10, 20, 30} {
		if _, err := store.RecordRun("rush", d, 5); err != nil {
			t.Fatalf("RecordRun() failed: %v", err)
		}
	}

	runs, err := store.RecentRuns("rush", 2)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(runs) != 2 {
		t.Fatalf("Expected 2 runs, got %d", len(runs))
	}
	// Most recent first.
	if runs[0].Distance != 30 {
		t.Errorf("Most recent run distance = %d, expected 30", runs[0].Distance)
	}
}

func TestStoreGameStats(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	for _, d := range []int{100, 200} {
		if _, err := store.RecordRun("rush", d, 30); err != nil {
			t.Fatalf("RecordRun() failed: %v", err)
		}
	}

	stats, err := store.GetGameStats("rush")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}

	if stats.RunsCount != 2 {
		t.Errorf("RunsCount = %d, expected 2", stats.RunsCount)
	}
	if stats.BestDistance != 200 {
		t.Errorf("BestDistance = %d, expected 200", stats.BestDistance)
	}
	if stats.AvgDistance != 150 {
		t.Errorf("AvgDistance = %v, expected 150", stats.AvgDistance)
	}
	if stats.TotalSecs != 60 {
		t.Errorf("TotalSecs = %d, expected 60", stats.TotalSecs)
	}
}

func TestStoreClearRuns(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := store.RecordRun("rush", 100, 10); err != nil {
		t.Fatalf("RecordRun() failed: %v", err)
	}
	if err := store.ClearRuns("rush"); err != nil {
		t.Fatalf("ClearRuns() failed: %v", err)
	}

	best, err := store.BestDistance("rush")
	if err != nil {
		t.Fatalf("BestDistance() failed: %v", err)
	}
	if best != 0 {
		t.Errorf("BestDistance() = %d after clear, expected 0", best)
	}
}
