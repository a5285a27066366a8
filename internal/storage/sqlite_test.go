package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
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

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	id, err := store.SaveRun(Run{
		Player:       "alice",
		Score:        4200,
		Level:        "Boss",
		Kills:        60,
		BossDefeated: true,
		Ticks:        36000,
		Difficulty:   "hard",
	})
	if err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}
	if _, err := uuid.Parse(id); err != nil {
		t.Errorf("SaveRun() id %q is not a UUID: %v", id, err)
	}

	r, err := store.RunByID(id)
	if err != nil {
		t.Fatalf("RunByID() failed: %v", err)
	}
	if r == nil {
		t.Fatal("RunByID() returned nil for a saved run")
	}
	if r.Player != "alice" || r.Score != 4200 || r.Level != "Boss" || r.Kills != 60 ||
		!r.BossDefeated || r.Ticks != 36000 || r.Difficulty != "hard" {
		t.Errorf("RunByID() = %+v", r)
	}
	if r.CreatedAt.IsZero() {
		t.Error("CreatedAt should be set by the database")
	}

	missing, err := store.RunByID(uuid.NewString())
	if err != nil || missing != nil {
		t.Errorf("RunByID(unknown) = %v, %v; expected nil, nil", missing, err)
	}
}

func TestStoreTopRuns(t *testing.T) {
	store := openTestStore(t)

	for _, r := range []Run{
		{Score: 100, Level: "1", Difficulty: "normal"},
		{Score: 500, Level: "2", Difficulty: "normal"},
		{Score: 300, Level: "2", Difficulty: "easy"},
		{Score: 400, Level: "3"}, // defaults to normal
		{Score: 200, Level: "1", Difficulty: "hard"},
	} {
		if _, err := store.SaveRun(r); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	all, err := store.TopRuns("", 3)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("Expected 3 runs with limit, got %d", len(all))
	}
	if all[0].Score != 500 || all[1].Score != 400 || all[2].Score != 300 {
		t.Errorf("Runs not in expected order: %+v", all)
	}

	normal, err := store.TopRuns("normal", 10)
	if err != nil {
		t.Fatalf("TopRuns(normal) failed: %v", err)
	}
	if len(normal) != 3 {
		t.Errorf("Expected 3 normal runs, got %d", len(normal))
	}
	for _, r := range normal {
		if r.Difficulty != "normal" {
			t.Errorf("TopRuns(normal) returned %q run", r.Difficulty)
		}
	}

	def, err := store.TopRuns("", 0)
	if err != nil || len(def) != 5 {
		t.Errorf("TopRuns with default limit = %d runs, err %v", len(def), err)
	}
}

func TestStoreHighScoreAndStats(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore()
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for empty store, got %d", high)
	}

	store.SaveRun(Run{Score: 100, Level: "1", Kills: 1})
	store.SaveRun(Run{Score: 300, Level: "Boss", Kills: 60, BossDefeated: true})
	store.SaveRun(Run{Score: 200, Level: "2", Kills: 19})

	high, err = store.HighScore()
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 300 {
		t.Errorf("Expected high score of 300, got %d", high)
	}

	stats, err := store.Stats()
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if stats.Runs != 3 || stats.HighScore != 300 || stats.BossKills != 1 || stats.TotalKills != 80 {
		t.Errorf("Stats() = %+v", stats)
	}
	if stats.AvgScore != 200 {
		t.Errorf("AvgScore = %v, expected 200", stats.AvgScore)
	}
}

func TestStoreClearRuns(t *testing.T) {
	store := openTestStore(t)

	store.SaveRun(Run{Score: 100, Level: "1"})
	store.SaveRun(Run{Score: 200, Level: "1"})

	if err := store.ClearRuns(); err != nil {
		t.Fatalf("ClearRuns() failed: %v", err)
	}

	runs, _ := store.TopRuns("", 10)
	if len(runs) != 0 {
		t.Errorf("Expected 0 runs after clear, got %d", len(runs))
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

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}
