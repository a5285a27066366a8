package main

import (
	"bytes"
	"io"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tank-battle/internal/config"
	"github.com/vovakirdan/tank-battle/internal/storage"
)

func TestSimulateIsDeterministic(t *testing.T) {
	base := config.DefaultTanksConfig()
	logger := log.New(io.Discard)

	a := simulate(base, config.DifficultyNormal, 99, 3000, logger)
	b := simulate(base, config.DifficultyNormal, 99, 3000, logger)
	if a.Hash != b.Hash || a.Snapshot != b.Snapshot {
		t.Errorf("same seed produced different games: %+v vs %+v", a.Snapshot, b.Snapshot)
	}
	if a.Snapshot.Tick == 0 || a.Snapshot.Tick > 3000 {
		t.Errorf("Tick = %d, expected within (0, 3000]", a.Snapshot.Tick)
	}
	if a.Result.Difficulty != config.DifficultyNormal {
		t.Errorf("Difficulty = %q", a.Result.Difficulty)
	}
}

func TestPrintSimulation(t *testing.T) {
	sim := simulate(config.DefaultTanksConfig(), config.DifficultyEasy, 5, 600, log.New(io.Discard))

	var buf bytes.Buffer
	printSimulation(&buf, sim, 5)

	out := buf.String()
	for _, want := range []string{"Seed:        5", "Difficulty:  easy", "Outcome:", "Hash:"} {
		if !strings.Contains(out, want) {
			t.Errorf("summary missing %q:\n%s", want, out)
		}
	}
}

func TestPrintScores(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatal(err)
	}
	defer store.Close()

	var buf bytes.Buffer
	if err := printScores(&buf, store, "", 10); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "No runs recorded yet.") {
		t.Errorf("empty leaderboard output:\n%s", buf.String())
	}

	if _, err := store.SaveRun(storage.Run{Player: "carol", Score: 2500, Level: "Boss", BossDefeated: true, Difficulty: "hard"}); err != nil {
		t.Fatal(err)
	}
	buf.Reset()
	if err := printScores(&buf, store, "hard", 10); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	if !strings.Contains(out, "carol") || !strings.Contains(out, "2500") || !strings.Contains(out, "Bosses defeated: 1") {
		t.Errorf("leaderboard output:\n%s", out)
	}
}
