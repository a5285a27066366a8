package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tank-battle/internal/config"
	"github.com/vovakirdan/tank-battle/internal/platform/tui"
	"github.com/vovakirdan/tank-battle/internal/storage"
)

var (
	flagInteractive bool
	flagLimit       int
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the leaderboard",
	Long: `Display the best recorded runs.

Examples:
  tankbattle scores
  tankbattle scores --difficulty hard --limit 5
  tankbattle scores --interactive`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().BoolVarP(&flagInteractive, "interactive", "i", false, "Open the interactive scoreboard")
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of runs to show")
}

func runScores(_ *cobra.Command, _ []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening scores database: %w", err)
	}
	defer store.Close()

	if flagInteractive {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width = w
			height = h
		}
		_, err := tui.RunScoreboard(store, width, height)
		return err
	}

	filter := ""
	if flagDifficulty != "" {
		preset, ok := config.ParsePreset(flagDifficulty)
		if !ok {
			return fmt.Errorf("unknown difficulty %q", flagDifficulty)
		}
		filter = string(preset)
	}

	return printScores(os.Stdout, store, filter, flagLimit)
}

// printScores writes the leaderboard as a plain text table.
func printScores(w io.Writer, store *storage.Store, difficulty string, limit int) error {
	runs, err := store.TopRuns(difficulty, limit)
	if err != nil {
		return err
	}

	title := "High Scores"
	if difficulty != "" {
		title = fmt.Sprintf("High Scores - %s", difficulty)
	}
	fmt.Fprintln(w, title)
	fmt.Fprintln(w)

	if len(runs) == 0 {
		fmt.Fprintln(w, "No runs recorded yet.")
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Play 'tankbattle play' to set the first high score!")
		return nil
	}

	fmt.Fprintf(w, "  %-4s  %-8s  %-5s  %-5s  %-4s  %-7s  %-12s  %s\n",
		"Rank", "Score", "Level", "Kills", "Boss", "Diff", "Player", "Date")
	fmt.Fprintf(w, "  %-4s  %-8s  %-5s  %-5s  %-4s  %-7s  %-12s  %s\n",
		"----", "-----", "-----", "-----", "----", "----", "------", "----")

	for i, r := range runs {
		boss := "-"
		if r.BossDefeated {
			boss = "yes"
		}
		fmt.Fprintf(w, "  %-4d  %-8d  %-5s  %-5d  %-4s  %-7s  %-12s  %s\n",
			i+1, r.Score, r.Level, r.Kills, boss, r.Difficulty, r.Player,
			r.CreatedAt.Format("2006-01-02 15:04"))
	}

	stats, err := store.Stats()
	if err == nil && stats.Runs > 0 {
		fmt.Fprintln(w)
		fmt.Fprintf(w, "Best: %d  Runs: %d  Bosses defeated: %d\n", stats.HighScore, stats.Runs, stats.BossKills)
	}
	return nil
}
