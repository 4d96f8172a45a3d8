package metrics

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"
	"time"

	"jump61/game"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func readCSV(t *testing.T, path string) [][]string {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	return rows
}

func TestWriter(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWriter(dir, "matchup")
	require.NoError(t, err)
	require.DirExists(t, w.Dir())
	require.Equal(t, filepath.Join(dir, "matchup"), filepath.Dir(w.Dir()))

	t.Run("writing agent configs", func(t *testing.T) {
		configs := []AgentConfig{
			{ID: 1, Kind: "ai", Depth: 4, Table: true},
			{ID: 2, Kind: "random", Seed: 61},
		}

		require.NoError(t, w.WriteAgentConfigs(configs))

		rows := readCSV(t, filepath.Join(w.Dir(), "agent_configs.csv"))
		require.Equal(t, [][]string{
			{"id", "kind", "depth", "seed", "table"},
			{"1", "ai", "4", "0", "true"},
			{"2", "random", "0", "61", "false"},
		}, rows)
	})

	t.Run("writing game records", func(t *testing.T) {
		id := uuid.New()
		start := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
		records := []GameRecord{{
			ID:   1,
			Red:  2,
			Blue: 1,
			GameMetric: GameMetric{
				ID:             id,
				Size:           6,
				StartingPlayer: game.Red,
				Winner:         game.Blue,
				StartTime:      start,
				EndTime:        start.Add(time.Second),
				Duration:       time.Second,
				TotalMoves:     40,
			},
		}}

		require.NoError(t, w.WriteGameRecords(records))

		rows := readCSV(t, filepath.Join(w.Dir(), "game_records.csv"))
		require.Len(t, rows, 2)
		require.Equal(t, []string{"1", id.String(), "2", "1", "6", "red", "blue", "40",
			"2024-01-02T03:04:05Z", "2024-01-02T03:04:06Z", "1s"}, rows[1])
	})

	t.Run("writing move records", func(t *testing.T) {
		records := []MoveRecord{{
			Game: 1,
			MoveMetric: MoveMetric{
				Step:         3,
				Player:       game.Red,
				Square:       8,
				SearchMetric: SearchMetric{Depth: 2, Duration: time.Millisecond, Nodes: 10, Leaves: 7, Cutoffs: 1, TableHits: 2, Score: 5},
			},
		}}

		require.NoError(t, w.WriteMoveRecords(records))

		rows := readCSV(t, filepath.Join(w.Dir(), "move_records.csv"))
		require.Equal(t, []string{"1", "3", "red", "8", "2", "1ms", "10", "7", "1", "2", "5"}, rows[1])
	})
}
