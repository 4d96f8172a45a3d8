package metrics

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

type AgentConfig struct {
	ID    int
	Kind  string // "ai" or "random"
	Depth int    // Search depth of an "ai" agent
	Seed  uint64 // Seed of a "random" agent
	Table bool   // Whether an "ai" agent uses a transposition table
}

type GameRecord struct {
	ID   int
	Red  int // AgentConfig.ID
	Blue int // AgentConfig.ID
	GameMetric
}

type MoveRecord struct {
	Game int // GameRecord.ID
	MoveMetric
}

type Writer struct {
	baseDir string
}

// NewWriter creates a subfolder of dir named by the current timestamp to hold
// the files of one experiment.
func NewWriter(dir, name string) (*Writer, error) {
	timestamp := time.Now().UTC().Format("20060102T150405Z")
	baseDir := filepath.Join(dir, name, timestamp)
	err := os.MkdirAll(baseDir, 0755)
	if err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	return &Writer{
		baseDir: baseDir,
	}, nil
}

func (w *Writer) Dir() string {
	return w.baseDir
}

func (w *Writer) WriteAgentConfigs(configs []AgentConfig) error {
	header := []string{"id", "kind", "depth", "seed", "table"}
	return w.write("agent_configs.csv", header, len(configs), func(i int) []string {
		config := configs[i]
		return []string{
			strconv.Itoa(config.ID),
			config.Kind,
			strconv.Itoa(config.Depth),
			strconv.FormatUint(config.Seed, 10),
			strconv.FormatBool(config.Table),
		}
	})
}

func (w *Writer) WriteGameRecords(records []GameRecord) error {
	header := []string{"id", "uuid", "red", "blue", "size", "starting_player", "winner", "total_moves", "start_time", "end_time", "duration"}
	return w.write("game_records.csv", header, len(records), func(i int) []string {
		record := records[i]
		return []string{
			strconv.Itoa(record.ID),
			record.GameMetric.ID.String(),
			strconv.Itoa(record.Red),
			strconv.Itoa(record.Blue),
			strconv.Itoa(record.Size),
			record.StartingPlayer.String(),
			record.Winner.String(),
			strconv.Itoa(record.TotalMoves),
			record.StartTime.Format(time.RFC3339),
			record.EndTime.Format(time.RFC3339),
			record.GameMetric.Duration.String(),
		}
	})
}

func (w *Writer) WriteMoveRecords(records []MoveRecord) error {
	header := []string{"game", "step", "player", "square", "depth", "duration", "nodes", "leaves", "cutoffs", "table_hits", "score"}
	return w.write("move_records.csv", header, len(records), func(i int) []string {
		record := records[i]
		return []string{
			strconv.Itoa(record.Game),
			strconv.Itoa(record.Step),
			record.Player.String(),
			strconv.Itoa(record.Square),
			strconv.Itoa(record.Depth),
			record.SearchMetric.Duration.String(),
			strconv.Itoa(record.Nodes),
			strconv.Itoa(record.Leaves),
			strconv.Itoa(record.Cutoffs),
			strconv.Itoa(record.TableHits),
			strconv.Itoa(record.Score),
		}
	})
}

func (w *Writer) write(name string, header []string, rows int, row func(i int) []string) error {
	path := filepath.Join(w.baseDir, name)
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", name, err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)

	err = writer.Write(header)
	if err != nil {
		return fmt.Errorf("failed to write %s header: %w", name, err)
	}
	for i := 0; i < rows; i++ {
		err = writer.Write(row(i))
		if err != nil {
			return fmt.Errorf("failed to write %s row %d: %w", name, i, err)
		}
	}

	writer.Flush()
	return writer.Error()
}
