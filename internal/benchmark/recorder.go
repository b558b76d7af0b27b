package benchmark

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/moby/sys/atomicwriter"
)

// DefaultPrecision is the number of decimals written per field. Six decimals
// of a millisecond is nanosecond resolution.
const DefaultPrecision = 6

// CSVRecorder writes one "<mean_ms>,<stddev_ms>" line per row with no header.
type CSVRecorder struct {
	Precision int
}

// NewCSVRecorder returns a recorder using DefaultPrecision.
func NewCSVRecorder() *CSVRecorder {
	return &CSVRecorder{Precision: DefaultPrecision}
}

// Encode renders the table in the result file format.
func (r *CSVRecorder) Encode(table *Table) []byte {
	var buf []byte
	for _, row := range table.Rows {
		buf = strconv.AppendFloat(buf, row.MeanMs, 'f', r.Precision, 64)
		buf = append(buf, ',')
		buf = strconv.AppendFloat(buf, row.StdDevMs, 'f', r.Precision, 64)
		buf = append(buf, '\n')
	}
	return buf
}

// Persist replaces the file at path with the encoded table. The write goes
// through a temporary file, so a failure leaves any previous file intact.
func (r *CSVRecorder) Persist(path string, table *Table) error {
	if table == nil {
		return &PersistenceError{Path: path, Err: fmt.Errorf("no table")}
	}
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return &PersistenceError{Path: path, Err: err}
		}
	}
	if err := atomicwriter.WriteFile(path, r.Encode(table), 0644); err != nil {
		return &PersistenceError{Path: path, Err: err}
	}
	return nil
}

// ReadTable parses a result file back into statistics, one per line.
func ReadTable(rd io.Reader) ([]Statistic, error) {
	var stats []Statistic
	scanner := bufio.NewScanner(rd)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}
		fields := strings.Split(text, ",")
		if len(fields) != 2 {
			return nil, fmt.Errorf("line %d: expected 2 fields, got %d", line, len(fields))
		}
		mean, err := strconv.ParseFloat(strings.TrimSpace(fields[0]), 64)
		if err != nil {
			return nil, fmt.Errorf("line %d: invalid mean: %w", line, err)
		}
		std, err := strconv.ParseFloat(strings.TrimSpace(fields[1]), 64)
		if err != nil {
			return nil, fmt.Errorf("line %d: invalid stddev: %w", line, err)
		}
		stats = append(stats, Statistic{MeanMs: mean, StdDevMs: std})
	}
	return stats, scanner.Err()
}

// ReadTableFile is ReadTable on the file at path.
func ReadTableFile(path string) ([]Statistic, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ReadTable(f)
}
