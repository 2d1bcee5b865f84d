package storage

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/san-kum/thermolab/internal/lab"
)

// Store persists study runs as flat files: one directory per run with
// metadata.json and samples.csv, kept human-inspectable.
type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

type RunMetadata struct {
	ID        string             `json:"id"`
	Study     string             `json:"study"`
	Timestamp time.Time          `json:"timestamp"`
	Rule      string             `json:"rule"`
	Points    int                `json:"points"`
	Params    map[string]float64 `json:"params"`
	Metrics   map[string]float64 `json:"metrics"`
}

func (s *Store) Save(rule string, cfg lab.Config, result *lab.Result) (string, error) {
	runID := fmt.Sprintf("%s_%d", result.Study, time.Now().Unix())
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	meta := RunMetadata{
		ID:        runID,
		Study:     result.Study,
		Timestamp: time.Now(),
		Rule:      rule,
		Points:    cfg.Points,
		Params:    cfg.Params(),
		Metrics:   result.Metrics,
	}

	metaPath := filepath.Join(runDir, "metadata.json")
	metaFile, err := os.Create(metaPath)
	if err != nil {
		return "", err
	}
	defer metaFile.Close()

	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return "", err
	}

	csvPath := filepath.Join(runDir, "samples.csv")
	csvFile, err := os.Create(csvPath)
	if err != nil {
		return "", err
	}
	defer csvFile.Close()

	w := csv.NewWriter(csvFile)
	defer w.Flush()

	if len(result.X) == 0 {
		return runID, nil
	}

	header := []string{result.XLabel}
	for _, series := range result.Series {
		header = append(header, series.Label)
	}
	if err := w.Write(header); err != nil {
		return "", err
	}

	for i := range result.X {
		row := []string{strconv.FormatFloat(result.X[i], 'g', 10, 64)}
		for _, series := range result.Series {
			val := 0.0
			if i < len(series.Y) {
				val = series.Y[i]
			}
			row = append(row, strconv.FormatFloat(val, 'g', 10, 64))
		}
		if err := w.Write(row); err != nil {
			return "", err
		}
	}

	return runID, nil
}

func (s *Store) List() ([]RunMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []RunMetadata{}, nil
		}
		return nil, err
	}

	runs := make([]RunMetadata, 0)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}

		metaPath := filepath.Join(s.baseDir, entry.Name(), "metadata.json")
		data, err := os.ReadFile(metaPath)
		if err != nil {
			continue
		}

		var meta RunMetadata
		if err := json.Unmarshal(data, &meta); err != nil {
			continue
		}

		runs = append(runs, meta)
	}

	return runs, nil
}

func (s *Store) Load(runID string) (*RunMetadata, error) {
	metaPath := filepath.Join(s.baseDir, runID, "metadata.json")
	data, err := os.ReadFile(metaPath)
	if err != nil {
		return nil, err
	}

	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}

	return &meta, nil
}

// LoadSamples reads samples.csv back into a grid and labeled series.
func (s *Store) LoadSamples(runID string) (xLabel string, xs []float64, series []lab.Series, err error) {
	csvPath := filepath.Join(s.baseDir, runID, "samples.csv")
	file, err := os.Open(csvPath)
	if err != nil {
		return "", nil, nil, err
	}
	defer file.Close()

	r := csv.NewReader(file)
	r.FieldsPerRecord = -1

	records, err := r.ReadAll()
	if err != nil {
		return "", nil, nil, err
	}

	if len(records) < 2 {
		return "", []float64{}, []lab.Series{}, nil
	}

	header := records[0]
	xLabel = header[0]
	series = make([]lab.Series, len(header)-1)
	for i := 1; i < len(header); i++ {
		series[i-1].Label = header[i]
	}

	for i := 1; i < len(records); i++ {
		record := records[i]
		if len(record) == 0 {
			continue
		}

		x, err := strconv.ParseFloat(record[0], 64)
		if err != nil {
			continue
		}
		xs = append(xs, x)

		for j := 1; j < len(record) && j-1 < len(series); j++ {
			val, err := strconv.ParseFloat(record[j], 64)
			if err != nil {
				val = 0
			}
			series[j-1].Y = append(series[j-1].Y, val)
		}
	}

	return xLabel, xs, series, nil
}
