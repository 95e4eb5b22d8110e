// Package session records headless runs to disk so they can be compared
// across presets. A run is a directory with metadata.json next to a
// samples.csv of per-frame engine observations.
package session

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// Sample is one per-frame observation of the engine.
type Sample struct {
	TimeMs    float64 `json:"time_ms"`
	Animating int     `json:"animating"`
	Emitters  int     `json:"emitters"`
	HoldMs    float64 `json:"hold_ms"`
}

// Recording is a complete captured run.
type Recording struct {
	Scenario  string    `json:"scenario"`
	Preset    string    `json:"preset"`
	Timestamp time.Time `json:"timestamp"`
	Rows      int       `json:"rows"`
	Cols      int       `json:"cols"`
	Samples   []Sample  `json:"samples"`
}

// Metadata is what Save writes to metadata.json; samples live in the CSV.
type Metadata struct {
	ID        string    `json:"id"`
	Scenario  string    `json:"scenario"`
	Preset    string    `json:"preset"`
	Timestamp time.Time `json:"timestamp"`
	Rows      int       `json:"rows"`
	Cols      int       `json:"cols"`
	Frames    int       `json:"frames"`
}

type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

func (s *Store) Save(rec *Recording) (string, error) {
	name := rec.Scenario
	if name == "" {
		name = "run"
	}
	runID := fmt.Sprintf("%s_%d", name, time.Now().Unix())
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	meta := Metadata{
		ID:        runID,
		Scenario:  rec.Scenario,
		Preset:    rec.Preset,
		Timestamp: rec.Timestamp,
		Rows:      rec.Rows,
		Cols:      rec.Cols,
		Frames:    len(rec.Samples),
	}

	metaFile, err := os.Create(filepath.Join(runDir, "metadata.json"))
	if err != nil {
		return "", err
	}
	defer metaFile.Close()

	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return "", err
	}

	csvFile, err := os.Create(filepath.Join(runDir, "samples.csv"))
	if err != nil {
		return "", err
	}
	defer csvFile.Close()

	w := csv.NewWriter(csvFile)
	defer w.Flush()

	if err := w.Write([]string{"time_ms", "animating", "emitters", "hold_ms"}); err != nil {
		return "", err
	}
	for _, sm := range rec.Samples {
		row := []string{
			strconv.FormatFloat(sm.TimeMs, 'f', 3, 64),
			strconv.Itoa(sm.Animating),
			strconv.Itoa(sm.Emitters),
			strconv.FormatFloat(sm.HoldMs, 'f', 3, 64),
		}
		if err := w.Write(row); err != nil {
			return "", err
		}
	}

	return runID, nil
}

func (s *Store) List() ([]Metadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []Metadata{}, nil
		}
		return nil, err
	}

	runs := make([]Metadata, 0)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}

		data, err := os.ReadFile(filepath.Join(s.baseDir, entry.Name(), "metadata.json"))
		if err != nil {
			continue
		}

		var meta Metadata
		if err := json.Unmarshal(data, &meta); err != nil {
			continue
		}
		runs = append(runs, meta)
	}
	return runs, nil
}

func (s *Store) Load(runID string) (*Metadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, "metadata.json"))
	if err != nil {
		return nil, err
	}

	var meta Metadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}
	return &meta, nil
}

func (s *Store) LoadSamples(runID string) ([]Sample, error) {
	file, err := os.Open(filepath.Join(s.baseDir, runID, "samples.csv"))
	if err != nil {
		return nil, err
	}
	defer file.Close()

	r := csv.NewReader(file)
	records, err := r.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) < 2 {
		return []Sample{}, nil
	}

	samples := make([]Sample, 0, len(records)-1)
	for _, rec := range records[1:] {
		if len(rec) < 4 {
			continue
		}
		t, err := strconv.ParseFloat(rec[0], 64)
		if err != nil {
			continue
		}
		animating, err := strconv.Atoi(rec[1])
		if err != nil {
			continue
		}
		emitters, err := strconv.Atoi(rec[2])
		if err != nil {
			continue
		}
		hold, err := strconv.ParseFloat(rec[3], 64)
		if err != nil {
			continue
		}
		samples = append(samples, Sample{TimeMs: t, Animating: animating, Emitters: emitters, HoldMs: hold})
	}
	return samples, nil
}

// ExportJSON writes the whole recording, samples included, to a single
// file for downstream tooling.
func ExportJSON(path string, rec *Recording) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	enc := json.NewEncoder(file)
	enc.SetIndent("", "  ")
	return enc.Encode(rec)
}
