package session

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func sampleRecording() *Recording {
	return &Recording{
		Scenario:  "sweep",
		Preset:    "default",
		Timestamp: time.Now(),
		Rows:      9,
		Cols:      9,
		Samples: []Sample{
			{TimeMs: 16, Animating: 0, Emitters: 0, HoldMs: 600},
			{TimeMs: 32, Animating: 3, Emitters: 1, HoldMs: 600},
			{TimeMs: 48, Animating: 7, Emitters: 2, HoldMs: 640},
		},
	}
}

func TestSaveAndLoad(t *testing.T) {
	store := New(filepath.Join(t.TempDir(), "runs"))
	if err := store.Init(); err != nil {
		t.Fatal(err)
	}

	runID, err := store.Save(sampleRecording())
	if err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	meta, err := store.Load(runID)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if meta.Scenario != "sweep" {
		t.Errorf("Scenario = %q, want sweep", meta.Scenario)
	}
	if meta.Frames != 3 {
		t.Errorf("Frames = %d, want 3", meta.Frames)
	}

	samples, err := store.LoadSamples(runID)
	if err != nil {
		t.Fatalf("LoadSamples() error = %v", err)
	}
	if len(samples) != 3 {
		t.Fatalf("got %d samples, want 3", len(samples))
	}
	if samples[2].Animating != 7 {
		t.Errorf("samples[2].Animating = %d, want 7", samples[2].Animating)
	}
	if samples[2].HoldMs != 640 {
		t.Errorf("samples[2].HoldMs = %v, want 640", samples[2].HoldMs)
	}
}

func TestList(t *testing.T) {
	store := New(filepath.Join(t.TempDir(), "runs"))
	if err := store.Init(); err != nil {
		t.Fatal(err)
	}

	runs, err := store.List()
	if err != nil {
		t.Fatal(err)
	}
	if len(runs) != 0 {
		t.Errorf("empty store listed %d runs", len(runs))
	}

	if _, err := store.Save(sampleRecording()); err != nil {
		t.Fatal(err)
	}

	runs, err = store.List()
	if err != nil {
		t.Fatal(err)
	}
	if len(runs) != 1 {
		t.Fatalf("got %d runs, want 1", len(runs))
	}
	if runs[0].Preset != "default" {
		t.Errorf("Preset = %q, want default", runs[0].Preset)
	}
}

func TestListMissingDir(t *testing.T) {
	store := New(filepath.Join(t.TempDir(), "never-created"))
	runs, err := store.List()
	if err != nil {
		t.Fatalf("List() on missing dir error = %v", err)
	}
	if len(runs) != 0 {
		t.Errorf("got %d runs, want 0", len(runs))
	}
}

func TestExportJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.json")
	if err := ExportJSON(path, sampleRecording()); err != nil {
		t.Fatalf("ExportJSON() error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}

	var rec Recording
	if err := json.Unmarshal(data, &rec); err != nil {
		t.Fatalf("export is not valid JSON: %v", err)
	}
	if len(rec.Samples) != 3 {
		t.Errorf("round-tripped %d samples, want 3", len(rec.Samples))
	}
}
