package batch

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
)

// Manifest describes one batch run.
type Manifest struct {
	RunID     string    `json:"run_id"`
	Created   time.Time `json:"created"`
	InputDir  string    `json:"input_dir"`
	OutputDir string    `json:"output_dir"`
	Format    string    `json:"format"`
	Threshold uint8     `json:"threshold"`
	Invert    bool      `json:"invert"`
	Images    []Entry   `json:"images"`
}

// Entry represents one image in the manifest. Paths are relative to the
// output directory where possible.
type Entry struct {
	Result
	Image string `json:"image,omitempty"`
}

// NewRunID returns a fresh identifier for a batch run.
func NewRunID() string {
	return uuid.NewString()
}

// WriteManifest writes the run manifest as indented JSON to path.
func WriteManifest(path, runID string, cfg Config, results []Result) error {
	m := Manifest{
		RunID:     runID,
		Created:   time.Now().UTC(),
		InputDir:  cfg.InputDir,
		OutputDir: cfg.OutputDir,
		Format:    cfg.Format,
		Threshold: cfg.Threshold,
		Invert:    cfg.Invert,
		Images:    make([]Entry, len(results)),
	}
	for i, r := range results {
		e := Entry{Result: r}
		if r.Output != "" {
			if rel, err := filepath.Rel(cfg.OutputDir, r.Output); err == nil {
				e.Image = filepath.ToSlash(rel)
			}
		}
		m.Images[i] = e
	}

	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return fmt.Errorf("batch: marshal manifest: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("batch: write manifest %s: %w", path, err)
	}
	return nil
}

// ReadManifest loads a manifest written by WriteManifest.
func ReadManifest(path string) (Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Manifest{}, fmt.Errorf("batch: read manifest %s: %w", path, err)
	}
	var m Manifest
	if err := json.Unmarshal(data, &m); err != nil {
		return Manifest{}, fmt.Errorf("batch: parse manifest %s: %w", path, err)
	}
	return m, nil
}
