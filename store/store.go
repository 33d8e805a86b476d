// Package store persists recordings as JSON files.
package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/Dev4057/NoteFlow/model"
	"github.com/google/uuid"
)

// Save writes the recording to path, creating parent directories as needed.
// A missing id and date are assigned in place so every saved file is complete.
func Save(path string, rec *model.Recording) error {
	if rec.Id == "" {
		rec.Id = uuid.New().String()
	}
	if rec.RecordingDate == "" {
		rec.RecordingDate = time.Now().Format(time.RFC3339)
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0777); err != nil {
			return fmt.Errorf("could not create directory for %v: %w", path, err)
		}
	}

	data, err := json.MarshalIndent(rec, "", "  ")
	if err != nil {
		return fmt.Errorf("could not encode recording: %w", err)
	}
	if err := os.WriteFile(path, data, 0666); err != nil {
		return fmt.Errorf("could not write recording to %v: %w", path, err)
	}
	return nil
}

// Load reads a recording previously written by Save.
func Load(path string) (model.Recording, error) {
	var rec model.Recording
	data, err := os.ReadFile(path)
	if err != nil {
		return rec, fmt.Errorf("could not read recording from %v: %w", path, err)
	}
	if err := json.Unmarshal(data, &rec); err != nil {
		return rec, fmt.Errorf("invalid recording file %v: %w", path, err)
	}
	return rec, nil
}
