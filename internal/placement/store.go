package placement

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
)

// NoMonitor is the sentinel monitor index meaning "unknown".
const NoMonitor = -1

// PlacementConfig is the persisted placement preference.
type PlacementConfig struct {
	MonitorIndex int  `json:"monitorIndex"`
	Fullscreen   bool `json:"fullscreen"`
}

// DefaultPlacement returns the record used for fields missing from the file.
func DefaultPlacement() PlacementConfig {
	return PlacementConfig{MonitorIndex: NoMonitor, Fullscreen: false}
}

// Store reads and writes one PlacementConfig at a fixed path.
type Store struct {
	path   string
	logger *slog.Logger
}

// NewStore returns a store for path. A nil logger discards log output.
func NewStore(path string, logger *slog.Logger) *Store {
	return &Store{path: path, logger: orDiscard(logger)}
}

// Path returns the file the store reads and writes.
func (s *Store) Path() string {
	return s.path
}

// Load returns the saved record. The second result is false when the file is
// missing, unreadable, or does not hold a JSON object of the expected shape.
func (s *Store) Load() (PlacementConfig, bool) {
	info, err := os.Stat(s.path)
	if err != nil {
		if !os.IsNotExist(err) {
			s.logger.Debug("placement file unavailable", "path", s.path, "error", err)
		}
		return PlacementConfig{}, false
	}
	if !info.Mode().IsRegular() {
		s.logger.Debug("placement path is not a regular file", "path", s.path)
		return PlacementConfig{}, false
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		s.logger.Debug("failed to read placement file", "path", s.path, "error", err)
		return PlacementConfig{}, false
	}

	cfg, err := decodePlacement(data)
	if err != nil {
		s.logger.Debug("ignoring placement file", "path", s.path, "error", err)
		return PlacementConfig{}, false
	}
	return cfg, true
}

// Save overwrites the file with cfg as indented JSON.
func (s *Store) Save(cfg PlacementConfig) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return fmt.Errorf("failed to create placement directory: %w", err)
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode placement: %w", err)
	}
	if err := os.WriteFile(s.path, append(data, '\n'), 0644); err != nil {
		return fmt.Errorf("failed to write placement %s: %w", s.path, err)
	}
	return nil
}

func decodePlacement(data []byte) (PlacementConfig, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return PlacementConfig{}, fmt.Errorf("not a JSON object")
	}

	cfg := DefaultPlacement()
	if err := json.Unmarshal(trimmed, &cfg); err != nil {
		return PlacementConfig{}, fmt.Errorf("failed to parse placement: %w", err)
	}
	return cfg, nil
}
