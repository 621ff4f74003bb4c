package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/ajkekeli/Pomodoro-App/internal/core/stats"
)

const statsFileName = "statistics.json"

// StatsFile persists statistics as a single JSON document, rewritten in
// full after every completed session.
type StatsFile struct {
	path string
}

// NewStatsFile resolves the statistics path under the user config dir.
func NewStatsFile(appName string) (*StatsFile, error) {
	path, err := resolveConfigPath(appName, statsFileName)
	if err != nil {
		return nil, err
	}
	return &StatsFile{path: path}, nil
}

// StatsFileAt uses an explicit path.
func StatsFileAt(path string) *StatsFile {
	return &StatsFile{path: path}
}

// Load reads statistics from disk and applies the daily rollover.
// A missing file yields fresh zeroed statistics with no error. A corrupt
// file also yields fresh statistics, together with the parse error so the
// caller can log it; the app keeps running either way.
func (file *StatsFile) Load(now time.Time) (stats.Statistics, error) {
	fresh := stats.New(now)

	rawData, err := os.ReadFile(file.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fresh, nil
		}
		return fresh, fmt.Errorf("read statistics file: %w", err)
	}

	var statistics stats.Statistics
	if err := json.Unmarshal(rawData, &statistics); err != nil {
		return fresh, fmt.Errorf("parse statistics json: %w", err)
	}

	statistics.Rollover(now)
	return statistics, nil
}

// Save rewrites the statistics document.
func (file *StatsFile) Save(statistics stats.Statistics) error {
	if err := os.MkdirAll(filepath.Dir(file.path), 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}

	serialized, err := json.MarshalIndent(statistics, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal statistics json: %w", err)
	}

	if err := os.WriteFile(file.path, serialized, 0o644); err != nil {
		return fmt.Errorf("write statistics file: %w", err)
	}

	return nil
}
