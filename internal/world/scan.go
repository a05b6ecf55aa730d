package world

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
)

// LevelEntry is a map file found on disk.
type LevelEntry struct {
	Name string // File name
	Path string
	Size string // In tiles, e.g. "20x15"
}

// ScanLevels lists the valid map files in dir, sorted by name. Files that fail to parse
// are logged and skipped.
func ScanLevels(dir string) ([]LevelEntry, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read level directory: %w", err)
	}

	var levels []LevelEntry
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || strings.HasPrefix(name, ".") || !strings.EqualFold(filepath.Ext(name), ".json") {
			continue
		}
		path := filepath.Join(dir, name)
		data, err := LoadMap(path)
		if err != nil {
			zap.L().Debug("Skipping file", zap.String("path", path), zap.Error(err))
			continue
		}
		levels = append(levels, LevelEntry{
			Name: name,
			Path: path,
			Size: fmt.Sprintf("%dx%d", data.Width, data.Height),
		})
	}
	return levels, nil
}
