package project

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/Faultbox/primforge/internal/editor/scene"
	"github.com/Faultbox/primforge/internal/logger"
)

// LoadFile reads a project file into s, choosing the format by extension.
func LoadFile(path string, s *scene.Scene) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("opening project %s: %w", path, err)
	}
	defer f.Close()

	if err := Load(f, FormatForPath(path), s); err != nil {
		logger.Warn("project rejected", zap.String("path", path), zap.Error(err))
		return fmt.Errorf("loading project %s: %w", path, err)
	}

	logger.Info("project loaded", zap.String("path", path), zap.Int("objects", s.Len()))
	return nil
}

// SaveFile writes s to path, choosing the format by extension.
func SaveFile(path string, s *scene.Scene) error {
	var buf bytes.Buffer
	if err := Encode(&buf, FormatForPath(path), s); err != nil {
		return err
	}

	// Create parent directory if needed
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("saving project %s: %w", path, err)
	}

	logger.Info("project saved", zap.String("path", path), zap.Int("objects", s.Len()))
	return nil
}
