package stl

import (
	"bytes"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/Faultbox/primforge/internal/logger"
)

// WriteFile exports the solids to path, as binary STL if binaryFormat is set.
func WriteFile[S Solid](path, name string, solids []S, binaryFormat bool) error {
	var buf bytes.Buffer
	var err error
	if binaryFormat {
		err = WriteBinary(&buf, name, solids)
	} else {
		err = WriteASCII(&buf, name, solids)
	}
	if err != nil {
		return err
	}

	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("exporting stl %s: %w", path, err)
	}

	logger.Info("stl exported",
		zap.String("path", path),
		zap.Int("facets", FacetCount(solids)),
		zap.Bool("binary", binaryFormat))
	return nil
}
