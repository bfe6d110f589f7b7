package output

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/modelgen-labs/modelgen-cli/internal/core/ports/driven"
)

// Ensure Writer implements the interface.
var _ driven.FileWriter = (*Writer)(nil)

// Writer is the filesystem file merge controller.
type Writer struct{}

// NewWriter creates a file writer.
func NewWriter() *Writer {
	return &Writer{}
}

// WriteGenerated writes the body to path. A missing file is created with the
// full marker layout; an existing file has only its marker region replaced,
// preserving hand-written content outside the markers byte-for-byte. An
// existing file without the expected markers fails with
// domain.ErrMarkerConflict instead of being silently overwritten.
func (w *Writer) WriteGenerated(path, schemaName, body string) error {
	existing, err := os.ReadFile(path)
	switch {
	case os.IsNotExist(err):
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return fmt.Errorf("create output directory: %w", err)
		}
		return os.WriteFile(path, []byte(ComposeNew(schemaName, body)), 0o644)

	case err != nil:
		return fmt.Errorf("read existing file: %w", err)
	}

	merged, err := Splice(existing, schemaName, body)
	if err != nil {
		return err
	}
	return os.WriteFile(path, merged, 0o644)
}

// Remove deletes a generated file. A file already gone is not an error.
func (w *Writer) Remove(path string) error {
	err := os.Remove(path)
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove file: %w", err)
	}
	return nil
}
