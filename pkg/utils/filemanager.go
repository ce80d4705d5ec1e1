// =============================================================================
// BOM to Markdown Converter - File Manager Utility
// =============================================================================
//
// This package provides the file system helpers used by the converter:
//   - Atomic writes (temp file + rename) so a failed write never leaves a
//     truncated destination behind
//   - Small existence and metadata checks
//
// TEMP FILE NAMING:
//   .<destination name>.<uuid>.tmp, created next to the destination so the
//   final rename stays on one file system.
//
// =============================================================================

package utils

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// DefaultFileMode is used for files that do not exist yet.
const DefaultFileMode fs.FileMode = 0o644

// =============================================================================
// ATOMIC WRITES
// =============================================================================

// WriteFileAtomic writes data to path through a temporary sibling file.
//
// PARAMETERS:
//   - path: The destination file. Its parent directory must exist.
//   - data: The full file content.
//
// BEHAVIOR:
//   1. Create .<name>.<uuid>.tmp in the destination directory
//   2. Write and sync the data, then close the temp file
//   3. Rename the temp file over the destination
//
// An existing destination keeps its permission bits. On any failure the
// temp file is removed and the destination is left untouched.
func WriteFileAtomic(path string, data []byte) (err error) {
	mode := DefaultFileMode
	if info, statErr := os.Stat(path); statErr == nil {
		if info.IsDir() {
			return fmt.Errorf("destination %s is a directory", path)
		}
		mode = info.Mode().Perm()
	}

	tmpPath := TempPath(path)
	file, err := os.OpenFile(tmpPath, os.O_WRONLY|os.O_CREATE|os.O_EXCL, mode)
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}

	defer func() {
		if err != nil {
			file.Close()
			os.Remove(tmpPath)
		}
	}()

	if _, err = file.Write(data); err != nil {
		return fmt.Errorf("failed to write temp file: %w", err)
	}
	if err = file.Sync(); err != nil {
		return fmt.Errorf("failed to sync temp file: %w", err)
	}
	if err = file.Close(); err != nil {
		return fmt.Errorf("failed to close temp file: %w", err)
	}
	if err = os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("failed to replace %s: %w", path, err)
	}

	return nil
}

// TempPath returns a unique temporary path next to path.
func TempPath(path string) string {
	dir, name := filepath.Split(path)
	return filepath.Join(dir, fmt.Sprintf(".%s.%s.tmp", name, uuid.New().String()))
}

// =============================================================================
// UTILITY FUNCTIONS
// =============================================================================

// FileExists checks if a file exists.
func FileExists(path string) bool {
	_, err := os.Stat(path)
	return !errors.Is(err, fs.ErrNotExist)
}

// GetFileSize returns the size of a file in bytes.
func GetFileSize(path string) (int64, error) {
	info, err := os.Stat(path)
	if err != nil {
		return 0, err
	}
	return info.Size(), nil
}
