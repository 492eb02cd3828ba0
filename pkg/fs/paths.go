package fs

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
)

// ExpandPath expands ~ to user's home directory.
func (f *realFS) ExpandPath(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") && !strings.HasPrefix(path, `~\`) {
		return path, nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("%w: failed to determine home directory: %w", ErrPathResolution, err)
	}

	return filepath.Join(homeDir, path[1:]), nil
}

// NormalizePath returns the absolute, cleaned form of path.
func (f *realFS) NormalizePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return "", fmt.Errorf("%w: empty path", ErrPathResolution)
	}

	expanded, err := f.ExpandPath(path)
	if err != nil {
		return "", err
	}

	abs, err := filepath.Abs(expanded)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrPathResolution, err)
	}
	return filepath.Clean(abs), nil
}

// PathKey returns the comparison key of a normalized path.
// Paths compare case-insensitively on Windows and macOS default volumes.
func PathKey(path string) string {
	cleaned := filepath.Clean(path)
	if runtime.GOOS == "windows" || runtime.GOOS == "darwin" {
		return strings.ToLower(cleaned)
	}
	return cleaned
}

// SamePath reports whether two normalized paths designate the same location.
func SamePath(a, b string) bool {
	return PathKey(a) == PathKey(b)
}
