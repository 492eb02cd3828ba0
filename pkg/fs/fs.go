// Package fs provides the file system operations psync relies on.
package fs

import (
	"os"
	"os/exec"
	"path/filepath"
)

//go:generate go run go.uber.org/mock/mockgen@v0.5.2 -source=fs.go -destination=mocks/fs.gen.go -package=mocks

// GitDirName is the name of the repository metadata entry inside a working tree.
const GitDirName = ".git"

// FS interface provides file system operations.
type FS interface {
	// Exists checks if a file or directory exists at the given path.
	Exists(path string) (bool, error)

	// IsDir checks if the path is a directory.
	IsDir(path string) (bool, error)

	// IsGitRepository checks if the path is a directory holding a .git entry
	// (directory for regular clones, file for linked worktrees).
	IsGitRepository(path string) (bool, error)

	// ReadFile reads the contents of a file.
	ReadFile(path string) ([]byte, error)

	// ReadDir reads the contents of a directory.
	ReadDir(path string) ([]os.DirEntry, error)

	// MkdirAll creates a directory and all parent directories.
	MkdirAll(path string, perm os.FileMode) error

	// WriteFileAtomic writes data to a file atomically using a temporary file and rename.
	WriteFileAtomic(filename string, data []byte, perm os.FileMode) error

	// FileLock acquires an exclusive lock tied to filename and returns an unlock function.
	FileLock(filename string) (func(), error)

	// RemoveAll removes a file or directory and all its contents.
	RemoveAll(path string) error

	// ExpandPath expands a leading ~ to the user's home directory.
	ExpandPath(path string) (string, error)

	// NormalizePath expands, absolutizes and cleans a path.
	NormalizePath(path string) (string, error)

	// Which finds the executable path for a command using the system's PATH.
	Which(command string) (string, error)
}

type realFS struct{}

// NewFS creates a new FS instance.
func NewFS() FS {
	return &realFS{}
}

func (f *realFS) Exists(path string) (bool, error) {
	_, err := os.Stat(path)
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, err
}

func (f *realFS) IsDir(path string) (bool, error) {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, err
	}
	return info.IsDir(), nil
}

func (f *realFS) IsGitRepository(path string) (bool, error) {
	isDir, err := f.IsDir(path)
	if err != nil || !isDir {
		return false, err
	}
	return f.Exists(filepath.Join(path, GitDirName))
}

func (f *realFS) ReadFile(path string) ([]byte, error) {
	return os.ReadFile(path)
}

func (f *realFS) ReadDir(path string) ([]os.DirEntry, error) {
	return os.ReadDir(path)
}

func (f *realFS) MkdirAll(path string, perm os.FileMode) error {
	return os.MkdirAll(path, perm)
}

func (f *realFS) RemoveAll(path string) error {
	return os.RemoveAll(path)
}

func (f *realFS) Which(command string) (string, error) {
	return exec.LookPath(command)
}
