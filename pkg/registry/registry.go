// Package registry persists project records in a JSON file.
package registry

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/lerenn/project-sync/pkg/fs"
	"github.com/samber/lo"
)

//go:generate go run go.uber.org/mock/mockgen@v0.5.2 -source=registry.go -destination=mocks/registry.gen.go -package=mocks

// Registry interface provides project record management.
// Paths are expected to be normalized (absolute and clean).
type Registry interface {
	// Init creates an empty registry file when none exists.
	Init() error
	// List returns projects sorted by name, soft-deleted ones only when includeDeleted is set.
	List(includeDeleted bool) ([]Project, error)
	// Get returns the record stored for path, preferring the active one.
	Get(path string) (*Project, error)
	// Find returns the active record whose name (case-insensitive) or path matches ref.
	Find(ref string) (*Project, error)
	// Add stores a new active record. A soft-deleted record at the same path is replaced.
	Add(project Project) error
	// Update applies fn to the active record at path and stores the result.
	Update(path string, fn func(*Project) error) (*Project, error)
	// MarkDeleted soft-deletes the active record at path.
	MarkDeleted(path string) error
	// Restore reactivates the soft-deleted record at path.
	Restore(path string) error
	// Purge removes every record stored for path.
	Purge(path string) error
}

type realRegistry struct {
	fs   fs.FS
	path string
	// mu serializes goroutines of this process, the file lock other processes.
	mu sync.Mutex
}

// NewRegistry creates a Registry stored at path.
func NewRegistry(fsys fs.FS, path string) Registry {
	return &realRegistry{fs: fsys, path: path}
}

func (r *realRegistry) Init() error {
	return r.mutate(func(_ *[]Project) error { return nil })
}

func (r *realRegistry) List(includeDeleted bool) ([]Project, error) {
	projects, err := r.read()
	if err != nil {
		return nil, err
	}

	if !includeDeleted {
		projects = lo.Filter(projects, func(p Project, _ int) bool { return !p.Deleted })
	}
	sort.SliceStable(projects, func(i, j int) bool {
		return strings.ToLower(projects[i].Name) < strings.ToLower(projects[j].Name)
	})
	return projects, nil
}

func (r *realRegistry) Get(path string) (*Project, error) {
	projects, err := r.read()
	if err != nil {
		return nil, err
	}

	if p, ok := findActive(projects, path); ok {
		return &p, nil
	}
	if p, ok := lo.Find(projects, func(p Project) bool { return p.Deleted && fs.SamePath(p.LocalPath, path) }); ok {
		return &p, nil
	}
	return nil, fmt.Errorf("%w: %s", ErrProjectNotFound, path)
}

func (r *realRegistry) Find(ref string) (*Project, error) {
	projects, err := r.read()
	if err != nil {
		return nil, err
	}

	active := lo.Filter(projects, func(p Project, _ int) bool { return !p.Deleted })
	if p, ok := lo.Find(active, func(p Project) bool { return strings.EqualFold(p.Name, ref) }); ok {
		return &p, nil
	}
	if filepath.IsAbs(ref) {
		if p, ok := findActive(active, filepath.Clean(ref)); ok {
			return &p, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrProjectNotFound, ref)
}

func (r *realRegistry) Add(project Project) error {
	if err := project.validate(); err != nil {
		return err
	}
	project.LocalPath = filepath.Clean(project.LocalPath)
	project.Deleted = false
	if project.Status == "" {
		project.Status = StatusUnknown
	}

	return r.mutate(func(projects *[]Project) error {
		if err := checkConflicts(*projects, project, -1); err != nil {
			return err
		}
		*projects = lo.Reject(*projects, func(p Project, _ int) bool {
			return p.Deleted && fs.SamePath(p.LocalPath, project.LocalPath)
		})
		*projects = append(*projects, project)
		return nil
	})
}

func (r *realRegistry) Update(path string, fn func(*Project) error) (*Project, error) {
	var updated Project
	err := r.mutate(func(projects *[]Project) error {
		idx := indexActive(*projects, path)
		if idx < 0 {
			return fmt.Errorf("%w: %s", ErrProjectNotFound, path)
		}

		candidate := (*projects)[idx]
		if err := fn(&candidate); err != nil {
			return err
		}
		candidate.LocalPath = filepath.Clean(candidate.LocalPath)
		if err := candidate.validate(); err != nil {
			return err
		}
		if err := checkConflicts(*projects, candidate, idx); err != nil {
			return err
		}

		(*projects)[idx] = candidate
		updated = candidate
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

func (r *realRegistry) MarkDeleted(path string) error {
	return r.mutate(func(projects *[]Project) error {
		idx := indexActive(*projects, path)
		if idx < 0 {
			return fmt.Errorf("%w: %s", ErrProjectNotFound, path)
		}
		(*projects)[idx].Deleted = true
		return nil
	})
}

func (r *realRegistry) Restore(path string) error {
	return r.mutate(func(projects *[]Project) error {
		_, idx, ok := lo.FindIndexOf(*projects, func(p Project) bool {
			return p.Deleted && fs.SamePath(p.LocalPath, path)
		})
		if !ok {
			return fmt.Errorf("%w: no deleted project at %s", ErrProjectNotFound, path)
		}

		restored := (*projects)[idx]
		restored.Deleted = false
		if err := checkConflicts(*projects, restored, idx); err != nil {
			return err
		}
		(*projects)[idx] = restored
		return nil
	})
}

func (r *realRegistry) Purge(path string) error {
	return r.mutate(func(projects *[]Project) error {
		kept := lo.Reject(*projects, func(p Project, _ int) bool { return fs.SamePath(p.LocalPath, path) })
		if len(kept) == len(*projects) {
			return fmt.Errorf("%w: %s", ErrProjectNotFound, path)
		}
		*projects = kept
		return nil
	})
}

// mutate runs a read-modify-write cycle under both locks.
func (r *realRegistry) mutate(fn func(*[]Project) error) error {
	if r.path == "" {
		return ErrRegistryPathEmpty
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	unlock, err := r.fs.FileLock(r.path)
	if err != nil {
		return fmt.Errorf("failed to acquire registry lock: %w", err)
	}
	defer unlock()

	projects, err := r.load()
	if err != nil {
		return err
	}
	if err := fn(&projects); err != nil {
		return err
	}
	return r.save(projects)
}

func (r *realRegistry) read() ([]Project, error) {
	if r.path == "" {
		return nil, ErrRegistryPathEmpty
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	return r.load()
}

// load reads the registry file. A missing file is an empty registry.
func (r *realRegistry) load() ([]Project, error) {
	exists, err := r.fs.Exists(r.path)
	if err != nil {
		return nil, fmt.Errorf("failed to check registry file existence: %w", err)
	}
	if !exists {
		return []Project{}, nil
	}

	data, err := r.fs.ReadFile(r.path)
	if err != nil {
		return nil, fmt.Errorf("failed to read registry file: %w", err)
	}
	if len(strings.TrimSpace(string(data))) == 0 {
		return []Project{}, nil
	}

	var projects []Project
	if err := json.Unmarshal(data, &projects); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrRegistryParse, r.path, err)
	}
	return projects, nil
}

func (r *realRegistry) save(projects []Project) error {
	if projects == nil {
		projects = []Project{}
	}
	data, err := json.MarshalIndent(projects, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal registry: %w", err)
	}
	if err := r.fs.WriteFileAtomic(r.path, append(data, '\n'), 0600); err != nil {
		return fmt.Errorf("failed to write registry file: %w", err)
	}
	return nil
}

func indexActive(projects []Project, path string) int {
	_, idx, ok := lo.FindIndexOf(projects, func(p Project) bool {
		return !p.Deleted && fs.SamePath(p.LocalPath, path)
	})
	if !ok {
		return -1
	}
	return idx
}

func findActive(projects []Project, path string) (Project, bool) {
	return lo.Find(projects, func(p Project) bool { return !p.Deleted && fs.SamePath(p.LocalPath, path) })
}

// checkConflicts enforces unique names and paths among active records, skipping index self.
func checkConflicts(projects []Project, candidate Project, self int) error {
	if candidate.Deleted {
		return nil
	}
	for i, p := range projects {
		if i == self || p.Deleted {
			continue
		}
		if fs.SamePath(p.LocalPath, candidate.LocalPath) {
			return fmt.Errorf("%w: %s is already registered as %q", ErrProjectPathExists, candidate.LocalPath, p.Name)
		}
		if strings.EqualFold(p.Name, candidate.Name) {
			return fmt.Errorf("%w: %q", ErrProjectNameExists, candidate.Name)
		}
	}
	return nil
}
