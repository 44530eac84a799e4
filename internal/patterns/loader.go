// Package patterns loads user-defined patterns from YAML files and adds
// them to the pattern registry.
package patterns

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/vovakirdan/tui-life/internal/registry"
)

// Loader handles loading pattern files from a directory.
type Loader struct {
	Root string
}

// NewLoader creates a new pattern loader.
func NewLoader(root string) *Loader {
	return &Loader{Root: root}
}

// LoadAll recursively scans and loads all pattern files.
// Invalid files are collected into the returned error; valid ones are still
// returned, sorted by name for deterministic ordering.
func (l *Loader) LoadAll() ([]registry.Pattern, error) {
	var (
		found []registry.Pattern
		errs  []error
	)

	err := filepath.WalkDir(l.Root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}

		ext := strings.ToLower(filepath.Ext(path))
		if ext != ".yaml" && ext != ".yml" {
			return nil
		}

		p, err := l.LoadFile(path)
		if err != nil {
			errs = append(errs, err)
			return nil
		}
		found = append(found, p)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking directory %s: %w", l.Root, err)
	}

	sort.Slice(found, func(i, j int) bool {
		return found[i].Name < found[j].Name
	})

	return found, errors.Join(errs...)
}

// LoadFile loads a single pattern file.
func (l *Loader) LoadFile(path string) (registry.Pattern, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return registry.Pattern{}, fmt.Errorf("reading file %s: %w", path, err)
	}

	p, err := ParseYAML(data)
	if err != nil {
		return registry.Pattern{}, fmt.Errorf("parsing file %s: %w", path, err)
	}
	return p, nil
}

// RegisterAll loads every pattern under root and registers it.
// Names that clash with already registered patterns are reported and skipped.
// Returns the number of patterns registered.
func RegisterAll(root string) (int, error) {
	if root == "" {
		return 0, nil
	}

	found, loadErr := NewLoader(root).LoadAll()
	errs := []error{loadErr}

	n := 0
	for _, p := range found {
		if err := registry.TryRegister(p); err != nil {
			errs = append(errs, err)
			continue
		}
		n++
	}
	return n, errors.Join(errs...)
}
