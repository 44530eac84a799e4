// Package registry holds the pattern table: named sets of cell offsets that
// can be stamped onto a board. Built-in patterns register themselves in
// init() functions; user patterns are registered once at startup. After
// startup the table is only read.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/tui-life/internal/core"
)

// Pattern is a named set of offsets relative to a stamp anchor.
type Pattern struct {
	// Name is the lookup key used by the CLI and the presenter (e.g., "glider").
	Name string

	// Title is a human-readable label for display (e.g., "Glider").
	Title string

	// Points are offsets from the anchor, in declaration order.
	// Duplicates are allowed and harmless when stamping.
	Points []core.Point
}

// Bounds returns the bounding box of the pattern's offsets.
func (p Pattern) Bounds() core.Rect {
	return core.Bounds(p.Points)
}

func (p Pattern) clone() Pattern {
	pts := make([]core.Point, len(p.Points))
	copy(pts, p.Points)
	p.Points = pts
	return p
}

var (
	patterns = make(map[string]Pattern)
	mu       sync.RWMutex
)

// Register adds a pattern to the table.
// Panics if the name is empty or already registered.
func Register(p Pattern) {
	if err := TryRegister(p); err != nil {
		panic(err.Error())
	}
}

// TryRegister adds a pattern unless the name is taken.
// Returns an error instead of panicking, for patterns loaded from files.
func TryRegister(p Pattern) error {
	if p.Name == "" {
		return fmt.Errorf("registry: pattern name must not be empty")
	}
	if p.Title == "" {
		p.Title = p.Name
	}

	mu.Lock()
	defer mu.Unlock()

	if _, exists := patterns[p.Name]; exists {
		return fmt.Errorf("registry: pattern %q already registered", p.Name)
	}
	patterns[p.Name] = p.clone()
	return nil
}

// Lookup returns a copy of the named pattern.
func Lookup(name string) (Pattern, bool) {
	mu.RLock()
	defer mu.RUnlock()

	p, ok := patterns[name]
	if !ok {
		return Pattern{}, false
	}
	return p.clone(), true
}

// List returns copies of all registered patterns, sorted by name.
func List() []Pattern {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]Pattern, 0, len(patterns))
	for _, p := range patterns {
		result = append(result, p.clone())
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].Name < result[j].Name
	})

	return result
}

// Names returns the registered pattern names, sorted.
func Names() []string {
	list := List()
	names := make([]string, len(list))
	for i, p := range list {
		names[i] = p.Name
	}
	return names
}

// Exists checks if a pattern with the given name is registered.
func Exists(name string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := patterns[name]
	return ok
}
