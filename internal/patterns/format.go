package patterns

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-life/internal/core"
	"github.com/vovakirdan/tui-life/internal/registry"
)

// YAMLPattern is the on-disk form of a pattern. Cells may be given as
// explicit points, as picture rows ('O' or '#' alive, anything else dead),
// or both.
type YAMLPattern struct {
	Name   string   `yaml:"name"`
	Title  string   `yaml:"title,omitempty"`
	Points [][2]int `yaml:"points,omitempty"`
	Rows   []string `yaml:"rows,omitempty"`
}

// ParseYAML parses one pattern document.
func ParseYAML(data []byte) (registry.Pattern, error) {
	var raw YAMLPattern
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return registry.Pattern{}, fmt.Errorf("invalid YAML: %w", err)
	}
	return raw.toPattern()
}

func (y YAMLPattern) toPattern() (registry.Pattern, error) {
	name := strings.TrimSpace(y.Name)
	if name == "" {
		return registry.Pattern{}, fmt.Errorf("pattern has no name")
	}

	points := make([]core.Point, 0, len(y.Points))
	for _, p := range y.Points {
		points = append(points, core.P(p[0], p[1]))
	}
	for row, line := range y.Rows {
		for col, r := range []rune(line) {
			if r == 'O' || r == 'o' || r == '#' || r == '*' {
				points = append(points, core.P(col, row))
			}
		}
	}
	if len(points) == 0 {
		return registry.Pattern{}, fmt.Errorf("pattern %q has no live cells", name)
	}

	return registry.Pattern{
		Name:   name,
		Title:  y.Title,
		Points: points,
	}, nil
}
