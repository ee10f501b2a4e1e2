package taxonomy

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// fileFormat is the on-disk layout of a taxonomy file. A YAML sequence keeps
// super-category order, which decides ownership ties and control order.
type fileFormat struct {
	DefaultColor    string          `yaml:"default_color"`
	SuperCategories []SuperCategory `yaml:"super_categories"`
}

// Parse decodes and validates a YAML taxonomy.
func Parse(data []byte) (*Taxonomy, error) {
	var f fileFormat
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("could not parse taxonomy: %w", err)
	}
	if len(f.SuperCategories) == 0 {
		return nil, fmt.Errorf("taxonomy has no super_categories")
	}
	if err := Validate(f.SuperCategories); err != nil {
		return nil, fmt.Errorf("invalid taxonomy: %w", err)
	}
	return New(f.SuperCategories, f.DefaultColor), nil
}

// LoadFile reads a taxonomy from path. An empty path yields Default().
func LoadFile(path string) (*Taxonomy, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not read taxonomy %s: %w", path, err)
	}
	return Parse(data)
}
