// Package manifest reads the Quadra.yaml project manifest. The manifest
// names the circuit and declares where the two-segment `use` paths of its
// sources point. Resolution itself happens in the module loader; this
// package only carries the declaration surface.
package manifest

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/quadra-lang/quadra/internal/ast"
	"github.com/quadra-lang/quadra/internal/config"
)

// Manifest represents the top-level Quadra.yaml configuration.
type Manifest struct {
	// Name is the circuit name, value-cased like a function name.
	Name string `yaml:"name"`

	// Version is the project version string. Informational.
	Version string `yaml:"version,omitempty"`

	// Deps maps the module segment of a `use module::submodule` path to a
	// directory containing the module's sources. Paths are relative to the
	// manifest unless absolute.
	Deps map[string]string `yaml:"deps,omitempty"`
}

// Load reads and parses a Quadra.yaml file.
func Load(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading manifest %s: %w", path, err)
	}
	return Parse(data, path)
}

// Parse parses manifest content from bytes. The path argument is used only
// for error messages.
func Parse(data []byte, path string) (*Manifest, error) {
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	if err := m.validate(path); err != nil {
		return nil, err
	}
	return &m, nil
}

// Find searches for Quadra.yaml starting from dir and walking up parent
// directories. Returns the empty string when no manifest exists.
func Find(dir string) (string, error) {
	dir, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("resolving directory: %w", err)
	}

	for {
		candidate := filepath.Join(dir, config.ManifestFileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", nil
		}
		dir = parent
	}
}

func (m *Manifest) validate(path string) error {
	if m.Name == "" {
		return fmt.Errorf("%s: name is required", path)
	}
	if !ast.IsValueName(m.Name) {
		return fmt.Errorf("%s: name %q must start with a lowercase letter", path, m.Name)
	}

	for module, dir := range m.Deps {
		if !ast.IsValueName(module) {
			return fmt.Errorf("%s: deps: module %q must start with a lowercase letter", path, module)
		}
		if dir == "" {
			return fmt.Errorf("%s: deps: module %q has an empty path", path, module)
		}
	}

	return nil
}
