// Package manifest handles engine.toml module manifests.
//
// A manifest describes an engine module and carries data-only class
// declarations: name, parent, instantiability, and properties that bind
// to accessor methods declared elsewhere (native callables cannot live in
// data). Tooling feeds the declarations to the class registry alongside
// the code-declared classes.
package manifest

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/TML233/PawsEngine/engine"
)

// ManifestFileName is the file looked up by FindAndLoad.
const ManifestFileName = "engine.toml"

// Manifest represents an engine.toml module configuration.
type Manifest struct {
	Project Project `toml:"project"`
	Classes []Class `toml:"class"`

	// Dir is the directory containing the engine.toml file (set at load time).
	Dir string `toml:"-"`
}

// Project contains module metadata.
type Project struct {
	Name      string `toml:"name"`
	Namespace string `toml:"namespace"`
	Version   string `toml:"version"`
}

// Class is a data-only class declaration.
type Class struct {
	Name         string     `toml:"name"`
	Parent       string     `toml:"parent"`
	Instantiable bool       `toml:"instantiable"`
	Properties   []Property `toml:"property"`
}

// Property names a getter/setter pair reachable through the class's
// inheritance chain.
type Property struct {
	Name   string `toml:"name"`
	Getter string `toml:"getter"`
	Setter string `toml:"setter"`
}

// Load reads and validates the engine.toml at path.
func Load(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cannot read %s: %w", path, err)
	}

	var m Manifest
	if err := toml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parse error in %s: %w", path, err)
	}

	m.Dir, err = filepath.Abs(filepath.Dir(path))
	if err != nil {
		return nil, fmt.Errorf("cannot resolve path %s: %w", path, err)
	}

	if err := m.validate(); err != nil {
		return nil, fmt.Errorf("invalid manifest %s: %w", path, err)
	}
	return &m, nil
}

// FindAndLoad walks up from startDir to find an engine.toml file, then
// loads and returns the manifest. Returns nil if no manifest is found.
func FindAndLoad(startDir string) (*Manifest, error) {
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return nil, err
	}

	for {
		path := filepath.Join(dir, ManifestFileName)
		if _, err := os.Stat(path); err == nil {
			return Load(path)
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			// Reached root
			return nil, nil
		}
		dir = parent
	}
}

func (m *Manifest) validate() error {
	if m.Project.Name == "" {
		return fmt.Errorf("project.name is required")
	}
	seen := make(map[string]bool, len(m.Classes))
	for _, c := range m.Classes {
		if c.Name == "" {
			return fmt.Errorf("class without name")
		}
		if seen[c.Name] {
			return fmt.Errorf("class %s declared twice", c.Name)
		}
		seen[c.Name] = true
		for _, p := range c.Properties {
			if p.Name == "" || p.Getter == "" || p.Setter == "" {
				return fmt.Errorf("class %s: property needs name, getter and setter", c.Name)
			}
		}
	}
	return nil
}

// Declarations converts the manifest classes into registry declarations.
// Manifest classes declare no method binds; their properties resolve
// against inherited accessor methods when the registry initializes.
func (m *Manifest) Declarations() []engine.ClassDeclaration {
	decls := make([]engine.ClassDeclaration, 0, len(m.Classes))
	for _, c := range m.Classes {
		decl := engine.ClassDeclaration{
			Name:         m.qualify(c.Name),
			Instantiable: c.Instantiable,
		}
		if c.Parent != "" {
			decl.ParentName = m.qualify(c.Parent)
		}
		for _, p := range c.Properties {
			decl.Properties = append(decl.Properties, engine.PropertyDeclaration{
				Name:       p.Name,
				GetterName: p.Getter,
				SetterName: p.Setter,
			})
		}
		decls = append(decls, decl)
	}
	return decls
}

// qualify prepends the project namespace to unqualified class names.
func (m *Manifest) qualify(name string) string {
	if m.Project.Namespace == "" || strings.HasPrefix(name, "::") {
		return name
	}
	return "::" + m.Project.Namespace + "::" + name
}
