// Package scenario reads YAML files that describe a type hierarchy,
// declarations nested in containers and name lookups with their candidates.
package scenario

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/stackb/scoperank/pkg/visibility"
)

// Scenario is the content of a scenario file.
type Scenario struct {
	// Filename is the file the scenario was loaded from, if any.
	Filename string `yaml:"-"`
	// Types maps a type name to its direct supertypes.
	Types map[string][]string `yaml:"types,omitempty"`
	// Declarations are checked for their effective visibility.
	Declarations []*Declaration `yaml:"declarations,omitempty"`
	// Calls are resolved against their candidates.
	Calls []*Call `yaml:"calls,omitempty"`
}

// Declaration is a declaration nested in a chain of containers.
type Declaration struct {
	Name       string                `yaml:"name"`
	Visibility visibility.Visibility `yaml:"visibility"`
	// Container is the type of the class that contains the declaration.
	Container string `yaml:"container,omitempty"`
	// Containers are the enclosing containers, outermost first.
	Containers []*Container `yaml:"containers,omitempty"`
	// Expect is the expected effective visibility, as rendered by String.
	Expect string `yaml:"expect,omitempty"`
}

// Container is an enclosing container of a declaration.  In YAML it is
// either a bare visibility or a mapping.
type Container struct {
	Name       string                `yaml:"name,omitempty"`
	Visibility visibility.Visibility `yaml:"visibility"`
	// Type is the type of the class that contains this container.
	Type string `yaml:"type,omitempty"`
}

// UnmarshalYAML implements yaml.Unmarshaler
func (c *Container) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind == yaml.ScalarNode {
		v, err := visibility.ParseVisibility(value.Value)
		if err != nil {
			return fmt.Errorf("line %d: %w", value.Line, err)
		}
		*c = Container{Visibility: v}
		return nil
	}
	type plain Container
	var p plain
	if err := value.Decode(&p); err != nil {
		return err
	}
	*c = Container(p)
	return nil
}

// Call is a lookup of a name from a use site.
type Call struct {
	Name       string       `yaml:"name"`
	Site       Site         `yaml:"site,omitempty"`
	Candidates []*Candidate `yaml:"candidates,omitempty"`
	// Expect is the origin of the expected winning candidate.
	Expect string `yaml:"expect,omitempty"`
	// ExpectError is a substring of the expected resolution error.
	ExpectError string `yaml:"expectError,omitempty"`
}

// Site is the place a call is made from.
type Site struct {
	Module  string   `yaml:"module,omitempty"`
	Package string   `yaml:"package,omitempty"`
	Owners  []string `yaml:"owners,omitempty"`
	// Classes are the enclosing classes, innermost first.
	Classes []string `yaml:"classes,omitempty"`
}

// Candidate is a candidate of a call.
type Candidate struct {
	Origin string `yaml:"origin"`
	// Key is a tower key path such as "Local(1)/Member+CommonInvoke".
	Key string `yaml:"key"`
	// Visibility defaults to public.
	Visibility visibility.Visibility `yaml:"visibility,omitempty"`
	// Container is the type that contains a protected candidate.
	Container    string `yaml:"container,omitempty"`
	Module       string `yaml:"module,omitempty"`
	Package      string `yaml:"package,omitempty"`
	Owner        string `yaml:"owner,omitempty"`
	Inapplicable bool   `yaml:"inapplicable,omitempty"`
}

// Load reads a scenario file.
func Load(filename string) (*Scenario, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("reading scenario: %w", err)
	}
	s, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	s.Filename = filename
	return s, nil
}

// Parse decodes a scenario.  Unknown fields are an error.
func Parse(data []byte) (*Scenario, error) {
	var s Scenario
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&s); err != nil {
		return nil, fmt.Errorf("parsing scenario: %w", err)
	}
	for i, d := range s.Declarations {
		if d.Name == "" {
			return nil, fmt.Errorf("declaration #%d: name is required", i)
		}
	}
	for i, c := range s.Calls {
		if c.Name == "" {
			return nil, fmt.Errorf("call #%d: name is required", i)
		}
	}
	return &s, nil
}

// Build returns the declaration linked to its container chain.
func (d *Declaration) Build() *visibility.Declaration {
	var parent *visibility.Declaration
	for i, c := range d.Containers {
		name := c.Name
		if name == "" {
			name = fmt.Sprintf("%s#%d", d.Name, i)
		}
		parent = &visibility.Declaration{
			Name:          name,
			Visibility:    c.Visibility,
			ContainerType: typeHandle(c.Type),
			Parent:        parent,
		}
	}
	return &visibility.Declaration{
		Name:          d.Name,
		Visibility:    d.Visibility,
		ContainerType: typeHandle(d.Container),
		Parent:        parent,
	}
}

// UseSite converts the site for accessibility checks.
func (s Site) UseSite() visibility.UseSite {
	site := visibility.UseSite{
		Module:  s.Module,
		Package: s.Package,
		Owners:  s.Owners,
	}
	for _, class := range s.Classes {
		site.Classes = append(site.Classes, visibility.NamedType(class))
	}
	return site
}

func typeHandle(name string) visibility.TypeHandle {
	if name == "" {
		return nil
	}
	return visibility.NamedType(name)
}
