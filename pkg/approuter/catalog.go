package approuter

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"golang.org/x/text/cases"
	"gopkg.in/yaml.v3"
)

// Constructor builds a fresh screen.
type Constructor func() Screen

// Unit is one instantiable entry of a template.
type Unit struct {
	// Constructor names a constructor registered on the catalog.
	Constructor string `toml:"constructor" yaml:"constructor"`
	// Stacked wraps the constructed screen in a new stack container.
	Stacked bool `toml:"stacked" yaml:"stacked"`
}

// Template is a named group of units, one of which may be the initial unit.
type Template struct {
	Initial string          `toml:"initial" yaml:"initial"`
	Units   map[string]Unit `toml:"units" yaml:"units"`
}

// Manifest is the on-disk description of a catalog's templates and resources.
// Resources map a resource name to a constructor name.
type Manifest struct {
	Templates map[string]Template `toml:"templates" yaml:"templates"`
	Resources map[string]string   `toml:"resources" yaml:"resources"`
}

// Catalog resolves template and resource names to freshly constructed screens.
// Names are matched case-insensitively.
type Catalog struct {
	constructors map[string]Constructor
	templates    map[string]Template
	resources    map[string]string
	newStack     func() StackContainer
	newTabs      func() TabContainer
	fold         cases.Caser
}

// NewCatalog returns an empty catalog.
func NewCatalog() *Catalog {
	return &Catalog{
		constructors: make(map[string]Constructor),
		templates:    make(map[string]Template),
		resources:    make(map[string]string),
		fold:         cases.Fold(),
	}
}

func (c *Catalog) key(name string) string {
	return c.fold.String(strings.TrimSpace(name))
}

// Register makes a constructor available to templates and resources under name.
// A constructor is also a freestanding resource under its own name.
func (c *Catalog) Register(name string, fn Constructor) *Catalog {
	c.constructors[c.key(name)] = fn
	return c
}

// RegisterStack sets the constructor used for stacked units and fresh stack embeddings.
func (c *Catalog) RegisterStack(fn func() StackContainer) *Catalog {
	c.newStack = fn
	return c
}

// RegisterTabs sets the constructor used for fresh tab containers.
func (c *Catalog) RegisterTabs(fn func() TabContainer) *Catalog {
	c.newTabs = fn
	return c
}

// AddTemplate registers a template under name, replacing any previous one.
func (c *Catalog) AddTemplate(name string, t Template) *Catalog {
	units := make(map[string]Unit, len(t.Units))
	for id, u := range t.Units {
		units[c.key(id)] = u
	}
	c.templates[c.key(name)] = Template{Initial: t.Initial, Units: units}
	return c
}

// AddResource maps a freestanding resource name to a registered constructor.
func (c *Catalog) AddResource(name, constructor string) *Catalog {
	c.resources[c.key(name)] = constructor
	return c
}

// Apply registers every template and resource of m.
func (c *Catalog) Apply(m Manifest) *Catalog {
	for name, t := range m.Templates {
		c.AddTemplate(name, t)
	}
	for name, constructor := range m.Resources {
		c.AddResource(name, constructor)
	}
	return c
}

// LoadManifest reads a TOML or YAML manifest, chosen by file extension, and applies it.
func (c *Catalog) LoadManifest(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("approuter: read manifest: %w", err)
	}

	var m Manifest
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		err = toml.Unmarshal(data, &m)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &m)
	default:
		return fmt.Errorf("approuter: unsupported manifest format %q", filepath.Ext(path))
	}
	if err != nil {
		return fmt.Errorf("approuter: decode manifest %s: %w", path, err)
	}

	c.Apply(m)
	return nil
}

// NewStack returns a fresh stack container, or nil if none is registered.
func (c *Catalog) NewStack() StackContainer {
	if c.newStack == nil {
		return nil
	}
	return c.newStack()
}

// NewTabs returns a fresh tab container, or nil if none is registered.
func (c *Catalog) NewTabs() TabContainer {
	if c.newTabs == nil {
		return nil
	}
	return c.newTabs()
}

// InstantiateTemplate builds a unit of the named template: the initial unit if initial
// is set, otherwise the unit with the given identifier.
func (c *Catalog) InstantiateTemplate(name, identifier string, initial bool) (Screen, bool) {
	t, ok := c.templates[c.key(name)]
	if !ok {
		return nil, false
	}
	id := identifier
	if initial {
		if t.Initial == "" {
			return nil, false
		}
		id = t.Initial
	}
	unit, ok := t.Units[c.key(id)]
	if !ok {
		return nil, false
	}
	return c.build(unit)
}

// InstantiateResource builds a freestanding resource. Registered constructors count as
// resources under their own name.
func (c *Catalog) InstantiateResource(name string) (Screen, bool) {
	constructor, ok := c.resources[c.key(name)]
	if !ok {
		constructor = name
	}
	return c.build(Unit{Constructor: constructor})
}

func (c *Catalog) build(u Unit) (Screen, bool) {
	fn, ok := c.constructors[c.key(u.Constructor)]
	if !ok {
		return nil, false
	}
	s := fn()
	if s == nil {
		return nil, false
	}
	if !u.Stacked {
		return s, true
	}
	stack := c.NewStack()
	if stack == nil {
		return nil, false
	}
	stack.SetScreens([]Screen{s})
	return stack, true
}
