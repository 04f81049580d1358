package experiment

import (
	"github.com/pkg/errors"

	"github.com/trialkit/trialkit/pkg/config"
)

// ConfigScope is a function that populates or adjusts a configuration tree.
// It is the programmatic counterpart to a literal configuration map.
type ConfigScope func(*config.Map)

// NamedConfig represents a named configuration variant that can be applied on
// top of an experiment's baseline configuration.
type NamedConfig struct {
	// name is the variant's name.
	name string
	// doc is the variant's documentation text, if any.
	doc string
	// values holds literal values for map-backed variants.
	values *config.Map
	// scope holds the population function for scope-backed variants.
	scope ConfigScope
}

// Name returns the variant's name.
func (n *NamedConfig) Name() string {
	return n.name
}

// Doc returns the variant's documentation text, if any.
func (n *NamedConfig) Doc() string {
	return n.doc
}

// Apply applies the variant to the specified configuration.
func (n *NamedConfig) Apply(configuration *config.Map) {
	if n.scope != nil {
		n.scope(configuration)
	} else if n.values != nil {
		config.Merge(configuration, n.values)
	}
}

// Ingredient is a reusable piece of an experiment with its own configuration
// surface. Ingredients own named configuration variants and commands, and may
// compose other ingredients.
type Ingredient struct {
	// path is the ingredient's dotted ownership path.
	path string
	// ingredients are any composed sub-ingredients.
	ingredients []*Ingredient
	// namedConfigs are registered variants in registration order.
	namedConfigs []*NamedConfig
	// commands are registered commands in registration order.
	commands []*Command
}

// NewIngredient creates a new ingredient with the specified ownership path and
// optional sub-ingredients.
func NewIngredient(path string, ingredients ...*Ingredient) *Ingredient {
	return &Ingredient{
		path:        path,
		ingredients: ingredients,
	}
}

// Path returns the ingredient's dotted ownership path.
func (i *Ingredient) Path() string {
	return i.path
}

// Ingredients returns any composed sub-ingredients.
func (i *Ingredient) Ingredients() []*Ingredient {
	return i.ingredients
}

// AddNamedConfig registers a configuration variant backed by literal values
// and returns it.
func (i *Ingredient) AddNamedConfig(name string, values *config.Map) *NamedConfig {
	namedConfig := &NamedConfig{name: name, values: values}
	i.namedConfigs = append(i.namedConfigs, namedConfig)
	return namedConfig
}

// AddNamedConfigScope registers a configuration variant backed by a scope
// function with the specified documentation text and returns it.
func (i *Ingredient) AddNamedConfigScope(name, doc string, scope ConfigScope) *NamedConfig {
	namedConfig := &NamedConfig{name: name, doc: doc, scope: scope}
	i.namedConfigs = append(i.namedConfigs, namedConfig)
	return namedConfig
}

// NamedConfigs returns registered variants in registration order.
func (i *Ingredient) NamedConfigs() []*NamedConfig {
	return i.namedConfigs
}

// AddCommand registers a command on the ingredient.
func (i *Ingredient) AddCommand(command *Command) error {
	// Verify that the command is sane.
	if command.Name == "" {
		return errors.New("command has no name")
	}

	// Watch for duplicates.
	for _, existing := range i.commands {
		if existing.Name == command.Name {
			return errors.Errorf("command already registered: %s", command.Name)
		}
	}

	// Register the command.
	i.commands = append(i.commands, command)

	// Success.
	return nil
}

// Commands returns registered commands in registration order.
func (i *Ingredient) Commands() []*Command {
	return i.commands
}
