package project

import (
	"github.com/pkg/errors"

	yaml "gopkg.in/yaml.v2"

	"github.com/trialkit/trialkit/pkg/config"
	"github.com/trialkit/trialkit/pkg/encoding"
)

// NamedConfigDeclaration declares a named configuration variant in a project
// file. Variant values come from either a configuration file or an inline
// mapping, but not both.
type NamedConfigDeclaration struct {
	// Name is the variant's name.
	Name string `yaml:"name"`
	// Doc is the variant's documentation text.
	Doc string `yaml:"doc"`
	// File is the path of a configuration file holding the variant's values,
	// relative to the project file.
	File string `yaml:"file"`
	// Values are inline variant values.
	Values yaml.MapSlice `yaml:"values"`
}

// CommandDeclaration declares a command that can be invoked for a project.
type CommandDeclaration struct {
	// Name is the command's name.
	Name string `yaml:"name"`
	// Doc is the command's documentation text.
	Doc string `yaml:"doc"`
	// Run is the shell command line to execute.
	Run string `yaml:"run"`
}

// Configuration is the project file format.
type Configuration struct {
	// Name is the experiment name.
	Name string `yaml:"name"`
	// Config is the path of the baseline configuration file, relative to the
	// project file.
	Config string `yaml:"config"`
	// EnvFile is the path of an environment-style override file, relative to
	// the project file.
	EnvFile string `yaml:"envFile"`
	// Docs maps dotted configuration paths to documentation text shown
	// beside those entries in configuration listings.
	Docs map[string]string `yaml:"docs"`
	// NamedConfigs are named configuration variant declarations in
	// declaration order.
	NamedConfigs []NamedConfigDeclaration `yaml:"namedConfigs"`
	// Commands are command declarations in declaration order.
	Commands []CommandDeclaration `yaml:"commands"`
}

// LoadConfiguration attempts to load a YAML-based project file from the
// specified path.
func LoadConfiguration(path string) (*Configuration, error) {
	// Create the target configuration object.
	result := &Configuration{}

	// Attempt to load. We pass-through os.IsNotExist errors.
	if err := encoding.LoadAndUnmarshalYAML(path, result); err != nil {
		return nil, err
	}

	// Success.
	return result, nil
}

// mapFromMapSlice converts a YAML mapping, decoded with ordering preserved,
// into a configuration map. Nested mappings and sequences convert
// recursively. A nil mapping converts to an empty configuration map.
func mapFromMapSlice(values yaml.MapSlice) (*config.Map, error) {
	result := config.NewMap()
	for _, item := range values {
		key, ok := item.Key.(string)
		if !ok {
			return nil, errors.Errorf("non-string mapping key: %v", item.Key)
		}
		value, err := convertValue(item.Value)
		if err != nil {
			return nil, err
		}
		result.Set(key, value)
	}
	return result, nil
}

// convertValue converts a single decoded YAML value into configuration map
// form.
func convertValue(value interface{}) (interface{}, error) {
	switch typed := value.(type) {
	case yaml.MapSlice:
		return mapFromMapSlice(typed)
	case []interface{}:
		converted := make([]interface{}, len(typed))
		for e, element := range typed {
			result, err := convertValue(element)
			if err != nil {
				return nil, err
			}
			converted[e] = result
		}
		return converted, nil
	default:
		return value, nil
	}
}
