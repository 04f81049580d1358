package experiment

import (
	"github.com/spf13/pflag"

	"github.com/trialkit/trialkit/pkg/config"
)

// Command represents a named operation registered on an experiment or
// ingredient.
type Command struct {
	// Name is the command's invocation name.
	Name string
	// Doc is the command's documentation text.
	Doc string
	// Flags are any command-specific flags. They are parsed from the
	// command's arguments before invocation.
	Flags *pflag.FlagSet
	// Run is the command's entry point. It receives the resolved
	// configuration and any positional arguments.
	Run func(configuration *config.Map, arguments []string) error
}
