package experiment

import (
	"time"

	"github.com/pkg/errors"

	"github.com/google/uuid"

	"github.com/trialkit/trialkit/pkg/config"
	"github.com/trialkit/trialkit/pkg/identifier"
	"github.com/trialkit/trialkit/pkg/logging"
)

// Experiment represents a runnable experiment definition: a name, composed
// ingredients, named configuration variants, and commands.
type Experiment struct {
	// Ingredient is the experiment's own configuration surface. Its path is
	// the experiment's name.
	*Ingredient
	// id is the experiment's collision-resistant identifier.
	id string
	// logger is the experiment's logger.
	logger *logging.Logger
}

// New creates a new experiment with the specified name and ingredients.
func New(name string, ingredients ...*Ingredient) (*Experiment, error) {
	// Verify that the name is non-empty, since it doubles as the experiment's
	// ownership path.
	if name == "" {
		return nil, errors.New("empty experiment name")
	}

	// Generate an identifier.
	id, err := identifier.New(identifier.PrefixExperiment)
	if err != nil {
		return nil, errors.Wrap(err, "unable to generate experiment identifier")
	}

	// Create the experiment.
	return &Experiment{
		Ingredient: NewIngredient(name, ingredients...),
		id:         id,
		logger:     logging.RootLogger.Sublogger(name),
	}, nil
}

// ID returns the experiment's identifier.
func (e *Experiment) ID() string {
	return e.id
}

// Name returns the experiment's name.
func (e *Experiment) Name() string {
	return e.Path()
}

// NamedConfigRecord pairs a named configuration variant with its fully
// qualified dotted path.
type NamedConfigRecord struct {
	// Path is the variant's fully qualified path (owner path plus name).
	Path string
	// Config is the variant itself.
	Config *NamedConfig
}

// GatherNamedConfigs returns all named configuration variants owned by the
// experiment and its ingredients, in registration order, with the
// experiment's own variants first.
func (e *Experiment) GatherNamedConfigs() []NamedConfigRecord {
	var records []NamedConfigRecord
	gatherNamedConfigs(e.Ingredient, &records)
	return records
}

// gatherNamedConfigs performs the recursive portion of GatherNamedConfigs.
func gatherNamedConfigs(owner *Ingredient, records *[]NamedConfigRecord) {
	for _, namedConfig := range owner.namedConfigs {
		*records = append(*records, NamedConfigRecord{
			Path:   owner.path + "." + namedConfig.name,
			Config: namedConfig,
		})
	}
	for _, sub := range owner.ingredients {
		gatherNamedConfigs(sub, records)
	}
}

// NamedConfig looks up a named configuration variant by its short name (for
// experiment-owned variants) or fully qualified path.
func (e *Experiment) NamedConfig(name string) (*NamedConfig, bool) {
	for _, record := range e.GatherNamedConfigs() {
		if record.Path == name {
			return record.Config, true
		}
		if record.Path == e.Path()+"."+name {
			return record.Config, true
		}
	}
	return nil, false
}

// Command looks up a command by name across the experiment and its
// ingredients.
func (e *Experiment) Command(name string) (*Command, bool) {
	return findCommand(e.Ingredient, name)
}

// AllCommands returns all commands registered on the experiment and its
// ingredients, in registration order, with the experiment's own commands
// first.
func (e *Experiment) AllCommands() []*Command {
	var commands []*Command
	gatherCommands(e.Ingredient, &commands)
	return commands
}

// findCommand performs the recursive portion of Command.
func findCommand(owner *Ingredient, name string) (*Command, bool) {
	for _, command := range owner.commands {
		if command.Name == name {
			return command, true
		}
	}
	for _, sub := range owner.ingredients {
		if command, ok := findCommand(sub, name); ok {
			return command, true
		}
	}
	return nil, false
}

// gatherCommands performs the recursive portion of AllCommands.
func gatherCommands(owner *Ingredient, commands *[]*Command) {
	*commands = append(*commands, owner.commands...)
	for _, sub := range owner.ingredients {
		gatherCommands(sub, commands)
	}
}

// ResolveConfig produces the effective configuration for a run: a clone of
// the baseline with named configuration variants and assignments applied, in
// that order, along with a summary of how the result differs from the
// baseline.
func (e *Experiment) ResolveConfig(
	baseline *config.Map,
	namedConfigs []string,
	assignments []config.Assignment,
) (*config.Map, *config.Summary, error) {
	// Clone the baseline.
	resolved := baseline.Clone()

	// Apply named configuration variants.
	for _, name := range namedConfigs {
		namedConfig, ok := e.NamedConfig(name)
		if !ok {
			return nil, nil, errors.Errorf("unknown named configuration: %s", name)
		}
		e.logger.Debugf("applying named configuration %s", name)
		namedConfig.Apply(resolved)
	}

	// Apply assignments.
	for _, assignment := range assignments {
		e.logger.Debugf("applying assignment %s", assignment.Path)
	}
	config.Apply(resolved, assignments)

	// Compute the change summary.
	return resolved, config.Diff(baseline, resolved), nil
}

// RunResult describes a completed command run.
type RunResult struct {
	// RunID is the collision-resistant identifier assigned to the run.
	RunID string
	// InvocationID is the UUID stamped on the invocation.
	InvocationID string
	// Start is the time at which the run started.
	Start time.Time
	// End is the time at which the run finished.
	End time.Time
}

// Run executes the named command with the specified resolved configuration
// and arguments. Command-specific flags, if any, are parsed from the
// arguments before invocation.
func (e *Experiment) Run(name string, configuration *config.Map, arguments []string) (*RunResult, error) {
	// Look up the command.
	command, ok := e.Command(name)
	if !ok {
		return nil, errors.Errorf("unknown command: %s", name)
	} else if command.Run == nil {
		return nil, errors.Errorf("command has no entry point: %s", name)
	}

	// Parse command-specific flags.
	if command.Flags != nil {
		if err := command.Flags.Parse(arguments); err != nil {
			return nil, errors.Wrap(err, "unable to parse command flags")
		}
		arguments = command.Flags.Args()
	}

	// Assign run identifiers.
	runID, err := identifier.New(identifier.PrefixRun)
	if err != nil {
		return nil, errors.Wrap(err, "unable to generate run identifier")
	}
	result := &RunResult{
		RunID:        runID,
		InvocationID: uuid.NewString(),
		Start:        time.Now(),
	}

	// Execute the command.
	e.logger.Printf("run %s (invocation %s) started for command %s", result.RunID, result.InvocationID, name)
	if err := command.Run(configuration, arguments); err != nil {
		result.End = time.Now()
		e.logger.Error(err)
		return result, errors.Wrap(err, "command failed")
	}
	result.End = time.Now()
	e.logger.Printf("run %s completed", result.RunID)

	// Success.
	return result, nil
}
