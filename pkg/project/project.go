package project

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"

	"github.com/trialkit/trialkit/pkg/config"
	"github.com/trialkit/trialkit/pkg/experiment"
)

const (
	// DefaultConfigurationFileName is the name used to locate project files
	// when no path is specified.
	DefaultConfigurationFileName = "trialkit.yaml"
	// configFileEnvironmentVariable is the environment variable through which
	// command subprocesses receive the path of the resolved configuration.
	configFileEnvironmentVariable = "TRIALKIT_CONFIG"
)

// Project is a loaded experiment project: the parsed project file, the
// experiment constructed from it, and the baseline configuration.
type Project struct {
	// Root is the directory containing the project file. Relative paths in
	// the project file resolve against it.
	Root string
	// Configuration is the parsed project file.
	Configuration *Configuration
	// Experiment is the experiment constructed from the project file.
	Experiment *experiment.Experiment
	// Baseline is the baseline configuration. It is an empty map if the
	// project file doesn't reference a configuration file.
	Baseline *config.Map
}

// Load loads the project file at the specified path and constructs its
// experiment.
func Load(path string) (*Project, error) {
	// Load the project file.
	configuration, err := LoadConfiguration(path)
	if err != nil {
		return nil, errors.Wrap(err, "unable to load project file")
	}

	// Verify that the project names its experiment.
	if configuration.Name == "" {
		return nil, errors.New("project file has no experiment name")
	}

	// Compute the project root.
	root := filepath.Dir(path)

	// Create the experiment.
	result, err := experiment.New(configuration.Name)
	if err != nil {
		return nil, errors.Wrap(err, "unable to create experiment")
	}

	// Load the baseline configuration, if any.
	baseline := config.NewMap()
	if configuration.Config != "" {
		if baseline, err = config.Load(resolvePath(root, configuration.Config)); err != nil {
			return nil, errors.Wrap(err, "unable to load baseline configuration")
		}
	}

	// Register named configuration variants.
	for _, declaration := range configuration.NamedConfigs {
		// Verify that the declaration is sane.
		if declaration.Name == "" {
			return nil, errors.New("named configuration has no name")
		} else if declaration.File != "" && declaration.Values != nil {
			return nil, errors.Errorf(
				"named configuration specifies both file and values: %s",
				declaration.Name,
			)
		}

		// Extract the variant's values.
		var values *config.Map
		if declaration.File != "" {
			if values, err = config.Load(resolvePath(root, declaration.File)); err != nil {
				return nil, errors.Wrapf(err,
					"unable to load named configuration: %s",
					declaration.Name,
				)
			}
		} else if values, err = mapFromMapSlice(declaration.Values); err != nil {
			return nil, errors.Wrapf(err,
				"invalid named configuration values: %s",
				declaration.Name,
			)
		}

		// Register the variant. Documented variants register as scopes since
		// documentation only attaches there.
		if declaration.Doc != "" {
			overlay := values
			result.AddNamedConfigScope(declaration.Name, declaration.Doc, func(m *config.Map) {
				config.Merge(m, overlay)
			})
		} else {
			result.AddNamedConfig(declaration.Name, values)
		}
	}

	// Register commands.
	for _, declaration := range configuration.Commands {
		if declaration.Run == "" {
			return nil, errors.Errorf("command has no run line: %s", declaration.Name)
		}
		if err := result.AddCommand(&experiment.Command{
			Name: declaration.Name,
			Doc:  declaration.Doc,
			Run:  shellRunner(declaration.Run),
		}); err != nil {
			return nil, errors.Wrap(err, "unable to register command")
		}
	}

	// Success.
	return &Project{
		Root:          root,
		Configuration: configuration,
		Experiment:    result,
		Baseline:      baseline,
	}, nil
}

// EnvAssignments loads the project's environment-style override file, if any,
// and parses its entries as configuration assignments.
func (p *Project) EnvAssignments() ([]config.Assignment, error) {
	if p.Configuration.EnvFile == "" {
		return nil, nil
	}
	return config.LoadEnv(resolvePath(p.Root, p.Configuration.EnvFile))
}

// ResolveConfig computes the effective configuration and change summary for
// the project. Environment overrides apply first, then the specified variants
// and assignments, and any path documentation declared by the project file
// attaches to the summary.
func (p *Project) ResolveConfig(
	namedConfigs []string,
	assignments []config.Assignment,
) (*config.Map, *config.Summary, error) {
	// Load environment overrides.
	envAssignments, err := p.EnvAssignments()
	if err != nil {
		return nil, nil, errors.Wrap(err, "unable to load environment overrides")
	}

	// Perform the resolution.
	resolved, summary, err := p.Experiment.ResolveConfig(
		p.Baseline,
		namedConfigs,
		append(envAssignments, assignments...),
	)
	if err != nil {
		return nil, nil, err
	}

	// Attach declared documentation.
	for path, doc := range p.Configuration.Docs {
		summary.SetDoc(path, doc)
	}

	// Success.
	return resolved, summary, nil
}

// shellRunner creates a command implementation that writes the resolved
// configuration to a temporary file and runs the specified shell command line
// with the file's path exposed via the TRIALKIT_CONFIG environment variable.
// Additional invocation arguments are appended to the command line.
func shellRunner(commandLine string) func(*config.Map, []string) error {
	return func(configuration *config.Map, arguments []string) error {
		// Encode the resolved configuration.
		encoded, err := config.EncodeYAML(configuration)
		if err != nil {
			return errors.Wrap(err, "unable to encode configuration")
		}

		// Write it to a temporary file for the subprocess.
		file, err := os.CreateTemp("", "trialkit-config-*.yaml")
		if err != nil {
			return errors.Wrap(err, "unable to create configuration file")
		}
		defer os.Remove(file.Name())
		if _, err := file.Write(encoded); err != nil {
			file.Close()
			return errors.Wrap(err, "unable to write configuration file")
		} else if err := file.Close(); err != nil {
			return errors.Wrap(err, "unable to close configuration file")
		}

		// Compute the full command line, forwarding any extra arguments.
		full := commandLine
		if len(arguments) > 0 {
			full += " " + strings.Join(arguments, " ")
		}

		// Run the command in the system shell.
		return runInShell(full, []string{
			configFileEnvironmentVariable + "=" + file.Name(),
		})
	}
}

// resolvePath resolves a project file path against the project root.
func resolvePath(root, path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(root, path)
}
