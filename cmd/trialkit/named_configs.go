package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fatih/color"

	"github.com/trialkit/trialkit/cmd"
	"github.com/trialkit/trialkit/pkg/display"
)

// namedConfigsMain is the entry point for the named-configs command.
func namedConfigsMain(_ *cobra.Command, _ []string) error {
	// Load the project.
	project, err := loadProject()
	if err != nil {
		return err
	}

	// Print the variant listing, hiding the experiment's own path prefix.
	fmt.Fprint(color.Output, display.FormatNamedConfigs(
		project.Experiment.GatherNamedConfigs(),
		project.Experiment.Path(),
	))

	// Success.
	return nil
}

// namedConfigsCommand is the named-configs command.
var namedConfigsCommand = &cobra.Command{
	Use:          "named-configs",
	Short:        "List the project's named configuration variants",
	Args:         cmd.DisallowArguments,
	RunE:         namedConfigsMain,
	SilenceUsage: true,
}

// namedConfigsConfiguration stores configuration for the named-configs
// command.
var namedConfigsConfiguration struct {
	// help indicates whether or not to show help information and exit.
	help bool
}

func init() {
	// Grab a handle for the command line flags.
	flags := namedConfigsCommand.Flags()

	// Disable alphabetical sorting of flags in help output.
	flags.SortFlags = false

	// Manually add a help flag to override the default message. Cobra will
	// still implement its logic automatically.
	flags.BoolVarP(&namedConfigsConfiguration.help, "help", "h", false, "Show help information")
}
