package main

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/spf13/cobra"

	"github.com/fatih/color"

	"github.com/trialkit/trialkit/pkg/display"
)

// printConfigMain is the entry point for the print-config command.
func printConfigMain(_ *cobra.Command, arguments []string) error {
	// Split arguments into variant references and assignments.
	namedConfigs, assignments, err := splitConfigArguments(arguments)
	if err != nil {
		return errors.Wrap(err, "invalid configuration update")
	}

	// Load the project.
	project, err := loadProject()
	if err != nil {
		return err
	}

	// Resolve the effective configuration.
	resolved, summary, err := project.ResolveConfig(namedConfigs, assignments)
	if err != nil {
		return err
	}

	// Print the configuration listing. We print to the color output stream so
	// that escape sequences are handled correctly on all platforms.
	fmt.Fprint(color.Output, display.FormatConfig(resolved, summary))

	// Success.
	return nil
}

// printConfigCommand is the print-config command.
var printConfigCommand = &cobra.Command{
	Use:          "print-config [<named-config>...] [<path>=<value>...]",
	Short:        "Show the effective configuration with changes highlighted",
	RunE:         printConfigMain,
	SilenceUsage: true,
}

// printConfigConfiguration stores configuration for the print-config command.
var printConfigConfiguration struct {
	// help indicates whether or not to show help information and exit.
	help bool
}

func init() {
	// Grab a handle for the command line flags.
	flags := printConfigCommand.Flags()

	// Disable alphabetical sorting of flags in help output.
	flags.SortFlags = false

	// Manually add a help flag to override the default message. Cobra will
	// still implement its logic automatically.
	flags.BoolVarP(&printConfigConfiguration.help, "help", "h", false, "Show help information")
}
