package main

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/spf13/cobra"

	"github.com/fatih/color"

	"github.com/dustin/go-humanize"

	"github.com/trialkit/trialkit/cmd"
	"github.com/trialkit/trialkit/pkg/display"
)

// runMain is the entry point for the run command.
func runMain(_ *cobra.Command, arguments []string) error {
	// Verify that a command was specified.
	if len(arguments) == 0 {
		return errors.New("no command specified")
	}
	name := arguments[0]

	// Split the remaining arguments. Arguments after a "with" separator are
	// configuration updates (variant references and assignments), everything
	// before it forwards to the command.
	var updates []string
	forwarded := arguments[1:]
	for a, argument := range forwarded {
		if argument == "with" {
			updates = forwarded[a+1:]
			forwarded = forwarded[:a]
			break
		}
	}
	namedConfigs, assignments, err := splitConfigArguments(updates)
	if err != nil {
		return errors.Wrap(err, "invalid configuration update")
	}

	// Load the project.
	project, err := loadProject()
	if err != nil {
		return err
	}

	// Resolve the effective configuration with a status line, since variant
	// files and environment overrides may take a moment to load.
	statusLinePrinter := &cmd.StatusLinePrinter{UseStandardError: true}
	statusLinePrinter.Print("Resolving configuration...")
	resolved, summary, err := project.ResolveConfig(namedConfigs, assignments)
	if err != nil {
		statusLinePrinter.BreakIfNonEmpty()
		return err
	}
	statusLinePrinter.Clear()

	// Warn about values whose types changed relative to the baseline.
	for _, path := range summary.TypeChangedPaths() {
		change := summary.TypeChange(path)
		cmd.Warning(fmt.Sprintf(
			"config entry %s changed type from %s to %s",
			path, change.Old, change.New,
		))
	}

	// Show the configuration before running, if requested.
	if runConfiguration.printConfig {
		fmt.Fprint(color.Output, display.FormatConfig(resolved, summary))
	}

	// Execute the command.
	result, err := project.Experiment.Run(name, resolved, forwarded)
	if err != nil {
		return err
	}

	// Report the completed run.
	fmt.Printf(
		"Run %s (invocation %s) completed (started %s)\n",
		result.RunID,
		result.InvocationID,
		humanize.Time(result.Start),
	)

	// Success.
	return nil
}

// runCommand is the run command.
var runCommand = &cobra.Command{
	Use:   "run <command> [<args>...] [with <named-config>... <path>=<value>...]",
	Short: "Run one of the project's commands",
	Run:   cmd.Mainify(runMain),
}

// runConfiguration stores configuration for the run command.
var runConfiguration struct {
	// help indicates whether or not to show help information and exit.
	help bool
	// printConfig indicates whether or not to show the effective
	// configuration before running.
	printConfig bool
}

func init() {
	// Grab a handle for the command line flags.
	flags := runCommand.Flags()

	// Disable alphabetical sorting of flags in help output.
	flags.SortFlags = false

	// Manually add a help flag to override the default message. Cobra will
	// still implement its logic automatically.
	flags.BoolVarP(&runConfiguration.help, "help", "h", false, "Show help information")

	// Wire up run command flags.
	flags.BoolVar(&runConfiguration.printConfig, "print-config", false, "Show the effective configuration before running")
}
