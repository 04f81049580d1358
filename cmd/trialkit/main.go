package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/fatih/color"

	"github.com/mattn/go-isatty"

	"github.com/trialkit/trialkit/pkg/logging"
	"github.com/trialkit/trialkit/pkg/project"
)

// rootMain is the entry point for the root command.
func rootMain(command *cobra.Command, _ []string) error {
	// If no subcommand was given, then print help information and bail. We
	// don't have to worry about warning about arguments being present here
	// (which would be incorrect usage) because arguments can't even reach
	// this point (they will be mistaken for subcommands and an error will be
	// displayed).
	command.Help()

	// Success.
	return nil
}

// rootPreRun applies global flags before any command entry point runs.
func rootPreRun(_ *cobra.Command, _ []string) error {
	// Disable colorized output if it has been explicitly disabled or if
	// standard output isn't connected to a terminal.
	if rootConfiguration.noColor {
		color.NoColor = true
	} else if !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		color.NoColor = true
	}

	// Apply the log level.
	level, err := logging.ParseLevel(rootConfiguration.logLevel)
	if err != nil {
		return err
	}
	logging.SetLevel(level)

	// Success.
	return nil
}

// rootCommand is the root command.
var rootCommand = &cobra.Command{
	Use:               "trialkit",
	Short:             "Inspect and run experiment configurations",
	PersistentPreRunE: rootPreRun,
	RunE:              rootMain,
	SilenceUsage:      true,
}

// rootConfiguration stores configuration for the root command.
var rootConfiguration struct {
	// help indicates whether or not to show help information and exit.
	help bool
	// project is the path of the project file to operate on.
	project string
	// noColor indicates whether or not colorized output should be disabled.
	noColor bool
	// logLevel is the log level specification.
	logLevel string
}

func init() {
	// Grab a handle for the command line flags.
	flags := rootCommand.Flags()
	persistentFlags := rootCommand.PersistentFlags()

	// Disable alphabetical sorting of flags in help output.
	flags.SortFlags = false
	persistentFlags.SortFlags = false

	// Manually add a help flag to override the default message. Cobra will
	// still implement its logic automatically.
	flags.BoolVarP(&rootConfiguration.help, "help", "h", false, "Show help information")

	// Wire up global flags.
	persistentFlags.StringVarP(
		&rootConfiguration.project,
		"project", "p",
		project.DefaultConfigurationFileName,
		"Specify the project file",
	)
	persistentFlags.BoolVar(&rootConfiguration.noColor, "no-color", false, "Disable colorized output")
	persistentFlags.StringVar(&rootConfiguration.logLevel, "log-level", "info", "Set the log level (info|debug)")

	// Register commands.
	rootCommand.AddCommand(
		printConfigCommand,
		namedConfigsCommand,
		commandsCommand,
		runCommand,
		diffCommand,
		versionCommand,
		legalCommand,
	)
}

func main() {
	// Execute the root command.
	if err := rootCommand.Execute(); err != nil {
		os.Exit(1)
	}
}
