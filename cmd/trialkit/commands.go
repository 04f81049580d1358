package main

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"

	"github.com/spf13/cobra"

	"github.com/fatih/color"

	"github.com/trialkit/trialkit/pkg/display"
)

// commandsMain is the entry point for the commands command.
func commandsMain(_ *cobra.Command, arguments []string) error {
	// Validate arguments.
	if len(arguments) > 1 {
		return errors.New("too many arguments")
	}

	// Load the project.
	project, err := loadProject()
	if err != nil {
		return err
	}

	// If a command name was given, show its full help information.
	if len(arguments) == 1 {
		command, ok := project.Experiment.Command(arguments[0])
		if !ok {
			return errors.Errorf("unknown command: %s", arguments[0])
		}
		fmt.Fprintln(color.Output, display.HelpForCommand(command))
		return nil
	}

	// Otherwise list all registered commands with their summary lines.
	commands := project.Experiment.AllCommands()
	if len(commands) == 0 {
		fmt.Println("No commands registered")
		return nil
	}
	fmt.Println("Commands:")
	for _, command := range commands {
		// Reduce documentation to its first line for the listing.
		doc := command.Doc
		if index := strings.IndexByte(doc, '\n'); index >= 0 {
			doc = doc[:index]
		}
		if doc != "" {
			fmt.Printf("  %-15s %s\n", command.Name, doc)
		} else {
			fmt.Printf("  %s\n", command.Name)
		}
	}

	// Success.
	return nil
}

// commandsCommand is the commands command.
var commandsCommand = &cobra.Command{
	Use:          "commands [<command>]",
	Short:        "List the project's commands or show help for one",
	RunE:         commandsMain,
	SilenceUsage: true,
}

// commandsConfiguration stores configuration for the commands command.
var commandsConfiguration struct {
	// help indicates whether or not to show help information and exit.
	help bool
}

func init() {
	// Grab a handle for the command line flags.
	flags := commandsCommand.Flags()

	// Disable alphabetical sorting of flags in help output.
	flags.SortFlags = false

	// Manually add a help flag to override the default message. Cobra will
	// still implement its logic automatically.
	flags.BoolVarP(&commandsConfiguration.help, "help", "h", false, "Show help information")
}
