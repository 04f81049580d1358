package main

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/spf13/cobra"

	"github.com/pmezard/go-difflib/difflib"

	"github.com/trialkit/trialkit/pkg/config"
)

// diffMain is the entry point for the diff command.
func diffMain(_ *cobra.Command, arguments []string) error {
	// Verify arguments.
	if len(arguments) != 2 {
		return errors.New("diff requires exactly two configuration files")
	}

	// Load both configurations.
	first, err := config.Load(arguments[0])
	if err != nil {
		return errors.Wrap(err, "unable to load first configuration")
	}
	second, err := config.Load(arguments[1])
	if err != nil {
		return errors.Wrap(err, "unable to load second configuration")
	}

	// Re-encode them so that the diff runs over a canonical representation
	// regardless of the on-disk format.
	firstEncoded, err := config.EncodeYAML(first)
	if err != nil {
		return errors.Wrap(err, "unable to encode first configuration")
	}
	secondEncoded, err := config.EncodeYAML(second)
	if err != nil {
		return errors.Wrap(err, "unable to encode second configuration")
	}

	// Compute the unified diff.
	diff, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(string(firstEncoded)),
		B:        difflib.SplitLines(string(secondEncoded)),
		FromFile: arguments[0],
		ToFile:   arguments[1],
		Context:  3,
	})
	if err != nil {
		return errors.Wrap(err, "unable to compute diff")
	}

	// Print the result.
	if diff == "" {
		fmt.Println("Configurations are identical")
	} else {
		fmt.Print(diff)
	}

	// Success.
	return nil
}

// diffCommand is the diff command.
var diffCommand = &cobra.Command{
	Use:          "diff <first> <second>",
	Short:        "Show differences between two configuration files",
	RunE:         diffMain,
	SilenceUsage: true,
}

// diffConfiguration stores configuration for the diff command.
var diffConfiguration struct {
	// help indicates whether or not to show help information and exit.
	help bool
}

func init() {
	// Grab a handle for the command line flags.
	flags := diffCommand.Flags()

	// Disable alphabetical sorting of flags in help output.
	flags.SortFlags = false

	// Manually add a help flag to override the default message. Cobra will
	// still implement its logic automatically.
	flags.BoolVarP(&diffConfiguration.help, "help", "h", false, "Show help information")
}
