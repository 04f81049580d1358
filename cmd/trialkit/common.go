package main

import (
	"strings"

	"github.com/trialkit/trialkit/pkg/config"
	"github.com/trialkit/trialkit/pkg/project"
)

// loadProject loads the project specified by the global --project flag.
func loadProject() (*project.Project, error) {
	return project.Load(rootConfiguration.project)
}

// splitConfigArguments splits command line arguments into named configuration
// variant references and configuration assignments. Arguments containing '='
// parse as assignments and everything else is treated as a variant reference.
func splitConfigArguments(arguments []string) ([]string, []config.Assignment, error) {
	var namedConfigs []string
	var assignments []config.Assignment
	for _, argument := range arguments {
		if strings.ContainsRune(argument, '=') {
			assignment, err := config.ParseAssignment(argument)
			if err != nil {
				return nil, nil, err
			}
			assignments = append(assignments, assignment)
		} else {
			namedConfigs = append(namedConfigs, argument)
		}
	}
	return namedConfigs, assignments, nil
}
