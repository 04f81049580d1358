package config

import (
	"strings"

	"github.com/pkg/errors"

	"gopkg.in/yaml.v3"
)

// Assignment represents a single dotted-path configuration update, e.g. the
// parsed form of "optimizer.lr=0.01".
type Assignment struct {
	// Path is the dotted path of the value being assigned.
	Path string
	// Value is the assigned value.
	Value interface{}
}

// ParseAssignment parses an update of the form "path=value". The value is
// parsed as a YAML scalar (or flow collection) so that numbers, booleans, and
// lists acquire their natural types; values that fail to parse are treated as
// raw strings.
func ParseAssignment(specification string) (Assignment, error) {
	// Split the specification at the first '='.
	index := strings.Index(specification, "=")
	if index < 0 {
		return Assignment{}, errors.Errorf("invalid assignment (missing '='): %s", specification)
	}
	path, raw := specification[:index], specification[index+1:]

	// Validate the path.
	if err := validatePath(path); err != nil {
		return Assignment{}, err
	}

	// Parse the value.
	return Assignment{Path: path, Value: parseValue(raw)}, nil
}

// ParseAssignments parses a sequence of assignment specifications.
func ParseAssignments(specifications []string) ([]Assignment, error) {
	assignments := make([]Assignment, 0, len(specifications))
	for _, specification := range specifications {
		assignment, err := ParseAssignment(specification)
		if err != nil {
			return nil, err
		}
		assignments = append(assignments, assignment)
	}
	return assignments, nil
}

// Apply applies assignments to the configuration in order.
func Apply(configuration *Map, assignments []Assignment) {
	for _, assignment := range assignments {
		configuration.SetPath(assignment.Path, assignment.Value)
	}
}

// validatePath verifies that a dotted path is well-formed.
func validatePath(path string) error {
	if path == "" {
		return errors.New("empty configuration path")
	}
	for _, key := range strings.Split(path, ".") {
		if key == "" {
			return errors.Errorf("invalid configuration path: %s", path)
		}
	}
	return nil
}

// parseValue parses a raw assignment value using YAML scalar rules, preserving
// mapping order for flow mappings. Values that fail to parse are returned as
// raw strings.
func parseValue(raw string) interface{} {
	var node yaml.Node
	if err := yaml.Unmarshal([]byte(raw), &node); err != nil {
		return raw
	} else if len(node.Content) == 0 {
		return nil
	}
	value, err := decodeYAMLValue(node.Content[0])
	if err != nil {
		return raw
	}
	return value
}
