package identifier

import (
	"strings"

	"github.com/trialkit/trialkit/pkg/encoding"
	"github.com/trialkit/trialkit/pkg/random"
)

const (
	// PrefixExperiment is the prefix used for experiment identifiers.
	PrefixExperiment = "exp_"
	// PrefixRun is the prefix used for run identifiers.
	PrefixRun = "run_"
)

// New generates a new collision-resistant identifier with the specified
// prefix.
func New(prefix string) (string, error) {
	// Create the random value.
	value, err := random.New(random.CollisionResistantLength)
	if err != nil {
		return "", err
	}

	// Encode the random value.
	return prefix + encoding.EncodeBase62(value), nil
}

// IsValid checks whether or not a string is a valid identifier with the
// specified prefix.
func IsValid(prefix, value string) bool {
	// Verify the prefix.
	if !strings.HasPrefix(value, prefix) {
		return false
	}

	// Verify that the remainder decodes as Base62 and has the expected length.
	decoded, err := encoding.DecodeBase62(value[len(prefix):])
	if err != nil {
		return false
	}
	return len(decoded) == random.CollisionResistantLength
}
