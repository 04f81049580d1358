package encoding

import (
	"os"
	"path/filepath"
	"testing"
)

// testExperimentYAML is a test structure to use for encoding tests using YAML.
type testExperimentYAML struct {
	Experiment struct {
		Name string `yaml:"name"`
		Seed uint   `yaml:"seed"`
	} `yaml:"experiment"`
}

const (
	// testExperimentYAMLString is the YAML-encoded form of the YAML test data.
	testExperimentYAMLString = `
experiment:
  name: "baseline"
  seed: 42
`
	// testExperimentYAMLName is the YAML test experiment name.
	testExperimentYAMLName = "baseline"
	// testExperimentYAMLSeed is the YAML test experiment seed.
	testExperimentYAMLSeed = 42
)

// TestLoadAndUnmarshalYAML tests that loading and unmarshaling YAML data
// succeeds.
func TestLoadAndUnmarshalYAML(t *testing.T) {
	// Write the test YAML to a temporary file and defer its cleanup.
	file, err := os.CreateTemp("", "trialkit_encoding")
	if err != nil {
		t.Fatal("unable to create temporary file:", err)
	} else if _, err = file.Write([]byte(testExperimentYAMLString)); err != nil {
		t.Fatal("unable to write data to temporary file:", err)
	} else if err = file.Close(); err != nil {
		t.Fatal("unable to close temporary file:", err)
	}
	defer os.Remove(file.Name())

	// Attempt to load and unmarshal.
	value := &testExperimentYAML{}
	if err := LoadAndUnmarshalYAML(file.Name(), value); err != nil {
		t.Fatal("LoadAndUnmarshalYAML failed:", err)
	}

	// Verify test values.
	if value.Experiment.Name != testExperimentYAMLName {
		t.Error("test experiment name mismatch:", value.Experiment.Name, "!=", testExperimentYAMLName)
	}
	if value.Experiment.Seed != testExperimentYAMLSeed {
		t.Error("test experiment seed mismatch:", value.Experiment.Seed, "!=", testExperimentYAMLSeed)
	}
}

// TestLoadAndUnmarshalYAMLStrict tests that unknown keys are rejected.
func TestLoadAndUnmarshalYAMLStrict(t *testing.T) {
	// Write test YAML with an unknown key to a temporary file and defer its
	// cleanup.
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("experiment:\n  unknown: true\n"), 0600); err != nil {
		t.Fatal("unable to write temporary file:", err)
	}

	// Attempt to load and unmarshal, watching for failure.
	value := &testExperimentYAML{}
	if err := LoadAndUnmarshalYAML(path, value); err == nil {
		t.Error("strict unmarshaling succeeded with unknown key")
	}
}

// TestMarshalAndSaveYAML tests that marshaling and saving YAML data succeeds
// and round-trips.
func TestMarshalAndSaveYAML(t *testing.T) {
	// Compute a target path.
	path := filepath.Join(t.TempDir(), "config.yaml")

	// Create a test value.
	value := &testExperimentYAML{}
	value.Experiment.Name = testExperimentYAMLName
	value.Experiment.Seed = testExperimentYAMLSeed

	// Attempt to marshal and save.
	if err := MarshalAndSaveYAML(path, value); err != nil {
		t.Fatal("MarshalAndSaveYAML failed:", err)
	}

	// Reload and verify.
	reloaded := &testExperimentYAML{}
	if err := LoadAndUnmarshalYAML(path, reloaded); err != nil {
		t.Fatal("unable to reload saved data:", err)
	} else if *reloaded != *value {
		t.Error("reloaded value does not match original")
	}
}
