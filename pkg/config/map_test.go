package config

import (
	"reflect"
	"testing"
)

// TestMapInsertionOrder tests that key iteration follows insertion order and
// that overwrites keep their original position.
func TestMapInsertionOrder(t *testing.T) {
	// Create a map with interleaved insertions and an overwrite.
	m := NewMap()
	m.Set("b", 1)
	m.Set("a", 2)
	m.Set("c", 3)
	m.Set("a", 4)

	// Verify ordering.
	expected := []string{"b", "a", "c"}
	if !reflect.DeepEqual(m.Keys(), expected) {
		t.Error("key order mismatch:", m.Keys(), "!=", expected)
	}

	// Verify that the overwrite took effect.
	if value, ok := m.Get("a"); !ok {
		t.Error("overwritten key missing")
	} else if value != 4 {
		t.Error("overwritten key has stale value:", value)
	}
}

// TestMapPaths tests dotted path operations.
func TestMapPaths(t *testing.T) {
	// Create a nested value via a dotted path.
	m := NewMap()
	m.SetPath("optimizer.lr", 0.01)

	// Verify that the intermediate subtree was created.
	if m.Sub("optimizer") == nil {
		t.Fatal("intermediate subtree not created")
	}

	// Verify path lookup.
	if value, ok := m.GetPath("optimizer.lr"); !ok {
		t.Error("path lookup failed")
	} else if value != 0.01 {
		t.Error("path value mismatch:", value)
	}

	// Verify that lookups through leaves fail gracefully.
	if _, ok := m.GetPath("optimizer.lr.nested"); ok {
		t.Error("lookup through leaf value succeeded")
	}

	// Verify that assignment replaces intermediate leaves with subtrees.
	m.SetPath("optimizer.lr.schedule", "cosine")
	if value, ok := m.GetPath("optimizer.lr.schedule"); !ok || value != "cosine" {
		t.Error("leaf replacement failed")
	}
}

// TestMapClone tests that cloning copies subtrees.
func TestMapClone(t *testing.T) {
	// Create a map with a subtree and clone it.
	m := NewMap()
	m.SetPath("model.depth", 18)
	clone := m.Clone()

	// Mutate the clone and verify that the original is unaffected.
	clone.SetPath("model.depth", 50)
	if value, _ := m.GetPath("model.depth"); value != 18 {
		t.Error("clone mutation affected original:", value)
	}
}

// TestDecodeYAMLOrder tests that YAML decoding preserves document order and
// produces naturally typed values.
func TestDecodeYAMLOrder(t *testing.T) {
	// Decode a document whose keys are deliberately not sorted.
	m, err := DecodeYAML([]byte(`
zeta: 1
alpha:
  nested: true
beta: [1, 2]
gamma: "text"
`))
	if err != nil {
		t.Fatal("unable to decode YAML:", err)
	}

	// Verify ordering.
	expected := []string{"zeta", "alpha", "beta", "gamma"}
	if !reflect.DeepEqual(m.Keys(), expected) {
		t.Error("key order mismatch:", m.Keys(), "!=", expected)
	}

	// Verify types.
	if value, _ := m.Get("zeta"); value != 1 {
		t.Error("integer value mismatch:", value)
	}
	if value, _ := m.GetPath("alpha.nested"); value != true {
		t.Error("nested boolean mismatch:", value)
	}
	if value, _ := m.Get("beta"); !reflect.DeepEqual(value, []interface{}{1, 2}) {
		t.Error("sequence value mismatch:", value)
	}
}

// TestDecodeYAMLEmpty tests that empty and null documents decode to empty
// configurations.
func TestDecodeYAMLEmpty(t *testing.T) {
	for _, document := range []string{"", "null"} {
		if m, err := DecodeYAML([]byte(document)); err != nil {
			t.Error("unable to decode empty document:", err)
		} else if m.Len() != 0 {
			t.Error("empty document produced entries:", m.Keys())
		}
	}
}

// TestDecodeYAMLNonMapping tests that non-mapping documents are rejected.
func TestDecodeYAMLNonMapping(t *testing.T) {
	if _, err := DecodeYAML([]byte("[1, 2, 3]")); err == nil {
		t.Error("sequence document decoded as configuration")
	}
}

// TestDecodeJSONOrder tests that JSON decoding preserves object order and
// converts numbers sensibly.
func TestDecodeJSONOrder(t *testing.T) {
	// Decode a document whose keys are deliberately not sorted.
	m, err := DecodeJSON([]byte(`{"zeta": 1, "alpha": {"nested": 0.5}, "beta": [true, null]}`))
	if err != nil {
		t.Fatal("unable to decode JSON:", err)
	}

	// Verify ordering.
	expected := []string{"zeta", "alpha", "beta"}
	if !reflect.DeepEqual(m.Keys(), expected) {
		t.Error("key order mismatch:", m.Keys(), "!=", expected)
	}

	// Verify that integers decode as integers and floats as floats.
	if value, _ := m.Get("zeta"); value != 1 {
		t.Error("integer value mismatch:", value)
	}
	if value, _ := m.GetPath("alpha.nested"); value != 0.5 {
		t.Error("float value mismatch:", value)
	}

	// Verify array contents.
	if value, _ := m.Get("beta"); !reflect.DeepEqual(value, []interface{}{true, nil}) {
		t.Error("array value mismatch:", value)
	}
}

// TestDecodeJSONNonObject tests that non-object documents are rejected.
func TestDecodeJSONNonObject(t *testing.T) {
	if _, err := DecodeJSON([]byte(`[1, 2]`)); err == nil {
		t.Error("array document decoded as configuration")
	}
}

// TestMarshalYAMLRoundTrip tests that marshaling preserves insertion order
// through a round trip.
func TestMarshalYAMLRoundTrip(t *testing.T) {
	// Create a configuration with unsorted keys.
	m := NewMap()
	m.Set("zeta", 1)
	m.SetPath("alpha.nested", true)
	m.Set("beta", "text")

	// Marshal it.
	data, err := EncodeYAML(m)
	if err != nil {
		t.Fatal("unable to marshal configuration:", err)
	}

	// Decode it again and verify ordering.
	reloaded, err := DecodeYAML(data)
	if err != nil {
		t.Fatal("unable to decode marshaled configuration:", err)
	}
	if !reflect.DeepEqual(reloaded.Keys(), m.Keys()) {
		t.Error("key order not preserved through round trip:", reloaded.Keys())
	}
}
