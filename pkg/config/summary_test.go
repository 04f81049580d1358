package config

import (
	"testing"
)

// TestSummaryNil tests that a nil summary is valid and reports no changes.
func TestSummaryNil(t *testing.T) {
	var summary *Summary
	if summary.Added("a") {
		t.Error("nil summary reported added path")
	}
	if summary.Modified("a") {
		t.Error("nil summary reported modified path")
	}
	if summary.TypeChange("a") != nil {
		t.Error("nil summary reported type change")
	}
	if summary.Doc("a") != "" {
		t.Error("nil summary reported documentation")
	}
	if summary.HasUpdateBelow("a") {
		t.Error("nil summary reported descendant update")
	}
}

// TestSummaryHasUpdateBelow tests descendant update detection.
func TestSummaryHasUpdateBelow(t *testing.T) {
	// Create a summary with marks at various depths.
	summary := NewSummary()
	summary.MarkAdded("c.cB")
	summary.MarkModified("c.cC.cC1")
	summary.MarkTypeChanged("d.dA", "float64", "int")

	// Verify detection for ancestors.
	for _, path := range []string{"c", "c.cC", "d"} {
		if !summary.HasUpdateBelow(path) {
			t.Error("descendant update not detected below:", path)
		}
	}

	// Verify that marked paths themselves don't count as their own
	// descendants and that siblings are unaffected.
	if summary.HasUpdateBelow("c.cB") {
		t.Error("path counted as its own descendant")
	}
	if summary.HasUpdateBelow("b") {
		t.Error("descendant update detected below unrelated path")
	}

	// Verify that prefix matching respects key boundaries.
	if summary.HasUpdateBelow("c.c") {
		t.Error("descendant update detected below partial key")
	}
}

// TestDiffAdded tests that added keys are detected, recursively for subtrees.
func TestSummaryTypeChangedPaths(t *testing.T) {
	// Verify nil behavior.
	var nilSummary *Summary
	if paths := nilSummary.TypeChangedPaths(); paths != nil {
		t.Error("nil summary reported type changes:", paths)
	}

	// Verify sorting.
	summary := NewSummary()
	summary.MarkTypeChanged("b", "bool", "int")
	summary.MarkTypeChanged("a.x", "int", "string")
	paths := summary.TypeChangedPaths()
	if len(paths) != 2 || paths[0] != "a.x" || paths[1] != "b" {
		t.Error("type-changed paths mismatch:", paths)
	}
}

func TestDiffAdded(t *testing.T) {
	// Create a baseline and an updated configuration with an added subtree.
	base := NewMap()
	base.Set("a", 0)
	updated := base.Clone()
	updated.SetPath("c.cA", 3)

	// Compute the diff.
	summary := Diff(base, updated)

	// Verify that the subtree and its leaf are both recorded as added.
	if !summary.Added("c") {
		t.Error("added subtree not detected")
	}
	if !summary.Added("c.cA") {
		t.Error("added nested leaf not detected")
	}
	if summary.Added("a") {
		t.Error("unchanged key recorded as added")
	}
}

// TestDiffModified tests that value changes of identical type are detected as
// modifications.
func TestDiffModified(t *testing.T) {
	// Create a baseline and a modified copy.
	base := NewMap()
	base.Set("a", 0)
	base.SetPath("c.cA", 3)
	updated := base.Clone()
	updated.SetPath("c.cA", 4)

	// Compute the diff.
	summary := Diff(base, updated)

	// Verify detection.
	if !summary.Modified("c.cA") {
		t.Error("modified nested leaf not detected")
	}
	if summary.Modified("a") {
		t.Error("unchanged key recorded as modified")
	}
	if summary.Modified("c") {
		t.Error("subtree recorded as modified directly")
	}
}

// TestDiffTypeChanged tests that changes of dynamic type are detected with
// their old and new type names.
func TestDiffTypeChanged(t *testing.T) {
	// Create a baseline and an update that changes a boolean to an integer.
	base := NewMap()
	base.Set("a", false)
	updated := NewMap()
	updated.Set("a", 0)

	// Compute the diff.
	summary := Diff(base, updated)

	// Verify detection.
	change := summary.TypeChange("a")
	if change == nil {
		t.Fatal("type change not detected")
	}
	if change.Old != "bool" || change.New != "int" {
		t.Error("type change names mismatch:", change.Old, "->", change.New)
	}

	// Verify that a type change isn't also recorded as a modification.
	if summary.Modified("a") {
		t.Error("type change recorded as modification")
	}
}

// TestDiffSubtreeReplaced tests that replacing a subtree with a leaf is
// recorded as a type change using display type names.
func TestDiffSubtreeReplaced(t *testing.T) {
	// Create a baseline with a subtree and an update that flattens it.
	base := NewMap()
	base.SetPath("c.cA", 3)
	updated := NewMap()
	updated.Set("c", 7)

	// Compute the diff.
	summary := Diff(base, updated)

	// Verify detection.
	change := summary.TypeChange("c")
	if change == nil {
		t.Fatal("subtree replacement not detected")
	}
	if change.Old != "map" || change.New != "int" {
		t.Error("type change names mismatch:", change.Old, "->", change.New)
	}
}
