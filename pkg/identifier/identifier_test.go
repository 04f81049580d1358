package identifier

import (
	"strings"
	"testing"
)

// TestNew tests that identifier generation succeeds and produces identifiers
// with the expected prefix.
func TestNew(t *testing.T) {
	if value, err := New(PrefixRun); err != nil {
		t.Fatal("unable to create identifier:", err)
	} else if !strings.HasPrefix(value, PrefixRun) {
		t.Error("identifier does not have expected prefix:", value)
	} else if !IsValid(PrefixRun, value) {
		t.Error("identifier failed validation:", value)
	}
}

// TestNewUnique tests that identifier generation doesn't collide across
// invocations.
func TestNewUnique(t *testing.T) {
	first, err := New(PrefixExperiment)
	if err != nil {
		t.Fatal("unable to create first identifier:", err)
	}
	second, err := New(PrefixExperiment)
	if err != nil {
		t.Fatal("unable to create second identifier:", err)
	}
	if first == second {
		t.Error("identifiers collided:", first)
	}
}

// TestIsValidRejections tests that validation rejects malformed identifiers.
func TestIsValidRejections(t *testing.T) {
	if IsValid(PrefixRun, "exp_abc") {
		t.Error("validation accepted identifier with wrong prefix")
	}
	if IsValid(PrefixRun, "run_!!!") {
		t.Error("validation accepted identifier with invalid encoding")
	}
	if IsValid(PrefixRun, "run_abc") {
		t.Error("validation accepted identifier with truncated payload")
	}
}
