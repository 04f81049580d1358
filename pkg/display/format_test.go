package display

import (
	"strings"
	"testing"

	"github.com/fatih/color"

	"github.com/trialkit/trialkit/pkg/config"
)

const (
	// ansiGreen is the escape sequence for green text.
	ansiGreen = "\x1b[32m"
	// ansiBlue is the escape sequence for blue text.
	ansiBlue = "\x1b[34m"
	// ansiRed is the escape sequence for red text.
	ansiRed = "\x1b[31m"
	// ansiDim is the escape sequence for dim (bright black) text.
	ansiDim = "\x1b[90m"
	// ansiReset is the escape sequence that resets attributes.
	ansiReset = "\x1b[0m"
)

// setColor forces colorized output on or off for the duration of a test.
func setColor(t *testing.T, enabled bool) {
	t.Helper()
	previous := color.NoColor
	color.NoColor = !enabled
	t.Cleanup(func() {
		color.NoColor = previous
	})
}

// TestFormatEntry tests uncolored entry rendering for a variety of value
// types.
func TestFormatEntry(t *testing.T) {
	// Disable colorization to focus on content.
	setColor(t, false)

	// Set up test cases.
	tests := []struct {
		entry    Entry
		expected string
	}{
		{ConfigEntry{Name: "a", Value: 0}, "a = 0"},
		{ConfigEntry{Name: "foo", Value: "bar"}, `foo = "bar"`},
		{ConfigEntry{Name: "b", Value: []interface{}{0, 1}}, "b = [0, 1]"},
		{ConfigEntry{Name: "c", Value: true}, "c = true"},
		{ConfigEntry{Name: "d", Value: 0.5}, "d = 0.5"},
		{ConfigEntry{Name: "e", Value: config.NewMap()}, "e = {}"},
		{ConfigEntry{Name: "n", Value: nil}, "n = null"},
		{PathEntry{Name: "f"}, "f:"},
		{ConfigEntry{Name: config.DocKey, Value: "multiline\ndocstring"}, "\"\"\"multiline\ndocstring\"\"\""},
	}

	// Process test cases.
	for _, test := range tests {
		if formatted := FormatEntry(0, test.entry); formatted != test.expected {
			t.Errorf("entry format mismatch: %q != %q", formatted, test.expected)
		}
	}
}

// TestFormatEntryIndent tests that indentation is applied as a space count.
func TestFormatEntryIndent(t *testing.T) {
	// Disable colorization to focus on content.
	setColor(t, false)

	// Verify indentation.
	if formatted := FormatEntry(4, ConfigEntry{Name: "a", Value: 0}); formatted != "    a = 0" {
		t.Error("indentation mismatch:", formatted)
	}
}

// TestFormatEntryColors tests the color precedence rule: type changes win
// over additions, which win over modifications.
func TestFormatEntryColors(t *testing.T) {
	// Enable colorization.
	setColor(t, true)

	// Set up test cases covering both entry kinds.
	change := &config.TypeChange{Old: "bool", New: "int"}
	tests := []struct {
		entry Entry
		color string
	}{
		{ConfigEntry{Name: "a", Value: 1, Added: true}, ansiGreen},
		{ConfigEntry{Name: "b", Value: 2, Modified: true}, ansiBlue},
		{ConfigEntry{Name: "c", Value: 3, TypeChange: change}, ansiRed},
		{ConfigEntry{Name: "d", Value: 4, Added: true, Modified: true}, ansiGreen},
		{ConfigEntry{Name: "e", Value: 5, Added: true, TypeChange: change}, ansiRed},
		{ConfigEntry{Name: "f", Value: 6, Modified: true, TypeChange: change}, ansiRed},
		{ConfigEntry{Name: "g", Value: 7, Added: true, Modified: true, TypeChange: change}, ansiRed},
		{PathEntry{Name: "a", Added: true}, ansiGreen},
		{PathEntry{Name: "b", Modified: true}, ansiBlue},
		{PathEntry{Name: "c", TypeChange: change}, ansiRed},
		{PathEntry{Name: "d", Added: true, Modified: true}, ansiGreen},
		{PathEntry{Name: "e", Added: true, TypeChange: change}, ansiRed},
		{PathEntry{Name: "f", Modified: true, TypeChange: change}, ansiRed},
		{PathEntry{Name: "g", Added: true, Modified: true, TypeChange: change}, ansiRed},
	}

	// Process test cases.
	for _, test := range tests {
		formatted := FormatEntry(0, test.entry)
		if !strings.HasPrefix(formatted, test.color) {
			t.Errorf("color prefix mismatch for %#v: %q", test.entry, formatted)
		}
		if !strings.HasSuffix(formatted, ansiReset) {
			t.Errorf("missing reset suffix for %#v: %q", test.entry, formatted)
		}
	}
}

// TestFormatEntryUncolored tests that unchanged entries carry no escape
// sequences even when colorization is enabled.
func TestFormatEntryUncolored(t *testing.T) {
	// Enable colorization.
	setColor(t, true)

	// Verify the absence of escape sequences.
	if formatted := FormatEntry(0, ConfigEntry{Name: "a", Value: 0}); strings.Contains(formatted, "\x1b") {
		t.Error("unchanged entry carries escape sequences:", formatted)
	}
}

// TestFormatEntryDocColored tests that documentation leaves render dim.
func TestFormatEntryDocColored(t *testing.T) {
	// Enable colorization.
	setColor(t, true)

	// Verify rendering.
	formatted := FormatEntry(0, ConfigEntry{Name: config.DocKey, Value: "docstring"})
	if !strings.HasPrefix(formatted, ansiDim) || !strings.HasSuffix(formatted, ansiReset) {
		t.Error("documentation leaf not rendered dim:", formatted)
	}
}

// TestFormatEntryDocComment tests that entry documentation renders as a dim
// trailing comment.
func TestFormatEntryDocComment(t *testing.T) {
	// Disable colorization to focus on content.
	setColor(t, false)

	// Verify rendering.
	formatted := FormatEntry(0, ConfigEntry{Name: "a", Value: 0, Doc: "random seed"})
	if formatted != "a = 0   # random seed" {
		t.Error("documentation comment mismatch:", formatted)
	}
}

// TestFormatConfig tests the full configuration listing.
func TestFormatConfig(t *testing.T) {
	// Disable colorization to focus on content.
	setColor(t, false)

	// Render the listing.
	lines := strings.Split(FormatConfig(testConfig(), nil), "\n")

	// Verify the header and per-line content.
	if !strings.HasPrefix(lines[0], "Configuration") {
		t.Error("header mismatch:", lines[0])
	}
	expected := []string{
		"  a = 0",
		"  b = {}",
		"  c:",
		"    cA = 3",
		"    cB = 4",
		"    cC:",
		"      cC1 = 6",
		"  d:",
		"    dA = 8",
	}
	for e, line := range expected {
		if lines[e+1] != line {
			t.Errorf("line %d mismatch: %q != %q", e+1, lines[e+1], line)
		}
	}
}
