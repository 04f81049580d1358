package display

import (
	"fmt"
	"strings"

	"github.com/trialkit/trialkit/pkg/experiment"
)

// HelpForCommand formats a command's name, documentation, and flags for
// display.
func HelpForCommand(command *experiment.Command) string {
	// Render the header.
	builder := &strings.Builder{}
	builder.WriteString(command.Name + "\n")

	// Render the documentation, indented under the header.
	doc := command.Doc
	if doc == "" {
		doc = "(no documentation available)"
	}
	for _, line := range strings.Split(strings.TrimRight(doc, "\n"), "\n") {
		builder.WriteString("    " + line + "\n")
	}

	// Render flag usage, if any.
	if command.Flags != nil && command.Flags.HasFlags() {
		builder.WriteString("\nFlags:\n")
		builder.WriteString(command.Flags.FlagUsages())
	}

	// Done.
	return builder.String()
}

// FormatNamedConfig renders a single named configuration variant at the
// specified indentation. Variants with single-line documentation append a dim
// comment; multi-line documentation renders as a dim triple-quoted block on
// the following line.
func FormatNamedConfig(indent int, path string, namedConfig *experiment.NamedConfig) string {
	// Render the path.
	result := strings.Repeat(" ", indent) + path

	// Append documentation, if any.
	if namedConfig == nil {
		return result
	} else if doc := namedConfig.Doc(); doc == "" {
		return result
	} else if strings.Contains(doc, "\n") {
		return result + docColor.Sprint("\n  \"\"\""+doc+"\"\"\"")
	} else {
		return result + docColor.Sprint("   # "+doc)
	}
}

// FormatNamedConfigs renders the full named-configuration listing. Variants
// owned by hidePath are listed by their bare names while all others keep
// their owner prefix.
func FormatNamedConfigs(records []experiment.NamedConfigRecord, hidePath string) string {
	lines := []string{fmt.Sprintf("Named Configurations (%s):", docColor.Sprint("doc"))}
	for _, record := range records {
		path := record.Path
		if hidePath != "" {
			path = strings.TrimPrefix(path, hidePath+".")
		}
		lines = append(lines, FormatNamedConfig(2, path, record.Config))
	}
	return strings.Join(lines, "\n") + "\n"
}
