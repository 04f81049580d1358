package display

import (
	"fmt"
	"strings"

	"github.com/trialkit/trialkit/pkg/config"
)

// FormatEntry renders a single display entry as a line of text, indented by
// the specified number of spaces and colorized according to its change marks.
func FormatEntry(indent int, entry Entry) string {
	// Render documentation leaves dim, wrapped in triple-quote markers. They
	// never carry change colors.
	if leaf, ok := entry.(ConfigEntry); ok && leaf.Name == config.DocKey {
		return strings.Repeat(" ", indent) + docColor.Sprintf(`"""%v"""`, leaf.Value)
	}

	// Render and colorize the entry.
	line := strings.Repeat(" ", indent) + entry.label()
	if entryColor := entryColor(entry); entryColor != nil {
		line = entryColor.Sprint(line)
	}

	// Append any documentation comment.
	if doc := entry.documentation(); doc != "" {
		line += docColor.Sprint("   # " + doc)
	}

	// Done.
	return line
}

// FormatConfig renders a complete colorized configuration listing with a
// header line describing the color legend. Entries are indented two spaces
// per nesting level.
func FormatConfig(configuration *config.Map, summary *config.Summary) string {
	lines := []string{configHeader()}
	for _, marked := range IterateMarked(configuration, summary) {
		depth := strings.Count(marked.Path, ".") + 1
		lines = append(lines, FormatEntry(2*depth, marked.Entry))
	}
	return strings.Join(lines, "\n") + "\n"
}

// configHeader renders the configuration listing header with its color
// legend.
func configHeader() string {
	return fmt.Sprintf("Configuration (%s, %s, %s, %s):",
		modifiedColor.Sprint("modified"),
		addedColor.Sprint("added"),
		typeChangedColor.Sprint("typechanged"),
		docColor.Sprint("doc"),
	)
}
