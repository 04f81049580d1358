package display

import (
	"github.com/trialkit/trialkit/pkg/config"
)

// MarkedEntry pairs a display entry with its dotted path.
type MarkedEntry struct {
	// Path is the entry's dotted path.
	Path string
	// Entry is the entry itself.
	Entry Entry
}

// IterateMarked walks a configuration tree depth-first and returns a display
// entry for every key, in insertion order with parents before children. Each
// entry is annotated with change marks from the summary, which may be nil.
// Non-empty subtrees yield path entries; everything else (including empty
// subtrees) yields value entries. A path entry is marked modified when any of
// its strict descendants was updated.
func IterateMarked(configuration *config.Map, summary *config.Summary) []MarkedEntry {
	var entries []MarkedEntry
	iterateMarked(configuration, "", summary, &entries)
	return entries
}

// iterateMarked performs the recursive portion of IterateMarked.
func iterateMarked(configuration *config.Map, prefix string, summary *config.Summary, entries *[]MarkedEntry) {
	for _, key := range configuration.Keys() {
		// Compute the dotted path.
		path := key
		if prefix != "" {
			path = prefix + "." + key
		}

		// Look up change marks.
		added := summary.Added(path)
		modified := summary.Modified(path)
		typeChange := summary.TypeChange(path)
		doc := summary.Doc(path)

		// Yield the entry, recursing into non-empty subtrees.
		value, _ := configuration.Get(key)
		if sub, ok := value.(*config.Map); ok && sub.Len() > 0 {
			*entries = append(*entries, MarkedEntry{path, PathEntry{
				Name:       key,
				Added:      added,
				Modified:   modified || summary.HasUpdateBelow(path),
				TypeChange: typeChange,
				Doc:        doc,
			}})
			iterateMarked(sub, path, summary, entries)
		} else {
			*entries = append(*entries, MarkedEntry{path, ConfigEntry{
				Name:       key,
				Value:      value,
				Added:      added,
				Modified:   modified,
				TypeChange: typeChange,
				Doc:        doc,
			}})
		}
	}
}
