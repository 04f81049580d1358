package display

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/fatih/color"

	"github.com/trialkit/trialkit/pkg/config"
)

var (
	// addedColor is the color used for added entries.
	addedColor = color.New(color.FgGreen)
	// modifiedColor is the color used for modified entries.
	modifiedColor = color.New(color.FgBlue)
	// typeChangedColor is the color used for entries whose values changed
	// type.
	typeChangedColor = color.New(color.FgRed)
	// docColor is the color used for documentation text.
	docColor = color.New(color.FgHiBlack)
)

// Entry is the common interface for configuration display entries.
type Entry interface {
	// label returns the entry's text without indentation or color.
	label() string
	// status returns the entry's change marks.
	status() (added, modified bool, typeChange *config.TypeChange)
	// documentation returns the entry's documentation text, if any.
	documentation() string
}

// ConfigEntry represents a leaf configuration value for display.
type ConfigEntry struct {
	// Name is the entry's key.
	Name string
	// Value is the entry's value.
	Value interface{}
	// Added indicates whether or not the entry was added.
	Added bool
	// Modified indicates whether or not the entry was modified.
	Modified bool
	// TypeChange is the entry's type change, if any.
	TypeChange *config.TypeChange
	// Doc is the entry's documentation text, if any.
	Doc string
}

// label implements Entry.label.
func (e ConfigEntry) label() string {
	return e.Name + " = " + formatValue(e.Value)
}

// status implements Entry.status.
func (e ConfigEntry) status() (bool, bool, *config.TypeChange) {
	return e.Added, e.Modified, e.TypeChange
}

// documentation implements Entry.documentation.
func (e ConfigEntry) documentation() string {
	return e.Doc
}

// PathEntry represents a configuration subtree marker for display. It carries
// no value of its own.
type PathEntry struct {
	// Name is the subtree's key.
	Name string
	// Added indicates whether or not the subtree was added.
	Added bool
	// Modified indicates whether or not the subtree or any of its
	// descendants was updated.
	Modified bool
	// TypeChange is the subtree's type change, if any.
	TypeChange *config.TypeChange
	// Doc is the subtree's documentation text, if any.
	Doc string
}

// label implements Entry.label.
func (e PathEntry) label() string {
	return e.Name + ":"
}

// status implements Entry.status.
func (e PathEntry) status() (bool, bool, *config.TypeChange) {
	return e.Added, e.Modified, e.TypeChange
}

// documentation implements Entry.documentation.
func (e PathEntry) documentation() string {
	return e.Doc
}

// entryColor returns the display color for an entry, or nil if the entry is
// uncolored. Type changes take precedence over additions, which take
// precedence over modifications.
func entryColor(entry Entry) *color.Color {
	added, modified, typeChange := entry.status()
	if typeChange != nil {
		return typeChangedColor
	} else if added {
		return addedColor
	} else if modified {
		return modifiedColor
	}
	return nil
}

// formatValue renders a leaf configuration value as a literal.
func formatValue(value interface{}) string {
	switch v := value.(type) {
	case nil:
		return "null"
	case string:
		return strconv.Quote(v)
	case []interface{}:
		parts := make([]string, 0, len(v))
		for _, item := range v {
			parts = append(parts, formatValue(item))
		}
		return "[" + strings.Join(parts, ", ") + "]"
	case *config.Map:
		if v.Len() == 0 {
			return "{}"
		}
		parts := make([]string, 0, v.Len())
		for _, key := range v.Keys() {
			item, _ := v.Get(key)
			parts = append(parts, key+": "+formatValue(item))
		}
		return "{" + strings.Join(parts, ", ") + "}"
	default:
		return fmt.Sprintf("%v", v)
	}
}
