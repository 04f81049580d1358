package config

import (
	"reflect"
	"sort"
	"strings"
)

// TypeChange records a change in the dynamic type of a configuration value.
type TypeChange struct {
	// Old is the display name of the original type.
	Old string
	// New is the display name of the replacement type.
	New string
}

// Summary records how a resolved configuration differs from its baseline: the
// dotted paths that were added, those that were modified, and those whose
// values changed type. A Summary is treated as an immutable snapshot once
// rendering begins. Like loggers, a nil Summary is valid and reports no
// changes.
type Summary struct {
	// added is the set of added paths.
	added map[string]bool
	// modified is the set of modified paths.
	modified map[string]bool
	// typeChanged maps paths to their type changes.
	typeChanged map[string]TypeChange
	// docs maps paths to documentation text.
	docs map[string]string
}

// NewSummary creates a new empty summary.
func NewSummary() *Summary {
	return &Summary{
		added:       make(map[string]bool),
		modified:    make(map[string]bool),
		typeChanged: make(map[string]TypeChange),
		docs:        make(map[string]string),
	}
}

// MarkAdded records the specified path as added.
func (s *Summary) MarkAdded(path string) {
	s.added[path] = true
}

// MarkModified records the specified path as modified.
func (s *Summary) MarkModified(path string) {
	s.modified[path] = true
}

// MarkTypeChanged records a type change for the specified path.
func (s *Summary) MarkTypeChanged(path, oldType, newType string) {
	s.typeChanged[path] = TypeChange{Old: oldType, New: newType}
}

// SetDoc records documentation text for the specified path.
func (s *Summary) SetDoc(path, doc string) {
	s.docs[path] = doc
}

// Added indicates whether or not the specified path was added.
func (s *Summary) Added(path string) bool {
	return s != nil && s.added[path]
}

// Modified indicates whether or not the specified path was modified.
func (s *Summary) Modified(path string) bool {
	return s != nil && s.modified[path]
}

// TypeChange returns the type change for the specified path, if any.
func (s *Summary) TypeChange(path string) *TypeChange {
	if s == nil {
		return nil
	}
	if change, ok := s.typeChanged[path]; ok {
		return &change
	}
	return nil
}

// TypeChangedPaths returns the paths whose values changed type, sorted for
// deterministic reporting.
func (s *Summary) TypeChangedPaths() []string {
	if s == nil {
		return nil
	}
	paths := make([]string, 0, len(s.typeChanged))
	for path := range s.typeChanged {
		paths = append(paths, path)
	}
	sort.Strings(paths)
	return paths
}

// Doc returns the documentation text for the specified path, if any.
func (s *Summary) Doc(path string) string {
	if s == nil {
		return ""
	}
	return s.docs[path]
}

// HasUpdateBelow indicates whether or not any strict descendant of the
// specified path was added, modified, or type-changed.
func (s *Summary) HasUpdateBelow(path string) bool {
	if s == nil {
		return false
	}
	prefix := path + "."
	for p := range s.added {
		if strings.HasPrefix(p, prefix) {
			return true
		}
	}
	for p := range s.modified {
		if strings.HasPrefix(p, prefix) {
			return true
		}
	}
	for p := range s.typeChanged {
		if strings.HasPrefix(p, prefix) {
			return true
		}
	}
	return false
}

// Diff computes a summary describing how the updated configuration differs
// from its baseline. Keys absent from the baseline are recorded as added
// (recursively for subtrees), values of identical type with different
// contents are recorded as modified, and values whose dynamic type differs
// are recorded as type changes.
func Diff(base, updated *Map) *Summary {
	summary := NewSummary()
	diff(base, updated, "", summary)
	return summary
}

// diff performs the recursive portion of Diff.
func diff(base, updated *Map, prefix string, summary *Summary) {
	for _, key := range updated.Keys() {
		path := joinPath(prefix, key)
		updatedValue, _ := updated.Get(key)

		// Handle keys missing from the baseline.
		baseValue, ok := base.Get(key)
		if !ok {
			markAdded(summary, path, updatedValue)
			continue
		}

		// Recurse into matched subtrees.
		baseSub, baseIsMap := baseValue.(*Map)
		updatedSub, updatedIsMap := updatedValue.(*Map)
		if baseIsMap && updatedIsMap {
			diff(baseSub, updatedSub, path, summary)
			continue
		}

		// Compare leaf values, watching for type changes first.
		oldType, newType := typeName(baseValue), typeName(updatedValue)
		if oldType != newType {
			summary.MarkTypeChanged(path, oldType, newType)
		} else if !reflect.DeepEqual(baseValue, updatedValue) {
			summary.MarkModified(path)
		}
	}
}

// markAdded records a path and all of its descendants as added.
func markAdded(summary *Summary, path string, value interface{}) {
	summary.MarkAdded(path)
	if sub, ok := value.(*Map); ok {
		for _, key := range sub.Keys() {
			subValue, _ := sub.Get(key)
			markAdded(summary, joinPath(path, key), subValue)
		}
	}
}

// typeName returns a display name for the dynamic type of a configuration
// value.
func typeName(value interface{}) string {
	switch value.(type) {
	case nil:
		return "none"
	case *Map:
		return "map"
	case []interface{}:
		return "list"
	default:
		return reflect.TypeOf(value).String()
	}
}
