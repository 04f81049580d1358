package config

import (
	"strings"

	"github.com/pkg/errors"

	"gopkg.in/yaml.v3"
)

// DocKey is the reserved key under which a configuration subtree stores its
// documentation text.
const DocKey = "__doc__"

// Map is an insertion-ordered nested mapping of configuration values. Values
// are either leaves (scalars and slices) or nested *Map subtrees. Iteration
// over a Map's keys always occurs in insertion order. The zero value of Map is
// not usable; maps should be created with NewMap or by decoding.
type Map struct {
	// keys are the map's keys in insertion order.
	keys []string
	// values maps keys to their values.
	values map[string]interface{}
}

// NewMap creates a new empty configuration map.
func NewMap() *Map {
	return &Map{values: make(map[string]interface{})}
}

// Len returns the number of entries in the map.
func (m *Map) Len() int {
	return len(m.keys)
}

// Keys returns the map's keys in insertion order. The returned slice must not
// be modified.
func (m *Map) Keys() []string {
	return m.keys
}

// Get looks up the value for the specified key.
func (m *Map) Get(key string) (interface{}, bool) {
	value, ok := m.values[key]
	return value, ok
}

// Set sets the value for the specified key. A key that already exists keeps
// its original position.
func (m *Map) Set(key string, value interface{}) {
	if _, ok := m.values[key]; !ok {
		m.keys = append(m.keys, key)
	}
	m.values[key] = value
}

// Sub returns the subtree stored under the specified key, or nil if the key is
// absent or holds a leaf value.
func (m *Map) Sub(key string) *Map {
	if sub, ok := m.values[key].(*Map); ok {
		return sub
	}
	return nil
}

// GetPath looks up the value for a dotted path.
func (m *Map) GetPath(path string) (interface{}, bool) {
	keys := strings.Split(path, ".")
	current := m
	for _, key := range keys[:len(keys)-1] {
		if current = current.Sub(key); current == nil {
			return nil, false
		}
	}
	return current.Get(keys[len(keys)-1])
}

// SetPath sets the value for a dotted path, creating intermediate subtrees as
// necessary. Intermediate leaf values are replaced by subtrees.
func (m *Map) SetPath(path string, value interface{}) {
	keys := strings.Split(path, ".")
	current := m
	for _, key := range keys[:len(keys)-1] {
		sub := current.Sub(key)
		if sub == nil {
			sub = NewMap()
			current.Set(key, sub)
		}
		current = sub
	}
	current.Set(keys[len(keys)-1], value)
}

// Clone creates a deep copy of the map. Subtrees are copied recursively while
// leaf values are shared.
func (m *Map) Clone() *Map {
	result := NewMap()
	for _, key := range m.keys {
		if sub, ok := m.values[key].(*Map); ok {
			result.Set(key, sub.Clone())
		} else {
			result.Set(key, m.values[key])
		}
	}
	return result
}

// UnmarshalYAML implements yaml.Unmarshaler.UnmarshalYAML using node-level
// decoding so that document order is preserved.
func (m *Map) UnmarshalYAML(value *yaml.Node) error {
	// Treat explicit null documents as empty configurations.
	if value.Kind == yaml.ScalarNode && value.Tag == "!!null" {
		return nil
	}

	// Verify that we're decoding a mapping.
	if value.Kind != yaml.MappingNode {
		return errors.New("configuration must be a mapping")
	}

	// Ensure that the value map is initialized, since decoding may target a
	// zero-value Map.
	if m.values == nil {
		m.values = make(map[string]interface{})
	}

	// Perform the decoding.
	return m.decodeMapping(value)
}

// decodeMapping decodes the key/value pairs of a YAML mapping node into the
// map in document order.
func (m *Map) decodeMapping(node *yaml.Node) error {
	for i := 0; i+1 < len(node.Content); i += 2 {
		// Decode the key.
		var key string
		if err := node.Content[i].Decode(&key); err != nil {
			return errors.Wrap(err, "unable to decode mapping key")
		}

		// Decode the value.
		value, err := decodeYAMLValue(node.Content[i+1])
		if err != nil {
			return err
		}

		// Record the entry.
		m.Set(key, value)
	}
	return nil
}

// decodeYAMLValue decodes a single YAML node, recursing into mappings and
// sequences so that nested mappings become ordered Maps.
func decodeYAMLValue(node *yaml.Node) (interface{}, error) {
	switch node.Kind {
	case yaml.MappingNode:
		sub := NewMap()
		if err := sub.decodeMapping(node); err != nil {
			return nil, err
		}
		return sub, nil
	case yaml.SequenceNode:
		var values []interface{}
		for _, item := range node.Content {
			value, err := decodeYAMLValue(item)
			if err != nil {
				return nil, err
			}
			values = append(values, value)
		}
		return values, nil
	case yaml.AliasNode:
		return decodeYAMLValue(node.Alias)
	default:
		var value interface{}
		if err := node.Decode(&value); err != nil {
			return nil, errors.Wrap(err, "unable to decode value")
		}
		return value, nil
	}
}

// MarshalYAML implements yaml.Marshaler.MarshalYAML, emitting entries in
// insertion order.
func (m *Map) MarshalYAML() (interface{}, error) {
	node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	for _, key := range m.keys {
		keyNode := &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: key}
		valueNode := &yaml.Node{}
		if err := valueNode.Encode(m.values[key]); err != nil {
			return nil, errors.Wrap(err, "unable to encode value")
		}
		node.Content = append(node.Content, keyNode, valueNode)
	}
	return node, nil
}

// Merge overlays the source map onto the destination map. Matched subtrees
// merge recursively while all other values are overwritten. New keys append
// in the source's insertion order.
func Merge(destination, source *Map) {
	for _, key := range source.Keys() {
		value, _ := source.Get(key)
		if destinationSub, sourceSub := destination.Sub(key), source.Sub(key); destinationSub != nil && sourceSub != nil {
			Merge(destinationSub, sourceSub)
		} else if sub, ok := value.(*Map); ok {
			destination.Set(key, sub.Clone())
		} else {
			destination.Set(key, value)
		}
	}
}

// joinPath joins a path prefix and key with a dot, handling empty prefixes.
func joinPath(prefix, key string) string {
	if prefix == "" {
		return key
	}
	return prefix + "." + key
}
