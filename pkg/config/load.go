package config

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"sort"

	"github.com/pkg/errors"

	"github.com/joho/godotenv"

	"gopkg.in/yaml.v3"
)

// Load loads a configuration tree from the file at the specified path, with
// the format determined by the file extension (.yaml, .yml, or .json).
func Load(path string) (*Map, error) {
	// Read the file contents.
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "unable to read configuration file")
	}

	// Dispatch decoding based on the extension.
	switch extension := filepath.Ext(path); extension {
	case ".yaml", ".yml":
		return DecodeYAML(data)
	case ".json":
		return DecodeJSON(data)
	default:
		return nil, errors.Errorf("unknown configuration file format: %s", extension)
	}
}

// DecodeYAML decodes a configuration tree from YAML data, preserving document
// order.
func DecodeYAML(data []byte) (*Map, error) {
	result := NewMap()
	if err := yaml.Unmarshal(data, result); err != nil {
		return nil, errors.Wrap(err, "unable to parse YAML configuration")
	}
	return result, nil
}

// EncodeYAML encodes a configuration tree as YAML, preserving insertion
// order.
func EncodeYAML(m *Map) ([]byte, error) {
	data, err := yaml.Marshal(m)
	if err != nil {
		return nil, errors.Wrap(err, "unable to encode configuration")
	}
	return data, nil
}

// DecodeJSON decodes a configuration tree from JSON data. Decoding operates at
// the token level so that object key order is preserved.
func DecodeJSON(data []byte) (*Map, error) {
	// Create a token decoder. Numbers are decoded as json.Number so that
	// integers don't degrade to floating point.
	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.UseNumber()

	// Verify that the document is an object.
	token, err := decoder.Token()
	if err != nil {
		return nil, errors.Wrap(err, "unable to read document start")
	} else if delimiter, ok := token.(json.Delim); !ok || delimiter != '{' {
		return nil, errors.New("configuration must be an object")
	}

	// Perform the decoding.
	return decodeJSONObject(decoder)
}

// decodeJSONObject decodes the members of a JSON object whose opening brace
// has already been consumed.
func decodeJSONObject(decoder *json.Decoder) (*Map, error) {
	result := NewMap()
	for decoder.More() {
		// Read the key.
		token, err := decoder.Token()
		if err != nil {
			return nil, errors.Wrap(err, "unable to read object key")
		}
		key, ok := token.(string)
		if !ok {
			return nil, errors.New("object key is not a string")
		}

		// Read the value.
		value, err := decodeJSONValue(decoder)
		if err != nil {
			return nil, err
		}

		// Record the entry.
		result.Set(key, value)
	}

	// Consume the closing brace.
	if _, err := decoder.Token(); err != nil {
		return nil, errors.Wrap(err, "unable to read object end")
	}

	// Success.
	return result, nil
}

// decodeJSONValue decodes a single JSON value, recursing into objects and
// arrays.
func decodeJSONValue(decoder *json.Decoder) (interface{}, error) {
	// Read the next token.
	token, err := decoder.Token()
	if err != nil {
		return nil, errors.Wrap(err, "unable to read value")
	}

	// Handle composite values.
	if delimiter, ok := token.(json.Delim); ok {
		switch delimiter {
		case '{':
			return decodeJSONObject(decoder)
		case '[':
			var values []interface{}
			for decoder.More() {
				value, err := decodeJSONValue(decoder)
				if err != nil {
					return nil, err
				}
				values = append(values, value)
			}
			if _, err := decoder.Token(); err != nil {
				return nil, errors.Wrap(err, "unable to read array end")
			}
			return values, nil
		default:
			return nil, errors.Errorf("unexpected delimiter: %v", delimiter)
		}
	}

	// Convert numbers to integers where possible.
	if number, ok := token.(json.Number); ok {
		if integer, err := number.Int64(); err == nil {
			return int(integer), nil
		} else if float, err := number.Float64(); err == nil {
			return float, nil
		}
		return number.String(), nil
	}

	// All other tokens (strings, booleans, null) are returned as-is.
	return token, nil
}

// LoadEnv loads configuration overrides from an environment-style file of
// KEY=VALUE pairs. Dots in keys denote nesting and values are parsed as YAML
// scalars. Since the underlying format is unordered, keys are sorted for
// determinism.
func LoadEnv(path string) ([]Assignment, error) {
	// Read the environment file.
	values, err := godotenv.Read(path)
	if err != nil {
		return nil, errors.Wrap(err, "unable to read environment file")
	}

	// Sort the keys.
	keys := make([]string, 0, len(values))
	for key := range values {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	// Convert entries to assignments.
	assignments := make([]Assignment, 0, len(keys))
	for _, key := range keys {
		assignment, err := ParseAssignment(key + "=" + values[key])
		if err != nil {
			return nil, err
		}
		assignments = append(assignments, assignment)
	}

	// Success.
	return assignments, nil
}
