// FILE: lixenwraith/settings/file.go
package settings

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// FilenameKey tags a mapping read by ReadProjectFile with its source path.
const FilenameKey = "__filename"

// File formats understood by the loaders and Save
const (
	FormatJSON = "json"
	FormatTOML = "toml"
	FormatYAML = "yaml"
)

// ReadProjectFile finds name in start or one of its ancestors and parses it.
// A non-empty result carries the absolute file path under FilenameKey.
// A missing or unparsable file yields an empty map.
func ReadProjectFile(name, start string) map[string]any {
	path, ok := findUp(name, start)
	if !ok {
		return map[string]any{}
	}

	content, err := readConfigFile(path)
	if err != nil {
		return map[string]any{}
	}
	if len(content) > 0 {
		content[FilenameKey] = path
	}
	return content
}

// readConfigFile parses a file by extension, falling back to content sniffing.
func readConfigFile(path string) (map[string]any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file '%s': %w", path, err)
	}

	format := detectFileFormat(path)
	if format == "" {
		format = detectFormatFromContent(data)
	}

	content, err := decodeConfig(data, format)
	if err != nil {
		return nil, fmt.Errorf("failed to parse config file '%s': %w", path, err)
	}
	return content, nil
}

func decodeConfig(data []byte, format string) (map[string]any, error) {
	content := make(map[string]any)
	switch format {
	case FormatJSON:
		decoder := json.NewDecoder(bytes.NewReader(data))
		decoder.UseNumber()
		if err := decoder.Decode(&content); err != nil {
			return nil, err
		}
	case FormatTOML:
		if err := toml.Unmarshal(data, &content); err != nil {
			return nil, err
		}
	case FormatYAML:
		if err := yaml.Unmarshal(data, &content); err != nil {
			return nil, err
		}
	default:
		return nil, ErrUnsupportedFormat
	}

	if content == nil {
		// "null" documents
		return map[string]any{}, nil
	}
	return normalizeValue(content).(map[string]any), nil
}

// detectFileFormat determines format from file extension
func detectFileFormat(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON
	case ".toml", ".tml":
		return FormatTOML
	case ".yaml", ".yml":
		return FormatYAML
	}
	return ""
}

// detectFormatFromContent attempts to detect format by parsing
func detectFormatFromContent(data []byte) string {
	var probe map[string]any
	if err := json.Unmarshal(data, &probe); err == nil {
		return FormatJSON
	}
	probe = nil
	if err := yaml.Unmarshal(data, &probe); err == nil {
		return FormatYAML
	}
	probe = nil
	if err := toml.Unmarshal(data, &probe); err == nil {
		return FormatTOML
	}
	return ""
}

// normalizeValue converts decoder output to the settings data model:
// string-keyed maps, []any sequences, int64 integers and float64 reals.
func normalizeValue(v any) any {
	switch val := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(val))
		for k, elem := range val {
			out[k] = normalizeValue(elem)
		}
		return out
	case map[any]any:
		out := make(map[string]any, len(val))
		for k, elem := range val {
			out[fmt.Sprint(k)] = normalizeValue(elem)
		}
		return out
	case []any:
		out := make([]any, len(val))
		for i, elem := range val {
			out[i] = normalizeValue(elem)
		}
		return out
	case []map[string]any:
		out := make([]any, len(val))
		for i, elem := range val {
			out[i] = normalizeValue(elem)
		}
		return out
	case json.Number:
		if i, err := val.Int64(); err == nil {
			return i
		}
		if f, err := val.Float64(); err == nil {
			return f
		}
		return val.String()
	case int:
		return int64(val)
	case int8:
		return int64(val)
	case int16:
		return int64(val)
	case int32:
		return int64(val)
	case uint:
		return normalizeUint(uint64(val))
	case uint8:
		return int64(val)
	case uint16:
		return int64(val)
	case uint32:
		return int64(val)
	case uint64:
		return normalizeUint(val)
	case float32:
		return float64(val)
	}
	return v
}

func normalizeUint(u uint64) any {
	if u > math.MaxInt64 {
		return float64(u)
	}
	return int64(u)
}
