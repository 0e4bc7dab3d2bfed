// Package codec converts between registry files on disk and the flat
// key/value map held by a registry.
//
// Three formats are supported: the line-oriented text format (the default),
// a flat YAML mapping and a flat TOML table. Every encoder emits entries in
// key-sorted order so saved files are deterministic and diff-friendly.
package codec

import (
	"errors"
	"fmt"
	"path/filepath"
	"sort"
	"strings"
)

var (
	// ErrUnknownFormat is returned when a format name is not recognised.
	ErrUnknownFormat = errors.New("unknown format")

	// ErrUnencodable is returned when an entry cannot be written in a
	// format without corrupting the file.
	ErrUnencodable = errors.New("entry cannot be encoded")
)

// Codec decodes file contents into entries and encodes entries back.
type Codec interface {
	// Name returns the format name accepted by ForName.
	Name() string

	// Decode parses data into a fresh map. Empty input yields an empty map.
	Decode(data []byte) (map[string]string, error)

	// Encode serialises entries in key-sorted order.
	Encode(entries map[string]string) ([]byte, error)
}

// Names lists the format names accepted by ForName.
var Names = []string{"text", "yaml", "toml"}

// ForName returns the codec registered under name.
func ForName(name string) (Codec, error) {
	switch strings.ToLower(name) {
	case "text", "txt":
		return Text{}, nil
	case "yaml", "yml":
		return YAML{}, nil
	case "toml":
		return TOML{}, nil
	}
	return nil, fmt.Errorf("%q (valid: %s): %w", name, strings.Join(Names, ", "), ErrUnknownFormat)
}

// ForPath picks a codec from the file extension of path. Files without a
// recognised extension use the text format.
func ForPath(path string) Codec {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return YAML{}
	case ".toml":
		return TOML{}
	}
	return Text{}
}

// sortedKeys returns the keys of m in ascending order.
func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
