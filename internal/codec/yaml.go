package codec

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// YAML is a flat mapping of string keys to scalar values. Dotted keys such
// as "window.width" are literal strings, not nested paths.
type YAML struct{}

// Name implements Codec.
func (YAML) Name() string { return "yaml" }

// Decode implements Codec. Scalars of any YAML type are kept as their text.
func (YAML) Decode(data []byte) (map[string]string, error) {
	entries := make(map[string]string)
	if len(data) == 0 {
		return entries, nil
	}
	if err := yaml.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("parsing yaml: %w", err)
	}
	if entries == nil {
		entries = make(map[string]string)
	}
	return entries, nil
}

// Encode implements Codec. yaml.Marshal sorts map keys.
func (YAML) Encode(entries map[string]string) ([]byte, error) {
	if len(entries) == 0 {
		return nil, nil
	}
	raw, err := yaml.Marshal(entries)
	if err != nil {
		return nil, fmt.Errorf("encoding yaml: %w", err)
	}
	return raw, nil
}
