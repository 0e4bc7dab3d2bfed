package codec

import (
	"bytes"
	"fmt"
	"strings"
)

// trimSet is the whitespace trimmed from both ends of every line.
const trimSet = " \t\n\r\f\v"

// Text is the line-oriented "key value" format.
//
// Everything from the first ';' on a line is a comment. The remaining text is
// trimmed and split on single spaces with empty tokens dropped. Lines with
// fewer than two tokens are ignored; otherwise the first token is the key and
// the rest are joined with Separator to form the value.
//
// The zero value joins with no separator, so "name a b" decodes to "ab".
// Use Text{Separator: " "} to keep multi-word values intact.
type Text struct {
	Separator string
}

// Name implements Codec.
func (Text) Name() string { return "text" }

// Decode implements Codec. Later lines win over earlier ones for the same key.
func (c Text) Decode(data []byte) (map[string]string, error) {
	entries := make(map[string]string)
	for _, line := range strings.Split(string(data), "\n") {
		key, value, ok := c.parseLine(line)
		if !ok {
			continue
		}
		entries[key] = value
	}
	return entries, nil
}

func (c Text) parseLine(line string) (key, value string, ok bool) {
	if i := strings.IndexByte(line, ';'); i >= 0 {
		line = line[:i]
	}
	line = strings.Trim(line, trimSet)

	var tokens []string
	for _, tok := range strings.Split(line, " ") {
		if tok != "" {
			tokens = append(tokens, tok)
		}
	}
	if len(tokens) < 2 {
		return "", "", false
	}
	return tokens[0], strings.Join(tokens[1:], c.Separator), true
}

// Encode implements Codec. Each entry becomes one "key value" line.
// Entries that would decode to a different key or value are rejected with
// ErrUnencodable, so whatever Encode writes, Decode reads back unchanged.
func (c Text) Encode(entries map[string]string) ([]byte, error) {
	var buf bytes.Buffer
	for _, k := range sortedKeys(entries) {
		v := entries[k]
		if err := c.checkEntry(k, v); err != nil {
			return nil, err
		}
		buf.WriteString(k)
		buf.WriteByte(' ')
		buf.WriteString(v)
		buf.WriteByte('\n')
	}
	return buf.Bytes(), nil
}

func (c Text) checkEntry(key, value string) error {
	switch {
	case key == "":
		return fmt.Errorf("empty key: %w", ErrUnencodable)
	case strings.ContainsAny(key, " ;\n\r") || strings.Trim(key, trimSet) != key:
		return fmt.Errorf("key %q contains whitespace or ';': %w", key, ErrUnencodable)
	case strings.ContainsAny(value, ";\n\r"):
		return fmt.Errorf("value for %q contains ';' or a line break: %w", key, ErrUnencodable)
	}

	k, v, ok := c.parseLine(key + " " + value)
	if !ok || k != key || v != value {
		return fmt.Errorf("value %q for %q would read back as %q (separator %q): %w",
			value, key, v, c.Separator, ErrUnencodable)
	}
	return nil
}
