package codec

import (
	"bytes"
	"fmt"
	"strconv"
	"time"

	"github.com/BurntSushi/toml"
)

// TOML is a single top-level table of scalar values. Keys that are not bare
// TOML keys are quoted on encode, so dotted keys stay literal.
type TOML struct{}

// Name implements Codec.
func (TOML) Name() string { return "toml" }

// Decode implements Codec. Numbers, booleans and datetimes are converted to
// text; arrays and sub-tables are rejected.
func (TOML) Decode(data []byte) (map[string]string, error) {
	var raw map[string]any
	if _, err := toml.Decode(string(data), &raw); err != nil {
		return nil, fmt.Errorf("parsing toml: %w", err)
	}

	entries := make(map[string]string, len(raw))
	for k, v := range raw {
		s, err := tomlScalar(v)
		if err != nil {
			return nil, fmt.Errorf("parsing toml: key %q: %w", k, err)
		}
		entries[k] = s
	}
	return entries, nil
}

func tomlScalar(v any) (string, error) {
	switch x := v.(type) {
	case string:
		return x, nil
	case int64:
		return strconv.FormatInt(x, 10), nil
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64), nil
	case bool:
		return strconv.FormatBool(x), nil
	case time.Time:
		// Local forms carry a fixed zone named after their TOML type.
		switch x.Location().String() {
		case "date-local":
			return x.Format("2006-01-02"), nil
		case "time-local":
			return x.Format("15:04:05.999999999"), nil
		case "datetime-local":
			return x.Format("2006-01-02T15:04:05.999999999"), nil
		}
		return x.Format(time.RFC3339Nano), nil
	}
	return "", fmt.Errorf("nested value of type %T is not supported", v)
}

// Encode implements Codec. The encoder writes map keys in sorted order.
func (TOML) Encode(entries map[string]string) ([]byte, error) {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(entries); err != nil {
		return nil, fmt.Errorf("encoding toml: %w", err)
	}
	return buf.Bytes(), nil
}
