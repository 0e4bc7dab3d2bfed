package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"regkv/internal/registry"
)

// valueType selects which typed accessor a command goes through.
type valueType string

const (
	typeString  valueType = "string"
	typeInt32   valueType = "int32"
	typeFloat32 valueType = "float32"
	typeFloat64 valueType = "float64"
)

var valueTypes = []valueType{typeString, typeInt32, typeFloat32, typeFloat64}

func parseValueType(s string) (valueType, error) {
	for _, t := range valueTypes {
		if strings.EqualFold(s, string(t)) {
			return t, nil
		}
	}
	names := make([]string, len(valueTypes))
	for i, t := range valueTypes {
		names[i] = string(t)
	}
	return "", fmt.Errorf("invalid type %q (valid: %s)", s, strings.Join(names, ", "))
}

// storeValue validates raw as typ and stores it through the matching typed
// setter. Command-line input is parsed strictly; only reads are lenient.
func storeValue(reg *registry.Registry, key string, typ valueType, raw string) error {
	switch typ {
	case typeInt32:
		n, err := strconv.ParseInt(raw, 10, 32)
		if err != nil {
			return fmt.Errorf("value %q is not an int32", raw)
		}
		reg.SetInt32(key, int32(n))
	case typeFloat32:
		f, err := strconv.ParseFloat(raw, 32)
		if err != nil {
			return fmt.Errorf("value %q is not a float32", raw)
		}
		reg.SetFloat32(key, float32(f))
	case typeFloat64:
		f, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return fmt.Errorf("value %q is not a float64", raw)
		}
		reg.SetFloat64(key, f)
	default:
		reg.SetString(key, raw)
	}
	return nil
}

// readValue reads key through the typed getter for typ. def is parsed
// strictly as typ; an empty def means the type's zero value.
// The returned value is suitable for JSON encoding.
func readValue(reg *registry.Registry, key string, typ valueType, def string) (any, error) {
	switch typ {
	case typeInt32:
		var d int32
		if def != "" {
			n, err := strconv.ParseInt(def, 10, 32)
			if err != nil {
				return nil, fmt.Errorf("default %q is not an int32", def)
			}
			d = int32(n)
		}
		return reg.GetInt32(key, d), nil
	case typeFloat32:
		var d float32
		if def != "" {
			f, err := strconv.ParseFloat(def, 32)
			if err != nil {
				return nil, fmt.Errorf("default %q is not a float32", def)
			}
			d = float32(f)
		}
		return reg.GetFloat32(key, d), nil
	case typeFloat64:
		var d float64
		if def != "" {
			f, err := strconv.ParseFloat(def, 64)
			if err != nil {
				return nil, fmt.Errorf("default %q is not a float64", def)
			}
			d = f
		}
		return reg.GetFloat64(key, d), nil
	}
	return reg.GetString(key, def), nil
}

// formatValue renders a value returned by readValue for text output.
func formatValue(v any) string {
	switch x := v.(type) {
	case int32:
		return strconv.FormatInt(int64(x), 10)
	case float32:
		return strconv.FormatFloat(float64(x), 'g', -1, 32)
	case float64:
		return strconv.FormatFloat(x, 'g', -1, 64)
	case string:
		return x
	}
	return fmt.Sprint(v)
}
