// Package config resolves where the regkv CLI reads and writes its registry
// file and which format it uses.
package config

import (
	"os"
	"strings"

	"regkv/internal/codec"
	"regkv/internal/registry"
)

// Options holds the values captured from command-line flags. Empty fields
// fall back to the environment and then to built-in defaults.
type Options struct {
	File   string
	Format string
	Spaced bool // join multi-word text values with a space
}

// Resolved is the outcome of Resolve.
type Resolved struct {
	File  string
	Codec codec.Codec
}

// Resolve applies flag > environment > default precedence.
// The file defaults to registry.DefaultFile; the format defaults to the one
// implied by the file extension.
func Resolve(opts Options) (Resolved, error) {
	file := opts.File
	if file == "" {
		file = strings.TrimSpace(os.Getenv(EnvFile))
	}
	if file == "" {
		file = registry.DefaultFile
	}

	format := opts.Format
	if format == "" {
		format = strings.TrimSpace(os.Getenv(EnvFormat))
	}

	var c codec.Codec
	if format == "" {
		c = codec.ForPath(file)
	} else {
		var err error
		if c, err = codec.ForName(format); err != nil {
			return Resolved{}, err
		}
	}

	if _, ok := c.(codec.Text); ok && opts.Spaced {
		c = codec.Text{Separator: " "}
	}

	return Resolved{File: file, Codec: c}, nil
}

// EnvBool reports whether the named variable is set to "1" or "true".
func EnvBool(name string) bool {
	switch strings.ToLower(strings.TrimSpace(os.Getenv(name))) {
	case "1", "true":
		return true
	}
	return false
}
