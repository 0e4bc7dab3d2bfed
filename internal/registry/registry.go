// Package registry implements an in-memory key/value configuration store
// with typed accessors and file persistence.
//
// Every value is held as text. Typed setters format the value on the way in
// and typed getters parse it on the way out, so a value written with
// SetInt32 can be read back with GetString and vice versa.
//
// A single mutex guards the store and every method holds it for its whole
// duration, including the file I/O in Load and Save. Calls never overlap,
// readers included. That is fine for start-up configuration but makes the
// Registry a poor fit for hot paths.
package registry

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"regkv/internal/codec"
	"regkv/internal/fsutil"

	"go.uber.org/zap"
)

// DefaultFile is the file name used when no path is configured.
const DefaultFile = "config.txt"

// Registry is a mutex-guarded map from key to textual value.
// The zero value is not usable; create one with New.
type Registry struct {
	mu      sync.Mutex
	entries map[string]string
	codec   codec.Codec
	log     *zap.Logger
}

// Option configures a Registry.
type Option func(*Registry)

// WithCodec sets the file format used by Load and Save.
func WithCodec(c codec.Codec) Option {
	return func(r *Registry) {
		if c != nil {
			r.codec = c
		}
	}
}

// WithLogger sets the logger used for load and save diagnostics.
func WithLogger(l *zap.Logger) Option {
	return func(r *Registry) {
		if l != nil {
			r.log = l
		}
	}
}

// New returns an empty Registry. Without options it reads and writes the
// text format and logs nothing.
func New(opts ...Option) *Registry {
	r := &Registry{
		entries: make(map[string]string),
		codec:   codec.Text{},
		log:     zap.NewNop(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Codec returns the format used by Load and Save.
func (r *Registry) Codec() codec.Codec {
	return r.codec
}

// Load replaces the store with the entries decoded from path.
//
// If path does not exist Load returns false and a nil error, and the store
// is left as it was. A read or decode failure also leaves the store
// untouched and is returned as an error.
func (r *Registry) Load(path string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			r.log.Debug("registry file not found", zap.String("path", path))
			return false, nil
		}
		r.log.Warn("reading registry file failed", zap.String("path", path), zap.Error(err))
		return false, fmt.Errorf("reading registry file: %w", err)
	}

	entries, err := r.codec.Decode(data)
	if err != nil {
		r.log.Warn("decoding registry file failed",
			zap.String("path", path), zap.String("format", r.codec.Name()), zap.Error(err))
		return false, fmt.Errorf("loading %s: %w", path, err)
	}

	r.entries = entries
	r.log.Debug("registry loaded",
		zap.String("path", path), zap.String("format", r.codec.Name()), zap.Int("entries", len(entries)))
	return true, nil
}

// Save writes every entry to path in key order, replacing the file
// atomically. Missing parent directories are created.
func (r *Registry) Save(path string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	raw, err := r.codec.Encode(r.entries)
	if err != nil {
		r.log.Warn("encoding registry failed", zap.String("format", r.codec.Name()), zap.Error(err))
		return fmt.Errorf("saving %s: %w", path, err)
	}

	if dir := filepath.Dir(path); !fsutil.Exists(dir) {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("creating registry directory: %w", err)
		}
	}
	if err := fsutil.AtomicWrite(path, raw, 0644); err != nil {
		r.log.Warn("writing registry file failed", zap.String("path", path), zap.Error(err))
		return fmt.Errorf("writing registry file: %w", err)
	}

	r.log.Debug("registry saved",
		zap.String("path", path), zap.String("format", r.codec.Name()), zap.Int("entries", len(r.entries)))
	return nil
}

// Has reports whether name is present.
func (r *Registry) Has(name string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, ok := r.entries[name]
	return ok
}

// Unset removes name and reports whether it was present.
func (r *Registry) Unset(name string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, ok := r.entries[name]
	delete(r.entries, name)
	return ok
}

// Len returns the number of entries.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return len(r.entries)
}

// Keys returns all keys in ascending order.
func (r *Registry) Keys() []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	keys := make([]string, 0, len(r.entries))
	for k := range r.entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// All returns a copy of all entries.
func (r *Registry) All() map[string]string {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make(map[string]string, len(r.entries))
	for k, v := range r.entries {
		out[k] = v
	}
	return out
}
