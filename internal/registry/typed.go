package registry

import "strconv"

// SetString stores value under name, replacing any previous value.
func (r *Registry) SetString(name, value string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries[name] = value
}

// SetInt32 stores the decimal form of value under name.
func (r *Registry) SetInt32(name string, value int32) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries[name] = strconv.FormatInt(int64(value), 10)
}

// SetFloat32 stores value in fixed-point form with six fractional digits.
func (r *Registry) SetFloat32(name string, value float32) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries[name] = FormatFloat(float64(value))
}

// SetFloat64 stores value in fixed-point form with six fractional digits.
func (r *Registry) SetFloat64(name string, value float64) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries[name] = FormatFloat(value)
}

// GetString returns the value stored under name, or def if there is none.
func (r *Registry) GetString(name, def string) string {
	r.mu.Lock()
	defer r.mu.Unlock()

	if v, ok := r.entries[name]; ok {
		return v
	}
	return def
}

// GetInt32 returns the value under name parsed as an integer, or def if
// there is none. See ParseInt32 for how malformed text is handled.
func (r *Registry) GetInt32(name string, def int32) int32 {
	r.mu.Lock()
	defer r.mu.Unlock()

	if v, ok := r.entries[name]; ok {
		return ParseInt32(v)
	}
	return def
}

// GetFloat32 returns the value under name parsed as a float32, or def if
// there is none.
func (r *Registry) GetFloat32(name string, def float32) float32 {
	r.mu.Lock()
	defer r.mu.Unlock()

	if v, ok := r.entries[name]; ok {
		return ParseFloat32(v)
	}
	return def
}

// GetFloat64 returns the value under name parsed as a float64, or def if
// there is none.
func (r *Registry) GetFloat64(name string, def float64) float64 {
	r.mu.Lock()
	defer r.mu.Unlock()

	if v, ok := r.entries[name]; ok {
		return ParseFloat64(v)
	}
	return def
}
