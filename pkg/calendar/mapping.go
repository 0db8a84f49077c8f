package calendar

import (
	"bytes"
	"encoding/json"
	"slices"
)

// Mapping is a string-keyed object that remembers insertion order.
// encoding/json sorts plain map keys alphabetically, which would scramble the
// field order the frontend payloads are built with, so the projections below
// assemble their output through this type instead.
type Mapping struct {
	keys   []string
	values map[string]any
}

func NewMapping() *Mapping {
	return &Mapping{values: make(map[string]any)}
}

// Set appends the key to the mapping or, when the key is already present,
// overwrites its value in place without changing its position.
func (m *Mapping) Set(key string, value any) {
	if _, ok := m.values[key]; !ok {
		m.keys = append(m.keys, key)
	}
	m.values[key] = value
}

// Get returns the value stored under key and whether the key is present.
func (m *Mapping) Get(key string) (any, bool) {
	value, ok := m.values[key]
	return value, ok
}

// Has reports whether the key is present.
func (m *Mapping) Has(key string) bool {
	_, ok := m.values[key]
	return ok
}

// Keys returns the keys in insertion order.
func (m *Mapping) Keys() []string {
	return slices.Clone(m.keys)
}

func (m *Mapping) Len() int {
	return len(m.keys)
}

// MarshalJSON encodes the mapping as a JSON object with entries in insertion
// order. Encoding errors from unrepresentable values propagate unchanged.
func (m *Mapping) MarshalJSON() ([]byte, error) {
	var b bytes.Buffer
	b.WriteByte('{')
	for i, key := range m.keys {
		if i > 0 {
			b.WriteByte(',')
		}
		name, err := json.Marshal(key)
		if err != nil {
			return nil, err
		}
		b.Write(name)
		b.WriteByte(':')
		value, err := json.Marshal(m.values[key])
		if err != nil {
			return nil, err
		}
		b.Write(value)
	}
	b.WriteByte('}')
	return b.Bytes(), nil
}
