package model

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// OptionMap is an ordered mapping of option key ("a", "b", ...) to option
// text. Keys keep their insertion order through JSON round-trips so answer
// options display in the order the author wrote them. Keys are not limited to
// a/b/c/d.
type OptionMap struct {
	keys   []string
	values map[string]string
}

func NewOptionMap() *OptionMap {
	return &OptionMap{values: make(map[string]string)}
}

// Set adds or replaces an option. A new key is appended to the order.
func (m *OptionMap) Set(key, text string) {
	if m.values == nil {
		m.values = make(map[string]string)
	}
	if _, ok := m.values[key]; !ok {
		m.keys = append(m.keys, key)
	}
	m.values[key] = text
}

func (m *OptionMap) Get(key string) (string, bool) {
	v, ok := m.values[key]
	return v, ok
}

// Keys returns the option keys in insertion order.
func (m *OptionMap) Keys() []string {
	out := make([]string, len(m.keys))
	copy(out, m.keys)
	return out
}

func (m *OptionMap) Len() int {
	return len(m.keys)
}

// Clone returns a copy that shares no storage with the receiver.
func (m OptionMap) Clone() OptionMap {
	out := OptionMap{
		keys:   append([]string(nil), m.keys...),
		values: make(map[string]string, len(m.values)),
	}
	for k, v := range m.values {
		out.values[k] = v
	}
	return out
}

// ContainsFold reports whether key matches one of the option keys under
// case-insensitive comparison.
func (m *OptionMap) ContainsFold(key string) bool {
	for _, k := range m.keys {
		if strings.EqualFold(k, key) {
			return true
		}
	}
	return false
}

// MarshalJSON writes the options as a JSON object with keys in insertion
// order.
func (m OptionMap) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range m.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		kb, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}
		vb, err := json.Marshal(m.values[k])
		if err != nil {
			return nil, err
		}
		buf.Write(kb)
		buf.WriteByte(':')
		buf.Write(vb)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON reads a JSON object, preserving the key order it appears in.
func (m *OptionMap) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return fmt.Errorf("options: expected JSON object, got %v", tok)
	}
	m.keys = nil
	m.values = make(map[string]string)
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		key := keyTok.(string)
		var text string
		if err := dec.Decode(&text); err != nil {
			return fmt.Errorf("options: value for key %q must be a string: %w", key, err)
		}
		m.Set(key, text)
	}
	// consume closing brace
	if _, err := dec.Token(); err != nil {
		return err
	}
	return nil
}
