package form

import (
	"bytes"
	"encoding/json"
	"fmt"
)

const (
	// EquationTypeKey is the discriminator added to every payload.
	EquationTypeKey = "equation_type"

	// EquationImplicit selects the implicit difference scheme.
	EquationImplicit = "implicit"
)

// Payload is an ordered string mapping. Keys keep the position of their
// first insertion; setting an existing key replaces its value in place.
// It serializes to a JSON object with keys in that order.
type Payload struct {
	keys   []string
	values map[string]string
}

// NewPayload returns an empty payload.
func NewPayload() *Payload {
	return &Payload{values: make(map[string]string)}
}

// BuildPayload maps each field's label to its value, later fields winning
// on collision, and tags the result with equation_type=implicit.
func BuildPayload(fields []Field) *Payload {
	p := NewPayload()
	for _, f := range fields {
		p.Set(f.Label, f.Value)
	}
	p.Set(EquationTypeKey, EquationImplicit)
	return p
}

// Set stores value under key.
func (p *Payload) Set(key, value string) {
	if p.values == nil {
		p.values = make(map[string]string)
	}
	if _, ok := p.values[key]; !ok {
		p.keys = append(p.keys, key)
	}
	p.values[key] = value
}

// Get returns the value stored under key.
func (p *Payload) Get(key string) (string, bool) {
	v, ok := p.values[key]
	return v, ok
}

// Len returns the number of keys.
func (p *Payload) Len() int {
	return len(p.keys)
}

// Keys returns the keys in payload order.
func (p *Payload) Keys() []string {
	out := make([]string, len(p.keys))
	copy(out, p.keys)
	return out
}

// MarshalJSON encodes the payload as a JSON object in key order.
func (p *Payload) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range p.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}
		val, err := json.Marshal(p.values[k])
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON decodes a flat JSON object of strings, keeping key order.
// Duplicate keys follow Set semantics.
func (p *Payload) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return fmt.Errorf("decode payload: %w", err)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("decode payload: expected object, got %v", tok)
	}

	*p = Payload{values: make(map[string]string)}
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return fmt.Errorf("decode payload key: %w", err)
		}
		key, ok := tok.(string)
		if !ok {
			return fmt.Errorf("decode payload: unexpected key %v", tok)
		}

		var value string
		if err := dec.Decode(&value); err != nil {
			return fmt.Errorf("decode payload value for %q: %w", key, err)
		}
		p.Set(key, value)
	}

	if _, err := dec.Token(); err != nil {
		return fmt.Errorf("decode payload: %w", err)
	}
	return nil
}
