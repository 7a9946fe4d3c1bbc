package parser

import "strings"

// Property is one cleaned key/value pair taken from a report header.
type Property struct {
	Key   string // lowercased
	Value string
}

// Properties is an insertion-ordered key/value list.
// Keys are compared case-insensitively and stored lowercased. Setting an
// existing key replaces its value but keeps its original position, so
// iteration order is the order in which keys were first seen.
type Properties struct {
	entries []Property
	index   map[string]int
}

// NewProperties returns an empty list.
func NewProperties() *Properties {
	return &Properties{index: make(map[string]int)}
}

// Set stores value under key, overwriting any earlier value.
func (p *Properties) Set(key, value string) {
	key = strings.ToLower(key)
	if i, ok := p.index[key]; ok {
		p.entries[i].Value = value
		return
	}
	p.index[key] = len(p.entries)
	p.entries = append(p.entries, Property{Key: key, Value: value})
}

// SetClean cleans key and value and stores them. Pairs that are empty after
// cleaning are dropped. It reports whether the pair was stored.
func (p *Properties) SetClean(key, value string) bool {
	key = cleanField(key)
	if key == "" {
		return false
	}
	value = cleanField(value)
	if value == "" {
		return false
	}
	p.Set(key, value)
	return true
}

// Get returns the value stored under key.
func (p *Properties) Get(key string) (string, bool) {
	i, ok := p.index[strings.ToLower(key)]
	if !ok {
		return "", false
	}
	return p.entries[i].Value, true
}

// Len returns the number of distinct keys.
func (p *Properties) Len() int {
	return len(p.entries)
}

// All returns a copy of the entries in iteration order.
func (p *Properties) All() []Property {
	out := make([]Property, len(p.entries))
	copy(out, p.entries)
	return out
}

// cleanField trims whitespace and drops commas, which reports use both as
// thousands separators and as decoration inside keys ("Mass, 10^24 kg").
func cleanField(s string) string {
	return strings.TrimSpace(strings.ReplaceAll(s, ",", ""))
}
