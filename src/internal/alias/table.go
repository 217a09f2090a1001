// Package alias holds the version alias table that maps short version tokens
// to the canonical version strings the runtime selectors expect
package alias

import (
	"sort"
	"strings"
)

// Entry is a single alias: Key is what the user types, Value is what gets emitted
type Entry struct {
	Key   string
	Value string
}

// Table is an ordered, read-only set of version aliases.
// Order is kept so the usage text lists aliases the same way every time.
type Table struct {
	entries []Entry
	index   map[string]int
}

// builtin lists the aliases every invocation starts with
var builtin = []Entry{
	{Key: "11", Value: "11.0.1"},
	{Key: "8", Value: "1.8"},
	{Key: "7", Value: "1.7"},
	{Key: "6", Value: "1.6"},
	{Key: "5", Value: "1.5"},
	{Key: "4", Value: "1.4"},
	{Key: "3", Value: "1.3"},
	{Key: "2", Value: "1.2"},
	{Key: "1", Value: "1.0"},
	{Key: "3.5", Value: "3.5"},
	{Key: "3.7", Value: "3.7"},
	{Key: "3.8", Value: "3.8"},
}

// Default returns the built-in alias table
func Default() *Table {
	return New(builtin...)
}

// New creates a table from entries. A repeated key keeps its first position
// and takes the last value.
func New(entries ...Entry) *Table {
	t := &Table{index: make(map[string]int, len(entries))}
	for _, e := range entries {
		t.set(e.Key, e.Value)
	}
	return t
}

func (t *Table) set(key, value string) {
	if i, ok := t.index[key]; ok {
		t.entries[i].Value = value
		return
	}
	t.index[key] = len(t.entries)
	t.entries = append(t.entries, Entry{Key: key, Value: value})
}

// Merge returns a new table with extra aliases applied on top of t.
// Existing keys are overridden in place, new keys are appended in sorted order.
func (t *Table) Merge(extra map[string]string) *Table {
	merged := New(t.entries...)

	keys := make([]string, 0, len(extra))
	for k := range extra {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		merged.set(k, extra[k])
	}
	return merged
}

// Lookup returns the canonical value for key and whether the key exists
func (t *Table) Lookup(key string) (string, bool) {
	i, ok := t.index[key]
	if !ok {
		return "", false
	}
	return t.entries[i].Value, true
}

// Resolve maps a version token through the table once.
// Unknown tokens are returned unchanged.
func (t *Table) Resolve(version string) string {
	if v, ok := t.Lookup(version); ok {
		return v
	}
	return version
}

// Entries returns a copy of the entries in table order
func (t *Table) Entries() []Entry {
	out := make([]Entry, len(t.entries))
	copy(out, t.entries)
	return out
}

// Len returns the number of aliases
func (t *Table) Len() int {
	return len(t.entries)
}

// Describe renders every alias as "key -> value" joined by sep
func (t *Table) Describe(sep string) string {
	parts := make([]string, len(t.entries))
	for i, e := range t.entries {
		parts[i] = e.Key + " -> " + e.Value
	}
	return strings.Join(parts, sep)
}
