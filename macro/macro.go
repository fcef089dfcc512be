// Package macro implements the |key| substitution table applied to
// documentation text before link resolution. A Registry is scoped to a
// single build invocation: definitions accumulate while the project is
// configured and external sources are loaded, then substitution runs
// read-only over every page.
package macro

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNoDefinition reports a macro definition with no "=" between key and
// value.
var ErrNoDefinition = errors.New("no macro definition")

// ConflictError reports an attempt to rebind an existing macro key to a
// different value.
type ConflictError struct {
	Key      string // bracketed form, e.g. "|docs|"
	Existing string
	Proposed string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("macro %s already defined as %q, cannot redefine as %q",
		e.Key, e.Existing, e.Proposed)
}

// Registry holds macro definitions in registration order.
type Registry struct {
	keys   []string
	values map[string]string
}

// NewRegistry returns an empty registry ready for registration.
func NewRegistry() *Registry {
	return &Registry{values: make(map[string]string)}
}

// Register parses a "key = value" definition and adds it to the registry.
// Whitespace around the key and value is trimmed and the key is stored in
// its delimited |key| form, which Register returns together with the value.
// Registering an existing key with an identical value is a no-op; a
// different value is a *ConflictError. A definition without "=" is an
// ErrNoDefinition error.
func (r *Registry) Register(definition string) (value, key string, err error) {
	name, rest, ok := strings.Cut(definition, "=")
	if !ok {
		return "", "", fmt.Errorf("%w: missing '=' in %q", ErrNoDefinition, definition)
	}
	key = "|" + strings.TrimSpace(name) + "|"
	value = strings.TrimSpace(rest)
	if existing, defined := r.values[key]; defined {
		if existing != value {
			return "", "", &ConflictError{Key: key, Existing: existing, Proposed: value}
		}
		return value, key, nil
	}
	r.keys = append(r.keys, key)
	r.values[key] = value
	return value, key, nil
}

// Substitute replaces every occurrence of each registered |key| in text with
// its value. Keys are applied in registration order and replacement is a
// single pass per key; values are never re-scanned for further macros, so
// substituting an already-substituted string is a no-op as long as no value
// spells out a registered key.
func (r *Registry) Substitute(text string) string {
	for _, key := range r.keys {
		text = strings.ReplaceAll(text, key, r.values[key])
	}
	return text
}

// Len returns the number of registered macros.
func (r *Registry) Len() int {
	return len(r.keys)
}
