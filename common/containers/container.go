// Package containers resolves the optional namespace prefix (the
// "container") that qualifies unqualified identifiers at compile time, per
// the longest-prefix-wins rule of CEL qualified identifier resolution.
package containers

import "strings"

// Container holds the dotted namespace prefix configured for a compile.
// The zero value is the empty (root) container.
type Container struct {
	name string
}

// New returns a Container for the given dotted namespace, e.g. "x.y". An
// empty string is the default (root) container.
func New(name string) *Container {
	return &Container{name: name}
}

// Name returns the container's dotted namespace.
func (c *Container) Name() string {
	if c == nil {
		return ""
	}
	return c.name
}

// ResolveCandidates returns the candidate fully-qualified names for an
// unqualified reference, most-specific first, ending with the bare name.
// Given container "x.y" and name "z" it returns ["x.y.z", "x.z", "z"].
func (c *Container) ResolveCandidates(name string) []string {
	if c.Name() == "" {
		return []string{name}
	}
	next := c.Name()
	candidates := []string{next + "." + name}
	for i := strings.LastIndex(next, "."); i >= 0; i = strings.LastIndex(next, ".") {
		next = next[:i]
		candidates = append(candidates, next+"."+name)
	}
	return append(candidates, name)
}
