package transport

import (
	"strings"
)

// Groups is the allow-list of roster groups the API filters by.
type Groups map[string]struct{}

func NewGroups(names []string) Groups {
	g := make(Groups, len(names))
	for _, n := range names {
		n = strings.ToLower(strings.TrimSpace(n))
		if n != "" {
			g[n] = struct{}{}
		}
	}
	return g
}

// Resolve returns the canonical group for name, or "" when it is not allowed.
func (g Groups) Resolve(name string) string {
	name = strings.ToLower(name)
	if _, ok := g[name]; ok {
		return name
	}
	return ""
}
