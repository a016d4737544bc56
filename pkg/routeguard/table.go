package routeguard

import (
	"errors"
	"io"
	"strings"

	"gopkg.in/yaml.v3"
)

// Route is one menu entry of a system.
type Route struct {
	Path  string `yaml:"path"`
	Label string `yaml:"label"`
	Icon  string `yaml:"icon,omitempty"`

	// End requires an exact path match. Without it the route also matches
	// deeper paths ("/contratos" matches "/contratos/42").
	End bool `yaml:"end,omitempty"`
}

// matches reports whether the route covers the request path.
func (r Route) matches(path string) bool {
	if r.Path == path {
		return true
	}
	if r.End {
		return false
	}
	prefix := strings.TrimSuffix(r.Path, "/")
	return prefix != "" && strings.HasPrefix(path, prefix+"/")
}

// SystemRoutes is the menu of one system: its regular pages plus the
// admin-gated ones.
type SystemRoutes struct {
	Routes      []Route `yaml:"routes"`
	AdminRoutes []Route `yaml:"admin_routes,omitempty"`
}

// contains reports whether any route (regular or admin) covers path.
func (s SystemRoutes) contains(path string) bool {
	for _, r := range s.Routes {
		if r.matches(path) {
			return true
		}
	}
	for _, r := range s.AdminRoutes {
		if r.matches(path) {
			return true
		}
	}
	return false
}

// Table is the static route-ownership map: system code to that system's
// menu. It is built once at startup and read-only afterwards.
type Table map[string]SystemRoutes

// ParseTable decodes a YAML route table.
func ParseTable(data []byte) (Table, error) {
	var t Table
	if err := yaml.Unmarshal(data, &t); err != nil {
		return nil, errors.Join(ErrMalformedTable, err)
	}
	return t, nil
}

// LoadTable reads and decodes a YAML route table.
func LoadTable(r io.Reader) (Table, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Join(ErrMalformedTable, err)
	}
	return ParseTable(data)
}

// OwnerOf returns the system owning the path. A path listed by exactly one
// system is owned by it; a path listed by several systems is shared and
// has no owner (ok is false). An unknown path also has no owner; use
// Known to tell the two apart.
func (t Table) OwnerOf(path string) (string, bool) {
	owner := ""
	count := 0
	for code, routes := range t {
		if routes.contains(path) {
			owner = code
			count++
		}
	}
	if count == 1 {
		return owner, true
	}
	return "", false
}

// Known reports whether any system's table lists the path.
func (t Table) Known(path string) bool {
	for _, routes := range t {
		if routes.contains(path) {
			return true
		}
	}
	return false
}

// Lists reports whether the given system's menu covers the path. Shared
// routes still require this: a page that exists in code but is not wired
// into the active system's menu must not be reachable by deep link.
func (t Table) Lists(systemCode, path string) bool {
	return t[systemCode].contains(path)
}

// IsAdminRoute reports whether the system lists the path among its
// admin-gated routes.
func (t Table) IsAdminRoute(systemCode, path string) bool {
	for _, r := range t[systemCode].AdminRoutes {
		if r.matches(path) {
			return true
		}
	}
	return false
}
