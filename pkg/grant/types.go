package grant

import "slices"

// System is a top-level functional area of the product. Systems are
// mutually exclusive contexts: a user operates inside exactly one at a time.
// JSON tags follow the backend's wire vocabulary.
type System struct {
	Code        string `json:"codigo"`
	Name        string `json:"nome"`
	Icon        string `json:"icone,omitempty"`
	Color       string `json:"cor,omitempty"`
	Description string `json:"descricao,omitempty"`
}

// Role is a ranked title. Rank is an ordered hierarchy level; higher means
// more authority (consultant < manager < director).
type Role struct {
	Code string
	Name string
	Rank int
}

// DepartmentGrant is the grant cell carried by one department under one
// system: the role held there plus the coarse actions that role may perform.
type DepartmentGrant struct {
	Role    Role
	Actions []Action
}

// HasAction reports whether the department's role includes the action.
func (d DepartmentGrant) HasAction(a Action) bool {
	return slices.Contains(d.Actions, a)
}

// ModelPermissions is the Django-style fine-grained matrix: per app, per
// model, per action flags. It is independent of the System/Role hierarchy.
type ModelPermissions map[string]map[string]map[Action]bool

// Lookup returns the matrix entry for app/model/action. The second return
// value is false when the path is absent, which callers must treat as
// "not covered by the matrix" rather than "denied".
func (m ModelPermissions) Lookup(app, model string, action Action) (bool, bool) {
	models, ok := m[app]
	if !ok {
		return false, false
	}
	flags, ok := models[model]
	if !ok {
		return false, false
	}
	allowed, ok := flags[action]
	return allowed, ok
}
