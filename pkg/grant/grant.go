package grant

import (
	"encoding/json"
	"errors"
)

// Grant is the full authorization snapshot for one user, constructed once
// per login or session refresh and treated as immutable for that session.
// Callers must not mutate its maps or slices after construction.
type Grant struct {
	// Superuser short-circuits every permission query to true. It does not
	// short-circuit system selection; see the routeguard package.
	Superuser bool

	// Systems lists the functional areas the user may activate.
	Systems []System

	// Permissions maps system code to department code to the grant cell
	// held there.
	Permissions map[string]map[string]DepartmentGrant

	// Models is the optional fine-grained per-entity-type matrix. Nil when
	// the backend did not send one.
	Models ModelPermissions

	// FlatActions is the coarse fallback list consulted when Models lacks
	// an entry for a given app/model.
	FlatActions []Action
}

type wireDepartment struct {
	Cargo      string   `json:"cargo"`
	CargoNome  string   `json:"cargo_nome"`
	CargoNivel int      `json:"cargo_nivel"`
	Permissoes []string `json:"permissoes"`
}

type wireGrant struct {
	IsSuperuser bool                                 `json:"is_superuser"`
	Systems     []System                             `json:"sistemas_disponiveis"`
	Permissions map[string]map[string]wireDepartment `json:"permissoes"`
	Django      json.RawMessage                      `json:"permissoes_django"`
	Flat        []string                             `json:"permissoes_lista"`
}

// ParseGrant decodes the backend's authentication response into a Grant.
// Malformed JSON is an error; missing sections are not: a payload with no
// permissions simply yields a grant that denies everything.
func ParseGrant(data []byte) (*Grant, error) {
	var g Grant
	if err := json.Unmarshal(data, &g); err != nil {
		return nil, errors.Join(ErrMalformedGrant, err)
	}
	return &g, nil
}

// UnmarshalJSON decodes the wire shape. Unknown action verbs are dropped,
// and the is_superuser flag embedded inside permissoes_django is folded
// into Grant.Superuser.
func (g *Grant) UnmarshalJSON(data []byte) error {
	var w wireGrant
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}

	g.Superuser = w.IsSuperuser
	g.Systems = w.Systems
	g.FlatActions = parseActions(w.Flat)

	if len(w.Permissions) > 0 {
		g.Permissions = make(map[string]map[string]DepartmentGrant, len(w.Permissions))
		for system, departments := range w.Permissions {
			cells := make(map[string]DepartmentGrant, len(departments))
			for dept, cell := range departments {
				cells[dept] = DepartmentGrant{
					Role: Role{
						Code: cell.Cargo,
						Name: cell.CargoNome,
						Rank: cell.CargoNivel,
					},
					Actions: parseActions(cell.Permissoes),
				}
			}
			g.Permissions[system] = cells
		}
	}

	if len(w.Django) > 0 {
		models, superuser, err := parseModelPermissions(w.Django)
		if err != nil {
			return err
		}
		g.Models = models
		g.Superuser = g.Superuser || superuser
	}

	return nil
}

// parseModelPermissions splits the permissoes_django object: the
// is_superuser sibling key is extracted, every other key is an app whose
// value is a model-to-flags map.
func parseModelPermissions(data []byte) (ModelPermissions, bool, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, false, err
	}

	var superuser bool
	models := make(ModelPermissions)

	for key, value := range raw {
		if key == "is_superuser" {
			if err := json.Unmarshal(value, &superuser); err != nil {
				return nil, false, err
			}
			continue
		}

		var app map[string]map[string]bool
		if err := json.Unmarshal(value, &app); err != nil {
			return nil, false, err
		}

		entry := make(map[string]map[Action]bool, len(app))
		for model, flags := range app {
			converted := make(map[Action]bool, len(flags))
			for verb, allowed := range flags {
				if a, ok := ParseAction(verb); ok {
					converted[a] = allowed
				}
			}
			entry[model] = converted
		}
		models[key] = entry
	}

	if len(models) == 0 {
		models = nil
	}
	return models, superuser, nil
}

// HasSystem reports whether code is one of the available systems.
func (g *Grant) HasSystem(code string) bool {
	if code == "" {
		return false
	}
	for _, s := range g.Systems {
		if s.Code == code {
			return true
		}
	}
	return false
}

// SystemByCode returns the System with the given code.
func (g *Grant) SystemByCode(code string) (System, bool) {
	for _, s := range g.Systems {
		if s.Code == code {
			return s, true
		}
	}
	return System{}, false
}

// DepartmentsOf returns the grant cells under a system. The result is nil
// when the system carries no departments; callers must not mutate it.
func (g *Grant) DepartmentsOf(systemCode string) map[string]DepartmentGrant {
	return g.Permissions[systemCode]
}

// HasFlatAction reports membership of action in the coarse fallback list.
func (g *Grant) HasFlatAction(action Action) bool {
	for _, a := range g.FlatActions {
		if a == action {
			return true
		}
	}
	return false
}
