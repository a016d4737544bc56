package permission

import "github.com/dmitrymomot/grantkit/pkg/grant"

// ActiveFunc reports the currently active system code, "" when none is
// selected. activectx.ContextStore.Active satisfies it.
type ActiveFunc func() string

// Resolver answers permission queries over an immutable grant plus the
// injected active-system accessor. Every method is a pure, total read:
// absent or malformed data denies rather than panics, and nothing here
// mutates state. Safe to call once per render.
type Resolver struct {
	grant  *grant.Grant
	active ActiveFunc
}

// New creates a Resolver. A nil active accessor means queries without an
// explicit system code have no system to resolve against and fail closed.
func New(g *grant.Grant, active ActiveFunc) *Resolver {
	return &Resolver{grant: g, active: active}
}

// HasPermission reports whether the actor may perform action inside the
// target system: the optional explicit code, or the active system when
// none is given. Permission is the union across every department granted
// under that system, not just the auto-selected highest-rank one; a
// lower-ranked department may carry a verb (export, say) that the resolved
// role does not.
func (r *Resolver) HasPermission(action grant.Action, systemCode ...string) bool {
	if r.grant == nil {
		return false
	}
	if r.grant.Superuser {
		return true
	}

	target := ""
	if len(systemCode) > 0 {
		target = systemCode[0]
	}
	if target == "" && r.active != nil {
		target = r.active()
	}
	if target == "" {
		return false
	}

	for _, cell := range r.grant.DepartmentsOf(target) {
		if cell.HasAction(action) {
			return true
		}
	}
	return false
}

// HasModelPermission answers the fine-grained per-entity-type query. The
// Django-style matrix wins whenever it covers the app/model/action path,
// even when it says false; only an uncovered path falls back to membership
// in the coarse flat list.
func (r *Resolver) HasModelPermission(app, model string, action grant.Action) bool {
	if r.grant == nil {
		return false
	}
	if r.grant.Superuser {
		return true
	}

	if allowed, covered := r.grant.Models.Lookup(app, model, action); covered {
		return allowed
	}
	return r.grant.HasFlatAction(action)
}

// HasSystemAccess reports whether the actor may see the system at all,
// regardless of which one is active.
func (r *Resolver) HasSystemAccess(systemCode string) bool {
	if r.grant == nil {
		return false
	}
	if r.grant.Superuser {
		return true
	}
	return r.grant.HasSystem(systemCode)
}

// Convenience predicates over HasPermission with fixed verbs. No
// independent logic lives here.

func (r *Resolver) CanView(systemCode ...string) bool {
	return r.HasPermission(grant.ActionView, systemCode...)
}

func (r *Resolver) CanAdd(systemCode ...string) bool {
	return r.HasPermission(grant.ActionAdd, systemCode...)
}

func (r *Resolver) CanEdit(systemCode ...string) bool {
	return r.HasPermission(grant.ActionChange, systemCode...)
}

func (r *Resolver) CanDelete(systemCode ...string) bool {
	return r.HasPermission(grant.ActionDelete, systemCode...)
}

func (r *Resolver) CanExport(systemCode ...string) bool {
	return r.HasPermission(grant.ActionExport, systemCode...)
}

func (r *Resolver) IsAdmin(systemCode ...string) bool {
	return r.HasPermission(grant.ActionAdmin, systemCode...)
}
