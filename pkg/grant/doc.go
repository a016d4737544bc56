// Package grant models the authorization snapshot the backend returns at
// login: available systems, the per-system per-department role grants, the
// optional Django-style per-model permission matrix, and the coarse
// fallback action list.
//
// A Grant is constructed once per session and treated as immutable. All
// runtime state (which system is active) lives elsewhere; see the
// activectx package.
//
// Key concepts:
//
//   - System: a top-level, mutually exclusive functional area
//   - Department: a grant-carrying subdivision within a system, never
//     directly user-selectable
//   - Role: a ranked title with an action set, granted per department
//   - Action: a closed verb set (view/add/change/delete/export/admin)
//
// Basic usage:
//
//	g, err := grant.ParseGrant(loginResponseBody)
//	if err != nil {
//	    // handle malformed payload
//	}
//
//	if g.HasSystem("prazos") {
//	    cells := g.DepartmentsOf("prazos")
//	    // inspect per-department role grants
//	    _ = cells
//	}
//
// Unknown action verbs in the payload are dropped during decoding so that
// permission checks only ever compare members of the closed Action set.
package grant
