// Package permission answers fine-grained "can this actor do X" queries
// over the immutable grant and the injected active-system accessor.
//
// Two vocabularies are served consistently:
//
//   - the coarse action list carried by roles (HasPermission and its
//     CanView/CanAdd/... sugar), resolved as the union across every
//     department granted under the target system
//   - the Django-style per-model CRUD matrix (HasModelPermission), where a
//     covering matrix entry always wins and only an absent entry falls back
//     to the coarse flat list
//
// All queries fail closed: missing grant data, an unselected system, or an
// unknown verb simply deny. Nothing here returns errors or panics, so the
// resolver is safe to consult on every render.
//
//	resolver := permission.New(g, store.Active)
//
//	if resolver.CanExport() {
//	    // show the export button for the active system
//	}
//	if !resolver.HasModelPermission("contratos", "contrato", grant.ActionDelete) {
//	    // hide the delete affordance
//	}
package permission
