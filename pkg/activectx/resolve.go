package activectx

import "github.com/dmitrymomot/grantkit/pkg/grant"

// ResolveActiveRole derives the role implied by the active system: the
// department carrying the highest-rank role wins. The product never lets a
// user hold two simultaneous roles in one system and never asks them to
// break ties; equal ranks resolve to the lexicographically smallest
// department code so repeated calls always agree.
//
// The third return value is false when the system carries no departments,
// which a valid active code should rule out but callers must still handle.
func ResolveActiveRole(g *grant.Grant, systemCode string) (string, grant.DepartmentGrant, bool) {
	departments := g.DepartmentsOf(systemCode)
	if len(departments) == 0 {
		return "", grant.DepartmentGrant{}, false
	}

	var (
		bestDept string
		bestCell grant.DepartmentGrant
		found    bool
	)

	for dept, cell := range departments {
		switch {
		case !found:
			bestDept, bestCell, found = dept, cell, true
		case cell.Role.Rank > bestCell.Role.Rank:
			bestDept, bestCell = dept, cell
		case cell.Role.Rank == bestCell.Role.Rank && dept < bestDept:
			bestDept, bestCell = dept, cell
		}
	}

	return bestDept, bestCell, true
}
