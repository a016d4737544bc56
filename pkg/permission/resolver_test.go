package permission_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/grantkit/pkg/grant"
	"github.com/dmitrymomot/grantkit/pkg/permission"
)

func activeSystem(code string) permission.ActiveFunc {
	return func() string { return code }
}

func testGrant() *grant.Grant {
	return &grant.Grant{
		Systems: []grant.System{{Code: "prazos"}, {Code: "os"}},
		Permissions: map[string]map[string]grant.DepartmentGrant{
			"prazos": {
				"juridico":  {Role: grant.Role{Code: "gestor", Rank: 2}, Actions: []grant.Action{grant.ActionView, grant.ActionAdd}},
				"comercial": {Role: grant.Role{Code: "consultor", Rank: 1}, Actions: []grant.Action{grant.ActionExport}},
			},
			"os": {
				"operacional": {Role: grant.Role{Code: "diretor", Rank: 3}, Actions: []grant.Action{grant.ActionView, grant.ActionAdmin}},
			},
		},
		Models: grant.ModelPermissions{
			"contratos": {
				"contrato": {grant.ActionView: true, grant.ActionDelete: false},
			},
		},
		FlatActions: []grant.Action{grant.ActionView, grant.ActionDelete},
	}
}

func TestResolver_HasPermission(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		active string
		action grant.Action
		system []string
		want   bool
	}{
		{"action held by resolved role", "prazos", grant.ActionAdd, nil, true},
		{"union includes lower-ranked department", "prazos", grant.ActionExport, nil, true},
		{"action held by no department", "prazos", grant.ActionAdmin, nil, false},
		{"explicit system overrides active", "prazos", grant.ActionAdmin, []string{"os"}, true},
		{"no active system fails closed", "", grant.ActionView, nil, false},
		{"system without grants fails closed", "", grant.ActionView, []string{"financeiro"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			r := permission.New(testGrant(), activeSystem(tt.active))
			assert.Equal(t, tt.want, r.HasPermission(tt.action, tt.system...))
		})
	}
}

func TestResolver_SuperuserShortCircuit(t *testing.T) {
	t.Parallel()

	// Superuser with an empty grant: every query is true anyway.
	r := permission.New(&grant.Grant{Superuser: true}, activeSystem(""))

	assert.True(t, r.HasPermission(grant.ActionAdmin))
	assert.True(t, r.HasPermission(grant.ActionDelete, "anything"))
	assert.True(t, r.HasModelPermission("contratos", "contrato", grant.ActionDelete))
	assert.True(t, r.HasSystemAccess("financeiro"))
	assert.True(t, r.IsAdmin())
}

func TestResolver_HasModelPermission(t *testing.T) {
	t.Parallel()

	r := permission.New(testGrant(), activeSystem("prazos"))

	// Matrix entry wins even when it denies and the flat list would allow.
	assert.False(t, r.HasModelPermission("contratos", "contrato", grant.ActionDelete))
	assert.True(t, r.HasModelPermission("contratos", "contrato", grant.ActionView))

	// Uncovered paths fall back to the flat list.
	assert.True(t, r.HasModelPermission("dependentes", "dependente", grant.ActionDelete))
	assert.False(t, r.HasModelPermission("dependentes", "dependente", grant.ActionAdd))
	assert.False(t, r.HasModelPermission("contratos", "aditivo", grant.ActionExport))
}

func TestResolver_HasSystemAccess(t *testing.T) {
	t.Parallel()

	r := permission.New(testGrant(), activeSystem("prazos"))

	assert.True(t, r.HasSystemAccess("prazos"))
	assert.True(t, r.HasSystemAccess("os"), "non-active systems stay visible")
	assert.False(t, r.HasSystemAccess("financeiro"))
	assert.False(t, r.HasSystemAccess(""))
}

func TestResolver_Sugar(t *testing.T) {
	t.Parallel()

	r := permission.New(testGrant(), activeSystem("prazos"))

	assert.True(t, r.CanView())
	assert.True(t, r.CanAdd())
	assert.False(t, r.CanEdit())
	assert.False(t, r.CanDelete())
	assert.True(t, r.CanExport())
	assert.False(t, r.IsAdmin())
	assert.True(t, r.IsAdmin("os"))
}

func TestResolver_NilGrant(t *testing.T) {
	t.Parallel()

	r := permission.New(nil, nil)

	assert.False(t, r.HasPermission(grant.ActionView))
	assert.False(t, r.HasModelPermission("contratos", "contrato", grant.ActionView))
	assert.False(t, r.HasSystemAccess("prazos"))
}
