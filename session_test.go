package grantkit_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	grantkit "github.com/dmitrymomot/grantkit"
	"github.com/dmitrymomot/grantkit/pkg/activectx"
	"github.com/dmitrymomot/grantkit/pkg/grant"
	"github.com/dmitrymomot/grantkit/pkg/routeguard"
)

const sessionTableYAML = `
prazos:
  routes:
    - {path: /prazos, label: Painel}
    - {path: /contratos, label: Contratos}
os:
  routes:
    - {path: /os, label: Ordens}
`

const sessionPayload = `{
	"is_superuser": false,
	"sistemas_disponiveis": [
		{"codigo": "prazos", "nome": "Prazos"},
		{"codigo": "os", "nome": "Ordens de Servico"}
	],
	"permissoes": {
		"prazos": {
			"juridico": {"cargo": "gestor", "cargo_nome": "Gestor", "cargo_nivel": 2, "permissoes": ["view", "add"]}
		},
		"os": {
			"operacional": {"cargo": "tecnico", "cargo_nome": "Tecnico", "cargo_nivel": 1, "permissoes": ["view"]}
		}
	}
}`

func newSessionFixture(t *testing.T, payload string, opts ...grantkit.Option) *grantkit.Session {
	t.Helper()

	g, err := grant.ParseGrant([]byte(payload))
	require.NoError(t, err)

	table, err := routeguard.ParseTable([]byte(sessionTableYAML))
	require.NoError(t, err)

	return grantkit.NewSession(context.Background(), g, table, opts...)
}

// The full login flow from the spec: two systems, no persisted selection.
func TestSession_SelectionFlow(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	s := newSessionFixture(t, sessionPayload)

	// No selection yet: every path asks for one.
	d := s.Guard().Evaluate("/contratos")
	assert.Equal(t, routeguard.StateNeedsSelection, d.State)

	require.NoError(t, s.SwitchSystem(ctx, "prazos"))

	assert.True(t, s.Resolver().HasPermission(grant.ActionAdd))
	assert.False(t, s.Resolver().HasPermission(grant.ActionAdmin))
	assert.True(t, s.Resolver().HasSystemAccess("os"), "non-active systems stay listed")

	assert.Equal(t, routeguard.StateGranted, s.Guard().Evaluate("/contratos").State)

	d = s.Guard().Evaluate("/os")
	assert.Equal(t, routeguard.StateWrongSystem, d.State)
	assert.Equal(t, "os", d.OwningSystem)
	assert.True(t, d.CanSwitch)

	// Switching systems re-routes the same path to granted.
	require.NoError(t, s.SwitchSystem(ctx, "os"))
	assert.Equal(t, routeguard.StateGranted, s.Guard().Evaluate("/os").State)
}

func TestSession_PersistedSelectionRoundTrip(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	medium := activectx.NewMemoryStore()

	first := newSessionFixture(t, sessionPayload,
		grantkit.WithContextStore(activectx.New(activectx.WithStore(medium))))
	require.NoError(t, first.SwitchSystem(ctx, "os"))

	// A new session over the same medium restores the choice.
	second := newSessionFixture(t, sessionPayload,
		grantkit.WithContextStore(activectx.New(activectx.WithStore(medium))))
	assert.Equal(t, "os", second.Store().Active())
	assert.Equal(t, routeguard.StateGranted, second.Guard().Evaluate("/os").State)
}

func TestSession_NoAccessIgnoresPersistedSelection(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	medium := activectx.NewMemoryStore()
	require.NoError(t, medium.Save(ctx, "prazos"))

	s := newSessionFixture(t, `{"is_superuser": false}`,
		grantkit.WithContextStore(activectx.New(activectx.WithStore(medium))))

	d := s.Guard().Evaluate("/contratos")
	assert.Equal(t, routeguard.StateNoAccess, d.State)
	assert.Equal(t, "", s.Store().Active())
}

func TestSession_SingleSystemAutoSelects(t *testing.T) {
	t.Parallel()

	payload := `{
		"sistemas_disponiveis": [{"codigo": "prazos", "nome": "Prazos"}],
		"permissoes": {"prazos": {"juridico": {"cargo": "gestor", "cargo_nome": "Gestor", "cargo_nivel": 2, "permissoes": ["view"]}}}
	}`

	s := newSessionFixture(t, payload)

	assert.Equal(t, "prazos", s.Store().Active())
	assert.Equal(t, routeguard.StateGranted, s.Guard().Evaluate("/prazos").State)
}

func TestSession_UnionAcrossDepartments(t *testing.T) {
	t.Parallel()

	payload := `{
		"sistemas_disponiveis": [{"codigo": "prazos", "nome": "Prazos"}],
		"permissoes": {
			"prazos": {
				"juridico": {"cargo": "gestor", "cargo_nome": "Gestor", "cargo_nivel": 2, "permissoes": ["view"]},
				"comercial": {"cargo": "consultor", "cargo_nome": "Consultor", "cargo_nivel": 1, "permissoes": ["export"]}
			}
		}
	}`

	s := newSessionFixture(t, payload)

	// The resolved role is the highest-rank department...
	dept, cell, ok := activectx.ResolveActiveRole(s.Grant(), s.Store().Active())
	require.True(t, ok)
	assert.Equal(t, "juridico", dept)
	assert.Equal(t, "gestor", cell.Role.Code)

	// ...but permissions are the union across all of them.
	assert.True(t, s.Resolver().CanExport())
	assert.True(t, s.Resolver().CanView())
}

func TestSession_SingleResolver(t *testing.T) {
	t.Parallel()

	s := newSessionFixture(t, sessionPayload)

	require.NotNil(t, s.Resolver())
	assert.Same(t, s.Guard().Resolver(), s.Resolver(),
		"session and guard must share one resolver")
}

func TestSession_Logout(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	s := newSessionFixture(t, sessionPayload)
	require.NoError(t, s.SwitchSystem(ctx, "prazos"))

	s.Logout(ctx)

	assert.Equal(t, "", s.Store().Active())
	assert.Equal(t, routeguard.StateUnauthenticated, s.Guard().Evaluate("/contratos").State)

	_, ok := s.Bus().Current()
	assert.False(t, ok)
}
