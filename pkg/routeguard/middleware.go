package routeguard

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/grantkit/pkg/notify"
)

// StateHeader carries the decision state to the SPA shell so it can render
// the matching screen (selection, no-access, wrong-system) instead of a
// bare error page.
const StateHeader = "X-Access-State"

// OwnerHeader carries the owning system on wrong-system denials so the
// shell can offer "switch to proceed" when the user holds a grant there.
const OwnerHeader = "X-Owning-System"

// Middleware enforces the guard on every request path. Denials map to
// HTTP statuses the shell understands, and wrong-system denials are
// additionally published on the bus (when one is wired) so the banner
// shows up even when the deep link bypassed a hidden control.
func (g *Guard) Middleware(bus *notify.Bus) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			d := g.Evaluate(r.URL.Path)

			w.Header().Set(StateHeader, d.State.String())

			switch d.State {
			case StateGranted:
				next.ServeHTTP(w, r)
			case StateLoading:
				http.Error(w, "authorization pending", http.StatusServiceUnavailable)
			case StateUnauthenticated:
				http.Error(w, "authentication required", http.StatusUnauthorized)
			case StateNeedsSelection:
				http.Error(w, "system selection required", http.StatusConflict)
			case StateNoAccess:
				http.Error(w, "no systems granted", http.StatusForbidden)
			case StateWrongSystem:
				if d.OwningSystem != "" {
					w.Header().Set(OwnerHeader, d.OwningSystem)
				}
				if bus != nil {
					bus.Publish("Você não tem acesso a esta página no sistema atual")
				}
				http.Error(w, "page not available in the active system", http.StatusForbidden)
			default:
				http.Error(w, "access denied", http.StatusForbidden)
			}
		})
	}
}

// Mount registers every path of the route table on r behind the guard
// middleware, all served by h. Shared paths are registered once.
func Mount(r chi.Router, g *Guard, bus *notify.Bus, h http.HandlerFunc) {
	seen := make(map[string]struct{})

	r.Group(func(r chi.Router) {
		r.Use(g.Middleware(bus))

		handle := func(pattern string) {
			if _, ok := seen[pattern]; ok {
				return
			}
			seen[pattern] = struct{}{}
			r.HandleFunc(pattern, h)
		}

		register := func(route Route) {
			handle(route.Path)
			if !route.End {
				handle(route.Path + "/*")
			}
		}

		for _, menu := range g.table {
			for _, route := range menu.Routes {
				register(route)
			}
			for _, route := range menu.AdminRoutes {
				register(route)
			}
		}
	})
}
